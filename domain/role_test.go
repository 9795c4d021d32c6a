package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oicpanel/backend/domain"
)

func TestParseRole(t *testing.T) {
	for _, role := range domain.AllRoles() {
		parsed, err := domain.ParseRole(string(role))
		assert.NoError(t, err)
		assert.Equal(t, role, parsed)
	}

	for _, raw := range []string{"", "admin", "administrador", "SUPERUSER"} {
		_, err := domain.ParseRole(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidRole, "raw=%q", raw)
	}
}

func TestUser_Sanitized(t *testing.T) {
	user := &domain.User{
		ID:           "b4d2f8a0-6c1e-4a3b-9d5f-7e9a1c3b5d7f",
		Email:        "admin@example.com",
		PasswordHash: "$2a$12$secret",
		Role:         domain.RoleAdministrador,
		Active:       true,
	}

	clean := user.Sanitized()
	assert.Empty(t, clean.PasswordHash)
	assert.Equal(t, user.ID, clean.ID)
	assert.Equal(t, user.Email, clean.Email)

	// Original is untouched.
	assert.Equal(t, "$2a$12$secret", user.PasswordHash)
}
