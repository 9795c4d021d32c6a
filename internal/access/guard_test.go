package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/internal/access"
)

func userWithRole(role domain.Role) *domain.User {
	return &domain.User{
		ID:     "7c0a2f6e-1d3b-4e8f-a5c9-2b4d6e8f0a1c",
		Email:  "user@example.com",
		Role:   role,
		Active: true,
	}
}

func TestEvaluate(t *testing.T) {
	allowed := []domain.Role{domain.RoleAdministrador, domain.RoleOperativo}

	t.Run("loading wins over everything", func(t *testing.T) {
		assert.Equal(t, access.Loading, access.Evaluate(nil, true, allowed))
		assert.Equal(t, access.Loading, access.Evaluate(userWithRole(domain.RoleAdministrador), true, allowed))
	})

	t.Run("nil user is unauthenticated", func(t *testing.T) {
		assert.Equal(t, access.Unauthenticated, access.Evaluate(nil, false, allowed))
	})

	t.Run("empty allow-list forbids everyone", func(t *testing.T) {
		for _, role := range domain.AllRoles() {
			assert.Equal(t, access.Forbidden, access.Evaluate(userWithRole(role), false, nil))
		}
	})

	t.Run("every role against every allow-list", func(t *testing.T) {
		for _, allowedRole := range domain.AllRoles() {
			for _, userRole := range domain.AllRoles() {
				decision := access.Evaluate(userWithRole(userRole), false, []domain.Role{allowedRole})
				if userRole == allowedRole {
					assert.Equal(t, access.Authorized, decision, "%s should pass gate for %s", userRole, allowedRole)
				} else {
					assert.Equal(t, access.Forbidden, decision, "%s should be denied by gate for %s", userRole, allowedRole)
				}
			}
		}
	})
}

func TestGate_RedirectOnce(t *testing.T) {
	gate := access.NewGate(domain.RoleAdministrador)

	// Initial load: identity still resolving, no navigation.
	out := gate.Evaluate(nil, true)
	assert.Equal(t, access.Loading, out.Decision)
	assert.False(t, out.ShouldRedirect)

	// Resolution finished with no identity: redirect exactly once.
	out = gate.Evaluate(nil, false)
	assert.Equal(t, access.Unauthenticated, out.Decision)
	assert.True(t, out.ShouldRedirect)

	out = gate.Evaluate(nil, false)
	assert.Equal(t, access.Unauthenticated, out.Decision)
	assert.False(t, out.ShouldRedirect)

	// Login, then logout: the transition back re-triggers the redirect.
	out = gate.Evaluate(userWithRole(domain.RoleAdministrador), false)
	assert.Equal(t, access.Authorized, out.Decision)
	assert.False(t, out.ShouldRedirect)

	out = gate.Evaluate(nil, false)
	assert.True(t, out.ShouldRedirect)
}

func TestGate_ForbiddenCarriesRole(t *testing.T) {
	gate := access.NewGate(domain.RoleAdministrador)

	out := gate.Evaluate(userWithRole(domain.RoleInvitado), false)
	assert.Equal(t, access.Forbidden, out.Decision)
	assert.False(t, out.ShouldRedirect)
	assert.Equal(t, domain.RoleInvitado, out.DeniedRole)
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "loading", access.Loading.String())
	assert.Equal(t, "unauthenticated", access.Unauthenticated.String())
	assert.Equal(t, "forbidden", access.Forbidden.String())
	assert.Equal(t, "authorized", access.Authorized.String())
}
