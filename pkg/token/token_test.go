package token_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/token"
)

func testUser() *domain.User {
	return &domain.User{
		ID:     "3f1c9a4e-0b7d-4c55-9a1d-8a2f6f0c1b2e",
		Email:  "admin@example.com",
		Role:   domain.RoleAdministrador,
		Active: true,
	}
}

func TestIssuer_RoundTrip(t *testing.T) {
	issuer := token.New("test-secret", "oicpanel", time.Hour)
	user := testUser()

	raw, err := issuer.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	claims, err := issuer.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Role, claims.Role)
}

func TestIssuer_Expiry(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	issuer := token.New("test-secret", "oicpanel", 24*time.Hour).
		WithClock(func() time.Time { return clock })

	raw, err := issuer.Issue(testUser())
	require.NoError(t, err)

	t.Run("valid just before expiry", func(t *testing.T) {
		clock = issued.Add(24*time.Hour - time.Second)
		_, err := issuer.Verify(raw)
		assert.NoError(t, err)
	})

	t.Run("rejected after expiry", func(t *testing.T) {
		clock = issued.Add(24*time.Hour + time.Second)
		_, err := issuer.Verify(raw)
		assert.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})
}

func TestIssuer_Verify_FailsClosed(t *testing.T) {
	issuer := token.New("test-secret", "oicpanel", time.Hour)
	raw, err := issuer.Issue(testUser())
	require.NoError(t, err)

	t.Run("empty token", func(t *testing.T) {
		_, err := issuer.Verify("")
		assert.Error(t, err)
	})

	t.Run("malformed token", func(t *testing.T) {
		_, err := issuer.Verify("not.a.jwt")
		assert.Error(t, err)
	})

	t.Run("tampered payload", func(t *testing.T) {
		tampered := raw[:len(raw)-4] + "xxxx"
		_, err := issuer.Verify(tampered)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := token.New("other-secret", "oicpanel", time.Hour)
		_, err := other.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("missing exp claim", func(t *testing.T) {
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": testUser().ID,
			"role":    string(domain.RoleAdministrador),
			"iat":     time.Now().Unix(),
			"iss":     "oicpanel",
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = issuer.Verify(raw)
		assert.Error(t, err)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeUnauthorized))
	})

	t.Run("issued in the future", func(t *testing.T) {
		future := time.Now().Add(time.Hour)
		raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": testUser().ID,
			"role":    string(domain.RoleAdministrador),
			"iat":     future.Unix(),
			"exp":     future.Add(time.Hour).Unix(),
			"iss":     "oicpanel",
		}).SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = issuer.Verify(raw)
		assert.Error(t, err)
	})

	t.Run("unknown role in claims", func(t *testing.T) {
		bogus := testUser()
		bogus.Role = domain.Role("SUPERUSER")
		raw, err := issuer.Issue(bogus)
		require.NoError(t, err)

		_, err = issuer.Verify(raw)
		assert.Error(t, err)
	})
}

func TestIssuer_Issue_RequiresUser(t *testing.T) {
	issuer := token.New("test-secret", "oicpanel", time.Hour)

	_, err := issuer.Issue(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	_, err = issuer.Issue(&domain.User{})
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestIssuer_DefaultTTL(t *testing.T) {
	issuer := token.New("test-secret", "oicpanel", 0)
	assert.Equal(t, token.DefaultTTL, issuer.TTL())
}
