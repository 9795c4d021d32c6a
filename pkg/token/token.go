package token

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/oicpanel/backend/domain"
)

// DefaultTTL is the fixed session lifetime.
const DefaultTTL = 24 * time.Hour

// Claims carries the identity embedded in a session token.
type Claims struct {
	UserID string
	Role   domain.Role
}

// Issuer signs and verifies the stateless session tokens. Tokens are
// HS256 JWTs; there is no server-side revocation, so a token remains
// valid until its natural expiry.
type Issuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func New(secret, issuer string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock overrides the time source used for issuance and expiry checks.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	if now != nil {
		i.now = now
	}
	return i
}

// TTL returns the configured session lifetime.
func (i *Issuer) TTL() time.Duration {
	return i.ttl
}

// Issue creates a signed token embedding the user's id and role.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", domain.ErrInvalidPayload
	}
	now := i.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    string(user.Role),
		"iat":     now.Unix(),
		"exp":     now.Add(i.ttl).Unix(),
		"iss":     i.issuer,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a raw token. It fails closed: a missing,
// malformed, expired or tampered token and any unexpected signing method
// all yield an unauthenticated error.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	if raw == "" {
		return nil, domain.ErrUnauthenticated
	}

	// Claims validation is done by hand against the injected clock; the
	// v4 parser only knows the process-global jwt.TimeFunc.
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)
	tok, err := parser.Parse(raw, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "unauthenticated", err)
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	now := i.now().Unix()
	if !claims.VerifyExpiresAt(now, true) {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "unauthenticated", jwt.ErrTokenExpired)
	}
	if !claims.VerifyIssuedAt(now, false) {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "unauthenticated", jwt.ErrTokenUsedBeforeIssued)
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return nil, domain.ErrUnauthenticated
	}
	roleRaw, _ := claims["role"].(string)
	role, err := domain.ParseRole(roleRaw)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	return &Claims{UserID: userID, Role: role}, nil
}
