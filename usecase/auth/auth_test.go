package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oicpanel/backend/domain"
	"github.com/oicpanel/backend/pkg/password"
	"github.com/oicpanel/backend/pkg/token"
	"github.com/oicpanel/backend/repository"
	"github.com/oicpanel/backend/usecase/auth"
)

// fakeUserRepo is an in-memory credential store keyed by id and email.
type fakeUserRepo struct {
	users map[string]*domain.User

	lookupErr error
	touchErr  error
	touched   []string
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if r.lookupErr != nil {
		return nil, r.lookupErr
	}
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) List(context.Context, repository.UserFilter) ([]domain.User, error) {
	return nil, nil
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *domain.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.PasswordHash = hash
	return nil
}

func (r *fakeUserRepo) SetActive(_ context.Context, id string, active bool) error {
	user, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	user.Active = active
	return nil
}

func (r *fakeUserRepo) TouchLastAccess(_ context.Context, id string, at time.Time) error {
	if r.touchErr != nil {
		return r.touchErr
	}
	r.touched = append(r.touched, id)
	if user, ok := r.users[id]; ok {
		user.LastAccessAt = &at
	}
	return nil
}

func seedUser(t *testing.T, plain string) *domain.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	return &domain.User{
		ID:           "9e2b4d6f-8a0c-4e1d-b3f5-7a9c1e3b5d7f",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Role:         domain.RoleAdministrador,
		Active:       true,
	}
}

func newService(repo repository.UserRepository) *auth.Service {
	return auth.New(repo, token.New("test-secret", "oicpanel", time.Hour), nil)
}

func TestLogin_Success(t *testing.T) {
	user := seedUser(t, "admin123")
	repo := newFakeUserRepo(user)
	svc := newService(repo)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)
	assert.Equal(t, domain.RoleAdministrador, result.User.Role)
	assert.Empty(t, result.User.PasswordHash, "login must never expose the hash")
	assert.Equal(t, []string{user.ID}, repo.touched)
	assert.NotNil(t, result.User.LastAccessAt)
}

func TestLogin_RejectionsAreIndistinguishable(t *testing.T) {
	user := seedUser(t, "admin123")
	inactive := seedUser(t, "admin123")
	inactive.ID = "1a3c5e7f-9b0d-4f2a-8c4e-6b8d0f2a4c6e"
	inactive.Email = "inactive@example.com"
	inactive.Active = false
	repo := newFakeUserRepo(user, inactive)
	svc := newService(repo)

	cases := map[string]struct {
		email, plain string
	}{
		"unknown email":   {"nobody@example.com", "admin123"},
		"wrong password":  {"admin@example.com", "admin124"},
		"inactive user":   {"inactive@example.com", "admin123"},
		"empty email":     {"", "admin123"},
		"empty password":  {"admin@example.com", ""},
		"case mismatched": {"Admin@example.com", "admin123"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Login(context.Background(), tc.email, tc.plain)
			assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		})
	}
}

func TestLogin_UpstreamFailureIsNotInvalidCredentials(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "admin123"))
	repo.lookupErr = errors.New("connection refused")
	svc := newService(repo)

	_, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
	assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
}

func TestLogin_TouchFailureDoesNotFailLogin(t *testing.T) {
	repo := newFakeUserRepo(seedUser(t, "admin123"))
	repo.touchErr = errors.New("write timeout")
	svc := newService(repo)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Nil(t, result.User.LastAccessAt)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	user := seedUser(t, "admin123")
	repo := newFakeUserRepo(user)
	svc := newService(repo)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	verified, err := svc.VerifyToken(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, verified.ID)
	assert.Equal(t, user.Role, verified.Role)
	assert.Empty(t, verified.PasswordHash)
}

func TestVerifyToken_Rejections(t *testing.T) {
	user := seedUser(t, "admin123")
	repo := newFakeUserRepo(user)
	svc := newService(repo)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	t.Run("garbage token", func(t *testing.T) {
		_, err := svc.VerifyToken(context.Background(), "garbage")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("deactivated after issuance", func(t *testing.T) {
		require.NoError(t, repo.SetActive(context.Background(), user.ID, false))
		defer repo.SetActive(context.Background(), user.ID, true)

		_, err := svc.VerifyToken(context.Background(), result.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("deleted after issuance", func(t *testing.T) {
		deleted := newFakeUserRepo()
		_, err := newService(deleted).VerifyToken(context.Background(), result.Token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("lookup failure surfaces as internal", func(t *testing.T) {
		repo.lookupErr = errors.New("connection refused")
		defer func() { repo.lookupErr = nil }()

		_, err := svc.VerifyToken(context.Background(), result.Token)
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrUnauthenticated)
		assert.True(t, domain.IsDomainError(err, domain.ErrCodeInternal))
	})
}

func TestVerifyToken_ReflectsRoleChange(t *testing.T) {
	user := seedUser(t, "admin123")
	repo := newFakeUserRepo(user)
	svc := newService(repo)

	result, err := svc.Login(context.Background(), "admin@example.com", "admin123")
	require.NoError(t, err)

	// Demote after the token was issued: verification returns the
	// current role, not the embedded one.
	user.Role = domain.RoleInvitado
	require.NoError(t, repo.Update(context.Background(), user))

	verified, err := svc.VerifyToken(context.Background(), result.Token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleInvitado, verified.Role)
}
