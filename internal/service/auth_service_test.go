package service

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/news-service/internal/config"
	"github.com/spec-kit/news-service/internal/docstore"
	"github.com/spec-kit/news-service/internal/domain"
	"github.com/spec-kit/news-service/internal/repository"
)

func testAuthConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:           "test-secret",
			AccessTokenTTLMilli: 300000,
			BcryptCost:          4, // keep tests fast
		},
	}
}

func newTestAuthService() (*AuthService, *countingStore) {
	store := &countingStore{Store: docstore.NewMemoryStore()}
	return NewAuthService(testAuthConfig(), repository.NewCredentialRepository(store)), store
}

// countingStore records how often the underlying store is touched.
type countingStore struct {
	docstore.Store
	calls atomic.Int64
}

func (s *countingStore) Get(ctx context.Context, collection, key string) ([]byte, error) {
	s.calls.Add(1)
	return s.Store.Get(ctx, collection, key)
}

func (s *countingStore) Exists(ctx context.Context, collection, key string) (bool, error) {
	s.calls.Add(1)
	return s.Store.Exists(ctx, collection, key)
}

func (s *countingStore) Insert(ctx context.Context, collection, key string, doc []byte) error {
	s.calls.Add(1)
	return s.Store.Insert(ctx, collection, key, doc)
}

func TestRegister_Success(t *testing.T) {
	svc, _ := newTestAuthService()

	cred, err := svc.Register(context.Background(), "john", "pass123")
	require.NoError(t, err)
	assert.Equal(t, "john", cred.UserID)
	assert.NotEmpty(t, cred.SecretHash)
	assert.NotEqual(t, "pass123", cred.SecretHash)
	assert.False(t, cred.CreatedAt.IsZero())
}

func TestRegister_DuplicateID(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "john", "pass123")
	require.NoError(t, err)

	// the same id with a different secret is still a duplicate
	_, err = svc.Register(ctx, "john", "other-secret")
	assert.ErrorIs(t, err, domain.ErrUserExists)
}

func TestRegister_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pass123")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = svc.Register(ctx, "john", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "john", "pass123")
	require.NoError(t, err)

	token, expiresAt, err := svc.Login(ctx, "john", "pass123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.False(t, expiresAt.IsZero())

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "john", claims.Subject)
}

func TestLogin_MissingCredentialsSkipsStore(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	_, _, err := svc.Login(ctx, "", "pass123")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, _, err = svc.Login(ctx, "john", "")
	assert.ErrorIs(t, err, domain.ErrMissingCredentials)

	assert.Zero(t, store.calls.Load(), "store must not be consulted for empty credentials")
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, _ := newTestAuthService()

	_, _, err := svc.Login(context.Background(), "ghost", "pass123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.Register(ctx, "john", "pass123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "john", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
