package service_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/auth-service/internal/config"
	"github.com/spec-kit/auth-service/internal/domain"
	"github.com/spec-kit/auth-service/internal/repository"
	"github.com/spec-kit/auth-service/internal/service"
	apperrors "github.com/spec-kit/auth-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret",
			TokenTTLSeconds: 3600,
			BcryptCost:      bcrypt.MinCost,
		},
	}
}

func newTestService(repo repository.IdentityRepository) *service.AuthService {
	return service.NewAuthService(testConfig(), service.AuthDependencies{IdentityRepo: repo})
}

func requireDomainError(t *testing.T, err error, code string, status int) *apperrors.DomainError {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	require.Equal(t, code, domainErr.Code)
	require.Equal(t, status, domainErr.HTTPStatus)
	return domainErr
}

func TestRegisterLoginIdentifyFlow(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryIdentityRepo()
	svc := newTestService(repo)

	identity, err := svc.Register(ctx, "Ann", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, identity.ID)
	require.Equal(t, "Ann", identity.Name)
	require.Equal(t, "a@x.com", identity.Email)
	require.Equal(t,
		"https://www.gravatar.com/avatar/743173788aa9166801df2e18f0e7ff24?d=mm&r=pg&s=200",
		identity.AvatarURL)
	require.NotEmpty(t, identity.PasswordHash)
	require.NotEqual(t, "secret1", identity.PasswordHash)

	// Same email again always fails, regardless of other fields.
	_, err = svc.Register(ctx, "Other", "a@x.com", "different7", "different7")
	requireDomainError(t, err, "DUPLICATE_EMAIL", 400)

	token, expiresAt, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.False(t, expiresAt.IsZero())

	resolved, err := svc.Identify(ctx, token)
	require.NoError(t, err)
	require.Equal(t, identity.ID, resolved.ID)
	require.Equal(t, "Ann", resolved.Name)
	require.Equal(t, "a@x.com", resolved.Email)
}

func TestRegisterValidationFailure(t *testing.T) {
	svc := newTestService(newMemoryIdentityRepo())

	_, err := svc.Register(context.Background(), "Ann", "", "secret1", "secret2")
	domainErr := requireDomainError(t, err, "VALIDATION_FAILED", 400)
	require.Contains(t, domainErr.Details, "email")
	require.Contains(t, domainErr.Details, "password_confirmation")
}

func TestRegisterValidationFailureHasNoSideEffect(t *testing.T) {
	repo := newMemoryIdentityRepo()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "", "a@x.com", "secret1", "secret1")
	requireDomainError(t, err, "VALIDATION_FAILED", 400)
	require.Zero(t, repo.createCalls)
}

func TestRegisterDuplicateRaceAtStore(t *testing.T) {
	// The existence check passes but the unique index rejects the insert,
	// as happens when two registrations for the same email race.
	repo := newMemoryIdentityRepo()
	repo.failCreate = repository.ErrDuplicateEmail
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Ann", "a@x.com", "secret1", "secret1")
	requireDomainError(t, err, "DUPLICATE_EMAIL", 400)
}

func TestRegisterHashFailureAborts(t *testing.T) {
	repo := newMemoryIdentityRepo()
	cfg := testConfig()
	cfg.Auth.BcryptCost = bcrypt.MaxCost + 1
	svc := service.NewAuthService(cfg, service.AuthDependencies{IdentityRepo: repo})

	_, err := svc.Register(context.Background(), "Ann", "a@x.com", "secret1", "secret1")
	requireDomainError(t, err, "INTERNAL_ERROR", 500)
	require.Zero(t, repo.createCalls)
}

func TestLoginUnknownEmailAndWrongPasswordAreDistinct(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryIdentityRepo()
	svc := newTestService(repo)

	_, err := svc.Register(ctx, "Ann", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "unknown@x.com", "secret1")
	requireDomainError(t, err, "IDENTITY_NOT_FOUND", 404)

	_, _, err = svc.Login(ctx, "a@x.com", "wrong-password")
	requireDomainError(t, err, "INVALID_CREDENTIALS", 400)
}

func TestLoginValidationFailure(t *testing.T) {
	svc := newTestService(newMemoryIdentityRepo())

	_, _, err := svc.Login(context.Background(), "", "")
	domainErr := requireDomainError(t, err, "VALIDATION_FAILED", 400)
	require.Contains(t, domainErr.Details, "email")
	require.Contains(t, domainErr.Details, "password")
}

func TestIdentifyRejectsGarbageToken(t *testing.T) {
	svc := newTestService(newMemoryIdentityRepo())

	for _, token := range []string{"", "abc", "not.a.token"} {
		_, err := svc.Identify(context.Background(), token)
		requireDomainError(t, err, "UNAUTHENTICATED", 401)
	}
}

func TestIdentifyRejectsTokenForDeletedIdentity(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryIdentityRepo()
	svc := newTestService(repo)

	_, err := svc.Register(ctx, "Ann", "a@x.com", "secret1", "secret1")
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	repo.clear()

	_, err = svc.Identify(ctx, token)
	requireDomainError(t, err, "UNAUTHENTICATED", 401)
}

// memoryIdentityRepo is an in-memory IdentityRepository for service tests.
type memoryIdentityRepo struct {
	byEmail     map[string]*domain.Identity
	byID        map[string]*domain.Identity
	createCalls int
	failCreate  error
	nextID      int
}

func newMemoryIdentityRepo() *memoryIdentityRepo {
	return &memoryIdentityRepo{
		byEmail: make(map[string]*domain.Identity),
		byID:    make(map[string]*domain.Identity),
	}
}

func (m *memoryIdentityRepo) Create(_ context.Context, identity *domain.Identity) error {
	m.createCalls++
	if m.failCreate != nil {
		return m.failCreate
	}
	if _, exists := m.byEmail[identity.Email]; exists {
		return repository.ErrDuplicateEmail
	}
	m.nextID++
	identity.ID = "id-" + strconv.Itoa(m.nextID)
	stored := *identity
	m.byEmail[stored.Email] = &stored
	m.byID[stored.ID] = &stored
	return nil
}

func (m *memoryIdentityRepo) GetByID(_ context.Context, id string) (*domain.Identity, error) {
	identity, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}
	copied := *identity
	return &copied, nil
}

func (m *memoryIdentityRepo) GetByEmail(_ context.Context, email string) (*domain.Identity, error) {
	identity, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrIdentityNotFound
	}
	copied := *identity
	return &copied, nil
}

func (m *memoryIdentityRepo) clear() {
	m.byEmail = make(map[string]*domain.Identity)
	m.byID = make(map[string]*domain.Identity)
}
