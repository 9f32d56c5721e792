package identity

import (
	"context"
	"testing"
	"time"

	"github.com/ecommerce/backend/internal/domain/identity"
	"github.com/ecommerce/backend/internal/domain/shared"
	"github.com/ecommerce/backend/internal/infrastructure/auth"
	"github.com/ecommerce/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.Repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Verify interface compliance
var _ identity.Repository = (*MockUserRepository)(nil)

func newTestAuthService() (*AuthService, *MockUserRepository, *auth.JWTService) {
	userRepo := new(MockUserRepository)
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests-only",
		Expiration: 8 * time.Hour,
		Issuer:     "ecommerce-backend",
	})
	service := NewAuthService(userRepo, jwtService, zap.NewNop())
	return service, userRepo, jwtService
}

func createTestUser(t *testing.T) *identity.User {
	t.Helper()
	user, err := identity.NewUser("Admin", "admin@local", "Admin@123")
	require.NoError(t, err)
	return user
}

func TestAuthService_Login_Success(t *testing.T) {
	service, userRepo, jwtService := newTestAuthService()

	ctx := context.Background()
	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "admin@local").Return(user, nil)

	result, err := service.Login(ctx, LoginRequest{Email: "admin@local", Password: "Admin@123"})

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Admin", result.Name)
	assert.NotEmpty(t, result.Token)

	claims, err := jwtService.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
	assert.Equal(t, "admin@local", claims.Email)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	service, userRepo, _ := newTestAuthService()

	ctx := context.Background()
	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "admin@local").Return(user, nil)

	result, err := service.Login(ctx, LoginRequest{Email: "admin@local", Password: "wrong-password"})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	service, userRepo, _ := newTestAuthService()

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "nobody@local").Return(nil, shared.ErrNotFound)

	result, err := service.Login(ctx, LoginRequest{Email: "nobody@local", Password: "whatever"})

	assert.Error(t, err)
	assert.Nil(t, result)
	var domainErr *shared.DomainError
	assert.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNAUTHORIZED", domainErr.Code)
}

func TestAuthService_Login_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	service, userRepo, _ := newTestAuthService()

	ctx := context.Background()
	user := createTestUser(t)

	userRepo.On("FindByEmail", ctx, "admin@local").Return(user, nil)
	userRepo.On("FindByEmail", ctx, "nobody@local").Return(nil, shared.ErrNotFound)

	_, errWrongPassword := service.Login(ctx, LoginRequest{Email: "admin@local", Password: "wrong"})
	_, errUnknownEmail := service.Login(ctx, LoginRequest{Email: "nobody@local", Password: "wrong"})

	require.Error(t, errWrongPassword)
	require.Error(t, errUnknownEmail)
	assert.Equal(t, errWrongPassword.Error(), errUnknownEmail.Error())
}
