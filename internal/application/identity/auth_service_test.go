package identity

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/techzone/backend/internal/domain/identity"
	"github.com/techzone/backend/internal/domain/shared"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context, filter shared.Filter) ([]identity.User, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]identity.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type mockIssuer struct {
	mock.Mock
}

func (m *mockIssuer) Issue(user *identity.User) (*TokenPair, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TokenPair), args.Error(1)
}

func (m *mockIssuer) Refresh(refreshToken string) (uuid.UUID, error) {
	args := m.Called(refreshToken)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

type mockRevoker struct {
	mock.Mock
}

func (m *mockRevoker) RevokeToken(ctx context.Context, rawToken string) error {
	args := m.Called(ctx, rawToken)
	return args.Error(0)
}

func (m *mockRevoker) RevokeUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func testPair() *TokenPair {
	return &TokenPair{
		AccessToken:           "access",
		RefreshToken:          "refresh",
		AccessTokenExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshTokenExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		TokenType:             "Bearer",
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		issuer := new(mockIssuer)
		svc := NewAuthService(userRepo, issuer, new(mockRevoker))

		userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(false, nil)
		userRepo.On("Save", ctx, mock.AnythingOfType("*identity.User")).Return(nil)
		issuer.On("Issue", mock.AnythingOfType("*identity.User")).Return(testPair(), nil)

		resp, err := svc.Register(ctx, RegisterRequest{
			Email:     "Jane@Example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		assert.NoError(t, err)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.Equal(t, "customer", resp.User.Role)
		assert.Equal(t, "access", resp.Tokens.AccessToken)
	})

	t.Run("duplicate email", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewAuthService(userRepo, new(mockIssuer), new(mockRevoker))

		userRepo.On("ExistsByEmail", ctx, "jane@example.com").Return(true, nil)

		_, err := svc.Register(ctx, RegisterRequest{
			Email:     "jane@example.com",
			Password:  "s3cretpass",
			FirstName: "Jane",
			LastName:  "Doe",
		})

		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	user, _ := identity.NewUser("jane@example.com", "s3cretpass", "Jane", "Doe")

	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		issuer := new(mockIssuer)
		svc := NewAuthService(userRepo, issuer, new(mockRevoker))

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
		issuer.On("Issue", user).Return(testPair(), nil)

		resp, err := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "s3cretpass"})
		assert.NoError(t, err)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("wrong password and unknown email return the same error", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewAuthService(userRepo, new(mockIssuer), new(mockRevoker))

		userRepo.On("FindByEmail", ctx, "jane@example.com").Return(user, nil)
		userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, shared.ErrNotFound)

		_, errWrongPass := svc.Login(ctx, LoginRequest{Email: "jane@example.com", Password: "wrong"})
		_, errNoUser := svc.Login(ctx, LoginRequest{Email: "ghost@example.com", Password: "whatever"})

		var e1, e2 *shared.DomainError
		assert.ErrorAs(t, errWrongPass, &e1)
		assert.ErrorAs(t, errNoUser, &e2)
		assert.Equal(t, e1.Code, e2.Code)
	})

	t.Run("disabled account", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		svc := NewAuthService(userRepo, new(mockIssuer), new(mockRevoker))

		disabled, _ := identity.NewUser("off@example.com", "s3cretpass", "Off", "Line")
		disabled.Deactivate()
		userRepo.On("FindByEmail", ctx, "off@example.com").Return(disabled, nil)

		_, err := svc.Login(ctx, LoginRequest{Email: "off@example.com", Password: "s3cretpass"})
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ACCOUNT_DISABLED", domainErr.Code)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates password and revokes tokens", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		revoker := new(mockRevoker)
		svc := NewAuthService(userRepo, new(mockIssuer), revoker)

		user, _ := identity.NewUser("jane@example.com", "s3cretpass", "Jane", "Doe")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		userRepo.On("Save", ctx, user).Return(nil)
		revoker.On("RevokeUser", ctx, user.ID).Return(nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "s3cretpass",
			NewPassword:     "evenbetterpass",
		})

		assert.NoError(t, err)
		assert.True(t, user.CheckPassword("evenbetterpass"))
		revoker.AssertCalled(t, "RevokeUser", ctx, user.ID)
	})

	t.Run("wrong current password keeps tokens", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		revoker := new(mockRevoker)
		svc := NewAuthService(userRepo, new(mockIssuer), revoker)

		user, _ := identity.NewUser("jane@example.com", "s3cretpass", "Jane", "Doe")
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)

		err := svc.ChangePassword(ctx, user.ID, ChangePasswordRequest{
			CurrentPassword: "wrong",
			NewPassword:     "evenbetterpass",
		})

		assert.Error(t, err)
		revoker.AssertNotCalled(t, "RevokeUser", mock.Anything, mock.Anything)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	user, _ := identity.NewUser("jane@example.com", "s3cretpass", "Jane", "Doe")

	t.Run("success", func(t *testing.T) {
		userRepo := new(mockUserRepo)
		issuer := new(mockIssuer)
		svc := NewAuthService(userRepo, issuer, new(mockRevoker))

		issuer.On("Refresh", "refresh").Return(user.ID, nil)
		userRepo.On("FindByID", ctx, user.ID).Return(user, nil)
		issuer.On("Issue", user).Return(testPair(), nil)

		resp, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: "refresh"})
		assert.NoError(t, err)
		assert.Equal(t, user.Email, resp.User.Email)
	})

	t.Run("invalid token", func(t *testing.T) {
		issuer := new(mockIssuer)
		svc := NewAuthService(new(mockUserRepo), issuer, new(mockRevoker))

		issuer.On("Refresh", "garbage").Return(uuid.Nil, assert.AnError)

		_, err := svc.Refresh(ctx, RefreshRequest{RefreshToken: "garbage"})
		var domainErr *shared.DomainError
		assert.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_TOKEN", domainErr.Code)
	})
}
