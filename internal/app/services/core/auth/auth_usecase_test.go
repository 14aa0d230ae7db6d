package auth

import (
	"context"
	"laundryroom-service/internal/app/config"
	"laundryroom-service/internal/app/models"
	"laundryroom-service/internal/pkg/constvars"
	"laundryroom-service/internal/pkg/dto/requests"
	"laundryroom-service/internal/pkg/exceptions"
	"laundryroom-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, session, exp)
	return args.Error(0)
}

func (m *MockSessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func testInternalConfig() *config.InternalConfig {
	return &config.InternalConfig{
		App: config.App{SessionExpiryTimeInHours: 24},
		JWT: config.JWT{Secret: "test-jwt-secret-12345"},
	}
}

func TestAuthUsecase_RegisterUser(t *testing.T) {
	request := &requests.RegisterUser{
		Email:          "dan@example.com",
		Username:       "dan",
		Password:       "Sup3rSecret!",
		RetypePassword: "Sup3rSecret!",
		Apartment:      1203,
		Name:           "Dan",
	}

	t.Run("creates a user with a hashed password and empty bookings", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockSessionService), testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "dan@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "dan").Return(nil, nil)
		userRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(user *models.User) bool {
			return user.Username == "dan" &&
				user.Password != "Sup3rSecret!" &&
				utils.CheckPasswordHash("Sup3rSecret!", user.Password) &&
				user.Bookings != nil && len(user.Bookings) == 0
		})).Return("6123abc", nil)

		response, err := uc.RegisterUser(context.Background(), request)

		assert.NoError(t, err)
		assert.Equal(t, "6123abc", response.UserID)
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects mismatched passwords", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockSessionService), testInternalConfig())

		mismatched := *request
		mismatched.RetypePassword = "different"

		_, err := uc.RegisterUser(context.Background(), &mismatched)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientPasswordsDoNotMatch, customErr.ClientMessage)
		userRepo.AssertNotCalled(t, "CreateUser")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockSessionService), testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "dan@example.com").Return(&models.User{Username: "other"}, nil)

		_, err := uc.RegisterUser(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientEmailAlreadyExists, customErr.ClientMessage)
	})

	t.Run("rejects duplicate username", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockSessionService), testInternalConfig())

		userRepo.On("FindByEmail", mock.Anything, "dan@example.com").Return(nil, nil)
		userRepo.On("FindByUsername", mock.Anything, "dan").Return(&models.User{Username: "dan"}, nil)

		_, err := uc.RegisterUser(context.Background(), request)

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.ErrClientUsernameAlreadyExists, customErr.ClientMessage)
	})
}

func TestAuthUsecase_LoginUser(t *testing.T) {
	hash, err := utils.HashPassword("Sup3rSecret!")
	assert.NoError(t, err)

	storedUser := &models.User{
		ID:       "6123abc",
		Username: "dan",
		Password: hash,
	}

	t.Run("valid credentials produce a session-backed bearer token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessionService := new(MockSessionService)
		uc := NewAuthUsecase(userRepo, sessionService, testInternalConfig())

		userRepo.On("FindByUsername", mock.Anything, "dan").Return(storedUser, nil)

		var createdSessionID string
		sessionService.On("CreateSession", mock.Anything, mock.MatchedBy(func(session *models.Session) bool {
			createdSessionID = session.SessionID
			return session.Username == "dan" && session.UserID == "6123abc"
		}), 24*time.Hour).Return(nil)

		response, err := uc.LoginUser(context.Background(), &requests.LoginUser{Username: "dan", Password: "Sup3rSecret!"})

		assert.NoError(t, err)
		assert.Equal(t, "Bearer", response.TokenType)

		// The token must resolve back to the session just created.
		sessionID, err := utils.ParseJWT(response.AccessToken, "test-jwt-secret-12345")
		assert.NoError(t, err)
		assert.Equal(t, createdSessionID, sessionID)
	})

	t.Run("unknown username is indistinguishable from a bad password", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		uc := NewAuthUsecase(userRepo, new(MockSessionService), testInternalConfig())

		userRepo.On("FindByUsername", mock.Anything, "ghost").Return(nil, nil)

		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{Username: "ghost", Password: "Sup3rSecret!"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
	})

	t.Run("wrong password is rejected without creating a session", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		sessionService := new(MockSessionService)
		uc := NewAuthUsecase(userRepo, sessionService, testInternalConfig())

		userRepo.On("FindByUsername", mock.Anything, "dan").Return(storedUser, nil)

		_, err := uc.LoginUser(context.Background(), &requests.LoginUser{Username: "dan", Password: "wrong-password"})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		sessionService.AssertNotCalled(t, "CreateSession")
	})
}

func TestAuthUsecase_LogoutUser(t *testing.T) {
	sessionService := new(MockSessionService)
	uc := NewAuthUsecase(new(MockUserRepository), sessionService, testInternalConfig())

	sessionService.On("DeleteSession", mock.Anything, "session-id").Return(nil)

	assert.NoError(t, uc.LogoutUser(context.Background(), "session-id"))
	sessionService.AssertExpectations(t)
}
