package auth

import (
	"context"
	"laundryroom-service/internal/app/config"
	"laundryroom-service/internal/app/contracts"
	"laundryroom-service/internal/app/models"
	"laundryroom-service/internal/app/services/core/users"
	"laundryroom-service/internal/pkg/dto/requests"
	"laundryroom-service/internal/pkg/dto/responses"
	"laundryroom-service/internal/pkg/exceptions"
	"laundryroom-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	UserRepository users.UserRepository
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(
	userMongoRepository users.UserRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
) AuthUsecase {
	return &authUsecase{
		UserRepository: userMongoRepository,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordDoNotMatch(nil)
	}

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	existingUser, err = uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUsernameAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Username:  request.Username,
		Email:     request.Email,
		Password:  hashedPassword,
		Apartment: request.Apartment,
		Name:      request.Name,
		Bookings:  map[string]int{},
	}
	user.SetCreatedAtUpdatedAt()

	userID, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.SessionExpiryTimeInHours) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		ExpiresAt: time.Now().Add(sessionExpiry),
	}

	err = uc.SessionService.CreateSession(ctx, session, sessionExpiry)
	if err != nil {
		return nil, err
	}

	tokenString, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, sessionExpiry)
	if err != nil {
		return nil, err
	}

	return &responses.LoginUser{
		TokenType:   "Bearer",
		AccessToken: tokenString,
		ExpiresAt:   session.ExpiresAt,
	}, nil
}

func (uc *authUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	return uc.SessionService.DeleteSession(ctx, sessionID)
}

func (uc *authUsecase) GetProfile(ctx context.Context, username string) (*responses.UserProfile, error) {
	user, err := uc.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	return &responses.UserProfile{
		Username:  user.Username,
		Email:     user.Email,
		Apartment: user.Apartment,
		Name:      user.Name,
	}, nil
}
