package auth

import (
	"context"
	"laundryroom-service/internal/pkg/dto/requests"
	"laundryroom-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error)
	LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error)
	LogoutUser(ctx context.Context, sessionID string) error
	GetProfile(ctx context.Context, username string) (*responses.UserProfile, error)
}
