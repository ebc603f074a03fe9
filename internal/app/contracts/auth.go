package contracts

import (
	"context"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.RegisterHospital) (*responses.RegisterHospital, error)
	Login(ctx context.Context, request *requests.LoginHospital) (*responses.LoginHospital, error)
	Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error)
	Logout(ctx context.Context, sessionID string) error
	ResolveSession(ctx context.Context, sessionID string) (string, error)
}
