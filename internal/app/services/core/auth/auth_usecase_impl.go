package auth

import (
	"context"
	"fmt"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

type authUsecase struct {
	HospitalRepository contracts.HospitalRepository
	RedisRepository    contracts.RedisRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

func NewAuthUsecase(
	hospitalRepository contracts.HospitalRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			HospitalRepository: hospitalRepository,
			RedisRepository:    redisRepository,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.RegisterHospital) (*responses.RegisterHospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request.Password != request.RetypePassword {
		return nil, exceptions.ErrPasswordsDoNotMatch(nil)
	}

	existing, err := uc.HospitalRepository.FindHospitalByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	hospital := &models.Hospital{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Address:  request.Address,
		Phone:    request.Phone,
	}
	hospital.SetCreatedAtUpdatedAt()

	hospitalID, err := uc.HospitalRepository.CreateHospital(ctx, hospital)
	if err != nil {
		return nil, err
	}

	return &responses.RegisterHospital{
		HospitalID: hospitalID,
		Name:       hospital.Name,
		Email:      hospital.Email,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.LoginHospital) (*responses.LoginHospital, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	hospital, err := uc.HospitalRepository.FindHospitalByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}
	if !utils.CheckPasswordHash(request.Password, hospital.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	sessionExpiry := time.Duration(uc.InternalConfig.App.SessionExpiredTimeInHours) * time.Hour
	session := &models.Session{
		SessionID:    uuid.NewString(),
		HospitalID:   hospital.ID.Hex(),
		Email:        hospital.Email,
		HospitalName: hospital.Name,
		ExpiresAt:    time.Now().Add(sessionExpiry),
	}

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, session.SessionID)
	if err := uc.RedisRepository.Set(ctx, sessionKey, session, sessionExpiry); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.AccessExpTimeInHours)
	if err != nil {
		return nil, err
	}
	refreshToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.RefreshExpTimeInHours)
	if err != nil {
		return nil, err
	}

	return &responses.LoginHospital{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *authUsecase) Refresh(ctx context.Context, request *requests.RefreshToken) (*responses.RefreshToken, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := utils.ParseSessionJWT(request.RefreshToken, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	if _, err := uc.ResolveSession(ctx, sessionID); err != nil {
		return nil, err
	}

	accessToken, err := utils.GenerateSessionJWT(sessionID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.AccessExpTimeInHours)
	if err != nil {
		return nil, err
	}

	return &responses.RefreshToken{AccessToken: accessToken}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, sessionKey)
}

// ResolveSession returns the raw session JSON for a live session ID.
func (uc *authUsecase) ResolveSession(ctx context.Context, sessionID string) (string, error) {
	sessionKey := fmt.Sprintf(constvars.RedisKeySessionFormat, sessionID)
	sessionData, err := uc.RedisRepository.Get(ctx, sessionKey)
	if err != nil {
		return "", err
	}
	if sessionData == "" {
		return "", exceptions.ErrSessionInvalid(nil)
	}
	return sessionData, nil
}
