package hospitals

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

var (
	hospitalUsecaseInstance contracts.HospitalUsecase
	onceHospitalUsecase     sync.Once
)

type hospitalUsecase struct {
	HospitalRepository contracts.HospitalRepository
	Log                *zap.Logger
}

func NewHospitalUsecase(hospitalRepository contracts.HospitalRepository, logger *zap.Logger) contracts.HospitalUsecase {
	onceHospitalUsecase.Do(func() {
		hospitalUsecaseInstance = &hospitalUsecase{
			HospitalRepository: hospitalRepository,
			Log:                logger,
		}
	})
	return hospitalUsecaseInstance
}

func (uc *hospitalUsecase) GetProfile(ctx context.Context, hospitalID string) (*responses.HospitalProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	hospital, err := uc.HospitalRepository.FindHospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}

	return buildHospitalProfileResponse(hospital), nil
}

func (uc *hospitalUsecase) UpdateProfile(ctx context.Context, hospitalID string, request *requests.UpdateHospitalProfile) (*responses.HospitalProfile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("hospitalUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	hospital, err := uc.HospitalRepository.FindHospitalByID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	if hospital == nil {
		return nil, exceptions.ErrHospitalNotExist(nil)
	}

	if request.Name != "" {
		hospital.Name = request.Name
	}
	if request.Address != "" {
		hospital.Address = request.Address
	}
	if request.Phone != "" {
		hospital.Phone = request.Phone
	}
	if request.OperatingHours != "" {
		hospital.OperatingHours = request.OperatingHours
	}
	hospital.SetUpdatedAt()

	if err := uc.HospitalRepository.UpdateHospital(ctx, hospital); err != nil {
		return nil, err
	}

	return buildHospitalProfileResponse(hospital), nil
}

func buildHospitalProfileResponse(hospital *models.Hospital) *responses.HospitalProfile {
	return &responses.HospitalProfile{
		HospitalID:     hospital.ID.Hex(),
		Name:           hospital.Name,
		Email:          hospital.Email,
		Address:        hospital.Address,
		Phone:          hospital.Phone,
		OperatingHours: hospital.OperatingHours,
	}
}
