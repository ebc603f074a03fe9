package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type HospitalUsecase interface {
	GetProfile(ctx context.Context, hospitalID string) (*responses.HospitalProfile, error)
	UpdateProfile(ctx context.Context, hospitalID string, request *requests.UpdateHospitalProfile) (*responses.HospitalProfile, error)
}

type HospitalRepository interface {
	CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error)
	FindHospitalByID(ctx context.Context, hospitalID string) (*models.Hospital, error)
	FindHospitalByEmail(ctx context.Context, email string) (*models.Hospital, error)
	UpdateHospital(ctx context.Context, hospital *models.Hospital) error
}
