package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, hospitalID string, request *requests.CreatePatient) (*responses.Patient, error)
	GetPatientByID(ctx context.Context, hospitalID, patientID string) (*responses.Patient, error)
	GetPatients(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Patient, int, error)
	UpdatePatient(ctx context.Context, hospitalID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error)
	DeletePatient(ctx context.Context, hospitalID, patientID string) error
}

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindPatientsByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Patient, int, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	DeletePatient(ctx context.Context, patientID string) error
}
