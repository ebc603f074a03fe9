package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type MedicationUsecase interface {
	CreateMedication(ctx context.Context, hospitalID string, request *requests.CreateMedication) (*responses.Medication, error)
	GetMedicationByID(ctx context.Context, hospitalID, medicationID string) (*responses.Medication, error)
	GetMedications(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Medication, int, error)
	UpdateMedication(ctx context.Context, hospitalID, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error)
	DeleteMedication(ctx context.Context, hospitalID, medicationID string) error
	SearchMedications(ctx context.Context, hospitalID, query string) ([]responses.Medication, error)
	GetLowStockMedications(ctx context.Context, hospitalID string, threshold int) ([]responses.Medication, error)
	GetInventoryReport(ctx context.Context, hospitalID string, threshold int) (*responses.InventoryReport, error)
}

type MedicationRepository interface {
	CreateMedication(ctx context.Context, medication *models.Medication) (string, error)
	FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error)
	FindMedicationsByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Medication, int, error)
	UpdateMedication(ctx context.Context, medication *models.Medication) error
	DeleteMedication(ctx context.Context, medicationID string) error
	SearchMedications(ctx context.Context, hospitalID, query string) ([]models.Medication, error)
	FindMedicationsBelowStock(ctx context.Context, hospitalID string, threshold int) ([]models.Medication, error)
	FindExpiredMedications(ctx context.Context, hospitalID string) ([]models.Medication, error)
	CountMedicationsByHospitalID(ctx context.Context, hospitalID string) (int, error)
	DecrementStock(ctx context.Context, medicationID string, quantity int) error
	IncrementStock(ctx context.Context, medicationID string, quantity int) error
}
