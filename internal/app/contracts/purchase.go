package contracts

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"time"
)

type PurchaseUsecase interface {
	CreatePurchase(ctx context.Context, hospitalID string, request *requests.CreatePurchase) (*responses.Purchase, error)
	GetPurchaseByID(ctx context.Context, hospitalID, purchaseID string) (*responses.Purchase, error)
	GetPurchases(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Purchase, int, error)
	GetPurchasesByPatientID(ctx context.Context, hospitalID, patientID string) ([]responses.Purchase, error)
	GetPurchaseTotals(ctx context.Context, hospitalID string) ([]responses.PurchaseTotal, error)
}

type PurchaseRepository interface {
	CreatePurchase(ctx context.Context, purchase *models.Purchase) (string, error)
	FindPurchaseByID(ctx context.Context, purchaseID string) (*models.Purchase, error)
	FindPurchasesByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Purchase, int, error)
	FindPurchasesByPatientID(ctx context.Context, patientID string) ([]models.Purchase, error)
	FindPurchasesCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Purchase, error)
	AggregateQuantityByMedication(ctx context.Context, hospitalID string) (map[string]int, error)
}
