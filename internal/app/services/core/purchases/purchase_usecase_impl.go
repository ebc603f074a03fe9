package purchases

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
	"healthtrack-service/internal/pkg/exceptions"
	"healthtrack-service/internal/pkg/utils"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	purchaseUsecaseInstance contracts.PurchaseUsecase
	oncePurchaseUsecase     sync.Once
)

type purchaseUsecase struct {
	PurchaseRepository   contracts.PurchaseRepository
	PatientRepository    contracts.PatientRepository
	MedicationRepository contracts.MedicationRepository
	Log                  *zap.Logger
}

func NewPurchaseUsecase(
	purchaseRepository contracts.PurchaseRepository,
	patientRepository contracts.PatientRepository,
	medicationRepository contracts.MedicationRepository,
	logger *zap.Logger,
) contracts.PurchaseUsecase {
	oncePurchaseUsecase.Do(func() {
		purchaseUsecaseInstance = &purchaseUsecase{
			PurchaseRepository:   purchaseRepository,
			PatientRepository:    patientRepository,
			MedicationRepository: medicationRepository,
			Log:                  logger,
		}
	})
	return purchaseUsecaseInstance
}

func (uc *purchaseUsecase) CreatePurchase(ctx context.Context, hospitalID string, request *requests.CreatePurchase) (*responses.Purchase, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("purchaseUsecase.CreatePurchase called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	hospitalObjectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	patient, err := uc.PatientRepository.FindPatientByID(ctx, request.PatientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	items := make([]models.PurchaseItem, 0, len(request.Items))
	drugNames := make(map[string]string, len(request.Items))
	for _, item := range request.Items {
		medication, err := uc.MedicationRepository.FindMedicationByID(ctx, item.MedicationID)
		if err != nil {
			return nil, err
		}
		if medication == nil || medication.HospitalID.Hex() != hospitalID {
			return nil, exceptions.ErrMedicationNotExist(nil)
		}
		drugNames[item.MedicationID] = medication.DrugName

		modelItem := models.PurchaseItem{
			MedicationID: medication.ID,
			Quantity:     item.Quantity,
		}
		if item.StartTime != "" {
			startTime, err := time.Parse(time.RFC3339, item.StartTime)
			if err != nil {
				return nil, exceptions.ErrInputValidation(err)
			}
			modelItem.StartTime = &startTime
		}
		items = append(items, modelItem)
	}

	// Stock is decremented line by line; a failing line aborts the purchase
	// before the document is written, and the lines already decremented are
	// compensated so no stock is lost without a recorded purchase.
	for i, item := range items {
		if err := uc.MedicationRepository.DecrementStock(ctx, item.MedicationID.Hex(), item.Quantity); err != nil {
			for j := i - 1; j >= 0; j-- {
				if rollbackErr := uc.MedicationRepository.IncrementStock(ctx, items[j].MedicationID.Hex(), items[j].Quantity); rollbackErr != nil {
					uc.Log.Error("purchaseUsecase.CreatePurchase stock rollback failed",
						zap.String(constvars.LoggingRequestIDKey, requestID),
						zap.String(constvars.LoggingMedicationIDKey, items[j].MedicationID.Hex()),
						zap.Error(rollbackErr),
					)
				}
			}
			return nil, err
		}
	}

	purchase := &models.Purchase{
		HospitalID: hospitalObjectID,
		PatientID:  patient.ID,
		Items:      items,
	}
	purchase.SetCreatedAtUpdatedAt()

	purchaseID, err := uc.PurchaseRepository.CreatePurchase(ctx, purchase)
	if err != nil {
		return nil, err
	}
	purchase.ID, _ = primitive.ObjectIDFromHex(purchaseID)

	return uc.buildPurchaseResponseWithNames(purchase, drugNames), nil
}

func (uc *purchaseUsecase) GetPurchaseByID(ctx context.Context, hospitalID, purchaseID string) (*responses.Purchase, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("purchaseUsecase.GetPurchaseByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPurchaseIDKey, purchaseID),
	)

	purchase, err := uc.findOwnedPurchase(ctx, hospitalID, purchaseID)
	if err != nil {
		return nil, err
	}
	return uc.buildPurchaseResponse(ctx, purchase), nil
}

func (uc *purchaseUsecase) GetPurchases(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Purchase, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("purchaseUsecase.GetPurchases called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	purchases, total, err := uc.PurchaseRepository.FindPurchasesByHospitalID(ctx, hospitalID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Purchase, 0, len(purchases))
	for i := range purchases {
		result = append(result, *uc.buildPurchaseResponse(ctx, &purchases[i]))
	}
	return result, total, nil
}

func (uc *purchaseUsecase) GetPurchasesByPatientID(ctx context.Context, hospitalID, patientID string) ([]responses.Purchase, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("purchaseUsecase.GetPurchasesByPatientID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrPatientNotExist(nil)
	}

	purchases, err := uc.PurchaseRepository.FindPurchasesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Purchase, 0, len(purchases))
	for i := range purchases {
		result = append(result, *uc.buildPurchaseResponse(ctx, &purchases[i]))
	}
	return result, nil
}

func (uc *purchaseUsecase) GetPurchaseTotals(ctx context.Context, hospitalID string) ([]responses.PurchaseTotal, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("purchaseUsecase.GetPurchaseTotals called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	totals, err := uc.PurchaseRepository.AggregateQuantityByMedication(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.PurchaseTotal, 0, len(totals))
	for medicationID, quantity := range totals {
		total := responses.PurchaseTotal{
			MedicationID:  medicationID,
			TotalQuantity: quantity,
		}
		medication, err := uc.MedicationRepository.FindMedicationByID(ctx, medicationID)
		if err != nil {
			return nil, err
		}
		if medication != nil {
			total.DrugName = medication.DrugName
		}
		result = append(result, total)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].TotalQuantity > result[j].TotalQuantity
	})
	return result, nil
}

func (uc *purchaseUsecase) findOwnedPurchase(ctx context.Context, hospitalID, purchaseID string) (*models.Purchase, error) {
	purchase, err := uc.PurchaseRepository.FindPurchaseByID(ctx, purchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil || purchase.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrPurchaseNotExist(nil)
	}
	return purchase, nil
}

func (uc *purchaseUsecase) buildPurchaseResponse(ctx context.Context, purchase *models.Purchase) *responses.Purchase {
	drugNames := make(map[string]string, len(purchase.Items))
	for _, item := range purchase.Items {
		medicationID := item.MedicationID.Hex()
		if _, ok := drugNames[medicationID]; ok {
			continue
		}
		medication, err := uc.MedicationRepository.FindMedicationByID(ctx, medicationID)
		if err != nil || medication == nil {
			continue
		}
		drugNames[medicationID] = medication.DrugName
	}
	return uc.buildPurchaseResponseWithNames(purchase, drugNames)
}

func (uc *purchaseUsecase) buildPurchaseResponseWithNames(purchase *models.Purchase, drugNames map[string]string) *responses.Purchase {
	items := make([]responses.PurchaseItem, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		responseItem := responses.PurchaseItem{
			MedicationID: item.MedicationID.Hex(),
			DrugName:     drugNames[item.MedicationID.Hex()],
			Quantity:     item.Quantity,
		}
		if item.StartTime != nil {
			responseItem.StartTime = item.StartTime.Format(time.RFC3339)
		}
		items = append(items, responseItem)
	}

	return &responses.Purchase{
		PurchaseID: purchase.ID.Hex(),
		PatientID:  purchase.PatientID.Hex(),
		Items:      items,
		CreatedAt:  purchase.CreatedAt.Format(time.RFC3339),
	}
}
