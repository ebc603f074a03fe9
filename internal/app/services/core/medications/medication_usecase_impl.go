package medications

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
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	Log                  *zap.Logger
}

func NewMedicationUsecase(medicationRepository contracts.MedicationRepository, logger *zap.Logger) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			MedicationRepository: medicationRepository,
			Log:                  logger,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) CreateMedication(ctx context.Context, hospitalID string, request *requests.CreateMedication) (*responses.Medication, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.CreateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	hospitalObjectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	medication := &models.Medication{
		HospitalID:      hospitalObjectID,
		DrugName:        request.DrugName,
		DoseDescription: request.DoseDescription,
		Frequency: models.DosingFrequency{
			Value: request.Frequency.Value,
			Unit:  request.Frequency.Unit,
		},
		Duration: models.DosingDuration{
			Value: request.Duration.Value,
			Unit:  request.Duration.Unit,
		},
		QuantityInStock: request.QuantityInStock,
		Price:           request.Price,
		Barcode:         request.Barcode,
		Notes:           request.Notes,
	}
	if request.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", request.ExpiryDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		medication.ExpiryDate = &expiryDate
	}
	medication.SetCreatedAtUpdatedAt()

	medicationID, err := uc.MedicationRepository.CreateMedication(ctx, medication)
	if err != nil {
		return nil, err
	}
	medication.ID, _ = primitive.ObjectIDFromHex(medicationID)

	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) GetMedicationByID(ctx context.Context, hospitalID, medicationID string) (*responses.Medication, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.GetMedicationByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	medication, err := uc.findOwnedMedication(ctx, hospitalID, medicationID)
	if err != nil {
		return nil, err
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) GetMedications(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Medication, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.GetMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	medications, total, err := uc.MedicationRepository.FindMedicationsByHospitalID(ctx, hospitalID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildMedicationListResponse(medications), total, nil
}

func (uc *medicationUsecase) UpdateMedication(ctx context.Context, hospitalID, medicationID string, request *requests.UpdateMedication) (*responses.Medication, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.UpdateMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	medication, err := uc.findOwnedMedication(ctx, hospitalID, medicationID)
	if err != nil {
		return nil, err
	}

	if request.DrugName != "" {
		medication.DrugName = request.DrugName
	}
	if request.DoseDescription != "" {
		medication.DoseDescription = request.DoseDescription
	}
	if request.Frequency != nil {
		medication.Frequency = models.DosingFrequency{
			Value: request.Frequency.Value,
			Unit:  request.Frequency.Unit,
		}
	}
	if request.Duration != nil {
		medication.Duration = models.DosingDuration{
			Value: request.Duration.Value,
			Unit:  request.Duration.Unit,
		}
	}
	if request.QuantityInStock != nil {
		medication.QuantityInStock = *request.QuantityInStock
	}
	if request.Price != nil {
		medication.Price = *request.Price
	}
	if request.ExpiryDate != "" {
		expiryDate, err := time.Parse("2006-01-02", request.ExpiryDate)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		medication.ExpiryDate = &expiryDate
	}
	if request.Barcode != "" {
		medication.Barcode = request.Barcode
	}
	if request.Notes != "" {
		medication.Notes = request.Notes
	}
	medication.SetUpdatedAt()

	if err := uc.MedicationRepository.UpdateMedication(ctx, medication); err != nil {
		return nil, err
	}
	return buildMedicationResponse(medication), nil
}

func (uc *medicationUsecase) DeleteMedication(ctx context.Context, hospitalID, medicationID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.DeleteMedication called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicationIDKey, medicationID),
	)

	if _, err := uc.findOwnedMedication(ctx, hospitalID, medicationID); err != nil {
		return err
	}
	return uc.MedicationRepository.DeleteMedication(ctx, medicationID)
}

func (uc *medicationUsecase) SearchMedications(ctx context.Context, hospitalID, query string) ([]responses.Medication, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.SearchMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, query),
	)

	medications, err := uc.MedicationRepository.SearchMedications(ctx, hospitalID, query)
	if err != nil {
		return nil, err
	}
	return buildMedicationListResponse(medications), nil
}

func (uc *medicationUsecase) GetLowStockMedications(ctx context.Context, hospitalID string, threshold int) ([]responses.Medication, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.GetLowStockMedications called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	if threshold <= 0 {
		threshold = constvars.DefaultLowStockThreshold
	}
	medications, err := uc.MedicationRepository.FindMedicationsBelowStock(ctx, hospitalID, threshold)
	if err != nil {
		return nil, err
	}
	return buildMedicationListResponse(medications), nil
}

func (uc *medicationUsecase) GetInventoryReport(ctx context.Context, hospitalID string, threshold int) (*responses.InventoryReport, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("medicationUsecase.GetInventoryReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	if threshold <= 0 {
		threshold = constvars.DefaultLowStockThreshold
	}

	total, err := uc.MedicationRepository.CountMedicationsByHospitalID(ctx, hospitalID)
	if err != nil {
		return nil, err
	}
	lowStock, err := uc.MedicationRepository.FindMedicationsBelowStock(ctx, hospitalID, threshold)
	if err != nil {
		return nil, err
	}
	expired, err := uc.MedicationRepository.FindExpiredMedications(ctx, hospitalID)
	if err != nil {
		return nil, err
	}

	return &responses.InventoryReport{
		TotalMedications: total,
		LowStock:         buildMedicationListResponse(lowStock),
		Expired:          buildMedicationListResponse(expired),
	}, nil
}

func (uc *medicationUsecase) findOwnedMedication(ctx context.Context, hospitalID, medicationID string) (*models.Medication, error) {
	medication, err := uc.MedicationRepository.FindMedicationByID(ctx, medicationID)
	if err != nil {
		return nil, err
	}
	if medication == nil || medication.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrMedicationNotExist(nil)
	}
	return medication, nil
}

func buildMedicationResponse(medication *models.Medication) *responses.Medication {
	response := &responses.Medication{
		MedicationID:    medication.ID.Hex(),
		DrugName:        medication.DrugName,
		DoseDescription: medication.DoseDescription,
		Frequency: responses.DosingFrequency{
			Value: medication.Frequency.Value,
			Unit:  medication.Frequency.Unit,
		},
		Duration: responses.DosingDuration{
			Value: medication.Duration.Value,
			Unit:  medication.Duration.Unit,
		},
		QuantityInStock: medication.QuantityInStock,
		Price:           medication.Price,
		Barcode:         medication.Barcode,
		Notes:           medication.Notes,
	}
	if medication.ExpiryDate != nil {
		response.ExpiryDate = medication.ExpiryDate.Format("2006-01-02")
	}
	return response
}

func buildMedicationListResponse(medications []models.Medication) []responses.Medication {
	result := make([]responses.Medication, 0, len(medications))
	for i := range medications {
		result = append(result, *buildMedicationResponse(&medications[i]))
	}
	return result
}
