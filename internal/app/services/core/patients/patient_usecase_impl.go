package patients

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
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	Log               *zap.Logger
}

func NewPatientUsecase(patientRepository contracts.PatientRepository, logger *zap.Logger) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			Log:               logger,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, hospitalID string, request *requests.CreatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	hospitalObjectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	dateOfBirth, err := time.Parse("2006-01-02", request.DateOfBirth)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient := &models.Patient{
		HospitalID:  hospitalObjectID,
		FullName:    request.FullName,
		DateOfBirth: dateOfBirth,
		Gender:      request.Gender,
		PhoneNumber: request.PhoneNumber,
		Email:       request.Email,
	}
	patient.SetCreatedAtUpdatedAt()

	patientID, err := uc.PatientRepository.CreatePatient(ctx, patient)
	if err != nil {
		return nil, err
	}
	patient.ID, _ = primitive.ObjectIDFromHex(patientID)

	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) GetPatientByID(ctx context.Context, hospitalID, patientID string) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatientByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findOwnedPatient(ctx, hospitalID, patientID)
	if err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) GetPatients(ctx context.Context, hospitalID string, page, pageSize int) ([]responses.Patient, int, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.GetPatients called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingHospitalIDKey, hospitalID),
	)

	patients, total, err := uc.PatientRepository.FindPatientsByHospitalID(ctx, hospitalID, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Patient, 0, len(patients))
	for i := range patients {
		result = append(result, *buildPatientResponse(&patients[i]))
	}
	return result, total, nil
}

func (uc *patientUsecase) UpdatePatient(ctx context.Context, hospitalID, patientID string, request *requests.UpdatePatient) (*responses.Patient, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.UpdatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.findOwnedPatient(ctx, hospitalID, patientID)
	if err != nil {
		return nil, err
	}

	if request.FullName != "" {
		patient.FullName = request.FullName
	}
	if request.DateOfBirth != "" {
		dateOfBirth, err := time.Parse("2006-01-02", request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		patient.DateOfBirth = dateOfBirth
	}
	if request.Gender != "" {
		patient.Gender = request.Gender
	}
	if request.PhoneNumber != "" {
		patient.PhoneNumber = request.PhoneNumber
	}
	if request.Email != "" {
		patient.Email = request.Email
	}
	patient.SetUpdatedAt()

	if err := uc.PatientRepository.UpdatePatient(ctx, patient); err != nil {
		return nil, err
	}
	return buildPatientResponse(patient), nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, hospitalID, patientID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("patientUsecase.DeletePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	if _, err := uc.findOwnedPatient(ctx, hospitalID, patientID); err != nil {
		return err
	}
	return uc.PatientRepository.DeletePatient(ctx, patientID)
}

func (uc *patientUsecase) findOwnedPatient(ctx context.Context, hospitalID, patientID string) (*models.Patient, error) {
	patient, err := uc.PatientRepository.FindPatientByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil || patient.HospitalID.Hex() != hospitalID {
		return nil, exceptions.ErrPatientNotExist(nil)
	}
	return patient, nil
}

func buildPatientResponse(patient *models.Patient) *responses.Patient {
	return &responses.Patient{
		PatientID:   patient.ID.Hex(),
		FullName:    patient.FullName,
		DateOfBirth: patient.DateOfBirth.Format("2006-01-02"),
		Gender:      patient.Gender,
		PhoneNumber: patient.PhoneNumber,
		Email:       patient.Email,
	}
}
