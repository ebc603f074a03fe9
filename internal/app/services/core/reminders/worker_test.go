package reminders

import (
	"context"
	"healthtrack-service/internal/app/config"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *MockPatientRepository) FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindPatientsByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Patient, int, error) {
	args := m.Called(ctx, hospitalID, page, pageSize)
	return args.Get(0).([]models.Patient), args.Int(1), args.Error(2)
}

func (m *MockPatientRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) DeletePatient(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockMedicationRepository struct {
	mock.Mock
}

func (m *MockMedicationRepository) CreateMedication(ctx context.Context, medication *models.Medication) (string, error) {
	args := m.Called(ctx, medication)
	return args.String(0), args.Error(1)
}

func (m *MockMedicationRepository) FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	args := m.Called(ctx, medicationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindMedicationsByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Medication, int, error) {
	args := m.Called(ctx, hospitalID, page, pageSize)
	return args.Get(0).([]models.Medication), args.Int(1), args.Error(2)
}

func (m *MockMedicationRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	args := m.Called(ctx, medication)
	return args.Error(0)
}

func (m *MockMedicationRepository) DeleteMedication(ctx context.Context, medicationID string) error {
	args := m.Called(ctx, medicationID)
	return args.Error(0)
}

func (m *MockMedicationRepository) SearchMedications(ctx context.Context, hospitalID, query string) ([]models.Medication, error) {
	args := m.Called(ctx, hospitalID, query)
	return args.Get(0).([]models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindMedicationsBelowStock(ctx context.Context, hospitalID string, threshold int) ([]models.Medication, error) {
	args := m.Called(ctx, hospitalID, threshold)
	return args.Get(0).([]models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) FindExpiredMedications(ctx context.Context, hospitalID string) ([]models.Medication, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).([]models.Medication), args.Error(1)
}

func (m *MockMedicationRepository) CountMedicationsByHospitalID(ctx context.Context, hospitalID string) (int, error) {
	args := m.Called(ctx, hospitalID)
	return args.Int(0), args.Error(1)
}

func (m *MockMedicationRepository) DecrementStock(ctx context.Context, medicationID string, quantity int) error {
	args := m.Called(ctx, medicationID, quantity)
	return args.Error(0)
}

func (m *MockMedicationRepository) IncrementStock(ctx context.Context, medicationID string, quantity int) error {
	args := m.Called(ctx, medicationID, quantity)
	return args.Error(0)
}

type MockSMSService struct {
	mock.Mock
}

func (m *MockSMSService) SendSMS(ctx context.Context, payload *requests.SMSPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newWorkerFixture(redisRepo *MockRedisRepository, patientRepo *MockPatientRepository, medicationRepo *MockMedicationRepository, smsService *MockSMSService) *Worker {
	cfg := &config.InternalConfig{
		Worker: config.Worker{
			ReminderCronSpec:        "@hourly",
			ReminderWindowInMinutes: 60,
			ReminderLookbackInDays:  90,
		},
	}
	return NewWorker(zap.NewNop(), cfg, nil, redisRepo, nil, patientRepo, medicationRepo, smsService)
}

func TestWorker_DispatchPurchase_SendsSMSForDueEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	window := time.Hour

	patientID := primitive.NewObjectID()
	medicationID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()

	// Anchored at now, a once-per-day course puts exactly the first event
	// inside [now, now+window).
	startTime := now
	purchase := &models.Purchase{
		ID:        purchaseID,
		PatientID: patientID,
		Items: []models.PurchaseItem{
			{MedicationID: medicationID, Quantity: 10, StartTime: &startTime},
		},
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(&models.Patient{
		ID:          patientID,
		FullName:    "Jane Roe",
		PhoneNumber: "+628123456789",
	}, nil)

	medicationRepo := new(MockMedicationRepository)
	medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(&models.Medication{
		ID:              medicationID,
		DrugName:        "Amoxicillin",
		DoseDescription: "500mg after meals",
		Frequency:       models.DosingFrequency{Value: 1, Unit: constvars.FrequencyUnitDays},
		Duration:        models.DosingDuration{Value: 5, Unit: constvars.DurationUnitDays},
	}, nil)

	redisRepo := new(MockRedisRepository)
	redisRepo.On("TrySetNX", ctx, mock.AnythingOfType("string"), 1, 2*window).Return(true, nil).Once()

	smsService := new(MockSMSService)
	smsService.On("SendSMS", ctx, mock.AnythingOfType("*requests.SMSPayload")).Return(nil).Once()

	worker := newWorkerFixture(redisRepo, patientRepo, medicationRepo, smsService)
	worker.dispatchPurchase(ctx, purchase, now, window)

	redisRepo.AssertExpectations(t)
	smsService.AssertExpectations(t)
}

func TestWorker_DispatchPurchase_DedupeSuppressesResend(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	window := time.Hour

	patientID := primitive.NewObjectID()
	medicationID := primitive.NewObjectID()
	startTime := now
	purchase := &models.Purchase{
		ID:        primitive.NewObjectID(),
		PatientID: patientID,
		Items: []models.PurchaseItem{
			{MedicationID: medicationID, Quantity: 10, StartTime: &startTime},
		},
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(&models.Patient{
		ID:          patientID,
		FullName:    "Jane Roe",
		PhoneNumber: "+628123456789",
	}, nil)

	medicationRepo := new(MockMedicationRepository)
	medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(&models.Medication{
		ID:              medicationID,
		DrugName:        "Amoxicillin",
		DoseDescription: "500mg after meals",
		Frequency:       models.DosingFrequency{Value: 1, Unit: constvars.FrequencyUnitDays},
		Duration:        models.DosingDuration{Value: 5, Unit: constvars.DurationUnitDays},
	}, nil)

	redisRepo := new(MockRedisRepository)
	redisRepo.On("TrySetNX", ctx, mock.AnythingOfType("string"), 1, 2*window).Return(false, nil)

	smsService := new(MockSMSService)

	worker := newWorkerFixture(redisRepo, patientRepo, medicationRepo, smsService)
	worker.dispatchPurchase(ctx, purchase, now, window)

	smsService.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
}

func TestWorker_DispatchPurchase_SkipsPatientWithoutPhone(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	patientID := primitive.NewObjectID()
	purchase := &models.Purchase{
		ID:        primitive.NewObjectID(),
		PatientID: patientID,
		Items: []models.PurchaseItem{
			{MedicationID: primitive.NewObjectID(), Quantity: 10},
		},
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(&models.Patient{
		ID:       patientID,
		FullName: "Jane Roe",
	}, nil)

	medicationRepo := new(MockMedicationRepository)
	smsService := new(MockSMSService)
	redisRepo := new(MockRedisRepository)

	worker := newWorkerFixture(redisRepo, patientRepo, medicationRepo, smsService)
	worker.dispatchPurchase(ctx, purchase, now, time.Hour)

	medicationRepo.AssertNotCalled(t, "FindMedicationByID", mock.Anything, mock.Anything)
	smsService.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
}

func TestWorker_DispatchPurchase_IgnoresEventsOutsideWindow(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	window := time.Hour

	patientID := primitive.NewObjectID()
	medicationID := primitive.NewObjectID()

	// The whole course starts two hours past the window.
	startTime := now.Add(3 * time.Hour)
	purchase := &models.Purchase{
		ID:        primitive.NewObjectID(),
		PatientID: patientID,
		Items: []models.PurchaseItem{
			{MedicationID: medicationID, Quantity: 10, StartTime: &startTime},
		},
	}

	patientRepo := new(MockPatientRepository)
	patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(&models.Patient{
		ID:          patientID,
		FullName:    "Jane Roe",
		PhoneNumber: "+628123456789",
	}, nil)

	medicationRepo := new(MockMedicationRepository)
	medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(&models.Medication{
		ID:              medicationID,
		DrugName:        "Amoxicillin",
		DoseDescription: "500mg after meals",
		Frequency:       models.DosingFrequency{Value: 1, Unit: constvars.FrequencyUnitDays},
		Duration:        models.DosingDuration{Value: 5, Unit: constvars.DurationUnitDays},
	}, nil)

	redisRepo := new(MockRedisRepository)
	smsService := new(MockSMSService)

	worker := newWorkerFixture(redisRepo, patientRepo, medicationRepo, smsService)
	worker.dispatchPurchase(ctx, purchase, now, window)

	redisRepo.AssertNotCalled(t, "TrySetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	smsService.AssertNotCalled(t, "SendSMS", mock.Anything, mock.Anything)
}

func TestWorker_StartStop(t *testing.T) {
	worker := newWorkerFixture(new(MockRedisRepository), new(MockPatientRepository), new(MockMedicationRepository), new(MockSMSService))
	worker.Start(context.Background())
	require.NotNil(t, worker.cron)
	worker.Stop()
}
