package purchases

import (
	"context"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) CreatePurchase(ctx context.Context, purchase *models.Purchase) (string, error) {
	args := m.Called(ctx, purchase)
	return args.String(0), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	args := m.Called(ctx, purchaseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchasesByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Purchase, int, error) {
	args := m.Called(ctx, hospitalID, page, pageSize)
	return args.Get(0).([]models.Purchase), args.Int(1), args.Error(2)
}

func (m *MockPurchaseRepository) FindPurchasesByPatientID(ctx context.Context, patientID string) ([]models.Purchase, error) {
	args := m.Called(ctx, patientID)
	return args.Get(0).([]models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) FindPurchasesCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Purchase, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) AggregateQuantityByMedication(ctx context.Context, hospitalID string) (map[string]int, error) {
	args := m.Called(ctx, hospitalID)
	return args.Get(0).(map[string]int), args.Error(1)
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

func newPurchaseUsecaseFixture(purchaseRepo *MockPurchaseRepository, patientRepo *MockPatientRepository, medicationRepo *MockMedicationRepository) *purchaseUsecase {
	return &purchaseUsecase{
		PurchaseRepository:   purchaseRepo,
		PatientRepository:    patientRepo,
		MedicationRepository: medicationRepo,
		Log:                  zap.NewNop(),
	}
}

func TestPurchaseUsecase_CreatePurchase(t *testing.T) {
	ctx := context.Background()
	hospitalID := primitive.NewObjectID()
	patientID := primitive.NewObjectID()
	medicationID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()

	patient := &models.Patient{ID: patientID, HospitalID: hospitalID, FullName: "Jane Roe"}
	medication := &models.Medication{ID: medicationID, HospitalID: hospitalID, DrugName: "Amoxicillin"}

	t.Run("creates purchase and decrements stock", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRepository)
		patientRepo := new(MockPatientRepository)
		medicationRepo := new(MockMedicationRepository)

		patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(patient, nil)
		medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(medication, nil)
		medicationRepo.On("DecrementStock", ctx, medicationID.Hex(), 20).Return(nil)
		purchaseRepo.On("CreatePurchase", ctx, mock.AnythingOfType("*models.Purchase")).Return(purchaseID.Hex(), nil)

		uc := newPurchaseUsecaseFixture(purchaseRepo, patientRepo, medicationRepo)
		result, err := uc.CreatePurchase(ctx, hospitalID.Hex(), &requests.CreatePurchase{
			PatientID: patientID.Hex(),
			Items: []requests.PurchaseItem{
				{MedicationID: medicationID.Hex(), Quantity: 20, StartTime: "2026-03-01T08:00:00Z"},
			},
		})

		require.NoError(t, err)
		require.Len(t, result.Items, 1)
		assert.Equal(t, purchaseID.Hex(), result.PurchaseID)
		assert.Equal(t, "Amoxicillin", result.Items[0].DrugName)
		assert.Equal(t, "2026-03-01T08:00:00Z", result.Items[0].StartTime)
		medicationRepo.AssertExpectations(t)
		purchaseRepo.AssertExpectations(t)
	})

	t.Run("rejects patient of another hospital", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRepository)
		patientRepo := new(MockPatientRepository)
		medicationRepo := new(MockMedicationRepository)

		foreignPatient := &models.Patient{ID: patientID, HospitalID: primitive.NewObjectID()}
		patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(foreignPatient, nil)

		uc := newPurchaseUsecaseFixture(purchaseRepo, patientRepo, medicationRepo)
		result, err := uc.CreatePurchase(ctx, hospitalID.Hex(), &requests.CreatePurchase{
			PatientID: patientID.Hex(),
			Items:     []requests.PurchaseItem{{MedicationID: medicationID.Hex(), Quantity: 1}},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		purchaseRepo.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
	})

	t.Run("insufficient stock aborts the purchase", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRepository)
		patientRepo := new(MockPatientRepository)
		medicationRepo := new(MockMedicationRepository)

		patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(patient, nil)
		medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(medication, nil)
		medicationRepo.On("DecrementStock", ctx, medicationID.Hex(), 500).Return(exceptions.ErrInsufficientStock(nil))

		uc := newPurchaseUsecaseFixture(purchaseRepo, patientRepo, medicationRepo)
		result, err := uc.CreatePurchase(ctx, hospitalID.Hex(), &requests.CreatePurchase{
			PatientID: patientID.Hex(),
			Items:     []requests.PurchaseItem{{MedicationID: medicationID.Hex(), Quantity: 500}},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		purchaseRepo.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
	})

	t.Run("failed line restores stock already taken", func(t *testing.T) {
		purchaseRepo := new(MockPurchaseRepository)
		patientRepo := new(MockPatientRepository)
		medicationRepo := new(MockMedicationRepository)

		secondMedicationID := primitive.NewObjectID()
		secondMedication := &models.Medication{ID: secondMedicationID, HospitalID: hospitalID, DrugName: "Ibuprofen"}

		patientRepo.On("FindPatientByID", ctx, patientID.Hex()).Return(patient, nil)
		medicationRepo.On("FindMedicationByID", ctx, medicationID.Hex()).Return(medication, nil)
		medicationRepo.On("FindMedicationByID", ctx, secondMedicationID.Hex()).Return(secondMedication, nil)
		medicationRepo.On("DecrementStock", ctx, medicationID.Hex(), 10).Return(nil)
		medicationRepo.On("DecrementStock", ctx, secondMedicationID.Hex(), 500).Return(exceptions.ErrInsufficientStock(nil))
		medicationRepo.On("IncrementStock", ctx, medicationID.Hex(), 10).Return(nil)

		uc := newPurchaseUsecaseFixture(purchaseRepo, patientRepo, medicationRepo)
		result, err := uc.CreatePurchase(ctx, hospitalID.Hex(), &requests.CreatePurchase{
			PatientID: patientID.Hex(),
			Items: []requests.PurchaseItem{
				{MedicationID: medicationID.Hex(), Quantity: 10},
				{MedicationID: secondMedicationID.Hex(), Quantity: 500},
			},
		})

		assert.Nil(t, result)
		require.Error(t, err)
		medicationRepo.AssertCalled(t, "IncrementStock", ctx, medicationID.Hex(), 10)
		medicationRepo.AssertNotCalled(t, "IncrementStock", ctx, secondMedicationID.Hex(), mock.Anything)
		purchaseRepo.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
	})
}

func TestPurchaseUsecase_GetPurchaseByID_OwnershipCheck(t *testing.T) {
	ctx := context.Background()
	hospitalID := primitive.NewObjectID()
	purchaseID := primitive.NewObjectID()

	purchaseRepo := new(MockPurchaseRepository)
	patientRepo := new(MockPatientRepository)
	medicationRepo := new(MockMedicationRepository)

	foreignPurchase := &models.Purchase{ID: purchaseID, HospitalID: primitive.NewObjectID()}
	purchaseRepo.On("FindPurchaseByID", ctx, purchaseID.Hex()).Return(foreignPurchase, nil)

	uc := newPurchaseUsecaseFixture(purchaseRepo, patientRepo, medicationRepo)
	result, err := uc.GetPurchaseByID(ctx, hospitalID.Hex(), purchaseID.Hex())

	assert.Nil(t, result)
	require.Error(t, err)
}
