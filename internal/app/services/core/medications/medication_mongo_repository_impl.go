package medications

import (
	"context"
	"fmt"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"regexp"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	medicationMongoRepositoryInstance contracts.MedicationRepository
	onceMedicationMongoRepository     sync.Once
)

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	onceMedicationMongoRepository.Do(func() {
		medicationMongoRepositoryInstance = &MedicationMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
		}
	})
	return medicationMongoRepositoryInstance
}

func (repo *MedicationMongoRepository) CreateMedication(ctx context.Context, medication *models.Medication) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, medication)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *MedicationMongoRepository) FindMedicationByID(ctx context.Context, medicationID string) (*models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var medication models.Medication
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID, "deletedAt": nil}).Decode(&medication)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &medication, nil
}

func (repo *MedicationMongoRepository) FindMedicationsByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Medication, int, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"hospitalId": objectID, "deletedAt": nil}
	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"drugName": 1})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, int(total), nil
}

func (repo *MedicationMongoRepository) UpdateMedication(ctx context.Context, medication *models.Medication) error {
	filter := bson.M{"_id": medication.ID}
	update := bson.M{"$set": medication}
	_, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *MedicationMongoRepository) DeleteMedication(ctx context.Context, medicationID string) error {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (repo *MedicationMongoRepository) SearchMedications(ctx context.Context, hospitalID, query string) ([]models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	filter := bson.M{
		"hospitalId": objectID,
		"deletedAt":  nil,
		"$or": []bson.M{
			{"drugName": pattern},
			{"barcode": query},
		},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (repo *MedicationMongoRepository) FindMedicationsBelowStock(ctx context.Context, hospitalID string, threshold int) ([]models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"hospitalId":      objectID,
		"deletedAt":       nil,
		"quantityInStock": bson.M{"$lt": threshold},
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"quantityInStock": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (repo *MedicationMongoRepository) FindExpiredMedications(ctx context.Context, hospitalID string) ([]models.Medication, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"hospitalId": objectID,
		"deletedAt":  nil,
		"expiryDate": bson.M{"$lt": time.Now()},
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetSort(bson.M{"expiryDate": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var medications []models.Medication
	if err := cursor.All(ctx, &medications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}

func (repo *MedicationMongoRepository) CountMedicationsByHospitalID(ctx context.Context, hospitalID string) (int, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	total, err := repo.Collection.CountDocuments(ctx, bson.M{"hospitalId": objectID, "deletedAt": nil})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return int(total), nil
}

// DecrementStock conditionally decrements so concurrent purchases can never
// drive stock negative.
func (repo *MedicationMongoRepository) DecrementStock(ctx context.Context, medicationID string, quantity int) error {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{
		"_id":             objectID,
		"quantityInStock": bson.M{"$gte": quantity},
	}
	update := bson.M{
		"$inc": bson.M{"quantityInStock": -quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrInsufficientStock(fmt.Errorf("medication %s", medicationID))
	}
	return nil
}

// IncrementStock returns quantity to stock, used to compensate decrements of
// a purchase that failed partway.
func (repo *MedicationMongoRepository) IncrementStock(ctx context.Context, medicationID string, quantity int) error {
	objectID, err := primitive.ObjectIDFromHex(medicationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$inc": bson.M{"quantityInStock": quantity},
		"$set": bson.M{"updatedAt": time.Now()},
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
