package purchases

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	purchaseMongoRepositoryInstance contracts.PurchaseRepository
	oncePurchaseMongoRepository     sync.Once
)

type PurchaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewPurchaseMongoRepository(db *mongo.Client, dbName string) contracts.PurchaseRepository {
	oncePurchaseMongoRepository.Do(func() {
		purchaseMongoRepositoryInstance = &PurchaseMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionPurchases),
		}
	})
	return purchaseMongoRepositoryInstance
}

func (repo *PurchaseMongoRepository) CreatePurchase(ctx context.Context, purchase *models.Purchase) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, purchase)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PurchaseMongoRepository) FindPurchaseByID(ctx context.Context, purchaseID string) (*models.Purchase, error) {
	objectID, err := primitive.ObjectIDFromHex(purchaseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var purchase models.Purchase
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&purchase)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &purchase, nil
}

func (repo *PurchaseMongoRepository) FindPurchasesByHospitalID(ctx context.Context, hospitalID string, page, pageSize int) ([]models.Purchase, int, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"hospitalId": objectID}
	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize)).
		SetSort(bson.M{"createdAt": -1})

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return purchases, int(total), nil
}

func (repo *PurchaseMongoRepository) FindPurchasesByPatientID(ctx context.Context, patientID string) ([]models.Purchase, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": objectID}, options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return purchases, nil
}

func (repo *PurchaseMongoRepository) FindPurchasesCreatedAfter(ctx context.Context, cutoff time.Time) ([]models.Purchase, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"createdAt": bson.M{"$gte": cutoff}})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return purchases, nil
}

// AggregateQuantityByMedication sums purchased quantity per medication for
// one hospital, keyed by medication ObjectID hex.
func (repo *PurchaseMongoRepository) AggregateQuantityByMedication(ctx context.Context, hospitalID string) (map[string]int, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"hospitalId": objectID}}},
		{{Key: "$unwind", Value: "$items"}},
		{{Key: "$group", Value: bson.M{
			"_id":           "$items.medicationId",
			"totalQuantity": bson.M{"$sum": "$items.quantity"},
		}}},
	}

	cursor, err := repo.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		MedicationID  primitive.ObjectID `bson:"_id"`
		TotalQuantity int                `bson:"totalQuantity"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	totals := make(map[string]int, len(rows))
	for _, row := range rows {
		totals[row.MedicationID.Hex()] = row.TotalQuantity
	}
	return totals, nil
}
