package hospitals

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/models"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/exceptions"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	hospitalMongoRepositoryInstance contracts.HospitalRepository
	onceHospitalMongoRepository     sync.Once
)

type HospitalMongoRepository struct {
	Collection *mongo.Collection
}

func NewHospitalMongoRepository(db *mongo.Client, dbName string) contracts.HospitalRepository {
	onceHospitalMongoRepository.Do(func() {
		hospitalMongoRepositoryInstance = &HospitalMongoRepository{
			Collection: db.Database(dbName).Collection(constvars.MongoCollectionHospitals),
		}
	})
	return hospitalMongoRepositoryInstance
}

func (repo *HospitalMongoRepository) CreateHospital(ctx context.Context, hospital *models.Hospital) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, hospital)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *HospitalMongoRepository) FindHospitalByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	objectID, err := primitive.ObjectIDFromHex(hospitalID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var hospital models.Hospital
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (repo *HospitalMongoRepository) FindHospitalByEmail(ctx context.Context, email string) (*models.Hospital, error) {
	var hospital models.Hospital
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&hospital)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &hospital, nil
}

func (repo *HospitalMongoRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	filter := bson.M{"_id": hospital.ID}
	update := bson.M{"$set": hospital}
	_, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
