package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Hospital struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Email          string             `bson:"email"`
	Password       string             `bson:"password"`
	Address        string             `bson:"address,omitempty"`
	Phone          string             `bson:"phone,omitempty"`
	OperatingHours string             `bson:"operatingHours,omitempty"`
	Verified       bool               `bson:"verified"`
	TimeModel      `bson:",inline"`
}
