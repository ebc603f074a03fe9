package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Patient struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	HospitalID  primitive.ObjectID `bson:"hospitalId"`
	FullName    string             `bson:"fullName"`
	DateOfBirth time.Time          `bson:"dateOfBirth"`
	Gender      string             `bson:"gender"`
	PhoneNumber string             `bson:"phoneNumber"`
	Email       string             `bson:"email,omitempty"`
	TimeModel   `bson:",inline"`
}
