package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PurchaseItem is one medication line of a purchase. StartTime anchors the
// reminder schedule for the line; when nil the schedule anchors at the moment
// it is generated.
type PurchaseItem struct {
	MedicationID primitive.ObjectID `bson:"medicationId"`
	Quantity     int                `bson:"quantity"`
	StartTime    *time.Time         `bson:"startTime,omitempty"`
}

type Purchase struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	HospitalID primitive.ObjectID `bson:"hospitalId"`
	PatientID  primitive.ObjectID `bson:"patientId"`
	Items      []PurchaseItem     `bson:"items"`
	TimeModel  `bson:",inline"`
}
