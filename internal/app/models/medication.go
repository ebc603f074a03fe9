package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DosingFrequency is how often one dose is taken. Unit is "days" (value doses
// per day) or "hours" (one dose every value hours).
type DosingFrequency struct {
	Value int    `bson:"value"`
	Unit  string `bson:"unit"`
}

// DosingDuration is how long the course runs. Unit is "days" or "weeks".
type DosingDuration struct {
	Value int    `bson:"value"`
	Unit  string `bson:"unit"`
}

type Medication struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	HospitalID      primitive.ObjectID `bson:"hospitalId"`
	DrugName        string             `bson:"drugName"`
	DoseDescription string             `bson:"doseDescription"`
	Frequency       DosingFrequency    `bson:"frequency"`
	Duration        DosingDuration     `bson:"duration"`
	QuantityInStock int                `bson:"quantityInStock"`
	Price           float64            `bson:"price"`
	ExpiryDate      *time.Time         `bson:"expiryDate,omitempty"`
	Barcode         string             `bson:"barcode,omitempty"`
	Notes           string             `bson:"notes,omitempty"`
	TimeModel       `bson:",inline"`
}
