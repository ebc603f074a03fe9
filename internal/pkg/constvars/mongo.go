package constvars

const (
	MongoCollectionHospitals   = "hospitals"
	MongoCollectionPatients    = "patients"
	MongoCollectionMedications = "medications"
	MongoCollectionPurchases   = "purchases"
)
