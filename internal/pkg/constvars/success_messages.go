package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Auth messages
	RegisterSuccess     = "hospital registered successfully"
	LoginSuccess        = "successfully login"
	LogoutSuccess       = "successfully logout"
	TokenRefreshSuccess = "access token refreshed successfully"

	// Hospital messages
	GetHospitalProfileSuccess    = "get hospital profile successfully"
	UpdateHospitalProfileSuccess = "hospital profile updated successfully"

	// Patient messages
	PatientCreatedSuccess = "patient registered successfully"
	PatientUpdatedSuccess = "patient updated successfully"
	PatientDeletedSuccess = "patient deleted successfully"
	GetPatientSuccess     = "get patient successfully"
	GetPatientsSuccess    = "get patients successfully"

	// Medication messages
	MedicationCreatedSuccess  = "medication created successfully"
	MedicationUpdatedSuccess  = "medication updated successfully"
	MedicationDeletedSuccess  = "medication deleted successfully"
	GetMedicationSuccess      = "get medication successfully"
	GetMedicationsSuccess     = "get medications successfully"
	GetInventoryReportSuccess = "inventory report generated successfully"

	// Purchase messages
	PurchaseCreatedSuccess   = "purchase recorded successfully"
	GetPurchaseSuccess       = "get purchase successfully"
	GetPurchasesSuccess      = "get purchases successfully"
	GetPurchaseTotalsSuccess = "get purchase totals successfully"

	// Reminder messages
	ReminderEmailSentSuccess  = "medication reminder email sent successfully"
	ReminderEmailSkippedEmpty = "no reminder events to send for this purchase"
)
