package responses

type ReminderEmail struct {
	PurchaseID string `json:"purchase_id"`
	EventCount int    `json:"event_count"`
	EmailSent  bool   `json:"email_sent"`
}
