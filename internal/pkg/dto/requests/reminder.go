package requests

type SendReminderEmail struct {
	PurchaseID string `json:"purchase_id" validate:"required"`
}
