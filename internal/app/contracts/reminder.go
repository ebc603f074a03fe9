package contracts

import (
	"context"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/dto/responses"
)

type ReminderUsecase interface {
	// BuildCalendar expands every line item of the purchase into reminder
	// events and returns the merged iCalendar document.
	BuildCalendar(ctx context.Context, hospitalID, purchaseID string) ([]byte, error)
	// SendReminderEmail builds the calendar, stores it, and emails it to the
	// purchase's patient as an attachment.
	SendReminderEmail(ctx context.Context, hospitalID string, request *requests.SendReminderEmail) (*responses.ReminderEmail, error)
}
