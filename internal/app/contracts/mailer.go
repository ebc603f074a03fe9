package contracts

import (
	"context"
	"healthtrack-service/internal/pkg/dto/requests"
)

// MailerService publishes plain emails to the mailer queue and delivers
// attachment-bearing emails synchronously over SMTP.
type MailerService interface {
	SendEmail(ctx context.Context, payload *requests.EmailPayload) error
	SendWithAttachment(ctx context.Context, payload *requests.EmailPayload) error
}
