package contracts

import (
	"context"
	"healthtrack-service/internal/pkg/dto/requests"
)

type SMSService interface {
	SendSMS(ctx context.Context, payload *requests.SMSPayload) error
}
