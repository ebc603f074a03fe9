package sms

import (
	"context"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

var (
	smsServiceInstance contracts.SMSService
	onceSMSService     sync.Once
)

type smsService struct {
	Channel *amqp091.Channel
	Queue   string
}

func NewSMSService(rabbitMQConnection *amqp091.Connection, queue string) (contracts.SMSService, error) {
	var initErr error
	onceSMSService.Do(func() {
		channel, err := rabbitMQConnection.Channel()
		if err != nil {
			initErr = err
			return
		}
		// Declaring on the publisher side guarantees the queue exists before
		// the first publish, even when no consumer has started yet.
		_, err = channel.QueueDeclare(
			queue,
			true,  // durable
			false, // autoDelete
			false, // exclusive
			false, // noWait
			nil,
		)
		if err != nil {
			initErr = err
			return
		}
		smsServiceInstance = &smsService{
			Channel: channel,
			Queue:   queue,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return smsServiceInstance, nil
}

func (s *smsService) SendSMS(ctx context.Context, payload *requests.SMSPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	return nil
}
