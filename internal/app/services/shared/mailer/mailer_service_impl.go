package mailer

import (
	"context"
	"fmt"
	"healthtrack-service/internal/app/contracts"
	"healthtrack-service/internal/app/drivers/mailer"
	"healthtrack-service/internal/pkg/constvars"
	"healthtrack-service/internal/pkg/dto/requests"
	"healthtrack-service/internal/pkg/exceptions"
	"net/smtp"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
)

var (
	mailerServiceInstance contracts.MailerService
	onceMailerService     sync.Once
)

type mailerService struct {
	Channel *amqp091.Channel
	Client  *mailer.SMTPClient
	Queue   string
}

func NewMailerService(client *mailer.SMTPClient, rabbitMQConnection *amqp091.Connection, queue string) (contracts.MailerService, error) {
	var initErr error
	onceMailerService.Do(func() {
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
		mailerServiceInstance = &mailerService{
			Channel: channel,
			Client:  client,
			Queue:   queue,
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return mailerServiceInstance, nil
}

// SendEmail publishes the payload to the mailer queue; the transport consumer
// owns delivery and retries.
func (s *mailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
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

// SendWithAttachment delivers synchronously over SMTP. The attachment travels
// as base64 in the payload, never through the filesystem.
func (s *mailerService) SendWithAttachment(ctx context.Context, payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = s.Client.Sender
	}

	msg := fmt.Sprintf(constvars.EmailSendWithAttachmentFormat,
		payload.To[0],
		payload.Subject,
		payload.Body,
		payload.AttachmentName,
		payload.AttachmentContentType,
	)
	msg += payload.AttachmentBase64 + "\r\n--simple boundary--"

	addr := fmt.Sprintf("%s:%d", s.Client.Host, s.Client.Port)
	err := smtp.SendMail(addr, s.Client.Auth, from, payload.To, []byte(msg))
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}
	return nil
}
