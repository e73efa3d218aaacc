package service

import (
	"context"
	"encoding/json"

	"autovitrine-be/internal/dto"
	"autovitrine-be/internal/pkg/logger"
	"autovitrine-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the contact queue and forwards each submission to
// the dealership inbox.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	emailService mailer.IEmailService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		emailService: emailService,
		log:          log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(msg *message.Message) {
	var payload dto.ContactRequest
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		// Malformed payloads are acked; retrying will never help.
		cs.log.Error("contact", "failed to unmarshal contact message", map[string]interface{}{"error": err.Error()})
		msg.Ack()
		return
	}

	if err := cs.emailService.SendContactMessage(payload.Name, payload.Email, payload.Phone, payload.Message); err != nil {
		cs.log.Error("contact", "failed to deliver contact message", map[string]interface{}{
			"email": payload.Email,
			"error": err.Error(),
		})
		msg.Nack()
		return
	}

	cs.log.Info("contact", "contact message delivered", map[string]interface{}{"email": payload.Email})
	msg.Ack()
}
