package service

import (
	"context"
	"encoding/json"

	"scholarship-fund-be/internal/pkg/logger"
	"scholarship-fund-be/internal/pkg/mailer"
	"scholarship-fund-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService listens for fully approved scholarships and sends the
// notification email to the configured address.
type consumerService struct {
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	notifyEmail  string
	sysLogger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	emailService mailer.IEmailService,
	notifyEmail string,
	sysLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:       pubSub,
		emailService: emailService,
		notifyEmail:  notifyEmail,
		sysLogger:    sysLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, events.TypeScholarshipApproved)
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
	var payload struct {
		ScholarshipId string  `json:"scholarship_id"`
		Reference     string  `json:"reference"`
		Amount        float64 `json:"amount"`
	}
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.sysLogger.Error("consumer", "failed to unmarshal approval event", map[string]interface{}{
			"error": err.Error(),
		})
		// Ack malformed messages to prevent infinite redelivery.
		msg.Ack()
		return
	}

	if cs.notifyEmail == "" {
		msg.Ack()
		return
	}

	if err := cs.emailService.SendApprovalNotice(cs.notifyEmail, payload.Reference, payload.Amount); err != nil {
		cs.sysLogger.Error("consumer", "failed to send approval notice", map[string]interface{}{
			"scholarship_id": payload.ScholarshipId,
			"error":          err.Error(),
		})
		msg.Nack()
		return
	}

	cs.sysLogger.Info("consumer", "approval notice sent", map[string]interface{}{
		"scholarship_id": payload.ScholarshipId,
		"reference":      payload.Reference,
	})
	msg.Ack()
}
