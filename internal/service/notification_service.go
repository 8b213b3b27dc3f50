package service

import (
	"context"
	"encoding/json"

	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/pkg/logger"
	"valetkleen-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type INotificationService interface {
	Consume(ctx context.Context) error
}

// notificationService listens for order-created events and emails the
// confirmation. It runs after checkout commits, so a mail failure can never
// undo an order.
type notificationService struct {
	pubSub       *gochannel.GoChannel
	emailService mailer.IEmailService
	log          logger.ILogger
}

func NewNotificationService(pubSub *gochannel.GoChannel, emailService mailer.IEmailService, log logger.ILogger) INotificationService {
	return &notificationService{
		pubSub:       pubSub,
		emailService: emailService,
		log:          log,
	}
}

func (ns *notificationService) Consume(ctx context.Context) error {
	messages, err := ns.pubSub.Subscribe(ctx, orderCreatedTopic)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ns.processMessage(msg)
		}
	}()

	return nil
}

func (ns *notificationService) processMessage(msg *message.Message) {
	var payload dto.OrderCreatedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ns.log.Error("notification_service", "unmarshal order created event", map[string]interface{}{"error": err.Error()})
		msg.Ack() // invalid payloads never become valid, drop them
		return
	}

	if payload.CustomerEmail == "" {
		ns.log.Info("notification_service", "order has no customer email, skipping confirmation", map[string]interface{}{
			"order_number": payload.OrderNumber,
		})
		msg.Ack()
		return
	}

	confirmation := mailer.OrderConfirmation{
		OrderNumber:  payload.OrderNumber,
		CustomerName: payload.CustomerName,
		Total:        payload.Total,
		PickupDate:   payload.PickupDate,
		PickupTime:   payload.PickupTime,
		Address:      payload.Address,
	}
	for _, line := range payload.Lines {
		confirmation.Lines = append(confirmation.Lines, mailer.OrderLine{
			Name:     line.Name,
			Quantity: line.Quantity,
			Options:  line.Options,
			Total:    "$" + line.Total.StringFixed(2),
		})
	}

	if err := ns.emailService.SendOrderConfirmation(payload.CustomerEmail, confirmation); err != nil {
		ns.log.Error("notification_service", "send order confirmation", map[string]interface{}{
			"order_number": payload.OrderNumber,
			"error":        err.Error(),
		})
		msg.Ack() // confirmations are best effort, do not retry forever
		return
	}

	ns.log.Info("notification_service", "order confirmation sent", map[string]interface{}{
		"order_number": payload.OrderNumber,
	})
	msg.Ack()
}
