package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderPayload is what a downstream SMS gateway consumes. The API itself
// never delivers anything.
type ReminderPayload struct {
	EventID     string    `json:"event_id"`
	PatientID   int       `json:"patient_id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Message     string    `json:"message"`
	RequestedAt time.Time `json:"requested_at"`
}

type ReminderProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *ReminderProducer {
	return &ReminderProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *ReminderProducer) PublishReminder(ctx context.Context, payload ReminderPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.EventID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish reminder: %w", err)
	}

	return nil
}
