package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

// ConfirmationQueueName is the durable queue confirmations travel through
// when a broker is configured.
const ConfirmationQueueName = "booking_confirmations"

// Broker is the part of the RabbitMQ client the confirmation queue needs.
type Broker interface {
	Publish(body []byte) error
	Consume(handle func(body []byte)) error
}

// AMQPConfirmationQueue moves confirmations through a broker so they survive
// a restart between booking and delivery.
type AMQPConfirmationQueue struct {
	broker Broker
}

func NewAMQPConfirmationQueue(broker Broker) *AMQPConfirmationQueue {
	return &AMQPConfirmationQueue{broker: broker}
}

func (q *AMQPConfirmationQueue) Enqueue(_ context.Context, c Confirmation) error {
	body, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}
	return q.broker.Publish(body)
}

// Run hands every queued confirmation to deliver. It blocks until the broker
// stops delivering.
func (q *AMQPConfirmationQueue) Run(ctx context.Context, deliver func(context.Context, Confirmation)) error {
	return q.broker.Consume(func(body []byte) {
		var c Confirmation
		if err := json.Unmarshal(body, &c); err != nil {
			log.Printf("Dropping malformed confirmation message: %v", err)
			return
		}
		deliver(ctx, c)
	})
}
