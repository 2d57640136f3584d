package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeEvents = "store.events"

	KeyOrderPaid = "order.paid"
)

type OrderPaid struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	Email         string    `json:"email"`
	TransactionID string    `json:"transaction_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewOrderPaid(orderID, email, transactionID string) OrderPaid {
	return OrderPaid{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		Email:         email,
		TransactionID: transactionID,
		OccurredAt:    time.Now().UTC(),
	}
}

type Conn struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func Connect(url string) (*Conn, error) {
	c, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := c.Channel()
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(ExchangeEvents, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = c.Close()
		return nil, err
	}
	return &Conn{Conn: c, Ch: ch}, nil
}

func (c *Conn) Close() error {
	if c.Ch != nil {
		_ = c.Ch.Close()
	}
	if c.Conn != nil {
		return c.Conn.Close()
	}
	return nil
}

// Publish sends a JSON event to the store exchange with the given routing key.
func (c *Conn) Publish(ctx context.Context, key string, payload any) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.Ch.PublishWithContext(ctx, ExchangeEvents, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         b,
	})
}
