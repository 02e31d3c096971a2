// Package kafka publishes order change events so list screens and downstream
// consumers can react without polling the order service.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"console/internal/core/domain/model/kernel"
	"console/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

// orderChangedEvent is the wire payload of one order change.
type orderChangedEvent struct {
	OrderID    int64     `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// OrderChangedPublisher implements ports.EventPublisher on a kafka writer.
type OrderChangedPublisher struct {
	writer *kafka.Writer
}

// NewOrderChangedPublisher creates a publisher for the given brokers and topic.
// Writes are synchronous; the caller already treats publishing as best-effort.
func NewOrderChangedPublisher(brokers []string, topic string) *OrderChangedPublisher {
	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
		},
	}
}

// OrderChanged publishes one change event keyed by order id, so all events of
// one order land on the same partition in order.
func (p *OrderChangedPublisher) OrderChanged(ctx context.Context, id kernel.OrderID, status order.Status) error {
	payload, err := json.Marshal(orderChangedEvent{
		OrderID:    id.Int64(),
		Status:     status.String(),
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(id.String()),
		Value: payload,
		Time:  time.Now(),
	})
}

// Close releases the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
