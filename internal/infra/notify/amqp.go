package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"coffeebot/internal/domain/order"
	"coffeebot/internal/pkg/config"

	amqp "github.com/rabbitmq/amqp091-go"
)

type Connection interface {
	Channel() (*amqp.Channel, error)
	Close() error
}

func Connect(cfg config.NotifyConfig) (Connection, error) {
	conn, err := amqp.Dial(cfg.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

type baristaMessage struct {
	Recipient string `json:"recipient"`
	DayKey    string `json:"dayKey"`
	OrderID   string `json:"orderId"`
	Slot      string `json:"slot"`
	Ordinal   int    `json:"ordinal"`
	Limit     int    `json:"limit"`
	Text      string `json:"text"`
}

// Publisher pushes barista notifications to a durable topic exchange, routed
// by slot so a consumer can subscribe to one window only.
type Publisher struct {
	conn      Connection
	exchange  string
	recipient string
	formatter *Formatter
}

func NewPublisher(conn Connection, cfg config.NotifyConfig, formatter *Formatter) *Publisher {
	return &Publisher{
		conn:      conn,
		exchange:  cfg.Exchange,
		recipient: cfg.Recipient,
		formatter: formatter,
	}
}

func (p *Publisher) OrderAccepted(ctx context.Context, rec *order.Record, ordinal, limit int) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := ch.ExchangeDeclare(p.exchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	body, err := json.Marshal(baristaMessage{
		Recipient: p.recipient,
		DayKey:    rec.DayKey(),
		OrderID:   rec.ID(),
		Slot:      rec.Slot().String(),
		Ordinal:   ordinal,
		Limit:     limit,
		Text:      p.formatter.Barista(rec, ordinal, limit),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	routingKey := "barista." + strings.ToLower(rec.Slot().String())
	err = ch.PublishWithContext(ctx, p.exchange, routingKey, false, false, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher { return &NopPublisher{} }

func (*NopPublisher) OrderAccepted(context.Context, *order.Record, int, int) error {
	return nil
}
