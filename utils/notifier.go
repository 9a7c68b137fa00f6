package utils

import (
	"encoding/json"
	"time"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

// Notifier publishes order lifecycle events to a fanout exchange. Publishing
// is best-effort: failures are logged and swallowed, an order must never fail
// because the broker is down. A nil Notifier is a no-op.
type Notifier struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	log      *zap.Logger
}

type OrderEvent struct {
	Event     string    `json:"event"`
	OrderID   uint      `json:"order_id"`
	UserID    uint      `json:"user_id"`
	Status    string    `json:"status"`
	Total     string    `json:"total,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func NewNotifier(url, exchange string, log *zap.Logger) (*Notifier, error) {
	if url == "" {
		return nil, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	if err := ch.ExchangeDeclare(exchange, "fanout", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	return &Notifier{conn: conn, ch: ch, exchange: exchange, log: log}, nil
}

func (n *Notifier) PublishOrderEvent(event OrderEvent) {
	if n == nil {
		return
	}
	event.Timestamp = time.Now().UTC()

	body, err := json.Marshal(event)
	if err != nil {
		n.log.Warn("failed to marshal order event", zap.Error(err))
		return
	}

	err = n.ch.Publish(n.exchange, "", false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		n.log.Warn("failed to publish order event",
			zap.String("event", event.Event), zap.Uint("order_id", event.OrderID), zap.Error(err))
	}
}

func (n *Notifier) Close() {
	if n == nil {
		return
	}
	n.ch.Close()
	n.conn.Close()
}
