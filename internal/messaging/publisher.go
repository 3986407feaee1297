package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"

	"cafe-pos/internal/logger"
	"cafe-pos/internal/models"
)

// Publisher announces committed orders on the receipts fanout exchange so
// displays or printers can pick them up.
type Publisher struct {
	conn   *Connection
	logger *logger.Logger
}

// NewPublisher creates a committed-order publisher.
func NewPublisher(conn *Connection, log *logger.Logger) *Publisher {
	return &Publisher{
		conn:   conn,
		logger: log,
	}
}

// committedOrderMessage is the wire format of a committed-order event.
type committedOrderMessage struct {
	Lines     []models.LineItem `json:"lines"`
	Totals    models.Totals     `json:"totals"`
	CreatedAt string            `json:"created_at"`
}

// OrderCommitted publishes an order that was durably committed. The order is
// already saved when this runs, so failures are the caller's to log, not to
// roll back.
func (p *Publisher) OrderCommitted(ctx context.Context, order *models.Order, totals models.Totals) error {
	if p.conn.IsClosed() {
		if err := p.conn.Reconnect(); err != nil {
			return fmt.Errorf("failed to reconnect: %w", err)
		}
	}

	body, err := json.Marshal(committedOrderMessage{
		Lines:     order.Lines,
		Totals:    totals,
		CreatedAt: order.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err = p.conn.Channel().PublishWithContext(
		ctx,
		receiptsExchange, // exchange
		"",               // routing key (ignored for fanout)
		false,            // mandatory
		false,            // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	p.logger.Debug("order_published",
		"Published committed order", "", map[string]interface{}{
			"exchange":     receiptsExchange,
			"message_size": len(body),
		})

	return nil
}
