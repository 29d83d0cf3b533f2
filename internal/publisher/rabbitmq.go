package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"portfolio/internal/config"
)

const appID = "portfolio"

// channel is the part of *amqp.Channel the publisher uses.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitMQ publishes events to a topic exchange, one routing key per
// event type.
type RabbitMQ struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	logger   *slog.Logger
}

func NewRabbitMQ(cfg config.RabbitMQ, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	logger.Info("connected to rabbitmq",
		"exchange", cfg.Exchange,
		"queue", cfg.QueueName,
		"bindings", cfg.Bindings,
	)

	r := newRabbitMQ(ch, cfg.Exchange, logger)
	r.conn = conn
	return r, nil
}

func newRabbitMQ(ch channel, exchange string, logger *slog.Logger) *RabbitMQ {
	return &RabbitMQ{channel: ch, exchange: exchange, logger: logger}
}

// declareTopology declares the durable topic exchange and, when a queue is
// configured, binds it once per pattern.
func declareTopology(ch *amqp.Channel, cfg config.RabbitMQ) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	if cfg.QueueName == "" {
		return nil
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}
	if len(cfg.Bindings) == 0 {
		return errors.New("queue configured without bindings")
	}
	for _, pattern := range cfg.Bindings {
		if err := ch.QueueBind(q.Name, pattern, cfg.Exchange, false, nil); err != nil {
			return fmt.Errorf("bind %s to %s: %w", q.Name, pattern, err)
		}
	}
	return nil
}

func (r *RabbitMQ) Publish(ctx context.Context, event Event) error {
	key, err := event.RoutingKey()
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	msg := amqp.Publishing{
		MessageId:    event.ID,
		AppId:        appID,
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		Type:         event.Type,
		Timestamp:    event.Timestamp,
		Headers:      amqp.Table{"entity": event.Entity()},
		Body:         body,
	}
	if err := r.channel.PublishWithContext(ctx, r.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}

	r.logger.Debug("published event", "routing_key", key, "id", event.ID)
	return nil
}

func (r *RabbitMQ) Close() error {
	if r.channel != nil {
		r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
