package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
)

const connectTimeout = 5 * time.Second

// Config captures the settings for the user events exchange.
type Config struct {
	URL      string
	Exchange string
}

// Publisher delivers auth events to a durable RabbitMQ topic exchange. The
// routing key is the event topic (user.registered, user.loggedin), matching
// the queue bindings consumers declare on their side.
type Publisher struct {
	cfg Config
	log zerolog.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// NewPublisher dials the broker and declares the exchange. Declaration is
// idempotent, so restarts against an existing topology are safe.
func NewPublisher(cfg Config, log zerolog.Logger) (*Publisher, error) {
	p := &Publisher{cfg: cfg, log: log}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// Publish sends one JSON payload on the topic. Callers treat failures as
// best-effort losses; this method only reports them.
func (p *Publisher) Publish(ctx context.Context, topic string, payload map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, connectTimeout)
		defer cancel()
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ensureConnected(); err != nil {
		return err
	}

	err = p.ch.PublishWithContext(ctx,
		p.cfg.Exchange,
		topic,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		p.reset()
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}

// Close releases the channel and connection.
func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
}

func (p *Publisher) connect() error {
	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		p.cfg.Exchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return fmt.Errorf("exchange declare: %w", err)
	}

	p.conn = conn
	p.ch = ch
	return nil
}

func (p *Publisher) ensureConnected() error {
	if p.conn != nil && !p.conn.IsClosed() && p.ch != nil {
		return nil
	}
	p.log.Warn().Msg("rabbitmq connection lost, reconnecting")
	return p.connect()
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
