package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"feed_digest/internal/domain"
)

// ResultRecorder stores one generation result.
type ResultRecorder interface {
	Record(ctx context.Context, result *domain.GenerationResult) (*domain.Newsletter, error)
}

type ConsumerConfig struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
	Prefetch   int
}

// ResultConsumer reads the generator's replies and records them in the
// newsletter history.
type ResultConsumer struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	queue    string
	recorder ResultRecorder
	logger   *slog.Logger
}

func NewResultConsumer(cfg ConsumerConfig, recorder ResultRecorder, logger *slog.Logger) (*ResultConsumer, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	fail := func(step string, err error) (*ResultConsumer, error) {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	if err := ch.ExchangeDeclare(cfg.Exchange, "direct", true, false, false, false, nil); err != nil {
		return fail("declare exchange", err)
	}

	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fail("declare queue", err)
	}

	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fail("bind queue", err)
	}

	if cfg.Prefetch > 0 {
		if err := ch.Qos(cfg.Prefetch, 0, false); err != nil {
			return fail("set prefetch", err)
		}
	}

	logger.Info("result consumer connected",
		"exchange", cfg.Exchange,
		"queue", q.Name,
		"routing_key", cfg.RoutingKey,
	)

	return &ResultConsumer{
		conn:     conn,
		channel:  ch,
		queue:    q.Name,
		recorder: recorder,
		logger:   logger.With("component", "result_consumer"),
	}, nil
}

// Run consumes until ctx is done or the broker closes the delivery channel.
func (c *ResultConsumer) Run(ctx context.Context) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.Info("result consumer started", "queue", c.queue)

	for {
		select {
		case <-ctx.Done():
			c.logger.Info("result consumer stopped")
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("delivery channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

// handle acks recorded results, drops malformed ones and requeues the rest.
func (c *ResultConsumer) handle(ctx context.Context, d amqp.Delivery) {
	var result domain.GenerationResult
	if err := json.Unmarshal(d.Body, &result); err != nil {
		c.logger.Error("dropping malformed generation result", "message_id", d.MessageId, "error", err)
		c.settle(d.Nack(false, false))
		return
	}

	if _, err := c.recorder.Record(ctx, &result); err != nil {
		requeue := !errors.Is(err, domain.ErrValidation) && !d.Redelivered
		c.logger.Error("failed to record generation result",
			"job_id", result.JobID,
			"requeue", requeue,
			"error", err,
		)
		c.settle(d.Nack(false, requeue))
		return
	}

	c.settle(d.Ack(false))
}

func (c *ResultConsumer) settle(err error) {
	if err != nil {
		c.logger.Warn("failed to settle delivery", "error", err)
	}
}

func (c *ResultConsumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
