package mq

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/config"
)

var errDeliveriesClosed = errors.New("rabbitmq delivery channel closed")

type RabbitMQClient struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	prefetch int
}

func NewRabbitMQClient(cfg config.MQConfig) (*RabbitMQClient, error) {
	if strings.TrimSpace(cfg.RabbitMQURL) == "" {
		return nil, errors.New("rabbitmq url is required")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	prefetch := max(cfg.RabbitMQPrefetch, 1)
	if err := ch.Qos(prefetch, 0, false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("rabbitmq qos: %w", err)
	}

	return &RabbitMQClient{conn: conn, channel: ch, prefetch: prefetch}, nil
}

// Subscribe consumes the durable queue named channel until ctx is done or
// the broker closes the delivery channel. Up to prefetch deliveries are
// handled concurrently; in-flight ones are settled before it returns.
func (r *RabbitMQClient) Subscribe(ctx context.Context, channel string, handler Handler) error {
	if strings.TrimSpace(channel) == "" {
		return errors.New("rabbitmq channel is required")
	}
	if _, err := r.channel.QueueDeclare(channel, true, false, false, false, nil); err != nil {
		return fmt.Errorf("rabbitmq declare %s: %w", channel, err)
	}

	consumerTag := "bookstore-" + uuid.NewString()
	deliveries, err := r.channel.Consume(channel, consumerTag, false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("rabbitmq consume %s: %w", channel, err)
	}
	defer func() {
		_ = r.channel.Cancel(consumerTag, false)
	}()

	return dispatch(ctx, deliveries, r.prefetch, handler)
}

func (r *RabbitMQClient) Close() error {
	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// dispatch hands each delivery to its own goroutine, at most limit at a time.
func dispatch(ctx context.Context, deliveries <-chan amqp.Delivery, limit int, handler Handler) error {
	sem := make(chan struct{}, max(limit, 1))
	var wg sync.WaitGroup
	defer wg.Wait()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errDeliveriesClosed
			}
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				if err := delivery.Nack(false, true); err != nil {
					zap.L().Error("failed to nack message", zap.String("id", delivery.MessageId), zap.Error(err))
				}
				return ctx.Err()
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer func() { <-sem }()
				handleDelivery(ctx, delivery, handler)
			}()
		}
	}
}

func handleDelivery(ctx context.Context, delivery amqp.Delivery, handler Handler) {
	msg := Message{
		ID:         delivery.MessageId,
		Data:       delivery.Body,
		Attributes: headersToAttributes(delivery.Headers),
	}
	if settle(ctx, handler, msg) {
		if err := delivery.Ack(false); err != nil {
			zap.L().Error("failed to ack message", zap.String("id", msg.ID), zap.Error(err))
		}
		return
	}
	if err := delivery.Nack(false, true); err != nil {
		zap.L().Error("failed to nack message", zap.String("id", msg.ID), zap.Error(err))
	}
}

func headersToAttributes(headers amqp.Table) map[string]string {
	if len(headers) == 0 {
		return nil
	}
	attrs := make(map[string]string, len(headers))
	for key, value := range headers {
		switch typed := value.(type) {
		case string:
			attrs[key] = typed
		case []byte:
			attrs[key] = string(typed)
		default:
			attrs[key] = fmt.Sprint(value)
		}
	}
	return attrs
}
