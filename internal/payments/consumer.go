// Package payments applies payment-confirmed events from the message
// broker as coin top-ups.
package payments

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/domain"
	"github.com/GlebRadaev/bookstore/internal/mq"
)

type Subscriber interface {
	Subscribe(ctx context.Context, channel string, handler mq.Handler) error
}

type TopUpService interface {
	TopUp(ctx context.Context, userID domain.ID, token string, coins int64) (*domain.TopUpResult, error)
}

// Event is published once the gateway confirms a payment.
type Event struct {
	UserID    string `json:"userId"`
	Coins     int64  `json:"coins"`
	Reference string `json:"reference"`
}

type Consumer struct {
	subscriber Subscriber
	service    TopUpService
	channel    string
	workers    int
}

func NewConsumer(subscriber Subscriber, service TopUpService, channel string, workers int) *Consumer {
	return &Consumer{
		subscriber: subscriber,
		service:    service,
		channel:    channel,
		workers:    workers,
	}
}

// Run blocks until ctx is done or the subscription fails.
func (c *Consumer) Run(ctx context.Context) error {
	pool := NewWorkerPool(c.workers)
	defer pool.Close()

	zap.L().Info("payment events consumer started", zap.String("channel", c.channel), zap.Int("workers", c.workers))
	err := c.subscriber.Subscribe(ctx, c.channel, func(ctx context.Context, msg mq.Message) error {
		return pool.Do(ctx, func(ctx context.Context) error {
			return c.Handle(ctx, msg)
		})
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	zap.L().Info("payment events consumer stopped")
	return nil
}

// Handle applies one event. Only transient store failures are returned so
// the broker redelivers the message; everything else is acked.
func (c *Consumer) Handle(ctx context.Context, msg mq.Message) error {
	logger := zap.L().With(zap.String("messageId", msg.ID))

	var event Event
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Warn("dropping malformed payment event", zap.Error(err))
		return nil
	}

	userID, err := domain.ParseID(event.UserID)
	if err != nil {
		logger.Warn("dropping payment event with invalid user id", zap.String("userId", event.UserID))
		return nil
	}

	token := strings.TrimSpace(event.Reference)
	if token == "" {
		token = msg.ID
	}

	result, err := c.service.TopUp(ctx, userID, token, event.Coins)
	switch {
	case err == nil:
		logger.Info("payment event applied",
			zap.String("userId", userID.String()),
			zap.String("token", token),
			zap.Int64("balance", result.Balance),
			zap.Bool("duplicate", result.Duplicate))
		return nil
	case errors.Is(err, domain.ErrTransientStoreFailure):
		logger.Warn("payment event will be redelivered", zap.String("token", token), zap.Error(err))
		return err
	default:
		logger.Error("payment event rejected", zap.String("token", token), zap.Error(err))
		return nil
	}
}
