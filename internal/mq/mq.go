// Package mq delivers broker messages to handlers independently of the
// broker in use.
package mq

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/GlebRadaev/bookstore/internal/config"
)

type Message struct {
	ID         string
	Data       []byte
	Attributes map[string]string
}

// Handler processes a message. A returned error nacks the message so the
// broker redelivers it.
type Handler func(ctx context.Context, msg Message) error

// Backend is a broker connection the application consumes from.
type Backend interface {
	Subscribe(ctx context.Context, channel string, handler Handler) error
	Close() error
}

// NewBackend connects the backend selected by cfg.Backend. It returns nil
// when no backend is configured.
func NewBackend(ctx context.Context, cfg config.MQConfig) (Backend, error) {
	switch cfg.Backend {
	case config.MQBackendNone:
		return nil, nil
	case config.MQBackendRabbitMQ:
		client, err := NewRabbitMQClient(cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	case config.MQBackendPubSub:
		client, err := NewPubSubClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown mq backend %q", cfg.Backend)
	}
}

// settle runs handler and reports whether the message should be acked.
func settle(ctx context.Context, handler Handler, msg Message) bool {
	if err := handler(ctx, msg); err != nil {
		zap.L().Warn("message nacked", zap.String("id", msg.ID), zap.Error(err))
		return false
	}
	return true
}
