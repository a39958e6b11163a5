package mq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/pubsub"
	"google.golang.org/api/option"

	"github.com/GlebRadaev/bookstore/internal/config"
)

const subscriptionSuffix = "-bookstore"

type PubSubClient struct {
	client *pubsub.Client
}

func NewPubSubClient(ctx context.Context, cfg config.MQConfig) (*PubSubClient, error) {
	if strings.TrimSpace(cfg.PubSubProjectID) == "" {
		return nil, errors.New("pubsub project id is required")
	}

	var opts []option.ClientOption
	if strings.TrimSpace(cfg.PubSubCredentialsFile) != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.PubSubCredentialsFile))
	}

	client, err := pubsub.NewClient(ctx, cfg.PubSubProjectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("pubsub client: %w", err)
	}
	return &PubSubClient{client: client}, nil
}

// Subscribe receives from the "<channel>-bookstore" subscription until ctx
// is done, creating the topic and subscription on first use. Pub/Sub runs
// handlers concurrently.
func (p *PubSubClient) Subscribe(ctx context.Context, channel string, handler Handler) error {
	if strings.TrimSpace(channel) == "" {
		return errors.New("pubsub channel is required")
	}

	sub, err := p.subscription(ctx, channel)
	if err != nil {
		return err
	}

	return sub.Receive(ctx, func(ctx context.Context, msg *pubsub.Message) {
		if settle(ctx, handler, Message{ID: msg.ID, Data: msg.Data, Attributes: msg.Attributes}) {
			msg.Ack()
			return
		}
		msg.Nack()
	})
}

func (p *PubSubClient) Close() error {
	return p.client.Close()
}

func (p *PubSubClient) subscription(ctx context.Context, channel string) (*pubsub.Subscription, error) {
	sub := p.client.Subscription(channel + subscriptionSuffix)
	exists, err := sub.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("pubsub subscription lookup: %w", err)
	}
	if exists {
		return sub, nil
	}

	topic := p.client.Topic(channel)
	if exists, err = topic.Exists(ctx); err != nil {
		return nil, fmt.Errorf("pubsub topic lookup: %w", err)
	}
	if !exists {
		if topic, err = p.client.CreateTopic(ctx, channel); err != nil {
			return nil, fmt.Errorf("pubsub create topic: %w", err)
		}
	}
	return p.client.CreateSubscription(ctx, sub.ID(), pubsub.SubscriptionConfig{Topic: topic})
}
