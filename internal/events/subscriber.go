package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

type Handler func(ctx context.Context, event Event) error

// StreamReader is the subset of the Redis client used by Subscriber.
type StreamReader interface {
	XGroupCreateMkStream(ctx context.Context, stream, group, start string) *redis.StatusCmd
	XReadGroup(ctx context.Context, a *redis.XReadGroupArgs) *redis.XStreamSliceCmd
	XAck(ctx context.Context, stream, group string, ids ...string) *redis.IntCmd
}

// Subscriber reads one or more streams through a consumer group. Messages are
// acknowledged only after the handler succeeds, so failed ones stay pending.
type Subscriber struct {
	client        StreamReader
	group         string
	consumer      string
	streams       []string
	handler       Handler
	batchSize     int64
	blockDuration time.Duration
	log           *slog.Logger
}

type SubscriberConfig struct {
	Group         string
	Consumer      string
	Streams       []string
	Handler       Handler
	BatchSize     int64
	BlockDuration time.Duration
}

func NewSubscriber(client StreamReader, config SubscriberConfig, log *slog.Logger) *Subscriber {
	if config.BatchSize == 0 {
		config.BatchSize = 10
	}
	if config.BlockDuration == 0 {
		config.BlockDuration = 5 * time.Second
	}

	return &Subscriber{
		client:        client,
		group:         config.Group,
		consumer:      config.Consumer,
		streams:       config.Streams,
		handler:       config.Handler,
		batchSize:     config.BatchSize,
		blockDuration: config.BlockDuration,
		log:           log,
	}
}

// Start blocks until ctx is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	for _, stream := range s.streams {
		err := s.client.XGroupCreateMkStream(ctx, stream, s.group, "0").Err()
		if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
			return fmt.Errorf("failed to create consumer group on %s: %w", stream, err)
		}
	}

	s.log.Info("Subscriber started", "streams", s.streams, "group", s.group, "consumer", s.consumer)

	for {
		select {
		case <-ctx.Done():
			s.log.Info("Subscriber stopping", "streams", s.streams)
			return ctx.Err()
		default:
			if err := s.readMessages(ctx); err != nil && ctx.Err() == nil {
				s.log.Warn("Error reading messages", "error", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (s *Subscriber) readMessages(ctx context.Context) error {
	keys := make([]string, 0, 2*len(s.streams))
	keys = append(keys, s.streams...)
	for range s.streams {
		keys = append(keys, ">")
	}

	streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  keys,
		Count:    s.batchSize,
		Block:    s.blockDuration,
	}).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read from streams: %w", err)
	}

	for _, stream := range streams {
		for _, message := range stream.Messages {
			if err := s.processMessage(ctx, message); err != nil {
				s.log.Warn("Failed to process message", "stream", stream.Stream, "id", message.ID, "error", err)
				continue
			}
			if err := s.client.XAck(ctx, stream.Stream, s.group, message.ID).Err(); err != nil {
				s.log.Warn("Failed to ACK message", "stream", stream.Stream, "id", message.ID, "error", err)
			}
		}
	}
	return nil
}

func (s *Subscriber) processMessage(ctx context.Context, message redis.XMessage) error {
	eventData, ok := message.Values["event"].(string)
	if !ok {
		return fmt.Errorf("invalid message format")
	}

	var event Event
	if err := json.Unmarshal([]byte(eventData), &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return s.handler(ctx, event)
}

// LogActivity returns a Handler that writes each event as one structured line.
func LogActivity(log *slog.Logger) Handler {
	return func(_ context.Context, event Event) error {
		log.Info("Activity",
			"event_id", event.ID,
			"type", event.Type,
			"timestamp", event.Timestamp,
			"data", event.Data,
		)
		return nil
	}
}
