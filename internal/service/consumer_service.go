// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/pkg/events"
	"realestate-funnel-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
)

// StatsCounter is the daily funnel counter store.
type StatsCounter interface {
	Increment(ctx context.Context, day, field string) error
	Snapshot(ctx context.Context, day string) (map[string]int64, error)
}

// EventPublisher forwards domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	counter    StatsCounter
	bus        EventPublisher
	logger     logger.ILogger
}

// NewConsumerService wires the fan-out of stored behaviors. counter and bus
// may be nil when Redis or NATS are unavailable.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	counter StatsCounter,
	bus EventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		counter:    counter,
		bus:        bus,
		logger:     log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage always acks. Counters and bus delivery are best effort and a
// Nack on the in-process channel would redeliver in a tight loop.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	defer msg.Ack()

	var payload dto.BehaviorTrackedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("FANOUT", "Dropping malformed message", map[string]interface{}{
			"message_uuid": msg.UUID,
			"error":        err.Error(),
		})
		return
	}

	if cs.counter != nil {
		day := store.DayKey(payload.CreatedAt)
		field := store.CounterField(payload.BehaviorType, payload.Action)
		if err := cs.counter.Increment(ctx, day, field); err != nil {
			cs.logger.Warn("FANOUT", "Failed to increment funnel counter", map[string]interface{}{
				"day":   day,
				"field": field,
				"error": err.Error(),
			})
		}
	}

	if cs.bus != nil {
		event := events.NewBehaviorTracked(
			payload.Id.String(),
			payload.SessionId,
			payload.LeadId,
			payload.BehaviorType,
			payload.Action,
			payload.PageUrl,
			payload.CreatedAt,
		)
		if err := cs.bus.Publish(ctx, event); err != nil {
			cs.logger.Warn("FANOUT", "Failed to forward behavior to bus", map[string]interface{}{
				"behavior_id": payload.Id.String(),
				"error":       err.Error(),
			})
		}
	}

	cs.logger.Debug("FANOUT", "Behavior fanned out", map[string]interface{}{
		"behavior_id":   payload.Id.String(),
		"behavior_type": payload.BehaviorType,
	})
}
