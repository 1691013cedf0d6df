package service

import (
	"context"
	"testing"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/logger"
	"realestate-funnel-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFanOut_CountsAndForwards(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	counter := newFakeCounter()
	bus := &fakeBus{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "BEHAVIOR_TRACKED", counter, bus, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	// A malformed message is acked and dropped without blocking the topic.
	require.NoError(t, pubSub.Publish("BEHAVIOR_TRACKED", message.NewMessage(watermill.NewUUID(), []byte("not json"))))

	publisher := NewPublisherService("BEHAVIOR_TRACKED", pubSub)
	lead := "lead-1"
	require.NoError(t, publisher.PublishBehaviorTracked(ctx, &dto.BehaviorTrackedMessage{
		Id:           uuid.New(),
		SessionId:    "s1",
		LeadId:       &lead,
		BehaviorType: "page_view",
		Action:       "view_page",
		CreatedAt:    fixedNow,
	}))

	assert.Eventually(t, func() bool {
		return counter.Get("2026-03-01", "page_view:view_page") == 1 && len(bus.Events()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	ev := bus.Events()[0]
	assert.Equal(t, events.TypeBehaviorTracked, ev.EventType())
	assert.Equal(t, "lead-1", ev.Payload()["leadId"])
}

func TestFanOut_WithoutSinks(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "BEHAVIOR_TRACKED", nil, nil, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("BEHAVIOR_TRACKED", pubSub)
	assert.NoError(t, publisher.PublishBehaviorTracked(ctx, &dto.BehaviorTrackedMessage{
		Id:           uuid.New(),
		SessionId:    "s1",
		BehaviorType: "navigation",
		Action:       "navigate",
		CreatedAt:    fixedNow,
	}))
}
