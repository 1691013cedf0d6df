package service

import (
	"context"
	"testing"
	"time"

	"realestate-funnel-be/internal/dto"
	"realestate-funnel-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntelligenceService_TrackStoresSeparately(t *testing.T) {
	store := &memStore{}
	svc := NewIntelligenceService(store.Factory(), nil, logger.NewNopLogger()).(*intelligenceService)
	svc.now = func() time.Time { return fixedNow }

	clientTime := fixedNow.Add(-3 * time.Hour).In(time.FixedZone("GST", 4*3600))
	res, err := svc.Track(context.Background(), &dto.TrackIntelligenceRequest{
		SessionId:  "s1",
		LeadId:     strPtr("lead-1"),
		EventType:  "gallery_swipe",
		PropertyId: strPtr("prop-9"),
		ElementId:  strPtr(""),
		Metadata:   map[string]any{"photo": float64(4)},
		Timestamp:  &clientTime,
	})
	require.NoError(t, err)
	assert.Equal(t, fixedNow, res.CreatedAt)

	require.Len(t, store.intel, 1)
	ev := store.intel[0]
	assert.Empty(t, store.behaviors)
	assert.Nil(t, ev.ElementId)
	require.NotNil(t, ev.ClientTimestamp)
	assert.Equal(t, time.UTC, ev.ClientTimestamp.Location())
	assert.True(t, ev.ClientTimestamp.Equal(clientTime))
	assert.Equal(t, float64(4), ev.Metadata["photo"])
	assert.Len(t, store.Links(), 1)
}
