package nats

import (
	"testing"
	"time"

	"realestate-funnel-be/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	ev := events.NewLeadCreated("l1", "s1", "", "", "", time.Now())
	assert.Equal(t, "events.lead.created", Subject(ev))
}

func TestCloseWithoutConnection(t *testing.T) {
	p := &Publisher{}
	assert.NotPanics(t, p.Close)
}
