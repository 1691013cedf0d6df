package logger

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	level, module, message string
	details                map[string]interface{}
}

type recordingLogger struct{ entries []entry }

func (r *recordingLogger) add(level, module, message string, details map[string]interface{}) {
	r.entries = append(r.entries, entry{level, module, message, details})
}
func (r *recordingLogger) Debug(m, msg string, d map[string]interface{}) { r.add("debug", m, msg, d) }
func (r *recordingLogger) Info(m, msg string, d map[string]interface{})  { r.add("info", m, msg, d) }
func (r *recordingLogger) Warn(m, msg string, d map[string]interface{})  { r.add("warn", m, msg, d) }
func (r *recordingLogger) Error(m, msg string, d map[string]interface{}) { r.add("error", m, msg, d) }
func (r *recordingLogger) Sync() error                                   { return nil }

func TestWatermillAdapter(t *testing.T) {
	rec := &recordingLogger{}
	var adapter watermill.LoggerAdapter = NewWatermillAdapter(rec, "PUBSUB")

	scoped := adapter.With(watermill.LogFields{"topic": "BEHAVIOR_TRACKED"})
	scoped.Error("publish failed", errors.New("closed"), watermill.LogFields{"uuid": "m1"})
	adapter.Trace("tick", nil)

	require.Len(t, rec.entries, 2)
	assert.Equal(t, "error", rec.entries[0].level)
	assert.Equal(t, "PUBSUB", rec.entries[0].module)
	assert.Equal(t, "BEHAVIOR_TRACKED", rec.entries[0].details["topic"])
	assert.Equal(t, "m1", rec.entries[0].details["uuid"])
	assert.Equal(t, "closed", rec.entries[0].details["error"])
	assert.Equal(t, "debug", rec.entries[1].level)
	assert.NotContains(t, rec.entries[1].details, "topic")
}
