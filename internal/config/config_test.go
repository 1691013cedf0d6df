package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8088")
	t.Setenv("TRACKING_RATE_LIMIT_RPS", "not-a-number")
	t.Setenv("TRACKING_RATE_LIMIT_BURST", "5")

	cfg := Load()

	assert.Equal(t, "8088", cfg.App.Port)
	assert.Equal(t, 20.0, cfg.Tracking.RateLimitRPS)
	assert.Equal(t, 5, cfg.Tracking.RateLimitBurst)
	assert.Equal(t, "BEHAVIOR_TRACKED", cfg.Tracking.Topic)
	assert.False(t, cfg.IsProduction())
}

func TestIsProduction(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	assert.True(t, Load().IsProduction())
}
