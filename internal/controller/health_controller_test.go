package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthStatus(t *testing.T, critical, optional map[string]HealthCheck) (int, map[string]string) {
	t.Helper()
	app := fiber.New()
	NewHealthController(critical, optional).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body.Data
}

func TestHealth(t *testing.T) {
	up := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("refused") }

	status, data := healthStatus(t, map[string]HealthCheck{"database": up}, map[string]HealthCheck{"redis": down})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "up", data["database"])
	assert.Equal(t, "down", data["redis"])

	status, data = healthStatus(t, map[string]HealthCheck{"database": down}, nil)
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "down", data["database"])
}
