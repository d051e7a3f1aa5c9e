package utils

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/digisamuday/samuday/internal/types"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (int, map[string]interface{}) {
	t.Helper()
	app := fiber.New()
	app.Get("/thing", func(c *fiber.Ctx) error {
		return HandleError(c, err)
	})
	resp, testErr := app.Test(httptest.NewRequest("GET", "/thing?x=1", nil))
	require.NoError(t, testErr)

	raw, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return resp.StatusCode, body
}

func TestHandleErrorEnvelope(t *testing.T) {
	status, body := render(t, types.NotFound("Payment"))
	require.Equal(t, 404, status)
	require.Equal(t, "Payment not found", body["message"])
	require.Equal(t, false, body["ok"])
	require.Equal(t, "/thing?x=1", body["url"])
	require.Equal(t, types.KindNotFound, body["type"])
	require.NotContains(t, body, "fields")
	_, err := time.Parse(time.RFC3339, body["timestamp"].(string))
	require.NoError(t, err)
}

func TestHandleErrorFields(t *testing.T) {
	status, body := render(t, types.MissingFields("name", "phone_number"))
	require.Equal(t, 400, status)
	fields := body["fields"].(map[string]interface{})
	require.Len(t, fields, 2)
}

func TestHandleErrorPlainError(t *testing.T) {
	status, body := render(t, errors.New("disk on fire"))
	require.Equal(t, 500, status)
	require.Equal(t, types.KindInternal, body["type"])
	require.Equal(t, "Internal server error", body["message"])
}

func TestHandleErrorHidesStoreFailure(t *testing.T) {
	status, body := render(t, types.InternalError(errors.New("dial tcp 10.0.0.7:3306: connection refused")))
	require.Equal(t, 500, status)
	require.Equal(t, "Internal server error", body["message"])
	require.NotContains(t, body["message"], "10.0.0.7")
}

func TestPingService(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	require.NoError(t, PingService("tcp://"+listener.Addr().String(), time.Second))
	host, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)
	require.NoError(t, PingDatabaseHost(host, port))

	require.Error(t, PingService("tcp://127.0.0.1:1", 200*time.Millisecond))
	require.Error(t, PingService("://bad", time.Second))
}
