package http

import (
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSerialEventsGivesUpWhenContextEnds(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(errorHandlingMiddleware(zap.NewNop(), nil))
	app.Use(requestTimeoutMiddleware(50 * time.Millisecond))
	app.Use(serialEvents())

	entered := make(chan struct{})
	release := make(chan struct{})
	app.Get("/slow", func(c *fiber.Ctx) error {
		close(entered)
		<-release
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/fast", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	slowDone := make(chan int, 1)
	go func() {
		resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/slow", nil), -1)
		if err != nil {
			slowDone <- 0
			return
		}
		slowDone <- resp.StatusCode
	}()
	<-entered

	resp, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/fast", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusRequestTimeout, resp.StatusCode)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "REQUEST_TIMEOUT", body.Error.Code)

	close(release)
	assert.Equal(t, fiber.StatusOK, <-slowDone)

	resp, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/fast", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
