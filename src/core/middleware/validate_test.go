package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]interface{}{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func validationApp(handler fiber.Handler, middlewares ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append(middlewares, handler)
	app.Post("/test", handlers...)
	return app
}

func okHandler(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

func TestValidateEventCreateAcceptsCompletePayload(t *testing.T) {
	app := validationApp(okHandler, ValidateEventCreate())

	status, _ := postJSON(t, app, "/test", `{
		"title": "T", "description": "D", "date": "2025-01-01", "time": "10:00",
		"location": "L", "faculty": "COMPUTING", "category": "WORKSHOP", "organizer": "O"
	}`)
	assert.Equal(t, fiber.StatusOK, status, "legacy category token must pass validation")
}

func TestValidateEventCreateReportsPerFieldErrors(t *testing.T) {
	app := validationApp(okHandler, ValidateEventCreate())

	status, body := postJSON(t, app, "/test", `{"description": "D"}`)
	require.Equal(t, fiber.StatusBadRequest, status)

	errs, ok := body["errors"].([]interface{})
	require.True(t, ok, "response must carry a structured error list")
	require.NotEmpty(t, errs)

	fields := map[string]bool{}
	for _, e := range errs {
		entry := e.(map[string]interface{})
		fields[entry["field"].(string)] = true
	}
	assert.True(t, fields["Title"])
	assert.True(t, fields["Date"])
	assert.True(t, fields["Faculty"])
}

func TestValidateEventCreateRejectsUnknownEnumValues(t *testing.T) {
	app := validationApp(okHandler, ValidateEventCreate())

	status, _ := postJSON(t, app, "/test", `{
		"title": "T", "description": "D", "date": "2025-01-01", "time": "10:00",
		"location": "L", "faculty": "HOGWARTS", "category": "WORKSHOP", "organizer": "O"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestValidateEventCreateRejectsMalformedDate(t *testing.T) {
	app := validationApp(okHandler, ValidateEventCreate())

	status, _ := postJSON(t, app, "/test", `{
		"title": "T", "description": "D", "date": "01/01/2025", "time": "10:00",
		"location": "L", "faculty": "COMPUTING", "category": "ACADEMIC", "organizer": "O"
	}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestValidateEventUpdateAllowsPartialPayload(t *testing.T) {
	app := validationApp(okHandler, ValidateEventUpdate())

	status, _ := postJSON(t, app, "/test", `{"title": "Only the title"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = postJSON(t, app, "/test", `{"status": "NOT_A_STATUS"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestValidateRegistrationCreate(t *testing.T) {
	app := validationApp(okHandler, ValidateRegistrationCreate())

	status, _ := postJSON(t, app, "/test", `{"name": "A", "email": "a@uni.edu"}`)
	assert.Equal(t, fiber.StatusOK, status)

	status, _ = postJSON(t, app, "/test", `{"name": "A", "email": "not-an-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = postJSON(t, app, "/test", `{"email": "a@uni.edu"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
}
