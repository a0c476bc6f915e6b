package registrations

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
)

func TestIsPaid(t *testing.T) {
	assert.False(t, IsPaid(""))
	assert.False(t, IsPaid("Free"))
	assert.False(t, IsPaid("free"))
	assert.False(t, IsPaid("  Free  "))
	assert.True(t, IsPaid("Paid"))
	assert.True(t, IsPaid("Rs. 500"))
}

func TestReceiptMissing(t *testing.T) {
	assert.True(t, ReceiptMissing("Paid", ""))
	assert.True(t, ReceiptMissing("Paid", "   "))
	assert.False(t, ReceiptMissing("Paid", "base64receipt"))
	assert.False(t, ReceiptMissing("Free", ""), "free events never require a receipt")
}

// setupMockDB swaps the package-wide connection for a sqlmock-backed one so
// the handler flow can run without Postgres. SkipDefaultTransaction keeps the
// expectations free of BEGIN/COMMIT noise.
func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	original := database.DB
	database.DB = gdb
	t.Cleanup(func() {
		database.DB = original
		sqlDB.Close()
	})
	return mock
}

func registrationApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/events/:id/register", RegisterForEvent)
	app.Post("/api/registrations", CreateRegistration)
	return app
}

func postRegistration(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	envelope := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	return resp.StatusCode, envelope
}

func eventRow(eventID uuid.UUID, price string, hasRegistration bool, maxParticipants, registeredCount int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "price", "has_registration", "max_participants", "registered_count"}).
		AddRow(eventID.String(), price, hasRegistration, maxParticipants, registeredCount)
}

func TestRegisterForEventRejectsWhenFull(t *testing.T) {
	mock := setupMockDB(t)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(eventRow(eventID, "Free", true, 100, 100))
	mock.ExpectExec(`UPDATE "events" SET "registered_count"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	status, envelope := postRegistration(t, registrationApp(),
		fmt.Sprintf("/api/events/%s/register", eventID),
		`{"name":"Nimal Perera","email":"nimal@uni.edu"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Event is full", envelope["message"])
	assert.NoError(t, mock.ExpectationsWereMet(), "no registration row may be written once capacity rejects")
}

func TestRegisterForEventRejectsWhenRegistrationClosed(t *testing.T) {
	mock := setupMockDB(t)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(eventRow(eventID, "Free", false, 100, 0))

	status, envelope := postRegistration(t, registrationApp(),
		fmt.Sprintf("/api/events/%s/register", eventID),
		`{"name":"Nimal Perera","email":"nimal@uni.edu"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Registration is not open for this event", envelope["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterForEventRejectsPaidWithoutReceipt(t *testing.T) {
	mock := setupMockDB(t)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(eventRow(eventID, "Rs. 500", true, 100, 0))

	status, envelope := postRegistration(t, registrationApp(),
		fmt.Sprintf("/api/events/%s/register", eventID),
		`{"name":"Nimal Perera","email":"nimal@uni.edu"}`)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "A payment receipt is required for paid events", envelope["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterForEventUnknownEvent(t *testing.T) {
	mock := setupMockDB(t)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	status, _ := postRegistration(t, registrationApp(),
		fmt.Sprintf("/api/events/%s/register", eventID),
		`{"name":"Nimal Perera","email":"nimal@uni.edu"}`)

	assert.Equal(t, fiber.StatusNotFound, status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterForEventIncrementsAndCreates(t *testing.T) {
	mock := setupMockDB(t)
	eventID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "events"`).
		WillReturnRows(eventRow(eventID, "Free", true, 100, 42))
	mock.ExpectExec(`UPDATE "events" SET "registered_count"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	status, envelope := postRegistration(t, registrationApp(),
		fmt.Sprintf("/api/events/%s/register", eventID),
		`{"name":"Nimal Perera","email":"nimal@uni.edu"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "Registration created successfully", envelope["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRegistrationWalkInSkipsEventGuards(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`INSERT INTO "registrations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

	status, _ := postRegistration(t, registrationApp(), "/api/registrations",
		`{"name":"Walk In","email":"walkin@uni.edu"}`)

	assert.Equal(t, fiber.StatusCreated, status)
	assert.NoError(t, mock.ExpectationsWereMet(), "no event lookup or counter update for walk-ins")
}
