package registrations

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

type registrationBody struct {
	EventID            *uuid.UUID `json:"eventId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Phone              string     `json:"phone"`
	RegistrationNumber string     `json:"registrationNumber"`
	Receipt            string     `json:"receipt"`
	ConfirmPresence    bool       `json:"confirmPresence"`
	Notes              string     `json:"notes"`
}

// IsPaid reports whether a price value indicates a paying event. Anything
// other than empty or "Free" counts as paid.
func IsPaid(price string) bool {
	price = strings.TrimSpace(price)
	return price != "" && !strings.EqualFold(price, "Free")
}

// ReceiptMissing reports whether a paid event registration arrived without
// the required receipt.
func ReceiptMissing(price, receipt string) bool {
	return IsPaid(price) && strings.TrimSpace(receipt) == ""
}

func CreateRegistration(c *fiber.Ctx) error {
	body := new(registrationBody)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	return createRegistration(c, body)
}

// RegisterForEvent handles POST /api/events/:id/register; the event id comes
// from the path rather than the body.
func RegisterForEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid event ID format", err)
	}

	body := new(registrationBody)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	body.EventID = &eventID
	return createRegistration(c, body)
}

func createRegistration(c *fiber.Ctx, body *registrationBody) error {
	db := database.DB

	registration := models.Registration{
		EventID:            body.EventID,
		Name:               body.Name,
		Email:              body.Email,
		Phone:              body.Phone,
		RegistrationNumber: body.RegistrationNumber,
		Receipt:            body.Receipt,
		ConfirmPresence:    body.ConfirmPresence,
		Notes:              body.Notes,
	}

	// Walk-in registrations without an event reference skip the guards.
	if body.EventID == nil {
		if result := db.Create(&registration); result.Error != nil {
			return helpers.MapDBError(c, result.Error, "Registration")
		}
		return helpers.HandleSuccess(c, fiber.StatusCreated, "Registration created successfully", registration)
	}

	var event models.Event
	if err := db.Where("id = ?", *body.EventID).First(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	if !event.HasRegistration {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Registration is not open for this event", nil)
	}
	if ReceiptMissing(event.Price, body.Receipt) {
		return helpers.HandleError(c, fiber.StatusBadRequest, "A payment receipt is required for paid events", nil)
	}

	// Capacity check and increment as one conditional update, so two
	// near-capacity registrations cannot both pass a read-then-write check.
	result := db.Model(&models.Event{}).
		Where("id = ? AND (max_participants IS NULL OR registered_count < max_participants)", *body.EventID).
		UpdateColumn("registered_count", gorm.Expr("registered_count + 1"))
	if result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Event")
	}
	if result.RowsAffected == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Event is full", nil)
	}

	if createResult := db.Create(&registration); createResult.Error != nil {
		// Give the seat back; the failure to do so is logged, not surfaced.
		if err := decrementRegisteredCount(db, *body.EventID); err != nil {
			log.Printf("Failed to roll back registered count for event %s: %v\n", body.EventID, err)
		}
		return helpers.MapDBError(c, createResult.Error, "Registration")
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Registration created successfully", registration)
}

func GetAllRegistrations(c *fiber.Ctx) error {
	db := database.DB

	var registrations []models.Registration
	query := db.Order("created_at DESC")
	if eventID := c.Query("eventId"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if err := query.Find(&registrations).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Registrations retrieved successfully", registrations)
}

func GetRegistrationByID(c *fiber.Ctx) error {
	db := database.DB
	registrationID := c.Params("id")

	var registration models.Registration
	if err := db.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Registration details retrieved successfully", registration)
}

func UpdateRegistration(c *fiber.Ctx) error {
	db := database.DB
	registrationID := c.Params("id")

	var registration models.Registration
	if err := db.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := map[string]interface{}{"updated_at": time.Now()}
	for key, column := range map[string]string{
		"name":               "name",
		"email":              "email",
		"phone":              "phone",
		"registrationNumber": "registration_number",
		"receipt":            "receipt",
		"notes":              "notes",
	} {
		if v, present := payload[key]; present {
			if s, ok := v.(string); ok {
				updates[column] = s
			}
		}
	}
	if v, present := payload["confirmPresence"]; present {
		if b, ok := v.(bool); ok {
			updates["confirm_presence"] = b
		}
	}

	if result := db.Model(&registration).Updates(updates); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Registration")
	}

	if err := db.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Registration updated successfully", registration)
}

func DeleteRegistration(c *fiber.Ctx) error {
	db := database.DB
	registrationID := c.Params("id")

	var registration models.Registration
	if err := db.Where("id = ?", registrationID).First(&registration).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	if err := db.Delete(&registration).Error; err != nil {
		return helpers.MapDBError(c, err, "Registration")
	}

	// Best-effort decrement: the row is already gone, so a failure here (for
	// example the owning event has been deleted) is logged and swallowed.
	if registration.EventID != nil {
		if err := decrementRegisteredCount(db, *registration.EventID); err != nil {
			log.Printf("Failed to decrement registered count for event %s: %v\n", registration.EventID, err)
		}
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Registration deleted successfully", nil)
}

func decrementRegisteredCount(db *gorm.DB, eventID uuid.UUID) error {
	return db.Model(&models.Event{}).
		Where("id = ? AND registered_count > 0", eventID).
		UpdateColumn("registered_count", gorm.Expr("registered_count - 1")).Error
}
