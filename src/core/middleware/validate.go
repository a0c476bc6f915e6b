package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
)

// Declarative per-route validation run before the create/update controllers.
// The middleware checks required-ness, enum membership and basic shape; the
// controllers' normalizers handle coercion and defaults afterwards.

// eventCreatePayload mirrors the admin event form. The legacy "WORKSHOP"
// category token is still accepted here; the event normalizer maps it to the
// current value before persisting.
type eventCreatePayload struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Faculty     string `json:"faculty" validate:"required,oneof=COMPUTING ENGINEERING BUSINESS SCIENCE HUMANITIES MEDICINE LAW ALL"`
	Category    string `json:"category" validate:"required,oneof=WORKSHOP WORKSHOPS_CREATIVE ACADEMIC CAREER CULTURAL SPORTS TECHNOLOGY SOCIAL"`
	Organizer   string `json:"organizer" validate:"required"`
	Status      string `json:"status" validate:"omitempty,oneof=Active Inactive Cancelled Completed"`
	Price       string `json:"price" validate:"omitempty,oneof=Free Paid"`
}

// eventUpdatePayload relaxes required-ness: only supplied keys are checked.
type eventUpdatePayload struct {
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	EndDate  string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Faculty  string `json:"faculty" validate:"omitempty,oneof=COMPUTING ENGINEERING BUSINESS SCIENCE HUMANITIES MEDICINE LAW ALL"`
	Category string `json:"category" validate:"omitempty,oneof=WORKSHOP WORKSHOPS_CREATIVE ACADEMIC CAREER CULTURAL SPORTS TECHNOLOGY SOCIAL"`
	Status   string `json:"status" validate:"omitempty,oneof=Active Inactive Cancelled Completed"`
	Price    string `json:"price" validate:"omitempty,oneof=Free Paid"`
}

type registrationCreatePayload struct {
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
	Phone              string `json:"phone" validate:"omitempty,min=7,max=20"`
	RegistrationNumber string `json:"registrationNumber" validate:"omitempty,max=100"`
}

// ValidateEventCreate rejects event creation payloads that are missing
// required fields or carry out-of-enum values.
func ValidateEventCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(eventCreatePayload)
		if err := c.BodyParser(body); err != nil {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := helpers.Validate(body); err != nil {
			return helpers.HandleValidationError(c, err)
		}
		return c.Next()
	}
}

// ValidateEventUpdate checks only the fields present in a partial update.
func ValidateEventUpdate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(eventUpdatePayload)
		if err := c.BodyParser(body); err != nil {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := helpers.Validate(body); err != nil {
			return helpers.HandleValidationError(c, err)
		}
		return c.Next()
	}
}

// ValidateRegistrationCreate guards the public registration form.
func ValidateRegistrationCreate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(registrationCreatePayload)
		if err := c.BodyParser(body); err != nil {
			return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
		}
		if err := helpers.Validate(body); err != nil {
			return helpers.HandleValidationError(c, err)
		}
		return c.Next()
	}
}
