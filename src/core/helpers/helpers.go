package helpers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/LakniR23/EventHub-sub001/src/core/config"
)

// Initialize a validator instance using go-playground's validator package
var Validator = validator.New()

// Validate checks the struct fields against the specified validation tags.
func Validate(val interface{}) error {
	return Validator.Struct(val)
}

// HandleSuccess sends a structured JSON response for successful requests.
func HandleSuccess(context *fiber.Ctx, statusCode int, message string, data interface{}) error {
	return context.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"error":   nil,
		"data":    data,
	})
}

// HandleSuccessWithWarning is HandleSuccess plus a warning field, used when a
// best-effort side effect (an image write) failed but the record was saved.
func HandleSuccessWithWarning(context *fiber.Ctx, statusCode int, message, warning string, data interface{}) error {
	return context.Status(statusCode).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"warning": warning,
		"error":   nil,
		"data":    data,
	})
}

// HandleError sends a structured JSON response for errors.
func HandleError(context *fiber.Ctx, statusCode int, message string, err error) error {
	return context.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   errorString(err),
		"data":    nil,
	})
}

// HandleValidationError reports per-field validation failures as a 400.
func HandleValidationError(context *fiber.Ctx, err error) error {
	return context.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"status":  "error",
		"message": "Validation failed",
		"errors":  FormatValidationErrors(err),
		"data":    nil,
	})
}

// FormatValidationErrors flattens validator errors into {field, rule, message}
// entries the frontend can render next to each form input.
func FormatValidationErrors(err error) []fiber.Map {
	out := []fiber.Map{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out = append(out, fiber.Map{"message": err.Error()})
		return out
	}
	for _, fe := range verrs {
		out = append(out, fiber.Map{
			"field":   fe.Field(),
			"rule":    fe.Tag(),
			"message": "Field validation failed on the '" + fe.Tag() + "' rule",
		})
	}
	return out
}

// MapDBError translates persistence-layer errors into HTTP responses:
// record-not-found becomes 404, duplicate-key 400, anything else 500. The raw
// error string is exposed only outside production builds.
func MapDBError(context *fiber.Ctx, err error, entity string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return HandleError(context, fiber.StatusNotFound, entity+" not found", nil)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return HandleError(context, fiber.StatusBadRequest, "Duplicate "+entity, err)
	default:
		if config.IsProduction() {
			return HandleError(context, fiber.StatusInternalServerError, "Database operation failed", nil)
		}
		return HandleError(context, fiber.StatusInternalServerError, "Database operation failed", err)
	}
}

func errorString(err error) interface{} {
	if err == nil {
		return nil
	}
	return err.Error()
}
