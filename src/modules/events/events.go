package events

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

func CreateEvent(c *fiber.Ctx) error {
	db := database.DB

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	event := BuildCreateRecord(payload)
	if result := db.Create(event); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Event created successfully", event)
}

func GetAllEvents(c *fiber.Ctx) error {
	db := database.DB

	var events []models.Event
	query := db.Order("date ASC")
	if faculty := c.Query("faculty"); faculty != "" {
		query = query.Where("faculty = ?", faculty)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&events).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Events retrieved successfully", events)
}

func GetEventByID(c *fiber.Ctx) error {
	db := database.DB
	eventID := c.Params("id")

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event details retrieved successfully", event)
}

func UpdateEvent(c *fiber.Ctx) error {
	db := database.DB
	eventID := c.Params("id")

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	patch := BuildUpdatePatch(payload)
	if result := db.Model(&event).Updates(patch); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Event")
	}

	// Reload so the response reflects the stored row, not the patch.
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event updated successfully", event)
}

func DeleteEvent(c *fiber.Ctx) error {
	db := database.DB
	eventID := c.Params("id")

	var event models.Event
	if err := db.Where("id = ?", eventID).First(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	if err := db.Delete(&event).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Event deleted successfully", nil)
}

func GetFeaturedEvents(c *fiber.Ctx) error {
	db := database.DB

	var events []models.Event
	if err := db.Where("featured = ?", true).Order("date ASC").Find(&events).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Featured events retrieved successfully", events)
}

func GetEventsByCategory(c *fiber.Ctx) error {
	db := database.DB
	category := CurrentCategory(c.Params("category"))

	var events []models.Event
	if err := db.Where("category = ?", category).Order("date ASC").Find(&events).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Events retrieved successfully", events)
}

func GetUpcomingEvents(c *fiber.Ctx) error {
	db := database.DB
	today := time.Now().Format(dateFormat)

	var events []models.Event
	if err := db.Where("date >= ? AND status = ?", today, "Active").Order("date ASC").Find(&events).Error; err != nil {
		return helpers.MapDBError(c, err, "Event")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Upcoming events retrieved successfully", events)
}
