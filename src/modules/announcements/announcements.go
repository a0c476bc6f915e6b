package announcements

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

const dateFormat = "2006-01-02"

type announcementBody struct {
	Title          string          `json:"title"`
	Tag            string          `json:"tag"`
	Date           string          `json:"date"`
	Author         string          `json:"author"`
	Priority       string          `json:"priority"`
	Category       string          `json:"category"`
	Faculty        string          `json:"faculty"`
	Description    string          `json:"description"`
	TargetAudience string          `json:"targetAudience"`
	ExpiresAt      string          `json:"expiresAt"`
	Attachments    json.RawMessage `json:"attachments"`
	ContactEmail   string          `json:"contactEmail"`
	ContactPhone   string          `json:"contactPhone"`
}

func CreateAnnouncement(c *fiber.Ctx) error {
	db := database.DB

	body := new(announcementBody)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(body.Title) == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Announcement title is required", nil)
	}

	date, err := time.Parse(dateFormat, body.Date)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", err)
	}

	announcement := models.Announcement{
		Title:          body.Title,
		Tag:            body.Tag,
		Date:           date,
		Author:         body.Author,
		Priority:       body.Priority,
		Category:       body.Category,
		Faculty:        body.Faculty,
		Description:    body.Description,
		TargetAudience: body.TargetAudience,
		ContactEmail:   body.ContactEmail,
		ContactPhone:   body.ContactPhone,
	}
	if announcement.Priority == "" {
		announcement.Priority = "Normal"
	}
	if body.ExpiresAt != "" {
		if expires, err := time.Parse(dateFormat, body.ExpiresAt); err == nil {
			announcement.ExpiresAt = &expires
		}
	}
	if len(body.Attachments) > 0 {
		announcement.Attachments = datatypes.JSON(body.Attachments)
	}

	if result := db.Create(&announcement); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Announcement created successfully", announcement)
}

func GetAllAnnouncements(c *fiber.Ctx) error {
	db := database.DB

	var announcements []models.Announcement
	query := db.Order("date DESC")
	if faculty := c.Query("faculty"); faculty != "" {
		query = query.Where("faculty = ?", faculty)
	}
	if err := query.Find(&announcements).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Announcements retrieved successfully", announcements)
}

// GetActiveAnnouncements returns notices that have not expired, for the
// public landing page.
func GetActiveAnnouncements(c *fiber.Ctx) error {
	db := database.DB

	var announcements []models.Announcement
	err := db.Where("expires_at IS NULL OR expires_at >= ?", time.Now().Format(dateFormat)).
		Order("date DESC").
		Find(&announcements).Error
	if err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Active announcements retrieved successfully", announcements)
}

func GetAnnouncementByID(c *fiber.Ctx) error {
	db := database.DB
	announcementID := c.Params("id")

	var announcement models.Announcement
	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Announcement details retrieved successfully", announcement)
}

func UpdateAnnouncement(c *fiber.Ctx) error {
	db := database.DB
	announcementID := c.Params("id")

	var announcement models.Announcement
	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := buildAnnouncementPatch(payload)
	if result := db.Model(&announcement).Updates(updates); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Announcement")
	}

	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Announcement updated successfully", announcement)
}

func DeleteAnnouncement(c *fiber.Ctx) error {
	db := database.DB
	announcementID := c.Params("id")

	var announcement models.Announcement
	if err := db.Where("id = ?", announcementID).First(&announcement).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	if err := db.Delete(&announcement).Error; err != nil {
		return helpers.MapDBError(c, err, "Announcement")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Announcement deleted successfully", nil)
}

func buildAnnouncementPatch(payload map[string]interface{}) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": time.Now()}

	for key, column := range map[string]string{
		"title":          "title",
		"tag":            "tag",
		"author":         "author",
		"priority":       "priority",
		"category":       "category",
		"faculty":        "faculty",
		"description":    "description",
		"targetAudience": "target_audience",
		"contactEmail":   "contact_email",
		"contactPhone":   "contact_phone",
	} {
		if v, present := payload[key]; present {
			if s, ok := v.(string); ok {
				updates[column] = s
			}
		}
	}

	if v, present := payload["date"]; present {
		if s, ok := v.(string); ok {
			if t, err := time.Parse(dateFormat, s); err == nil {
				updates["date"] = t
			}
		}
	}
	if v, present := payload["expiresAt"]; present {
		if s, ok := v.(string); ok && s != "" {
			if t, err := time.Parse(dateFormat, s); err == nil {
				updates["expires_at"] = t
			}
		} else {
			updates["expires_at"] = nil
		}
	}
	if v, present := payload["attachments"]; present {
		if arr, ok := v.([]interface{}); ok && len(arr) > 0 {
			if data, err := json.Marshal(arr); err == nil {
				updates["attachments"] = datatypes.JSON(data)
			}
		}
	}

	return updates
}
