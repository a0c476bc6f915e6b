package careers

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
	"gorm.io/datatypes"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

const dateFormat = "2006-01-02"

type careerBody struct {
	Title            string   `json:"title"`
	Category         string   `json:"category"`
	Type             string   `json:"type"`
	Date             string   `json:"date"`
	Time             string   `json:"time"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Description      string   `json:"description"`
	MaxParticipants  *int     `json:"maxParticipants"`
	Deadline         string   `json:"deadline"`
	JobOpportunities []string `json:"jobOpportunities"`
	Requirements     []string `json:"requirements"`
	Tags             []string `json:"tags"`

	Agenda   json.RawMessage `json:"agenda"`
	Speakers json.RawMessage `json:"speakers"`

	// Data URI, stored inline on the record.
	Image string `json:"image"`
}

func CreateCareer(c *fiber.Ctx) error {
	db := database.DB

	body := new(careerBody)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if strings.TrimSpace(body.Title) == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Career session title is required", nil)
	}

	date, err := time.Parse(dateFormat, body.Date)
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", err)
	}

	career := models.Career{
		Title:            body.Title,
		Category:         body.Category,
		Type:             body.Type,
		Date:             date,
		Time:             body.Time,
		Company:          body.Company,
		Location:         body.Location,
		Description:      body.Description,
		MaxParticipants:  body.MaxParticipants,
		JobOpportunities: pq.StringArray(body.JobOpportunities),
		Requirements:     pq.StringArray(body.Requirements),
		Tags:             pq.StringArray(body.Tags),
	}
	if body.Deadline != "" {
		if deadline, err := time.Parse(dateFormat, body.Deadline); err == nil {
			career.Deadline = &deadline
		}
	}
	if len(body.Agenda) > 0 {
		career.Agenda = datatypes.JSON(body.Agenda)
	}
	if len(body.Speakers) > 0 {
		career.Speakers = datatypes.JSON(body.Speakers)
	}
	if strings.TrimSpace(body.Image) != "" {
		career.Image = &body.Image
	}

	if result := db.Create(&career); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Career")
	}

	return helpers.HandleSuccess(c, fiber.StatusCreated, "Career session created successfully", career)
}

func GetAllCareers(c *fiber.Ctx) error {
	db := database.DB

	var careers []models.Career
	query := db.Order("date ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&careers).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Career sessions retrieved successfully", careers)
}

func GetCareerByID(c *fiber.Ctx) error {
	db := database.DB
	careerID := c.Params("id")

	var career models.Career
	if err := db.Where("id = ?", careerID).First(&career).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Career session details retrieved successfully", career)
}

func UpdateCareer(c *fiber.Ctx) error {
	db := database.DB
	careerID := c.Params("id")

	var career models.Career
	if err := db.Where("id = ?", careerID).First(&career).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := buildCareerPatch(payload)
	if result := db.Model(&career).Updates(updates); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Career")
	}

	if err := db.Where("id = ?", careerID).First(&career).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Career session updated successfully", career)
}

func DeleteCareer(c *fiber.Ctx) error {
	db := database.DB
	careerID := c.Params("id")

	var career models.Career
	if err := db.Where("id = ?", careerID).First(&career).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	if err := db.Delete(&career).Error; err != nil {
		return helpers.MapDBError(c, err, "Career")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Career session deleted successfully", nil)
}

func buildCareerPatch(payload map[string]interface{}) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": time.Now()}

	for key, column := range map[string]string{
		"title":       "title",
		"category":    "category",
		"type":        "type",
		"time":        "time",
		"company":     "company",
		"location":    "location",
		"description": "description",
		"image":       "image",
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
	if v, present := payload["deadline"]; present {
		if s, ok := v.(string); ok && s != "" {
			if t, err := time.Parse(dateFormat, s); err == nil {
				updates["deadline"] = t
			}
		} else {
			updates["deadline"] = nil
		}
	}
	if v, present := payload["maxParticipants"]; present {
		if n, ok := v.(float64); ok && n > 0 {
			updates["max_participants"] = int(n)
		} else {
			updates["max_participants"] = nil
		}
	}

	for key, column := range map[string]string{
		"jobOpportunities": "job_opportunities",
		"requirements":     "requirements",
		"tags":             "tags",
	} {
		if v, present := payload[key]; present {
			if arr, ok := v.([]interface{}); ok {
				values := make([]string, 0, len(arr))
				for _, item := range arr {
					if s, ok := item.(string); ok {
						values = append(values, s)
					}
				}
				updates[column] = pq.StringArray(values)
			}
		}
	}

	for key, column := range map[string]string{"agenda": "agenda", "speakers": "speakers"} {
		if v, present := payload[key]; present {
			if arr, ok := v.([]interface{}); ok && len(arr) > 0 {
				if data, err := json.Marshal(arr); err == nil {
					updates[column] = datatypes.JSON(data)
				}
			}
		}
	}

	return updates
}
