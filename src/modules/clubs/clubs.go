package clubs

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
	"github.com/LakniR23/EventHub-sub001/src/utils"
)

const uploadSubdir = "clubs"

type clubBody struct {
	Name                string  `json:"name"`
	Description         string  `json:"description"`
	Category            string  `json:"category"`
	Faculty             string  `json:"faculty"`
	Status              string  `json:"status"`
	MemberCount         int     `json:"memberCount"`
	EstablishedYear     *int    `json:"establishedYear"`
	EventsCount         int     `json:"eventsCount"`
	StudentSatisfaction float64 `json:"studentSatisfaction"`
	Mission             string  `json:"mission"`
	KeyActivities       string  `json:"keyActivities"`
	Achievements        string  `json:"achievements"`
	Awards              string  `json:"awards"`
	DigitalInitiatives  string  `json:"digitalInitiatives"`
	Contact             string  `json:"contact"`

	// Image is the target filename; ImageData carries the base64 bytes,
	// optionally with a data-URI header.
	Image     string `json:"image"`
	ImageData string `json:"imageData"`
}

func CreateClub(c *fiber.Ctx) error {
	db := database.DB

	body := new(clubBody)
	if err := c.BodyParser(body); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if body.Name == "" {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Club name is required", nil)
	}

	club := models.Club{
		Name:                body.Name,
		Description:         body.Description,
		Category:            body.Category,
		Faculty:             body.Faculty,
		Status:              body.Status,
		MemberCount:         body.MemberCount,
		EstablishedYear:     body.EstablishedYear,
		EventsCount:         body.EventsCount,
		StudentSatisfaction: body.StudentSatisfaction,
		Mission:             body.Mission,
		KeyActivities:       body.KeyActivities,
		Achievements:        body.Achievements,
		Awards:              body.Awards,
		DigitalInitiatives:  body.DigitalInitiatives,
		Contact:             body.Contact,
	}
	if club.Status == "" {
		club.Status = "Active"
	}
	if body.Image != "" {
		club.Image = &body.Image
	}

	warning := writeClubImage(body.Image, body.ImageData)

	if result := db.Create(&club); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Club")
	}

	decorateClub(&club)
	if warning != "" {
		return helpers.HandleSuccessWithWarning(c, fiber.StatusCreated, "Club created successfully", warning, club)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Club created successfully", club)
}

func GetAllClubs(c *fiber.Ctx) error {
	db := database.DB

	var clubs []models.Club
	query := db.Order("name ASC")
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if faculty := c.Query("faculty"); faculty != "" {
		query = query.Where("faculty = ?", faculty)
	}
	if err := query.Find(&clubs).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	for i := range clubs {
		decorateClub(&clubs[i])
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Clubs retrieved successfully", clubs)
}

func GetClubByID(c *fiber.Ctx) error {
	db := database.DB
	clubID := c.Params("id")

	var club models.Club
	if err := db.Where("id = ?", clubID).First(&club).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	decorateClub(&club)
	return helpers.HandleSuccess(c, fiber.StatusOK, "Club details retrieved successfully", club)
}

func UpdateClub(c *fiber.Ctx) error {
	db := database.DB
	clubID := c.Params("id")

	var club models.Club
	if err := db.Where("id = ?", clubID).First(&club).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	updates := buildClubPatch(payload)
	warning := writeClubImage(payloadString(payload, "image"), payloadString(payload, "imageData"))

	if result := db.Model(&club).Updates(updates); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Club")
	}

	if err := db.Where("id = ?", clubID).First(&club).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	decorateClub(&club)
	if warning != "" {
		return helpers.HandleSuccessWithWarning(c, fiber.StatusOK, "Club updated successfully", warning, club)
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Club updated successfully", club)
}

func DeleteClub(c *fiber.Ctx) error {
	db := database.DB
	clubID := c.Params("id")

	var club models.Club
	if err := db.Where("id = ?", clubID).First(&club).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	if err := db.Delete(&club).Error; err != nil {
		return helpers.MapDBError(c, err, "Club")
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Club deleted successfully", nil)
}

// buildClubPatch whitelists updatable columns from a partial payload; only
// keys present in the request are touched.
func buildClubPatch(payload map[string]interface{}) map[string]interface{} {
	updates := map[string]interface{}{"updated_at": time.Now()}

	for key, column := range map[string]string{
		"name":               "name",
		"description":        "description",
		"category":           "category",
		"faculty":            "faculty",
		"status":             "status",
		"mission":            "mission",
		"keyActivities":      "key_activities",
		"achievements":       "achievements",
		"awards":             "awards",
		"digitalInitiatives": "digital_initiatives",
		"contact":            "contact",
		"image":              "image",
	} {
		if v, present := payload[key]; present {
			if s, ok := v.(string); ok {
				updates[column] = s
			}
		}
	}

	for key, column := range map[string]string{
		"memberCount":         "member_count",
		"establishedYear":     "established_year",
		"eventsCount":         "events_count",
		"studentSatisfaction": "student_satisfaction",
	} {
		if v, present := payload[key]; present {
			if n, ok := v.(float64); ok {
				updates[column] = n
			}
		}
	}

	return updates
}

// payloadString pulls a string field out of a decoded JSON map; any other
// type (or an absent key) reads as empty.
func payloadString(payload map[string]interface{}, key string) string {
	if s, ok := payload[key].(string); ok {
		return s
	}
	return ""
}

// writeClubImage persists the uploaded image bytes when both a payload and a
// filename were supplied. The write is best-effort: a failure is logged and
// reported as a warning, but the database record is saved either way.
func writeClubImage(fileName, imageData string) string {
	if imageData == "" || fileName == "" {
		return ""
	}
	if _, err := utils.SaveBase64Image(imageData, filepath.Join(uploadSubdir, fileName)); err != nil {
		log.Printf("Failed to write club image %s: %v\n", fileName, err)
		return "Club record saved, but the image file could not be written"
	}
	return ""
}

// decorateClub computes the derived image URL; a club without a stored
// filename keeps a null imageUrl rather than a placeholder.
func decorateClub(club *models.Club) {
	if club.Image == nil || *club.Image == "" {
		return
	}
	url := utils.PublicURL(uploadSubdir + "/" + *club.Image)
	club.ImageURL = &url
}
