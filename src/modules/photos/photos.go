package photos

import (
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
	"github.com/LakniR23/EventHub-sub001/src/utils"
)

const (
	uploadSubdir = "photos"

	// MaxPhotosPerUpload and MaxPhotoFileSize bound a single admin upload
	// request; the app-level body limit is sized from them.
	MaxPhotosPerUpload = 100
	MaxPhotoFileSize   = 50 * 1024 * 1024
)

// ErrNoOwner is returned when a photo references neither an event nor a club.
var ErrNoOwner = errors.New("a photo must reference an event, a club, or both")

// ValidateOwners enforces the at-least-one-owner invariant.
func ValidateOwners(eventID, clubID *uuid.UUID) error {
	if eventID == nil && clubID == nil {
		return ErrNoOwner
	}
	return nil
}

// ParseOwnerID turns a form/query value into an optional uuid; empty means
// no owner of that kind.
func ParseOwnerID(value string) (*uuid.UUID, error) {
	if value == "" {
		return nil, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", value, err)
	}
	return &id, nil
}

// UploadPhotos handles the admin multipart upload (field name "photos", up to
// 100 files per request). Owner ids arrive as regular form values.
func UploadPhotos(c *fiber.Ctx) error {
	db := database.DB

	form, err := c.MultipartForm()
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Failed to parse form data", err)
	}

	files := form.File["photos"]
	if len(files) == 0 {
		return helpers.HandleError(c, fiber.StatusBadRequest, "No photos supplied", nil)
	}
	if len(files) > MaxPhotosPerUpload {
		return helpers.HandleError(c, fiber.StatusBadRequest,
			fmt.Sprintf("At most %d photos may be uploaded per request", MaxPhotosPerUpload), nil)
	}
	if names := oversizedFiles(files); len(names) > 0 {
		return helpers.HandleError(c, fiber.StatusRequestEntityTooLarge,
			fmt.Sprintf("Each photo must be at most %dMB, too large: %s",
				MaxPhotoFileSize/(1024*1024), strings.Join(names, ", ")), nil)
	}

	eventID, err := ParseOwnerID(c.FormValue("eventId"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid event ID format", err)
	}
	clubID, err := ParseOwnerID(c.FormValue("clubId"))
	if err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid club ID format", err)
	}
	if err := ValidateOwners(eventID, clubID); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	if err := checkOwnersExist(db, eventID, clubID); err != nil {
		return helpers.MapDBError(c, err, "Photo owner")
	}

	photographer := c.FormValue("photographer")
	caption := c.FormValue("caption")

	created := make([]models.Photo, 0, len(files))
	var failed []string
	for _, file := range files {
		fileName, err := utils.SaveUpload(file, uploadSubdir)
		if err != nil {
			log.Printf("Failed to store photo %s: %v\n", file.Filename, err)
			failed = append(failed, file.Filename)
			continue
		}

		photo := models.Photo{
			EventID:      eventID,
			ClubID:       clubID,
			Filename:     fileName,
			Photographer: photographer,
			Caption:      caption,
		}
		if result := db.Create(&photo); result.Error != nil {
			log.Printf("Failed to persist photo %s: %v\n", fileName, result.Error)
			failed = append(failed, file.Filename)
			continue
		}
		decoratePhoto(db, &photo)
		created = append(created, photo)
	}

	if len(created) == 0 {
		return helpers.HandleError(c, fiber.StatusInternalServerError, "Failed to store any of the uploaded photos", nil)
	}
	if len(failed) > 0 {
		warning := fmt.Sprintf("%d of %d photos could not be stored", len(failed), len(files))
		return helpers.HandleSuccessWithWarning(c, fiber.StatusCreated, "Photos uploaded", warning, created)
	}
	return helpers.HandleSuccess(c, fiber.StatusCreated, "Photos uploaded successfully", created)
}

func GetAllPhotos(c *fiber.Ctx) error {
	db := database.DB

	var photos []models.Photo
	query := db.Order("created_at DESC")
	if eventID := c.Query("eventId"); eventID != "" {
		query = query.Where("event_id = ?", eventID)
	}
	if clubID := c.Query("clubId"); clubID != "" {
		query = query.Where("club_id = ?", clubID)
	}
	if err := query.Find(&photos).Error; err != nil {
		return helpers.MapDBError(c, err, "Photo")
	}

	for i := range photos {
		decoratePhoto(db, &photos[i])
	}
	return helpers.HandleSuccess(c, fiber.StatusOK, "Photos retrieved successfully", photos)
}

// UpdatePhoto re-validates only the owner ids that changed relative to the
// stored record, then re-enforces the at-least-one-owner invariant on the
// post-update candidates. Unresolvable ids become null, never stale values.
func UpdatePhoto(c *fiber.Ctx) error {
	db := database.DB
	photoID := c.Params("id")

	var photo models.Photo
	if err := db.Where("id = ?", photoID).First(&photo).Error; err != nil {
		return helpers.MapDBError(c, err, "Photo")
	}

	payload := map[string]interface{}{}
	if err := c.BodyParser(&payload); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	candidateEvent := photo.EventID
	candidateClub := photo.ClubID
	updates := map[string]interface{}{"updated_at": time.Now()}

	if v, present := payload["eventId"]; present {
		s, _ := v.(string)
		parsed, err := ParseOwnerID(s)
		if err != nil {
			parsed = nil
		}
		if parsed != nil && !sameID(parsed, photo.EventID) {
			if err := db.Where("id = ?", *parsed).First(&models.Event{}).Error; err != nil {
				return helpers.MapDBError(c, err, "Event")
			}
		}
		candidateEvent = parsed
		updates["event_id"] = idOrNil(parsed)
	}
	if v, present := payload["clubId"]; present {
		s, _ := v.(string)
		parsed, err := ParseOwnerID(s)
		if err != nil {
			parsed = nil
		}
		if parsed != nil && !sameID(parsed, photo.ClubID) {
			if err := db.Where("id = ?", *parsed).First(&models.Club{}).Error; err != nil {
				return helpers.MapDBError(c, err, "Club")
			}
		}
		candidateClub = parsed
		updates["club_id"] = idOrNil(parsed)
	}

	if err := ValidateOwners(candidateEvent, candidateClub); err != nil {
		return helpers.HandleError(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	for key, column := range map[string]string{"photographer": "photographer", "caption": "caption"} {
		if v, present := payload[key]; present {
			if s, ok := v.(string); ok {
				updates[column] = s
			}
		}
	}

	if result := db.Model(&photo).Updates(updates); result.Error != nil {
		return helpers.MapDBError(c, result.Error, "Photo")
	}

	if err := db.Where("id = ?", photoID).First(&photo).Error; err != nil {
		return helpers.MapDBError(c, err, "Photo")
	}

	decoratePhoto(db, &photo)
	return helpers.HandleSuccess(c, fiber.StatusOK, "Photo updated successfully", photo)
}

func DeletePhoto(c *fiber.Ctx) error {
	db := database.DB
	photoID := c.Params("id")

	var photo models.Photo
	if err := db.Where("id = ?", photoID).First(&photo).Error; err != nil {
		return helpers.MapDBError(c, err, "Photo")
	}

	if err := db.Delete(&photo).Error; err != nil {
		return helpers.MapDBError(c, err, "Photo")
	}

	// Unlink the backing file; a file that is already gone is fine.
	if err := utils.DeleteStoredFile(uploadSubdir + "/" + photo.Filename); err != nil {
		log.Printf("Failed to remove photo file %s: %v\n", photo.Filename, err)
	}

	return helpers.HandleSuccess(c, fiber.StatusOK, "Photo deleted successfully", nil)
}

// oversizedFiles lists uploads above the per-file ceiling.
func oversizedFiles(files []*multipart.FileHeader) []string {
	var names []string
	for _, file := range files {
		if file.Size > MaxPhotoFileSize {
			names = append(names, file.Filename)
		}
	}
	return names
}

func checkOwnersExist(db *gorm.DB, eventID, clubID *uuid.UUID) error {
	if eventID != nil {
		if err := db.Where("id = ?", *eventID).First(&models.Event{}).Error; err != nil {
			return err
		}
	}
	if clubID != nil {
		if err := db.Where("id = ?", *clubID).First(&models.Club{}).Error; err != nil {
			return err
		}
	}
	return nil
}

// decoratePhoto fills the derived URL and resolves owner display names.
func decoratePhoto(db *gorm.DB, photo *models.Photo) {
	photo.URL = utils.PublicURL(uploadSubdir + "/" + photo.Filename)

	if photo.EventID != nil {
		var event models.Event
		if err := db.Select("title").Where("id = ?", *photo.EventID).First(&event).Error; err == nil {
			photo.EventTitle = &event.Title
		}
	}
	if photo.ClubID != nil {
		var club models.Club
		if err := db.Select("name").Where("id = ?", *photo.ClubID).First(&club).Error; err == nil {
			photo.ClubName = &club.Name
		}
	}
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// idOrNil keeps the update map friendly to GORM: a typed nil pointer would
// not write NULL the way an untyped nil does.
func idOrNil(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
