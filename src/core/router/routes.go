package router

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/LakniR23/EventHub-sub001/src/core/config"
	"github.com/LakniR23/EventHub-sub001/src/core/middleware"
	"github.com/LakniR23/EventHub-sub001/src/modules/announcements"
	"github.com/LakniR23/EventHub-sub001/src/modules/careers"
	"github.com/LakniR23/EventHub-sub001/src/modules/clubs"
	"github.com/LakniR23/EventHub-sub001/src/modules/events"
	"github.com/LakniR23/EventHub-sub001/src/modules/photos"
	"github.com/LakniR23/EventHub-sub001/src/modules/registrations"
)

func InitialiseAndSetupRoutes(app *fiber.App) {
	// Persisted images are served straight from the uploads directory.
	app.Static("/uploads", config.UploadDir())

	api := app.Group("/api", logger.New())

	// Liveness probe
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Event routes; the hyphenated listing routes predate the REST layout and
	// are kept for the deployed frontend.
	api.Get("/events-featured", events.GetFeaturedEvents)
	api.Get("/events-upcoming", events.GetUpcomingEvents)
	api.Get("/events/category/:category", events.GetEventsByCategory)
	api.Post("/events/:id/register", middleware.ValidateRegistrationCreate(), registrations.RegisterForEvent)
	api.Post("/events", middleware.ValidateEventCreate(), events.CreateEvent)
	api.Get("/events", events.GetAllEvents)
	api.Get("/events/:id", events.GetEventByID)
	api.Put("/events/:id", middleware.ValidateEventUpdate(), events.UpdateEvent)
	api.Delete("/events/:id", events.DeleteEvent)

	// Club routes
	api.Post("/clubs", clubs.CreateClub)
	api.Get("/clubs", clubs.GetAllClubs)
	api.Get("/clubs/:id", clubs.GetClubByID)
	api.Put("/clubs/:id", clubs.UpdateClub)
	api.Delete("/clubs/:id", clubs.DeleteClub)

	// Career routes
	api.Post("/careers", careers.CreateCareer)
	api.Get("/careers", careers.GetAllCareers)
	api.Get("/careers/:id", careers.GetCareerByID)
	api.Put("/careers/:id", careers.UpdateCareer)
	api.Delete("/careers/:id", careers.DeleteCareer)

	// Announcement routes
	api.Post("/announcements", announcements.CreateAnnouncement)
	api.Get("/announcements", announcements.GetAllAnnouncements)
	api.Get("/announcements-active", announcements.GetActiveAnnouncements)
	api.Get("/announcements/:id", announcements.GetAnnouncementByID)
	api.Put("/announcements/:id", announcements.UpdateAnnouncement)
	api.Delete("/announcements/:id", announcements.DeleteAnnouncement)

	// Registration routes
	api.Post("/registrations", middleware.ValidateRegistrationCreate(), registrations.CreateRegistration)
	api.Get("/registrations", registrations.GetAllRegistrations)
	api.Get("/registrations/:id", registrations.GetRegistrationByID)
	api.Put("/registrations/:id", registrations.UpdateRegistration)
	api.Delete("/registrations/:id", registrations.DeleteRegistration)

	// Photo routes; uploads go through the admin surface.
	api.Post("/admin/photos", photos.UploadPhotos)
	api.Get("/photos", photos.GetAllPhotos)
	api.Put("/photos/:id", photos.UpdatePhoto)
	api.Delete("/photos/:id", photos.DeletePhoto)
}
