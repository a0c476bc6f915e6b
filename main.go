package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/LakniR23/EventHub-sub001/src/core/config"
	"github.com/LakniR23/EventHub-sub001/src/core/database"
	"github.com/LakniR23/EventHub-sub001/src/core/helpers"
	"github.com/LakniR23/EventHub-sub001/src/core/router"
	"github.com/LakniR23/EventHub-sub001/src/modules/photos"
)

func main() {
	// Initialize the Fiber app. The body limit must admit a full admin photo
	// upload (up to 100 files at the 50MB per-file ceiling); the per-file
	// ceiling itself is enforced in the photos handler.
	app := fiber.New(fiber.Config{
		BodyLimit:    photos.MaxPhotosPerUpload * photos.MaxPhotoFileSize,
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(recover.New())   // Recover middleware to handle panics
	app.Use(cors.New())      // CORS middleware for cross-origin requests
	app.Use(requestid.New()) // Middleware to generate unique request IDs

	// Setup environment variables
	config.SetupEnv()

	// Connect to the database
	database.ConnectDB()

	// Set up routes
	router.InitialiseAndSetupRoutes(app)

	// Get port from config and start the server
	port := config.Config("APP_PORT")
	if port == "" {
		port = "5000"
	}
	log.Fatal(app.Listen(fmt.Sprintf(":%s", port)))
}

// errorHandler maps errors that escape the handlers (oversized bodies, bad
// routes) onto the shared JSON envelope.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	if code == fiber.StatusRequestEntityTooLarge {
		return helpers.HandleError(c, code, "Uploaded payload is too large", err)
	}
	return helpers.HandleError(c, code, "Request failed", err)
}
