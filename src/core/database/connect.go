package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"github.com/LakniR23/EventHub-sub001/src/core/config"
	"github.com/LakniR23/EventHub-sub001/src/core/models"
)

var DB *gorm.DB

func ConnectDB() {
	// Fetch configuration values from environment or config files
	host := config.Config("DB_HOST")
	port := config.Config("DB_PORT")
	user := config.Config("DB_USER")
	password := config.Config("DB_PASSWORD")
	dbname := config.Config("DB_NAME")

	// Build the connection string
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbname)

	// Connect to the database with a custom config
	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,

		// Surface unique-constraint violations as gorm.ErrDuplicatedKey so
		// controllers can map them to 400 responses.
		TranslateError: true,

		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "",
			SingularTable: false,
		},
	})
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	if err := DB.AutoMigrate(
		&models.Event{},
		&models.Club{},
		&models.Career{},
		&models.Announcement{},
		&models.Registration{},
		&models.Photo{},
	); err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}

	fmt.Println("Database successfully connected!")
}
