package models

import (
	"time"

	"github.com/google/uuid"
)

// Club is a student club or society. Image holds only the stored filename;
// the absolute URL is derived at read time from the backend base URL.
type Club struct {
	ID                  uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Name                string    `json:"name" gorm:"type:varchar(255);not null"`
	Description         string    `json:"description" gorm:"type:text"`
	Category            string    `json:"category" gorm:"type:varchar(100)"`
	Faculty             string    `json:"faculty" gorm:"type:varchar(100)"`
	Status              string    `json:"status" gorm:"type:varchar(20);default:'Active'"`
	MemberCount         int       `json:"memberCount" gorm:"type:int;default:0"`
	EstablishedYear     *int      `json:"establishedYear" gorm:"type:int"`
	EventsCount         int       `json:"eventsCount" gorm:"type:int;default:0"`
	StudentSatisfaction float64   `json:"studentSatisfaction" gorm:"type:decimal(2,1);default:0"`

	Mission            string `json:"mission" gorm:"type:text"`
	KeyActivities      string `json:"keyActivities" gorm:"type:text"`
	Achievements       string `json:"achievements" gorm:"type:text"`
	Awards             string `json:"awards" gorm:"type:text"`
	DigitalInitiatives string `json:"digitalInitiatives" gorm:"type:text"`

	// Opaque contact blob maintained by the admin frontend.
	Contact string `json:"contact" gorm:"type:text"`

	Image *string `json:"image" gorm:"type:varchar(255)"`

	// Derived, not stored.
	ImageURL *string `json:"imageUrl" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
