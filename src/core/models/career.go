package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Career is a career-development session (fair, talk, interview day).
// List-shaped fields use native array/JSON columns; serialization to text
// happens only at the database boundary.
type Career struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Category        string     `json:"category" gorm:"type:varchar(100)"`
	Type            string     `json:"type" gorm:"type:varchar(100)"`
	Date            time.Time  `json:"date" gorm:"type:date;not null"`
	Time            string     `json:"time" gorm:"type:varchar(50)"`
	Company         string     `json:"company" gorm:"type:varchar(255)"`
	Location        string     `json:"location" gorm:"type:varchar(255)"`
	Description     string     `json:"description" gorm:"type:text"`
	MaxParticipants *int       `json:"maxParticipants" gorm:"type:int"`
	Participants    int        `json:"participants" gorm:"type:int;default:0"`
	Deadline        *time.Time `json:"deadline" gorm:"type:date"`

	JobOpportunities pq.StringArray `json:"jobOpportunities" gorm:"type:text[]"`
	Requirements     pq.StringArray `json:"requirements" gorm:"type:text[]"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`

	Agenda   datatypes.JSON `json:"agenda,omitempty"`
	Speakers datatypes.JSON `json:"speakers,omitempty"`

	// Stored inline as a data URI, no filesystem write for careers.
	Image *string `json:"image" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
