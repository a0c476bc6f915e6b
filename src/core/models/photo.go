package models

import (
	"time"

	"github.com/google/uuid"
)

// Photo is a gallery image owned by an event, a club, or both. At least one
// owner id must be set; both references are weak (lookup only, no cascade).
type Photo struct {
	ID           uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID      *uuid.UUID `json:"eventId" gorm:"type:uuid;index"`
	ClubID       *uuid.UUID `json:"clubId" gorm:"type:uuid;index"`
	Filename     string     `json:"filename" gorm:"type:varchar(255);not null"`
	Photographer string     `json:"photographer" gorm:"type:varchar(255)"`
	Caption      string     `json:"caption" gorm:"type:text"`

	// Derived at read time, not stored.
	URL        string  `json:"url" gorm:"-"`
	EventTitle *string `json:"eventTitle,omitempty" gorm:"-"`
	ClubName   *string `json:"clubName,omitempty" gorm:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
