package models

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a sign-up for an event. EventID is a weak reference:
// deleting an event does not cascade here, so the pointer may dangle.
type Registration struct {
	ID                 uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	EventID            *uuid.UUID `json:"eventId" gorm:"type:uuid;index"`
	Name               string     `json:"name" gorm:"type:varchar(255);not null"`
	Email              string     `json:"email" gorm:"type:varchar(255);not null"`
	Phone              string     `json:"phone" gorm:"type:varchar(50)"`
	RegistrationNumber string     `json:"registrationNumber" gorm:"type:varchar(100)"`

	// Base64 payment receipt or a stored file path; required for paid events.
	Receipt string `json:"receipt" gorm:"type:text"`

	ConfirmPresence bool   `json:"confirmPresence" gorm:"default:false"`
	Notes           string `json:"notes" gorm:"type:text"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
