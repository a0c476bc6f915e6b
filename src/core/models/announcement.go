package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Announcement is a campus-wide notice shown on the public landing page.
type Announcement struct {
	ID             uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title          string     `json:"title" gorm:"type:varchar(255);not null"`
	Tag            string     `json:"tag" gorm:"type:varchar(100)"`
	Date           time.Time  `json:"date" gorm:"type:date;not null"`
	Author         string     `json:"author" gorm:"type:varchar(255)"`
	Priority       string     `json:"priority" gorm:"type:varchar(20);default:'Normal'"`
	Category       string     `json:"category" gorm:"type:varchar(100)"`
	Faculty        string     `json:"faculty" gorm:"type:varchar(100)"`
	Description    string     `json:"description" gorm:"type:text"`
	TargetAudience string     `json:"targetAudience" gorm:"type:varchar(255)"`
	ExpiresAt      *time.Time `json:"expiresAt"`

	Attachments datatypes.JSON `json:"attachments,omitempty"`

	ContactEmail string `json:"contactEmail" gorm:"type:varchar(255)"`
	ContactPhone string `json:"contactPhone" gorm:"type:varchar(50)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
