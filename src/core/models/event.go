package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Event is a university event shown on the public calendar. Optional columns
// are pointers so that "never supplied" and "cleared" are both representable.
type Event struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title           string     `json:"title" gorm:"type:varchar(255);not null"`
	Description     string     `json:"description" gorm:"type:text;not null"`
	FullDescription *string    `json:"fullDescription" gorm:"type:text"`
	Date            time.Time  `json:"date" gorm:"type:date;not null"`
	EndDate         *time.Time `json:"endDate" gorm:"type:date"`
	Time            string     `json:"time" gorm:"type:varchar(50)"`
	Location        string     `json:"location" gorm:"type:varchar(255)"`
	Faculty         string     `json:"faculty" gorm:"type:varchar(100);not null"`
	Category        string     `json:"category" gorm:"type:varchar(100);not null"`
	Organizer       string     `json:"organizer" gorm:"type:varchar(255)"`
	Status          string     `json:"status" gorm:"type:varchar(20);default:'Active'"`
	Price           string     `json:"price" gorm:"type:varchar(50);default:'Free'"`
	Featured        bool       `json:"featured" gorm:"default:false"`
	HasRegistration bool       `json:"hasRegistration" gorm:"default:true"`
	MaxParticipants *int       `json:"maxParticipants" gorm:"type:int"`
	RegisteredCount int        `json:"registeredCount" gorm:"type:int;default:0"`

	Tags         pq.StringArray `json:"tags" gorm:"type:text[]"`
	Requirements pq.StringArray `json:"requirements" gorm:"type:text[]"`
	Prizes       pq.StringArray `json:"prizes" gorm:"type:text[]"`

	// Ordered sequences of {time, activity} and {name, title, bio, image},
	// and a {email, phone, coordinator} mapping.
	Agenda   datatypes.JSON `json:"agenda,omitempty"`
	Speakers datatypes.JSON `json:"speakers,omitempty"`
	Contact  datatypes.JSON `json:"contact,omitempty"`

	Image *string `json:"image" gorm:"type:text"`

	// Career-fair style extras, present on a minority of events.
	Company                 *string `json:"company" gorm:"type:varchar(255)"`
	Industry                *string `json:"industry" gorm:"type:varchar(255)"`
	JobOpportunities        *string `json:"jobOpportunities" gorm:"type:text"`
	InternshipOpportunities *string `json:"internshipOpportunities" gorm:"type:text"`
	SkillsRequired          *string `json:"skillsRequired" gorm:"type:text"`
	Dresscode               *string `json:"dresscode" gorm:"type:varchar(255)"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
