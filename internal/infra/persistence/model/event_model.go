package model

import (
	"time"

	"github.com/google/uuid"
)

// EventModel mirrors the 'events' table. OrganizerID references users.id.
type EventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"type:text"`
	Location    string    `gorm:"type:varchar(255)"`
	OrganizerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Eligibility string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Registrations []RegistrationModel `gorm:"foreignKey:EventID"`
}

// TableName explicitly sets the table name for GORM.
func (EventModel) TableName() string {
	return "events"
}
