package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel mirrors the 'registrations' table. The composite unique
// index enforces at most one registration per (event, user) pair; duplicate
// inserts surface as a unique constraint violation.
type RegistrationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_event_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_registrations_event_user"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}
