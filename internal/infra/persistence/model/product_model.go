package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. OwnerID references users.id.
// Price is stored as the formatted display string, never as a numeric.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       string    `gorm:"type:varchar(50)"`
	Category    string    `gorm:"type:varchar(100)"`
	ImageURL    string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
