// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a creator-owned listing shown to investors. Price is an opaque
// formatted string ("₹1,200" etc.); the system never computes with it.
type Product struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // The creator who owns this product.
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string // Optional image reference.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
