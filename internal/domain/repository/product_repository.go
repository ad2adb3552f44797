package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product cannot be located.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the operations for product persistence.
type ProductRepository interface {
	// FindByID retrieves a single product.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves all products, newest first.
	List(ctx context.Context) ([]*entity.Product, error)

	// ListByOwnerID retrieves the products owned by a creator.
	ListByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)

	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// DeleteOwned removes a product only when it is owned by ownerID.
	// Returns ErrProductNotFound when no such owned product exists.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) error
}
