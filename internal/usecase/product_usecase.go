package usecase

import (
	"context"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProductInput defines the data a creator supplies for a new listing.
type CreateProductInput struct {
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
}

// UpdateProductInput defines the data for editing an owned listing.
type UpdateProductInput struct {
	ProductID   uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description string
	Price       string
	Category    string
	ImageURL    string
}

// ProductUsecase covers the creator's CRUD over owned products and the
// investor-facing read surface.
type ProductUsecase interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	ListOwnedProducts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Product, error)
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, input *UpdateProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id, ownerID uuid.UUID) error
}
