package products

import (
	"context"

	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
)

// Repository exposes the catalog reads the analytics engine depends on.
type Repository interface {
	// FindByStore returns every product owned by the store, in creation order.
	FindByStore(ctx context.Context, storeID uuid.UUID) ([]models.Product, error)
}
