package orders

import (
	"context"
	"time"

	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
)

// Repository exposes the shared-order-store reads the analytics engine
// depends on. Orders are multi-vendor; callers attribute line items to a
// single store after the fetch.
type Repository interface {
	// FindByProductsAndDateRange returns orders containing at least one line
	// item for one of the given products, created in [start, end). A nil end
	// leaves the window open. Line-item products and the buying customer are
	// resolved on the returned orders.
	FindByProductsAndDateRange(ctx context.Context, productIDs []uuid.UUID, start time.Time, end *time.Time) ([]models.Order, error)
}
