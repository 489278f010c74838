package orders

import (
	"context"
	"time"

	"github.com/dcastaneda/mercato-backend/internal/repo"
	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	repo.Base
}

// NewRepository builds an orders repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) FindByProductsAndDateRange(ctx context.Context, productIDs []uuid.UUID, start time.Time, end *time.Time) ([]models.Order, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	sub := r.DB(ctx).
		Model(&models.OrderLineItem{}).
		Select("order_id").
		Where("product_id IN ?", productIDs)

	query := r.DB(ctx).
		Preload("Customer").
		Preload("Items").
		Preload("Items.Product").
		Where("id IN (?)", sub).
		Where("created_at >= ?", start)
	if end != nil {
		query = query.Where("created_at < ?", *end)
	}

	var orders []models.Order
	if err := query.Order("created_at ASC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
