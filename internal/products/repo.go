package products

import (
	"context"

	"github.com/dcastaneda/mercato-backend/internal/repo"
	"github.com/dcastaneda/mercato-backend/pkg/db/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	repo.Base
}

// NewRepository builds a products repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) FindByStore(ctx context.Context, storeID uuid.UUID) ([]models.Product, error) {
	var items []models.Product
	err := r.DB(ctx).
		Where("store_id = ?", storeID).
		Order("created_at ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
