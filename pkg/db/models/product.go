package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Product represents the canonical vendor listing. StoreID is the attribution
// key: a line item belongs to a vendor iff its product's StoreID matches.
type Product struct {
	ID         uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	StoreID    uuid.UUID      `gorm:"column:store_id;type:uuid;not null;index"`
	Title      string         `gorm:"column:title;not null"`
	SKU        string         `gorm:"column:sku;not null"`
	ImageURLs  pq.StringArray `gorm:"column:image_urls;type:text[];not null;default:ARRAY[]::text[]"`
	PriceCents int            `gorm:"column:price_cents;not null"`
	StockQty   int            `gorm:"column:stock_qty;not null;default:0"`
	InStock    bool           `gorm:"column:in_stock;not null;default:true"`
	IsActive   bool           `gorm:"column:is_active;not null;default:true"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// PrimaryImage returns the first listing image, empty when none uploaded.
func (p Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
