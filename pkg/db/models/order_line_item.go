package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderLineItem captures the snapshot of one item within an order. ProductID
// and Product stay nullable: the referenced listing may have been deleted
// since purchase, and an unresolved product is treated as belonging to no
// vendor rather than as an error.
type OrderLineItem struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID        uuid.UUID  `gorm:"column:order_id;type:uuid;not null;index"`
	ProductID      *uuid.UUID `gorm:"column:product_id;type:uuid"`
	Product        *Product   `gorm:"foreignKey:ProductID"`
	UnitPriceCents int64      `gorm:"column:unit_price_cents;not null"`
	Qty            int        `gorm:"column:qty;not null"`
	SubtotalCents  *int64     `gorm:"column:subtotal_cents"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// Revenue returns the line subtotal, falling back to price*qty when the
// precomputed subtotal is absent. Quantity is clamped to at least one.
func (li OrderLineItem) Revenue() int64 {
	if li.SubtotalCents != nil {
		return *li.SubtotalCents
	}
	qty := li.Qty
	if qty < 1 {
		qty = 1
	}
	return li.UnitPriceCents * int64(qty)
}
