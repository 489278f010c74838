package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

// Order is a multi-vendor order: its line items may reference products owned
// by several vendor stores. TotalCents spans every vendor's items, so vendor
// metrics must re-aggregate from the attributed line-item subset.
type Order struct {
	ID          uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber int64             `gorm:"column:order_number;not null;uniqueIndex"`
	CustomerID  uuid.UUID         `gorm:"column:customer_id;type:uuid;not null;index"`
	Customer    *Customer         `gorm:"foreignKey:CustomerID"`
	Status      enums.OrderStatus `gorm:"column:status;type:order_status;not null;default:'processing'"`
	TotalCents  int64             `gorm:"column:total_cents;not null"`
	Items       []OrderLineItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time         `gorm:"column:created_at;autoCreateTime;index"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
