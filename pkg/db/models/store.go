package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/dcastaneda/mercato-backend/pkg/enums"
)

// Store represents a marketplace storefront owned by a vendor or buyer org.
type Store struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Type        enums.StoreType `gorm:"column:type;type:store_type;not null"`
	CompanyName string          `gorm:"column:company_name;not null"`
	DBAName     *string         `gorm:"column:dba_name"`
	LogoURL     *string         `gorm:"column:logo_url"`
	IsActive    bool            `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
