package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// OrderLine is the immutable snapshot of one cart line, stored as JSON on the
// order record.
type OrderLine struct {
	CategoryKey string          `json:"category_key"`
	ItemKey     string          `json:"item_key"`
	Name        string          `json:"name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Quantity    int             `json:"quantity"`
	Options     []string        `json:"options,omitempty"`
	Total       decimal.Decimal `json:"total"`
}

// Order is created atomically from a non-empty cart plus customer info.
// Everything except Status and UpdatedAt is immutable after creation.
type Order struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"type:varchar(40);uniqueIndex;not null"`

	CustomerName    string `gorm:"type:text;not null"`
	CustomerEmail   string `gorm:"type:text"`
	CustomerAddress string `gorm:"type:text"`
	CustomerPhone   string `gorm:"type:text"`

	Items datatypes.JSON  `gorm:"type:jsonb;not null"`
	Total decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Status string `gorm:"type:varchar(20);not null;default:'pending';index"`

	PickupDate   string `gorm:"type:text"`
	PickupTime   string `gorm:"type:text"`
	DeliveryDate string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}
