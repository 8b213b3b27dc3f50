package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CheckoutResult struct {
	OrderNumber string          `json:"order_number"`
	Total       decimal.Decimal `json:"total"`
}

type OrderResponse struct {
	OrderNumber  string          `json:"order_number"`
	CustomerName string          `json:"customer_name"`
	Status       string          `json:"status"`
	Lines        []CartLineDTO   `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	PickupDate   string          `json:"pickup_date,omitempty"`
	PickupTime   string          `json:"pickup_time,omitempty"`
	DeliveryDate string          `json:"delivery_date,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderCreatedMessage is the event payload published when an order is
// finalized; the notification consumer emails the confirmation from it.
type OrderCreatedMessage struct {
	OrderNumber   string        `json:"order_number"`
	CustomerName  string        `json:"customer_name"`
	CustomerEmail string        `json:"customer_email"`
	Address       string        `json:"address"`
	PickupDate    string        `json:"pickup_date"`
	PickupTime    string        `json:"pickup_time"`
	Lines         []CartLineDTO `json:"lines"`
	Total         string        `json:"total"`
}
