package contract

import (
	"context"

	"valetkleen-be/internal/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderNumber, status string) error
}
