package implementation

import (
	"context"
	"errors"
	"time"

	"valetkleen-be/internal/model"
	"valetkleen-be/internal/repository/contract"

	"gorm.io/gorm"
)

type OrderRepositoryImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) contract.OrderRepository {
	return &OrderRepositoryImpl{db: db}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *model.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByNumber returns (nil, nil) when no order matches; callers translate
// that into the domain's not-found error.
func (r *OrderRepositoryImpl) FindByNumber(ctx context.Context, orderNumber string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).Where("order_number = ?", orderNumber).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	return r.db.WithContext(ctx).Model(&model.Order{}).
		Where("order_number = ?", orderNumber).
		Updates(map[string]interface{}{"status": status, "updated_at": time.Now()}).Error
}
