package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/config"
	"valetkleen-be/internal/dto"
	"valetkleen-be/internal/model"
	"valetkleen-be/internal/pkg/logger"
	"valetkleen-be/internal/repository/contract"
	"valetkleen-be/pkg/store"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const orderCreatedTopic = "order.created"

type IOrderService interface {
	// Checkout turns the session's cart into a persisted order. The caller is
	// responsible for resetting the session afterwards.
	Checkout(ctx context.Context, sess *store.Session, checkoutPolicy string) (*dto.CheckoutResult, error)
	Get(ctx context.Context, orderNumber string) (*dto.OrderResponse, error)
	UpdateStatus(ctx context.Context, orderNumber, status string) error
	Cancel(ctx context.Context, orderNumber string) error
}

type orderService struct {
	orderRepo contract.OrderRepository
	publisher message.Publisher
	log       logger.ILogger
}

// NewOrderService wires the order engine. publisher may be nil, in which case
// order-created events are skipped.
func NewOrderService(orderRepo contract.OrderRepository, publisher message.Publisher, log logger.ILogger) IOrderService {
	return &orderService{
		orderRepo: orderRepo,
		publisher: publisher,
		log:       log,
	}
}

// newOrderNumber builds "VK" + second-resolution timestamp + 12 hex chars of
// randomness. The random suffix keeps numbers distinct even when thousands of
// orders land in the same second.
func newOrderNumber() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; fall back to
		// the timestamp alone rather than crash mid-checkout.
		return "VK" + time.Now().Format("20060102150405.000000000")
	}
	return "VK" + time.Now().Format("20060102150405") + hex.EncodeToString(buf)
}

func (os *orderService) Checkout(ctx context.Context, sess *store.Session, checkoutPolicy string) (*dto.CheckoutResult, error) {
	if len(sess.Cart) == 0 {
		return nil, apperror.ErrEmptyCart
	}
	if sess.Customer.Name == "" {
		return nil, fmt.Errorf("name: %w", apperror.ErrMissingCustomerInfo)
	}
	if checkoutPolicy == config.CheckoutPolicyFull {
		switch {
		case sess.Customer.Email == "":
			return nil, fmt.Errorf("email: %w", apperror.ErrMissingCustomerInfo)
		case sess.Customer.Address == "":
			return nil, fmt.Errorf("address: %w", apperror.ErrMissingCustomerInfo)
		case sess.Customer.Phone == "":
			return nil, fmt.Errorf("phone: %w", apperror.ErrMissingCustomerInfo)
		}
	}

	lines := make([]model.OrderLine, 0, len(sess.Cart))
	total := decimal.Zero
	for _, line := range sess.Cart {
		lineTotal := line.Total()
		lines = append(lines, model.OrderLine{
			CategoryKey: line.CategoryKey,
			ItemKey:     line.ItemKey,
			Name:        line.Name,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			Options:     line.Options,
			Total:       lineTotal,
		})
		total = total.Add(lineTotal)
	}

	itemsJSON, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal order lines: %w", err)
	}

	order := &model.Order{
		Id:              uuid.New(),
		OrderNumber:     newOrderNumber(),
		CustomerName:    sess.Customer.Name,
		CustomerEmail:   sess.Customer.Email,
		CustomerAddress: sess.Customer.Address,
		CustomerPhone:   sess.Customer.Phone,
		Items:           itemsJSON,
		Total:           total,
		Status:          model.OrderStatusPending,
		PickupDate:      sess.Customer.PickupDate,
		PickupTime:      sess.Customer.PickupTime,
	}

	if err := os.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	// The order is committed at this point; a failed event publish must not
	// undo it.
	os.publishOrderCreated(sess, order)

	return &dto.CheckoutResult{
		OrderNumber: order.OrderNumber,
		Total:       total,
	}, nil
}

func (os *orderService) publishOrderCreated(sess *store.Session, order *model.Order) {
	if os.publisher == nil {
		return
	}
	event := dto.OrderCreatedMessage{
		OrderNumber:   order.OrderNumber,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		Address:       order.CustomerAddress,
		PickupDate:    order.PickupDate,
		PickupTime:    order.PickupTime,
		Lines:         cartLineDTOs(sess.Cart),
		Total:         "$" + order.Total.StringFixed(2),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		os.log.Error("order_service", "marshal order created event", map[string]interface{}{"order_number": order.OrderNumber, "error": err.Error()})
		return
	}
	msg := message.NewMessage(uuid.NewString(), payload)
	if err := os.publisher.Publish(orderCreatedTopic, msg); err != nil {
		os.log.Error("order_service", "publish order created event", map[string]interface{}{"order_number": order.OrderNumber, "error": err.Error()})
	}
}

func cartLineDTOs(cart []store.CartLine) []dto.CartLineDTO {
	out := make([]dto.CartLineDTO, 0, len(cart))
	for _, line := range cart {
		out = append(out, dto.CartLineDTO{
			Id:        line.ID,
			Category:  line.CategoryKey,
			ItemKey:   line.ItemKey,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Options:   line.Options,
			Total:     line.Total(),
		})
	}
	return out
}

func (os *orderService) Get(ctx context.Context, orderNumber string) (*dto.OrderResponse, error) {
	order, err := os.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return nil, apperror.ErrOrderNotFound
	}

	var lines []model.OrderLine
	if err := json.Unmarshal(order.Items, &lines); err != nil {
		return nil, fmt.Errorf("unmarshal order lines: %w", err)
	}
	dtoLines := make([]dto.CartLineDTO, 0, len(lines))
	for i, line := range lines {
		dtoLines = append(dtoLines, dto.CartLineDTO{
			Id:        i + 1,
			Category:  line.CategoryKey,
			ItemKey:   line.ItemKey,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Options:   line.Options,
			Total:     line.Total,
		})
	}

	return &dto.OrderResponse{
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		Lines:        dtoLines,
		Total:        order.Total,
		PickupDate:   order.PickupDate,
		PickupTime:   order.PickupTime,
		DeliveryDate: order.DeliveryDate,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
	}, nil
}

func (os *orderService) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	if !model.ValidStatus(status) {
		return fmt.Errorf("%q: %w", status, apperror.ErrInvalidStatus)
	}
	order, err := os.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return apperror.ErrOrderNotFound
	}
	if status == model.OrderStatusCancelled && !cancellable(order.Status) {
		return fmt.Errorf("cancel %s order: %w", order.Status, apperror.ErrInvalidTransition)
	}
	return os.orderRepo.UpdateStatus(ctx, orderNumber, status)
}

func (os *orderService) Cancel(ctx context.Context, orderNumber string) error {
	return os.UpdateStatus(ctx, orderNumber, model.OrderStatusCancelled)
}

func cancellable(status string) bool {
	return status == model.OrderStatusPending || status == model.OrderStatusProcessing
}
