package service

import (
	"context"
	"encoding/json"
	"fmt"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/config"
	"valetkleen-be/internal/model"
	"valetkleen-be/internal/repository/contract"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// IPaymentService issues hosted payment links for finished orders. Payment is
// optional: the chat flow only offers "pay now" when a link can actually be
// created.
type IPaymentService interface {
	Enabled() bool
	CreatePaymentLink(ctx context.Context, orderNumber string) (string, error)
}

type paymentService struct {
	cfg       config.PaymentConfig
	orderRepo contract.OrderRepository
}

func NewPaymentService(cfg config.PaymentConfig, orderRepo contract.OrderRepository) IPaymentService {
	return &paymentService{cfg: cfg, orderRepo: orderRepo}
}

func (ps *paymentService) Enabled() bool {
	return ps.cfg.ServerKey != ""
}

func (ps *paymentService) CreatePaymentLink(ctx context.Context, orderNumber string) (string, error) {
	if !ps.Enabled() {
		return "", fmt.Errorf("payment gateway not configured: %w", apperror.ErrInvalidState)
	}

	order, err := ps.orderRepo.FindByNumber(ctx, orderNumber)
	if err != nil {
		return "", fmt.Errorf("find order: %w", err)
	}
	if order == nil {
		return "", apperror.ErrOrderNotFound
	}

	var lines []model.OrderLine
	if err := json.Unmarshal(order.Items, &lines); err != nil {
		return "", fmt.Errorf("unmarshal order lines: %w", err)
	}

	var sClient snap.Client
	env := midtrans.Sandbox
	if ps.cfg.Production {
		env = midtrans.Production
	}
	sClient.New(ps.cfg.ServerKey, env)

	itemDetails := make([]midtrans.ItemDetails, 0, len(lines))
	for i, line := range lines {
		itemDetails = append(itemDetails, midtrans.ItemDetails{
			ID:    fmt.Sprintf("%s-%d", line.ItemKey, i+1),
			Price: line.UnitPrice.Shift(2).IntPart(),
			Qty:   int32(line.Quantity),
			Name:  line.Name,
		})
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  order.OrderNumber,
			GrossAmt: order.Total.Shift(2).IntPart(),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: ps.cfg.FinishURL,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: order.CustomerName,
			Email: order.CustomerEmail,
			Phone: order.CustomerPhone,
		},
		Items:           &itemDetails,
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return "", fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}
	return snapResp.RedirectURL, nil
}
