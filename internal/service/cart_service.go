package service

import (
	"fmt"

	"valetkleen-be/internal/apperror"
	"valetkleen-be/internal/dto"
	"valetkleen-be/pkg/catalog"
	"valetkleen-be/pkg/store"

	"github.com/shopspring/decimal"
)

// ICartService is the cart engine. Every operation is scoped to one session
// and mutates only that session's lines.
type ICartService interface {
	Add(sess *store.Session, categoryKey, itemKey string, quantity int, options []string) (decimal.Decimal, error)
	Remove(sess *store.Session, lineId int) (decimal.Decimal, error)
	UpdateQuantity(sess *store.Session, lineId, quantity int) (decimal.Decimal, error)
	Clear(sess *store.Session)
	Summary(sess *store.Session) dto.CartSummary
}

type cartService struct{}

func NewCartService() ICartService {
	return &cartService{}
}

// Add validates the item against the catalog and appends a line, or merges
// into an existing line when category, item, and options all match. Merging is
// the one policy applied everywhere; duplicate lines for the same resolved
// item never appear.
func (cs *cartService) Add(sess *store.Session, categoryKey, itemKey string, quantity int, options []string) (decimal.Decimal, error) {
	if _, err := catalog.GetCategory(categoryKey); err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", categoryKey, apperror.ErrCategoryNotFound)
	}
	item, err := catalog.GetItem(categoryKey, itemKey)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", itemKey, apperror.ErrItemNotFound)
	}
	if quantity < 1 {
		quantity = 1
	}

	for i := range sess.Cart {
		line := &sess.Cart[i]
		if line.CategoryKey == categoryKey && line.ItemKey == itemKey && sameOptions(line.Options, options) {
			line.Quantity += quantity
			return cs.total(sess), nil
		}
	}

	sess.Cart = append(sess.Cart, store.CartLine{
		ID:          sess.NextLineID,
		CategoryKey: categoryKey,
		ItemKey:     itemKey,
		Name:        item.Name,
		UnitPrice:   catalog.UnitPrice(item, options),
		Quantity:    quantity,
		Options:     append([]string(nil), options...),
	})
	sess.NextLineID++
	return cs.total(sess), nil
}

func (cs *cartService) Remove(sess *store.Session, lineId int) (decimal.Decimal, error) {
	for i := range sess.Cart {
		if sess.Cart[i].ID == lineId {
			sess.Cart = append(sess.Cart[:i], sess.Cart[i+1:]...)
			return cs.total(sess), nil
		}
	}
	return decimal.Zero, fmt.Errorf("cart line %d: %w", lineId, apperror.ErrItemNotFound)
}

// UpdateQuantity with a quantity below one behaves exactly like Remove.
func (cs *cartService) UpdateQuantity(sess *store.Session, lineId, quantity int) (decimal.Decimal, error) {
	if quantity < 1 {
		return cs.Remove(sess, lineId)
	}
	for i := range sess.Cart {
		if sess.Cart[i].ID == lineId {
			sess.Cart[i].Quantity = quantity
			return cs.total(sess), nil
		}
	}
	return decimal.Zero, fmt.Errorf("cart line %d: %w", lineId, apperror.ErrItemNotFound)
}

// Clear is idempotent.
func (cs *cartService) Clear(sess *store.Session) {
	sess.Cart = nil
}

// Summary never fails; an empty cart yields a zeroed summary.
func (cs *cartService) Summary(sess *store.Session) dto.CartSummary {
	summary := dto.CartSummary{
		Lines: make([]dto.CartLineDTO, 0, len(sess.Cart)),
		Total: decimal.Zero,
	}
	for _, line := range sess.Cart {
		lineTotal := line.Total()
		summary.Lines = append(summary.Lines, dto.CartLineDTO{
			Id:        line.ID,
			Category:  line.CategoryKey,
			ItemKey:   line.ItemKey,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Quantity,
			Options:   line.Options,
			Total:     lineTotal,
		})
		summary.LineCount++
		summary.TotalQuantity += line.Quantity
		summary.Total = summary.Total.Add(lineTotal)
	}
	return summary
}

// total is the exact sum of line totals, never derived any other way.
func (cs *cartService) total(sess *store.Session) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range sess.Cart {
		sum = sum.Add(line.Total())
	}
	return sum
}

func sameOptions(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
