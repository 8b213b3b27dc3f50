package dto

import "github.com/shopspring/decimal"

type CartLineDTO struct {
	Id        int             `json:"id"`
	Category  string          `json:"category"`
	ItemKey   string          `json:"item_key"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Options   []string        `json:"options,omitempty"`
	Total     decimal.Decimal `json:"total"`
}

// CartSummary is always well-formed: an empty or unknown cart yields zeros,
// never an error.
type CartSummary struct {
	Lines         []CartLineDTO   `json:"lines"`
	LineCount     int             `json:"line_count"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}
