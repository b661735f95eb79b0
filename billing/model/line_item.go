package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type LineItem struct {
	ID          string          `json:"id"`
	DocumentID  string          `json:"document_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   Money           `json:"unit_price"`
	Total       Money           `json:"total"`
	SortOrder   int32           `json:"sort_order"`
	CreatedAt   time.Time       `json:"created_at"`
}
