package models

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Prices travel as plain JSON numbers, both on the wire and in the data file.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents an inventory item. The ID and both timestamps are
// assigned by the service at creation time and are never client-supplied.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Category    string          `json:"category" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// StockCount decodes a creation-time stock value leniently: a JSON
// number is used as-is, a numeric string is parsed, anything else
// counts as zero.
type StockCount int

func (s *StockCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*s = StockCount(n)
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			*s = StockCount(n)
			return nil
		}
	}
	*s = 0
	return nil
}

// CreateProductInput is the request body for creating a product.
// Stock is optional and defaults to zero when absent or unparsable.
type CreateProductInput struct {
	Name        string          `json:"name" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price" validate:"gt=0"`
	Category    string          `json:"category" validate:"required"`
	Stock       *StockCount     `json:"stock" validate:"omitnil,gte=0"`
}

// UpdateProductInput carries a partial update. Nil fields keep the stored
// value; a present field overwrites it, including explicit zeros, so
// {"stock": 0} empties the stock rather than being ignored.
type UpdateProductInput struct {
	Name        *string          `json:"name" validate:"omitnil,min=3,max=100"`
	Description *string          `json:"description" validate:"omitnil,max=500"`
	Price       *decimal.Decimal `json:"price" validate:"omitnil,gt=0"`
	Category    *string          `json:"category" validate:"omitnil,min=1"`
	Stock       *int             `json:"stock" validate:"omitnil,gte=0"`
}
