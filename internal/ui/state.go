// Package ui holds the client-side state and render pipeline: an explicit
// State structure plus pure derivation functions for the product table,
// pagination controls and summary statistics. Nothing in this package talks
// to the network; the App controller combines State with a ProductAPI.
package ui

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

// DefaultItemsPerPage is the fixed page size of the product table.
const DefaultItemsPerPage = 10

// PendingAction describes a destructive operation awaiting explicit user
// confirmation.
type PendingAction struct {
	Type string // only "delete" for now
	ID   int64
}

// State is the full client-side application state. All derivations are
// value methods returning new values, so every transition is independently
// testable.
type State struct {
	Products     []models.Product
	CurrentPage  int
	ItemsPerPage int
	EditingID    *int64
	Pending      *PendingAction
	SearchTerm   string
	Loading      bool
}

// NewState returns the initial state: empty cache, first page.
func NewState() State {
	return State{CurrentPage: 1, ItemsPerPage: DefaultItemsPerPage}
}

// TotalPages derives the pagination bound: ceil(count / itemsPerPage).
// An empty collection has zero pages and renders zero page links.
func (s State) TotalPages() int {
	if s.ItemsPerPage <= 0 || len(s.Products) == 0 {
		return 0
	}
	return (len(s.Products) + s.ItemsPerPage - 1) / s.ItemsPerPage
}

// WithProducts replaces the cached collection and recomputes the pagination
// bounds, clamping the current page back into range.
func (s State) WithProducts(products []models.Product) State {
	s.Products = products
	s.CurrentPage = clampPage(s.CurrentPage, s.TotalPages())
	return s
}

// WithoutProduct patches the cached collection by filtering out the given
// ID. This is the local delete path: no re-sync with the server's view.
func (s State) WithoutProduct(id int64) State {
	filtered := make([]models.Product, 0, len(s.Products))
	for _, p := range s.Products {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	return s.WithProducts(filtered)
}

// ChangePage moves to the given page. A page outside [1, TotalPages] or
// re-selecting the current page is a no-op.
func (s State) ChangePage(page int) State {
	if page < 1 || page > s.TotalPages() || page == s.CurrentPage {
		return s
	}
	s.CurrentPage = page
	return s
}

// Window slices the cached collection to the current page.
func (s State) Window() []models.Product {
	start := (s.CurrentPage - 1) * s.ItemsPerPage
	if start < 0 || start >= len(s.Products) {
		return nil
	}
	end := start + s.ItemsPerPage
	if end > len(s.Products) {
		end = len(s.Products)
	}
	return s.Products[start:end]
}

// Filter returns the products of the unpaginated cached collection whose
// name, description, category or decimal ID string contains the term,
// case-insensitively. Search deliberately bypasses pagination.
func (s State) Filter(term string) []models.Product {
	t := strings.ToLower(strings.TrimSpace(term))
	if t == "" {
		return s.Products
	}
	var matches []models.Product
	for _, p := range s.Products {
		if strings.Contains(strings.ToLower(p.Name), t) ||
			strings.Contains(strings.ToLower(p.Description), t) ||
			strings.Contains(strings.ToLower(p.Category), t) ||
			strings.Contains(strconv.FormatInt(p.ID, 10), t) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Searching reports whether a non-empty search term is active. An empty
// term is equivalent to clearing the filter.
func (s State) Searching() bool {
	return strings.TrimSpace(s.SearchTerm) != ""
}

// Summary holds the derived statistics shown above the table. An empty
// collection yields explicit zero values rather than omitting the display.
type Summary struct {
	TotalProducts int             `json:"totalProducts"`
	TotalStock    int             `json:"totalStock"`
	TotalValue    decimal.Decimal `json:"totalValue"`
	Categories    int             `json:"categories"`
}

// TotalValueDisplay renders the inventory value with two decimal places.
func (sum Summary) TotalValueDisplay() string {
	return "$" + sum.TotalValue.StringFixed(2)
}

// Summarize recomputes the statistics from the collection: total count,
// total stock, total inventory value (sum of price*stock) and the number of
// distinct category labels.
func Summarize(products []models.Product) Summary {
	sum := Summary{TotalProducts: len(products), TotalValue: decimal.Zero}
	categories := make(map[string]struct{})
	for _, p := range products {
		sum.TotalStock += p.Stock
		sum.TotalValue = sum.TotalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Stock))))
		categories[p.Category] = struct{}{}
	}
	sum.Categories = len(categories)
	return sum
}

func clampPage(page, total int) int {
	if total < 1 {
		return 1
	}
	if page > total {
		return total
	}
	if page < 1 {
		return 1
	}
	return page
}
