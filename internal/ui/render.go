package ui

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

const descriptionPreviewLen = 60

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"}

// StockClass classifies a stock level for display: zero stock is low,
// below ten is medium, ten or more is high.
func StockClass(stock int) string {
	switch {
	case stock == 0:
		return "stock-low"
	case stock < 10:
		return "stock-medium"
	default:
		return "stock-high"
	}
}

// FormatPrice renders a price with exactly two decimal places.
func FormatPrice(price decimal.Decimal) string {
	return "$" + price.StringFixed(2)
}

// FormatDate renders a creation date as "2 ene 2024".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Fecha no disponible"
	}
	return fmt.Sprintf("%d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

// Highlight escapes text for HTML and wraps every case-insensitive
// occurrence of term in the highlight span. An empty term just escapes.
// Lowercasing can change a rune's byte length, so matches found in the
// lowered copy are mapped back to byte offsets of the original string.
func Highlight(text, term string) string {
	if term == "" {
		return html.EscapeString(text)
	}

	var lowered strings.Builder
	lowered.Grow(len(text))
	// starts[k] is the offset in text of the rune that produced the
	// lowered byte at k; the final entry closes the last rune.
	starts := make([]int, 0, len(text)+1)
	for i, r := range text {
		lr := unicode.ToLower(r)
		for n := utf8.RuneLen(lr); n > 0; n-- {
			starts = append(starts, i)
		}
		lowered.WriteRune(lr)
	}
	starts = append(starts, len(text))

	lower := lowered.String()
	lterm := strings.ToLower(term)

	var b strings.Builder
	i := 0
	for i < len(lower) {
		j := strings.Index(lower[i:], lterm)
		if j < 0 {
			b.WriteString(html.EscapeString(text[starts[i]:]))
			break
		}
		j += i
		end := j + len(lterm)
		b.WriteString(html.EscapeString(text[starts[i]:starts[j]]))
		b.WriteString(`<span class="rojo-text fw-bold">`)
		b.WriteString(html.EscapeString(text[starts[j]:starts[end]]))
		b.WriteString(`</span>`)
		i = end
	}
	return b.String()
}

// RenderTable derives the table body from the state: a loading row while a
// request is in flight, the filtered matches while a search term is active
// (bypassing pagination), otherwise the current page window. Empty
// collection and zero-match states render distinct non-error messages.
func RenderTable(s State) string {
	if s.Loading {
		return renderLoadingRow()
	}
	if s.Searching() {
		term := strings.TrimSpace(s.SearchTerm)
		matches := s.Filter(term)
		if len(matches) == 0 {
			return renderNoResults(term)
		}
		return renderRows(matches, term)
	}
	if len(s.Products) == 0 {
		return renderEmptyState()
	}
	return renderRows(s.Window(), "")
}

func renderRows(products []models.Product, term string) string {
	var b strings.Builder
	for _, p := range products {
		renderRow(&b, p, term)
	}
	return b.String()
}

func renderRow(b *strings.Builder, p models.Product, term string) {
	desc := p.Description
	if desc == "" {
		desc = "Sin descripción"
	} else {
		desc = truncate(desc, descriptionPreviewLen)
	}

	fmt.Fprintf(b, `<tr class="product-row" data-id="%d">`, p.ID)
	fmt.Fprintf(b, `<td><span class="product-id">#%d</span></td>`, p.ID)
	fmt.Fprintf(b, `<td><div class="d-flex align-items-center">`+
		`<div class="product-avatar me-3"><i class="fas fa-cube"></i></div>`+
		`<div><h6 class="product-name mb-1">%s</h6><small class="text-muted">%s</small></div>`+
		`</div></td>`, Highlight(p.Name, term), html.EscapeString(desc))
	fmt.Fprintf(b, `<td><span class="badge-category">%s</span></td>`, html.EscapeString(p.Category))
	fmt.Fprintf(b, `<td><span class="product-price">%s</span></td>`, FormatPrice(p.Price))
	fmt.Fprintf(b, `<td><span class="stock-badge %s">%d unidades</span></td>`, StockClass(p.Stock), p.Stock)
	fmt.Fprintf(b, `<td><small class="text-muted">%s</small></td>`, FormatDate(p.CreatedAt))
	fmt.Fprintf(b, `<td><div class="btn-group" role="group">`+
		`<button class="btn btn-sm btn-outline-primary" data-action="edit" data-id="%d" title="Editar"><i class="fas fa-edit"></i></button>`+
		`<button class="btn btn-sm btn-outline-danger" data-action="delete" data-id="%d" title="Eliminar"><i class="fas fa-trash"></i></button>`+
		`<button class="btn btn-sm btn-outline-dark" data-action="view" data-id="%d" title="Ver detalles"><i class="fas fa-eye"></i></button>`+
		`</div></td>`, p.ID, p.ID, p.ID)
	b.WriteString(`</tr>`)
}

func renderEmptyState() string {
	return `<tr><td colspan="7" class="text-center py-5"><div class="empty-state">` +
		`<i class="fas fa-box-open fa-3x text-muted mb-3"></i>` +
		`<h5 class="text-muted">No hay productos registrados</h5>` +
		`<p class="text-muted">Comienza agregando tu primer producto</p>` +
		`<button class="btn btn-rojo-gradiente mt-3" data-action="new">` +
		`<i class="fas fa-plus-circle me-2"></i>Agregar Producto</button>` +
		`</div></td></tr>`
}

func renderNoResults(term string) string {
	return `<tr><td colspan="7" class="text-center py-5"><div class="empty-state">` +
		`<i class="fas fa-search fa-3x text-muted mb-3"></i>` +
		`<h5 class="text-muted">No se encontraron productos</h5>` +
		fmt.Sprintf(`<p class="text-muted">No hay productos que coincidan con "%s"</p>`, html.EscapeString(term)) +
		`<button class="btn btn-rojo-gradiente mt-3" data-action="clear-search">` +
		`<i class="fas fa-times me-2"></i>Limpiar búsqueda</button>` +
		`</div></td></tr>`
}

func renderLoadingRow() string {
	return `<tr id="loadingRow"><td colspan="7" class="text-center py-5">` +
		`<div class="spinner-border rojo-text" role="status"><span class="visually-hidden">Cargando...</span></div>` +
		`<p class="mt-3 text-gris">Cargando productos...</p>` +
		`</td></tr>`
}

// RenderLoadError is the table body shown when the initial list load fails:
// the UI stays interactive and offers a retry affordance.
func RenderLoadError() string {
	return `<tr><td colspan="7" class="text-center py-5"><div class="error-state">` +
		`<i class="fas fa-exclamation-triangle fa-3x text-danger mb-3"></i>` +
		`<h5 class="text-danger">Error al cargar los productos</h5>` +
		`<p class="text-muted">Intenta recargar la página o verifica tu conexión</p>` +
		`<button class="btn btn-rojo mt-3" data-action="reload">` +
		`<i class="fas fa-redo me-2"></i>Reintentar</button>` +
		`</div></td></tr>`
}

// TableInfo renders the "showing X-Y of Z" caption. While searching, the
// total is the match count.
func TableInfo(s State) string {
	if s.Searching() {
		matches := len(s.Filter(s.SearchTerm))
		if matches == 0 {
			return "No hay productos para mostrar"
		}
		return fmt.Sprintf("Mostrando %d-%d de %d productos", 1, matches, matches)
	}
	total := len(s.Products)
	if total == 0 {
		return "No hay productos para mostrar"
	}
	start := (s.CurrentPage-1)*s.ItemsPerPage + 1
	end := start + s.ItemsPerPage - 1
	if end > total {
		end = total
	}
	return fmt.Sprintf("Mostrando %d-%d de %d productos", start, end, total)
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "…"
}
