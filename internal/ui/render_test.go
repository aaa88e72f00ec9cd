package ui_test

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"inventario/internal/models"
	"inventario/internal/ui"
)

func TestStockClass(t *testing.T) {
	assert.Equal(t, "stock-low", ui.StockClass(0))
	assert.Equal(t, "stock-medium", ui.StockClass(1))
	assert.Equal(t, "stock-medium", ui.StockClass(9))
	assert.Equal(t, "stock-high", ui.StockClass(10))
	assert.Equal(t, "stock-high", ui.StockClass(50))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$1299.90", ui.FormatPrice(decimal.RequireFromString("1299.9")))
	assert.Equal(t, "$0.00", ui.FormatPrice(decimal.Zero))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "15 ene 2024", ui.FormatDate(time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, "3 dic 2023", ui.FormatDate(time.Date(2023, time.December, 3, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Fecha no disponible", ui.FormatDate(time.Time{}))
}

func TestHighlight(t *testing.T) {
	assert.Equal(t,
		`<span class="rojo-text fw-bold">Lap</span>top Gamer`,
		ui.Highlight("Laptop Gamer", "lap"))

	// Every occurrence, case-insensitively.
	assert.Equal(t,
		`<span class="rojo-text fw-bold">a</span>bc<span class="rojo-text fw-bold">A</span>bc`,
		ui.Highlight("abcAbc", "a"))

	// HTML is escaped, with and without a term.
	assert.Equal(t, "&lt;b&gt;", ui.Highlight("<b>", ""))
	assert.Equal(t, `&lt;<span class="rojo-text fw-bold">b</span>&gt;`, ui.Highlight("<b>", "b"))
}

func TestHighlight_MultibyteRunes(t *testing.T) {
	// Lowercasing "Ⱥ" (2 bytes) yields "ⱥ" (3 bytes); offsets must track
	// the original string, not the lowered copy.
	assert.Equal(t,
		`<span class="rojo-text fw-bold">Ⱥb</span>`,
		ui.Highlight("Ⱥb", "ⱥb"))

	// "İ" lowers to a shorter encoding; the highlight must not split it.
	out := ui.Highlight("İstanbul", "stanbul")
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, `İ<span class="rojo-text fw-bold">stanbul</span>`, out)

	assert.Equal(t,
		`<span class="rojo-text fw-bold">Láp</span>iz`,
		ui.Highlight("Lápiz", "láp"))
}

func TestRenderTable_EmptyState(t *testing.T) {
	out := ui.RenderTable(ui.NewState())
	assert.Contains(t, out, "No hay productos registrados")
	assert.NotContains(t, out, "product-row")
}

func TestRenderTable_Loading(t *testing.T) {
	s := ui.NewState()
	s.Loading = true
	assert.Contains(t, ui.RenderTable(s), "Cargando productos")
}

func TestRenderTable_Rows(t *testing.T) {
	s := ui.NewState().WithProducts(demoProducts())
	out := ui.RenderTable(s)

	assert.Contains(t, out, "Laptop Gamer")
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "$1299.99")
	assert.Contains(t, out, "stock-high")
	assert.Contains(t, out, "15 unidades")
	assert.Contains(t, out, "badge-category")
}

func TestRenderTable_PaginatesWindow(t *testing.T) {
	s := ui.NewState().WithProducts(makeProducts(25)).ChangePage(3)
	out := ui.RenderTable(s)

	assert.Equal(t, 5, strings.Count(out, "product-row"))
	assert.Contains(t, out, "Producto 21")
	assert.NotContains(t, out, "Producto 20")
}

func TestRenderTable_MissingDescription(t *testing.T) {
	s := ui.NewState().WithProducts([]models.Product{
		{ID: 1, Name: "Sin Detalle", Price: decimal.NewFromInt(5), Category: "Otros"},
	})
	assert.Contains(t, ui.RenderTable(s), "Sin descripción")
}

func TestRenderTable_TruncatesDescription(t *testing.T) {
	long := strings.Repeat("x", 200)
	s := ui.NewState().WithProducts([]models.Product{
		{ID: 1, Name: "Con Detalle", Description: long, Price: decimal.NewFromInt(5), Category: "Otros"},
	})
	out := ui.RenderTable(s)
	assert.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("x", 60)+"…")
}

func TestRenderTable_SearchBypassesPagination(t *testing.T) {
	s := ui.NewState().WithProducts(makeProducts(25))
	s.SearchTerm = "Producto"
	out := ui.RenderTable(s)
	assert.Equal(t, 25, strings.Count(out, "product-row"))
}

func TestRenderTable_SearchHighlightsNameOnly(t *testing.T) {
	s := ui.NewState().WithProducts([]models.Product{
		{ID: 1, Name: "Otro Artículo", Description: "lapicero fino", Price: decimal.NewFromInt(5), Category: "Otros"},
	})
	s.SearchTerm = "lap"
	out := ui.RenderTable(s)

	// Matched via description, but the description text stays unhighlighted.
	assert.Contains(t, out, "lapicero fino")
	assert.NotContains(t, out, `<span class="rojo-text fw-bold">lap</span>icero`)
}

func TestRenderTable_SearchNoResults(t *testing.T) {
	s := ui.NewState().WithProducts(demoProducts())
	s.SearchTerm = "zzz"
	out := ui.RenderTable(s)

	assert.Contains(t, out, "No se encontraron productos")
	assert.Contains(t, out, `"zzz"`)
	assert.Contains(t, out, "Limpiar búsqueda")
}

func TestRenderLoadError(t *testing.T) {
	out := ui.RenderLoadError()
	assert.Contains(t, out, "Error al cargar los productos")
	assert.Contains(t, out, "Reintentar")
}

func TestTableInfo(t *testing.T) {
	s := ui.NewState().WithProducts(makeProducts(25)).ChangePage(3)
	assert.Equal(t, "Mostrando 21-25 de 25 productos", ui.TableInfo(s))

	assert.Equal(t, "No hay productos para mostrar", ui.TableInfo(ui.NewState()))

	s = ui.NewState().WithProducts(makeProducts(5))
	assert.Equal(t, "Mostrando 1-5 de 5 productos", ui.TableInfo(s))

	s = ui.NewState().WithProducts(makeProducts(25)).ChangePage(3)
	s.SearchTerm = "Producto 1"
	assert.Equal(t, "Mostrando 1-11 de 11 productos", ui.TableInfo(s))
}
