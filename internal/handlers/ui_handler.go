package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"inventario/internal/services"
	"inventario/internal/ui"
)

// UIHandler serves server-rendered fragments of the product table so the
// browser glue only swaps HTML in place. All derivation logic lives in the
// ui package.
type UIHandler struct {
	service *services.ProductService
	log     zerolog.Logger
}

// NewUIHandler creates a new UIHandler.
func NewUIHandler(service *services.ProductService, log zerolog.Logger) *UIHandler {
	return &UIHandler{service: service, log: log}
}

// RegisterRoutes registers the fragment routes with the Fiber app.
func (h *UIHandler) RegisterRoutes(router fiber.Router) {
	group := router.Group("/ui")
	group.Get("/table", h.HandleTable)
	group.Get("/pagination", h.HandlePagination)
	group.Get("/table-info", h.HandleTableInfo)
	group.Get("/stats", h.HandleStats)
}

// HandleTable renders the table body for ?page= and ?q=. A failed list load
// renders the retry state instead of an error response, keeping the UI
// interactive.
func (h *UIHandler) HandleTable(c *fiber.Ctx) error {
	state, err := h.buildState(c)
	c.Type("html", "utf-8")
	if err != nil {
		return c.SendString(ui.RenderLoadError())
	}
	return c.SendString(ui.RenderTable(state))
}

// HandlePagination renders the pagination control for ?page=.
func (h *UIHandler) HandlePagination(c *fiber.Ctx) error {
	state, err := h.buildState(c)
	c.Type("html", "utf-8")
	if err != nil {
		return c.SendString("")
	}
	return c.SendString(ui.RenderPagination(state))
}

// HandleTableInfo renders the "showing X-Y of Z" caption.
func (h *UIHandler) HandleTableInfo(c *fiber.Ctx) error {
	state, err := h.buildState(c)
	if err != nil {
		return c.SendString("")
	}
	return c.SendString(ui.TableInfo(state))
}

// HandleStats returns the derived statistics. An empty collection reports
// explicit zeros.
func (h *UIHandler) HandleStats(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		h.log.Error().Err(err).Msg("error calculando estadísticas")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al calcular estadísticas",
		})
	}
	sum := ui.Summarize(products)
	return c.JSON(fiber.Map{
		"totalProducts":     sum.TotalProducts,
		"totalStock":        sum.TotalStock,
		"totalValue":        sum.TotalValue,
		"totalValueDisplay": sum.TotalValueDisplay(),
		"categories":        sum.Categories,
	})
}

func (h *UIHandler) buildState(c *fiber.Ctx) (ui.State, error) {
	products, err := h.service.List()
	if err != nil {
		h.log.Error().Err(err).Msg("error cargando productos para la vista")
		return ui.State{}, err
	}
	state := ui.NewState().WithProducts(products)
	state = state.ChangePage(c.QueryInt("page", 1))
	state.SearchTerm = c.Query("q")
	return state, nil
}
