package ui

import (
	"fmt"

	"github.com/rs/zerolog"

	"inventario/internal/models"
)

// ProductAPI is the surface of the product service as seen from the client
// pipeline. internal/client provides the HTTP implementation.
type ProductAPI interface {
	List() ([]models.Product, error)
	Get(id int64) (*models.Product, error)
	Create(input models.CreateProductInput) (*models.Product, error)
	Update(id int64, input models.UpdateProductInput) (*models.Product, error)
	Delete(id int64) error
}

// Notice is a transient user notification.
type Notice struct {
	Level   string // "success", "error", "warning", "info"
	Message string
}

// App drives the client pipeline: it owns the State, calls the API and
// re-derives after every mutation. No failure is fatal: every error path
// records a notice and leaves the state interactive.
type App struct {
	api        ProductAPI
	State      State
	log        zerolog.Logger
	notices    []Notice
	loadFailed bool
}

// NewApp creates an App with the initial state.
func NewApp(api ProductAPI, log zerolog.Logger) *App {
	return &App{api: api, State: NewState(), log: log}
}

// Load fetches the full list, replaces the cached collection and recomputes
// pagination bounds and statistics. On failure the previous cache is kept
// and the table renders the retry state.
func (a *App) Load() error {
	if a.State.Loading {
		return nil
	}
	a.State.Loading = true
	defer func() { a.State.Loading = false }()

	products, err := a.api.List()
	if err != nil {
		a.log.Error().Err(err).Msg("error cargando productos")
		a.notify("error", "Error al cargar los productos")
		a.loadFailed = true
		return err
	}
	a.loadFailed = false
	a.State = a.State.WithProducts(products)
	return nil
}

// StartCreate opens the form in creation mode.
func (a *App) StartCreate() {
	a.State.EditingID = nil
}

// StartEdit fetches the product and marks it as the active edit target.
func (a *App) StartEdit(id int64) (*models.Product, error) {
	product, err := a.api.Get(id)
	if err != nil {
		a.log.Error().Err(err).Int64("id", id).Msg("error cargando producto")
		a.notify("error", "Error al cargar el producto")
		return nil, err
	}
	a.State.EditingID = &product.ID
	return product, nil
}

// Save validates the form before any request is sent; the first violation
// blocks submission. A valid form either creates a new product or updates
// the active edit target, then reloads the full list.
func (a *App) Save(form FormInput) error {
	if ferr := ValidateForm(form); ferr != nil {
		a.notify("warning", ferr.Message)
		return ferr
	}

	var (
		saved *models.Product
		err   error
	)
	editing := a.State.EditingID != nil
	if editing {
		saved, err = a.api.Update(*a.State.EditingID, form.ToUpdateInput())
	} else {
		saved, err = a.api.Create(form.ToCreateInput())
	}
	if err != nil {
		a.log.Error().Err(err).Msg("error al guardar producto")
		a.notify("error", fmt.Sprintf("Error: %s", err.Error()))
		return err
	}

	a.State.EditingID = nil
	if err := a.Load(); err != nil {
		return err
	}
	if editing {
		a.notify("success", "Producto actualizado correctamente")
	} else {
		a.notify("success", "Producto creado correctamente")
	}
	a.log.Info().Int64("id", saved.ID).Msg("producto guardado")
	return nil
}

// ConfirmDelete parks a delete as the pending action awaiting confirmation.
// An ID absent from the cache is ignored.
func (a *App) ConfirmDelete(id int64) {
	for _, p := range a.State.Products {
		if p.ID == id {
			a.State.Pending = &PendingAction{Type: "delete", ID: id}
			return
		}
	}
}

// ExecutePending runs the confirmed pending action and clears the slot.
func (a *App) ExecutePending() error {
	pending := a.State.Pending
	if pending == nil {
		return nil
	}
	a.State.Pending = nil

	switch pending.Type {
	case "delete":
		return a.deleteProduct(pending.ID)
	}
	return nil
}

// deleteProduct calls the API and, on success, patches the deleted record
// out of the local cache without reloading the server's view.
func (a *App) deleteProduct(id int64) error {
	if err := a.api.Delete(id); err != nil {
		a.log.Error().Err(err).Int64("id", id).Msg("error al eliminar producto")
		a.notify("error", fmt.Sprintf("Error: %s", err.Error()))
		return err
	}
	a.State = a.State.WithoutProduct(id)
	a.notify("success", "Producto eliminado correctamente")
	return nil
}

// Search sets the active search term. Rendering derives the filtered view;
// an empty term returns to the paginated table.
func (a *App) Search(term string) {
	a.State.SearchTerm = term
}

// ChangePage moves the table window.
func (a *App) ChangePage(page int) {
	a.State = a.State.ChangePage(page)
}

// RenderTable derives the current table body.
func (a *App) RenderTable() string {
	if a.loadFailed && !a.State.Loading {
		return RenderLoadError()
	}
	return RenderTable(a.State)
}

// RenderPagination derives the current pagination control.
func (a *App) RenderPagination() string {
	return RenderPagination(a.State)
}

// Summary recomputes the statistics from the cached collection.
func (a *App) Summary() Summary {
	return Summarize(a.State.Products)
}

// Notices drains the accumulated notifications.
func (a *App) Notices() []Notice {
	out := a.notices
	a.notices = nil
	return out
}

func (a *App) notify(level, message string) {
	a.notices = append(a.notices, Notice{Level: level, Message: message})
}
