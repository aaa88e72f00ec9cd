package ui

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"inventario/internal/models"
)

// FormInput is the product form as the user typed it: every field is still
// a string, exactly like form data.
type FormInput struct {
	Name        string
	Description string
	Price       string
	Category    string
	Stock       string
}

// FieldError is a client-side validation failure. The first violation
// encountered blocks submission entirely; no request is sent.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

// ValidateForm checks the form fields in a fixed order: name, price
// presence, price numeric/positive, category presence, stock presence,
// stock numeric/non-negative, description length. It returns the first
// violation, or nil when the form is valid.
func ValidateForm(in FormInput) *FieldError {
	if utf8.RuneCountInString(strings.TrimSpace(in.Name)) < 3 {
		return &FieldError{Field: "name", Message: "El nombre debe tener al menos 3 caracteres"}
	}

	if strings.TrimSpace(in.Price) == "" {
		return &FieldError{Field: "price", Message: "El precio es requerido"}
	}
	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || !price.IsPositive() {
		return &FieldError{Field: "price", Message: "El precio debe ser un número mayor a 0"}
	}

	if strings.TrimSpace(in.Category) == "" {
		return &FieldError{Field: "category", Message: "Seleccione una categoría"}
	}

	if strings.TrimSpace(in.Stock) == "" {
		return &FieldError{Field: "stock", Message: "El stock es requerido"}
	}
	stock, err := strconv.Atoi(strings.TrimSpace(in.Stock))
	if err != nil || stock < 0 {
		return &FieldError{Field: "stock", Message: "El stock debe ser un número entero no negativo"}
	}

	if utf8.RuneCountInString(in.Description) > 500 {
		return &FieldError{Field: "description", Message: "La descripción no puede exceder los 500 caracteres"}
	}

	return nil
}

// ToCreateInput converts a validated form into the create request body.
// It must only be called after ValidateForm reported no violation.
func (in FormInput) ToCreateInput() models.CreateProductInput {
	price, _ := decimal.NewFromString(strings.TrimSpace(in.Price))
	parsed, _ := strconv.Atoi(strings.TrimSpace(in.Stock))
	stock := models.StockCount(parsed)
	return models.CreateProductInput{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       price,
		Category:    strings.TrimSpace(in.Category),
		Stock:       &stock,
	}
}

// ToUpdateInput converts a validated form into the update request body.
// The form edits every field, so all of them are present.
func (in FormInput) ToUpdateInput() models.UpdateProductInput {
	create := in.ToCreateInput()
	stock := int(*create.Stock)
	return models.UpdateProductInput{
		Name:        &create.Name,
		Description: &create.Description,
		Price:       &create.Price,
		Category:    &create.Category,
		Stock:       &stock,
	}
}
