package ui_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inventario/internal/ui"
)

func validForm() ui.FormInput {
	return ui.FormInput{
		Name:        "Monitor 27",
		Description: "Pantalla IPS",
		Price:       "199.99",
		Category:    "Electrónica",
		Stock:       "8",
	}
}

func TestValidateForm_Valid(t *testing.T) {
	assert.Nil(t, ui.ValidateForm(validForm()))
}

func TestValidateForm_FirstViolationInOrder(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*ui.FormInput)
		field   string
		message string
	}{
		{"short name", func(f *ui.FormInput) { f.Name = "AB" }, "name", "El nombre debe tener al menos 3 caracteres"},
		{"blank name", func(f *ui.FormInput) { f.Name = "   " }, "name", "El nombre debe tener al menos 3 caracteres"},
		{"missing price", func(f *ui.FormInput) { f.Price = "" }, "price", "El precio es requerido"},
		{"price not a number", func(f *ui.FormInput) { f.Price = "abc" }, "price", "El precio debe ser un número mayor a 0"},
		{"price zero", func(f *ui.FormInput) { f.Price = "0" }, "price", "El precio debe ser un número mayor a 0"},
		{"price negative", func(f *ui.FormInput) { f.Price = "-5" }, "price", "El precio debe ser un número mayor a 0"},
		{"missing category", func(f *ui.FormInput) { f.Category = "" }, "category", "Seleccione una categoría"},
		{"missing stock", func(f *ui.FormInput) { f.Stock = "" }, "stock", "El stock es requerido"},
		{"stock not a number", func(f *ui.FormInput) { f.Stock = "x" }, "stock", "El stock debe ser un número entero no negativo"},
		{"stock negative", func(f *ui.FormInput) { f.Stock = "-1" }, "stock", "El stock debe ser un número entero no negativo"},
		{"description too long", func(f *ui.FormInput) { f.Description = strings.Repeat("a", 501) }, "description", "La descripción no puede exceder los 500 caracteres"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)
			ferr := ui.ValidateForm(form)
			require.NotNil(t, ferr)
			assert.Equal(t, tc.field, ferr.Field)
			assert.Equal(t, tc.message, ferr.Message)
		})
	}
}

func TestValidateForm_NameCheckedBeforePrice(t *testing.T) {
	form := validForm()
	form.Name = "AB"
	form.Price = "abc"
	ferr := ui.ValidateForm(form)
	require.NotNil(t, ferr)
	assert.Equal(t, "name", ferr.Field)
}

func TestValidateForm_ZeroStockIsValid(t *testing.T) {
	form := validForm()
	form.Stock = "0"
	assert.Nil(t, ui.ValidateForm(form))
}

func TestFormInput_ToCreateInput(t *testing.T) {
	input := validForm().ToCreateInput()
	assert.Equal(t, "Monitor 27", input.Name)
	assert.True(t, input.Price.Equal(decimal.RequireFromString("199.99")))
	require.NotNil(t, input.Stock)
	assert.Equal(t, 8, int(*input.Stock))
}

func TestFormInput_ToUpdateInput_AllFieldsPresent(t *testing.T) {
	input := validForm().ToUpdateInput()
	require.NotNil(t, input.Name)
	require.NotNil(t, input.Description)
	require.NotNil(t, input.Price)
	require.NotNil(t, input.Category)
	require.NotNil(t, input.Stock)
	assert.Equal(t, "Monitor 27", *input.Name)
}
