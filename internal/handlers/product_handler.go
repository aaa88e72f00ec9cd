package handlers

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"inventario/internal/models"
	"inventario/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
	log      zerolog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, log zerolog.Logger) *ProductHandler {
	validate := validator.New()
	// Let gt/gte tags see decimal prices as floats.
	validate.RegisterCustomTypeFunc(decimalAsFloat, decimal.Decimal{})
	return &ProductHandler{
		service:  service,
		validate: validate,
		log:      log,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleGetProducts)
	products.Get("/:id", h.HandleGetProduct)
	products.Post("/", h.HandleCreateProduct)
	products.Put("/:id", h.HandleUpdateProduct)
	products.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts returns the full collection in storage order.
// Pagination and filtering are client-side concerns.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.List()
	if err != nil {
		h.log.Error().Err(err).Msg("error listando productos")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer productos",
		})
	}
	return c.JSON(products)
}

// HandleGetProduct returns a single product by ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}

	product, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return notFound(c)
		}
		h.log.Error().Err(err).Int64("id", id).Msg("error leyendo producto")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al leer producto",
		})
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product. The ID and both timestamps are
// assigned server-side, never taken from the request.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var input models.CreateProductInput
	if err := c.BodyParser(&input); err != nil {
		h.log.Warn().Err(err).Msg("cuerpo de solicitud inválido")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la solicitud inválido",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    "Datos de producto inválidos",
			"detalles": validationDetails(err),
		})
	}

	product, err := h.service.Create(input)
	if err != nil {
		h.log.Error().Err(err).Msg("error creando producto")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al guardar producto",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct overlays the present fields of the request onto the
// stored product. Omitted fields keep their prior values.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}

	var input models.UpdateProductInput
	if err := c.BodyParser(&input); err != nil {
		h.log.Warn().Err(err).Msg("cuerpo de solicitud inválido")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cuerpo de la solicitud inválido",
		})
	}

	if err := h.validate.Struct(input); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    "Datos de producto inválidos",
			"detalles": validationDetails(err),
		})
	}

	product, err := h.service.Update(id, input)
	if err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return notFound(c)
		}
		h.log.Error().Err(err).Int64("id", id).Msg("error actualizando producto")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al actualizar producto",
		})
	}
	return c.JSON(product)
}

// HandleDeleteProduct removes a product and confirms the deleted ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return notFound(c)
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, services.ErrProductNotFound) {
			return notFound(c)
		}
		h.log.Error().Err(err).Int64("id", id).Msg("error eliminando producto")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Error al eliminar producto",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Producto eliminado correctamente",
		"id":      id,
	})
}

func parseID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "Producto no encontrado",
	})
}

func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, e := range verrs {
			details[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
	}
	return details
}

func decimalAsFloat(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
