package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

const productNotFound = "producto no encontrado"

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// List godoc
// @Summary      Listar productos
// @Description  Lista el catálogo con la existencia actual de cada producto.
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Param        category  query  string  false  "Filtrar por categoría"  Enums(WATER,PRESERVED_FOOD,DRY_GOODS,FREEZE_DRIED,MEDICINE,FUEL,OTHER)
// @Success      200  {array}   dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var category *entity.Category
	if raw := strings.TrimSpace(c.Query("category")); raw != "" {
		cat := entity.Category(strings.ToUpper(raw))
		category = &cat
	}
	out, err := h.uc.List(c.UserContext(), category)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener producto por ID
// @Tags         products
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, productNotFound)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar producto
// @Tags         products
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                 true  "ID del producto"
// @Param        body  body  dto.ProductRequest  true  "Datos del producto"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	if out == nil {
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, productNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar producto y sus lotes
// @Tags         products
// @Security     BasicAuth
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LowStock godoc
// @Summary      Productos con stock bajo
// @Description  Productos cuya existencia actual es menor que la cantidad objetivo.
// @Tags         stock
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /stock/low [get]
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.ListLowStock(c.UserContext())
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// pathID lee :id; devuelve un *fiber.Error 400 si no es un entero positivo.
func pathID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "id debe ser un entero positivo")
	}
	return id, nil
}
