package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

const stockNotFound = "lote no encontrado"

// StockHandler maneja lotes y vistas de vencimiento.
type StockHandler struct {
	uc          *usecase.StockUseCase
	defaultDays int
}

// NewStockHandler construye el handler. defaultDays es el valor de ?days cuando no se envía.
func NewStockHandler(uc *usecase.StockUseCase, defaultDays int) *StockHandler {
	return &StockHandler{uc: uc, defaultDays: defaultDays}
}

// ListByProduct godoc
// @Summary      Lotes de un producto
// @Description  Ordenados por fecha de vencimiento ascendente; los lotes sin fecha al final.
// @Tags         stock
// @Security     BasicAuth
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {array}   dto.StockEntryResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /products/{id}/stock [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	out, err := h.uc.ListByProduct(c.UserContext(), id)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar lote
// @Tags         stock
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del producto"
// @Param        body  body  dto.StockEntryRequest  true  "Datos del lote"
// @Success      201   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /products/{id}/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Create(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, productNotFound)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Patch godoc
// @Summary      Actualizar cantidad de un lote
// @Tags         stock
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                     true  "ID del lote"
// @Param        body  body  dto.StockQuantityPatch  true  "Nueva cantidad"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock/{id} [patch]
func (h *StockHandler) Patch(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.StockQuantityPatch
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.UpdateQuantity(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, stockNotFound)
	}
	return c.JSON(out)
}

// Replace godoc
// @Summary      Reemplazar lote
// @Tags         stock
// @Security     BasicAuth
// @Accept       json
// @Produce      json
// @Param        id    path  int                    true  "ID del lote"
// @Param        body  body  dto.StockEntryRequest  true  "Datos del lote"
// @Success      200   {object}  dto.StockEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock/{id} [put]
func (h *StockHandler) Replace(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var in dto.StockEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidBody, "cuerpo inválido")
	}
	out, err := h.uc.Replace(c.UserContext(), id, in)
	if err != nil {
		return respondError(c, err, stockNotFound)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar lote
// @Tags         stock
// @Security     BasicAuth
// @Param        id   path  int  true  "ID del lote"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err, stockNotFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Expired godoc
// @Summary      Lotes vencidos
// @Description  Lotes cuya fecha de vencimiento es anterior a hoy.
// @Tags         stock
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.StockEntryResponse
// @Router       /stock/expired [get]
func (h *StockHandler) Expired(c *fiber.Ctx) error {
	out, err := h.uc.ListExpired(c.UserContext())
	if err != nil {
		return respondError(c, err, stockNotFound)
	}
	return c.JSON(out)
}

// Expiring godoc
// @Summary      Lotes por vencer
// @Description  Lotes que vencen entre hoy y hoy+days (inclusive). No incluye los ya vencidos.
// @Tags         stock
// @Security     BasicAuth
// @Produce      json
// @Param        days  query  int  false  "Ventana en días (por defecto 30)"
// @Success      200  {array}   dto.StockEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /stock/expiring [get]
func (h *StockHandler) Expiring(c *fiber.Ctx) error {
	days := h.defaultDays
	if raw := strings.TrimSpace(c.Query("days")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return errorJSON(c, fiber.StatusBadRequest, CodeValidation, "days debe ser un entero")
		}
		days = n
	}
	out, err := h.uc.ListExpiring(c.UserContext(), days)
	if err != nil {
		return respondError(c, err, stockNotFound)
	}
	return c.JSON(out)
}
