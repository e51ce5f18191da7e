package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/usecase"
)

// ListCategories godoc
// @Summary      Acciones recomendadas por categoría
// @Description  Tabla de consulta: qué hacer con un lote por vencer o vencido según su categoría.
// @Tags         categories
// @Security     BasicAuth
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /categories [get]
func ListCategories(c *fiber.Ctx) error {
	return c.JSON(usecase.ListCategories())
}
