package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
)

// AuthHandler maneja la emisión de tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token godoc
// @Summary      Emitir token
// @Description  Intercambia credenciales Basic por un JWT utilizable como Bearer.
// @Tags         auth
// @Security     BasicAuth
// @Produce      json
// @Success      200  {object}  dto.TokenResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /auth/token [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	p := GetPrincipal(c)
	if p == nil {
		return unauthorized(c, CodeMissingCredentials, "autenticación requerida")
	}
	out, err := h.uc.IssueToken(*p)
	if err != nil {
		return respondError(c, err, "")
	}
	return c.JSON(out)
}
