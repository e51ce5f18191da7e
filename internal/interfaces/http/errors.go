package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

// Códigos de error de la API.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeValidation         = "VALIDATION"
	CodeInvalidBody        = "INVALID_BODY"
	CodeDuplicate          = "DUPLICATE"
	CodeMissingCredentials = "MISSING_CREDENTIALS"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeForbidden          = "FORBIDDEN"
	CodeInternal           = "INTERNAL"
)

func errorJSON(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

func unauthorized(c *fiber.Ctx, code, message string) error {
	c.Set(fiber.HeaderWWWAuthenticate, `Basic realm="despensa"`)
	return errorJSON(c, fiber.StatusUnauthorized, code, message)
}

// respondError traduce errores de dominio a respuestas HTTP; el resto se registra y devuelve 500.
func respondError(c *fiber.Ctx, err error, notFoundMsg string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errorJSON(c, fiber.StatusNotFound, CodeNotFound, notFoundMsg)
	case errors.Is(err, domain.ErrInvalidInput):
		return errorJSON(c, fiber.StatusBadRequest, CodeValidation, err.Error())
	case errors.Is(err, domain.ErrDuplicate):
		return errorJSON(c, fiber.StatusConflict, CodeDuplicate, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return unauthorized(c, CodeInvalidCredentials, "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, err.Error())
	default:
		log.Error().Err(err).
			Str("request_id", requestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error interno")
		return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, "error interno")
	}
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, métodos no permitidos y panics recuperados.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed, fiber.StatusRequestEntityTooLarge:
			code = CodeValidation
		}
		return errorJSON(c, fe.Code, code, fe.Message)
	}
	return respondError(c, err, "recurso no encontrado")
}
