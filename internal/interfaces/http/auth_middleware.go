package http

import (
	"encoding/base64"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

// LocalPrincipal key de c.Locals con el *auth.Principal autenticado.
const LocalPrincipal = "principal"

// AuthMiddleware acepta Basic (usuario/contraseña contra la DB) o Bearer (JWT) y guarda el Principal en c.Locals.
func AuthMiddleware(uc *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return unauthorized(c, CodeMissingCredentials, "Authorization header requerido")
		}
		scheme, value, _ := strings.Cut(header, " ")
		value = strings.TrimSpace(value)

		var (
			p   *auth.Principal
			err error
		)
		switch {
		case strings.EqualFold(scheme, "Basic"):
			username, password, ok := parseBasic(value)
			if !ok {
				return unauthorized(c, CodeInvalidCredentials, "formato: Basic <base64(usuario:contraseña)>")
			}
			p, err = uc.Authenticate(c.UserContext(), username, password)
		case strings.EqualFold(scheme, "Bearer") && uc.TokensEnabled():
			if value == "" {
				return unauthorized(c, CodeMissingCredentials, "token vacío")
			}
			p, err = uc.ParseToken(value)
		default:
			return unauthorized(c, CodeInvalidCredentials, "esquema de autorización no soportado")
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return unauthorized(c, CodeInvalidCredentials, "credenciales inválidas")
		}
		if err != nil {
			return respondError(c, err, "")
		}
		c.Locals(LocalPrincipal, p)
		return c.Next()
	}
}

// RequireRole deja pasar si el usuario autenticado tiene alguno de los roles.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := GetPrincipal(c)
		if p == nil {
			return unauthorized(c, CodeMissingCredentials, "autenticación requerida")
		}
		for _, r := range roles {
			if p.HasRole(r) {
				return c.Next()
			}
		}
		return errorJSON(c, fiber.StatusForbidden, CodeForbidden, "rol insuficiente")
	}
}

// GetPrincipal devuelve el usuario autenticado (después del middleware de auth).
func GetPrincipal(c *fiber.Ctx) *auth.Principal {
	p, _ := c.Locals(LocalPrincipal).(*auth.Principal)
	return p
}

// GetUsername devuelve el nombre del usuario autenticado o "".
func GetUsername(c *fiber.Ctx) string {
	if p := GetPrincipal(c); p != nil {
		return p.Username
	}
	return ""
}

func parseBasic(value string) (username, password string, ok bool) {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return "", "", false
	}
	username, password, ok = strings.Cut(string(raw), ":")
	if !ok || username == "" {
		return "", "", false
	}
	return username, password, true
}
