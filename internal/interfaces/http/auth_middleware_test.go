package http_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Despensa-api/internal/application/auth"
	apphttp "github.com/jhoicas/Despensa-api/internal/interfaces/http"
	"github.com/jhoicas/Despensa-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/Despensa-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "despensa-api-test"
	testExpMin    = 60
	adminPass     = "admin-pass"
	userPass      = "user-pass"
)

func newAuthUseCase(t *testing.T, secret string) *auth.AuthUseCase {
	t.Helper()
	uc := auth.NewAuthUseCase(memory.New(), auth.Config{
		JWTSecret: secret, JWTIssuer: testIssuer, JWTExpMinutes: testExpMin, BcryptCost: bcrypt.MinCost,
	})
	require.NoError(t, uc.SeedUsers(context.Background(), adminPass, userPass))
	return uc
}

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para autenticar (Basic o Bearer)
//   - RequireRole para autorizar el acceso
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(t *testing.T, allowedRoles ...string) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected",
		apphttp.AuthMiddleware(newAuthUseCase(t, testJWTSecret)),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"user": apphttp.GetUsername(c),
			})
		},
	)
	return app
}

func basic(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}

// bearerFor genera un JWT con los roles indicados.
func bearerFor(t *testing.T, username string, roles ...string) string {
	t.Helper()
	tok, _, err := pkgjwt.Generate(testJWTSecret, username, roles, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func errorCode(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var e struct {
		Code string `json:"code"`
	}
	require.NoError(t, json.Unmarshal(body, &e), string(body))
	return e.Code
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, basic("admin", adminPass))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode, "admin debe poder acceder a ruta restringida a admin")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "admin", body["user"])
}

func TestRequireRole_UserAccedeRutaDeLectura(t *testing.T) {
	app := buildTestApp(t, "user", "admin")
	resp := doRequest(t, app, basic("user", userPass))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole_UserBloqueadoEnRutaAdmin(t *testing.T) {
	app := buildTestApp(t, "admin")
	resp := doRequest(t, app, basic("user", userPass))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode, "user no debe poder acceder a ruta restringida a admin")
	assert.Equal(t, "FORBIDDEN", errorCode(t, resp))
}

func TestAuthMiddleware_SinCredenciales(t *testing.T) {
	app := buildTestApp(t, "user")
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, `Basic realm="despensa"`, resp.Header.Get("WWW-Authenticate"))
	assert.Equal(t, "MISSING_CREDENTIALS", errorCode(t, resp))
}

func TestAuthMiddleware_CredencialesInvalidas(t *testing.T) {
	app := buildTestApp(t, "user")
	cases := map[string]string{
		"contraseña incorrecta": basic("admin", "mala"),
		"usuario inexistente":   basic("nadie", "x"),
		"base64 corrupto":       "Basic %%%",
		"esquema desconocido":   "Digest abc",
		"token inválido":        "Bearer no.es.jwt",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			resp := doRequest(t, app, header)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, resp))
		})
	}
}

func TestAuthMiddleware_BearerConRoles(t *testing.T) {
	app := buildTestApp(t, "admin")

	resp := doRequest(t, app, bearerFor(t, "admin", "admin", "user"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp2 := doRequest(t, app, bearerFor(t, "user", "user"))
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp2.StatusCode)
}

func TestAuthMiddleware_BearerSinSecretoRechazado(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Get("/protected", apphttp.AuthMiddleware(newAuthUseCase(t, "")), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp := doRequest(t, app, bearerFor(t, "admin", "admin"))
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
