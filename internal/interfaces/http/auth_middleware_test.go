package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Pinturas-api/internal/application/auth"
	"github.com/jhoicas/Pinturas-api/internal/application/dto"
	"github.com/jhoicas/Pinturas-api/internal/domain/entity"
	"github.com/jhoicas/Pinturas-api/internal/domain/repository"
	apphttp "github.com/jhoicas/Pinturas-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria (suficientes para login + validate + logout)
// ──────────────────────────────────────────────────────────────────────────────

type fakeUsers struct{ byUsername map[string]*entity.User }

func (f *fakeUsers) Create(u *entity.User) error { f.byUsername[u.Username] = u; return nil }
func (f *fakeUsers) GetByID(id string) (*entity.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}
func (f *fakeUsers) GetByUsername(username string) (*entity.User, error) {
	return f.byUsername[username], nil
}
func (f *fakeUsers) Update(*entity.User) error             { return nil }
func (f *fakeUsers) List(_, _ int) ([]*entity.User, error) { return nil, nil }
func (f *fakeUsers) Deactivate(string) error               { return nil }
func (f *fakeUsers) CountAdmins() (int, error)             { return 1, nil }

type fakeCustomers struct{}

func (fakeCustomers) Create(*entity.Customer) error                  { return nil }
func (fakeCustomers) GetByID(string) (*entity.Customer, error)       { return nil, nil }
func (fakeCustomers) GetByUsername(string) (*entity.Customer, error) { return nil, nil }
func (fakeCustomers) Update(*entity.Customer) error                  { return nil }
func (fakeCustomers) List(repository.Scope, int, int) ([]*entity.Customer, error) {
	return nil, nil
}

type fakeSessions struct{ byHash map[string]*entity.Session }

func (f *fakeSessions) Create(s *entity.Session) error { f.byHash[s.TokenHash] = s; return nil }
func (f *fakeSessions) FindByTokenHash(hash string, now time.Time) (*entity.Session, error) {
	s, ok := f.byHash[hash]
	if !ok || !now.Before(s.ExpiresAt) {
		return nil, nil
	}
	return s, nil
}
func (f *fakeSessions) DeleteByTokenHash(hash string) error { delete(f.byHash, hash); return nil }
func (f *fakeSessions) DeleteByActor(actorID, actorType string) error {
	for h, s := range f.byHash {
		if s.ActorID == actorID && s.ActorType == actorType {
			delete(f.byHash, h)
		}
	}
	return nil
}
func (f *fakeSessions) DeleteExpired(now time.Time) (int64, error) { return 0, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildAuth construye un AuthUseCase respaldado por fakes, con un admin y un
// técnico ya registrados.
func buildAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.MinCost)
	require.NoError(t, err)
	users := &fakeUsers{byUsername: map[string]*entity.User{
		"admin": {ID: "u-admin", Username: "admin", PasswordHash: string(hash), Role: entity.RoleAdmin, IsActive: true},
		"tec":   {ID: "u-tec", Username: "tec", PasswordHash: string(hash), Role: entity.RoleUser, IsActive: true},
	}}
	return auth.NewAuthUseCase(users, fakeCustomers{}, &fakeSessions{byHash: map[string]*entity.Session{}}, auth.Config{
		JWTSecret: "test-secret-key-for-unit-tests",
		Issuer:    "pinturas-crm-test",
		TokenTTL:  time.Hour,
	})
}

// buildTestApp construye una app Fiber mínima con AuthMiddleware + RequireRole.
func buildTestApp(uc *auth.AuthUseCase, allowedRoles ...string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(uc),
		apphttp.RequireRole(allowedRoles...),
		func(c *fiber.Ctx) error {
			actor := apphttp.GetActor(c)
			return c.Status(fiber.StatusOK).JSON(fiber.Map{"ok": true, "role": actor.Role})
		},
	)
	return app
}

func loginAs(t *testing.T, uc *auth.AuthUseCase, username string) string {
	t.Helper()
	out, err := uc.Login(dto.LoginRequest{Username: username, Password: "secreta123"})
	require.NoError(t, err)
	return out.Token
}

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

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware + RequireRole
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_SesionValidaPasa(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer "+loginAs(t, uc, "admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"admin con sesión viva debe acceder a ruta restringida a admin")
}

func TestAuthMiddleware_TokenRevocadoRetorna401(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	token := loginAs(t, uc, "admin")
	require.NoError(t, uc.Logout(token))

	resp := doRequest(t, app, "Bearer "+token)
	defer resp.Body.Close()

	// el JWT sigue firmado y dentro de su TTL, pero la sesión ya no existe
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un token revocado debe rechazarse aunque el JWT no haya expirado")
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}

func TestRequireRole_TecnicoBloqueadoEnRutaAdmin(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer "+loginAs(t, uc, "tec"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "FORBIDDEN")
}

func TestRequireRole_MultiRol(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin, entity.RoleUser)
	resp := doRequest(t, app, "Bearer "+loginAs(t, uc, "tec"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"el técnico debe acceder a una ruta que permite admin o user")
}

func TestAuthMiddleware_SinHeaderRetorna401(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

func TestAuthMiddleware_TokenMalformadoRetorna401(t *testing.T) {
	uc := buildAuth(t)
	app := buildTestApp(uc, entity.RoleAdmin)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "INVALID_TOKEN")
}
