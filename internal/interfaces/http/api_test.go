package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Directorio-api/internal/application/auth"
	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/application/usecase"
	"github.com/jhoicas/Directorio-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Directorio-api/internal/interfaces/http"
	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app   *fiber.App
	users *memory.UserRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	users := memory.NewUserRepository()
	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testJWTSecret, TTL: time.Hour, Issuer: testIssuer}),
		UserUC:     usecase.NewUserUseCase(users),
		EmployeeUC: usecase.NewEmployeeUseCase(memory.NewEmployeeRepository()),
		JWTSecret:  testJWTSecret,
		Env:        "test",
		Logger:     logger.Nop(),
	})
	return &testServer{app: app, users: users}
}

// call ejecuta la petición y decodifica el body JSON en out (si no es nil).
func (s *testServer) call(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
	}
	return resp.StatusCode
}

func (s *testServer) register(t *testing.T, username, email, password string) dto.AuthResponse {
	t.Helper()
	var out dto.AuthResponse
	status := s.call(t, http.MethodPost, "/api/users/register", "", dto.RegisterRequest{
		Username: username, Email: email, Password: password,
	}, &out)
	require.Equal(t, fiber.StatusCreated, status)
	return out
}

var bob = dto.EmployeeRequest{Name: "Bob", Company: "Acme", City: "NYC", PhoneNumber: "+15551234567"}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios de punta a punta
// ──────────────────────────────────────────────────────────────────────────────

func TestAPI_RegistroLoginYCRUD(t *testing.T) {
	s := newTestServer(t)

	reg := s.register(t, "alice", "a@x.com", "secret123")
	assert.Equal(t, "alice", reg.Username)
	assert.NotEmpty(t, reg.Token)

	var login dto.AuthResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodPost, "/api/users/login", "",
		dto.LoginRequest{Email: "a@x.com", Password: "secret123"}, &login))
	assert.Equal(t, reg.ID, login.ID)
	token := login.Token

	var list []dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, "/api/employees", token, nil, &list))
	assert.Empty(t, list)

	var created dto.EmployeeResponse
	require.Equal(t, fiber.StatusCreated, s.call(t, http.MethodPost, "/api/employees", token, bob, &created))
	assert.Positive(t, created.ID)
	assert.Equal(t, "Acme", created.Company)

	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, "/api/employees", token, nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, created, list[0])

	var got dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, fmt.Sprintf("/api/employees/%d", created.ID), token, nil, &got))
	assert.Equal(t, created, got)

	upd := bob
	upd.City = "LA"
	var updated dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodPut, fmt.Sprintf("/api/employees/%d", created.ID), token, upd, &updated))
	assert.Equal(t, "LA", updated.City)
	assert.Equal(t, created.ID, updated.ID)

	var msg dto.MessageResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodDelete, fmt.Sprintf("/api/employees/%d", created.ID), token, nil, &msg))
	assert.Equal(t, apphttp.MsgEmployeeDeleted, msg.Message)

	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, "/api/employees", token, nil, &list))
	assert.Empty(t, list)
}

func TestAPI_EmployeesSinTokenEs401(t *testing.T) {
	s := newTestServer(t)
	var body dto.ErrorResponse
	assert.Equal(t, fiber.StatusUnauthorized, s.call(t, http.MethodGet, "/api/employees", "", nil, &body))
	assert.Equal(t, apphttp.MsgNoToken, body.Message)

	assert.Equal(t, fiber.StatusUnauthorized, s.call(t, http.MethodPost, "/api/employees", "", bob, &body))
	assert.Equal(t, fiber.StatusUnauthorized, s.call(t, http.MethodDelete, "/api/employees/1", "", nil, &body))
}

func TestAPI_RegistroDuplicado(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice", "a@x.com", "secret123")

	var body dto.ErrorResponse
	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodPost, "/api/users/register", "",
		dto.RegisterRequest{Username: "alice", Email: "a@x.com", Password: "x"}, &body))
	assert.Equal(t, apphttp.MsgUsernameExists, body.Message)

	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodPost, "/api/users/register", "",
		dto.RegisterRequest{Username: "bob", Email: "A@X.com", Password: "x"}, &body))
	assert.Equal(t, apphttp.MsgEmailExists, body.Message)
}

func TestAPI_LoginFallidoMismoMensaje(t *testing.T) {
	s := newTestServer(t)
	s.register(t, "alice", "a@x.com", "secret123")

	var unknown, wrong dto.ErrorResponse
	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodPost, "/api/users/login", "",
		dto.LoginRequest{Email: "nadie@x.com", Password: "secret123"}, &unknown))
	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodPost, "/api/users/login", "",
		dto.LoginRequest{Email: "a@x.com", Password: "mala"}, &wrong))
	assert.Equal(t, unknown, wrong)
	assert.Equal(t, apphttp.MsgInvalidCredentials, wrong.Message)
}

func TestAPI_ValidacionesEmployee(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com", "secret123").Token

	var body dto.ErrorResponse
	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodPost, "/api/employees", token,
		dto.EmployeeRequest{Name: "Bob"}, &body))
	assert.Equal(t, "VALIDATION", body.Code)

	assert.Equal(t, fiber.StatusBadRequest, s.call(t, http.MethodGet, "/api/employees/abc", token, nil, &body))
	assert.Equal(t, apphttp.MsgInvalidID, body.Message)

	assert.Equal(t, fiber.StatusNotFound, s.call(t, http.MethodGet, "/api/employees/999", token, nil, &body))
	assert.Equal(t, apphttp.MsgEmployeeNotFound, body.Message)
	assert.Equal(t, fiber.StatusNotFound, s.call(t, http.MethodPut, "/api/employees/999", token, bob, &body))
	assert.Equal(t, fiber.StatusNotFound, s.call(t, http.MethodDelete, "/api/employees/999", token, nil, &body))
}

func TestAPI_BodyInvalido(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewBufferString("{no-json"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.MsgInvalidBody, decodeError(t, resp).Message)
}

func TestAPI_MeYUsuarioEliminado(t *testing.T) {
	s := newTestServer(t)
	reg := s.register(t, "alice", "a@x.com", "secret123")

	var me dto.UserResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, "/api/users/me", reg.Token, nil, &me))
	assert.Equal(t, dto.UserResponse{ID: reg.ID, Username: "alice", Email: "a@x.com"}, me)

	// Sin caché: el token pierde validez en cuanto el usuario desaparece.
	s.users.Delete(reg.ID)
	var body dto.ErrorResponse
	assert.Equal(t, fiber.StatusUnauthorized, s.call(t, http.MethodGet, "/api/employees", reg.Token, nil, &body))
	assert.Equal(t, apphttp.MsgUserNotFound, body.Message)
}

func TestAPI_HealthYRequestID(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	var health dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "ok", health.Status)
}

func TestAPI_RutaDesconocidaDevuelveJSON(t *testing.T) {
	s := newTestServer(t)
	var body dto.ErrorResponse
	assert.Equal(t, fiber.StatusNotFound, s.call(t, http.MethodGet, "/api/nada", "", nil, &body))
	assert.NotEmpty(t, body.Message)
}

// PUT reemplaza los cuatro campos; GET por id y el listado ven el registro completo nuevo.
func TestAPI_UpdateReemplazaLosCuatroCampos(t *testing.T) {
	s := newTestServer(t)
	token := s.register(t, "alice", "a@x.com", "secret123").Token

	var created dto.EmployeeResponse
	require.Equal(t, fiber.StatusCreated, s.call(t, http.MethodPost, "/api/employees", token, bob, &created))

	repl := dto.EmployeeRequest{Name: "Carol", Company: "Globex", City: "Boston", PhoneNumber: "+15559876543"}
	want := dto.EmployeeResponse{ID: created.ID, Name: "Carol", Company: "Globex", City: "Boston", PhoneNumber: "+15559876543"}
	path := fmt.Sprintf("/api/employees/%d", created.ID)

	var updated dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodPut, path, token, repl, &updated))
	assert.Equal(t, want, updated)

	var got dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, path, token, nil, &got))
	assert.Equal(t, want, got)

	var list []dto.EmployeeResponse
	require.Equal(t, fiber.StatusOK, s.call(t, http.MethodGet, "/api/employees", token, nil, &list))
	require.Len(t, list, 1)
	assert.Equal(t, want, list[0])
}
