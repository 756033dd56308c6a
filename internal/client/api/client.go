// Package api es el cliente HTTP de la API del directorio. Toda petición pasa por
// la sesión (session.Transport), que adjunta el token y reacciona a los 401.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/client/session"
)

// ErrSessionExpired la sesión terminó por un 401; hay que volver a autenticarse.
var ErrSessionExpired = errors.New("session expired, please log in again")

// APIError respuesta de error del servidor con su mensaje.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d %s", e.StatusCode, e.Message)
}

// Client cliente de la API.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New construye el cliente. baseURL incluye el prefijo /api (p. ej. http://localhost:3000/api).
// base puede ser nil para usar http.DefaultTransport.
func New(baseURL string, sess *session.Session, base http.RoundTripper) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: &session.Transport{Session: sess, Base: base},
		},
		session: sess,
	}
}

// Session devuelve la sesión asociada.
func (c *Client) Session() *session.Session {
	return c.session
}

// Register crea la cuenta e inicia sesión con el token recibido.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(session.WithAuthAttempt(ctx), http.MethodPost, "/users/register", in, &out); err != nil {
		return nil, err
	}
	if err := c.session.Establish(out.Token); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login autentica e inicia sesión con el token recibido.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	var out dto.AuthResponse
	if err := c.do(session.WithAuthAttempt(ctx), http.MethodPost, "/users/login", in, &out); err != nil {
		return nil, err
	}
	if err := c.session.Establish(out.Token); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout cierra la sesión local. El servidor no guarda sesiones, no hay llamada remota.
func (c *Client) Logout() (bool, error) {
	return c.session.Logout(session.ReasonExplicit)
}

// Me devuelve el usuario autenticado.
func (c *Client) Me(ctx context.Context) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListEmployees devuelve todos los empleados, el más reciente primero.
func (c *Client) ListEmployees(ctx context.Context) ([]dto.EmployeeResponse, error) {
	out := make([]dto.EmployeeResponse, 0)
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateEmployee crea un empleado.
func (c *Client) CreateEmployee(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPost, "/employees", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateEmployee reemplaza los cuatro campos del empleado id.
func (c *Client) UpdateEmployee(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	var out dto.EmployeeResponse
	if err := c.do(ctx, http.MethodPut, "/employees/"+strconv.FormatInt(id, 10), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteEmployee elimina el empleado id y devuelve el mensaje de confirmación.
func (c *Client) DeleteEmployee(ctx context.Context, id int64) (string, error) {
	var out dto.MessageResponse
	if err := c.do(ctx, http.MethodDelete, "/employees/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: serializar cuerpo: %w", err)
		}
		reader = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: crear petición: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: decodeMessage(resp.Body)}
		// El Transport ya cerró la sesión; la UI no distingue expirado/inválido/ausente.
		if resp.StatusCode == http.StatusUnauthorized && !isAuthPath(path) {
			return fmt.Errorf("%w (%s)", ErrSessionExpired, apiErr.Message)
		}
		return apiErr
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decodificar respuesta: %w", err)
	}
	return nil
}

func isAuthPath(path string) bool {
	return path == "/users/login" || path == "/users/register"
}

func decodeMessage(r io.Reader) string {
	var e dto.ErrorResponse
	b, _ := io.ReadAll(io.LimitReader(r, 64<<10))
	if err := json.Unmarshal(b, &e); err != nil || e.Message == "" {
		return strings.TrimSpace(string(b))
	}
	return e.Message
}
