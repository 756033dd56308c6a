// Package session maneja el ciclo de vida del token del lado cliente: estado
// Anonymous/Authenticated, persistencia, adjuntar el Bearer a cada petición y
// cerrar la sesión ante un 401.
package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/Directorio-api/pkg/logger"
)

// State estado de la sesión cliente.
type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// LogoutReason motivo de la transición Authenticated → Anonymous.
type LogoutReason int

const (
	// ReasonExplicit el usuario pidió cerrar sesión.
	ReasonExplicit LogoutReason = iota
	// ReasonRejected el servidor respondió 401 a una petición autenticada.
	ReasonRejected
)

func (r LogoutReason) String() string {
	if r == ReasonRejected {
		return "rejected"
	}
	return "explicit"
}

// Session es el único dueño del token. La UI no accede al token directamente.
type Session struct {
	mu       sync.Mutex
	store    TokenStore
	token    string
	state    State
	onLogout func(LogoutReason)
	log      *logger.Logger
}

// Option configura una Session.
type Option func(*Session)

// WithOnLogout registra el callback de la transición a Anonymous (p. ej. redirigir al login).
// Se invoca una sola vez por transición, fuera del lock.
func WithOnLogout(fn func(LogoutReason)) Option {
	return func(s *Session) { s.onLogout = fn }
}

// WithLogger registra las transiciones en el logger dado.
func WithLogger(log *logger.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New crea la sesión. Si el store ya tiene un token, arranca como Authenticated
// (tentativo hasta el primer rechazo).
func New(store TokenStore, opts ...Option) (*Session, error) {
	if store == nil {
		return nil, errors.New("session: token store requerido")
	}
	s := &Session{store: store, log: logger.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	token, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("session: cargar token: %w", err)
	}
	if token != "" {
		s.token = token
		s.state = Authenticated
	}
	return s, nil
}

// State devuelve el estado actual.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// currentToken devuelve el token vigente o "" si la sesión es anónima.
func (s *Session) currentToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Establish persiste el token de un login/register exitoso y pasa a Authenticated.
// Si no se puede persistir, la sesión no cambia.
func (s *Session) Establish(token string) error {
	if token == "" {
		return errors.New("session: token vacío")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Save(token); err != nil {
		return fmt.Errorf("session: guardar token: %w", err)
	}
	s.token = token
	s.state = Authenticated
	s.log.Debug().Msg("sesión iniciada")
	return nil
}

// Logout descarta el token y pasa a Anonymous. Es idempotente: si ya es anónima
// devuelve false y no invoca el callback.
func (s *Session) Logout(reason LogoutReason) (bool, error) {
	return s.logout(reason, "")
}

// reject cierra la sesión solo si el token rechazado sigue siendo el vigente,
// para que un 401 tardío de un token viejo no cierre una sesión nueva.
func (s *Session) reject(rejectedToken string) (bool, error) {
	if rejectedToken == "" {
		return false, nil
	}
	return s.logout(ReasonRejected, rejectedToken)
}

func (s *Session) logout(reason LogoutReason, onlyToken string) (bool, error) {
	s.mu.Lock()
	if s.state == Anonymous || (onlyToken != "" && s.token != onlyToken) {
		s.mu.Unlock()
		return false, nil
	}
	s.token = ""
	s.state = Anonymous
	err := s.store.Clear()
	cb := s.onLogout
	s.mu.Unlock()

	s.log.Info().Str("reason", reason.String()).Msg("sesión cerrada")
	if cb != nil {
		cb(reason)
	}
	if err != nil {
		return true, fmt.Errorf("session: borrar token: %w", err)
	}
	return true, nil
}
