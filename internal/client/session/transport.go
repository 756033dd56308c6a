package session

import (
	"context"
	"net/http"
)

type authAttemptKey struct{}

// WithAuthAttempt marca el contexto de una petición de login/register: no lleva token
// y un 401 en ella no cierra la sesión.
func WithAuthAttempt(ctx context.Context) context.Context {
	return context.WithValue(ctx, authAttemptKey{}, true)
}

func isAuthAttempt(ctx context.Context) bool {
	v, _ := ctx.Value(authAttemptKey{}).(bool)
	return v
}

// Transport adjunta "Authorization: Bearer <token>" mientras la sesión está autenticada
// y cierra la sesión cuando el servidor responde 401. No reintenta ni refresca tokens.
type Transport struct {
	Session *Session
	Base    http.RoundTripper
}

// RoundTrip implementa http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	authAttempt := isAuthAttempt(req.Context())

	token := ""
	if !authAttempt {
		token = t.Session.currentToken()
	}
	out := req
	if token != "" {
		out = req.Clone(req.Context())
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusUnauthorized && !authAttempt {
		// El error de Clear se ignora aquí: la sesión en memoria ya quedó anónima.
		_, _ = t.Session.reject(token)
	}
	return resp, nil
}
