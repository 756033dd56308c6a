package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Errores de verificación. El middleware los distingue para el log y el mensaje al cliente.
var (
	ErrMalformed        = errors.New("jwt: token malformado")
	ErrInvalidSignature = errors.New("jwt: firma inválida")
	ErrExpired          = errors.New("jwt: token expirado")
)

// Now es el reloj usado para emitir y verificar tokens (reemplazable en tests).
var Now = time.Now

// Claims solo lleva los claims registrados: el subject es el ID numérico del usuario.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token HS256 firmado con subject = userID y exp = ahora + ttl.
func Generate(secret string, userID int64, issuer string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve el userID del subject.
// Los errores devueltos son siempre ErrMalformed, ErrInvalidSignature o ErrExpired (envueltos).
func Parse(secret, tokenString string) (int64, error) {
	if secret == "" {
		return 0, fmt.Errorf("jwt: secret vacío")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithTimeFunc(Now), jwt.WithExpirationRequired())
	if err != nil {
		return 0, classify(err)
	}
	if !token.Valid {
		return 0, ErrMalformed
	}
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: subject %q", ErrMalformed, claims.Subject)
	}
	return userID, nil
}

// classify traduce los errores de golang-jwt a los tres errores del paquete.
func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", ErrExpired, err)
	default:
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
}
