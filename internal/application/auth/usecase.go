package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
	"github.com/jhoicas/Directorio-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtCfg    JWTConfig
	hashCost  int
	dummyHash []byte
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return newAuthUseCase(userRepo, jwtCfg, bcrypt.DefaultCost)
}

func newAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, cost int) *AuthUseCase {
	// Hash de referencia para comparar cuando el email no existe y así igualar tiempos.
	dummy, _ := bcrypt.GenerateFromPassword([]byte("dummy-password-for-timing"), cost)
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, hashCost: cost, dummyHash: dummy}
}

// NormalizeUsername recorta y normaliza a NFC.
func NormalizeUsername(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// NormalizeEmail recorta y aplica case folding.
func NormalizeEmail(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Register crea un usuario y devuelve identidad + token.
// Orden de errores: ErrDuplicateUsername antes que ErrDuplicateEmail.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := NormalizeUsername(in.Username)
	email := NormalizeEmail(in.Email)
	if username == "" || email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Username, email and password are required")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateUsername
	}
	existing, err = uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.hashCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, domain.NewValidationError("Password must be at most 72 bytes")
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}
	now := time.Now().UTC()
	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	// Si otra petición concurrente ganó la carrera, el repo ya devuelve el error del campo correcto.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.issue(user)
}

// Login verifica email/password y emite un token.
// Email desconocido y password incorrecto devuelven el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.NewValidationError("Email and password are required")
	}
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(uc.dummyHash, []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	return uc.issue(user)
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Token:    token,
	}, nil
}
