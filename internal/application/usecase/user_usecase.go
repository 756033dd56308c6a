package usecase

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// UserUseCase lecturas de usuario: resolución de identidad y perfil propio.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Exists indica si el usuario sigue en el store. Lo usa el middleware en cada petición.
func (uc *UserUseCase) Exists(ctx context.Context, id int64) (bool, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Me devuelve el perfil del usuario autenticado o domain.ErrUserNotFound.
func (uc *UserUseCase) Me(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}
