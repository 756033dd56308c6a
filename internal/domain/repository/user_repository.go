package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (Credential Store).
// Los Get* devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	// Create asigna user.ID. Una violación de unicidad devuelve domain.ErrDuplicateUsername
	// o domain.ErrDuplicateEmail según la columna en conflicto.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
