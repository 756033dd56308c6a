package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo Credential Store en memoria con las mismas restricciones de unicidad que PostgreSQL.
type UserRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]entity.User
}

// NewUserRepository construye un store vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{byID: make(map[int64]entity.User)}
}

// Create inserta el usuario; la verificación de unicidad y el insert son atómicos.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Username == user.Username {
			return domain.ErrDuplicateUsername
		}
	}
	for _, u := range r.byID {
		if u.Email == user.Email {
			return domain.ErrDuplicateEmail
		}
	}
	r.nextID++
	user.ID = r.nextID
	r.byID[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByUsername obtiene un usuario por username.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Username == username }), nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u entity.User) bool { return u.Email == email }), nil
}

// Delete elimina un usuario. Es un hook de tests y administración: no forma parte de
// repository.UserRepository y ningún caso de uso lo invoca. Los tests lo usan para
// comprobar que un token deja de resolver en cuanto su usuario desaparece.
func (r *UserRepo) Delete(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byID, id)
}

func (r *UserRepo) find(match func(entity.User) bool) *entity.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if match(u) {
			found := u
			return &found
		}
	}
	return nil
}
