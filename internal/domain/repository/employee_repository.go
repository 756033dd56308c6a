package repository

import (
	"context"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee (Record Store).
// Cada operación es una única sentencia atómica.
type EmployeeRepository interface {
	// Create asigna employee.ID.
	Create(ctx context.Context, employee *entity.Employee) error
	// GetByID devuelve (nil, nil) si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Employee, error)
	// Update sobrescribe los cuatro campos; devuelve false si no existe el ID.
	Update(ctx context.Context, employee *entity.Employee) (bool, error)
	// Delete devuelve false si no existe el ID.
	Delete(ctx context.Context, id int64) (bool, error)
	// List devuelve todos los registros ordenados por ID descendente.
	List(ctx context.Context) ([]*entity.Employee, error)
}
