package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo Record Store en memoria. Los IDs son crecientes y nunca se reutilizan.
type EmployeeRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]entity.Employee
}

// NewEmployeeRepository construye un store vacío.
func NewEmployeeRepository() *EmployeeRepo {
	return &EmployeeRepo{byID: make(map[int64]entity.Employee)}
}

// Create persiste un nuevo empleado y asigna su ID.
func (r *EmployeeRepo) Create(_ context.Context, employee *entity.Employee) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	employee.ID = r.nextID
	r.byID[employee.ID] = *employee
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(_ context.Context, id int64) (*entity.Employee, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

// Update sobrescribe el registro si existe.
func (r *EmployeeRepo) Update(_ context.Context, employee *entity.Employee) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[employee.ID]; !ok {
		return false, nil
	}
	r.byID[employee.ID] = *employee
	return true, nil
}

// Delete elimina el registro si existe.
func (r *EmployeeRepo) Delete(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return false, nil
	}
	delete(r.byID, id)
	return true, nil
}

// List devuelve todos los empleados por ID descendente.
func (r *EmployeeRepo) List(_ context.Context) ([]*entity.Employee, error) {
	r.mu.RLock()
	list := make([]*entity.Employee, 0, len(r.byID))
	for _, e := range r.byID {
		e := e
		list = append(list, &e)
	}
	r.mu.RUnlock()
	sort.Slice(list, func(i, j int) bool { return list[i].ID > list[j].ID })
	return list, nil
}
