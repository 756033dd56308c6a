package usecase

import (
	"context"
	"strings"

	"github.com/jhoicas/Directorio-api/internal/application/dto"
	"github.com/jhoicas/Directorio-api/internal/domain"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso CRUD para empleados. Requiere identidad resuelta en la capa HTTP;
// no hay chequeo de propiedad (cualquier usuario autenticado opera sobre cualquier registro).
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// List devuelve todos los empleados, el más reciente primero. Nunca devuelve nil sin error.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmployeeResponse(e))
	}
	return items, nil
}

// Get obtiene un empleado por ID.
func (uc *EmployeeUseCase) Get(ctx context.Context, id int64) (*dto.EmployeeResponse, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Create valida los cuatro campos y persiste un nuevo empleado.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// Update sobrescribe los cuatro campos (sin semántica parcial).
func (uc *EmployeeUseCase) Update(ctx context.Context, id int64, in dto.EmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := fromRequest(in)
	if err != nil {
		return nil, err
	}
	employee.ID = id
	ok, err := uc.repo.Update(ctx, employee)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toEmployeeResponse(employee), nil
}

// Delete elimina un empleado por ID.
func (uc *EmployeeUseCase) Delete(ctx context.Context, id int64) error {
	ok, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

func fromRequest(in dto.EmployeeRequest) (*entity.Employee, error) {
	employee := &entity.Employee{
		Name:        in.Name,
		Company:     in.Company,
		City:        in.City,
		PhoneNumber: in.PhoneNumber,
	}
	employee.Normalize()
	if missing := employee.MissingFields(); len(missing) > 0 {
		return nil, domain.NewValidationError("All fields are required: " + strings.Join(missing, ", "))
	}
	return employee, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Company:     e.Company,
		City:        e.City,
		PhoneNumber: e.PhoneNumber,
	}
}
