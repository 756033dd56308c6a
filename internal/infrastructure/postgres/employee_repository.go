package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Directorio-api/internal/domain/entity"
	"github.com/jhoicas/Directorio-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementación del puerto EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador de persistencia para empleados.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nuevo empleado y asigna el ID generado.
func (r *EmployeeRepo) Create(ctx context.Context, employee *entity.Employee) error {
	query := `
		INSERT INTO employees (name, company, city, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		employee.Name, employee.Company, employee.City, employee.PhoneNumber,
	).Scan(&employee.ID)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	query := `SELECT id, name, company, city, phone_number FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Name, &e.Company, &e.City, &e.PhoneNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// Update sobrescribe los cuatro campos en una sola sentencia.
func (r *EmployeeRepo) Update(ctx context.Context, employee *entity.Employee) (bool, error) {
	query := `
		UPDATE employees SET name = $2, company = $3, city = $4, phone_number = $5, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		employee.ID, employee.Name, employee.Company, employee.City, employee.PhoneNumber,
	)
	if err != nil {
		return false, fmt.Errorf("update employee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un empleado por ID.
func (r *EmployeeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete employee: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// List devuelve todos los empleados, el más reciente primero.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	query := `SELECT id, name, company, city, phone_number FROM employees ORDER BY id DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Company, &e.City, &e.PhoneNumber); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
