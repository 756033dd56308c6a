package dto

// EmployeeRequest entrada para crear o reemplazar un empleado (los cuatro campos son obligatorios).
type EmployeeRequest struct {
	Name        string `json:"name" validate:"required"`
	Company     string `json:"company" validate:"required"`
	City        string `json:"city" validate:"required"`
	PhoneNumber string `json:"phone_number" validate:"required"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Company     string `json:"company"`
	City        string `json:"city"`
	PhoneNumber string `json:"phone_number"`
}
