package entity

import "strings"

// Employee representa un registro del directorio. No pertenece a ningún usuario (autorización plana).
type Employee struct {
	ID          int64
	Name        string
	Company     string
	City        string
	PhoneNumber string
}

// Normalize recorta espacios en los cuatro campos.
func (e *Employee) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Company = strings.TrimSpace(e.Company)
	e.City = strings.TrimSpace(e.City)
	e.PhoneNumber = strings.TrimSpace(e.PhoneNumber)
}

// MissingFields devuelve los nombres JSON de los campos obligatorios vacíos.
func (e *Employee) MissingFields() []string {
	var missing []string
	if e.Name == "" {
		missing = append(missing, "name")
	}
	if e.Company == "" {
		missing = append(missing, "company")
	}
	if e.City == "" {
		missing = append(missing, "city")
	}
	if e.PhoneNumber == "" {
		missing = append(missing, "phone_number")
	}
	return missing
}
