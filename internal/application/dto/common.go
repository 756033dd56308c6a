package dto

// ErrorResponse cuerpo de error HTTP. Message siempre está presente.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse estado del servicio.
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
}
