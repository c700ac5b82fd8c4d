package dto

// Paginación por defecto de los listados de búsqueda.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
