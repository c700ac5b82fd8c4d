package dto

// CreateEmployerRequest entrada para crear un empleador.
type CreateEmployerRequest struct {
	GovernmentID int64  `json:"government_id" validate:"required"`
	EmployerName string `json:"employer_name" validate:"required,max=100"`
}

// EmployerResponse salida de un empleador.
type EmployerResponse struct {
	GovernmentID int64  `json:"government_id"`
	EmployerName string `json:"employer_name"`
}
