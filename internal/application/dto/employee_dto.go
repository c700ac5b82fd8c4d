package dto

// CreateEmployeeRequest entrada para crear un empleado.
type CreateEmployeeRequest struct {
	PersonalID int64  `json:"personal_id" validate:"required"`
	FirstName  string `json:"first_name" validate:"required,max=50"`
	LastName   string `json:"last_name" validate:"required,max=50"`
	Position   string `json:"position" validate:"required,max=100"`
}

// AttachEmployeeRequest entrada para vincular un empleado a un empleador.
// Se acepta government_id directo o employer_name para resolverlo.
type AttachEmployeeRequest struct {
	PersonalID   int64  `json:"personal_id" validate:"required"`
	GovernmentID int64  `json:"government_id"`
	EmployerName string `json:"employer_name"`
}

// EmployeeResponse salida de un empleado. GovernmentID es null hasta vincularlo.
type EmployeeResponse struct {
	PersonalID   int64  `json:"personal_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	GovernmentID *int64 `json:"government_id"`
}

// AttachEmployeeResponse confirma la vinculación con el empleado recargado.
type AttachEmployeeResponse struct {
	Message  string           `json:"message"`
	Employee EmployeeResponse `json:"employee"`
}
