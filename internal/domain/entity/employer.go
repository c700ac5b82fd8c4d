package entity

// Employer representa un empleador. GovernmentID es la clave natural única.
type Employer struct {
	GovernmentID int64
	EmployerName string
}
