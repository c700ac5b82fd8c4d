package entity

// Employee representa un empleado registrado.
// GovernmentID es nil hasta que el empleado se vincula a un empleador.
type Employee struct {
	PersonalID   int64
	FirstName    string
	LastName     string
	Position     string
	GovernmentID *int64
}
