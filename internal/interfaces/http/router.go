package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/empleos-api/internal/application/auth"
	"github.com/tu-usuario/empleos-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	EmployeeUC *usecase.EmployeeUseCase
	EmployerUC *usecase.EmployerUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Get("/", employeeHandler.Search)
	employees.Post("/", employeeHandler.Create)
	employees.Patch("/attach", employeeHandler.Attach)

	// Employers (protegido)
	employers := protected.Group("/employers")
	employerHandler := NewEmployerHandler(deps.EmployerUC)
	employers.Get("/", employerHandler.Search)
	employers.Post("/", employerHandler.Create)
}
