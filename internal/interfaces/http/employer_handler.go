package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/empleos-api/internal/application/dto"
	"github.com/tu-usuario/empleos-api/internal/application/usecase"
	"github.com/tu-usuario/empleos-api/internal/domain"
)

// EmployerHandler maneja las peticiones HTTP para Employer (protegido).
type EmployerHandler struct {
	uc *usecase.EmployerUseCase
}

// NewEmployerHandler construye el handler.
func NewEmployerHandler(uc *usecase.EmployerUseCase) *EmployerHandler {
	return &EmployerHandler{uc: uc}
}

// Search godoc
// @Summary      Buscar empleadores
// @Tags         employers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Término de búsqueda"
// @Param        offset  query  int     false  "Offset"  default(0)
// @Param        limit   query  int     false  "Límite"  default(10)
// @Success      200     {array}   dto.EmployerResponse
// @Failure      401     {object}  dto.ErrorResponse
// @Router       /api/employers [get]
func (h *EmployerHandler) Search(c *fiber.Ctx) error {
	term := c.Query("search")
	offset, limit := pageParams(c)
	out, err := h.uc.Search(c.UserContext(), term, offset, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear empleador
// @Tags         employers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployerRequest  true  "Datos del empleador"
// @Success      201   {object}  dto.EmployerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/employers [post]
func (h *EmployerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployerRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.GovernmentID <= 0 || in.EmployerName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "government_id y employer_name son requeridos"})
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el government_id ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
