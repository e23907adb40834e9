package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// principalLoader es el contrato mínimo que necesita el middleware para cargar
// el usuario del token. Lo implementa repository.UserRepository; el uso de
// interfaz evita acoplar el paquete http al de persistencia.
type principalLoader interface {
	GetByID(ctx context.Context, id string) (*entity.User, error)
}

// RequireRole devuelve un middleware Fiber que carga el usuario del token
// desde la base y verifica que su rol actual esté entre los permitidos.
// Debe usarse DESPUÉS de AuthMiddleware (necesita LocalUserID).
//
// Comportamiento:
//   - 401 → sin user_id en el contexto o el usuario ya no existe.
//   - 403 → el rol actual no está permitido en la ruta.
//   - 503 → fallo de infraestructura al consultar la DB.
func RequireRole(users principalLoader, allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "user_id no encontrado en el token",
			})
		}

		user, err := users.GetByID(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ROLE_CHECK_FAILED",
				Message: "no se pudo verificar el rol, intente más tarde",
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "la cuenta del token ya no existe",
			})
		}

		for _, role := range allowedRoles {
			if user.Role == role {
				c.Locals(LocalRole, user.Role)
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Code:    "FORBIDDEN",
			Message: "el rol actual no tiene acceso a esta ruta",
		})
	}
}
