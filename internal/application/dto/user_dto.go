package dto

import (
	"time"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CreateUserRequest alta de usuario por el administrador general.
// Si Password viene vacío se genera una contraseña aleatoria y se envía
// por correo al nuevo usuario (flujo de invitación).
type CreateUserRequest struct {
	Name      string  `json:"name" validate:"required,min=2"`
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"omitempty,min=6"`
	Role      string  `json:"role" validate:"required,oneof=general_admin manager client"`
	CompanyID *string `json:"companyId" validate:"omitempty,uuid4"`
}

// UpdateUserRequest parche de usuario: solo se escriben los campos presentes
// en el payload. La contraseña solo cambia si viene.
type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=2"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  string  `json:"password" validate:"omitempty,min=6"`
	Role      *string `json:"role" validate:"omitempty,oneof=general_admin manager client"`
	CompanyID *string `json:"companyId" validate:"omitempty,uuid4"`
}

// UserResponse representación pública de un usuario. Nunca expone el hash.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CompanyID *string   `json:"companyId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse convierte la entidad a su representación de API.
func NewUserResponse(u *entity.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		CreatedAt: u.CreatedAt,
	}
}
