package entity

import "time"

// Roles válidos para User.
const (
	RoleGeneralAdmin = "general_admin"
	RoleManager      = "manager"
	RoleClient       = "client"
)

// User representa un usuario del sistema.
// PasswordHash es un puntero: nil significa cuenta solo-login-social (sin
// contraseña); esa cuenta nunca puede autenticarse por password.
// CompanyID es nil salvo para gerentes, donde designa el tenant que operan.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash *string
	Role         string // general_admin, manager, client
	CompanyID    *string
	CreatedAt    time.Time
}
