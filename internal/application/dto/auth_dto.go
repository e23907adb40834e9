package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token de acceso emitido.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest alta de cuenta de autoservicio. El rol siempre es client;
// no se acepta del cliente.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// PasswordRecoverRequest solicitud de restablecimiento de contraseña.
type PasswordRecoverRequest struct {
	Email string `json:"email" validate:"required,email"`
}
