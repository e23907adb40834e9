package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/application/notification"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
	"github.com/jhoicas/Taller-api/pkg/logger"
	"github.com/jhoicas/Taller-api/pkg/password"
)

// UserUseCase administración de usuarios (solo administrador general).
type UserUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	emails    notification.EmailEnqueuer
	log       *logger.Logger
}

// NewUserUseCase construye el caso de uso de usuarios.
func NewUserUseCase(users repository.UserRepository, companies repository.CompanyRepository, emails notification.EmailEnqueuer, log *logger.Logger) *UserUseCase {
	return &UserUseCase{users: users, companies: companies, emails: emails, log: log}
}

// Create registra un usuario. Si no viene contraseña se genera una aleatoria
// y se envía por correo al usuario (flujo de invitación). Un gerente debe
// venir con empresa existente.
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	if in.Role == entity.RoleManager {
		if in.CompanyID == nil || *in.CompanyID == "" {
			return nil, fmt.Errorf("%w: un gerente requiere empresa asignada", domain.ErrInvalidInput)
		}
	}
	if in.CompanyID != nil && *in.CompanyID != "" {
		company, err := uc.companies.GetByID(ctx, *in.CompanyID)
		if err != nil {
			return nil, err
		}
		if company == nil {
			return nil, fmt.Errorf("%w: empresa no encontrada", domain.ErrNotFound)
		}
	}

	plain := in.Password
	generated := false
	if plain == "" {
		plain, err = password.Generate(10)
		if err != nil {
			return nil, err
		}
		generated = true
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hasheando contraseña: %w", err)
	}

	hashStr := string(hash)
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: &hashStr,
		Role:         in.Role,
		CompanyID:    in.CompanyID,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if generated {
		msg := notification.WelcomeEmail(user.Name, user.Email, plain)
		if err := uc.emails.Enqueue(ctx, msg); err != nil {
			// El usuario ya existe; el correo puede reenviarse vía recuperación.
			uc.log.Error().Err(err).Str("email", user.Email).Msg("no se pudo encolar el correo de bienvenida")
		}
	}
	return dto.NewUserResponse(user), nil
}

// Get devuelve un usuario por id.
func (uc *UserUseCase) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(user), nil
}

// List devuelve los usuarios paginados.
func (uc *UserUseCase) List(ctx context.Context, page dto.PageRequest) ([]*dto.UserResponse, error) {
	page.Normalize()
	users, err := uc.users.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Update aplica un parche sobre un usuario; los campos ausentes del payload
// conservan su valor. La contraseña solo cambia si viene.
func (uc *UserUseCase) Update(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}

	if in.Email != nil && *in.Email != user.Email {
		existing, err := uc.users.GetByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Role != nil {
		user.Role = *in.Role
	}
	if in.CompanyID != nil {
		user.CompanyID = in.CompanyID
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hasheando contraseña: %w", err)
		}
		hashStr := string(hash)
		user.PasswordHash = &hashStr
	}

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete elimina un usuario por id.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.users.Delete(ctx, id)
}
