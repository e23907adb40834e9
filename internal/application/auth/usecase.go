package auth

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
	"github.com/jhoicas/Taller-api/pkg/jwt"
	"github.com/jhoicas/Taller-api/pkg/logger"
	"github.com/jhoicas/Taller-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de autenticación: login, registro y recuperación
// de contraseña.
type UseCase struct {
	userRepo repository.UserRepository
	emails   notification.EmailEnqueuer
	jwtCfg   JWTConfig
	log      *logger.Logger
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(userRepo repository.UserRepository, emails notification.EmailEnqueuer, jwtCfg JWTConfig, log *logger.Logger) *UseCase {
	return &UseCase{userRepo: userRepo, emails: emails, jwtCfg: jwtCfg, log: log}
}

// Login verifica email/password y emite un JWT con subject = id del usuario.
// Email inexistente, cuenta sin contraseña (solo login social) y contraseña
// incorrecta colapsan todos en ErrInvalidCredentials: la respuesta nunca
// revela cuál de los tres falló.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("error generando token: %w", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Register crea una cuenta de autoservicio. El rol es siempre client sin
// importar lo que venga en el payload.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("error consultando usuario: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hasheando contraseña: %w", err)
	}

	hashStr := string(hash)
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: &hashStr,
		Role:         entity.RoleClient,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// RecoverPassword genera una contraseña nueva, la persiste y la envía por
// correo. Si el email no existe no hace nada: el handler responde igual en
// ambos casos para no permitir enumerar cuentas.
func (uc *UseCase) RecoverPassword(ctx context.Context, in dto.PasswordRecoverRequest) error {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return fmt.Errorf("error consultando usuario: %w", err)
	}
	if user == nil {
		return nil
	}

	newPassword, err := password.Generate(10)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hasheando contraseña: %w", err)
	}

	hashStr := string(hash)
	user.PasswordHash = &hashStr
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	msg := notification.PasswordResetEmail(user.Name, user.Email, newPassword)
	if err := uc.emails.Enqueue(ctx, msg); err != nil {
		// La contraseña ya cambió; el reintento queda del lado del usuario.
		uc.log.Error().Err(err).Str("email", user.Email).Msg("no se pudo encolar el correo de recuperación")
		return fmt.Errorf("error encolando correo: %w", err)
	}
	return nil
}
