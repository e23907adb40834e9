package tenant

import (
	"context"
	"fmt"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// Resolver traduce el usuario autenticado a la empresa que opera.
// Todo caso de uso del panel del gerente pasa por aquí antes de tocar
// datos: ninguna operación de tenant corre sin companyID resuelto.
type Resolver struct {
	users repository.UserRepository
}

// NewResolver crea el resolutor de tenant.
func NewResolver(users repository.UserRepository) *Resolver {
	return &Resolver{users: users}
}

// Resolve devuelve el companyID del gerente autenticado.
// Usuario inexistente o sin empresa asignada produce ErrTenantNotResolved;
// no se distingue entre ambos casos.
func (r *Resolver) Resolve(ctx context.Context, userID string) (string, error) {
	user, err := r.users.GetByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("error resolviendo empresa del usuario: %w", err)
	}
	if user == nil || user.CompanyID == nil || *user.CompanyID == "" {
		return "", domain.ErrTenantNotResolved
	}
	return *user.CompanyID, nil
}
