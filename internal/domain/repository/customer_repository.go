package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Toda consulta exige companyID: no existe variante sin tenant, así una
// query sin scoping no puede escribirse por accidente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, companyID, id string) error
}
