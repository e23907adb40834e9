package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
// companyID obligatorio en cada consulta (mismo criterio que CustomerRepository).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Product, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, companyID, id string) error
}

// ServiceRepository define el puerto de persistencia para Service.
type ServiceRepository interface {
	Create(ctx context.Context, service *entity.Service) error
	GetByID(ctx context.Context, companyID, id string) (*entity.Service, error)
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Service, error)
	Update(ctx context.Context, service *entity.Service) error
	Delete(ctx context.Context, companyID, id string) error
}
