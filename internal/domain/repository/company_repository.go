package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	Delete(ctx context.Context, id string) error
	// HasDependents indica si existen usuarios, clientes u órdenes que
	// referencian a la empresa (bloquea el borrado).
	HasDependents(ctx context.Context, id string) (bool, error)
}
