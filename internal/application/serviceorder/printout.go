package serviceorder

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// PrintoutGenerator renderiza el comprobante de recepción de una orden.
// descriptions mapea el id de cada servicio/producto referenciado a su
// descripción de catálogo. La implementación real produce un PDF con maroto.
type PrintoutGenerator interface {
	Generate(company *entity.Company, customer *entity.Customer, order *entity.ServiceOrder, items []*entity.ServiceOrderItem, descriptions map[string]string) ([]byte, error)
}

// PrintoutUseCase genera el comprobante imprimible de una orden de servicio.
type PrintoutUseCase struct {
	resolver  TenantResolver
	orders    repository.ServiceOrderRepository
	customers repository.CustomerRepository
	companies repository.CompanyRepository
	products  repository.ProductRepository
	services  repository.ServiceRepository
	generator PrintoutGenerator
}

// NewPrintoutUseCase construye el caso de uso del comprobante.
func NewPrintoutUseCase(
	resolver TenantResolver,
	orders repository.ServiceOrderRepository,
	customers repository.CustomerRepository,
	companies repository.CompanyRepository,
	products repository.ProductRepository,
	services repository.ServiceRepository,
	generator PrintoutGenerator,
) *PrintoutUseCase {
	return &PrintoutUseCase{
		resolver:  resolver,
		orders:    orders,
		customers: customers,
		companies: companies,
		products:  products,
		services:  services,
		generator: generator,
	}
}

// Generate arma el comprobante PDF de la orden. Mismo scoping que Get:
// una orden de otra empresa es ErrNotFound.
func (uc *PrintoutUseCase) Generate(ctx context.Context, managerID, orderID string) ([]byte, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}

	order, err := uc.orders.GetByID(ctx, companyID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}

	items, err := uc.orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	customer, err := uc.customers.GetByID(ctx, companyID, order.CustomerID)
	if err != nil {
		return nil, err
	}
	company, err := uc.companies.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	descriptions := make(map[string]string, len(items))
	for _, it := range items {
		if _, ok := descriptions[it.Item.ID]; ok {
			continue
		}
		switch it.Item.Type {
		case entity.ItemTypeService:
			svc, err := uc.services.GetByID(ctx, companyID, it.Item.ID)
			if err != nil {
				return nil, err
			}
			if svc != nil {
				descriptions[it.Item.ID] = svc.Description
			}
		case entity.ItemTypeProduct:
			prod, err := uc.products.GetByID(ctx, companyID, it.Item.ID)
			if err != nil {
				return nil, err
			}
			if prod != nil {
				descriptions[it.Item.ID] = prod.Description
			}
		}
	}

	return uc.generator.Generate(company, customer, order, items, descriptions)
}
