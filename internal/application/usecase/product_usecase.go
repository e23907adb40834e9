package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Taller-api/internal/application/dto"
	"github.com/jhoicas/Taller-api/internal/domain"
	"github.com/jhoicas/Taller-api/internal/domain/entity"
	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// ProductUseCase catálogo de productos de la empresa del gerente.
type ProductUseCase struct {
	resolver TenantResolver
	products repository.ProductRepository
}

// NewProductUseCase construye el caso de uso de productos.
func NewProductUseCase(resolver TenantResolver, products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{resolver: resolver, products: products}
}

// Create registra un producto en el catálogo de la empresa.
func (uc *ProductUseCase) Create(ctx context.Context, managerID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	if in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	product := &entity.Product{
		ID:          uuid.New().String(),
		CompanyID:   companyID,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		CreatedAt:   time.Now(),
	}
	if err := uc.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Get devuelve un producto del catálogo de la empresa.
func (uc *ProductUseCase) Get(ctx context.Context, managerID, id string) (*dto.ProductResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewProductResponse(product), nil
}

// List devuelve el catálogo de productos, paginado.
func (uc *ProductUseCase) List(ctx context.Context, managerID string, page dto.PageRequest) ([]*dto.ProductResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	page.Normalize()
	products, err := uc.products.ListByCompany(ctx, companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// Update aplica un parche sobre un producto del catálogo; los campos ausentes
// del payload conservan su valor.
func (uc *ProductUseCase) Update(ctx context.Context, managerID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}
	product, err := uc.products.GetByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Price != nil && in.Price.IsNegative() {
		return nil, fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}

	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = in.Stock
	}

	if err := uc.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return dto.NewProductResponse(product), nil
}

// Delete elimina un producto del catálogo.
func (uc *ProductUseCase) Delete(ctx context.Context, managerID, id string) error {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return err
	}
	product, err := uc.products.GetByID(ctx, companyID, id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.products.Delete(ctx, companyID, id)
}
