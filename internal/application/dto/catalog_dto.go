package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// CreateProductRequest alta de producto en el catálogo de la empresa.
type CreateProductRequest struct {
	Description string          `json:"description" validate:"required,min=2"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       *int            `json:"stock" validate:"omitempty,gte=0"`
}

// UpdateProductRequest parche de producto: solo se escriben los campos
// presentes en el payload.
type UpdateProductRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=2"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       *int            `json:"stock,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewProductResponse convierte la entidad a su representación de API.
func NewProductResponse(p *entity.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		CompanyID:   p.CompanyID,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}

// CreateServiceRequest alta de servicio en el catálogo de la empresa.
type CreateServiceRequest struct {
	Description string          `json:"description" validate:"required,min=2"`
	Price       decimal.Decimal `json:"price" validate:"required"`
}

// UpdateServiceRequest parche de servicio: solo se escriben los campos
// presentes en el payload.
type UpdateServiceRequest struct {
	Description *string          `json:"description" validate:"omitempty,min=2"`
	Price       *decimal.Decimal `json:"price"`
}

// ServiceResponse representación pública de un servicio.
type ServiceResponse struct {
	ID          string          `json:"id"`
	CompanyID   string          `json:"companyId"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewServiceResponse convierte la entidad a su representación de API.
func NewServiceResponse(s *entity.Service) *ServiceResponse {
	return &ServiceResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Description: s.Description,
		Price:       s.Price,
		CreatedAt:   s.CreatedAt,
	}
}
