package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un repuesto o artículo del catálogo de la empresa.
// Stock es opcional (nil = sin control de existencias).
type Product struct {
	ID          string
	CompanyID   string
	Description string
	Price       decimal.Decimal
	Stock       *int
	CreatedAt   time.Time
}

// Service representa un servicio de mano de obra del catálogo de la empresa.
type Service struct {
	ID          string
	CompanyID   string
	Description string
	Price       decimal.Decimal
	CreatedAt   time.Time
}

// Tipos de ítem referenciables desde una línea de orden de servicio.
const (
	ItemTypeService = "service"
	ItemTypeProduct = "product"
)

// ItemRef es la unión etiquetada {Service(id) | Product(id)}: Type selecciona
// contra qué catálogo se resuelve ID. Reemplaza al par (item_type, item_id)
// suelto para que la resolución pase siempre por el catálogo correcto.
type ItemRef struct {
	Type string // ItemTypeService | ItemTypeProduct
	ID   string
}

// Valid indica si el tipo de la referencia es uno de los conocidos.
func (r ItemRef) Valid() bool {
	return r.Type == ItemTypeService || r.Type == ItemTypeProduct
}
