package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de una orden de servicio.
const (
	OrderStatusOpen       = "open"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus indica si s es un estado conocido.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusOpen, OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ServiceOrder representa la cabecera de una orden de servicio (recepción de
// un equipo en el taller). El agregado completo es la orden más sus items;
// toda mutación multi-fila del agregado ocurre en una sola transacción.
type ServiceOrder struct {
	ID                  string
	CompanyID           string
	CustomerID          string
	ResponsibleUserID   string // gerente que creó la orden
	DeviceBrand         string
	DeviceModel         string
	DeviceColor         string
	DeviceIMEI          string
	DevicePassword      string
	DeviceCondition     string
	DeviceAccessories   string
	HasWarranty         bool
	HasInvoice          bool
	OpenedAt            time.Time
	ClosedAt            *time.Time
	EstimatedBudgetDate *time.Time
	EstimatedPickupDate *time.Time
	Status              string // ver constantes OrderStatus*
	Notes               string
	ResponsibilityTerm  string
	ClientSignature     string
	TechnicianSignature string
}

// ServiceOrderItem representa una línea de la orden: referencia a un servicio
// o producto del catálogo, cantidad y precio unitario pactado.
// Total se guarda desnormalizado pero siempre se recalcula en el servidor
// como UnitPrice × Quantity; nunca se acepta del cliente.
type ServiceOrderItem struct {
	ID             string
	ServiceOrderID string
	Item           ItemRef
	Quantity       decimal.Decimal
	UnitPrice      decimal.Decimal
	Total          decimal.Decimal
}
