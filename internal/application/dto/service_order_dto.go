package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ServiceOrderItemRequest línea de orden enviada por el cliente.
// El total nunca se acepta: siempre lo calcula el servidor como
// unitPrice × quantity. En actualización, ID presente = actualizar la línea
// existente; ID ausente = insertar línea nueva.
type ServiceOrderItemRequest struct {
	ID        string          `json:"id" validate:"omitempty,uuid4"`
	ItemType  string          `json:"itemType" validate:"required,oneof=service product"`
	ItemID    string          `json:"itemId" validate:"required,uuid4"`
	Quantity  decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice" validate:"required"`
}

// CreateServiceOrderRequest alta de orden de servicio con sus líneas.
type CreateServiceOrderRequest struct {
	CustomerID          string                    `json:"customerId" validate:"required,uuid4"`
	DeviceBrand         string                    `json:"deviceBrand" validate:"required"`
	DeviceModel         string                    `json:"deviceModel" validate:"required"`
	DeviceColor         string                    `json:"deviceColor"`
	DeviceIMEI          string                    `json:"deviceImei"`
	DevicePassword      string                    `json:"devicePassword"`
	DeviceCondition     string                    `json:"deviceCondition"`
	DeviceAccessories   string                    `json:"deviceAccessories"`
	HasWarranty         bool                      `json:"hasWarranty"`
	HasInvoice          bool                      `json:"hasInvoice"`
	EstimatedBudgetDate *time.Time                `json:"estimatedBudgetDate"`
	EstimatedPickupDate *time.Time                `json:"estimatedPickupDate"`
	Notes               string                    `json:"notes"`
	ResponsibilityTerm  string                    `json:"responsibilityTerm"`
	ClientSignature     string                    `json:"clientSignature"`
	TechnicianSignature string                    `json:"technicianSignature"`
	ServiceOrderItems   []ServiceOrderItemRequest `json:"serviceOrderItems" validate:"required,min=1,dive"`
}

// UpdateServiceOrderRequest parche de la cabecera y las líneas. Todos los
// campos son opcionales: solo se escriben los que vienen en el payload; un
// campo ausente conserva su valor actual. Lo mismo aplica a las líneas: las
// existentes que no vengan quedan intactas. El cliente de la orden no se
// cambia por esta vía.
type UpdateServiceOrderRequest struct {
	DeviceBrand         *string                   `json:"deviceBrand" validate:"omitempty,min=1"`
	DeviceModel         *string                   `json:"deviceModel" validate:"omitempty,min=1"`
	DeviceColor         *string                   `json:"deviceColor"`
	DeviceIMEI          *string                   `json:"deviceImei"`
	DevicePassword      *string                   `json:"devicePassword"`
	DeviceCondition     *string                   `json:"deviceCondition"`
	DeviceAccessories   *string                   `json:"deviceAccessories"`
	HasWarranty         *bool                     `json:"hasWarranty"`
	HasInvoice          *bool                     `json:"hasInvoice"`
	ClosedAt            *time.Time                `json:"closedAt"`
	EstimatedBudgetDate *time.Time                `json:"estimatedBudgetDate"`
	EstimatedPickupDate *time.Time                `json:"estimatedPickupDate"`
	Status              *string                   `json:"status" validate:"omitempty,oneof=open in_progress completed cancelled"`
	Notes               *string                   `json:"notes"`
	ResponsibilityTerm  *string                   `json:"responsibilityTerm"`
	ClientSignature     *string                   `json:"clientSignature"`
	TechnicianSignature *string                   `json:"technicianSignature"`
	ServiceOrderItems   []ServiceOrderItemRequest `json:"serviceOrderItems" validate:"omitempty,dive"`
}

// ServiceOrderItemResponse línea de orden en la respuesta.
type ServiceOrderItemResponse struct {
	ID        string          `json:"id"`
	ItemType  string          `json:"itemType"`
	ItemID    string          `json:"itemId"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Total     decimal.Decimal `json:"total"`
}

// ServiceOrderSummaryResponse cabecera de la orden, sin líneas. Es la
// representación de los listados; las líneas solo viajan en la consulta de
// una orden puntual.
type ServiceOrderSummaryResponse struct {
	ID                  string     `json:"id"`
	CompanyID           string     `json:"companyId"`
	CustomerID          string     `json:"customerId"`
	ResponsibleUserID   string     `json:"responsibleUserId"`
	DeviceBrand         string     `json:"deviceBrand"`
	DeviceModel         string     `json:"deviceModel"`
	DeviceColor         string     `json:"deviceColor,omitempty"`
	DeviceIMEI          string     `json:"deviceImei,omitempty"`
	DevicePassword      string     `json:"devicePassword,omitempty"`
	DeviceCondition     string     `json:"deviceCondition,omitempty"`
	DeviceAccessories   string     `json:"deviceAccessories,omitempty"`
	HasWarranty         bool       `json:"hasWarranty"`
	HasInvoice          bool       `json:"hasInvoice"`
	OpenedAt            time.Time  `json:"openedAt"`
	ClosedAt            *time.Time `json:"closedAt,omitempty"`
	EstimatedBudgetDate *time.Time `json:"estimatedBudgetDate,omitempty"`
	EstimatedPickupDate *time.Time `json:"estimatedPickupDate,omitempty"`
	Status              string     `json:"status"`
	Notes               string     `json:"notes,omitempty"`
	ResponsibilityTerm  string     `json:"responsibilityTerm,omitempty"`
	ClientSignature     string     `json:"clientSignature,omitempty"`
	TechnicianSignature string     `json:"technicianSignature,omitempty"`
}

// ServiceOrderResponse orden completa con sus líneas.
type ServiceOrderResponse struct {
	ServiceOrderSummaryResponse
	ServiceOrderItems []ServiceOrderItemResponse `json:"serviceOrderItems"`
}

// NewServiceOrderSummaryResponse convierte la cabecera de la orden a la
// representación de listado.
func NewServiceOrderSummaryResponse(o *entity.ServiceOrder) *ServiceOrderSummaryResponse {
	return &ServiceOrderSummaryResponse{
		ID:                  o.ID,
		CompanyID:           o.CompanyID,
		CustomerID:          o.CustomerID,
		ResponsibleUserID:   o.ResponsibleUserID,
		DeviceBrand:         o.DeviceBrand,
		DeviceModel:         o.DeviceModel,
		DeviceColor:         o.DeviceColor,
		DeviceIMEI:          o.DeviceIMEI,
		DevicePassword:      o.DevicePassword,
		DeviceCondition:     o.DeviceCondition,
		DeviceAccessories:   o.DeviceAccessories,
		HasWarranty:         o.HasWarranty,
		HasInvoice:          o.HasInvoice,
		OpenedAt:            o.OpenedAt,
		ClosedAt:            o.ClosedAt,
		EstimatedBudgetDate: o.EstimatedBudgetDate,
		EstimatedPickupDate: o.EstimatedPickupDate,
		Status:              o.Status,
		Notes:               o.Notes,
		ResponsibilityTerm:  o.ResponsibilityTerm,
		ClientSignature:     o.ClientSignature,
		TechnicianSignature: o.TechnicianSignature,
	}
}

// NewServiceOrderResponse convierte la orden y sus líneas a la representación de API.
func NewServiceOrderResponse(o *entity.ServiceOrder, items []*entity.ServiceOrderItem) *ServiceOrderResponse {
	resp := &ServiceOrderResponse{
		ServiceOrderSummaryResponse: *NewServiceOrderSummaryResponse(o),
		ServiceOrderItems:           make([]ServiceOrderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		resp.ServiceOrderItems = append(resp.ServiceOrderItems, ServiceOrderItemResponse{
			ID:        it.ID,
			ItemType:  it.Item.Type,
			ItemID:    it.Item.ID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return resp
}
