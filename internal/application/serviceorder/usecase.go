package serviceorder

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

// UseCase casos de uso del agregado orden de servicio. Cada operación
// resuelve primero la empresa del gerente y acota todo lo demás a ella;
// los ids que no pertenecen a la empresa se tratan como inexistentes.
type UseCase struct {
	resolver  TenantResolver
	orders    repository.ServiceOrderRepository
	customers repository.CustomerRepository
	products  repository.ProductRepository
	services  repository.ServiceRepository
	tx        TxRunner
}

// NewUseCase construye el caso de uso de órdenes de servicio.
func NewUseCase(
	resolver TenantResolver,
	orders repository.ServiceOrderRepository,
	customers repository.CustomerRepository,
	products repository.ProductRepository,
	services repository.ServiceRepository,
	tx TxRunner,
) *UseCase {
	return &UseCase{
		resolver:  resolver,
		orders:    orders,
		customers: customers,
		products:  products,
		services:  services,
		tx:        tx,
	}
}

// resolveItemRef verifica que la referencia apunte a un servicio o producto
// existente del catálogo de la empresa.
func (uc *UseCase) resolveItemRef(ctx context.Context, companyID string, ref entity.ItemRef) error {
	if !ref.Valid() {
		return fmt.Errorf("%w: itemType desconocido %q", domain.ErrInvalidInput, ref.Type)
	}
	switch ref.Type {
	case entity.ItemTypeService:
		svc, err := uc.services.GetByID(ctx, companyID, ref.ID)
		if err != nil {
			return err
		}
		if svc == nil {
			return fmt.Errorf("%w: el servicio %s no existe en el catálogo", domain.ErrInvalidInput, ref.ID)
		}
	case entity.ItemTypeProduct:
		prod, err := uc.products.GetByID(ctx, companyID, ref.ID)
		if err != nil {
			return err
		}
		if prod == nil {
			return fmt.Errorf("%w: el producto %s no existe en el catálogo", domain.ErrInvalidInput, ref.ID)
		}
	}
	return nil
}

// Create abre una orden de servicio con sus líneas en una sola transacción.
// Estado inicial open y openedAt el instante del servidor; el total de cada
// línea se calcula aquí como unitPrice × quantity, ignorando cualquier total
// que venga del cliente.
func (uc *UseCase) Create(ctx context.Context, managerID string, in dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}

	customer, err := uc.customers.GetByID(ctx, companyID, in.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente no encontrado", domain.ErrNotFound)
	}

	for _, it := range in.ServiceOrderItems {
		ref := entity.ItemRef{Type: it.ItemType, ID: it.ItemID}
		if err := uc.resolveItemRef(ctx, companyID, ref); err != nil {
			return nil, err
		}
		if it.Quantity.IsNegative() || it.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
	}

	order := &entity.ServiceOrder{
		ID:                  uuid.New().String(),
		CompanyID:           companyID,
		CustomerID:          in.CustomerID,
		ResponsibleUserID:   managerID,
		DeviceBrand:         in.DeviceBrand,
		DeviceModel:         in.DeviceModel,
		DeviceColor:         in.DeviceColor,
		DeviceIMEI:          in.DeviceIMEI,
		DevicePassword:      in.DevicePassword,
		DeviceCondition:     in.DeviceCondition,
		DeviceAccessories:   in.DeviceAccessories,
		HasWarranty:         in.HasWarranty,
		HasInvoice:          in.HasInvoice,
		OpenedAt:            time.Now(),
		EstimatedBudgetDate: in.EstimatedBudgetDate,
		EstimatedPickupDate: in.EstimatedPickupDate,
		Status:              entity.OrderStatusOpen,
		Notes:               in.Notes,
		ResponsibilityTerm:  in.ResponsibilityTerm,
		ClientSignature:     in.ClientSignature,
		TechnicianSignature: in.TechnicianSignature,
	}

	items := make([]*entity.ServiceOrderItem, 0, len(in.ServiceOrderItems))
	for _, it := range in.ServiceOrderItems {
		items = append(items, &entity.ServiceOrderItem{
			ID:             uuid.New().String(),
			ServiceOrderID: order.ID,
			Item:           entity.ItemRef{Type: it.ItemType, ID: it.ItemID},
			Quantity:       it.Quantity,
			UnitPrice:      it.UnitPrice,
			Total:          it.UnitPrice.Mul(it.Quantity),
		})
	}

	err = uc.tx.Run(ctx, func(orders repository.ServiceOrderRepository) error {
		if err := orders.Create(ctx, order); err != nil {
			return err
		}
		for _, item := range items {
			if err := orders.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error creando orden de servicio: %w", err)
	}

	return dto.NewServiceOrderResponse(order, items), nil
}

// Get devuelve la orden con sus líneas. Orden de otra empresa = ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, managerID, orderID string) (*dto.ServiceOrderResponse, error) {
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
	return dto.NewServiceOrderResponse(order, items), nil
}

// List devuelve las cabeceras de las órdenes de la empresa del gerente, de la
// más reciente a la más antigua. Las líneas solo se cargan en Get.
func (uc *UseCase) List(ctx context.Context, managerID string) ([]*dto.ServiceOrderSummaryResponse, error) {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return nil, err
	}

	orders, err := uc.orders.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ServiceOrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewServiceOrderSummaryResponse(order))
	}
	return out, nil
}

// Update aplica un parche sobre la cabecera y las líneas en una sola
// transacción. Solo se escriben los campos presentes en el payload; los
// ausentes conservan su valor. Línea con id = actualizar esa línea (acotada
// a esta orden); línea sin id = insertar nueva. Las líneas existentes
// ausentes del payload quedan intactas. El total de cada línea tocada se
// recalcula siempre en el servidor.
func (uc *UseCase) Update(ctx context.Context, managerID, orderID string, in dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
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

	if in.Status != nil && !entity.ValidOrderStatus(*in.Status) {
		return nil, fmt.Errorf("%w: estado desconocido %q", domain.ErrInvalidInput, *in.Status)
	}

	for _, it := range in.ServiceOrderItems {
		ref := entity.ItemRef{Type: it.ItemType, ID: it.ItemID}
		if err := uc.resolveItemRef(ctx, companyID, ref); err != nil {
			return nil, err
		}
		if it.Quantity.IsNegative() || it.Quantity.IsZero() {
			return nil, fmt.Errorf("%w: la cantidad debe ser positiva", domain.ErrInvalidInput)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: el precio unitario no puede ser negativo", domain.ErrInvalidInput)
		}
	}

	if in.DeviceBrand != nil {
		order.DeviceBrand = *in.DeviceBrand
	}
	if in.DeviceModel != nil {
		order.DeviceModel = *in.DeviceModel
	}
	if in.DeviceColor != nil {
		order.DeviceColor = *in.DeviceColor
	}
	if in.DeviceIMEI != nil {
		order.DeviceIMEI = *in.DeviceIMEI
	}
	if in.DevicePassword != nil {
		order.DevicePassword = *in.DevicePassword
	}
	if in.DeviceCondition != nil {
		order.DeviceCondition = *in.DeviceCondition
	}
	if in.DeviceAccessories != nil {
		order.DeviceAccessories = *in.DeviceAccessories
	}
	if in.HasWarranty != nil {
		order.HasWarranty = *in.HasWarranty
	}
	if in.HasInvoice != nil {
		order.HasInvoice = *in.HasInvoice
	}
	if in.ClosedAt != nil {
		order.ClosedAt = in.ClosedAt
	}
	if in.EstimatedBudgetDate != nil {
		order.EstimatedBudgetDate = in.EstimatedBudgetDate
	}
	if in.EstimatedPickupDate != nil {
		order.EstimatedPickupDate = in.EstimatedPickupDate
	}
	if in.Status != nil {
		order.Status = *in.Status
	}
	if in.Notes != nil {
		order.Notes = *in.Notes
	}
	if in.ResponsibilityTerm != nil {
		order.ResponsibilityTerm = *in.ResponsibilityTerm
	}
	if in.ClientSignature != nil {
		order.ClientSignature = *in.ClientSignature
	}
	if in.TechnicianSignature != nil {
		order.TechnicianSignature = *in.TechnicianSignature
	}

	err = uc.tx.Run(ctx, func(orders repository.ServiceOrderRepository) error {
		if err := orders.Update(ctx, order); err != nil {
			return err
		}
		for _, it := range in.ServiceOrderItems {
			item := &entity.ServiceOrderItem{
				ID:             it.ID,
				ServiceOrderID: order.ID,
				Item:           entity.ItemRef{Type: it.ItemType, ID: it.ItemID},
				Quantity:       it.Quantity,
				UnitPrice:      it.UnitPrice,
				Total:          it.UnitPrice.Mul(it.Quantity),
			}
			if it.ID != "" {
				if err := orders.UpdateItem(ctx, item); err != nil {
					return err
				}
				continue
			}
			item.ID = uuid.New().String()
			if err := orders.CreateItem(ctx, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error actualizando orden de servicio: %w", err)
	}

	items, err := uc.orders.ListItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	return dto.NewServiceOrderResponse(order, items), nil
}

// Delete elimina la orden y todas sus líneas en una sola transacción.
func (uc *UseCase) Delete(ctx context.Context, managerID, orderID string) error {
	companyID, err := uc.resolver.Resolve(ctx, managerID)
	if err != nil {
		return err
	}

	order, err := uc.orders.GetByID(ctx, companyID, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return domain.ErrNotFound
	}

	err = uc.tx.Run(ctx, func(orders repository.ServiceOrderRepository) error {
		if err := orders.DeleteItems(ctx, order.ID); err != nil {
			return err
		}
		return orders.Delete(ctx, order.ID)
	})
	if err != nil {
		return fmt.Errorf("error eliminando orden de servicio: %w", err)
	}
	return nil
}

// AdminGet devuelve cualquier orden sin acotar por empresa (panel del
// administrador general, solo lectura).
func (uc *UseCase) AdminGet(ctx context.Context, orderID string) (*dto.ServiceOrderResponse, error) {
	order, err := uc.orders.AdminGetByID(ctx, orderID)
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
	return dto.NewServiceOrderResponse(order, items), nil
}

// AdminList devuelve las cabeceras de todas las órdenes del sistema.
func (uc *UseCase) AdminList(ctx context.Context) ([]*dto.ServiceOrderSummaryResponse, error) {
	orders, err := uc.orders.AdminList(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ServiceOrderSummaryResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, dto.NewServiceOrderSummaryResponse(order))
	}
	return out, nil
}
