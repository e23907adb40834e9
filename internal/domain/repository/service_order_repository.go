package repository

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/entity"
)

// ServiceOrderRepository define el puerto de persistencia para el agregado
// orden de servicio + items. GetByID/ListByCompany exigen companyID; los
// métodos Admin* son la única vía sin tenant y son de solo lectura (panel
// del administrador general).
//
// Create/CreateItem/Update/UpdateItem/DeleteItems/Delete se invocan con el
// repo atado a una transacción (ver TxRunner); la verificación de pertenencia
// ocurre antes, en el caso de uso.
type ServiceOrderRepository interface {
	Create(ctx context.Context, order *entity.ServiceOrder) error
	CreateItem(ctx context.Context, item *entity.ServiceOrderItem) error
	GetByID(ctx context.Context, companyID, id string) (*entity.ServiceOrder, error)
	ListByCompany(ctx context.Context, companyID string) ([]*entity.ServiceOrder, error)
	ListItems(ctx context.Context, orderID string) ([]*entity.ServiceOrderItem, error)
	Update(ctx context.Context, order *entity.ServiceOrder) error
	// UpdateItem actualiza cantidad, precio unitario y total de una línea,
	// acotado por (id, service_order_id) para no tocar líneas de otra orden.
	UpdateItem(ctx context.Context, item *entity.ServiceOrderItem) error
	DeleteItems(ctx context.Context, orderID string) error
	Delete(ctx context.Context, id string) error

	AdminGetByID(ctx context.Context, id string) (*entity.ServiceOrder, error)
	AdminList(ctx context.Context) ([]*entity.ServiceOrder, error)
}
