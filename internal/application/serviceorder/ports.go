package serviceorder

import (
	"context"

	"github.com/jhoicas/Taller-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con el repositorio de órdenes
// atado a la tx. Toda mutación del agregado orden + items pasa por aquí: o se
// persiste todo o no se persiste nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(orders repository.ServiceOrderRepository) error) error
}

// TenantResolver traduce el usuario autenticado a su empresa.
type TenantResolver interface {
	Resolve(ctx context.Context, userID string) (string, error)
}
