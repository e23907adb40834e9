package entity

import "time"

// Company representa una empresa/tenant del sistema. Es la raíz de aislamiento:
// todo recurso operativo (clientes, catálogo, órdenes) lleva su CompanyID.
type Company struct {
	ID        string
	Name      string
	TaxID     string // NIT/CNPJ, opcional
	Address   string
	Phone     string
	CreatedAt time.Time
}
