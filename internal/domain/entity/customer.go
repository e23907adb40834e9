package entity

import "time"

// Customer representa un cliente de la empresa (dueño de los equipos que
// entran al taller). Pertenece exactamente a una Company.
type Customer struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string
	Phone        string
	Address      string
	RegisteredAt time.Time
}
