package entity

import "time"

// Company representa una tienda (tenant). Cada pequeño comercio es una Company
// con sus propios productos, usuarios e historial de ventas.
type Company struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
