package entity

import (
	"time"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

// SalesChannel configuración de un canal de venta para un producto.
// Se crea inactivo con los costos por defecto del catálogo y la edita el vendedor.
type SalesChannel struct {
	ID        string
	ProductID string
	Type      channel.Type
	IsActive  bool
	Data      channel.CostData
	UpdatedAt time.Time
}
