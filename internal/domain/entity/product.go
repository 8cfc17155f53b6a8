package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del vendedor. CostItem es el costo unitario
// de adquisición; TaxPercent el impuesto sobre ese costo (0-100).
// Sus canales de venta se crean al registrarlo y se eliminan con él.
type Product struct {
	ID         string
	CompanyID  string
	SKU        string // código único por empresa
	Name       string
	CostItem   decimal.Decimal
	TaxPercent decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductBase datos del producto que consume el motor de rentabilidad (solo lectura).
type ProductBase struct {
	CostItem   decimal.Decimal
	TaxPercent decimal.Decimal
}

// Base extrae los datos que necesita el motor.
func (p *Product) Base() ProductBase {
	return ProductBase{CostItem: p.CostItem, TaxPercent: p.TaxPercent}
}
