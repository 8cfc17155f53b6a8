package channel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// CostField nombre de un campo de costo (usado en RequiredFields y en los errores de validación).
type CostField string

const (
	FieldPrice                CostField = "price"
	FieldCommissionPercent    CostField = "commission_percent"
	FieldCommissionUpToValue  CostField = "commission_up_to_value"
	FieldCommissionAboveValue CostField = "commission_above_value"
	FieldCommissionMinValue   CostField = "commission_min_value"
	FieldCommissionMaxValue   CostField = "commission_max_value"
	FieldPackagingCostValue   CostField = "packaging_cost_value"
	FieldFixedCostPercent     CostField = "fixed_cost_percent"
	FieldMarketingCostPercent CostField = "marketing_cost_percent"
	FieldFinancialCostPercent CostField = "financial_cost_percent"
	FieldShippingCostValue    CostField = "shipping_cost_value"
	FieldPrepCenterCostValue  CostField = "prep_center_cost_value"
	FieldRebateValue          CostField = "rebate_value"
)

var costFields = [...]CostField{
	FieldPrice,
	FieldCommissionPercent,
	FieldCommissionUpToValue,
	FieldCommissionAboveValue,
	FieldCommissionMinValue,
	FieldCommissionMaxValue,
	FieldPackagingCostValue,
	FieldFixedCostPercent,
	FieldMarketingCostPercent,
	FieldFinancialCostPercent,
	FieldShippingCostValue,
	FieldPrepCenterCostValue,
	FieldRebateValue,
}

// Valid indica si f es un campo de costo conocido.
func (f CostField) Valid() bool {
	for _, v := range costFields {
		if v == f {
			return true
		}
	}
	return false
}

// CostData parámetros de precio y costo de un canal para un producto.
// Los campos numéricos no informados valen cero; los parámetros escalonados
// de comisión son punteros porque su ausencia cambia el modo de cálculo.
type CostData struct {
	Price                decimal.Decimal   `json:"price"`
	CommissionPercent    decimal.Decimal   `json:"commission_percent"`
	CommissionUpToValue  *decimal.Decimal  `json:"commission_up_to_value,omitempty"`
	CommissionAboveValue *decimal.Decimal  `json:"commission_above_value,omitempty"`
	CommissionMinValue   *decimal.Decimal  `json:"commission_min_value,omitempty"`
	CommissionMaxValue   *decimal.Decimal  `json:"commission_max_value,omitempty"`
	PackagingCostValue   decimal.Decimal   `json:"packaging_cost_value"`
	FixedCostPercent     decimal.Decimal   `json:"fixed_cost_percent"`
	MarketingCostPercent decimal.Decimal   `json:"marketing_cost_percent"`
	FinancialCostPercent decimal.Decimal   `json:"financial_cost_percent"`
	ShippingCostValue    decimal.Decimal   `json:"shipping_cost_value"`
	PrepCenterCostValue  decimal.Decimal   `json:"prep_center_cost_value"`
	RebateValue          decimal.Decimal   `json:"rebate_value"` // ingreso, no costo
	ProductCodes         map[string]string `json:"product_codes,omitempty"`
}

// Value devuelve el valor de un campo y si está informado.
// Los campos opcionales de comisión están informados sólo si no son nil.
func (d CostData) Value(f CostField) (decimal.Decimal, bool) {
	switch f {
	case FieldPrice:
		return d.Price, true
	case FieldCommissionPercent:
		return d.CommissionPercent, true
	case FieldCommissionUpToValue:
		return deref(d.CommissionUpToValue)
	case FieldCommissionAboveValue:
		return deref(d.CommissionAboveValue)
	case FieldCommissionMinValue:
		return deref(d.CommissionMinValue)
	case FieldCommissionMaxValue:
		return deref(d.CommissionMaxValue)
	case FieldPackagingCostValue:
		return d.PackagingCostValue, true
	case FieldFixedCostPercent:
		return d.FixedCostPercent, true
	case FieldMarketingCostPercent:
		return d.MarketingCostPercent, true
	case FieldFinancialCostPercent:
		return d.FinancialCostPercent, true
	case FieldShippingCostValue:
		return d.ShippingCostValue, true
	case FieldPrepCenterCostValue:
		return d.PrepCenterCostValue, true
	case FieldRebateValue:
		return d.RebateValue, true
	}
	return decimal.Zero, false
}

// Set asigna un campo por nombre. Devuelve ErrInvalidInput si el campo no existe.
func (d *CostData) Set(f CostField, v decimal.Decimal) error {
	switch f {
	case FieldPrice:
		d.Price = v
	case FieldCommissionPercent:
		d.CommissionPercent = v
	case FieldCommissionUpToValue:
		d.CommissionUpToValue = &v
	case FieldCommissionAboveValue:
		d.CommissionAboveValue = &v
	case FieldCommissionMinValue:
		d.CommissionMinValue = &v
	case FieldCommissionMaxValue:
		d.CommissionMaxValue = &v
	case FieldPackagingCostValue:
		d.PackagingCostValue = v
	case FieldFixedCostPercent:
		d.FixedCostPercent = v
	case FieldMarketingCostPercent:
		d.MarketingCostPercent = v
	case FieldFinancialCostPercent:
		d.FinancialCostPercent = v
	case FieldShippingCostValue:
		d.ShippingCostValue = v
	case FieldPrepCenterCostValue:
		d.PrepCenterCostValue = v
	case FieldRebateValue:
		d.RebateValue = v
	default:
		return fmt.Errorf("%w: campo de costo %q", domain.ErrInvalidInput, f)
	}
	return nil
}

// Clear borra un límite opcional de comisión. Sólo los cuatro campos
// opcionales admiten ausencia; el resto devuelve ErrInvalidInput.
func (d *CostData) Clear(f CostField) error {
	switch f {
	case FieldCommissionUpToValue:
		d.CommissionUpToValue = nil
	case FieldCommissionAboveValue:
		d.CommissionAboveValue = nil
	case FieldCommissionMinValue:
		d.CommissionMinValue = nil
	case FieldCommissionMaxValue:
		d.CommissionMaxValue = nil
	default:
		return fmt.Errorf("%w: el campo %q no es opcional", domain.ErrInvalidInput, f)
	}
	return nil
}

// Clone copia profunda (punteros y mapa de códigos).
func (d CostData) Clone() CostData {
	out := d
	out.CommissionUpToValue = clonePtr(d.CommissionUpToValue)
	out.CommissionAboveValue = clonePtr(d.CommissionAboveValue)
	out.CommissionMinValue = clonePtr(d.CommissionMinValue)
	out.CommissionMaxValue = clonePtr(d.CommissionMaxValue)
	if d.ProductCodes != nil {
		out.ProductCodes = make(map[string]string, len(d.ProductCodes))
		for k, v := range d.ProductCodes {
			out.ProductCodes[k] = v
		}
	}
	return out
}

// CommissionRules extrae las reglas de comisión del canal.
func (d CostData) CommissionRules() CommissionRules {
	return CommissionRules{
		Percent:    d.CommissionPercent,
		UpToValue:  d.CommissionUpToValue,
		AboveValue: d.CommissionAboveValue,
		MinValue:   d.CommissionMinValue,
		MaxValue:   d.CommissionMaxValue,
	}
}

// CommissionRules comisión plana o escalonada con límites opcionales.
type CommissionRules struct {
	Percent    decimal.Decimal
	UpToValue  *decimal.Decimal
	AboveValue *decimal.Decimal
	MinValue   *decimal.Decimal
	MaxValue   *decimal.Decimal
}

// Tiered indica modo escalonado (UpToValue y AboveValue informados).
func (r CommissionRules) Tiered() bool {
	return r.UpToValue != nil && r.AboveValue != nil
}

// Check detecta reglas mal configuradas: mínimo mayor que el máximo o umbral negativo.
// Se invoca en los bordes de entrada; el cálculo asume reglas sanas.
func (r CommissionRules) Check() error {
	if r.MinValue != nil && r.MaxValue != nil && r.MinValue.GreaterThan(*r.MaxValue) {
		return fmt.Errorf("%w: mínimo %s mayor que máximo %s",
			domain.ErrInvalidCommissionRules, r.MinValue.String(), r.MaxValue.String())
	}
	if r.UpToValue != nil && r.UpToValue.IsNegative() {
		return fmt.Errorf("%w: umbral escalonado negativo %s",
			domain.ErrInvalidCommissionRules, r.UpToValue.String())
	}
	return nil
}

func deref(p *decimal.Decimal) (decimal.Decimal, bool) {
	if p == nil {
		return decimal.Zero, false
	}
	return *p, true
}

func clonePtr(p *decimal.Decimal) *decimal.Decimal {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
