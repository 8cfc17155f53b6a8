package profitability

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

// Campos del producto (no pertenecen a CostData) usados en los errores.
const (
	FieldProductCost = "product_cost"
	FieldTaxPercent  = "tax_percent"
)

// Límites de negocio de los porcentajes editables.
var (
	maxTaxPercent        = decimal.NewFromInt(100)
	maxCommissionPercent = decimal.NewFromInt(50)
	maxFixedPercent      = decimal.NewFromInt(20)
	maxMarketingPercent  = decimal.NewFromInt(30)
	maxFinancialPercent  = decimal.NewFromInt(100)
)

// FieldError error de validación de negocio sobre un campo. Es un dato para
// mostrar al usuario, no una falla del sistema.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationResult resultado de Validate. IsValid ⇔ len(Errors) == 0.
type ValidationResult struct {
	IsValid bool
	Errors  []FieldError
}

// Validate revisa todas las reglas sin cortar en la primera, para informar
// todos los problemas de una vez.
func Validate(data channel.CostData, required []channel.CostField, productCost, taxPercent decimal.Decimal) ValidationResult {
	var errs []FieldError
	add := func(field, format string, args ...interface{}) {
		errs = append(errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if !data.Price.IsPositive() {
		add(string(channel.FieldPrice), "el precio de venta debe ser mayor que cero")
	}
	if !productCost.IsPositive() {
		add(FieldProductCost, "el costo del producto debe ser mayor que cero")
	}
	if !inRange(taxPercent, decimal.Zero, maxTaxPercent) {
		add(FieldTaxPercent, "el impuesto debe estar entre 0%% y %s%%", maxTaxPercent)
	}

	if !inRange(data.CommissionPercent, decimal.Zero, maxCommissionPercent) {
		add(string(channel.FieldCommissionPercent), "la comisión debe estar entre 0%% y %s%%", maxCommissionPercent)
	}
	if v := data.CommissionAboveValue; v != nil && !inRange(*v, decimal.Zero, maxCommissionPercent) {
		add(string(channel.FieldCommissionAboveValue), "la comisión sobre el excedente debe estar entre 0%% y %s%%", maxCommissionPercent)
	}
	if v := data.CommissionMinValue; v != nil && v.IsNegative() {
		add(string(channel.FieldCommissionMinValue), "la comisión mínima no puede ser negativa")
	}
	if v := data.CommissionMaxValue; v != nil && v.IsNegative() {
		add(string(channel.FieldCommissionMaxValue), "la comisión máxima no puede ser negativa")
	}
	if data.PackagingCostValue.IsNegative() {
		add(string(channel.FieldPackagingCostValue), "el costo de empaque no puede ser negativo")
	}
	if !inRange(data.FixedCostPercent, decimal.Zero, maxFixedPercent) {
		add(string(channel.FieldFixedCostPercent), "el costo fijo debe estar entre 0%% y %s%%", maxFixedPercent)
	}
	if !inRange(data.MarketingCostPercent, decimal.Zero, maxMarketingPercent) {
		add(string(channel.FieldMarketingCostPercent), "el costo de marketing debe estar entre 0%% y %s%%", maxMarketingPercent)
	}
	if !inRange(data.FinancialCostPercent, decimal.Zero, maxFinancialPercent) {
		add(string(channel.FieldFinancialCostPercent), "el costo financiero debe estar entre 0%% y %s%%", maxFinancialPercent)
	}
	if data.ShippingCostValue.IsNegative() {
		add(string(channel.FieldShippingCostValue), "el costo de envío no puede ser negativo")
	}
	if data.PrepCenterCostValue.IsNegative() {
		add(string(channel.FieldPrepCenterCostValue), "el costo de prep center no puede ser negativo")
	}
	if data.RebateValue.IsNegative() {
		add(string(channel.FieldRebateValue), "el rebate no puede ser negativo")
	}

	flagged := make(map[string]bool, len(errs))
	for _, e := range errs {
		flagged[e.Field] = true
	}
	for _, f := range required {
		if flagged[string(f)] {
			continue
		}
		v, ok := data.Value(f)
		if !ok || v.IsZero() {
			add(string(f), "campo obligatorio para este canal: %s", f)
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

func inRange(v, lo, hi decimal.Decimal) bool {
	return v.GreaterThanOrEqual(lo) && v.LessThanOrEqual(hi)
}
