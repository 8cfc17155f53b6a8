package profitability

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// Result rentabilidad de un canal. Es válido con todos los números calculados,
// o inválido con todos los números en cero y Errors no vacío; nunca una mezcla.
type Result struct {
	Type          channel.Type
	GrossRevenue  decimal.Decimal // precio de lista
	RebateIncome  decimal.Decimal
	NetRevenue    decimal.Decimal // bruto + rebate
	Costs         CostBreakdown
	GrossProfit   decimal.Decimal // bruto − costos (sin rebate)
	NetProfit     decimal.Decimal // neto − costos
	MarginPercent decimal.Decimal // utilidad neta / ingreso bruto × 100
	ROIPercent    decimal.Decimal // utilidad neta / costos totales × 100
	IsValid       bool
	Errors        []FieldError
}

// Engine motor de rentabilidad. No guarda estado entre llamadas: se puede
// invocar en cada cambio de la entrada y desde varias goroutines.
type Engine struct {
	registry *channel.Registry
}

// NewEngine construye el motor con el catálogo de canales inyectado.
func NewEngine(registry *channel.Registry) *Engine {
	return &Engine{registry: registry}
}

// Validate aplica las reglas de negocio y los campos obligatorios del canal.
func (e *Engine) Validate(ch entity.SalesChannel, base entity.ProductBase) ValidationResult {
	meta := e.registry.Get(ch.Type)
	return Validate(ch.Data, meta.RequiredFields, base.CostItem, base.TaxPercent)
}

// Evaluate calcula la rentabilidad de un canal para un producto.
func (e *Engine) Evaluate(ch entity.SalesChannel, base entity.ProductBase) Result {
	v := e.Validate(ch, base)
	if !v.IsValid {
		return Result{Type: ch.Type, Errors: v.Errors}
	}

	data := ch.Data
	gross := data.Price
	rebate := data.RebateValue
	net := gross.Add(rebate)

	commission := Commission(gross, data.CommissionRules())
	costs := AggregateCosts(gross, data, base.CostItem, base.TaxPercent, commission)

	netProfit := net.Sub(costs.TotalCosts)
	return Result{
		Type:          ch.Type,
		GrossRevenue:  gross,
		RebateIncome:  rebate,
		NetRevenue:    net,
		Costs:         costs,
		GrossProfit:   gross.Sub(costs.TotalCosts),
		NetProfit:     netProfit,
		MarginPercent: ratioPercent(netProfit, gross),
		ROIPercent:    ratioPercent(netProfit, costs.TotalCosts),
		IsValid:       true,
	}
}

// ratioPercent num/den × 100, o cero si den ≤ 0.
func ratioPercent(num, den decimal.Decimal) decimal.Decimal {
	if !den.IsPositive() {
		return decimal.Zero
	}
	return num.Div(den).Mul(hundred)
}
