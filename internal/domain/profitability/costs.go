package profitability

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

// CostBreakdown desglose de costos de una venta en un canal.
// TotalCosts = suma de los nueve componentes.
type CostBreakdown struct {
	ProductCost    decimal.Decimal
	TaxCost        decimal.Decimal
	CommissionCost decimal.Decimal
	PackagingCost  decimal.Decimal
	FixedCost      decimal.Decimal
	MarketingCost  decimal.Decimal
	FinancialCost  decimal.Decimal
	ShippingCost   decimal.Decimal
	PrepCenterCost decimal.Decimal
	TotalCosts     decimal.Decimal
}

// Sum recalcula la suma de los componentes.
func (b CostBreakdown) Sum() decimal.Decimal {
	return decimal.Sum(
		b.ProductCost,
		b.TaxCost,
		b.CommissionCost,
		b.PackagingCost,
		b.FixedCost,
		b.MarketingCost,
		b.FinancialCost,
		b.ShippingCost,
		b.PrepCenterCost,
	)
}

// AggregateCosts arma el desglose a partir de la comisión ya calculada.
// Los porcentajes (fijo, marketing, financiero) se aplican sobre el ingreso
// bruto (precio de lista), nunca sobre el ingreso neto: es política del negocio.
func AggregateCosts(
	grossRevenue decimal.Decimal,
	data channel.CostData,
	productCost, taxPercent, commissionCost decimal.Decimal,
) CostBreakdown {
	b := CostBreakdown{
		ProductCost:    productCost,
		TaxCost:        pct(productCost, taxPercent),
		CommissionCost: commissionCost,
		PackagingCost:  data.PackagingCostValue,
		FixedCost:      pct(grossRevenue, data.FixedCostPercent),
		MarketingCost:  pct(grossRevenue, data.MarketingCostPercent),
		FinancialCost:  pct(grossRevenue, data.FinancialCostPercent),
		ShippingCost:   data.ShippingCostValue,
		PrepCenterCost: data.PrepCenterCostValue,
	}
	b.TotalCosts = b.Sum()
	return b
}
