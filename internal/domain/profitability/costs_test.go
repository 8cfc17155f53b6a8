package profitability_test

import (
	"testing"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
)

func TestAggregateCosts_PorcentajesSobreIngresoBruto(t *testing.T) {
	data := channel.CostData{
		Price:                dec("200"),
		PackagingCostValue:   dec("3"),
		FixedCostPercent:     dec("5"),
		MarketingCostPercent: dec("10"),
		FinancialCostPercent: dec("2.5"),
		ShippingCostValue:    dec("12"),
		PrepCenterCostValue:  dec("4"),
		RebateValue:          dec("50"), // no debe alterar ninguna base porcentual
	}

	b := profitability.AggregateCosts(dec("200"), data, dec("80"), dec("19"), dec("24"))

	assertDec(t, "80", b.ProductCost)
	assertDec(t, "15.2", b.TaxCost, "19% sobre el costo del producto")
	assertDec(t, "24", b.CommissionCost)
	assertDec(t, "3", b.PackagingCost)
	assertDec(t, "10", b.FixedCost)
	assertDec(t, "20", b.MarketingCost)
	assertDec(t, "5", b.FinancialCost)
	assertDec(t, "12", b.ShippingCost)
	assertDec(t, "4", b.PrepCenterCost)
	assertDec(t, "173.2", b.TotalCosts)
	assertDec(t, b.Sum().String(), b.TotalCosts)
}

func TestAggregateCosts_CamposOpcionalesEnCero(t *testing.T) {
	b := profitability.AggregateCosts(dec("100"), channel.CostData{Price: dec("100")}, dec("40"), dec("0"), dec("0"))

	assertDec(t, "0", b.FinancialCost)
	assertDec(t, "0", b.ShippingCost)
	assertDec(t, "0", b.PrepCenterCost)
	assertDec(t, "40", b.TotalCosts)
}
