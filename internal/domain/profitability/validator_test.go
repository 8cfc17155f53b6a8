package profitability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
)

func fields(errs []profitability.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidate_EntradaValida(t *testing.T) {
	data := channel.CostData{Price: dec("100"), CommissionPercent: dec("50"), FixedCostPercent: dec("20"), MarketingCostPercent: dec("30")}

	v := profitability.Validate(data, []channel.CostField{channel.FieldPrice}, dec("10"), dec("100"))

	assert.True(t, v.IsValid, "los límites superiores son inclusivos")
	assert.Empty(t, v.Errors)
}

func TestValidate_ReportaTodosLosErrores(t *testing.T) {
	data := channel.CostData{
		Price:                dec("0"),
		CommissionPercent:    dec("51"),
		PackagingCostValue:   dec("-1"),
		FixedCostPercent:     dec("21"),
		MarketingCostPercent: dec("31"),
		ShippingCostValue:    dec("-5"),
	}

	v := profitability.Validate(data, nil, dec("0"), dec("101"))

	require.False(t, v.IsValid)
	assert.ElementsMatch(t, []string{
		"price",
		profitability.FieldProductCost,
		profitability.FieldTaxPercent,
		"commission_percent",
		"packaging_cost_value",
		"fixed_cost_percent",
		"marketing_cost_percent",
		"shipping_cost_value",
	}, fields(v.Errors))
}

func TestValidate_CamposObligatoriosDelCanal(t *testing.T) {
	data := channel.CostData{Price: dec("100"), CommissionPercent: dec("15")}
	required := []channel.CostField{channel.FieldPrice, channel.FieldCommissionPercent, channel.FieldPrepCenterCostValue, channel.FieldCommissionMaxValue}

	v := profitability.Validate(data, required, dec("10"), dec("0"))

	require.False(t, v.IsValid)
	assert.Equal(t, []string{"prep_center_cost_value", "commission_max_value"}, fields(v.Errors))
	assert.Contains(t, v.Errors[0].Message, "prep_center_cost_value", "el error nombra el campo faltante")
}

func TestValidate_PrecioCeroNoDuplicaError(t *testing.T) {
	v := profitability.Validate(channel.CostData{}, []channel.CostField{channel.FieldPrice}, dec("10"), dec("0"))

	require.Len(t, v.Errors, 1)
	assert.Equal(t, "price", v.Errors[0].Field)
	assert.EqualError(t, v.Errors[0], "price: el precio de venta debe ser mayor que cero")
}

// ──────────────────────────────────────────────────────────────────────────
// Parámetros de la comisión escalonada y de sus topes
// ──────────────────────────────────────────────────────────────────────────

func TestValidate_ComisionExcedenteFueraDeRango(t *testing.T) {
	for _, above := range []string{"-50", "50.01", "500"} {
		data := channel.CostData{
			Price:                dec("1000"),
			CommissionPercent:    dec("10"),
			CommissionUpToValue:  ptr("100"),
			CommissionAboveValue: ptr(above),
		}

		v := profitability.Validate(data, nil, dec("10"), dec("0"))

		require.False(t, v.IsValid, "excedente %s", above)
		assert.Equal(t, []string{"commission_above_value"}, fields(v.Errors), "excedente %s", above)
	}
}

func TestValidate_ComisionExcedenteLimitesInclusivos(t *testing.T) {
	for _, above := range []string{"0", "50"} {
		data := channel.CostData{
			Price:                dec("1000"),
			CommissionPercent:    dec("10"),
			CommissionUpToValue:  ptr("100"),
			CommissionAboveValue: ptr(above),
		}

		v := profitability.Validate(data, nil, dec("10"), dec("0"))

		assert.True(t, v.IsValid, "excedente %s", above)
	}
}

func TestValidate_ComisionMaximaNegativa(t *testing.T) {
	data := channel.CostData{Price: dec("1000"), CommissionPercent: dec("10"), CommissionMaxValue: ptr("-30")}

	v := profitability.Validate(data, nil, dec("10"), dec("0"))

	require.False(t, v.IsValid)
	assert.Equal(t, []string{"commission_max_value"}, fields(v.Errors))
}

func TestValidate_ComisionMinimaNegativa(t *testing.T) {
	data := channel.CostData{Price: dec("1000"), CommissionPercent: dec("10"), CommissionMinValue: ptr("-1")}

	v := profitability.Validate(data, nil, dec("10"), dec("0"))

	require.False(t, v.IsValid)
	assert.Equal(t, []string{"commission_min_value"}, fields(v.Errors))
}

func TestValidate_TopesCeroSonValidos(t *testing.T) {
	data := channel.CostData{Price: dec("1000"), CommissionPercent: dec("10"), CommissionMinValue: ptr("0"), CommissionMaxValue: ptr("0")}

	v := profitability.Validate(data, nil, dec("10"), dec("0"))

	assert.True(t, v.IsValid)
}
