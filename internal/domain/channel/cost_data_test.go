package channel_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func ptr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func TestCostData_SetYValue(t *testing.T) {
	var d channel.CostData

	require.NoError(t, d.Set(channel.FieldShippingCostValue, dec("9000")))
	v, ok := d.Value(channel.FieldShippingCostValue)
	assert.True(t, ok)
	assert.True(t, v.Equal(dec("9000")))

	_, ok = d.Value(channel.FieldCommissionMaxValue)
	assert.False(t, ok, "un límite de comisión sin informar no está presente")

	require.NoError(t, d.Set(channel.FieldCommissionMaxValue, dec("0")))
	_, ok = d.Value(channel.FieldCommissionMaxValue)
	assert.True(t, ok)

	err := d.Set(channel.CostField("discount"), dec("1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCostData_CloneEsProfundo(t *testing.T) {
	orig := channel.CostData{
		Price:               dec("100"),
		CommissionUpToValue: ptr("50"),
		ProductCodes:        map[string]string{"sku": "A-1"},
	}

	cp := orig.Clone()
	*cp.CommissionUpToValue = dec("70")
	cp.ProductCodes["sku"] = "B-2"

	assert.True(t, orig.CommissionUpToValue.Equal(dec("50")))
	assert.Equal(t, "A-1", orig.ProductCodes["sku"])
}

func TestCommissionRules_Check(t *testing.T) {
	ok := channel.CommissionRules{Percent: dec("10"), MinValue: ptr("5"), MaxValue: ptr("5")}
	assert.NoError(t, ok.Check(), "mínimo igual al máximo es válido")

	bad := channel.CommissionRules{Percent: dec("10"), MinValue: ptr("50"), MaxValue: ptr("20")}
	assert.ErrorIs(t, bad.Check(), domain.ErrInvalidCommissionRules)

	negative := channel.CommissionRules{Percent: dec("10"), UpToValue: ptr("-1"), AboveValue: ptr("5")}
	assert.ErrorIs(t, negative.Check(), domain.ErrInvalidCommissionRules)
}

func TestCommissionRules_Tiered(t *testing.T) {
	assert.False(t, channel.CommissionRules{UpToValue: ptr("100")}.Tiered())
	assert.True(t, channel.CommissionRules{UpToValue: ptr("100"), AboveValue: ptr("5")}.Tiered())
}

func TestCostData_Clear(t *testing.T) {
	d := channel.CostData{Price: dec("100"), CommissionMinValue: ptr("5")}

	require.NoError(t, d.Clear(channel.FieldCommissionMinValue))
	assert.Nil(t, d.CommissionMinValue)

	err := d.Clear(channel.FieldPrice)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el precio no es un campo opcional")
	assert.True(t, d.Price.Equal(dec("100")))
}
