package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
)

// activate activa un canal del producto con el precio indicado.
func (f *fixture) activate(t *testing.T, productID, typ, price string) {
	t.Helper()
	_, err := f.channelUC.Update(context.Background(), companyA, productID, typ, dto.UpdateSalesChannelRequest{
		IsActive: boolPtr(true),
		Price:    decPtr(price),
	})
	require.NoError(t, err)
}

func TestEvaluateProduct_Consolidado(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")
	// tienda física: 100 − 50 − 10 (fijo 10%) = 40 → margen 40%
	f.activate(t, p.ID, "physical_store", "100")
	// Éxito: 200 − 50 − 26 (comisión 13%) = 124 → margen 62%
	f.activate(t, p.ID, "exito", "200")

	got, err := f.profitUC.EvaluateProduct(context.Background(), companyA, p.ID)
	require.NoError(t, err)

	assert.Equal(t, p.ID, got.ProductID)
	assert.Equal(t, 2, got.ActiveChannels)
	assert.Equal(t, 2, got.ValidChannels)
	assert.True(t, got.TotalRevenue.Equal(dec("300")))
	assert.True(t, got.TotalProfit.Equal(dec("164")))
	assert.True(t, got.AverageMargin.Equal(dec("51")))
	assert.Equal(t, "exito", got.BestChannel)

	require.Len(t, got.Channels, 2)
	assert.Equal(t, "exito", got.Channels[0].Type, "orden canónico")
	assert.Equal(t, "Éxito Marketplace", got.Channels[0].DisplayName)
	assert.True(t, got.Channels[1].Costs.FixedCost.Equal(dec("10")))
}

func TestEvaluateChannel_InactivoTambienSeEvalua(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")

	got, err := f.profitUC.EvaluateChannel(context.Background(), companyA, p.ID, "linio")
	require.NoError(t, err)

	assert.False(t, got.IsValid, "un canal recién aprovisionado no tiene precio")
	require.NotEmpty(t, got.Errors)
	assert.Equal(t, "price", got.Errors[0].Field)
	assert.True(t, got.NetProfit.IsZero())
}

func TestEvaluateChannel_TipoDesconocido(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")

	_, err := f.profitUC.EvaluateChannel(context.Background(), companyA, p.ID, "wish")
	assert.ErrorIs(t, err, domain.ErrUnknownChannel)
}

func TestPreview_RedondeaEnLaSalida(t *testing.T) {
	f := newFixture()

	got, err := f.profitUC.Preview(dto.PreviewRequest{
		Product: dto.ProductBaseDTO{CostItem: dec("1"), TaxPercent: dec("0")},
		Channels: []dto.ChannelInputDTO{
			{Type: "physical_store", Data: dto.CostDataDTO{Price: dec("3")}},
		},
	})
	require.NoError(t, err)

	require.Len(t, got.Channels, 1)
	r := got.Channels[0]
	assert.True(t, r.IsValid)
	assert.Equal(t, "66.67", r.MarginPercent.String(), "2 / 3 × 100 redondeado a 2 decimales")
	assert.True(t, r.ROIPercent.Equal(dec("200")))
	assert.Equal(t, "physical_store", got.BestChannel)
	assert.Empty(t, f.products.byID, "la vista previa no persiste nada")
}

func TestPreview_Rechazos(t *testing.T) {
	base := dto.ProductBaseDTO{CostItem: dec("1")}
	tests := []struct {
		name    string
		in      dto.PreviewRequest
		wantErr error
	}{
		{"sin canales", dto.PreviewRequest{Product: base}, domain.ErrInvalidInput},
		{
			"canal repetido",
			dto.PreviewRequest{Product: base, Channels: []dto.ChannelInputDTO{{Type: "linio"}, {Type: "LINIO"}}},
			domain.ErrInvalidInput,
		},
		{
			"tipo desconocido",
			dto.PreviewRequest{Product: base, Channels: []dto.ChannelInputDTO{{Type: "wish"}}},
			domain.ErrUnknownChannel,
		},
		{
			"reglas de comisión contradictorias",
			dto.PreviewRequest{Product: base, Channels: []dto.ChannelInputDTO{{
				Type: "shopee",
				Data: dto.CostDataDTO{Price: dec("10"), CommissionMinValue: decPtr("9"), CommissionMaxValue: decPtr("1")},
			}}},
			domain.ErrInvalidCommissionRules,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newFixture().profitUC.Preview(tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestPreview_InactivoNoSeEvalua(t *testing.T) {
	got, err := newFixture().profitUC.Preview(dto.PreviewRequest{
		Product: dto.ProductBaseDTO{CostItem: dec("1")},
		Channels: []dto.ChannelInputDTO{
			{Type: "own_store", IsActive: boolPtr(false), Data: dto.CostDataDTO{Price: dec("10")}},
			{Type: "physical_store", Data: dto.CostDataDTO{Price: dec("10")}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, got.ActiveChannels)
	assert.Equal(t, "physical_store", got.Channels[0].Type)
}

func TestReport_PasaElConsolidadoAlGenerador(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")
	f.activate(t, p.ID, "physical_store", "100")

	pdf, err := f.profitUC.Report(context.Background(), companyA, p.ID)
	require.NoError(t, err)

	assert.Equal(t, "%PDF-fake", string(pdf))
	require.NotNil(t, f.reports.gotProduct)
	assert.Equal(t, "SKU-1", f.reports.gotProduct.SKU)
	assert.Equal(t, 1, f.reports.gotPortfolio.ActiveChannels)
}
