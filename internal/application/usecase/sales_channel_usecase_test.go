package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

func TestCatalog_AgrupaPorCategoria(t *testing.T) {
	f := newFixture()

	groups := f.channelUC.Catalog()

	require.Len(t, groups, 3)
	assert.Equal(t, "marketplace", groups[0].Category)
	assert.Len(t, groups[0].Channels, 10)
	assert.Equal(t, "social", groups[1].Category)
	assert.Equal(t, "own", groups[2].Category)
	assert.Equal(t, "Tienda física", groups[2].Channels[1].DisplayName)
	assert.Equal(t, []string{"price"}, groups[2].Channels[1].RequiredFields)
}

func TestChannelUpdate_PatchParcial(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")
	ctx := context.Background()

	got, err := f.channelUC.Update(ctx, companyA, p.ID, "Amazon_FBA", dto.UpdateSalesChannelRequest{
		IsActive:     boolPtr(true),
		Price:        decPtr("120000"),
		ProductCodes: map[string]string{"asin": "B00TEST"},
	})
	require.NoError(t, err)

	assert.True(t, got.IsActive)
	assert.True(t, got.Data.Price.Equal(dec("120000")))
	assert.True(t, got.Data.CommissionPercent.Equal(dec("15")), "los campos omitidos conservan su valor")
	require.NotNil(t, got.Data.CommissionMinValue)
	assert.Equal(t, "B00TEST", got.Data.ProductCodes["asin"])
	assert.Equal(t, "", got.Data.ProductCodes["fnsku"])

	stored, err := f.channels.GetByProductAndType(ctx, p.ID, channel.AmazonFBA)
	require.NoError(t, err)
	assert.True(t, stored.IsActive, "el cambio queda persistido")
}

func TestChannelUpdate_ClearFields(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")

	got, err := f.channelUC.Update(context.Background(), companyA, p.ID, "mercadolibre_classic", dto.UpdateSalesChannelRequest{
		ClearFields: []string{"commission_up_to_value", "commission_above_value"},
	})
	require.NoError(t, err)
	assert.Nil(t, got.Data.CommissionUpToValue)
	assert.Nil(t, got.Data.CommissionAboveValue)

	_, err = f.channelUC.Update(context.Background(), companyA, p.ID, "mercadolibre_classic", dto.UpdateSalesChannelRequest{
		ClearFields: []string{"price"},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChannelUpdate_Rechazos(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		in      dto.UpdateSalesChannelRequest
		wantErr error
	}{
		{
			name:    "tipo desconocido",
			typ:     "wish",
			wantErr: domain.ErrUnknownChannel,
		},
		{
			name:    "código de producto ajeno al canal",
			typ:     "linio",
			in:      dto.UpdateSalesChannelRequest{ProductCodes: map[string]string{"asin": "X"}},
			wantErr: domain.ErrInvalidInput,
		},
		{
			name:    "mínimo mayor que máximo",
			typ:     "amazon_fba",
			in:      dto.UpdateSalesChannelRequest{CommissionMaxValue: decPtr("100")},
			wantErr: domain.ErrInvalidCommissionRules,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			p := f.createProduct(t, "SKU-1", "50")

			_, err := f.channelUC.Update(context.Background(), companyA, p.ID, tc.typ, tc.in)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestChannelUpdate_BorradorFueraDeRangoSeGuarda(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")

	got, err := f.channelUC.Update(context.Background(), companyA, p.ID, "rappi", dto.UpdateSalesChannelRequest{
		CommissionPercent: decPtr("80"),
	})

	require.NoError(t, err, "los valores fuera de rango se reportan al evaluar, no al guardar")
	assert.True(t, got.Data.CommissionPercent.Equal(dec("80")))
}

func TestChannelList_OtraEmpresa(t *testing.T) {
	f := newFixture()
	p := f.createProduct(t, "SKU-1", "50")

	_, err := f.channelUC.List(context.Background(), companyB, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
