package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// SalesChannelUseCase consulta y edición de los canales de un producto.
type SalesChannelUseCase struct {
	products repository.ProductRepository
	channels repository.SalesChannelRepository
	registry *channel.Registry
}

// NewSalesChannelUseCase construye el caso de uso.
func NewSalesChannelUseCase(products repository.ProductRepository, channels repository.SalesChannelRepository, registry *channel.Registry) *SalesChannelUseCase {
	return &SalesChannelUseCase{products: products, channels: channels, registry: registry}
}

// Catalog devuelve los metadatos de todos los tipos agrupados por categoría.
func (uc *SalesChannelUseCase) Catalog() []dto.ChannelGroupResponse {
	groups := uc.registry.All()
	out := make([]dto.ChannelGroupResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]dto.ChannelMetadataResponse, 0, len(g.Types))
		for _, t := range g.Types {
			items = append(items, toChannelMetadataResponse(uc.registry.Get(t)))
		}
		out = append(out, dto.ChannelGroupResponse{Category: string(g.Category), Channels: items})
	}
	return out
}

// List devuelve los canales del producto en orden canónico.
func (uc *SalesChannelUseCase) List(ctx context.Context, companyID, productID string) ([]dto.SalesChannelResponse, error) {
	if _, err := loadOwnedProduct(ctx, uc.products, companyID, productID); err != nil {
		return nil, err
	}
	list, err := uc.channels.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("listar canales: %w", err)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Type.Less(list[j].Type) })

	out := make([]dto.SalesChannelResponse, 0, len(list))
	for _, ch := range list {
		if !ch.Type.Valid() {
			// fila con un tipo retirado del catálogo
			continue
		}
		out = append(out, toSalesChannelResponse(ch, uc.registry.Get(ch.Type)))
	}
	return out, nil
}

// Update aplica una edición parcial al canal. Se admiten valores fuera de rango
// (borradores): el motor los reporta al evaluar. Sólo se rechazan reglas de
// comisión contradictorias, campos a borrar que no son opcionales y códigos de
// producto que el canal no admite.
func (uc *SalesChannelUseCase) Update(ctx context.Context, companyID, productID, rawType string, in dto.UpdateSalesChannelRequest) (*dto.SalesChannelResponse, error) {
	t, err := channel.ParseType(rawType)
	if err != nil {
		return nil, err
	}
	if _, err := loadOwnedProduct(ctx, uc.products, companyID, productID); err != nil {
		return nil, err
	}
	ch, err := uc.channels.GetByProductAndType(ctx, productID, t)
	if err != nil {
		return nil, fmt.Errorf("obtener canal: %w", err)
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	meta := uc.registry.Get(t)

	data := ch.Data.Clone()
	if err := applyCostPatch(&data, in, meta); err != nil {
		return nil, err
	}
	if err := data.CommissionRules().Check(); err != nil {
		return nil, err
	}

	if in.IsActive != nil {
		ch.IsActive = *in.IsActive
	}
	ch.Data = data
	ch.UpdatedAt = time.Now()
	if err := uc.channels.Update(ctx, ch); err != nil {
		return nil, fmt.Errorf("actualizar canal: %w", err)
	}
	resp := toSalesChannelResponse(ch, meta)
	return &resp, nil
}

func applyCostPatch(data *channel.CostData, in dto.UpdateSalesChannelRequest, meta channel.Metadata) error {
	patch := []struct {
		field channel.CostField
		value *decimal.Decimal
	}{
		{channel.FieldPrice, in.Price},
		{channel.FieldCommissionPercent, in.CommissionPercent},
		{channel.FieldCommissionUpToValue, in.CommissionUpToValue},
		{channel.FieldCommissionAboveValue, in.CommissionAboveValue},
		{channel.FieldCommissionMinValue, in.CommissionMinValue},
		{channel.FieldCommissionMaxValue, in.CommissionMaxValue},
		{channel.FieldPackagingCostValue, in.PackagingCostValue},
		{channel.FieldFixedCostPercent, in.FixedCostPercent},
		{channel.FieldMarketingCostPercent, in.MarketingCostPercent},
		{channel.FieldFinancialCostPercent, in.FinancialCostPercent},
		{channel.FieldShippingCostValue, in.ShippingCostValue},
		{channel.FieldPrepCenterCostValue, in.PrepCenterCostValue},
		{channel.FieldRebateValue, in.RebateValue},
	}
	for _, p := range patch {
		if p.value == nil {
			continue
		}
		if err := data.Set(p.field, *p.value); err != nil {
			return err
		}
	}

	for _, name := range in.ClearFields {
		if err := data.Clear(channel.CostField(name)); err != nil {
			return err
		}
	}

	for code, value := range in.ProductCodes {
		if !meta.HasProductCodeField(code) {
			return fmt.Errorf("%w: código %q no aplica a %s", domain.ErrInvalidInput, code, meta.DisplayName)
		}
		if data.ProductCodes == nil {
			data.ProductCodes = make(map[string]string, len(meta.ProductCodeFields))
		}
		data.ProductCodes[code] = value
	}
	return nil
}
