package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
)

// moneyPlaces decimales de los montos en las respuestas. El motor trabaja sin
// redondear; se redondea sólo en el borde de salida.
const moneyPlaces = 2

func toCostData(in dto.CostDataDTO) channel.CostData {
	d := channel.CostData{
		Price:                in.Price,
		CommissionPercent:    in.CommissionPercent,
		CommissionUpToValue:  in.CommissionUpToValue,
		CommissionAboveValue: in.CommissionAboveValue,
		CommissionMinValue:   in.CommissionMinValue,
		CommissionMaxValue:   in.CommissionMaxValue,
		PackagingCostValue:   in.PackagingCostValue,
		FixedCostPercent:     in.FixedCostPercent,
		MarketingCostPercent: in.MarketingCostPercent,
		FinancialCostPercent: in.FinancialCostPercent,
		ShippingCostValue:    in.ShippingCostValue,
		PrepCenterCostValue:  in.PrepCenterCostValue,
		RebateValue:          in.RebateValue,
		ProductCodes:         in.ProductCodes,
	}
	return d.Clone()
}

func toCostDataDTO(d channel.CostData) dto.CostDataDTO {
	d = d.Clone()
	return dto.CostDataDTO{
		Price:                d.Price,
		CommissionPercent:    d.CommissionPercent,
		CommissionUpToValue:  d.CommissionUpToValue,
		CommissionAboveValue: d.CommissionAboveValue,
		CommissionMinValue:   d.CommissionMinValue,
		CommissionMaxValue:   d.CommissionMaxValue,
		PackagingCostValue:   d.PackagingCostValue,
		FixedCostPercent:     d.FixedCostPercent,
		MarketingCostPercent: d.MarketingCostPercent,
		FinancialCostPercent: d.FinancialCostPercent,
		ShippingCostValue:    d.ShippingCostValue,
		PrepCenterCostValue:  d.PrepCenterCostValue,
		RebateValue:          d.RebateValue,
		ProductCodes:         d.ProductCodes,
	}
}

func toSalesChannelResponse(ch *entity.SalesChannel, meta channel.Metadata) dto.SalesChannelResponse {
	return dto.SalesChannelResponse{
		ID:          ch.ID,
		ProductID:   ch.ProductID,
		Type:        string(ch.Type),
		DisplayName: meta.DisplayName,
		Category:    string(meta.Category),
		IsActive:    ch.IsActive,
		Data:        toCostDataDTO(ch.Data),
		UpdatedAt:   ch.UpdatedAt,
	}
}

func toChannelMetadataResponse(meta channel.Metadata) dto.ChannelMetadataResponse {
	required := make([]string, 0, len(meta.RequiredFields))
	for _, f := range meta.RequiredFields {
		required = append(required, string(f))
	}
	return dto.ChannelMetadataResponse{
		Type:              string(meta.Type),
		DisplayName:       meta.DisplayName,
		Category:          string(meta.Category),
		DefaultCosts:      toCostDataDTO(meta.NewCostData()),
		RequiredFields:    required,
		ProductCodeFields: meta.ProductCodeFields,
	}
}

func round(d decimal.Decimal) decimal.Decimal { return d.Round(moneyPlaces) }

// ToProfitabilityResponse convierte un resultado del motor al DTO de salida.
func ToProfitabilityResponse(r profitability.Result, meta channel.Metadata) dto.ChannelProfitabilityResponse {
	errs := make([]dto.FieldErrorDTO, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, dto.FieldErrorDTO{Field: e.Field, Message: e.Message})
	}
	c := r.Costs
	return dto.ChannelProfitabilityResponse{
		Type:         string(r.Type),
		DisplayName:  meta.DisplayName,
		IsValid:      r.IsValid,
		Errors:       errs,
		GrossRevenue: round(r.GrossRevenue),
		RebateIncome: round(r.RebateIncome),
		NetRevenue:   round(r.NetRevenue),
		Costs: dto.CostBreakdownResponse{
			ProductCost:    round(c.ProductCost),
			TaxCost:        round(c.TaxCost),
			CommissionCost: round(c.CommissionCost),
			PackagingCost:  round(c.PackagingCost),
			FixedCost:      round(c.FixedCost),
			MarketingCost:  round(c.MarketingCost),
			FinancialCost:  round(c.FinancialCost),
			ShippingCost:   round(c.ShippingCost),
			PrepCenterCost: round(c.PrepCenterCost),
			TotalCosts:     round(c.TotalCosts),
		},
		GrossProfit:   round(r.GrossProfit),
		NetProfit:     round(r.NetProfit),
		MarginPercent: round(r.MarginPercent),
		ROIPercent:    round(r.ROIPercent),
	}
}

// ToPortfolioResponse convierte el consolidado del motor al DTO de salida,
// con los canales en orden canónico.
func ToPortfolioResponse(p profitability.Portfolio, registry *channel.Registry) dto.PortfolioResponse {
	ordered := p.Ordered()
	items := make([]dto.ChannelProfitabilityResponse, 0, len(ordered))
	for _, r := range ordered {
		items = append(items, ToProfitabilityResponse(r, registry.Get(r.Type)))
	}
	return dto.PortfolioResponse{
		Channels:       items,
		TotalRevenue:   round(p.TotalRevenue),
		TotalProfit:    round(p.TotalProfit),
		AverageMargin:  round(p.AverageMargin),
		ActiveChannels: p.ActiveChannels,
		ValidChannels:  p.ValidChannels,
		BestChannel:    string(p.BestChannel),
	}
}
