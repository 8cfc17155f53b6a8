package dto

import "github.com/shopspring/decimal"

// ProductBaseDTO datos del producto para una evaluación sin persistencia.
type ProductBaseDTO struct {
	CostItem   decimal.Decimal `json:"cost_item"`
	TaxPercent decimal.Decimal `json:"tax_percent"`
}

// ChannelInputDTO canal sin guardar (tipo + costos).
type ChannelInputDTO struct {
	Type     string      `json:"type"`
	IsActive *bool       `json:"is_active,omitempty"` // por defecto activo
	Data     CostDataDTO `json:"data"`
}

// PreviewRequest entrada de POST /api/profitability/preview.
type PreviewRequest struct {
	Product  ProductBaseDTO    `json:"product"`
	Channels []ChannelInputDTO `json:"channels"`
}

// FieldErrorDTO error de validación de negocio.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CostBreakdownResponse desglose de costos (redondeado a 2 decimales).
type CostBreakdownResponse struct {
	ProductCost    decimal.Decimal `json:"product_cost"`
	TaxCost        decimal.Decimal `json:"tax_cost"`
	CommissionCost decimal.Decimal `json:"commission_cost"`
	PackagingCost  decimal.Decimal `json:"packaging_cost"`
	FixedCost      decimal.Decimal `json:"fixed_cost"`
	MarketingCost  decimal.Decimal `json:"marketing_cost"`
	FinancialCost  decimal.Decimal `json:"financial_cost"`
	ShippingCost   decimal.Decimal `json:"shipping_cost"`
	PrepCenterCost decimal.Decimal `json:"prep_center_cost"`
	TotalCosts     decimal.Decimal `json:"total_costs"`
}

// ChannelProfitabilityResponse rentabilidad de un canal.
// Si IsValid es false los montos vienen en cero y Errors explica por qué.
type ChannelProfitabilityResponse struct {
	Type          string                `json:"type"`
	DisplayName   string                `json:"display_name"`
	IsValid       bool                  `json:"is_valid"`
	Errors        []FieldErrorDTO       `json:"errors"`
	GrossRevenue  decimal.Decimal       `json:"gross_revenue"`
	RebateIncome  decimal.Decimal       `json:"rebate_income"`
	NetRevenue    decimal.Decimal       `json:"net_revenue"`
	Costs         CostBreakdownResponse `json:"costs"`
	GrossProfit   decimal.Decimal       `json:"gross_profit"`
	NetProfit     decimal.Decimal       `json:"net_profit"`
	MarginPercent decimal.Decimal       `json:"margin_percent"`
	ROIPercent    decimal.Decimal       `json:"roi_percent"`
}

// PortfolioResponse consolidado de los canales activos de un producto.
type PortfolioResponse struct {
	ProductID      string                         `json:"product_id,omitempty"`
	Channels       []ChannelProfitabilityResponse `json:"channels"`
	TotalRevenue   decimal.Decimal                `json:"total_revenue"`
	TotalProfit    decimal.Decimal                `json:"total_profit"`
	AverageMargin  decimal.Decimal                `json:"average_margin"`
	ActiveChannels int                            `json:"active_channels"`
	ValidChannels  int                            `json:"valid_channels"`
	BestChannel    string                         `json:"best_channel,omitempty"`
}
