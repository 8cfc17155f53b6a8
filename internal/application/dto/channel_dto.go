package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostDataDTO parámetros de costo de un canal. Los montos aceptan número o
// string en JSON ("12.5" o 12.5); los opcionales de comisión pueden omitirse.
type CostDataDTO struct {
	Price                decimal.Decimal   `json:"price"`
	CommissionPercent    decimal.Decimal   `json:"commission_percent"`
	CommissionUpToValue  *decimal.Decimal  `json:"commission_up_to_value,omitempty"`
	CommissionAboveValue *decimal.Decimal  `json:"commission_above_value,omitempty"`
	CommissionMinValue   *decimal.Decimal  `json:"commission_min_value,omitempty"`
	CommissionMaxValue   *decimal.Decimal  `json:"commission_max_value,omitempty"`
	PackagingCostValue   decimal.Decimal   `json:"packaging_cost_value"`
	FixedCostPercent     decimal.Decimal   `json:"fixed_cost_percent"`
	MarketingCostPercent decimal.Decimal   `json:"marketing_cost_percent"`
	FinancialCostPercent decimal.Decimal   `json:"financial_cost_percent"`
	ShippingCostValue    decimal.Decimal   `json:"shipping_cost_value"`
	PrepCenterCostValue  decimal.Decimal   `json:"prep_center_cost_value"`
	RebateValue          decimal.Decimal   `json:"rebate_value"`
	ProductCodes         map[string]string `json:"product_codes,omitempty"`
}

// UpdateSalesChannelRequest edición parcial de un canal: sólo se aplican los
// campos enviados. ClearFields borra límites opcionales de comisión
// (commission_up_to_value, commission_above_value, commission_min_value, commission_max_value).
type UpdateSalesChannelRequest struct {
	IsActive             *bool             `json:"is_active"`
	Price                *decimal.Decimal  `json:"price"`
	CommissionPercent    *decimal.Decimal  `json:"commission_percent"`
	CommissionUpToValue  *decimal.Decimal  `json:"commission_up_to_value"`
	CommissionAboveValue *decimal.Decimal  `json:"commission_above_value"`
	CommissionMinValue   *decimal.Decimal  `json:"commission_min_value"`
	CommissionMaxValue   *decimal.Decimal  `json:"commission_max_value"`
	PackagingCostValue   *decimal.Decimal  `json:"packaging_cost_value"`
	FixedCostPercent     *decimal.Decimal  `json:"fixed_cost_percent"`
	MarketingCostPercent *decimal.Decimal  `json:"marketing_cost_percent"`
	FinancialCostPercent *decimal.Decimal  `json:"financial_cost_percent"`
	ShippingCostValue    *decimal.Decimal  `json:"shipping_cost_value"`
	PrepCenterCostValue  *decimal.Decimal  `json:"prep_center_cost_value"`
	RebateValue          *decimal.Decimal  `json:"rebate_value"`
	ProductCodes         map[string]string `json:"product_codes"`
	ClearFields          []string          `json:"clear_fields"`
}

// SalesChannelResponse salida de un canal de un producto.
type SalesChannelResponse struct {
	ID          string      `json:"id"`
	ProductID   string      `json:"product_id"`
	Type        string      `json:"type"`
	DisplayName string      `json:"display_name"`
	Category    string      `json:"category"`
	IsActive    bool        `json:"is_active"`
	Data        CostDataDTO `json:"data"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// ChannelMetadataResponse metadatos públicos de un tipo de canal.
type ChannelMetadataResponse struct {
	Type              string      `json:"type"`
	DisplayName       string      `json:"display_name"`
	Category          string      `json:"category"`
	DefaultCosts      CostDataDTO `json:"default_costs"`
	RequiredFields    []string    `json:"required_fields"`
	ProductCodeFields []string    `json:"product_code_fields"`
}

// ChannelGroupResponse canales de una categoría.
type ChannelGroupResponse struct {
	Category string                    `json:"category"`
	Channels []ChannelMetadataResponse `json:"channels"`
}
