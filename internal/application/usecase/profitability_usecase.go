package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// ProfitabilityUseCase evalúa la rentabilidad de productos guardados y de
// escenarios sin persistir.
type ProfitabilityUseCase struct {
	products repository.ProductRepository
	channels repository.SalesChannelRepository
	registry *channel.Registry
	engine   *profitability.Engine
	reports  ReportGenerator
}

// NewProfitabilityUseCase construye el caso de uso. reports puede ser nil si
// no se exponen reportes PDF.
func NewProfitabilityUseCase(
	products repository.ProductRepository,
	channels repository.SalesChannelRepository,
	registry *channel.Registry,
	engine *profitability.Engine,
	reports ReportGenerator,
) *ProfitabilityUseCase {
	return &ProfitabilityUseCase{
		products: products,
		channels: channels,
		registry: registry,
		engine:   engine,
		reports:  reports,
	}
}

// EvaluateChannel evalúa un canal del producto, esté activo o no.
func (uc *ProfitabilityUseCase) EvaluateChannel(ctx context.Context, companyID, productID, rawType string) (*dto.ChannelProfitabilityResponse, error) {
	t, err := channel.ParseType(rawType)
	if err != nil {
		return nil, err
	}
	product, err := loadOwnedProduct(ctx, uc.products, companyID, productID)
	if err != nil {
		return nil, err
	}
	ch, err := uc.channels.GetByProductAndType(ctx, productID, t)
	if err != nil {
		return nil, fmt.Errorf("obtener canal: %w", err)
	}
	if ch == nil {
		return nil, domain.ErrNotFound
	}
	if err := ch.Data.CommissionRules().Check(); err != nil {
		return nil, err
	}
	resp := ToProfitabilityResponse(uc.engine.Evaluate(*ch, product.Base()), uc.registry.Get(t))
	return &resp, nil
}

// EvaluateProduct consolida los canales activos del producto.
func (uc *ProfitabilityUseCase) EvaluateProduct(ctx context.Context, companyID, productID string) (*dto.PortfolioResponse, error) {
	product, portfolio, err := uc.evaluateProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	resp := ToPortfolioResponse(portfolio, uc.registry)
	resp.ProductID = product.ID
	return &resp, nil
}

func (uc *ProfitabilityUseCase) evaluateProduct(ctx context.Context, companyID, productID string) (*entity.Product, profitability.Portfolio, error) {
	product, err := loadOwnedProduct(ctx, uc.products, companyID, productID)
	if err != nil {
		return nil, profitability.Portfolio{}, err
	}
	list, err := uc.channels.ListByProduct(ctx, productID)
	if err != nil {
		return nil, profitability.Portfolio{}, fmt.Errorf("listar canales: %w", err)
	}
	channels := make([]entity.SalesChannel, 0, len(list))
	for _, ch := range list {
		if !ch.Type.Valid() {
			continue
		}
		if ch.IsActive {
			if err := ch.Data.CommissionRules().Check(); err != nil {
				return nil, profitability.Portfolio{}, fmt.Errorf("canal %s: %w", ch.Type, err)
			}
		}
		channels = append(channels, *ch)
	}
	return product, uc.engine.EvaluateAll(channels, product.Base()), nil
}

// Preview evalúa un escenario sin tocar la base de datos. Cada tipo puede
// aparecer una sola vez; los canales sin is_active se consideran activos.
func (uc *ProfitabilityUseCase) Preview(in dto.PreviewRequest) (*dto.PortfolioResponse, error) {
	if len(in.Channels) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un canal", domain.ErrInvalidInput)
	}
	seen := make(map[channel.Type]bool, len(in.Channels))
	channels := make([]entity.SalesChannel, 0, len(in.Channels))
	for _, c := range in.Channels {
		t, err := channel.ParseType(c.Type)
		if err != nil {
			return nil, err
		}
		if seen[t] {
			return nil, fmt.Errorf("%w: canal %q repetido", domain.ErrInvalidInput, t)
		}
		seen[t] = true

		data := toCostData(c.Data)
		if err := data.CommissionRules().Check(); err != nil {
			return nil, fmt.Errorf("canal %s: %w", t, err)
		}
		active := true
		if c.IsActive != nil {
			active = *c.IsActive
		}
		channels = append(channels, entity.SalesChannel{Type: t, IsActive: active, Data: data})
	}

	base := entity.ProductBase{CostItem: in.Product.CostItem, TaxPercent: in.Product.TaxPercent}
	resp := ToPortfolioResponse(uc.engine.EvaluateAll(channels, base), uc.registry)
	return &resp, nil
}

// Report genera el PDF del consolidado del producto.
func (uc *ProfitabilityUseCase) Report(ctx context.Context, companyID, productID string) ([]byte, error) {
	if uc.reports == nil {
		return nil, fmt.Errorf("%w: reportes no configurados", domain.ErrInvalidInput)
	}
	product, portfolio, err := uc.evaluateProduct(ctx, companyID, productID)
	if err != nil {
		return nil, err
	}
	resp := ToPortfolioResponse(portfolio, uc.registry)
	resp.ProductID = product.ID
	pdf, err := uc.reports.GenerateProfitabilityPDF(ctx, product, &resp)
	if err != nil {
		return nil, fmt.Errorf("generar reporte: %w", err)
	}
	return pdf, nil
}
