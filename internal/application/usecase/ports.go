package usecase

import (
	"context"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// ProvisionTxRunner ejecuta fn dentro de una transacción con repos atados a esa tx.
// Garantiza que un producto y sus canales se creen juntos o no se creen.
type ProvisionTxRunner interface {
	RunProvision(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		channelRepo repository.SalesChannelRepository,
	) error) error
}

// ReportGenerator genera la representación PDF del consolidado de rentabilidad.
type ReportGenerator interface {
	GenerateProfitabilityPDF(ctx context.Context, product *entity.Product, portfolio *dto.PortfolioResponse) ([]byte, error)
}
