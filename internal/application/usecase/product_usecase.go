package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

var maxTaxPercent = decimal.NewFromInt(100)

// ProductUseCase casos de uso CRUD para productos. Al crear un producto se
// aprovisionan sus canales (uno por tipo, inactivos, con los costos por defecto).
type ProductUseCase struct {
	repo     repository.ProductRepository
	tx       ProvisionTxRunner
	registry *channel.Registry
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, tx ProvisionTxRunner, registry *channel.Registry) *ProductUseCase {
	return &ProductUseCase{repo: repo, tx: tx, registry: registry}
}

// Create crea el producto y sus canales en una sola transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	in.SKU = strings.TrimSpace(in.SKU)
	in.Name = strings.TrimSpace(in.Name)
	if in.SKU == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: sku y nombre son obligatorios", domain.ErrInvalidInput)
	}
	if err := checkProductBase(in.CostItem, in.TaxPercent); err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetByCompanyAndSKU(ctx, companyID, in.SKU)
	if err != nil {
		return nil, fmt.Errorf("buscar sku: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		SKU:        in.SKU,
		Name:       in.Name,
		CostItem:   in.CostItem,
		TaxPercent: in.TaxPercent,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	channels := uc.provisionChannels(product.ID, now)

	err = uc.tx.RunProvision(ctx, func(productRepo repository.ProductRepository, channelRepo repository.SalesChannelRepository) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("crear producto: %w", err)
		}
		if err := channelRepo.CreateBatch(ctx, channels); err != nil {
			return fmt.Errorf("aprovisionar canales: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

func (uc *ProductUseCase) provisionChannels(productID string, now time.Time) []*entity.SalesChannel {
	types := channel.Types()
	out := make([]*entity.SalesChannel, 0, len(types))
	for _, t := range types {
		out = append(out, &entity.SalesChannel{
			ID:        uuid.New().String(),
			ProductID: productID,
			Type:      t,
			IsActive:  false,
			Data:      uc.registry.Get(t).NewCostData(),
			UpdatedAt: now,
		})
	}
	return out
}

// GetByID obtiene un producto de la empresa.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID, id string) (*dto.ProductResponse, error) {
	product, err := loadOwnedProduct(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Update actualiza nombre, costo o impuesto. El SKU no se modifica.
func (uc *ProductUseCase) Update(ctx context.Context, companyID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := loadOwnedProduct(ctx, uc.repo, companyID, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: el nombre no puede estar vacío", domain.ErrInvalidInput)
		}
		product.Name = name
	}
	if in.CostItem != nil {
		product.CostItem = *in.CostItem
	}
	if in.TaxPercent != nil {
		product.TaxPercent = *in.TaxPercent
	}
	if err := checkProductBase(product.CostItem, product.TaxPercent); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("actualizar producto: %w", err)
	}
	return toProductResponse(product), nil
}

// List lista productos por empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID string, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.repo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina el producto; sus canales se eliminan en cascada.
func (uc *ProductUseCase) Delete(ctx context.Context, companyID, id string) error {
	if _, err := loadOwnedProduct(ctx, uc.repo, companyID, id); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}

// checkProductBase rechaza datos del producto imposibles de guardar. Un costo
// en cero se admite como borrador; el motor lo reporta al evaluar.
func checkProductBase(costItem, taxPercent decimal.Decimal) error {
	if costItem.IsNegative() {
		return fmt.Errorf("%w: el costo no puede ser negativo", domain.ErrInvalidInput)
	}
	if taxPercent.IsNegative() || taxPercent.GreaterThan(maxTaxPercent) {
		return fmt.Errorf("%w: el impuesto debe estar entre 0 y 100", domain.ErrInvalidInput)
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:         p.ID,
		CompanyID:  p.CompanyID,
		SKU:        p.SKU,
		Name:       p.Name,
		CostItem:   p.CostItem,
		TaxPercent: p.TaxPercent,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}
