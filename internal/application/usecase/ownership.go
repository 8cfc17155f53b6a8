package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// loadOwnedProduct obtiene el producto y verifica que pertenezca a la empresa.
// Un producto de otra empresa se informa como inexistente.
func loadOwnedProduct(ctx context.Context, repo repository.ProductRepository, companyID, productID string) (*entity.Product, error) {
	product, err := repo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("obtener producto: %w", err)
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return product, nil
}
