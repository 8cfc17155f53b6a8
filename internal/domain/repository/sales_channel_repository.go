package repository

import (
	"context"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// SalesChannelRepository puerto de persistencia de los canales de un producto.
// Los canales se eliminan en cascada con el producto.
type SalesChannelRepository interface {
	CreateBatch(ctx context.Context, channels []*entity.SalesChannel) error
	ListByProduct(ctx context.Context, productID string) ([]*entity.SalesChannel, error)
	// GetByProductAndType devuelve (nil, nil) si no existe.
	GetByProductAndType(ctx context.Context, productID string, t channel.Type) (*entity.SalesChannel, error)
	Update(ctx context.Context, ch *entity.SalesChannel) error
}
