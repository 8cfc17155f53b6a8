package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Rentabilidad-api/internal/domain"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

var _ repository.SalesChannelRepository = (*SalesChannelRepo)(nil)

const salesChannelColumns = `id, product_id, type, is_active, data, updated_at`

// SalesChannelRepo canales de un producto. Los parámetros de costo se guardan
// como JSONB en la columna data.
type SalesChannelRepo struct {
	q Querier
}

// NewSalesChannelRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSalesChannelRepository(q Querier) *SalesChannelRepo {
	return &SalesChannelRepo{q: q}
}

// CreateBatch inserta todos los canales en un único viaje a la base.
func (r *SalesChannelRepo) CreateBatch(ctx context.Context, channels []*entity.SalesChannel) error {
	if len(channels) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, ch := range channels {
		batch.Queue(`
			INSERT INTO sales_channels (`+salesChannelColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			ch.ID, ch.ProductID, string(ch.Type), ch.IsActive, ch.Data, ch.UpdatedAt,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for _, ch := range channels {
		if _, err := br.Exec(); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("canal %s: %w", ch.Type, domain.ErrDuplicate)
			}
			if isForeignKeyViolation(err) {
				return fmt.Errorf("canal %s: %w", ch.Type, domain.ErrNotFound)
			}
			return fmt.Errorf("insert sales channel %s: %w", ch.Type, err)
		}
	}
	return nil
}

// ListByProduct devuelve los canales del producto (sin orden garantizado).
func (r *SalesChannelRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.SalesChannel, error) {
	rows, err := r.q.Query(ctx,
		`SELECT `+salesChannelColumns+` FROM sales_channels WHERE product_id = $1`,
		productID,
	)
	if err != nil {
		return nil, fmt.Errorf("list sales channels: %w", err)
	}
	defer rows.Close()

	var list []*entity.SalesChannel
	for rows.Next() {
		ch, err := scanSalesChannel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sales channel: %w", err)
		}
		list = append(list, ch)
	}
	return list, rows.Err()
}

// GetByProductAndType devuelve (nil, nil) si el producto no tiene ese canal.
func (r *SalesChannelRepo) GetByProductAndType(ctx context.Context, productID string, t channel.Type) (*entity.SalesChannel, error) {
	row := r.q.QueryRow(ctx,
		`SELECT `+salesChannelColumns+` FROM sales_channels WHERE product_id = $1 AND type = $2`,
		productID, string(t),
	)
	ch, err := scanSalesChannel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sales channel: %w", err)
	}
	return ch, nil
}

// Update guarda is_active y data del canal.
func (r *SalesChannelRepo) Update(ctx context.Context, ch *entity.SalesChannel) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE sales_channels SET is_active = $2, data = $3, updated_at = $4
		WHERE id = $1`,
		ch.ID, ch.IsActive, ch.Data, ch.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sales channel: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanSalesChannel(row pgx.Row) (*entity.SalesChannel, error) {
	var (
		ch  entity.SalesChannel
		typ string
	)
	if err := row.Scan(&ch.ID, &ch.ProductID, &typ, &ch.IsActive, &ch.Data, &ch.UpdatedAt); err != nil {
		return nil, err
	}
	ch.Type = channel.Type(typ)
	return &ch, nil
}
