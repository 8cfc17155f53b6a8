package usecase_test

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memProducts struct {
	byID map[string]*entity.Product
}

func newMemProducts() *memProducts { return &memProducts{byID: map[string]*entity.Product{}} }

func (m *memProducts) Create(_ context.Context, p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := m.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) GetByCompanyAndSKU(_ context.Context, companyID, sku string) (*entity.Product, error) {
	for _, p := range m.byID {
		if p.CompanyID == companyID && p.SKU == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memProducts) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	m.byID[p.ID] = &cp
	return nil
}

func (m *memProducts) ListByCompany(_ context.Context, companyID string, limit, offset int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range m.byID {
		if p.CompanyID == companyID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (m *memProducts) Delete(_ context.Context, id string) error {
	delete(m.byID, id)
	return nil
}

type memChannels struct {
	rows      map[string]*entity.SalesChannel
	failBatch bool
}

func newMemChannels() *memChannels { return &memChannels{rows: map[string]*entity.SalesChannel{}} }

func key(productID string, t channel.Type) string { return productID + "/" + string(t) }

func (m *memChannels) CreateBatch(_ context.Context, list []*entity.SalesChannel) error {
	if m.failBatch {
		return errors.New("fallo de escritura")
	}
	for _, ch := range list {
		cp := *ch
		cp.Data = ch.Data.Clone()
		m.rows[key(ch.ProductID, ch.Type)] = &cp
	}
	return nil
}

func (m *memChannels) ListByProduct(_ context.Context, productID string) ([]*entity.SalesChannel, error) {
	var out []*entity.SalesChannel
	for _, ch := range m.rows {
		if ch.ProductID == productID {
			cp := *ch
			cp.Data = ch.Data.Clone()
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *memChannels) GetByProductAndType(_ context.Context, productID string, t channel.Type) (*entity.SalesChannel, error) {
	ch, ok := m.rows[key(productID, t)]
	if !ok {
		return nil, nil
	}
	cp := *ch
	cp.Data = ch.Data.Clone()
	return &cp, nil
}

func (m *memChannels) Update(_ context.Context, ch *entity.SalesChannel) error {
	cp := *ch
	cp.Data = ch.Data.Clone()
	m.rows[key(ch.ProductID, ch.Type)] = &cp
	return nil
}

// memTx emula la transacción: si fn falla se restaura el estado previo.
type memTx struct {
	products *memProducts
	channels *memChannels
}

func (tx *memTx) RunProvision(_ context.Context, fn func(repository.ProductRepository, repository.SalesChannelRepository) error) error {
	savedProducts := make(map[string]*entity.Product, len(tx.products.byID))
	for k, v := range tx.products.byID {
		savedProducts[k] = v
	}
	savedChannels := make(map[string]*entity.SalesChannel, len(tx.channels.rows))
	for k, v := range tx.channels.rows {
		savedChannels[k] = v
	}
	if err := fn(tx.products, tx.channels); err != nil {
		tx.products.byID = savedProducts
		tx.channels.rows = savedChannels
		return err
	}
	return nil
}

type fakeReports struct {
	gotProduct   *entity.Product
	gotPortfolio *dto.PortfolioResponse
}

func (f *fakeReports) GenerateProfitabilityPDF(_ context.Context, p *entity.Product, r *dto.PortfolioResponse) ([]byte, error) {
	f.gotProduct = p
	f.gotPortfolio = r
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	companyA = "company-a"
	companyB = "company-b"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func boolPtr(b bool) *bool { return &b }
