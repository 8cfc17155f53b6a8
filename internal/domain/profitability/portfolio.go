package profitability

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/entity"
)

// Portfolio consolidado de los canales activos de un producto.
type Portfolio struct {
	Results        map[channel.Type]Result
	TotalRevenue   decimal.Decimal // Σ ingreso neto
	TotalProfit    decimal.Decimal // Σ utilidad neta
	AverageMargin  decimal.Decimal // promedio del margen de los canales válidos
	ActiveChannels int
	ValidChannels  int
	BestChannel    channel.Type // mayor utilidad neta entre los válidos; vacío si no hay
}

// EvaluateAll evalúa los canales activos. Los inválidos quedan en Results
// (con sus errores) pero no entran al promedio de margen: contarlos como cero
// sesgaría la métrica. Si un tipo aparece más de una vez cuenta solo su
// primera aparición activa; las demás se ignoran.
func (e *Engine) EvaluateAll(channels []entity.SalesChannel, base entity.ProductBase) Portfolio {
	p := Portfolio{Results: make(map[channel.Type]Result, len(channels))}

	marginSum := decimal.Zero
	var best *Result
	for _, ch := range channels {
		if !ch.IsActive {
			continue
		}
		if _, dup := p.Results[ch.Type]; dup {
			continue
		}
		r := e.Evaluate(ch, base)
		p.Results[ch.Type] = r
		p.ActiveChannels++
		p.TotalRevenue = p.TotalRevenue.Add(r.NetRevenue)
		p.TotalProfit = p.TotalProfit.Add(r.NetProfit)
		if !r.IsValid {
			continue
		}
		p.ValidChannels++
		marginSum = marginSum.Add(r.MarginPercent)
		if best == nil || r.NetProfit.GreaterThan(best.NetProfit) ||
			(r.NetProfit.Equal(best.NetProfit) && r.Type.Less(best.Type)) {
			rc := r
			best = &rc
		}
	}

	if p.ValidChannels > 0 {
		p.AverageMargin = marginSum.Div(decimal.NewFromInt(int64(p.ValidChannels)))
	}
	if best != nil {
		p.BestChannel = best.Type
	}
	return p
}

// Ordered devuelve los resultados en el orden canónico de los canales.
func (p Portfolio) Ordered() []Result {
	out := make([]Result, 0, len(p.Results))
	for _, r := range p.Results {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type.Less(out[j].Type) })
	return out
}
