// Package profitability implementa el motor de rentabilidad por canal de venta
// (servicio de dominio puro: sin I/O ni estado compartido).
//
//	canal + producto → Validate → Commission + AggregateCosts → Result
//	canales activos  → EvaluateAll → Portfolio
package profitability

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

var hundred = decimal.NewFromInt(100)

// pct devuelve base × percent / 100.
func pct(base, percent decimal.Decimal) decimal.Decimal {
	return base.Mul(percent).Div(hundred)
}

// Commission calcula la comisión del canal sobre el precio.
//
//	escalonada (UpTo y Above informados):
//	  precio ≤ UpTo → precio × %/100
//	  precio > UpTo → UpTo × %/100 + (precio − UpTo) × Above/100
//	plana: precio × %/100
//
// Luego aplica el piso MinValue y el techo MaxValue. Reglas mal configuradas
// (mínimo > máximo) son un defecto del llamador: deben filtrarse con rules.Check.
func Commission(price decimal.Decimal, rules channel.CommissionRules) decimal.Decimal {
	if err := rules.Check(); err != nil {
		panic(err)
	}

	var c decimal.Decimal
	if rules.Tiered() {
		upTo := *rules.UpToValue
		if price.LessThanOrEqual(upTo) {
			c = pct(price, rules.Percent)
		} else {
			c = pct(upTo, rules.Percent).Add(pct(price.Sub(upTo), *rules.AboveValue))
		}
	} else {
		c = pct(price, rules.Percent)
	}

	if rules.MinValue != nil && c.LessThan(*rules.MinValue) {
		c = *rules.MinValue
	}
	if rules.MaxValue != nil && c.GreaterThan(*rules.MaxValue) {
		c = *rules.MaxValue
	}
	return c
}
