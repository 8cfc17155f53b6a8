// Package money formatea montos y porcentajes según la configuración regional
// (separadores de miles y decimales) para reportes y salida de consola.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formateador ligado a un idioma y una moneda. Es seguro para uso concurrente.
type Formatter struct {
	printer  *message.Printer
	currency currency.Unit
	symbol   string
	places   int
}

// New construye un formateador. locale es una etiqueta BCP 47 (es-CO, en-US)
// y code un código ISO 4217 (COP, USD).
func New(locale, code string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("money: locale %q: %w", locale, err)
	}
	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		return nil, fmt.Errorf("money: moneda %q: %w", code, err)
	}
	p := message.NewPrinter(tag)
	places, _ := currency.Standard.Rounding(unit)
	return &Formatter{
		printer:  p,
		currency: unit,
		symbol:   p.Sprint(currency.NarrowSymbol(unit)),
		places:   places,
	}, nil
}

// MustNew como New pero entra en pánico; para valores fijos en código.
func MustNew(locale, code string) *Formatter {
	f, err := New(locale, code)
	if err != nil {
		panic(err)
	}
	return f
}

// Currency código ISO de la moneda.
func (f *Formatter) Currency() string { return f.currency.String() }

// Number número con separadores locales y dos decimales fijos.
func (f *Formatter) Number(d decimal.Decimal) string {
	return f.printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// Amount monto con símbolo de moneda y los decimales estándar de la moneda.
func (f *Formatter) Amount(d decimal.Decimal) string {
	v := d.Round(int32(f.places)).InexactFloat64()
	n := f.printer.Sprint(number.Decimal(v, number.Scale(f.places)))
	if strings.HasPrefix(n, "-") {
		return "-" + f.symbol + " " + strings.TrimPrefix(n, "-")
	}
	return f.symbol + " " + n
}

// Percent porcentaje ya expresado en base 100 (12.5 → "12.50 %").
func (f *Formatter) Percent(d decimal.Decimal) string {
	return f.Number(d) + " %"
}
