// Package cmd comandos de profitcli: catálogo de canales y simulación de
// rentabilidad sin base de datos.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/profitability"
	"github.com/jhoicas/Rentabilidad-api/pkg/money"
)

type options struct {
	locale   string
	currency string
	format   string
}

// NewRootCmd construye el árbol de comandos. Cada llamada devuelve flags
// nuevos, así los tests pueden ejecutarlo varias veces.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "profitcli",
		Short: "Rentabilidad por canal de venta",
		Long: `profitcli evalúa la rentabilidad neta de un producto en cada canal de venta
usando la misma tabla de canales que la API.

Ejemplos:
  profitcli channels
  profitcli evaluate escenario.json
  profitcli evaluate --format json escenario.json`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.locale, "locale", "es-CO", "locale para formatear montos (BCP 47)")
	root.PersistentFlags().StringVar(&opts.currency, "currency", "COP", "moneda ISO 4217")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "table", "formato de salida (table, json)")

	registry := channel.MustLoadDefault()
	root.AddCommand(newChannelsCmd(opts, registry))
	root.AddCommand(newEvaluateCmd(opts, registry))
	return root
}

func (o *options) formatter() (*money.Formatter, error) {
	return money.New(o.locale, o.currency)
}

// previewer caso de uso sin repositorios: sólo Preview y Catalog no tocan la base.
func previewer(registry *channel.Registry) *usecase.ProfitabilityUseCase {
	return usecase.NewProfitabilityUseCase(nil, nil, registry, profitability.NewEngine(registry), nil)
}
