package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Rentabilidad-api/internal/application/dto"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
	"github.com/jhoicas/Rentabilidad-api/pkg/money"
)

func newEvaluateCmd(opts *options, registry *channel.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "evaluate <escenario.json>",
		Short: "Evalúa un escenario (producto + canales) sin guardarlo",
		Long: `Lee un escenario con el mismo formato que POST /api/profitability/preview.
Con "-" como archivo lee de la entrada estándar.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readScenario(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			result, err := previewer(registry).Preview(in)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			f, err := opts.formatter()
			if err != nil {
				return err
			}
			return printPortfolio(out, f, result)
		},
	}
}

func readScenario(stdin io.Reader, path string) (dto.PreviewRequest, error) {
	var (
		in  dto.PreviewRequest
		src = stdin
	)
	if path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return in, fmt.Errorf("abrir escenario: %w", err)
		}
		defer file.Close()
		src = file
	}
	if err := json.NewDecoder(src).Decode(&in); err != nil {
		return in, fmt.Errorf("decodificar escenario: %w", err)
	}
	return in, nil
}

func printPortfolio(out io.Writer, f *money.Formatter, p *dto.PortfolioResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "Canal\tIngreso neto\tCostos\tUtilidad\tMargen\tROI\t")
	for _, ch := range p.Channels {
		if !ch.IsValid {
			msgs := make([]string, 0, len(ch.Errors))
			for _, e := range ch.Errors {
				msgs = append(msgs, e.Field+": "+e.Message)
			}
			fmt.Fprintf(w, "%s\tno evaluable (%s)\t\t\t\t\t\n", ch.DisplayName, strings.Join(msgs, "; "))
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			ch.DisplayName,
			f.Amount(ch.NetRevenue),
			f.Amount(ch.Costs.TotalCosts),
			f.Amount(ch.NetProfit),
			f.Percent(ch.MarginPercent),
			f.Percent(ch.ROIPercent),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nIngreso total:   %s\n", f.Amount(p.TotalRevenue))
	fmt.Fprintf(out, "Utilidad total:  %s\n", f.Amount(p.TotalProfit))
	fmt.Fprintf(out, "Margen promedio: %s (%d de %d canales)\n", f.Percent(p.AverageMargin), p.ValidChannels, p.ActiveChannels)
	if p.BestChannel != "" {
		fmt.Fprintf(out, "Mejor canal:     %s\n", p.BestChannel)
	}
	return nil
}
