package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/Rentabilidad-api/internal/application/usecase"
	"github.com/jhoicas/Rentabilidad-api/internal/domain/channel"
)

func newChannelsCmd(opts *options, registry *channel.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "channels",
		Short: "Lista los tipos de canal con sus costos por defecto",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := usecase.NewSalesChannelUseCase(nil, nil, registry).Catalog()
			out := cmd.OutOrStdout()

			if opts.format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(catalog)
			}

			f, err := opts.formatter()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, g := range catalog {
				fmt.Fprintf(w, "[%s]\n", g.Category)
				for _, m := range g.Channels {
					fmt.Fprintf(w, "  %s\t%s\tcomisión %s\tobligatorios: %s\n",
						m.Type, m.DisplayName,
						f.Percent(m.DefaultCosts.CommissionPercent),
						strings.Join(m.RequiredFields, ", "),
					)
				}
			}
			return w.Flush()
		},
	}
}
