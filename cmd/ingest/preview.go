package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/ingest"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/bootstrap"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/csvsource"
)

func newPreviewCmd(e *env) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "preview <csv>",
		Short: "Normaliza una exportación sin tocar la base de datos",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := csvsource.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			uc := ingest.NewUseCase(nil, bootstrap.LoadOptions(e.cfg.Ingest), nil, e.cfg.Ingest.Supplier)
			out, err := uc.Preview(file)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), out)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LINE\tNAME\tUPC\tQTY\tPRICE\tCATEGORY")
			for _, r := range out.Records {
				category := r.ParentCategory
				if r.Subcategory != "" {
					category += " > " + r.Subcategory
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\t%s\n", r.Line, r.Name, r.UPC, r.QuantityOnHand, r.UnitPrice, category)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d filas leídas, %d registros, %d descartadas\n", out.RowsRead, len(out.Records), len(out.Skipped))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Imprime el resultado como JSON")
	return cmd
}
