package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/csvsource"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/infrastructure/pdf"
)

type runOptions struct {
	store     string
	supplier  string
	reportPDF string
	asJSON    bool
}

func newRunCmd(e *env) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <csv>",
		Short: "Ingesta una exportación para una tienda existente",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := e.connect(ctx); err != nil {
				return err
			}

			file, err := csvsource.Open(args[0])
			if err != nil {
				return err
			}
			defer file.Close()

			report, err := e.app.IngestUC.Ingest(ctx, file, opts.store, opts.supplier)
			if err != nil {
				return err
			}

			if opts.reportPDF != "" {
				data, err := pdf.NewRunReportRenderer().Render(ctx, report)
				if err != nil {
					return fmt.Errorf("render report: %w", err)
				}
				if err := os.WriteFile(opts.reportPDF, data, 0o644); err != nil {
					return fmt.Errorf("write report: %w", err)
				}
			}

			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			printSummary(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.store, "store", "", "Nombre de la tienda (requerido)")
	cmd.Flags().StringVar(&opts.supplier, "supplier", "", "Proveedor (por defecto SUPPLIER)")
	cmd.Flags().StringVar(&opts.reportPDF, "report-pdf", "", "Escribe el reporte de la corrida en PDF")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Imprime el reporte como JSON")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}

func printSummary(w io.Writer, r *dto.RunReport) {
	if r.NoOp {
		fmt.Fprintf(w, "%s: sin registros, no se modificó nada (%d filas leídas, %d descartadas)\n", r.Store, r.RowsRead, len(r.Skipped))
		return
	}
	fmt.Fprintf(w, "%s [%s] run %s\n", r.Store, r.Supplier, r.RunID)
	fmt.Fprintf(w, "  filas leídas:         %d\n", r.RowsRead)
	fmt.Fprintf(w, "  filas procesadas:     %d\n", r.RowsProcessed)
	fmt.Fprintf(w, "  productos:            %d\n", r.ProductsUpserted)
	fmt.Fprintf(w, "  inventario:           %d\n", r.InventoryUpserted)
	fmt.Fprintf(w, "  inventario podado:    %d\n", r.InventoryPruned)
	fmt.Fprintf(w, "  categorías nuevas:    %d\n", r.CategoriesCreated)
	fmt.Fprintf(w, "  categorías movidas:   %d\n", r.CategoriesReparented)
	fmt.Fprintf(w, "  descartadas:          %d\n", len(r.Skipped))
	if len(r.UnresolvedColumns) > 0 {
		fmt.Fprintf(w, "  columnas sin resolver: %v\n", r.UnresolvedColumns)
	}
	fmt.Fprintf(w, "  duración:             %s\n", r.Duration())
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
