package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/application/dto"
)

func newStoresCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stores",
		Short: "Lista las tiendas registradas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.connect(cmd.Context()); err != nil {
				return err
			}
			out, err := e.app.StoreUC.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, s := range out.Items {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", s.ID, s.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Registra una tienda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.connect(cmd.Context()); err != nil {
				return err
			}
			out, err := e.app.StoreUC.Create(cmd.Context(), dto.CreateStoreRequest{Name: args[0]})
			if err != nil {
				return fmt.Errorf("crear tienda %q: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", out.ID, out.Name)
			return nil
		},
	})
	return cmd
}
