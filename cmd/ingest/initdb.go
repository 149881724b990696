package main

import (
	"github.com/spf13/cobra"
)

func newInitDBCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Crea las tablas si no existen",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.connect(cmd.Context()); err != nil {
				return err
			}
			if err := e.app.EnsureSchema(cmd.Context()); err != nil {
				return err
			}
			e.log.Info().Str("driver", e.cfg.DB.Driver).Msg("esquema listo")
			return nil
		},
	}
}
