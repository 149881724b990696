// Command ingest concilia exportaciones CSV de los POS contra el catálogo compartido.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sandroescobar/MiamiSmokeShopWebPage/internal/bootstrap"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/pkg/config"
	"github.com/sandroescobar/MiamiSmokeShopWebPage/pkg/logger"
)

// env estado compartido por los subcomandos, armado en PersistentPreRunE.
type env struct {
	cfg *config.Config
	log *logger.Logger
	app *bootstrap.App
}

// connect abre la base solo para los comandos que la usan.
func (e *env) connect(ctx context.Context) error {
	if e.app != nil {
		return nil
	}
	app, err := bootstrap.New(ctx, e.cfg, e.log.Component("ingest"))
	if err != nil {
		return err
	}
	e.app = app
	return nil
}

// close libera la conexión; main la llama también cuando RunE falla. Idempotente.
func (e *env) close() {
	if e.app != nil {
		e.app.Close()
		e.app = nil
	}
}

func newRootCmd() (*cobra.Command, *env) {
	e := &env{}
	var logLevel string

	root := &cobra.Command{
		Use:           "ingest",
		Short:         "Normaliza exportaciones de POS y concilia el inventario por tienda",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("cargar configuración: %w", err)
			}
			if logLevel != "" {
				cfg.App.LogLevel = logLevel
			}
			e.cfg = cfg
			e.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nivel de log (trace, debug, info, warn, error)")

	root.AddCommand(
		newRunCmd(e),
		newPreviewCmd(e),
		newStoresCmd(e),
		newInitDBCmd(e),
	)
	return root, e
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, e := newRootCmd()
	err := root.ExecuteContext(ctx)
	e.close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
