package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/logger"
	"github.com/MaroIng01/portfolio/internal/web"
)

func serveCmd(a *app) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site and the live backgrounds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if port != "" {
				cfg.Port = port
			}

			catalog, err := locale.Load(cfg.DefaultLang)
			if err != nil {
				return err
			}
			srv, err := web.New(cfg, catalog, logger.L())
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.ListenAndServe(ctx)
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return c
}
