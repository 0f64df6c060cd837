// Package cli wires the portfolio commands: the web server, the static
// export, the terminal preview of the backgrounds and the locale report.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/MaroIng01/portfolio/internal/config"
	"github.com/MaroIng01/portfolio/internal/logger"
)

// app is the state shared by every command after flag parsing.
type app struct {
	debug bool
	cfg   config.Config
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "portfolio",
		Short:        "Bilingual robotics portfolio: server, static export and particle backgrounds",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Setup(logger.Config{Debug: a.debug, Format: cfg.LogFormat})
			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable verbose text logging on stderr")

	cmd.AddCommand(serveCmd(a))
	cmd.AddCommand(buildCmd(a))
	cmd.AddCommand(particlesCmd(a))
	cmd.AddCommand(localesCmd(a))
	return cmd
}
