package cli

import (
	"os"
	"os/signal"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/particles"
	"github.com/MaroIng01/portfolio/internal/surface/term"
)

func particlesCmd(a *app) *cobra.Command {
	var scene string
	var seed uint64

	c := &cobra.Command{
		Use:   "particles",
		Short: "Preview a background scene in the terminal (q or Esc quits)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			const op = "cli.particles"
			if !slices.Contains(particles.SceneNames(), scene) {
				return apperr.New(op, apperr.KindInvalidInput, "unknown scene %q (want %s)", scene, strings.Join(particles.SceneNames(), ", "))
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return &apperr.OpError{Op: op, Kind: apperr.KindExecution, Err: err}
			}
			if err := screen.Init(); err != nil {
				return &apperr.OpError{Op: op, Kind: apperr.KindExecution, Err: err}
			}
			defer screen.Fini()

			w, h := term.SurfaceSize(screen)
			sc, err := particles.NewScene(scene, w, h, seed, a.cfg.ParticleFPS)
			if err != nil {
				return &apperr.OpError{Op: op, Kind: apperr.KindInvalidInput, Err: err}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return term.Preview(ctx, screen, sc, a.cfg.ParticleFPS)
		},
	}

	c.Flags().StringVarP(&scene, "scene", "s", "network", "scene: "+strings.Join(particles.SceneNames(), ", "))
	c.Flags().Uint64Var(&seed, "seed", 1, "random seed for the initial layout")
	return c
}
