package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MaroIng01/portfolio/internal/export"
)

func buildCmd(a *app) *cobra.Command {
	var out string

	c := &cobra.Command{
		Use:   "build",
		Short: "Export the site as static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := export.Build(cmd.Context(), a.cfg, out)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, styles.title.Render("Exported to "+out))
			fmt.Fprintln(w, styles.label.Render("pages     ")+strings.Join(rep.Pages, ", "))
			fmt.Fprintln(w, styles.label.Render("snapshots ")+strings.Join(rep.Snapshots, ", "))
			fmt.Fprintln(w, styles.label.Render("assets    ")+strings.Join(rep.Assets, ", "))
			return nil
		},
	}

	c.Flags().StringVarP(&out, "out", "o", "dist", "output directory (replaced)")
	return c
}
