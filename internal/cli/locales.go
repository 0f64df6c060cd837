package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MaroIng01/portfolio/internal/locale"
)

func localesCmd(a *app) *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "locales",
		Short: "Check that every language has the same keys and describes every skill",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				catalog *locale.Catalog
				err     error
			)
			if dir != "" {
				catalog, err = locale.LoadFS(os.DirFS(dir), a.cfg.DefaultLang)
			} else {
				catalog, err = locale.Load(a.cfg.DefaultLang)
			}

			w := cmd.OutOrStdout()
			var perr *locale.ParityError
			if errors.As(err, &perr) {
				writeParityFailure(w, perr)
				return err
			}
			if err != nil {
				return err
			}
			writeLocaleReport(w, catalog)
			return nil
		},
	}

	c.Flags().StringVarP(&dir, "dir", "d", "", "directory of <lang>.yaml files to check instead of the embedded ones")
	return c
}

func writeLocaleReport(w io.Writer, c *locale.Catalog) {
	cards := make([]string, 0, len(c.Languages()))
	for _, lang := range c.Languages() {
		d := c.Get(lang)
		var b strings.Builder
		title := d.LanguageName + " (" + lang + ")"
		if lang == c.Default() {
			title += " default"
		}
		b.WriteString(styles.title.Render(title) + "\n")
		fmt.Fprintf(&b, "%s%d\n", styles.label.Render("skills       "), len(d.AllSkills()))
		fmt.Fprintf(&b, "%s%d\n", styles.label.Render("experience   "), len(d.ExperienceData))
		fmt.Fprintf(&b, "%s%d\n", styles.label.Render("projects     "), len(d.ProjectsData))

		missing := d.MissingDescriptions()
		if len(missing) == 0 {
			b.WriteString(styles.ok.Render("every skill described"))
		} else {
			b.WriteString(styles.warn.Render("no description: " + strings.Join(missing, ", ")))
		}
		cards = append(cards, styles.card.Render(b.String()))
	}

	fmt.Fprintln(w, styles.ok.Render("key parity OK"))
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
}

func writeParityFailure(w io.Writer, e *locale.ParityError) {
	fmt.Fprintln(w, styles.bad.Render("key parity FAILED: "+e.Ref+" vs "+e.Other))
	for _, k := range e.MissingInOther {
		fmt.Fprintln(w, "  "+styles.warn.Render("missing in "+e.Other+": ")+k)
	}
	for _, k := range e.MissingInRef {
		fmt.Fprintln(w, "  "+styles.warn.Render("missing in "+e.Ref+": ")+k)
	}
}
