package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/MaroIng01/portfolio/internal/apperr"
	"github.com/MaroIng01/portfolio/internal/locale"
	"github.com/MaroIng01/portfolio/internal/site"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var funcs = template.FuncMap{
	"breakLines": site.BreakLines,
	"paragraphs": locale.Paragraphs,
	"join":       strings.Join,
	"reveal": func(title, revealed string) locale.Section {
		return locale.Section{Title: title, RevealTitle: revealed}
	},
	"seconds": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64) + "s"
	},
}

// Templates parses the embedded page and fragment templates.
func Templates() (*template.Template, error) {
	t, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, &apperr.OpError{Op: "web.templates", Kind: apperr.KindExecution, Err: err}
	}
	return t, nil
}

// Static is the embedded stylesheet and script tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// RenderPage executes the index template for p.
func RenderPage(w io.Writer, t *template.Template, p site.Page) error {
	if err := t.ExecuteTemplate(w, "index.html", p); err != nil {
		return &apperr.OpError{Op: "web.render", Kind: apperr.KindExecution, Path: p.Lang, Err: err}
	}
	return nil
}
