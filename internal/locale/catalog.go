// Package locale holds the bilingual text content of the site: one YAML
// dictionary per language, embedded in the binary.
package locale

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/MaroIng01/portfolio/internal/apperr"
)

//go:embed data/*.yaml
var embedded embed.FS

const DefaultLang = "en"

// Catalog maps language codes to dictionaries. It is read-only after Load.
type Catalog struct {
	dicts map[string]*Dictionary
	langs []string
	def   string
}

// Load reads the embedded dictionaries.
func Load(defaultLang string) (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, &apperr.OpError{Op: "locale.load", Kind: apperr.KindExecution, Err: err}
	}
	return LoadFS(sub, defaultLang)
}

// LoadFS reads every <lang>.yaml at the root of fsys. All dictionaries must
// expose the same key paths, and defaultLang must be among them.
func LoadFS(fsys fs.FS, defaultLang string) (*Catalog, error) {
	const op = "locale.load"

	files, err := fs.Glob(fsys, "*.yaml")
	if err != nil {
		return nil, &apperr.OpError{Op: op, Kind: apperr.KindExecution, Err: err}
	}
	if len(files) == 0 {
		return nil, apperr.New(op, apperr.KindNotFound, "no dictionaries found")
	}
	slices.Sort(files)

	c := &Catalog{dicts: make(map[string]*Dictionary, len(files)), def: defaultLang}
	var refName string
	var ref *yaml.Node

	for _, name := range files {
		raw, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, &apperr.OpError{Op: op, Kind: apperr.KindNotFound, Path: name, Err: err}
		}

		var doc yaml.Node
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, &apperr.OpError{Op: op, Kind: apperr.KindInvalidConfig, Path: name, Err: err}
		}
		var d Dictionary
		if err := doc.Decode(&d); err != nil {
			return nil, &apperr.OpError{Op: op, Kind: apperr.KindInvalidConfig, Path: name, Err: err}
		}

		if ref == nil {
			refName, ref = name, &doc
		} else if onlyRef, onlyThis := Parity(ref, &doc); len(onlyRef) > 0 || len(onlyThis) > 0 {
			return nil, &apperr.OpError{
				Op:   op,
				Kind: apperr.KindInvalidConfig,
				Path: name,
				Err:  &ParityError{Ref: refName, Other: name, MissingInOther: onlyRef, MissingInRef: onlyThis},
			}
		}

		lang := strings.TrimSuffix(path.Base(name), ".yaml")
		d.Lang = lang
		c.dicts[lang] = &d
		c.langs = append(c.langs, lang)
	}

	if _, ok := c.dicts[defaultLang]; !ok {
		return nil, apperr.New(op, apperr.KindInvalidConfig, "default language %q has no dictionary", defaultLang)
	}
	return c, nil
}

// ParityError lists the key paths that two dictionaries do not share.
type ParityError struct {
	Ref, Other     string
	MissingInOther []string
	MissingInRef   []string
}

func (e *ParityError) Error() string {
	var b strings.Builder
	b.WriteString(e.Ref + " and " + e.Other + " differ")
	if len(e.MissingInOther) > 0 {
		b.WriteString("; missing in " + e.Other + ": " + strings.Join(e.MissingInOther, ", "))
	}
	if len(e.MissingInRef) > 0 {
		b.WriteString("; missing in " + e.Ref + ": " + strings.Join(e.MissingInRef, ", "))
	}
	return b.String()
}

// Get returns the dictionary for lang, or the default language's when lang
// is empty or unknown.
func (c *Catalog) Get(lang string) *Dictionary {
	if d, ok := c.dicts[lang]; ok {
		return d
	}
	return c.dicts[c.def]
}

func (c *Catalog) Has(lang string) bool {
	_, ok := c.dicts[lang]
	return ok
}

// Resolve maps a requested code to a supported one.
func (c *Catalog) Resolve(lang string) string {
	if c.Has(lang) {
		return lang
	}
	return c.def
}

func (c *Catalog) Default() string { return c.def }

// Languages returns the supported codes in file order.
func (c *Catalog) Languages() []string {
	return slices.Clone(c.langs)
}
