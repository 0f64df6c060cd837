package locale

import "github.com/MaroIng01/portfolio/internal/apperr"

// Selection is the active-language state of one visitor.
type Selection struct {
	catalog *Catalog
	active  string
}

// NewSelection starts on lang, or on the default when lang is unsupported.
func NewSelection(c *Catalog, lang string) *Selection {
	return &Selection{catalog: c, active: c.Resolve(lang)}
}

// Select switches to lang and reports whether the content changed.
// Selecting the active language again is a no-op.
func (s *Selection) Select(lang string) (bool, error) {
	if !s.catalog.Has(lang) {
		return false, apperr.New("locale.select", apperr.KindNotFound, "unsupported language %q", lang)
	}
	if lang == s.active {
		return false, nil
	}
	s.active = lang
	return true, nil
}

func (s *Selection) Active() string { return s.active }
