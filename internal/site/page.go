package site

import (
	"time"

	"github.com/MaroIng01/portfolio/internal/locale"
)

// LangOption is one entry of the language switcher.
type LangOption struct {
	Code   string
	Name   string
	Active bool
}

// Options are the parts of a page that depend on how it is delivered.
type Options struct {
	Section string // initially highlighted nav entry
	Static  bool   // exported page: no stream, language links point at files

	// Background is the scene behind the page; StreamFPS > 0 enables the
	// live stream, otherwise only the SVG snapshot is shown.
	Background    string
	SnapshotURL   string
	WelcomeURL    string // network snapshot behind the welcome screen
	StreamFPS     int
	MusicURL      string
	MusicDuration time.Duration

	Now time.Time
}

// Page is everything the index template renders.
type Page struct {
	*locale.Dictionary

	Languages  []LangOption
	Nav        []NavLink
	Timeline   []TimelineEntry
	Cards      []Card
	Reveal     Reveal
	RootMargin string
	Year       int
	Opts       Options
}

// NewPage builds the view of the catalog in lang.
func NewPage(c *locale.Catalog, lang string, opts Options) Page {
	d := c.Get(lang)

	langs := make([]LangOption, 0, len(c.Languages()))
	for _, code := range c.Languages() {
		langs = append(langs, LangOption{Code: code, Name: c.Get(code).LanguageName, Active: code == d.Lang})
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	return Page{
		Dictionary: d,
		Languages:  langs,
		Nav:        Nav(d, opts.Section),
		Timeline:   Timeline(d.ExperienceData),
		Cards:      Cards(d.ProjectsData),
		Reveal:     DefaultReveal,
		RootMargin: RootMargin(),
		Year:       now.Year(),
		Opts:       opts,
	}
}
