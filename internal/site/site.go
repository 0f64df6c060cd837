// Package site shapes locale content into the view the page template
// renders: navigation, section order, timeline sides, badge limits and the
// reveal-animation parameters shared with the client script.
package site

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/MaroIng01/portfolio/internal/locale"
)

// Section ids, in page order.
const (
	SectionHome       = "home"
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionContact    = "contact"
)

var order = []string{SectionHome, SectionAbout, SectionExperience, SectionProjects, SectionContact}

// MaxBadges is how many tech badges a project card shows.
const MaxBadges = 3

// Observation band for nav highlighting, in percent of the viewport cut
// from the top and the bottom: a section is current while it crosses the
// band between 30% and 60% of the viewport height.
const (
	BandMarginTop    = 30
	BandMarginBottom = 40
)

// Reveal holds the scroll-reveal animation parameters.
type Reveal struct {
	Offset   int     // px the block rises while fading in
	Duration float64 // seconds
	Stagger  float64 // seconds between items of a group
	Margin   int     // px the block must be inside the viewport
}

var DefaultReveal = Reveal{Offset: 75, Duration: 0.8, Stagger: 0.1, Margin: 75}

// NavLink is one navbar entry.
type NavLink struct {
	ID     string
	Label  string
	Active bool
}

// Nav builds the navbar for d with active highlighted. An unknown active id
// highlights home.
func Nav(d *locale.Dictionary, active string) []NavLink {
	labels := map[string]string{
		SectionHome:       d.Nav.Home,
		SectionAbout:      d.Nav.About,
		SectionExperience: d.Nav.Experience,
		SectionProjects:   d.Nav.Projects,
		SectionContact:    d.Nav.Contact,
	}
	if _, ok := labels[active]; !ok {
		active = SectionHome
	}
	links := make([]NavLink, len(order))
	for i, id := range order {
		links[i] = NavLink{ID: id, Label: labels[id], Active: id == active}
	}
	return links
}

// RootMargin is the IntersectionObserver margin that produces the
// observation band.
func RootMargin() string {
	return fmt.Sprintf("-%d%% 0px -%d%% 0px", BandMarginTop, BandMarginBottom)
}

// TimelineEntry is a Job placed on the left or right of the timeline.
type TimelineEntry struct {
	locale.Job
	Index    int
	Mirrored bool // even entries sit on the right and align their text right
}

func Timeline(jobs []locale.Job) []TimelineEntry {
	out := make([]TimelineEntry, len(jobs))
	for i, j := range jobs {
		out[i] = TimelineEntry{Job: j, Index: i, Mirrored: i%2 == 0}
	}
	return out
}

// Card is a project prepared for the gallery.
type Card struct {
	locale.Project
	Index  int
	Badges []string
	Delay  float64 // seconds
}

func Cards(projects []locale.Project) []Card {
	out := make([]Card, len(projects))
	for i, p := range projects {
		badges := p.Tech
		if len(badges) > MaxBadges {
			badges = badges[:MaxBadges]
		}
		out[i] = Card{Project: p, Index: i, Badges: badges, Delay: float64(i) * 0.1}
	}
	return out
}

// BreakLines renders "<br/>"-separated text as escaped lines joined by <br>.
func BreakLines(s string) template.HTML {
	lines := locale.Lines(s)
	for i, l := range lines {
		lines[i] = template.HTMLEscapeString(l)
	}
	return template.HTML(strings.Join(lines, "<br>"))
}
