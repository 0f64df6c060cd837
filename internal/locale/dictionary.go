package locale

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Dictionary is every user-facing string of the site in one language.
type Dictionary struct {
	Lang         string       `yaml:"-"`
	LanguageName string       `yaml:"languageName"`
	PersonalInfo PersonalInfo `yaml:"personalInfo"`
	Welcome      Welcome      `yaml:"welcome"`
	Nav          Nav          `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	About        About        `yaml:"about"`
	Experience   Section      `yaml:"experience"`
	Projects     Projects     `yaml:"projects"`
	Contact      Contact      `yaml:"contact"`
	Music        Music        `yaml:"music"`

	Education         []Education       `yaml:"education"`
	ExperienceData    []Job             `yaml:"experienceData"`
	ProjectsData      []Project         `yaml:"projectsData"`
	Skills            Skills            `yaml:"skills"`
	SkillDescriptions map[string]string `yaml:"skillDescriptions"`
}

type PersonalInfo struct {
	Name     string `yaml:"name"`
	Initials string `yaml:"initials"`
	Role     string `yaml:"role"`
	Location string `yaml:"location"`
	Phone    string `yaml:"phone"`
	Email    string `yaml:"email"`
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Summary  string `yaml:"summary"`
}

type Welcome struct {
	Initializing string `yaml:"initializing"`
	Enter        string `yaml:"enter"`
}

type Nav struct {
	Home       string `yaml:"home"`
	About      string `yaml:"about"`
	Experience string `yaml:"experience"`
	Projects   string `yaml:"projects"`
	Contact    string `yaml:"contact"`
}

type Hero struct {
	Role       string `yaml:"role"`
	BaseText   string `yaml:"baseText"`
	RevealText string `yaml:"revealText"`
	Subtitle   string `yaml:"subtitle"`
	Highlight  string `yaml:"highlight"`
	DownloadCV string `yaml:"downloadCv"`
	CVURL      string `yaml:"cvUrl"`
}

// Section carries the three titles every content section shows: the
// resting title, the one revealed under the pointer, and the oversized
// watermark behind it.
type Section struct {
	Title           string `yaml:"title"`
	RevealTitle     string `yaml:"revealTitle"`
	BackgroundTitle string `yaml:"backgroundTitle"`
}

type About struct {
	Section      `yaml:",inline"`
	SkillTooltip string `yaml:"skillTooltip"`
	ArsenalTitle string `yaml:"arsenalTitle"`
	ProfileAlt   string `yaml:"profileAlt"`
	BasedIn      string `yaml:"basedIn"`
	Passion      string `yaml:"passion"`
	Hardware     string `yaml:"hardware"`
	And          string `yaml:"and"`
	Software     string `yaml:"software"`
}

type Projects struct {
	Section `yaml:",inline"`
	Code    string `yaml:"code"`
	Details string `yaml:"details"`
}

type Contact struct {
	Section  `yaml:",inline"`
	Subtitle string `yaml:"subtitle"`
	EmailMe  string `yaml:"emailMe"`
	CallMe   string `yaml:"callMe"`
	Location string `yaml:"location"`
	Connect  string `yaml:"connect"`
	Footer   string `yaml:"footer"`
}

type Music struct {
	Playing string `yaml:"playing"`
	Paused  string `yaml:"paused"`
	Toggle  string `yaml:"toggle"`
}

type Education struct {
	School string `yaml:"school"`
	Degree string `yaml:"degree"`
	Period string `yaml:"period"`
}

// Job is one experience timeline entry.
type Job struct {
	Role        string   `yaml:"role"`
	Company     string   `yaml:"company"`
	Period      string   `yaml:"period"`
	Location    string   `yaml:"location"`
	Description []string `yaml:"description"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Tech        []string `yaml:"tech"`
	Description string   `yaml:"description"`
}

// SkillGroup is one category of the skills map.
type SkillGroup struct {
	Category string
	Items    []string
}

// Skills keeps the categories in document order, which a Go map would lose.
type Skills []SkillGroup

func (s *Skills) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: skills must be a mapping", node.Line)
	}
	out := make(Skills, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var items []string
		if err := node.Content[i+1].Decode(&items); err != nil {
			return fmt.Errorf("skills %q: %w", node.Content[i].Value, err)
		}
		out = append(out, SkillGroup{Category: node.Content[i].Value, Items: items})
	}
	*s = out
	return nil
}

// AllSkills flattens the categories in order.
func (d *Dictionary) AllSkills() []string {
	var out []string
	for _, g := range d.Skills {
		out = append(out, g.Items...)
	}
	return out
}

// HasSkill reports whether name is listed in any category.
func (d *Dictionary) HasSkill(name string) bool {
	for _, g := range d.Skills {
		for _, s := range g.Items {
			if s == name {
				return true
			}
		}
	}
	return false
}

// SkillDescription returns the description for a skill, or the generic
// tooltip when the dictionary has none.
func (d *Dictionary) SkillDescription(name string) string {
	if desc, ok := d.SkillDescriptions[name]; ok && desc != "" {
		return desc
	}
	return d.About.SkillTooltip
}

// MissingDescriptions lists listed skills that fall back to the tooltip.
func (d *Dictionary) MissingDescriptions() []string {
	var out []string
	for _, s := range d.AllSkills() {
		if _, ok := d.SkillDescriptions[s]; !ok {
			out = append(out, s)
		}
	}
	return out
}

// Lines splits "<br/>"-separated display text.
func Lines(s string) []string {
	return strings.Split(s, "<br/>")
}

// Paragraphs splits text on newlines.
func Paragraphs(s string) []string {
	return strings.Split(s, "\n")
}
