// Package content holds the portfolio's authored records. Everything here is
// built once by Default and rendered read-only.
package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

var (
	ErrMissingField  = errors.New("missing required field")
	ErrDuplicateLink = errors.New("duplicate link id")
	ErrBadURL        = errors.New("link url must be absolute http(s)")
)

// Well-known link ids used by the page chrome.
const (
	LinkResume   = "resume"
	LinkGitHub   = "github"
	LinkLinkedIn = "linkedin"
)

type Profile struct {
	Name        string
	ShortName   string
	Roles       []string
	Headline    string
	Summary     string
	AboutTitle  string
	About       []string
	Email       string
	Phone       string
	Image       string
	ImageAlt    string
	WelcomeText string
	BuiltWith   string
}

type Skill struct {
	Name     string
	Category string
}

// SkillGroup is one category of skills in first-seen order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

type Project struct {
	Title        string
	Description  string
	Technologies []string
	RepoLink     string
}

type CaseStudy struct {
	Title        string
	Tagline      string
	Description  string
	Problem      string
	Solution     string
	Architecture []string
	Features     []string
	Stack        []string
	RepoLink     string
	Image        string
}

// Number renders the gallery label, e.g. "Case Study 01".
func (c CaseStudy) Number(index int) string {
	return fmt.Sprintf("Case Study %02d", index+1)
}

type Education struct {
	Degree      string
	Institution string
	Date        string
	Description string
}

type Experience struct {
	Role       string
	Company    string
	Date       string
	Highlights []string
}

type JourneyItem struct {
	Title        string
	Organization string
	Period       string
	Desc         string
	Tags         []string
}

type JourneyPhase struct {
	Phase       string
	Description string
	Icon        string
	Color       string
	Items       []JourneyItem
}

type Certification struct {
	Name            string
	Issuer          string
	Date            string
	Description     string
	Skills          []string
	CertificateLink string
}

// Link is an outbound destination. Pages link to /out/{ID} so clicks can be
// counted before redirecting.
type Link struct {
	ID    string
	Label string
	URL   string
}

type QuickLink struct {
	Name string
	Href string
}

type Site struct {
	Title          string
	Description    string
	Profile        Profile
	Skills         []Skill
	TechIcons      []string
	Projects       []Project
	CaseStudies    []CaseStudy
	Journey        []JourneyPhase
	Experience     []Experience
	Education      []Education
	Certifications []Certification
	QuickLinks     []QuickLink
	Links          []Link

	linkIndex map[string]int
}

// Default returns the authored site content with its link registry built.
func Default() *Site {
	s := &Site{
		Title:          "Pavan Kumar | Portfolio",
		Description:    "Full Stack  Developer & Data Analyst - Building scalable web applications and transforming data into insights. Explore my projects in web development, data analytics, and machine learning.",
		Profile:        profile,
		Skills:         skills,
		TechIcons:      techIcons,
		Projects:       projects,
		CaseStudies:    caseStudies,
		Journey:        journey,
		Experience:     experience,
		Education:      education,
		Certifications: certifications,
		QuickLinks:     quickLinks,
		Links:          append([]Link(nil), staticLinks...),
	}

	for _, p := range s.Projects {
		s.Links = append(s.Links, Link{ID: RepoLinkID(p.Title), Label: p.Title, URL: p.RepoLink})
	}
	for _, c := range s.CaseStudies {
		id := CaseStudyLinkID(c.Title)
		s.Links = append(s.Links, Link{ID: id, Label: c.Title, URL: c.RepoLink})
	}
	for _, c := range s.Certifications {
		s.Links = append(s.Links, Link{ID: CertificateLinkID(c.Name), Label: c.Name, URL: c.CertificateLink})
	}

	s.index()
	return s
}

func (s *Site) index() {
	s.linkIndex = make(map[string]int, len(s.Links))
	for i, l := range s.Links {
		if _, ok := s.linkIndex[l.ID]; !ok {
			s.linkIndex[l.ID] = i
		}
	}
}

// Link looks up an outbound link by id.
func (s *Site) Link(id string) (Link, bool) {
	if s.linkIndex == nil {
		s.index()
	}
	i, ok := s.linkIndex[id]
	if !ok {
		return Link{}, false
	}
	return s.Links[i], true
}

// SkillsByCategory groups skills by category, keeping first-seen order.
func (s *Site) SkillsByCategory() []SkillGroup {
	var groups []SkillGroup
	pos := make(map[string]int)
	for _, sk := range s.Skills {
		i, ok := pos[sk.Category]
		if !ok {
			i = len(groups)
			pos[sk.Category] = i
			groups = append(groups, SkillGroup{Category: sk.Category})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}

// IconURLs maps TechIcons to their simple-icons CDN URLs, dropping duplicates.
func (s *Site) IconURLs() []string {
	seen := make(map[string]bool, len(s.TechIcons))
	out := make([]string, 0, len(s.TechIcons))
	for _, slug := range s.TechIcons {
		if seen[slug] {
			continue
		}
		seen[slug] = true
		out = append(out, "https://cdn.simpleicons.org/"+slug)
	}
	return out
}

// Validate checks that every record carries its display fields and that the
// link registry is well formed.
func (s *Site) Validate() error {
	var errs []error
	need := func(where, field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, fmt.Errorf("%s: %s: %w", where, field, ErrMissingField))
		}
	}

	need("profile", "name", s.Profile.Name)
	need("profile", "email", s.Profile.Email)
	need("profile", "image", s.Profile.Image)

	for i, sk := range s.Skills {
		where := fmt.Sprintf("skill[%d]", i)
		need(where, "name", sk.Name)
		need(where, "category", sk.Category)
	}
	for i, p := range s.Projects {
		where := fmt.Sprintf("project[%d]", i)
		need(where, "title", p.Title)
		need(where, "description", p.Description)
	}
	for i, c := range s.CaseStudies {
		where := fmt.Sprintf("case study[%d]", i)
		need(where, "title", c.Title)
		need(where, "description", c.Description)
	}
	for i, e := range s.Education {
		where := fmt.Sprintf("education[%d]", i)
		need(where, "degree", e.Degree)
		need(where, "institution", e.Institution)
		need(where, "date", e.Date)
	}
	for i, e := range s.Experience {
		where := fmt.Sprintf("experience[%d]", i)
		need(where, "role", e.Role)
		need(where, "company", e.Company)
		need(where, "date", e.Date)
	}
	for i, ph := range s.Journey {
		need(fmt.Sprintf("journey[%d]", i), "phase", ph.Phase)
		for j, it := range ph.Items {
			need(fmt.Sprintf("journey[%d].item[%d]", i, j), "title", it.Title)
		}
	}
	for i, c := range s.Certifications {
		where := fmt.Sprintf("certification[%d]", i)
		need(where, "name", c.Name)
		need(where, "issuer", c.Issuer)
		need(where, "date", c.Date)
	}

	seen := make(map[string]bool, len(s.Links))
	for _, l := range s.Links {
		if seen[l.ID] {
			errs = append(errs, fmt.Errorf("link %q: %w", l.ID, ErrDuplicateLink))
			continue
		}
		seen[l.ID] = true
		u, err := url.Parse(l.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("link %q: %w", l.ID, ErrBadURL))
		}
	}

	return errors.Join(errs...)
}

func RepoLinkID(title string) string       { return "repo-" + Slug(title) }
func CaseStudyLinkID(title string) string  { return "case-" + Slug(title) }
func CertificateLinkID(name string) string { return "cert-" + Slug(name) }

// Slug lowercases s and joins its alphanumeric runs with single hyphens.
func Slug(s string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
