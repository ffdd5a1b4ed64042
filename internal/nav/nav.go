// Package nav decides what the header and the mobile dock show: which section
// is active, whether the header has collapsed, and how many dock items fit the
// viewport.
package nav

import "strings"

const (
	// ProbeLine is the distance from the top of the viewport, in CSS pixels,
	// that a section must straddle to be considered active.
	ProbeLine = 300
	// ScrollThreshold is the scroll offset past which the header collapses.
	ScrollThreshold = 50

	DesktopMinWidth = 768
	tabletMinWidth  = 640
	phoneMinWidth   = 375
)

type Item struct {
	Name string `json:"name"`
	Href string `json:"href"`
	Icon string `json:"icon"`
}

// Section is the id the item scrolls to, without the leading '#'.
func (i Item) Section() string {
	return strings.TrimPrefix(i.Href, "#")
}

// Items is the navigation menu in page order.
var Items = []Item{
	{Name: "Home", Href: "#home", Icon: "home"},
	{Name: "About", Href: "#about", Icon: "user"},
	{Name: "Projects", Href: "#projects", Icon: "folder-open"},
	{Name: "Experience", Href: "#experience", Icon: "briefcase"},
	{Name: "Education", Href: "#education", Icon: "graduation-cap"},
	{Name: "Certifications", Href: "#certifications", Icon: "award"},
}

// DefaultSection is active before any scroll position is known.
const DefaultSection = "home"

type Mode string

const (
	ModeDesktop Mode = "desktop"
	ModeDock    Mode = "dock"
)

// Layout is the responsive split of Items for one viewport width.
type Layout struct {
	Mode    Mode   `json:"mode"`
	Visible []Item `json:"visible"`
	Hidden  []Item `json:"hidden"`
}

// ShowMore reports whether the dock needs a "more" button.
func (l Layout) ShowMore() bool {
	return l.Mode == ModeDock && len(l.Visible) < len(Items)
}

// MoreActive reports whether the active section sits behind the "more" button.
func (l Layout) MoreActive(active string) bool {
	for _, it := range l.Hidden {
		if it.Section() == active {
			return true
		}
	}
	return false
}

// LayoutFor splits Items for a viewport width. A zero width means the width is
// not known yet; ok is false and callers keep whatever layout they had.
func LayoutFor(width int) (layout Layout, ok bool) {
	if width <= 0 {
		return Layout{}, false
	}
	if width >= DesktopMinWidth {
		return Layout{Mode: ModeDesktop}, true
	}

	visible := 5
	if width < tabletMinWidth {
		visible = 4
		if width < phoneMinWidth {
			visible = 3
		}
	}
	return Layout{
		Mode:    ModeDock,
		Visible: Items[:visible:visible],
		Hidden:  Items[visible:],
	}, true
}

// Bounds is a section's bounding box relative to the viewport top.
type Bounds struct {
	ID     string  `json:"id"`
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
}

// ActiveSection returns the first nav section, in menu order, whose bounds
// straddle ProbeLine. When none does, current is kept.
func ActiveSection(sections []Bounds, current string) string {
	byID := make(map[string]Bounds, len(sections))
	for _, b := range sections {
		byID[b.ID] = b
	}
	for _, it := range Items {
		b, ok := byID[it.Section()]
		if !ok {
			continue
		}
		if b.Top <= ProbeLine && b.Bottom >= ProbeLine {
			return it.Section()
		}
	}
	if current == "" {
		return DefaultSection
	}
	return current
}

// Scrolled reports whether the header should collapse into its pill form.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrollThreshold
}
