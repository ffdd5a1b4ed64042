package nav

import (
	"net/http"
	"strconv"
	"strings"
)

// State is what the browser reports about its viewport.
type State struct {
	Width         int      `json:"width"`
	ScrollY       float64  `json:"scrollY"`
	FooterVisible bool     `json:"footerVisible"`
	Current       string   `json:"current"`
	Sections      []Bounds `json:"sections"`
}

// View is the resolved navigation chrome for a State.
type View struct {
	Active      string `json:"active"`
	Scrolled    bool   `json:"scrolled"`
	ShowDesktop bool   `json:"showDesktop"`
	ShowDock    bool   `json:"showDock"`
	Layout      Layout `json:"layout"`
	ShowMore    bool   `json:"showMore"`
	MoreActive  bool   `json:"moreActive"`
	KnownWidth  bool   `json:"knownWidth"`
}

// Resolve combines viewport width, scroll offset, section bounds and footer
// visibility into a View. Both navigation surfaces hide while the footer is on
// screen. An unknown width renders the desktop header.
func Resolve(s State) View {
	v := View{
		Active:   ActiveSection(s.Sections, s.Current),
		Scrolled: Scrolled(s.ScrollY),
	}

	layout, ok := LayoutFor(s.Width)
	if !ok {
		layout = Layout{Mode: ModeDesktop}
	}
	v.Layout = layout
	v.KnownWidth = ok

	if !s.FooterVisible {
		v.ShowDesktop = layout.Mode == ModeDesktop
		v.ShowDock = layout.Mode == ModeDock
	}
	v.ShowMore = layout.ShowMore()
	v.MoreActive = layout.MoreActive(v.Active)
	return v
}

// ViewportHints are the client hint headers the server asks browsers to send.
var ViewportHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// WidthFromRequest reads the viewport width from client hints, or 0 when the
// browser did not send any.
func WidthFromRequest(r *http.Request) int {
	for _, h := range ViewportHints {
		v := strings.TrimSpace(r.Header.Get(h))
		if v == "" {
			continue
		}
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return int(f)
		}
	}
	return 0
}
