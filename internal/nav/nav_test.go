package nav

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func TestLayoutFor(t *testing.T) {
	tests := []struct {
		width   int
		mode    Mode
		visible int
	}{
		{320, ModeDock, 3},
		{374, ModeDock, 3},
		{375, ModeDock, 4},
		{639, ModeDock, 4},
		{640, ModeDock, 5},
		{767, ModeDock, 5},
		{768, ModeDesktop, 0},
		{1440, ModeDesktop, 0},
	}

	for _, tt := range tests {
		layout, ok := LayoutFor(tt.width)
		require.True(t, ok, "width %d", tt.width)
		assert.Equal(t, tt.mode, layout.Mode, "width %d", tt.width)
		assert.Len(t, layout.Visible, tt.visible, "width %d", tt.width)
		if tt.mode == ModeDock {
			assert.Len(t, layout.Hidden, len(Items)-tt.visible, "width %d", tt.width)
			assert.True(t, layout.ShowMore())
		} else {
			assert.Empty(t, layout.Hidden)
			assert.False(t, layout.ShowMore())
		}
	}
}

func TestLayoutForUnknownWidth(t *testing.T) {
	_, ok := LayoutFor(0)
	assert.False(t, ok)
}

func TestLayoutVisibleDoesNotAliasItems(t *testing.T) {
	layout, _ := LayoutFor(400)
	layout.Visible = append(layout.Visible, Item{Name: "extra"})
	assert.Equal(t, "Education", Items[4].Name)
}

func TestMoreActive(t *testing.T) {
	layout, _ := LayoutFor(360)
	assert.Equal(t, []string{"Home", "About", "Projects"}, names(layout.Visible))
	assert.True(t, layout.MoreActive("education"))
	assert.False(t, layout.MoreActive("about"))
}

func TestActiveSection(t *testing.T) {
	sections := []Bounds{
		{ID: "home", Top: -900, Bottom: -100},
		{ID: "about", Top: -100, Bottom: 700},
		{ID: "projects", Top: 700, Bottom: 1500},
	}
	assert.Equal(t, "about", ActiveSection(sections, "home"))

	edge := []Bounds{{ID: "projects", Top: 300, Bottom: 900}}
	assert.Equal(t, "projects", ActiveSection(edge, "about"), "probe line is inclusive")

	gap := []Bounds{{ID: "about", Top: 400, Bottom: 900}}
	assert.Equal(t, "home", ActiveSection(gap, "home"), "no match keeps current")
	assert.Equal(t, DefaultSection, ActiveSection(nil, ""))

	unknown := []Bounds{{ID: "journey", Top: 0, Bottom: 900}}
	assert.Equal(t, "about", ActiveSection(unknown, "about"), "sections outside the menu are ignored")
}

func TestActiveSectionPrefersMenuOrder(t *testing.T) {
	overlap := []Bounds{
		{ID: "education", Top: 0, Bottom: 600},
		{ID: "experience", Top: 0, Bottom: 600},
	}
	assert.Equal(t, "experience", ActiveSection(overlap, ""))
}

func TestScrolled(t *testing.T) {
	assert.False(t, Scrolled(0))
	assert.False(t, Scrolled(50))
	assert.True(t, Scrolled(50.5))
}

func TestResolve(t *testing.T) {
	t.Run("desktop", func(t *testing.T) {
		v := Resolve(State{Width: 1280, ScrollY: 120, Current: "home",
			Sections: []Bounds{{ID: "about", Top: 0, Bottom: 800}}})
		assert.True(t, v.ShowDesktop)
		assert.False(t, v.ShowDock)
		assert.True(t, v.Scrolled)
		assert.Equal(t, "about", v.Active)
	})

	t.Run("mobile with active item hidden", func(t *testing.T) {
		v := Resolve(State{Width: 390, Current: "certifications"})
		assert.False(t, v.ShowDesktop)
		assert.True(t, v.ShowDock)
		assert.True(t, v.ShowMore)
		assert.True(t, v.MoreActive)
	})

	t.Run("footer hides both", func(t *testing.T) {
		v := Resolve(State{Width: 390, FooterVisible: true})
		assert.False(t, v.ShowDesktop)
		assert.False(t, v.ShowDock)

		v = Resolve(State{Width: 1280, FooterVisible: true})
		assert.False(t, v.ShowDesktop)
	})

	t.Run("unknown width renders desktop", func(t *testing.T) {
		v := Resolve(State{})
		assert.False(t, v.KnownWidth)
		assert.True(t, v.ShowDesktop)
		assert.Equal(t, DefaultSection, v.Active)
	})
}

func TestWidthFromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, 0, WidthFromRequest(r))

	r.Header.Set("Viewport-Width", "412.5")
	assert.Equal(t, 412, WidthFromRequest(r))

	r.Header.Set("Sec-CH-Viewport-Width", "1024")
	assert.Equal(t, 1024, WidthFromRequest(r))

	r = httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Sec-CH-Viewport-Width", "wide")
	assert.Equal(t, 0, WidthFromRequest(r))
}
