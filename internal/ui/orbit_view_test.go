package ui

import (
	"strings"
	"testing"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/camera"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/scene"
	"github.com/litescript/ls-atlas/internal/state"
)

func orbitSnapshot(handles ...*scene.VisualHandle) state.Snapshot {
	return state.Snapshot{
		Handles:     handles,
		ScaleFactor: 1,
		Total:       len(handles),
	}
}

func starHandle(id string, pos astro.Vec3, visible bool) *scene.VisualHandle {
	e := catalog.Entity{ID: id, Name: id, Type: catalog.TypeStar, Pos: pos}
	spec := catalog.SpecFor(catalog.TypeStar)
	return &scene.VisualHandle{
		Entity:  e,
		Pos:     pos,
		Visible: visible,
		Parts:   []scene.Part{{Name: "core", Radius: spec.Scale, Color: spec.Color}},
	}
}

func TestOrbitViewRendersVisibleBody(t *testing.T) {
	m := NewOrbitModel().
		SetSize(100, 24).
		UpdateData(orbitSnapshot(starHandle("sol", astro.Vec3{}, true))).
		UpdateCamera(camera.DefaultConfig().DefaultEye, camera.ModeIdle, 1)

	if !strings.Contains(m.View(), "✦") {
		t.Error("visible star should be drawn with its glyph")
	}
}

func TestOrbitViewSkipsHiddenBody(t *testing.T) {
	m := NewOrbitModel().
		SetSize(100, 24).
		UpdateData(orbitSnapshot(starHandle("sol", astro.Vec3{}, false))).
		UpdateCamera(camera.DefaultConfig().DefaultEye, camera.ModeIdle, 1)

	if strings.Contains(m.View(), "✦") {
		t.Error("hidden handle must not be drawn")
	}
}

func TestOrbitViewShowsSelectionLabel(t *testing.T) {
	h := starHandle("vega", astro.Vec3{}, true)
	snap := orbitSnapshot(h)
	snap.SelectedID = "vega"
	snap.Selected = h

	m := NewOrbitModel().
		SetSize(100, 24).
		UpdateData(snap).
		UpdateCamera(camera.DefaultConfig().DefaultEye, camera.ModeIdle, 1)

	if !strings.Contains(m.View(), "vega") {
		t.Error("selected body should carry a name label")
	}
}

func TestDrawLabelOccupiesAdjacentCells(t *testing.T) {
	m := NewOrbitModel().SetSize(40, 3)
	grid := make([][]rune, 3)
	colors := make([][]string, 3)
	for y := range grid {
		grid[y] = make([]rune, 40)
		colors[y] = make([]string, 40)
		for x := range grid[y] {
			grid[y][x] = ' '
		}
	}

	m.drawLabel(grid, colors, 5, 1, "vega")

	// The label starts two cells right of the glyph and occupies one
	// cell per rune, multi-byte arrow included.
	want := []rune("◄ vega")
	for i, r := range want {
		if got := grid[1][7+i]; got != r {
			t.Errorf("cell %d = %q, want %q", 7+i, got, r)
		}
	}
	if got := grid[1][7+len(want)]; got != ' ' {
		t.Errorf("cell after label = %q, want blank", got)
	}
}

func TestToCellInvertsNormalizePointer(t *testing.T) {
	m := NewOrbitModel().SetSize(80, 24)
	vp := scene.Viewport{Width: 80, Height: 24}

	cells := [][2]int{{0, 0}, {40, 12}, {79, 23}, {13, 7}}
	for _, c := range cells {
		ndcX, ndcY := scene.NormalizePointer(c[0], c[1], vp)
		x, y := m.toCell(astro.ProjectedPoint{X: ndcX, Y: ndcY})
		if x != c[0] || y != c[1] {
			t.Errorf("cell (%d,%d) round-tripped to (%d,%d)", c[0], c[1], x, y)
		}
	}
}

func TestTypeGlyph(t *testing.T) {
	tests := []struct {
		typ      catalog.Type
		normal   rune
		selected rune
	}{
		{catalog.TypeStar, '✦', '✸'},
		{catalog.TypePlanet, '●', '◉'},
		{catalog.TypeMoon, '•', '◦'},
		{catalog.TypeNebula, '░', '▒'},
		{catalog.TypeUnknown, '?', '?'},
	}

	for _, tt := range tests {
		if got := typeGlyph(tt.typ, false); got != tt.normal {
			t.Errorf("typeGlyph(%v, false) = %q, want %q", tt.typ, got, tt.normal)
		}
		if got := typeGlyph(tt.typ, true); got != tt.selected {
			t.Errorf("typeGlyph(%v, true) = %q, want %q", tt.typ, got, tt.selected)
		}
	}
}

func TestShadeFadesWithDepth(t *testing.T) {
	m := NewOrbitModel()

	near := m.shade("#FFD27D", 10, false)
	far := m.shade("#FFD27D", 2000, false)
	if near == far {
		t.Error("distant bodies should shade differently from near ones")
	}

	// Garbage colors fall back to the neutral palette instead of
	// breaking the render.
	if got := m.shade("not-a-color", 10, false); got == "" {
		t.Error("invalid color should still produce a shade")
	}
}

func TestRenderFilterPanel(t *testing.T) {
	snap := state.Snapshot{
		TypeEnabled: map[catalog.Type]bool{
			catalog.TypeStar:   true,
			catalog.TypePlanet: false,
			catalog.TypeMoon:   true,
			catalog.TypeNebula: true,
		},
		SectorEnabled: map[int]bool{0: true, 2: false},
		ScaleFactor:   1,
	}

	out := RenderFilterPanel(snap)
	for _, want := range []string{"stars", "planets", "moons", "nebulae", "[0]", "[2]"} {
		if !strings.Contains(out, want) {
			t.Errorf("filter panel missing %q", want)
		}
	}
	if !strings.Contains(out, "✓") || !strings.Contains(out, "✗") {
		t.Error("filter panel should mark enabled and disabled facets")
	}
}

func TestRenderDetailPanel(t *testing.T) {
	empty := RenderDetailPanel(state.Snapshot{})
	if !strings.Contains(empty, "Nothing selected") {
		t.Error("empty selection should render the hint")
	}

	h := starHandle("sirius", astro.Vec3{X: -50}, true)
	h.Entity.Name = "Sirius"
	h.Entity.Constellation = "Canis Major"
	h.Entity.Distance = 8.6

	out := RenderDetailPanel(state.Snapshot{SelectedID: "sirius", Selected: h})
	for _, want := range []string{"Sirius", "star", "Canis Major", "8.6"} {
		if !strings.Contains(out, want) {
			t.Errorf("detail panel missing %q", want)
		}
	}
	if !strings.Contains(out, "proxy") {
		t.Error("proxy visual should be labeled as such")
	}
}

func TestRenderEventLine(t *testing.T) {
	if RenderEventLine(nil) != "" {
		t.Error("no events should render nothing")
	}

	events := []state.Event{
		{Type: state.EventDetailed, Entity: "Earth"},
		{Type: state.EventFallback, Entity: "Vega", Detail: "asset missing"},
	}
	out := RenderEventLine(events)
	if !strings.Contains(out, "Vega") || !strings.Contains(out, "asset missing") {
		t.Error("event line should show the most recent event with detail")
	}
	if strings.Contains(out, "Earth") {
		t.Error("only the latest event is shown")
	}
}
