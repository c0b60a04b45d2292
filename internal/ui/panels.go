package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/state"
)

// Panel colors
const (
	colorFacetOn  = "#7CFC00" // lawn green - facet enabled
	colorFacetOff = "#444444" // dark gray - facet disabled
	colorLabel    = "#E0DEF4" // label text on the canvas
)

// typeKeys maps the toggle key to each catalog type, in display order.
var typeKeys = []struct {
	key string
	typ catalog.Type
}{
	{"t", catalog.TypeStar},
	{"p", catalog.TypePlanet},
	{"m", catalog.TypeMoon},
	{"n", catalog.TypeNebula},
}

// RenderFilterPanel renders the visibility facet toggles.
// Format:
//
//	Types   [t] stars ✓   [p] planets ✓   [m] moons ✗   [n] nebulae ✓
//	Sectors [0]✓ [1]✓ [2]✗ [3]✓
func RenderFilterPanel(snap state.Snapshot) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)

	var b strings.Builder

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", "Types")))
	var typeParts []string
	for _, tk := range typeKeys {
		spec := catalog.SpecFor(tk.typ)
		typeParts = append(typeParts, renderFacet("["+tk.key+"] "+spec.Plural, snap.TypeEnabled[tk.typ]))
	}
	b.WriteString(strings.Join(typeParts, "   "))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(fmt.Sprintf("%-8s", "Sectors")))
	sectors := make([]int, 0, len(snap.SectorEnabled))
	for s := range snap.SectorEnabled {
		sectors = append(sectors, s)
	}
	sort.Ints(sectors)
	if len(sectors) == 0 {
		b.WriteString(dimStyle.Render("none"))
	} else {
		var secParts []string
		for _, s := range sectors {
			secParts = append(secParts, renderFacet(fmt.Sprintf("[%d]", s), snap.SectorEnabled[s]))
		}
		b.WriteString(strings.Join(secParts, " "))
	}

	return b.String()
}

// renderFacet renders one toggle with its on/off mark.
func renderFacet(label string, on bool) string {
	if on {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFacetOn))
		return style.Render(label + " ✓")
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(colorFacetOff))
	return style.Render(label + " ✗")
}

// RenderDetailPanel renders the selected entity card, or a hint when
// nothing is selected.
func RenderDetailPanel(snap state.Snapshot) string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	if snap.Selected == nil {
		return dimStyle.Render("Nothing selected. Click an object to inspect it.")
	}

	headerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	h := snap.Selected
	e := h.Entity

	kind := "proxy"
	if h.Detailed {
		kind = fmt.Sprintf("detailed (%d parts)", len(h.Parts))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("◆ " + e.Name))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Type: "))
	b.WriteString(valueStyle.Render(e.Type.String()))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Sector: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%d", e.Sector)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Visual: "))
	b.WriteString(valueStyle.Render(kind))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Pos: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("(%.1f, %.1f, %.1f)", e.Pos.X, e.Pos.Y, e.Pos.Z)))
	b.WriteString("  ")
	b.WriteString(labelStyle.Render("Distance: "))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.1f ly", e.Distance)))
	if e.Constellation != "" {
		b.WriteString("  ")
		b.WriteString(labelStyle.Render("Constellation: "))
		b.WriteString(valueStyle.Render(e.Constellation))
	}

	return b.String()
}

// RenderEventLine renders the most recent resolution event, if any.
func RenderEventLine(events []state.Event) string {
	if len(events) == 0 {
		return ""
	}

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

	e := events[len(events)-1]
	line := fmt.Sprintf("%s %s %s", e.Timestamp.Format("15:04:05"), e.Type, e.Entity)
	if e.Detail != "" {
		line += " (" + e.Detail + ")"
	}

	if e.Type == state.EventDetailed {
		return dimStyle.Render(line)
	}
	return warnStyle.Render(line)
}
