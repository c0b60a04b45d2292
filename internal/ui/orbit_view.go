package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/camera"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/scene"
	"github.com/litescript/ls-atlas/internal/state"
)

// OrbitModel renders the catalog as a perspective orbit view.
type OrbitModel struct {
	width  int
	height int

	snapshot state.Snapshot
	eye      astro.Vec3
	camMode  camera.Mode
	camSpeed float64
}

// Depth beyond which colors have fully faded toward the background.
const shadeFarDepth = 900.0

// NewOrbitModel creates a new orbit view model.
func NewOrbitModel() OrbitModel {
	return OrbitModel{}
}

// SetSize updates the canvas size.
func (m OrbitModel) SetSize(width, height int) OrbitModel {
	m.width = width
	m.height = height
	return m
}

// UpdateData updates the model with a new session snapshot.
func (m OrbitModel) UpdateData(snapshot state.Snapshot) OrbitModel {
	m.snapshot = snapshot
	return m
}

// UpdateCamera updates the camera state used for projection.
func (m OrbitModel) UpdateCamera(eye astro.Vec3, mode camera.Mode, speed float64) OrbitModel {
	m.eye = eye
	m.camMode = mode
	m.camSpeed = speed
	return m
}

// Aspect returns the cell-corrected aspect ratio of the canvas.
// Terminal cells are roughly twice as tall as they are wide.
func (m OrbitModel) Aspect() float64 {
	if m.height <= 0 {
		return 1
	}
	return float64(m.width) * 0.5 / float64(m.height)
}

// View renders the orbit canvas.
func (m OrbitModel) View() string {
	if m.width < 20 || m.height < 5 {
		return "Terminal too small for orbit view"
	}

	grid := make([][]rune, m.height)
	colors := make([][]string, m.height)
	depth := make([][]float64, m.height)
	for y := range grid {
		grid[y] = make([]rune, m.width)
		colors[y] = make([]string, m.width)
		depth[y] = make([]float64, m.width)
		for x := range grid[y] {
			grid[y][x] = ' '
			depth[y][x] = math.Inf(1)
		}
	}

	view := astro.NewView(m.eye, astro.DefaultFOVDeg, m.Aspect())

	var selPos *[2]int
	for _, h := range m.snapshot.Handles {
		if !h.Visible {
			continue
		}
		selected := h.Entity.ID == m.snapshot.SelectedID && m.snapshot.SelectedID != ""
		for i := range h.Parts {
			m.drawPart(grid, colors, depth, view, h, i, selected)
		}
		if selected {
			if proj, ok := view.Project(h.Pos); ok {
				sx, sy := m.toCell(proj)
				if sx >= 0 && sx < m.width && sy >= 0 && sy < m.height {
					selPos = &[2]int{sx, sy}
				}
			}
		}
	}

	if selPos != nil {
		m.drawLabel(grid, colors, selPos[0], selPos[1], m.selectedName())
	}

	return renderColorGrid(grid, colors)
}

// toCell converts a projected point to cell coordinates. The mapping is
// the exact inverse of the pointer normalization used for picking.
func (m OrbitModel) toCell(p astro.ProjectedPoint) (int, int) {
	x := int((p.X + 1) / 2 * float64(m.width))
	y := int((1 - p.Y) / 2 * float64(m.height))
	return x, y
}

// drawPart rasterizes one sphere part as a filled disc with a depth
// buffer, so nearer parts occlude farther ones.
func (m OrbitModel) drawPart(grid [][]rune, colors [][]string, depthBuf [][]float64, view astro.View, h *scene.VisualHandle, i int, selected bool) {
	center := h.PartCenter(i)
	proj, ok := view.Project(center)
	if !ok {
		return
	}

	cx, cy := m.toCell(proj)

	// Apparent radius in cells along X, derived from the same
	// perspective divide the projection uses.
	tanHalf := math.Tan(astro.DefaultFOVDeg * math.Pi / 180 / 2)
	rx := h.Parts[i].Radius / (proj.Depth * tanHalf * m.Aspect()) * float64(m.width) / 2
	ry := rx * 0.5 // cell aspect correction
	if rx < 0.5 {
		rx = 0.5
	}
	if ry < 0.5 {
		ry = 0.5
	}

	glyph := typeGlyph(h.Entity.Type, selected)
	color := m.shade(h.Parts[i].Color, proj.Depth, catalog.SpecFor(h.Entity.Type).Emissive)

	for dy := -int(ry); dy <= int(ry); dy++ {
		for dx := -int(rx); dx <= int(rx); dx++ {
			fx := float64(dx) / rx
			fy := float64(dy) / ry
			if fx*fx+fy*fy > 1 {
				continue
			}
			x, y := cx+dx, cy+dy
			if x < 0 || x >= m.width || y < 0 || y >= m.height {
				continue
			}
			if proj.Depth >= depthBuf[y][x] {
				continue
			}
			depthBuf[y][x] = proj.Depth
			grid[y][x] = glyph
			colors[y][x] = color
		}
	}
}

// shade fades a part color toward the background with distance.
// Emissive bodies keep more of their own light.
func (m OrbitModel) shade(hex string, depth float64, emissive bool) string {
	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex("#888888")
	}

	t := depth / shadeFarDepth
	if t > 1 {
		t = 1
	}
	maxFade := 0.65
	if emissive {
		maxFade = 0.35
	}

	bg, _ := colorful.Hex("#0A0A14")
	return base.BlendLab(bg, t*maxFade).Hex()
}

func (m OrbitModel) selectedName() string {
	if m.snapshot.Selected != nil {
		return m.snapshot.Selected.Entity.Name
	}
	return ""
}

// drawLabel writes a focus label to the right of a glyph.
func (m OrbitModel) drawLabel(grid [][]rune, colors [][]string, x, y int, name string) {
	if name == "" {
		return
	}
	lx := x + 2
	for i, r := range []rune("◄ " + name) {
		cx := lx + i
		if cx >= m.width {
			break
		}
		if cx < 0 || y < 0 || y >= m.height {
			continue
		}
		grid[y][cx] = r
		colors[y][cx] = colorLabel
	}
}

// typeGlyph selects the fill glyph for a body.
func typeGlyph(t catalog.Type, selected bool) rune {
	switch t {
	case catalog.TypeStar:
		if selected {
			return '✸'
		}
		return '✦'
	case catalog.TypePlanet:
		if selected {
			return '◉'
		}
		return '●'
	case catalog.TypeMoon:
		if selected {
			return '◦'
		}
		return '•'
	case catalog.TypeNebula:
		if selected {
			return '▒'
		}
		return '░'
	default:
		return '?'
	}
}

// renderColorGrid converts the rune grid to a styled string. Styles are
// cached per color since most cells of a disc share one.
func renderColorGrid(grid [][]rune, colors [][]string) string {
	var b strings.Builder
	styles := make(map[string]lipgloss.Style)

	for y, row := range grid {
		for x, ch := range row {
			if ch == ' ' {
				b.WriteRune(ch)
				continue
			}
			c := colors[y][x]
			if c == "" {
				b.WriteRune(ch)
				continue
			}
			style, ok := styles[c]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(c))
				styles[c] = style
			}
			b.WriteString(style.Render(string(ch)))
		}
		b.WriteRune('\n')
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// renderHUD renders the camera and progress line under the canvas.
func (m OrbitModel) renderHUD() string {
	var b strings.Builder

	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("135"))

	b.WriteString(dimStyle.Render("Camera:"))
	b.WriteString(accentStyle.Render(m.camMode.String()))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Radius:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.0f", m.eye.Norm())))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Spin:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2fx", m.camSpeed)))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Scale:"))
	b.WriteString(valueStyle.Render(fmt.Sprintf("%.2fx", m.snapshot.ScaleFactor)))
	b.WriteString("  ")

	snap := m.snapshot
	done := snap.Detailed + snap.Fallbacks + snap.Skipped
	b.WriteString(dimStyle.Render("Visuals:"))
	if snap.Done() {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%d detailed / %d proxy / %d skipped", snap.Detailed, snap.Fallbacks, snap.Skipped)))
	} else {
		b.WriteString(valueStyle.Render(fmt.Sprintf("resolving %d/%d", done, snap.Total)))
	}

	return b.String()
}
