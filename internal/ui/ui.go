// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-atlas/internal/astro"
	"github.com/litescript/ls-atlas/internal/camera"
	"github.com/litescript/ls-atlas/internal/catalog"
	"github.com/litescript/ls-atlas/internal/logging"
	"github.com/litescript/ls-atlas/internal/scene"
	"github.com/litescript/ls-atlas/internal/state"
	"github.com/litescript/ls-atlas/internal/version"
)

// Default interval for the camera frame clock. Auto-rotation advances
// once per frame; a tick during a drag is a no-op.
const defaultFrameInterval = 50 * time.Millisecond

// Header and footer line counts, used to size the canvas and to
// translate mouse rows into canvas coordinates.
const (
	headerLines = 3
	footerLines = 8
)

// Msg types for Bubble Tea
type (
	// FrameMsg is the camera frame clock.
	FrameMsg time.Time

	// ResolvedMsg carries one visual resolution outcome from the
	// background loader.
	ResolvedMsg struct {
		Outcome scene.Outcome
	}

	// ResolveDoneMsg signals that every catalog entity has been
	// resolved.
	ResolveDoneMsg struct{}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	session *state.Manager
	nav     *camera.Navigator
	log     *logging.Logger

	// UI state
	width  int
	height int
	ready  bool

	// Pointer drag tracking. A press that never travels more than one
	// cell before release counts as a click and triggers a pick.
	mouseDown bool
	lastX     int
	lastY     int
	dragDist  int

	// Sub-model
	orbit OrbitModel

	// Data snapshot (refreshed each frame)
	snapshot state.Snapshot

	frameInterval time.Duration
}

// New creates a new root UI model.
func New(session *state.Manager, nav *camera.Navigator, log *logging.Logger) Model {
	if log == nil {
		log = logging.Discard()
	}
	return Model{
		session:       session,
		nav:           nav,
		log:           log.With("ui"),
		orbit:         NewOrbitModel(),
		snapshot:      session.Snapshot(),
		frameInterval: defaultFrameInterval,
	}
}

// SetFrameInterval overrides the camera frame clock interval.
func (m Model) SetFrameInterval(d time.Duration) Model {
	if d > 0 {
		m.frameInterval = d
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.frameInterval)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.orbit = m.orbit.SetSize(msg.Width, m.canvasHeight())

	case FrameMsg:
		cmds = append(cmds, frameCmd(m.frameInterval))
		m.nav.Advance()
		m.refresh()

	case ResolvedMsg:
		if err := m.session.Record(msg.Outcome); err != nil {
			m.log.Warn("record outcome for %s: %v", msg.Outcome.Entity.ID, err)
		}
		m.refresh()

	case ResolveDoneMsg:
		m.refresh()
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		m.session.ToggleType(catalog.TypeStar)
	case "p":
		m.session.ToggleType(catalog.TypePlanet)
	case "m":
		m.session.ToggleType(catalog.TypeMoon)
	case "n":
		m.session.ToggleType(catalog.TypeNebula)

	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.session.ToggleSector(int(msg.String()[0] - '0'))

	case "+", "=":
		m.session.SetScale(m.session.ScaleFactor() * 1.25)
	case "-", "_":
		m.session.SetScale(m.session.ScaleFactor() / 1.25)

	case "a":
		m.nav.ToggleAutoRotate()
	case ">", ".":
		m.nav.SetRotationSpeed(m.nav.RotationSpeed() * 1.25)
	case "<", ",":
		m.nav.SetRotationSpeed(m.nav.RotationSpeed() / 1.25)

	case "r":
		m.nav.Reset()

	case "esc":
		m.session.ClearSelection()
	}

	m.refresh()
	return m, nil
}

// handleMouse drives the camera drag state machine and click picking.
func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.nav.Zoom(1)
		case tea.MouseButtonWheelDown:
			m.nav.Zoom(-1)
		case tea.MouseButtonLeft:
			m.mouseDown = true
			m.lastX, m.lastY = msg.X, msg.Y
			m.dragDist = 0
			m.nav.BeginDrag()
		}

	case tea.MouseActionMotion:
		if !m.mouseDown {
			return
		}
		dx := msg.X - m.lastX
		dy := msg.Y - m.lastY
		m.lastX, m.lastY = msg.X, msg.Y
		m.dragDist += abs(dx) + abs(dy)
		m.nav.Drag(dx, dy)

	case tea.MouseActionRelease:
		if !m.mouseDown {
			return
		}
		m.mouseDown = false
		m.nav.EndDrag()
		if m.dragDist <= 1 {
			m.pickAt(msg.X, msg.Y)
		}
	}

	m.refresh()
}

// pickAt resolves a click against the scene and updates the selection.
// A miss leaves the current selection alone; esc clears it explicitly.
func (m *Model) pickAt(x, y int) {
	cy := y - headerLines
	vp := scene.Viewport{Width: m.width, Height: m.canvasHeight()}
	if cy < 0 || cy >= vp.Height || vp.Width <= 0 {
		return
	}

	view := m.sceneView()
	if hit := m.session.Pick(x, cy, vp, view); hit != nil {
		m.session.Select(hit.Entity.ID)
		m.log.Debug("picked %s", hit.Entity.ID)
	}
}

// sceneView builds the projection the canvas renders with; picking
// must go through the same one.
func (m Model) sceneView() astro.View {
	return astro.NewView(m.nav.Pos(), astro.DefaultFOVDeg, m.orbit.Aspect())
}

func (m *Model) refresh() {
	m.snapshot = m.session.Snapshot()
	m.orbit = m.orbit.
		UpdateData(m.snapshot).
		UpdateCamera(m.nav.Pos(), m.nav.Mode(), m.nav.RotationSpeed())
}

func (m Model) canvasHeight() int {
	h := m.height - headerLines - footerLines
	if h < 5 {
		h = 5
	}
	return h
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 60 || m.height < 18 {
		return fmt.Sprintf("Terminal too small (%dx%d), need at least 60x18", m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString(m.orbit.View())
	b.WriteString("\n")
	b.WriteString(m.orbit.renderHUD())
	b.WriteString("\n")
	b.WriteString(RenderFilterPanel(m.snapshot))
	b.WriteString("\n")
	b.WriteString(RenderDetailPanel(m.snapshot))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	title := titleStyle.Render("  LS-ATLAS")
	tag := muted.Render(fmt.Sprintf("  Celestial Catalog Explorer · v%s", version.Version))
	return title + "\n" + tag + "\n\n"
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	help := dimStyle.Render("drag: orbit | wheel: zoom | click: select | t/p/m/n 0-9: filter | +/-: scale | a: spin | </>: speed | r: reset | q: quit")

	event := RenderEventLine(m.snapshot.Events)
	if event == "" {
		return "  " + help
	}
	return "  " + event + "\n  " + help
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// SendOutcome creates a command that delivers a resolution outcome to
// the UI.
func SendOutcome(o scene.Outcome) tea.Cmd {
	return func() tea.Msg {
		return ResolvedMsg{Outcome: o}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
