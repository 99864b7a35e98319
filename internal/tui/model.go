// Package tui runs the scene in the terminal: a braille wireframe on the left
// and the tweak panel with recent log lines on the right.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/san-kum/dancecube/internal/anim"
	"github.com/san-kum/dancecube/internal/export"
	"github.com/san-kum/dancecube/internal/logger"
	"github.com/san-kum/dancecube/internal/panel"
	"github.com/san-kum/dancecube/internal/scene"
	"github.com/san-kum/dancecube/internal/viz"
)

const (
	panelWidth = 38
	logLines   = 5
	frameRate  = 60
	minCols    = 10
	minRows    = 4

	// RecordingPath is where the g key writes its GIF.
	RecordingPath = "dancecube.gif"
)

// TickMsg drives one animation frame.
type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/frameRate, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Model is the bubbletea model of the terminal view.
type Model struct {
	ctx      *scene.Context
	driver   *anim.Driver
	panel    *panel.Panel
	binding  *panel.SceneBinding
	canvas   *viz.Canvas
	renderer *viz.Renderer
	lines    *logger.Logger
	log      logr.Logger
	recorder *export.Recorder

	width, height int
	editing       bool
	editBuf       string
	status        string
	theme         int
}

// NewModel binds ctx to a panel and a braille renderer. lines may be nil.
func NewModel(ctx *scene.Context, settings anim.Settings, lines *logger.Logger, log logr.Logger) Model {
	canvas := viz.NewCanvas(80, 24)
	renderer := viz.NewRenderer(canvas)
	p := panel.New("dancecube", log)

	m := Model{
		ctx:      ctx,
		driver:   anim.NewDriver(ctx, renderer, settings, log),
		panel:    p,
		binding:  panel.BindScene(p, ctx),
		canvas:   canvas,
		renderer: renderer,
		lines:    lines,
		log:      log.WithName("tui"),
	}
	m.resize(80+panelWidth, 26)
	return m
}

func (m Model) Init() tea.Cmd { return tick() }

// Driver returns the animation driver of the view.
func (m Model) Driver() *anim.Driver { return m.driver }

// Panel returns the tweak panel of the view.
func (m Model) Panel() *panel.Panel { return m.panel }

// Canvas returns the braille canvas the scene is drawn on.
func (m Model) Canvas() *viz.Canvas { return m.canvas }

// Status returns the last message shown in the footer.
func (m Model) Status() string { return m.status }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		m.driver.Tick()
		if m.recorder != nil {
			m.recorder.Capture(m.canvas)
		}
		return m, tick()
	case tea.KeyMsg:
		if m.editing {
			return m.editKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recorder != nil {
			m.stopRecording()
		}
		return m, tea.Quit
	case "tab", "down", "j":
		m.panel.Next()
	case "shift+tab", "up", "k":
		m.panel.Prev()
	case "left":
		m.nudge(-1)
	case "right":
		m.nudge(1)
	case "shift+left":
		m.nudge(-10)
	case "shift+right":
		m.nudge(10)
	case "enter":
		if m.panel.Selected() != nil && !m.panel.Hidden {
			m.editing, m.editBuf = true, ""
			m.status = ""
		}
	case "h":
		m.panel.Toggle()
		m.resize(m.width, m.height)
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
	case "g":
		if m.recorder == nil {
			m.recorder = export.NewRecorder()
			m.status = "recording"
		} else {
			m.stopRecording()
		}
	}
	return m, nil
}

func (m Model) editKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.commitEdit()
		m.editing, m.editBuf = false, ""
	case tea.KeyEsc:
		m.editing, m.editBuf = false, ""
	case tea.KeyBackspace:
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyRunes:
		m.editBuf += string(msg.Runes)
	}
	return m, nil
}

func (m *Model) nudge(n int) {
	c := m.panel.Selected()
	if c == nil || c.Kind != panel.KindNumber || m.panel.Hidden {
		return
	}
	m.report(c.Nudge(n))
}

func (m *Model) commitEdit() {
	c := m.panel.Selected()
	if c == nil {
		return
	}
	input := strings.TrimSpace(m.editBuf)
	if c.Kind == panel.KindColor {
		if !strings.HasPrefix(input, "#") {
			input = "#" + input
		}
		m.report(c.SetColor(input))
		return
	}
	v, err := strconv.ParseFloat(input, 64)
	if err != nil {
		m.report(fmt.Errorf("%s/%s: invalid number %q", c.Folder, c.Name, input))
		return
	}
	m.report(c.Set(v))
}

func (m *Model) report(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m *Model) stopRecording() {
	rec := m.recorder
	m.recorder = nil
	if err := rec.Save(RecordingPath); err != nil {
		m.log.Error(err, "failed to save recording")
		m.report(err)
		return
	}
	m.log.Info("recording saved", "path", RecordingPath, "frames", rec.Len())
	m.status = fmt.Sprintf("saved %d frames to %s", rec.Len(), RecordingPath)
}

// resize fits the canvas into the terminal, leaving room for the panel and
// the header and footer lines.
func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	cols, rows := width, height-2
	if !m.panel.Hidden {
		cols -= panelWidth + 2
	}
	cols = max(cols, minCols)
	rows = max(rows, minRows)
	m.canvas.Resize(cols, rows)
	w, h := m.canvas.SubSize()
	m.ctx.Resize(w, h, 1)
}

func (m Model) View() string {
	theme := Themes[m.theme]

	header := theme.title().Render(m.panel.Title) + theme.muted().Render(fmt.Sprintf(
		"  t=%.1fs  frames=%d  tweens=%d  particles=%d",
		m.driver.Elapsed(), m.driver.Frames(), m.driver.Tweens().Active(), m.ctx.Particles.Params().Count))
	if m.recorder != nil {
		header += theme.errorText().Render(fmt.Sprintf("  ● REC %d", m.recorder.Len()))
	}

	body := m.canvas.Styled()
	if !m.panel.Hidden {
		body = lipgloss.JoinHorizontal(lipgloss.Top, strings.TrimSuffix(body, "\n"), m.viewPanel(theme))
	}

	footer := theme.muted().Render("tab/shift+tab select  ←/→ nudge  enter edit  h panel  t theme  g record  q quit")
	if m.editing {
		footer = theme.selected().Render("edit: " + m.editBuf + "_") + theme.muted().Render("  enter apply  esc cancel")
	} else if m.status != "" {
		footer = theme.errorText().Render(m.status)
	}

	return header + "\n" + body + "\n" + footer
}

func (m Model) viewPanel(theme Theme) string {
	var sb strings.Builder
	folder := ""
	for i, c := range m.panel.Controls() {
		if c.Folder != folder {
			folder = c.Folder
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(theme.title().Render(folder) + "\n")
		}

		value := c.String()
		if m.editing && i == m.panel.Cursor() {
			value = m.editBuf + "_"
		}
		line := fmt.Sprintf("%-14s %s", c.Name, value)
		if c.Kind == panel.KindColor {
			line += " " + swatch(c.Color())
		}
		if i == m.panel.Cursor() {
			sb.WriteString(theme.selected().Render("▸ "+line) + "\n")
		} else {
			sb.WriteString(theme.text().Render("  "+line) + "\n")
		}
	}

	if m.lines != nil {
		sb.WriteString("\n" + theme.title().Render("log") + "\n")
		for _, l := range m.lines.Tail(logLines) {
			if len(l) > panelWidth-2 {
				l = l[:panelWidth-2]
			}
			sb.WriteString(theme.muted().Render(l) + "\n")
		}
	}

	return theme.box(panelWidth).Render(strings.TrimSuffix(sb.String(), "\n"))
}

// Run starts the terminal view on the alternate screen and blocks until the
// user quits.
func Run(ctx *scene.Context, settings anim.Settings, lines *logger.Logger, log logr.Logger) error {
	p := tea.NewProgram(NewModel(ctx, settings, lines, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
