// Package player hosts the interactive terminal playback of a built
// sequence. Frames are already rasterized, so the loop only advances an
// index; no propagation happens here.
package player

import (
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/astrokit/stardrift/internal/animate"
	"github.com/astrokit/stardrift/internal/export"
	"github.com/astrokit/stardrift/internal/kinematics"
	"github.com/astrokit/stardrift/internal/render"
)

type TickMsg time.Time

type styles struct {
	canvas lipgloss.Style
	stats  lipgloss.Style
	header lipgloss.Style
	label  lipgloss.Style
	value  lipgloss.Style
	graph  lipgloss.Style
	help   lipgloss.Style
}

func newStyles(th Theme) styles {
	return styles{
		canvas: lipgloss.NewStyle().Padding(1, 2),
		stats: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(th.Muted).Padding(1, 2).Width(42),
		header: lipgloss.NewStyle().Foreground(th.Primary).Bold(true).MarginBottom(1),
		label:  lipgloss.NewStyle().Foreground(th.Muted).Width(10),
		value:  lipgloss.NewStyle().Foreground(th.Text),
		graph:  lipgloss.NewStyle().Foreground(th.Secondary).Padding(1, 0),
		help:   lipgloss.NewStyle().Foreground(th.Muted).MarginTop(1),
	}
}

// Model plays a sequence frame by frame and owns the UI chrome.
type Model struct {
	seq     *animate.Sequence
	palette render.Palette
	stars   int

	frame    int
	playing  bool
	theme    Theme
	st       styles
	showHelp bool
	notice   string

	// Output targets for the g and s keys.
	GIFPath string
	SVGPath string
}

func NewModel(seq *animate.Sequence, pal render.Palette, stars int, themeName string) Model {
	th := GetTheme(themeName)
	return Model{
		seq:     seq,
		palette: pal,
		stars:   stars,
		playing: true,
		theme:   th,
		st:      newStyles(th),
		GIFPath: "stardrift.gif",
		SVGPath: "stardrift_frame.svg",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(m.seq.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.playing = !m.playing
		case "r":
			m.frame = 0
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "t":
			m.cycleTheme()
		case "g":
			m.saveGIF()
		case "s":
			m.saveSVG()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.playing && m.seq.Len() > 0 {
			m.frame = (m.frame + 1) % m.seq.Len()
		}
		return m, tea.Tick(m.seq.Interval(), func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

// scrub steps the playhead manually and pauses so the frame stays put.
func (m *Model) scrub(dir int) {
	m.playing = false
	m.frame += dir
	if m.frame < 0 {
		m.frame = 0
	}
	if m.frame >= m.seq.Len() {
		m.frame = m.seq.Len() - 1
	}
}

func (m *Model) cycleTheme() {
	names := ThemeNames()
	for i, name := range names {
		if name == m.theme.Name {
			m.theme = GetTheme(names[(i+1)%len(names)])
			m.st = newStyles(m.theme)
			return
		}
	}
}

func (m *Model) saveGIF() {
	f, err := os.Create(m.GIFPath)
	if err != nil {
		m.notice = "gif: " + err.Error()
		return
	}
	defer f.Close()
	if err := export.SequenceGIF(f, m.seq, m.palette); err != nil {
		m.notice = "gif: " + err.Error()
		return
	}
	m.notice = "wrote " + m.GIFPath
}

func (m *Model) saveSVG() {
	svg := export.SnapshotSVG(m.seq.Frame(m.frame), m.palette, 4)
	if err := os.WriteFile(m.SVGPath, []byte(svg), 0644); err != nil {
		m.notice = "svg: " + err.Error()
		return
	}
	m.notice = "wrote " + m.SVGPath
}

func (m Model) View() string {
	if m.seq.Len() == 0 {
		return "empty sequence\n"
	}

	snap := m.seq.Frame(m.frame)
	canvasView := m.st.canvas.Render(snap.Compose())

	status := "PLAYING"
	if !m.playing {
		status = "PAUSED"
	}

	var s strings.Builder
	s.WriteString(m.st.header.Render("STAR DRIFT") + "\n")
	s.WriteString(status + "\n\n")

	hist := m.seq.MeanDistances()[:m.frame+1]
	if len(hist) > 1 {
		chart := asciigraph.Plot(hist,
			asciigraph.Height(4), asciigraph.Width(30),
			asciigraph.Caption("Mean distance (pc)"))
		s.WriteString(m.st.graph.Render(chart) + "\n\n")
	}

	offset := m.seq.Offset(m.frame)
	epoch := kinematics.Epoch(m.seq.Epoch(), offset)
	s.WriteString(m.st.label.Render("Frame") + m.st.value.Render(fmt.Sprintf("%d/%d", m.frame+1, m.seq.Len())) + "\n")
	s.WriteString(m.st.label.Render("Offset") + m.st.value.Render(fmt.Sprintf("%+g yr", float64(offset))) + "\n")
	s.WriteString(m.st.label.Render("Epoch") + m.st.value.Render(epoch.Format("2006-01-02")) + "\n")
	s.WriteString(m.st.label.Render("Scale") + m.st.value.Render(m.seq.Scale().String()) + "\n")
	s.WriteString(m.st.label.Render("Stars") + m.st.value.Render(fmt.Sprintf("%d", m.stars)) + "\n")
	s.WriteString(m.st.label.Render("Theme") + m.st.value.Render(m.theme.Name) + "\n")
	if m.notice != "" {
		s.WriteString("\n" + m.st.value.Render(m.notice) + "\n")
	}
	s.WriteString(m.st.help.Render("\n─────────────────────\nSP:Pause R:Rewind Q:Quit\nT:Theme G:GIF S:SVG\n[ ]:Scrub ?:Help"))

	statsView := m.st.stats.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return helpOverlay + "\n\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume playback    ║
║  R        - Rewind to frame zero     ║
║  Q        - Quit                     ║
║  [        - Step one frame back      ║
║  ]        - Step one frame forward   ║
║  G        - Save animated GIF        ║
║  S        - Save current frame SVG   ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`
