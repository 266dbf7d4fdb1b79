package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/san-kum/sortviz/internal/algo"
	"github.com/san-kum/sortviz/internal/config"
	"github.com/san-kum/sortviz/internal/registry"
)

type mode int

const (
	modeMenu mode = iota
	modePlaying
	modeDone
)

// chromeRows is the number of terminal rows used by everything but the bars.
const chromeRows = 6

type TickMsg time.Time

type Model struct {
	reg      *registry.Registry
	log      logrus.FieldLogger
	theme    Theme
	frame    time.Duration
	mode     mode
	cursor   int
	autoplay bool
	status   string
	width    int
	height   int
}

// NewModel wraps reg in a driver using cfg for frame rate, theme and autoplay.
func NewModel(reg *registry.Registry, cfg *config.Config, log logrus.FieldLogger) Model {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return Model{
		reg:      reg,
		log:      log,
		theme:    GetTheme(cfg.Theme),
		frame:    cfg.FrameDuration(),
		mode:     modeMenu,
		cursor:   int(reg.Active()),
		autoplay: cfg.Autoplay,
		width:    80,
		height:   24,
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.frame, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case TickMsg:
		if m.mode == modePlaying && m.autoplay {
			if m.reg.RenderActive().Done {
				m.autoplay = false
				m.status = m.reg.Active().String() + " sorted"
			} else {
				m.apply(registry.StepCmd(0))
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if k := msg.String(); k == "ctrl+c" || k == "q" {
		return m, tea.Quit
	}
	switch m.mode {
	case modeMenu:
		return m.menuKey(msg), nil
	case modeDone:
		return m.doneKey(msg), nil
	default:
		return m.playKey(msg), nil
	}
}

func (m Model) menuKey(msg tea.KeyMsg) Model {
	kinds := m.reg.Kinds()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(kinds)-1 {
			m.cursor++
		}
	case "enter", "s", " ":
		m.apply(registry.SelectCmd(kinds[m.cursor]))
		m.mode = modePlaying
	}
	return m
}

func (m Model) doneKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "p", "enter":
		m.apply(registry.ResetCmd())
		m.mode = modePlaying
	case "esc", "m":
		m.mode = modeMenu
	}
	return m
}

func (m Model) playKey(msg tea.KeyMsg) Model {
	key := msg.String()
	if cmd, ok := commandKeys[key]; ok {
		if cmd.Op == registry.OpStep && m.reg.RenderActive().Done {
			m.mode = modeDone
			return m
		}
		m.apply(cmd)
		if cmd.Op == registry.OpSelect || cmd.Op == registry.OpNext {
			m.cursor = int(m.reg.Active())
		}
		return m
	}
	switch key {
	case "a":
		m.autoplay = !m.autoplay
	case "t":
		m.theme = NextTheme(m.theme)
		m.status = "theme " + m.theme.Name
	case "esc", "m":
		m.autoplay = false
		m.mode = modeMenu
	}
	return m
}

func (m *Model) apply(cmd registry.Command) {
	if err := m.reg.Apply(cmd); err != nil {
		m.log.WithError(err).WithField("op", cmd.Op).Warn("command rejected")
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m Model) View() string {
	switch m.mode {
	case modeMenu:
		return m.menuView()
	case modeDone:
		return m.doneView()
	default:
		return m.playView()
	}
}

func (m Model) styles() (title, text, muted, accent lipgloss.Style) {
	title = lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true)
	text = lipgloss.NewStyle().Foreground(m.theme.Text)
	muted = lipgloss.NewStyle().Foreground(m.theme.Muted)
	accent = lipgloss.NewStyle().Foreground(m.theme.Accent)
	return
}

func (m Model) center(s string) string {
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, s)
}

func (m Model) menuView() string {
	title, text, muted, accent := m.styles()
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(m.center(title.Render("Sorting Visualizer")) + "\n\n")
	for i, k := range m.reg.Kinds() {
		line := fmt.Sprintf("  %d  %-10s %s", i+1, k, muted.Render(k.Description()))
		if i == m.cursor {
			line = accent.Render("▸") + text.Render(line[1:])
		}
		b.WriteString(m.center(line) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.center(text.Render("(S) Start")) + "\n")
	b.WriteString(m.center(text.Render("(Q) Quit")) + "\n")
	return b.String()
}

func (m Model) barRows() int {
	rows := m.height - chromeRows
	if rows < 4 {
		rows = 4
	}
	return rows
}

func (m Model) playView() string {
	title, text, muted, accent := m.styles()
	state := m.reg.RenderActive()

	var b strings.Builder
	header := title.Render(strings.ToUpper(state.Kind.String()) + " SORT")
	if state.Done {
		header += "  " + accent.Render("sorted")
	} else if m.autoplay {
		header += "  " + text.Render("playing")
	}
	b.WriteString(header + "\n")
	b.WriteString(RenderBars(state, m.theme, m.barRows()) + "\n")

	cursors := make([]string, 0, len(state.Cursors))
	for _, c := range state.Cursors {
		cursors = append(cursors, fmt.Sprintf("%s=%d", c.Name, c.Index))
	}
	b.WriteString(text.Render(fmt.Sprintf("steps %d  comparisons %d  swaps %d  repeat ×%d",
		state.Stats.Steps, state.Stats.Comparisons, state.Stats.Swaps, m.reg.Repeat())))
	b.WriteString("  " + muted.Render(strings.Join(cursors, " ")) + "\n")

	if m.status != "" {
		b.WriteString(accent.Render(m.status) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(helpLine(muted))
	return b.String()
}

func (m Model) doneView() string {
	title, text, muted, _ := m.styles()
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(m.center(title.Render(strings.ToUpper(m.reg.Active().String())+" SORT COMPLETE")) + "\n\n")
	for _, k := range m.reg.Kinds() {
		e := m.reg.Engine(k)
		st := e.Stats()
		mark := " "
		if e.Done() {
			mark = "✓"
		}
		b.WriteString(m.center(text.Render(fmt.Sprintf("%s %-10s steps %6d  comparisons %6d  swaps %6d",
			mark, k, st.Steps, st.Comparisons, st.Swaps))) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.center(text.Render("(P) Play Again")) + "\n")
	b.WriteString(m.center(text.Render("(Q) Quit")) + "\n")
	b.WriteString(m.center(muted.Render("esc: menu")) + "\n")
	return b.String()
}

func helpLine(muted lipgloss.Style) string {
	parts := make([]string, len(playingHelp))
	for i, h := range playingHelp {
		parts[i] = h.keys + " " + h.desc
	}
	return muted.Render(strings.Join(parts, " · "))
}

// Active reports the algorithm the driver is showing.
func (m Model) Active() algo.Kind { return m.reg.Active() }
