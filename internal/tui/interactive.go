package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/reactionnet/internal/catalog"
	"github.com/san-kum/reactionnet/internal/config"
	"github.com/san-kum/reactionnet/internal/network"
	"github.com/san-kum/reactionnet/internal/temperature"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

type uiState int

const (
	stateConfig uiState = iota
	stateSim
)

// model is the bubbletea model driving the config-edit -> catalog-load ->
// live-run flow; the catalog is loaded when a run is started.
type model struct {
	state uiState

	cfg         *config.Config
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	net       *network.Network
	temp      temperature.Model
	tau       float64
	running   bool
	paused    bool
	speed     float64
	lastFrame time.Time

	track   []int64
	history map[int64][]float64

	loadErr error

	width, height int
}

// NewInteractiveApp returns a model pre-loaded with cfg (typically
// config.DefaultConfig()).
func NewInteractiveApp(cfg *config.Config) *model {
	return &model{
		state:      stateConfig,
		cfg:        cfg,
		paramNames: []string{"tau0", "t0", "dtau", "tauf"},
		speed:      1.0,
		history:    make(map[int64][]float64),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.state != stateSim {
			return m, nil
		}
		if m.running && !m.paused {
			steps := int(m.speed)
			if steps < 1 {
				steps = 1
			}
			for i := 0; i < steps; i++ {
				m.step()
			}
		}
		if m.running {
			return m, tick()
		}
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateConfig:
		return m.configKey(msg)
	case stateSim:
		return m.simKey(msg)
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.setParam(m.paramNames[m.paramCursor], val)
			m.editing = false
			m.editBuf = ""
		case "escape":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if len(msg.String()) == 1 {
				c := msg.String()[0]
				if (c >= '0' && c <= '9') || c == '.' || c == '-' {
					m.editBuf += string(c)
				}
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.4f", m.paramValue(m.paramNames[m.paramCursor]))
	case "s":
		if err := m.start(); err != nil {
			m.loadErr = err
			return m, nil
		}
		m.state = stateSim
		return m, tea.Batch(tea.ClearScreen, tick())
	}
	return m, nil
}

func (m model) simKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.running = false
		m.state = stateConfig
		return m, tea.ClearScreen
	case " ", "p":
		m.paused = !m.paused
	case "+", "=":
		if m.speed < 64 {
			m.speed *= 2
		}
	case "-", "_":
		if m.speed > 0.25 {
			m.speed /= 2
		}
	case "0":
		m.speed = 1.0
	}
	return m, nil
}

func (m *model) paramValue(name string) float64 {
	switch name {
	case "tau0":
		return m.cfg.Tau0
	case "t0":
		return m.cfg.T0
	case "dtau":
		return m.cfg.Dtau
	case "tauf":
		return m.cfg.Tauf
	}
	return 0
}

func (m *model) setParam(name string, val float64) {
	switch name {
	case "tau0":
		m.cfg.Tau0 = val
	case "t0":
		m.cfg.T0 = val
	case "dtau":
		m.cfg.Dtau = val
	case "tauf":
		m.cfg.Tauf = val
	}
}

func (m *model) start() error {
	net, err := catalog.Load(m.cfg.ParticleDatasheet, m.cfg.DecaysDatasheet)
	if err != nil {
		return err
	}
	temp, err := m.cfg.BuildTemperatureModel()
	if err != nil {
		return err
	}

	m.net = net
	m.temp = temp
	m.track = m.cfg.Track
	if len(m.track) == 0 {
		for _, p := range net.Particles() {
			m.track = append(m.track, p.PID)
			if len(m.track) >= 4 {
				break
			}
		}
	}

	m.tau = m.cfg.Tau0
	m.net.InitializeSystem(m.cfg.Tau0, m.temp.Temperature(m.cfg.Tau0))
	m.history = make(map[int64][]float64)
	m.running = true
	m.paused = false
	m.speed = 1.0
	return nil
}

func (m *model) step() {
	if m.tau >= m.cfg.Tauf {
		m.paused = true
		return
	}
	t := m.temp.Temperature(m.tau)
	m.net.TimeStep(m.cfg.Dtau, t)
	m.tau += m.cfg.Dtau

	for _, pid := range m.track {
		d, err := m.net.GetParticleDensity(pid)
		if err != nil {
			continue
		}
		hist := append(m.history[pid], d)
		if len(hist) > 80 {
			hist = hist[1:]
		}
		m.history[pid] = hist
	}
}

func (m model) View() string {
	switch m.state {
	case stateConfig:
		return m.viewConfig()
	case stateSim:
		return m.viewSim()
	}
	return ""
}

func (m model) viewConfig() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("r e a c t i o n n e t") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	b.WriteString("      " + dim.Render(m.cfg.ParticleDatasheet) + "\n")
	b.WriteString("      " + dim.Render(m.cfg.DecaysDatasheet) + "\n\n")

	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.4f", m.paramValue(name))
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + "\n")
		}
	}

	if m.loadErr != nil {
		b.WriteString("\n      " + yellow.Render(m.loadErr.Error()) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  enter edit  s start  q quit") + "\n")
	return b.String()
}

func (m model) viewSim() string {
	var b strings.Builder

	statusIcon := green.Render("●")
	statusText := green.Render("running")
	if m.paused {
		statusIcon = yellow.Render("○")
		statusText = yellow.Render("paused")
	}
	b.WriteString(fmt.Sprintf("\n   %s %s  %s\n", statusIcon, cyan.Render("reactionnet"), statusText))

	progress := (m.tau - m.cfg.Tau0) / (m.cfg.Tauf - m.cfg.Tau0)
	if progress > 1 {
		progress = 1
	}
	barWidth := 36
	filled := int(progress * float64(barWidth))
	timeStr := fmt.Sprintf("tau=%.2f/%.2f fm/c", m.tau, m.cfg.Tauf)
	bar := cyan.Render(strings.Repeat("━", filled)) + dimmer.Render(strings.Repeat("─", barWidth-filled))
	b.WriteString(fmt.Sprintf("   %s %s  %s\n\n", bar, dim.Render(timeStr), dim.Render(fmt.Sprintf("x%.2f", m.speed))))

	for _, pid := range m.track {
		hist := m.history[pid]
		density := 0.0
		if len(hist) > 0 {
			density = hist[len(hist)-1]
		}
		spark := sparkline(hist, 40)
		b.WriteString(fmt.Sprintf("   %s %s  %s\n",
			dim.Render(fmt.Sprintf("pid=%-8d", pid)),
			cyan.Render(spark),
			white.Render(fmt.Sprintf("%.6e fm^-3", density))))
	}

	b.WriteString("\n" + dim.Render("   space pause  +/- speed  q back") + "\n")
	return b.String()
}

func sparkline(data []float64, width int) string {
	if len(data) == 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	rang := maxVal - minVal
	if rang == 0 {
		rang = 1
	}
	step := len(data) / width
	if step < 1 {
		step = 1
	}
	var sb strings.Builder
	for i := 0; i < width && i*step < len(data); i++ {
		v := data[i*step]
		idx := int((v - minVal) / rang * 7)
		if idx > 7 {
			idx = 7
		}
		if idx < 0 {
			idx = 0
		}
		sb.WriteRune(chars[idx])
	}
	return sb.String()
}

// RunInteractive launches the TUI with cfg as the initial configuration.
func RunInteractive(cfg *config.Config) error {
	p := tea.NewProgram(NewInteractiveApp(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
