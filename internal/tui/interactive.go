package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/beamlab/internal/beam"
	"github.com/san-kum/beamlab/internal/diagram"
	"github.com/san-kum/beamlab/internal/metrics"
	"github.com/san-kum/beamlab/internal/quiz"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var menuInfo = map[string]string{
	"explore": "adjust loads, watch the diagrams move",
	"quiz":    "solve for the reactions",
}

type state int

const (
	stateMenu state = iota
	stateConfig
	stateView
	stateQuiz
)

// Parameter step sizes for left/right adjustment.
var paramSteps = map[string]float64{
	"length":    0.5,
	"P":         5.0,
	"x":         0.5,
	"w":         1.0,
	"udl start": 0.5,
	"udl end":   0.5,
	"samples":   50,
}

type model struct {
	state  state
	cursor int
	menu   []string

	params      map[string]float64
	paramNames  []string
	paramCursor int
	editing     bool
	editBuf     string

	bm       *beam.Beam
	res      *beam.Result
	solveErr error
	mmaxHist []float64

	session   *quiz.Session
	answers   [2]string
	answerCur int
	verdict   *quiz.Verdict
	solved    *beam.Result

	width  int
	height int
}

func NewInteractiveApp() *model {
	return &model{
		state: stateMenu,
		menu:  []string{"explore", "quiz"},
		params: map[string]float64{
			"length": 10, "P": 100, "x": 5,
			"w": 0, "udl start": 0, "udl end": 0,
			"samples": float64(beam.DefaultSamples),
		},
		paramNames: []string{"length", "P", "x", "w", "udl start", "udl end", "samples"},
		mmaxHist:   make([]float64, 0, 60),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		return m.menuKey(msg)
	case stateConfig:
		return m.configKey(msg)
	case stateView:
		return m.viewKey(msg)
	case stateQuiz:
		return m.quizKey(msg)
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.menu)-1 {
			m.cursor++
		}
	case "enter", " ":
		switch m.menu[m.cursor] {
		case "explore":
			m.state = stateConfig
			m.paramCursor = 0
		case "quiz":
			m.startQuiz()
			m.state = stateQuiz
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m model) configKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.editing {
		switch msg.String() {
		case "enter":
			var val float64
			fmt.Sscanf(m.editBuf, "%f", &val)
			m.params[m.paramNames[m.paramCursor]] = val
			m.clampParams()
			m.editing = false
			m.editBuf = ""
			m.solve()
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
	case "q", "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	case "enter":
		m.editing = true
		m.editBuf = fmt.Sprintf("%.2f", m.params[m.paramNames[m.paramCursor]])
	case "left", "h":
		name := m.paramNames[m.paramCursor]
		m.params[name] -= paramSteps[name]
		m.clampParams()
		m.solve()
	case "right", "l":
		name := m.paramNames[m.paramCursor]
		m.params[name] += paramSteps[name]
		m.clampParams()
		m.solve()
	case "v", "s":
		m.solve()
		if m.solveErr == nil {
			m.state = stateView
			return m, tea.ClearScreen
		}
	}
	return m, nil
}

func (m model) viewKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape", "c":
		m.state = stateConfig
		return m, tea.ClearScreen
	case "left", "h", "right", "l":
		// Live adjustment of the selected parameter from the view.
		name := m.paramNames[m.paramCursor]
		step := paramSteps[name]
		if msg.String() == "left" || msg.String() == "h" {
			step = -step
		}
		m.params[name] += step
		m.clampParams()
		m.solve()
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(m.paramNames)-1 {
			m.paramCursor++
		}
	}
	return m, nil
}

func (m model) quizKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "q", "escape":
		m.state = stateMenu
		return m, tea.ClearScreen
	case "tab", "up", "down", "k", "j":
		m.answerCur = 1 - m.answerCur
	case "n":
		m.session.Renew()
		m.answers = [2]string{"", ""}
		m.answerCur = 0
		m.verdict = nil
		m.solved = nil
		return m, tea.ClearScreen
	case "enter":
		var ra, rb float64
		fmt.Sscanf(m.answers[0], "%f", &ra)
		fmt.Sscanf(m.answers[1], "%f", &rb)
		v := m.session.Submit(ra, rb)
		m.verdict = &v
		if v.Correct() {
			// Diagrams stay hidden until the answer is right.
			res, err := m.session.Problem().Solve(int(m.params["samples"]))
			if err == nil {
				m.solved = res
			}
		}
	case "backspace":
		if len(m.answers[m.answerCur]) > 0 {
			m.answers[m.answerCur] = m.answers[m.answerCur][:len(m.answers[m.answerCur])-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' || c == '-' {
				m.answers[m.answerCur] += string(c)
			}
		}
	}
	return m, nil
}

// clampParams keeps the parameter set inside valid geometry so the
// solver never sees a bad beam from stepping.
func (m *model) clampParams() {
	if m.params["length"] < 1 {
		m.params["length"] = 1
	}
	L := m.params["length"]
	if m.params["x"] < 0 {
		m.params["x"] = 0
	}
	if m.params["x"] > L {
		m.params["x"] = L
	}
	if m.params["P"] < 0 {
		m.params["P"] = 0
	}
	if m.params["w"] < 0 {
		m.params["w"] = 0
	}
	if m.params["udl start"] < 0 {
		m.params["udl start"] = 0
	}
	if m.params["udl start"] > L {
		m.params["udl start"] = L
	}
	if m.params["udl end"] < m.params["udl start"] {
		m.params["udl end"] = m.params["udl start"]
	}
	if m.params["udl end"] > L {
		m.params["udl end"] = L
	}
	if m.params["samples"] < 2 {
		m.params["samples"] = 2
	}
	if m.params["samples"] > 5000 {
		m.params["samples"] = 5000
	}
}

func (m *model) solve() {
	b, err := beam.New(m.params["length"])
	if err != nil {
		m.solveErr = err
		return
	}
	if p := m.params["P"]; p != 0 {
		if err := b.AddPointLoad(p, m.params["x"]); err != nil {
			m.solveErr = err
			return
		}
	}
	if w := m.params["w"]; w != 0 && m.params["udl end"] > m.params["udl start"] {
		if err := b.AddUDL(w, m.params["udl start"], m.params["udl end"]); err != nil {
			m.solveErr = err
			return
		}
	}
	res, err := b.Solve(int(m.params["samples"]))
	if err != nil {
		m.solveErr = err
		return
	}
	m.bm = b
	m.res = res
	m.solveErr = nil

	maxM := &metrics.MaxMoment{}
	metrics.Collect(res.Profile, maxM)
	m.mmaxHist = append(m.mmaxHist, maxM.Value())
	if len(m.mmaxHist) > 60 {
		m.mmaxHist = m.mmaxHist[1:]
	}
}

func (m *model) startQuiz() {
	if m.session == nil {
		m.session = quiz.NewSession(time.Now().UnixNano())
	}
	m.session.Renew()
	m.answers = [2]string{"", ""}
	m.answerCur = 0
	m.verdict = nil
	m.solved = nil
}

func (m model) View() string {
	switch m.state {
	case stateMenu:
		return m.viewMenu()
	case stateConfig:
		return m.viewConfig()
	case stateView:
		return m.viewDiagrams()
	case stateQuiz:
		return m.viewQuiz()
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("           " + cyan.Render("b e a m l a b") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("\n")

	for i, name := range m.menu {
		desc := menuInfo[name]
		if i == m.cursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + dim.Render(desc) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dimmer.Render(desc) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select   enter start   q quit") + "\n")

	return b.String()
}

func (m model) viewConfig() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("      " + cyan.Render("simply supported beam") + "\n")
	b.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	units := map[string]string{
		"length": "m", "P": "kN", "x": "m",
		"w": "kN/m", "udl start": "m", "udl end": "m", "samples": "",
	}
	for i, name := range m.paramNames {
		val := fmt.Sprintf("%8.2f", m.params[name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"▋")
		}
		unit := units[name]
		if i == m.paramCursor {
			b.WriteString("      " + cyan.Render("▸ ") + white.Render(fmt.Sprintf("%-10s", name)) + magenta.Render(val) + " " + dim.Render(unit) + "\n")
		} else {
			b.WriteString("        " + dim.Render(fmt.Sprintf("%-10s", name)) + dim.Render(val) + " " + dimmer.Render(unit) + "\n")
		}
	}

	if m.solveErr != nil {
		b.WriteString("\n      " + red.Render(m.solveErr.Error()) + "\n")
	} else if m.res != nil {
		b.WriteString("\n      " + dim.Render("Ra=") + white.Render(fmt.Sprintf("%.2f", m.res.Reactions.Ra)) +
			dim.Render("  Rb=") + white.Render(fmt.Sprintf("%.2f", m.res.Reactions.Rb)) + dim.Render(" kN") + "\n")
	}
	if len(m.mmaxHist) > 1 {
		b.WriteString("      " + dim.Render("Mmax ") + cyan.Render(sparkline(m.mmaxHist, 24)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(dim.Render("      ↑↓ select  ←→ adjust  enter edit  v view  esc back") + "\n")

	return b.String()
}

func (m model) viewDiagrams() string {
	if m.res == nil || m.bm == nil {
		return "\n      " + dim.Render("nothing solved yet") + "\n"
	}

	pw := m.width - 20
	if pw < 40 {
		pw = 40
	}
	if pw > 100 {
		pw = 100
	}
	ph := (m.height - 16) / 2
	if ph < 6 {
		ph = 6
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(diagram.FBDWidth(m.bm, &m.res.Reactions, pw))
	b.WriteString("\n")
	b.WriteString(diagram.SFD(m.res.Profile, pw, ph))
	b.WriteString("\n\n")
	b.WriteString(diagram.BMD(m.res.Profile, pw, ph))
	b.WriteString("\n\n")

	maxV := &metrics.MaxShear{}
	maxM := &metrics.MaxMoment{}
	metrics.Collect(m.res.Profile, maxV, maxM)
	b.WriteString(fmt.Sprintf("   %s%s   %s%s %s\n",
		dim.Render("|V|max="), white.Render(fmt.Sprintf("%.2f kN", maxV.Value())),
		dim.Render("Mmax="), white.Render(fmt.Sprintf("%.2f kN·m", maxM.Value())),
		dim.Render(fmt.Sprintf("at x=%.2f m", maxM.At()))))

	name := m.paramNames[m.paramCursor]
	b.WriteString("\n" + dim.Render(fmt.Sprintf("   ←→ adjust %s (%.2f)  ↑↓ pick param  esc back", name, m.params[name])) + "\n")

	return b.String()
}

func (m model) viewQuiz() string {
	p := m.session.Problem()

	b, err := beam.New(p.Length)
	if err == nil {
		_ = b.AddPointLoad(p.Load, p.Position)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("      " + cyan.Render("reaction quiz") + "  " +
		dim.Render(fmt.Sprintf("%d/%d correct", m.session.Correct, m.session.Attempts)) + "\n")
	sb.WriteString(dimmer.Render("      "+strings.Repeat("─", 34)) + "\n\n")

	sb.WriteString("      " + white.Render(fmt.Sprintf("L = %.0f m,  P = %.0f kN at x = %.0f m", p.Length, p.Load, p.Position)) + "\n\n")
	if b != nil {
		sb.WriteString(diagram.FBDWidth(b, nil, 50))
	}
	sb.WriteString("\n")

	labels := [2]string{"Ra", "Rb"}
	for i, label := range labels {
		field := m.answers[i]
		if i == m.answerCur {
			sb.WriteString("      " + cyan.Render("▸ ") + white.Render(label+" = ") + magenta.Render(field+"▋") + dim.Render(" kN") + "\n")
		} else {
			sb.WriteString("        " + dim.Render(label+" = "+field+" kN") + "\n")
		}
	}

	if m.verdict != nil {
		sb.WriteString("\n")
		sb.WriteString("      " + verdictLine("Ra", m.verdict.RaOK) + "  " + verdictLine("Rb", m.verdict.RbOK) + "\n")
		if m.verdict.Correct() {
			sb.WriteString("      " + green.Render(fmt.Sprintf("correct: Ra = %.2f kN, Rb = %.2f kN", m.verdict.TrueRa, m.verdict.TrueRb)) + "\n")
			if m.solved != nil {
				sb.WriteString("\n")
				sb.WriteString(diagram.SFD(m.solved.Profile, 50, 6))
				sb.WriteString("\n\n")
				sb.WriteString(diagram.BMD(m.solved.Profile, 50, 6))
				sb.WriteString("\n")
			}
		} else {
			sb.WriteString("      " + yellow.Render("not yet, tolerance is ±0.1 kN per reaction") + "\n")
			if !m.verdict.RaOK {
				sb.WriteString("      " + dim.Render("hint: take moments about the right support to isolate Ra") + "\n")
			}
			if !m.verdict.RbOK {
				sb.WriteString("      " + dim.Render("hint: take moments about the left support to isolate Rb") + "\n")
			}
		}
	}

	sb.WriteString("\n" + dim.Render("      tab switch  enter submit  n new problem  esc back") + "\n")

	return sb.String()
}

func verdictLine(label string, ok bool) string {
	if ok {
		return green.Render("✓ " + label)
	}
	return red.Render("✗ " + label)
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

func RunInteractive() error {
	p := tea.NewProgram(NewInteractiveApp(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// RunQuiz drops straight into quiz mode with a caller-chosen seed.
func RunQuiz(seed int64) error {
	m := NewInteractiveApp()
	m.session = quiz.NewSession(seed)
	m.startQuiz()
	m.state = stateQuiz
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
