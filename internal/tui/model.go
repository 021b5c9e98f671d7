// Package tui is the interactive terminal front end of the questionnaire.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/PoluyanbIch/motivetype/internal/render"
	"github.com/PoluyanbIch/motivetype/internal/service"
)

const (
	defaultWidth = 80
	maxBarWidth  = 60
)

type Styles struct {
	Header   lipgloss.Style
	Prompt   lipgloss.Style
	Option   lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2563EB")),
		Prompt:   lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Option:   lipgloss.NewStyle().PaddingLeft(2),
		Selected: lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("#1D4ED8")).Background(lipgloss.Color("#EFF6FF")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// Model owns one questionnaire session for the lifetime of the program.
type Model struct {
	engine   *service.Engine
	cursor   int
	width    int
	progress progress.Model
	renderer *glamour.TermRenderer
	styles   Styles
	quitting bool
}

func New() Model {
	p := progress.New(progress.WithDefaultGradient())
	p.Width = maxBarWidth
	return Model{
		engine:   service.NewEngine(),
		width:    defaultWidth,
		progress: p,
		renderer: newRenderer(defaultWidth),
		styles:   DefaultStyles(),
	}
}

func newRenderer(width int) *glamour.TermRenderer {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil
	}
	return r
}

// Engine exposes the session state, mainly for tests.
func (m Model) Engine() *service.Engine {
	return m.engine
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(maxBarWidth, max(10, msg.Width-4))
		m.renderer = newRenderer(max(20, msg.Width-4))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
		if m.engine.IsComplete() {
			return m.updateResult(msg)
		}
		return m.updateQuestion(msg)
	}
	return m, nil
}

func (m Model) updateQuestion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q, err := m.engine.CurrentQuestion()
	if err != nil {
		return m, nil
	}

	switch key := msg.String(); key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(q.Options)-1 {
			m.cursor++
		}
	case "enter", " ":
		m.choose(m.cursor)
	case "1", "2", "3", "4":
		m.choose(int(key[0] - '1'))
	}
	return m, nil
}

func (m *Model) choose(index int) {
	if err := m.engine.SelectOption(index); err != nil {
		return
	}
	m.cursor = 0
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "r", "enter":
		m.engine.Reset()
		m.cursor = 0
	}
	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.engine.IsComplete() {
		return m.resultView()
	}
	return m.questionView()
}

func (m Model) questionView() string {
	q, err := m.engine.CurrentQuestion()
	if err != nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(m.progress.ViewAs(m.engine.Progress()) + "\n\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("Question %d of %d", m.engine.Step()+1, m.engine.Total())) + "\n")
	sb.WriteString(m.styles.Prompt.Render(q.Prompt) + "\n")

	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt.Label)
		if i == m.cursor {
			sb.WriteString(m.styles.Selected.Render("› "+line) + "\n")
		} else {
			sb.WriteString(m.styles.Option.Render("  "+line) + "\n")
		}
	}

	sb.WriteString("\n" + m.styles.Muted.Render("↑/↓ move • enter or 1-4 choose • q quit"))
	return sb.String()
}

func (m Model) resultView() string {
	profile := m.engine.Outcome().Profile

	body := m.renderProfile(profile)

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("Your motivation type") + "\n")
	sb.WriteString(body)
	sb.WriteString("\n" + m.styles.Muted.Render("r start over • q quit"))
	return sb.String()
}

func (m Model) renderProfile(p service.CategoryProfile) string {
	md, err := render.Markdown(p)
	if err != nil {
		return p.Title + "\n\n" + p.Description + "\n"
	}
	if m.renderer == nil {
		return string(md)
	}
	out, err := m.renderer.Render(string(md))
	if err != nil {
		return string(md)
	}
	return out
}

// Run starts the interactive questionnaire and blocks until the user quits.
func Run(ctx context.Context) error {
	p := tea.NewProgram(New(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
