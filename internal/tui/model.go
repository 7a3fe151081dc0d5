package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/fingerdrill/internal/clock"
	"github.com/verte-zerg/fingerdrill/internal/finger"
	"github.com/verte-zerg/fingerdrill/internal/leaderboard"
	"github.com/verte-zerg/fingerdrill/internal/model"
	"github.com/verte-zerg/fingerdrill/internal/textsource"
	"github.com/verte-zerg/fingerdrill/internal/trainer"
	"github.com/verte-zerg/fingerdrill/internal/typing"
)

// Duration presets cycled with +/-.
var durationPresets = []time.Duration{15 * time.Second, 30 * time.Second, 60 * time.Second, 120 * time.Second}

// Model implements the Bubble Tea typing UI and renders what the trainer
// pushes through the trainer.Presenter methods.
type Model struct {
	ctrl *trainer.Controller
	keys keyMap

	help     help.Model
	progress progress.Model
	scores   table.Model
	custom   textarea.Model
	editing  bool

	width  int
	height int

	idleMessage  string
	target       []rune
	states       []typing.CharState
	cursor       int
	nextLabel    string
	fingerName   string
	diagram      finger.Diagram
	stats        typing.Stats
	countdown    string
	percent      float64
	inputEnabled bool
}

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	panelStyle       = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs the typing UI and its controller. opts.Presenter is
// replaced by the model itself.
func NewModel(ctx context.Context, opts trainer.Options) *Model {
	m := &Model{
		keys:     defaultKeyMap(),
		help:     help.New(),
		progress: progress.New(progress.WithSolidFill("#C89A3A"), progress.WithoutPercentage()),
		scores:   newScoreTable(),
		custom:   newCustomInput(),
		cursor:   -1,
	}
	opts.Presenter = m
	m.ctrl = trainer.New(ctx, opts)
	return m
}

func newScoreTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 2},
			{Title: "WPM", Width: 5},
			{Title: "Acc", Width: 6},
			{Title: "Time", Width: 10},
		}),
		table.WithHeight(leaderboard.Size+1),
	)
	t.SetStyles(scoreTableStyles())
	t.Blur()
	return t
}

func scoreTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell
	return styles
}

func newCustomInput() textarea.Model {
	input := textarea.New()
	input.Placeholder = textsource.CustomPlaceholder
	input.ShowLineNumbers = false
	input.CharLimit = 0
	input.SetHeight(4)
	return input
}

// Controller exposes the underlying trainer.
func (m *Model) Controller() *trainer.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case clock.TickMsg:
		if m.ctrl.Tick(msg) {
			return m, clock.TickCmd(msg.Tag)
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateCustom(msg)
		}
		if m.ctrl.InputEnabled() {
			return m.updateTyping(msg)
		}
		return m.updateIdle(msg)
	default:
		return m, nil
	}
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Reset), key.Matches(msg, m.keys.Cancel):
		m.ctrl.Reset()
		return m, nil
	case key.Matches(msg, m.keys.DeleteWord):
		m.ctrl.DeleteWord()
		return m, nil
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		m.ctrl.Backspace()
	case tea.KeySpace:
		m.ctrl.TypeRunes([]rune{' '})
	case tea.KeyRunes:
		m.ctrl.TypeRunes(msg.Runes)
	}
	return m, nil
}

func (m *Model) updateIdle(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		tag := m.ctrl.Start()
		return m, clock.TickCmd(tag)
	case key.Matches(msg, m.keys.Reset):
		m.ctrl.Reset()
	case key.Matches(msg, m.keys.Mode):
		m.ctrl.SetMode(textsource.Next(m.ctrl.Mode()))
	case key.Matches(msg, m.keys.Longer):
		m.ctrl.SetDuration(nextDuration(m.ctrl.Duration(), 1))
	case key.Matches(msg, m.keys.Shorter):
		m.ctrl.SetDuration(nextDuration(m.ctrl.Duration(), -1))
	case key.Matches(msg, m.keys.Custom):
		m.editing = true
		return m, m.custom.Focus()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Model) updateCustom(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.editing = false
		m.custom.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		if m.ctrl.UseCustom(m.custom.Value()) {
			m.editing = false
			m.custom.Blur()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.custom, cmd = m.custom.Update(msg)
	return m, cmd
}

func nextDuration(current time.Duration, dir int) time.Duration {
	if dir > 0 {
		for _, d := range durationPresets {
			if d > current {
				return d
			}
		}
		return durationPresets[len(durationPresets)-1]
	}
	for i := len(durationPresets) - 1; i >= 0; i-- {
		if durationPresets[i] < current {
			return durationPresets[i]
		}
	}
	return durationPresets[0]
}

func (m *Model) updateLayout() {
	width := m.contentWidth()
	m.progress.Width = width
	m.custom.SetWidth(width)
	m.help.Width = width
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w < 1 {
		w = 1
	}
	return w
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	sections := []string{
		m.renderHeader(),
		"",
		m.renderTarget(width),
		"",
		m.progress.ViewAs(m.percent / 100),
		m.renderStats(),
		m.renderHint(),
		"",
		renderHand(&m.diagram),
		"",
	}
	if m.editing {
		sections = append(sections, panelStyle.Render(m.custom.View()))
	} else {
		sections = append(sections, panelStyle.Render(titleStyle.Render("Leaderboard")+"\n"+m.scores.View()))
	}
	sections = append(sections, "", m.help.View(m.keys))
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderHeader() string {
	return strings.Join([]string{
		titleStyle.Render("fingerdrill"),
		labelStyle.Render("mode ") + valueStyle.Render(string(m.ctrl.Mode())),
		labelStyle.Render("time ") + valueStyle.Render(m.countdown),
	}, "  ")
}

func (m *Model) renderTarget(width int) string {
	if len(m.target) == 0 {
		return pendingStyle.Render(m.idleMessage)
	}
	styled := buildStyledRunes(m.target, m.states, m.cursor)
	return lipgloss.NewStyle().Width(width).Render(wrapStyledRunes(styled, width))
}

func (m *Model) renderStats() string {
	return strings.Join([]string{
		labelStyle.Render("WPM ") + valueStyle.Render(fmt.Sprintf("%d", m.stats.WPM)),
		labelStyle.Render("Accuracy ") + valueStyle.Render(m.stats.AccuracyText()),
		labelStyle.Render("Chars ") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Chars)),
		labelStyle.Render("Errors ") + valueStyle.Render(fmt.Sprintf("%d", m.stats.Errors)),
	}, "  ")
}

func (m *Model) renderHint() string {
	return labelStyle.Render("Next ") + valueStyle.Render(m.nextLabel) +
		"  " + labelStyle.Render("Finger ") + valueStyle.Render(m.fingerName)
}

// RenderIdle implements trainer.Presenter.
func (m *Model) RenderIdle(message string) {
	m.idleMessage = message
	m.target = nil
	m.states = nil
	m.cursor = -1
}

// RenderClassification implements trainer.Presenter.
func (m *Model) RenderClassification(target []rune, states []typing.CharState, cursor int) {
	m.target = target
	m.states = states
	m.cursor = cursor
}

// RenderHint implements trainer.Presenter.
func (m *Model) RenderHint(label string, hint finger.Hint) {
	m.nextLabel = label
	m.fingerName = label
	if hint.Finger != "" {
		m.fingerName = hint.Finger
	}
	m.diagram.Highlight(hint.Region)
}

// RenderStats implements trainer.Presenter.
func (m *Model) RenderStats(stats typing.Stats) {
	m.stats = stats
}

// RenderCountdown implements trainer.Presenter.
func (m *Model) RenderCountdown(display string, progress float64) {
	m.countdown = display
	m.percent = progress
}

// RenderLeaderboard implements trainer.Presenter.
func (m *Model) RenderLeaderboard(scores []model.Score) {
	rows := make([]table.Row, 0, len(scores))
	for i, s := range scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.WPM),
			s.Acc,
			s.Time,
		})
	}
	m.scores.SetRows(rows)
}

// SetInputEnabled implements trainer.Presenter.
func (m *Model) SetInputEnabled(enabled bool) {
	m.inputEnabled = enabled
}
