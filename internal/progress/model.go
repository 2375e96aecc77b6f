// Package progress shows a spinner and progress bar on a terminal while the
// card's sources are being fetched.
package progress

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/profilecard/internal/models"
	"github.com/akyairhashvil/profilecard/internal/util"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ResultMsg reports one settled source.
type ResultMsg models.Result

// DoneMsg ends the display once every source has settled.
type DoneMsg struct{}

var (
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	fallbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
)

type Model struct {
	spinner spinner.Model
	bar     progress.Model
	total   int
	settled []models.Result
	done    bool
}

func New(total int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	return Model{
		spinner: s,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(30), progress.WithoutPercentage()),
		total:   total,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ResultMsg:
		m.settled = append(m.settled, models.Result(msg))
		return m, nil
	case DoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.done = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Percent is the settled share of sources, in [0, 1].
func (m Model) Percent() float64 {
	if m.total <= 0 {
		return 1
	}
	return float64(util.Clamp(len(m.settled), 0, m.total)) / float64(m.total)
}

func (m Model) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s fetching %s %d/%d", m.spinner.View(), m.bar.ViewAs(m.Percent()), len(m.settled), m.total)
	if len(m.settled) > 0 {
		labels := make([]string, 0, len(m.settled))
		for _, r := range m.settled {
			style := okStyle
			if r.Fallback {
				style = fallbackStyle
			}
			labels = append(labels, style.Render(r.Label))
		}
		b.WriteString(dimStyle.Render("  ") + strings.Join(labels, dimStyle.Render(", ")))
	}
	return b.String() + "\n"
}
