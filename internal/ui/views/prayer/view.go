package prayer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	prayerdto "wird/internal/modules/prayer/dto"
	"wird/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimesPort interface {
	Times(ctx context.Context, latitude, longitude float64) (prayerdto.TimesOutput, error)
	NextPrayer(ctx context.Context, latitude, longitude float64) (prayerdto.NextPrayerOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type TimesLoadedMsg struct {
	Times prayerdto.TimesOutput
	Next  prayerdto.NextPrayerOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      TimesPort
	spinner   spinner.Model
	times     prayerdto.TimesOutput
	next      prayerdto.NextPrayerOutput
	city      string
	latitude  float64
	longitude float64
	err       error
	loading   bool
	width     int
	height    int
}

func New(port TimesPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

// SetLocation points the view at the reader's saved location. Call before
// Load; a reload uses the latest coordinates.
func (m *Model) SetLocation(latitude, longitude float64, city string) {
	m.latitude = latitude
	m.longitude = longitude
	m.city = city
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Load(), m.spinner.Tick)
}

func (m Model) Load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		times, err := m.port.Times(ctx, m.latitude, m.longitude)
		if err != nil {
			return TimesLoadedMsg{Err: err}
		}
		next, err := m.port.NextPrayer(ctx, m.latitude, m.longitude)
		if err != nil {
			return TimesLoadedMsg{Err: err}
		}
		return TimesLoadedMsg{Times: times, Next: next}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case TimesLoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.times = msg.Times
			m.next = msg.Next
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading prayer times…")
	}
	if m.err != nil {
		return theme.Hot.Render("prayer times: " + m.err.Error())
	}

	var sb strings.Builder
	location := m.city
	if location == "" {
		location = fmt.Sprintf("%.2f, %.2f", m.latitude, m.longitude)
	}
	sb.WriteString(theme.Title.Render("Prayer Times") + "  " + theme.Muted.Render(location) + "\n\n")

	rows := []struct{ name, at string }{
		{"Fajr", m.times.Fajr},
		{"Sunrise", m.times.Sunrise},
		{"Dhuhr", m.times.Dhuhr},
		{"Asr", m.times.Asr},
		{"Maghrib", m.times.Maghrib},
		{"Isha", m.times.Isha},
	}
	for _, row := range rows {
		line := fmt.Sprintf("  %-8s %s", row.name, row.at)
		if strings.EqualFold(row.name, m.next.Name) {
			sb.WriteString(theme.Hot.Render(line) + theme.Hot.Render("  ← next") + "\n")
		} else {
			sb.WriteString(line + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("next: ") + theme.Streak.Render(m.next.Name+" at "+m.next.Formatted) + "\n")
	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
