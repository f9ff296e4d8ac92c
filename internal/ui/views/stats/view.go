package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	progressdto "wird/internal/modules/progress/dto"
	"wird/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ProgressPort interface {
	Overview(ctx context.Context) (progressdto.OverviewOutput, error)
	WeeklyStats(ctx context.Context) (progressdto.StatsOutput, error)
	MonthlyStats(ctx context.Context) (progressdto.StatsOutput, error)
	Record(ctx context.Context) (progressdto.RecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Overview progressdto.OverviewOutput
	Weekly   progressdto.StatsOutput
	Monthly  progressdto.StatsOutput
	Record   progressdto.RecordOutput
	Err      error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     ProgressPort
	spinner  spinner.Model
	overview progressdto.OverviewOutput
	weekly   progressdto.StatsOutput
	monthly  progressdto.StatsOutput
	record   progressdto.RecordOutput
	err      error
	loading  bool
	width    int
	height   int
}

func New(port ProgressPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, spinner: sp, loading: true}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.Refresh(), m.spinner.Tick)
}

// Refresh reloads every aggregate in one shot.
func (m Model) Refresh() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		overview, err := m.port.Overview(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		weekly, err := m.port.WeeklyStats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		monthly, err := m.port.MonthlyStats(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		record, err := m.port.Record(ctx)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		return LoadedMsg{Overview: overview, Weekly: weekly, Monthly: monthly, Record: record}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.overview = msg.Overview
			m.weekly = msg.Weekly
			m.monthly = msg.Monthly
			m.record = msg.Record
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
			m.spinner.View()+" Loading stats…")
	}
	if m.err != nil {
		return theme.Hot.Render("stats: " + m.err.Error())
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Today") + "\n")
	sb.WriteString(fmt.Sprintf("  %s %d / %d min (%d%%)\n",
		theme.Muted.Render("goal:"), m.overview.TodayMinutes, m.overview.DailyGoalMin, m.overview.GoalPercent))
	sb.WriteString("  " + theme.Muted.Render("streak: ") + theme.Streak.Render(fmt.Sprintf("%d days", m.overview.CurrentStreak)) + "\n")
	sb.WriteString(fmt.Sprintf("  %s %d min\n\n", theme.Muted.Render("all time:"), m.overview.TotalReadingMin))

	sb.WriteString(theme.Title.Render("Last 7 days") + "\n")
	sb.WriteString(renderPeriod(m.weekly))
	sb.WriteString(theme.Title.Render("Last 30 days") + "\n")
	sb.WriteString(renderPeriod(m.monthly))

	sb.WriteString(theme.Title.Render("Position") + "\n")
	sb.WriteString(fmt.Sprintf("  %s %d:%d\n", theme.Muted.Render("reading:"), m.record.CurrentSurah, m.record.CurrentAyah))
	sb.WriteString(fmt.Sprintf("  %s %d\n", theme.Muted.Render("bookmarks:"), len(m.record.Bookmarks)))
	sb.WriteString(fmt.Sprintf("  %s %d / 114\n", theme.Muted.Render("completed:"), len(m.record.CompletedSurahs)))

	sb.WriteString("\n" + theme.Muted.Render("r: refresh"))

	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}

func renderPeriod(s progressdto.StatsOutput) string {
	return fmt.Sprintf("  %s %d min  %s %d  %s %d  %s %d min/day\n\n",
		theme.Muted.Render("minutes:"), s.TotalMinutes,
		theme.Muted.Render("verses:"), s.TotalVerses,
		theme.Muted.Render("days:"), s.DaysActive,
		theme.Muted.Render("avg:"), s.AverageDaily)
}
