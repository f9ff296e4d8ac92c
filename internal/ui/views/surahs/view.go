package surahs

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scripturedto "wird/internal/modules/scripture/dto"
	"wird/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CatalogPort interface {
	ListSurahs(ctx context.Context) ([]scripturedto.SurahOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type CatalogLoadedMsg struct {
	Surahs []scripturedto.SurahOutput
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type surahItem struct {
	surah     scripturedto.SurahOutput
	completed bool
}

func (i surahItem) Title() string {
	prefix := fmt.Sprintf("%d. %s", i.surah.Number, i.surah.EnglishName)
	if i.completed {
		return prefix + " ✓"
	}
	return prefix
}

func (i surahItem) Description() string {
	return fmt.Sprintf("%s  %d ayahs  %s", i.surah.Name, i.surah.AyahCount, i.surah.RevelationType)
}

func (i surahItem) FilterValue() string { return i.surah.EnglishName }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      CatalogPort
	list      list.Model
	preview   viewport.Model
	spinner   spinner.Model
	completed map[int]bool
	loading   bool
	width     int
	height    int
}

func New(port CatalogPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Surahs"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:      port,
		list:      l,
		preview:   vp,
		spinner:   sp,
		completed: map[int]bool{},
		loading:   true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalogCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case CatalogLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Surahs (offline: " + msg.Err.Error() + ")"
			return m, nil
		}
		items := make([]list.Item, len(msg.Surahs))
		for i, s := range msg.Surahs {
			items[i] = surahItem{surah: s, completed: m.completed[s.Number]}
		}
		cmds = append(cmds, m.list.SetItems(items))
		m.preview.SetContent(m.renderDetail())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if !m.loading {
		var lCmd tea.Cmd
		prevIdx := m.list.Index()
		m.list, lCmd = m.list.Update(msg)
		cmds = append(cmds, lCmd)
		if m.list.Index() != prevIdx {
			m.preview.SetContent(m.renderDetail())
		}

		var vCmd tea.Cmd
		m.preview, vCmd = m.preview.Update(msg)
		cmds = append(cmds, vCmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading catalog…")
	}

	listW := m.width * 4 / 10
	detailW := m.width - listW

	listPane := lipgloss.NewStyle().
		Width(listW).
		Height(m.height).
		Render(m.list.View())

	detailPane := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Surface1).
		Background(theme.Mantle).
		Width(detailW - 2).
		Height(m.height - 2).
		Render(m.preview.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)
}

// SelectedSurah returns the current selection's number, if any.
func (m Model) SelectedSurah() (int, bool) {
	if item, ok := m.list.SelectedItem().(surahItem); ok {
		return item.surah.Number, true
	}
	return 0, false
}

// SelectedSurahName returns the current selection's english name.
func (m Model) SelectedSurahName() string {
	if item, ok := m.list.SelectedItem().(surahItem); ok {
		return item.surah.EnglishName
	}
	return ""
}

// Filtering reports whether the list's search filter is currently active.
// The app model checks this to avoid consuming global keys during a search.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetCompleted marks surahs as completed so the list can badge them.
func (m *Model) SetCompleted(numbers []int) {
	m.completed = make(map[int]bool, len(numbers))
	for _, n := range numbers {
		m.completed[n] = true
	}
	items := m.list.Items()
	for i, it := range items {
		if item, ok := it.(surahItem); ok {
			item.completed = m.completed[item.surah.Number]
			items[i] = item
		}
	}
	m.list.SetItems(items)
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	listW := m.width * 4 / 10
	detailW := m.width - listW
	m.list.SetSize(listW, m.height)
	m.preview.Width = detailW - 4
	m.preview.Height = m.height - 4
}

func (m Model) renderDetail() string {
	item, ok := m.list.SelectedItem().(surahItem)
	if !ok {
		return theme.Muted.Render("Select a surah to see details")
	}
	s := item.surah
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(s.EnglishName) + "  " + theme.Arabic.Render(s.Name) + "\n\n")
	sb.WriteString(theme.Muted.Render("number:     ") + fmt.Sprintf("%d", s.Number) + "\n")
	sb.WriteString(theme.Muted.Render("meaning:    ") + s.EnglishTranslation + "\n")
	sb.WriteString(theme.Muted.Render("ayahs:      ") + fmt.Sprintf("%d", s.AyahCount) + "\n")
	sb.WriteString(theme.Muted.Render("revelation: ") + s.RevelationType + "\n")
	if item.completed {
		sb.WriteString("\n" + theme.Streak.Render("completed") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("enter: open in Reader  s: start session  c: mark completed"))
	return sb.String()
}

func (m Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		surahs, err := m.port.ListSurahs(context.Background())
		return CatalogLoadedMsg{Surahs: surahs, Err: err}
	}
}
