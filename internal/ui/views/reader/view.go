package reader

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	scripturedto "wird/internal/modules/scripture/dto"
	"wird/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

// Port is the minimal interface this view needs from the scripture use-case.
type Port interface {
	GetSurah(ctx context.Context, number int, edition string) ([]scripturedto.VerseOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// OpenedMsg is sent when a surah has been opened (or failed to open).
type OpenedMsg struct {
	Surah  int
	Title  string
	Verses []scripturedto.VerseOutput
	Err    error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the self-contained Bubble Tea model for the Reader tab.
type Model struct {
	port      Port
	viewport  viewport.Model
	spinner   spinner.Model
	surah     int
	title     string
	verses    []scripturedto.VerseOutput
	selected  int
	bookmarks map[int]bool
	playingID int
	playState string
	loading   bool
	width     int
	height    int
}

// New creates a Reader Model backed by the given port.
func New(port Port) Model {
	vp := viewport.New(0, 0)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		port:      port,
		viewport:  vp,
		spinner:   sp,
		bookmarks: map[int]bool{},
	}
}

// Init is a no-op: the reader is idle until OpenSurah is called.
func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		if m.surah != 0 {
			m.viewport.SetContent(m.renderVerses())
		}

	case OpenedMsg:
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.surah = msg.Surah
		m.title = msg.Title
		m.verses = msg.Verses
		m.selected = 0
		m.viewport.SetContent(m.renderVerses())
		m.viewport.GotoTop()

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	header := m.renderHeader()
	headerH := lipgloss.Height(header)
	footerH := 1

	vpHeight := m.height - headerH - footerH
	if vpHeight < 1 {
		vpHeight = 1
	}
	vpView := m.viewportAt(vpHeight)

	if m.loading {
		loading := lipgloss.Place(m.width, vpHeight, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Opening surah…")
		return lipgloss.JoinVertical(lipgloss.Left, header, loading)
	}

	footer := m.renderFooter()
	return lipgloss.JoinVertical(lipgloss.Left, header, vpView, footer)
}

// OpenSurah triggers loading a surah. The returned Cmd produces an OpenedMsg.
func (m *Model) OpenSurah(number int, title, edition string) tea.Cmd {
	m.loading = true
	return tea.Batch(m.openCmd(number, title, edition), m.spinner.Tick)
}

// NextVerse moves the selection down one verse.
func (m *Model) NextVerse() {
	if m.selected < len(m.verses)-1 {
		m.selected++
		m.viewport.SetContent(m.renderVerses())
	}
}

// PrevVerse moves the selection up one verse.
func (m *Model) PrevVerse() {
	if m.selected > 0 {
		m.selected--
		m.viewport.SetContent(m.renderVerses())
	}
}

// SelectedVerse returns the verse under the cursor, if any.
func (m Model) SelectedVerse() (scripturedto.VerseOutput, bool) {
	if m.selected < 0 || m.selected >= len(m.verses) {
		return scripturedto.VerseOutput{}, false
	}
	return m.verses[m.selected], true
}

// Surah returns the currently open surah number (0 when none).
func (m Model) Surah() int { return m.surah }

// SetBookmarks refreshes bookmark badges.
func (m *Model) SetBookmarks(ids []int) {
	m.bookmarks = make(map[int]bool, len(ids))
	for _, id := range ids {
		m.bookmarks[id] = true
	}
	if m.surah != 0 {
		m.viewport.SetContent(m.renderVerses())
	}
}

// SetPlayback updates the playback badge for one verse. An empty state
// clears it.
func (m *Model) SetPlayback(verseID int, state string) {
	m.playingID = verseID
	m.playState = state
	if m.surah != 0 {
		m.viewport.SetContent(m.renderVerses())
	}
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m *Model) resize() {
	m.viewport.Width = m.width
	m.viewport.Height = m.height - 3
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

// viewportAt renders the viewport content at a temporary height without
// mutating the persisted viewport.Height set by resize().
func (m Model) viewportAt(h int) string {
	vp := m.viewport
	vp.Height = h
	return vp.View()
}

func (m Model) renderHeader() string {
	if m.surah == 0 {
		return theme.Title.Render("Reader") +
			theme.Muted.Render("  Open a surah from the Surahs tab (enter)") + "\n"
	}
	parts := []string{
		theme.Title.Render(fmt.Sprintf("%d. %s", m.surah, m.title)),
		theme.Muted.Render(fmt.Sprintf("%d verses", len(m.verses))),
	}
	nav := theme.Muted.Render("  j/k: verse  b: bookmark  p: play  ↑/↓: scroll")
	return strings.Join(parts, "  ") + nav + "\n"
}

func (m Model) renderFooter() string {
	pos := ""
	if v, ok := m.SelectedVerse(); ok {
		pos = fmt.Sprintf("%d:%d  ", v.Surah, v.Ayah)
	}
	return theme.Muted.Render(fmt.Sprintf("%s%.0f%%", pos, m.viewport.ScrollPercent()*100))
}

func (m Model) renderVerses() string {
	if len(m.verses) == 0 {
		return theme.Muted.Render("(no verses)")
	}
	var sb strings.Builder
	for i, v := range m.verses {
		marker := "  "
		if i == m.selected {
			marker = theme.Hot.Render("> ")
		}
		badges := ""
		if m.bookmarks[v.ID] {
			badges += theme.Streak.Render(" ★")
		}
		if m.playingID == v.ID && m.playState != "" {
			badges += theme.Hot.Render(" ♪" + m.playState)
		}
		sb.WriteString(fmt.Sprintf("%s%s%s\n", marker, theme.Muted.Render(fmt.Sprintf("%d:%d", v.Surah, v.Ayah)), badges))
		sb.WriteString("  " + theme.Arabic.Render(v.Arabic) + "\n")
		sb.WriteString("  " + v.Translation + "\n\n")
	}
	return sb.String()
}

func (m Model) openCmd(number int, title, edition string) tea.Cmd {
	return func() tea.Msg {
		verses, err := m.port.GetSurah(context.Background(), number, edition)
		return OpenedMsg{Surah: number, Title: title, Verses: verses, Err: err}
	}
}
