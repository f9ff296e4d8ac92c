package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	audiodto "wird/internal/modules/audio/dto"
	audioin "wird/internal/modules/audio/port/in"
	prayerdto "wird/internal/modules/prayer/dto"
	progressdto "wird/internal/modules/progress/dto"
	scripturedomain "wird/internal/modules/scripture/domain"
	scripturedto "wird/internal/modules/scripture/dto"
	settingsdto "wird/internal/modules/settings/dto"
	apperrors "wird/internal/platform/errors"
	"wird/internal/ui/components"
	"wird/internal/ui/theme"
	prayerview "wird/internal/ui/views/prayer"
	readerview "wird/internal/ui/views/reader"
	statsview "wird/internal/ui/views/stats"
	surahsview "wird/internal/ui/views/surahs"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type scripturePort interface {
	ListSurahs(ctx context.Context) ([]scripturedto.SurahOutput, error)
	GetSurah(ctx context.Context, number int, edition string) ([]scripturedto.VerseOutput, error)
}

type progressPort interface {
	StartSession(ctx context.Context, surah, ayah int) (progressdto.StartSessionOutput, error)
	EndSession(ctx context.Context, sessionID string, versesRead int, surahsRead []int) (progressdto.EndSessionOutput, error)
	GetActive(ctx context.Context) (progressdto.ActiveSessionOutput, error)
	Record(ctx context.Context) (progressdto.RecordOutput, error)
	SetPosition(ctx context.Context, surah, ayah int) error
	SetDailyGoal(ctx context.Context, minutes int) error
	ToggleBookmark(ctx context.Context, verseID int) (bool, error)
	MarkSurahCompleted(ctx context.Context, number int) error
	Overview(ctx context.Context) (progressdto.OverviewOutput, error)
	WeeklyStats(ctx context.Context) (progressdto.StatsOutput, error)
	MonthlyStats(ctx context.Context) (progressdto.StatsOutput, error)
}

type prayerPort interface {
	Times(ctx context.Context, latitude, longitude float64) (prayerdto.TimesOutput, error)
	NextPrayer(ctx context.Context, latitude, longitude float64) (prayerdto.NextPrayerOutput, error)
}

type settingsPort interface {
	Get(ctx context.Context) (settingsdto.SettingsOutput, error)
	Update(ctx context.Context, input settingsdto.UpdateInput) (settingsdto.SettingsOutput, error)
}

type audioPort interface {
	PlayVerse(ctx context.Context, input audiodto.PlayInput) error
	Pause(ctx context.Context) error
	Resume(ctx context.Context) error
	Stop(ctx context.Context) error
	State() string
	CurrentTrack() (audiodto.TrackOutput, bool)
	Subscribe(listener audioin.Listener) func()
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabSurahs tabID = iota
	tabReader
	tabStats
	tabPrayer
	tabCount
)

var tabLabels = [tabCount]string{
	"Surahs", "Reader", "Stats", "Prayer",
}

// ─── async messages ───────────────────────────────────────────────────────────

type activeLoadedMsg struct {
	active progressdto.ActiveSessionOutput
	err    error
}

type sessionStartedMsg struct {
	out progressdto.StartSessionOutput
	err error
}

type sessionEndedMsg struct {
	out progressdto.EndSessionOutput
	err error
}

type recordLoadedMsg struct {
	record progressdto.RecordOutput
	err    error
}

type settingsLoadedMsg struct {
	settings settingsdto.SettingsOutput
	err      error
}

type bookmarkToggledMsg struct {
	verseID    int
	bookmarked bool
	err        error
}

type surahCompletedMsg struct {
	number int
	err    error
}

type audioEventMsg struct{ event audiodto.EventOutput }

type statusMsg struct{ text string }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab      key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
	Enter    key.Binding
	Session  key.Binding
	Verse    key.Binding
	Bookmark key.Binding
	Play     key.Binding
	Refresh  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open surah")),
		Session:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Verse:    key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "select verse")),
		Bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle bookmark")),
		Play:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "play/pause verse")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Enter, k.Session},
		{k.Verse, k.Bookmark, k.Play, k.Refresh},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, session state,
// the global help overlay, and the command palette. All business logic is
// delegated to port interfaces; all rendering is delegated to sub-views.
type Model struct {
	// ports used at this orchestration level only
	progress progressPort
	settings settingsPort
	audio    audioPort

	// sub-views (one per tab)
	surahsView surahsview.Model
	readView   readerview.Model
	statsView  statsview.Model
	prayerView prayerview.Model

	// global UI state
	activeTab     tabID
	keys          keyMap
	help          help.Model
	showHelp      bool
	palette       components.Palette
	activeSession progressdto.ActiveSessionOutput
	hasActive     bool
	prefs         settingsdto.SettingsOutput
	audioEvents   chan audiodto.EventOutput
	status        string
	width         int
	height        int
}

// ─── constructor ─────────────────────────────────────────────────────────────

func NewModel(
	scripture scripturePort,
	progress progressPort,
	prayer prayerPort,
	settings settingsPort,
	audio audioPort,
) Model {
	events := make(chan audiodto.EventOutput, 16)
	if audio != nil {
		audio.Subscribe(func(event audiodto.EventOutput) {
			select {
			case events <- event:
			default:
			}
		})
	}

	return Model{
		progress:    progress,
		settings:    settings,
		audio:       audio,
		surahsView:  surahsview.New(scripturePortBridge{p: scripture}),
		readView:    readerview.New(scripturePortBridge{p: scripture}),
		statsView:   statsview.New(progressPortBridge{p: progress}),
		prayerView:  prayerview.New(prayerPortBridge{p: prayer}),
		activeTab:   tabSurahs,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		audioEvents: events,
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.surahsView.Init(),
		m.statsView.Init(),
		m.loadActiveCmd(),
		m.loadRecordCmd(),
		m.loadSettingsCmd(),
		m.waitAudioCmd(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize()

	case activeLoadedMsg:
		if msg.err != nil {
			if msg.err != apperrors.ErrNoActiveSession {
				m.status = "active session check: " + msg.err.Error()
			}
			m.hasActive = false
		} else {
			m.hasActive = true
			m.activeSession = msg.active
			m.status = fmt.Sprintf("session recovered at %d:%d", msg.active.Surah, msg.active.Ayah)
		}

	case sessionStartedMsg:
		if msg.err != nil {
			m.status = "session start failed: " + msg.err.Error()
		} else {
			m.hasActive = true
			m.status = "session started"
			cmds = append(cmds, m.loadActiveCmd())
		}

	case sessionEndedMsg:
		if msg.err != nil {
			m.status = "session end failed: " + msg.err.Error()
		} else {
			m.hasActive = false
			m.activeSession = progressdto.ActiveSessionOutput{}
			if msg.out.Recorded {
				m.status = fmt.Sprintf("session ended (%d min)", msg.out.DurationMin)
			} else {
				m.status = "session ended (under a minute, not recorded)"
			}
			cmds = append(cmds, m.statsView.Refresh())
		}

	case recordLoadedMsg:
		if msg.err == nil {
			m.readView.SetBookmarks(msg.record.Bookmarks)
			m.surahsView.SetCompleted(msg.record.CompletedSurahs)
		}

	case settingsLoadedMsg:
		if msg.err != nil {
			m.status = "settings: " + msg.err.Error()
		} else {
			m.prefs = msg.settings
			m.prayerView.SetLocation(msg.settings.Latitude, msg.settings.Longitude, msg.settings.City)
			cmds = append(cmds, m.prayerView.Load())
		}

	case bookmarkToggledMsg:
		if msg.err != nil {
			m.status = "bookmark: " + msg.err.Error()
		} else {
			if msg.bookmarked {
				m.status = fmt.Sprintf("bookmarked verse %d", msg.verseID)
			} else {
				m.status = fmt.Sprintf("removed bookmark %d", msg.verseID)
			}
			cmds = append(cmds, m.loadRecordCmd())
		}

	case surahCompletedMsg:
		if msg.err != nil {
			m.status = "complete: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("surah %d marked completed", msg.number)
			cmds = append(cmds, m.loadRecordCmd())
		}

	case audioEventMsg:
		m.applyAudioEvent(msg.event)
		cmds = append(cmds, m.waitAudioCmd())

	case statusMsg:
		m.status = msg.text

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	// OpenedMsg is produced by the reader view but bubbles up through the top
	// level so we can auto-switch to the Reader tab and update status.
	case readerview.OpenedMsg:
		if msg.Err != nil {
			m.status = "reader: " + msg.Err.Error()
		} else {
			m.status = fmt.Sprintf("reading %d. %s", msg.Surah, msg.Title)
			m.activeTab = tabReader
		}
		var cmd tea.Cmd
		m.readView, cmd = m.readView.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		// Yield to sub-view when its search filter is active.
		if m.subViewFiltering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			if m.audio != nil {
				_ = m.audio.Stop(context.Background())
			}
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			cmds = append(cmds, m.palette.Open())
			return m, tea.Batch(cmds...)
		case "s":
			if m.activeTab == tabSurahs {
				if number, ok := m.surahsView.SelectedSurah(); ok {
					cmds = append(cmds, m.startSessionCmd(number, 1))
				}
			}
		case "c":
			if m.activeTab == tabSurahs {
				if number, ok := m.surahsView.SelectedSurah(); ok {
					cmds = append(cmds, m.completeSurahCmd(number))
				}
			}
		case "enter":
			if m.activeTab == tabSurahs {
				if number, ok := m.surahsView.SelectedSurah(); ok {
					cmds = append(cmds, m.readView.OpenSurah(number, m.surahsView.SelectedSurahName(), m.prefs.TranslationEdition))
				}
			}
		case "j":
			if m.activeTab == tabReader {
				m.readView.NextVerse()
				cmds = append(cmds, m.savePositionCmd())
			}
		case "k":
			if m.activeTab == tabReader {
				m.readView.PrevVerse()
				cmds = append(cmds, m.savePositionCmd())
			}
		case "b":
			if m.activeTab == tabReader {
				if verse, ok := m.readView.SelectedVerse(); ok {
					cmds = append(cmds, m.toggleBookmarkCmd(verse.ID))
				}
			}
		case "p":
			if m.activeTab == tabReader {
				cmds = append(cmds, m.togglePlaybackCmd())
			}
		case "r":
			if m.activeTab == tabStats {
				cmds = append(cmds, m.statsView.Refresh())
			}
			if m.activeTab == tabPrayer {
				cmds = append(cmds, m.prayerView.Load())
			}
		}
	}

	// Propagate the message to the active tab's sub-view.
	var tabCmd tea.Cmd
	switch m.activeTab {
	case tabSurahs:
		m.surahsView, tabCmd = m.surahsView.Update(msg)
	case tabReader:
		m.readView, tabCmd = m.readView.Update(msg)
	case tabStats:
		m.statsView, tabCmd = m.statsView.Update(msg)
	case tabPrayer:
		m.prayerView, tabCmd = m.prayerView.Update(msg)
	}
	cmds = append(cmds, tabCmd)

	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabSurahs:
		return m.surahsView.View()
	case tabReader:
		return m.readView.View()
	case tabStats:
		return m.statsView.View()
	case tabPrayer:
		return m.prayerView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "wird  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.hasActive {
		left = theme.Hot.Render(fmt.Sprintf("● reading %d:%d", m.activeSession.Surah, m.activeSession.Ayah)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)

	switch parts[0] {
	case "session:start":
		surah, ok := m.surahsView.SelectedSurah()
		if m.activeTab == tabReader && m.readView.Surah() != 0 {
			surah, ok = m.readView.Surah(), true
		}
		if !ok {
			m.status = "no surah selected"
			return m, nil
		}
		return m, m.startSessionCmd(surah, 1)

	case "session:end":
		verses := 0
		if len(parts) >= 2 {
			v, err := strconv.Atoi(parts[1])
			if err != nil {
				m.status = "invalid verse count"
				return m, nil
			}
			verses = v
		}
		return m, m.endSessionCmd(verses)

	case "goal:set":
		if len(parts) < 2 {
			m.status = "usage: goal:set <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid minutes"
			return m, nil
		}
		return m, m.setGoalCmd(minutes)

	case "position:set":
		if len(parts) < 3 {
			m.status = "usage: position:set <surah> <ayah>"
			return m, nil
		}
		surah, err1 := strconv.Atoi(parts[1])
		ayah, err2 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil {
			m.status = "invalid position"
			return m, nil
		}
		return m, m.setPositionCmd(surah, ayah)

	case "bookmark:toggle":
		if verse, ok := m.readView.SelectedVerse(); ok {
			return m, m.toggleBookmarkCmd(verse.ID)
		}
		m.status = "no verse selected"
		return m, nil

	case "surah:complete":
		if number, ok := m.surahsView.SelectedSurah(); ok {
			return m, m.completeSurahCmd(number)
		}
		m.status = "no surah selected"
		return m, nil

	case "surah:open":
		if len(parts) < 2 {
			m.status = "usage: surah:open <number>"
			return m, nil
		}
		number, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = "invalid surah number"
			return m, nil
		}
		return m, m.readView.OpenSurah(number, "", m.prefs.TranslationEdition)

	case "audio:play":
		return m, m.togglePlaybackCmd()

	case "audio:pause":
		return m, func() tea.Msg {
			if err := m.audio.Pause(context.Background()); err != nil {
				return statusMsg{text: "audio: " + err.Error()}
			}
			return statusMsg{text: "paused"}
		}

	case "audio:stop":
		return m, func() tea.Msg {
			if err := m.audio.Stop(context.Background()); err != nil {
				return statusMsg{text: "audio: " + err.Error()}
			}
			return statusMsg{text: "stopped"}
		}

	case "settings:translation":
		if len(parts) < 2 {
			m.status = "usage: settings:translation <edition>"
			return m, nil
		}
		return m, m.updateSettingsCmd(settingsdto.UpdateInput{TranslationEdition: &parts[1]})

	case "settings:reciter":
		if len(parts) < 2 {
			m.status = "usage: settings:reciter <id>"
			return m, nil
		}
		return m, m.updateSettingsCmd(settingsdto.UpdateInput{Reciter: &parts[1]})

	case "settings:theme":
		if len(parts) < 2 {
			m.status = "usage: settings:theme <light|dark>"
			return m, nil
		}
		return m, m.updateSettingsCmd(settingsdto.UpdateInput{Theme: &parts[1]})

	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// subViewFiltering reports whether the active tab's list filter is open,
// in which case global key bindings must yield to allow free typing.
func (m Model) subViewFiltering() bool {
	if m.activeTab == tabSurahs {
		return m.surahsView.Filtering()
	}
	return false
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.surahsView, _ = m.surahsView.Update(sz)
	m.readView, _ = m.readView.Update(sz)
	m.statsView, _ = m.statsView.Update(sz)
	m.prayerView, _ = m.prayerView.Update(sz)
}

func (m *Model) applyAudioEvent(event audiodto.EventOutput) {
	switch event.Kind {
	case "loading":
		m.readView.SetPlayback(event.VerseID, "loading")
	case "play":
		m.readView.SetPlayback(event.VerseID, "playing")
	case "pause":
		m.readView.SetPlayback(event.VerseID, "paused")
	case "ended":
		m.readView.SetPlayback(0, "")
	case "error":
		m.readView.SetPlayback(0, "")
		if event.Error != "" {
			m.status = "audio: " + event.Error
		}
	}
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadActiveCmd() tea.Cmd {
	return func() tea.Msg {
		active, err := m.progress.GetActive(context.Background())
		return activeLoadedMsg{active: active, err: err}
	}
}

func (m Model) loadRecordCmd() tea.Cmd {
	return func() tea.Msg {
		record, err := m.progress.Record(context.Background())
		return recordLoadedMsg{record: record, err: err}
	}
}

func (m Model) loadSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		settings, err := m.settings.Get(context.Background())
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

func (m Model) startSessionCmd(surah, ayah int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.progress.StartSession(context.Background(), surah, ayah)
		return sessionStartedMsg{out: out, err: err}
	}
}

func (m Model) endSessionCmd(versesRead int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.progress.EndSession(context.Background(), "", versesRead, nil)
		return sessionEndedMsg{out: out, err: err}
	}
}

func (m Model) setGoalCmd(minutes int) tea.Cmd {
	return func() tea.Msg {
		if err := m.progress.SetDailyGoal(context.Background(), minutes); err != nil {
			return statusMsg{text: "goal: " + err.Error()}
		}
		return statusMsg{text: fmt.Sprintf("daily goal set to %d min", minutes)}
	}
}

func (m Model) setPositionCmd(surah, ayah int) tea.Cmd {
	return func() tea.Msg {
		if err := m.progress.SetPosition(context.Background(), surah, ayah); err != nil {
			return statusMsg{text: "position: " + err.Error()}
		}
		return statusMsg{text: fmt.Sprintf("position saved: %d:%d", surah, ayah)}
	}
}

func (m Model) savePositionCmd() tea.Cmd {
	verse, ok := m.readView.SelectedVerse()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		_ = m.progress.SetPosition(context.Background(), verse.Surah, verse.Ayah)
		return nil
	}
}

func (m Model) toggleBookmarkCmd(verseID int) tea.Cmd {
	return func() tea.Msg {
		bookmarked, err := m.progress.ToggleBookmark(context.Background(), verseID)
		return bookmarkToggledMsg{verseID: verseID, bookmarked: bookmarked, err: err}
	}
}

func (m Model) completeSurahCmd(number int) tea.Cmd {
	return func() tea.Msg {
		err := m.progress.MarkSurahCompleted(context.Background(), number)
		return surahCompletedMsg{number: number, err: err}
	}
}

func (m Model) updateSettingsCmd(input settingsdto.UpdateInput) tea.Cmd {
	return func() tea.Msg {
		settings, err := m.settings.Update(context.Background(), input)
		return settingsLoadedMsg{settings: settings, err: err}
	}
}

// togglePlaybackCmd plays the selected verse, or pauses/resumes when that
// verse is already the current track.
func (m Model) togglePlaybackCmd() tea.Cmd {
	verse, ok := m.readView.SelectedVerse()
	if !ok {
		return func() tea.Msg { return statusMsg{text: "no verse selected"} }
	}
	return func() tea.Msg {
		ctx := context.Background()
		if track, playing := m.audio.CurrentTrack(); playing && track.VerseID == verse.ID {
			switch m.audio.State() {
			case "playing":
				if err := m.audio.Pause(ctx); err != nil {
					return statusMsg{text: "audio: " + err.Error()}
				}
				return nil
			case "paused":
				if err := m.audio.Resume(ctx); err != nil {
					return statusMsg{text: "audio: " + err.Error()}
				}
				return nil
			}
		}
		url := verse.AudioURL
		if m.prefs.Reciter != "" {
			url = scripturedomain.AudioURL(m.prefs.Reciter, verse.ID)
		}
		err := m.audio.PlayVerse(ctx, audiodto.PlayInput{
			VerseID: verse.ID,
			Surah:   verse.Surah,
			Ayah:    verse.Ayah,
			URL:     url,
		})
		if err != nil {
			return statusMsg{text: "audio: " + err.Error()}
		}
		return nil
	}
}

// waitAudioCmd blocks on the player event channel; each delivered event
// re-arms the wait in Update.
func (m Model) waitAudioCmd() tea.Cmd {
	return func() tea.Msg {
		return audioEventMsg{event: <-m.audioEvents}
	}
}

// ─── port bridges ─────────────────────────────────────────────────────────────
// Each bridge narrows a broad port interface to the minimal interface needed by
// a specific sub-view, keeping view packages free of knowledge about the wider
// port surface.

type scripturePortBridge struct{ p scripturePort }

func (b scripturePortBridge) ListSurahs(ctx context.Context) ([]scripturedto.SurahOutput, error) {
	return b.p.ListSurahs(ctx)
}
func (b scripturePortBridge) GetSurah(ctx context.Context, number int, edition string) ([]scripturedto.VerseOutput, error) {
	return b.p.GetSurah(ctx, number, edition)
}

type progressPortBridge struct{ p progressPort }

func (b progressPortBridge) Overview(ctx context.Context) (progressdto.OverviewOutput, error) {
	return b.p.Overview(ctx)
}
func (b progressPortBridge) WeeklyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return b.p.WeeklyStats(ctx)
}
func (b progressPortBridge) MonthlyStats(ctx context.Context) (progressdto.StatsOutput, error) {
	return b.p.MonthlyStats(ctx)
}
func (b progressPortBridge) Record(ctx context.Context) (progressdto.RecordOutput, error) {
	return b.p.Record(ctx)
}

type prayerPortBridge struct{ p prayerPort }

func (b prayerPortBridge) Times(ctx context.Context, latitude, longitude float64) (prayerdto.TimesOutput, error) {
	return b.p.Times(ctx, latitude, longitude)
}
func (b prayerPortBridge) NextPrayer(ctx context.Context, latitude, longitude float64) (prayerdto.NextPrayerOutput, error) {
	return b.p.NextPrayer(ctx, latitude, longitude)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
