package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-shooter/internal/registry"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

const (
	scoreboardRuns  = 50 // Runs loaded per mode
	statsPaneWidth  = 30
	minWidthForPane = 96 // Below this the stats pane goes under the table
)

// ScoreboardKeyMap holds the high score screen keys.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Mode key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp implements help.KeyMap.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mode, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Mode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap scrolls with arrows or j/k and switches modes with tab.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll")),
		Mode: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right", "h", "l"),
			key.WithHelp("tab/←/→", "switch mode"),
		),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// modeBoard holds what the scoreboard shows for one game mode.
type modeBoard struct {
	info  registry.GameInfo
	runs  []storage.ScoreEntry
	stats *storage.GameStats // Nil without a store
}

// ScoreboardModel shows the best runs and totals of each shooter mode.
type ScoreboardModel struct {
	boards []modeBoard
	active int
	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel loads every mode's runs and stats from store, which
// may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	for _, info := range registry.List() {
		m.boards = append(m.boards, loadBoard(store, info))
	}
	m.table = m.newTable()
	return m
}

func loadBoard(store *storage.Store, info registry.GameInfo) modeBoard {
	b := modeBoard{info: info}
	if store == nil {
		return b
	}
	if runs, err := store.TopScores(info.ID, scoreboardRuns); err == nil {
		b.runs = runs
	}
	if stats, err := store.GetGameStats(info.ID); err == nil {
		b.stats = stats
	}
	return b
}

// wide reports whether the stats pane fits beside the table.
func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPane
}

// newTable builds the runs table for the active mode at the current size.
func (m ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 6},
		{Title: "Kills", Width: 5},
		{Title: "Wave", Width: 4},
		{Title: "Lvl", Width: 3},
		{Title: "Result", Width: 6},
		{Title: "Played", Width: 12},
	}

	avail := m.width - 6
	if m.wide() {
		avail -= statsPaneWidth + 4
	}
	if used := columnsWidth(columns); avail > used {
		columns[1].Width += min(avail-used, 8)
	}

	rows := 5
	if h := m.height - 10; h > rows {
		rows = h
	}
	if !m.wide() {
		rows = max(3, rows-8)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(rows),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// columnsWidth returns the total width of the columns, including cell padding.
func columnsWidth(columns []table.Column) int {
	total := 0
	for _, c := range columns {
		total += c.Width + 2
	}
	return total
}

func (m ScoreboardModel) rows() []table.Row {
	if len(m.boards) == 0 {
		return nil
	}
	runs := m.boards[m.active].runs
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Kills),
			fmt.Sprintf("%d", r.Wave),
			fmt.Sprintf("%d", r.Level),
			resultText(r.Won),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

func resultText(won bool) string {
	if won {
		return "won"
	}
	return "lost"
}

// switchMode moves the active mode by delta, wrapping around.
func (m *ScoreboardModel) switchMode(delta int) {
	n := len(m.boards)
	if n == 0 {
		return
	}
	m.active = ((m.active+delta)%n + n) % n
	m.table = m.newTable()
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update scrolls the runs table, switches modes and handles leaving.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Mode):
			delta := 1
			if s := msg.String(); s == "shift+tab" || s == "left" || s == "h" {
				delta = -1
			}
			m.switchMode(delta)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.newTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	tabStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View draws the mode tabs, the runs table and the totals pane.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("H I G H   S C O R E S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	runs := boxStyle.Render(m.runsView())
	stats := boxStyle.Width(statsPaneWidth).Render(m.statsView())
	if m.wide() {
		b.WriteString(centerText(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", stats), m.width))
	} else {
		b.WriteString(centerText(runs, m.width))
		b.WriteString("\n")
		b.WriteString(centerText(stats, m.width))
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.boards))
	for i, board := range m.boards {
		if i == m.active {
			tabs[i] = activeTabStyle.Render(board.info.Title)
		} else {
			tabs[i] = tabStyle.Render(board.info.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) runsView() string {
	if len(m.boards) == 0 || len(m.boards[m.active].runs) == 0 {
		return dimStyle.Italic(true).Padding(1, 3).
			Render("No runs recorded yet.\nClear a wave or two and come back!")
	}
	return m.table.View()
}

// statsView renders the totals of the active mode.
func (m ScoreboardModel) statsView() string {
	var st *storage.GameStats
	if len(m.boards) > 0 {
		st = m.boards[m.active].stats
	}
	if st == nil || st.GamesCount == 0 {
		return dimStyle.Render("No games played")
	}

	winRate := float64(st.Wins) / float64(st.GamesCount) * 100
	last := "-"
	if !st.LastPlayed.IsZero() {
		last = st.LastPlayed.Format("Jan 02 15:04")
	}

	lines := []struct{ label, value string }{
		{"Games", fmt.Sprintf("%d", st.GamesCount)},
		{"Wins", fmt.Sprintf("%d (%.0f%%)", st.Wins, winRate)},
		{"Best score", fmt.Sprintf("%d", st.HighScore)},
		{"Avg score", fmt.Sprintf("%.0f", st.AvgScore)},
		{"Best wave", fmt.Sprintf("%d", st.BestWave)},
		{"Total kills", fmt.Sprintf("%d", st.TotalKills)},
		{"Last played", last},
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render("Totals"))
	for _, l := range lines {
		fmt.Fprintf(&b, "\n%-12s %s", l.label, l.value)
	}
	return b.String()
}

// ActiveMode returns the ID of the mode on screen.
func (m ScoreboardModel) ActiveMode() string {
	if len(m.boards) == 0 {
		return ""
	}
	return m.boards[m.active].info.ID
}

// IsGoingBack reports whether the player asked for the menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to exit the program.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard shows the high scores full screen. goBack is false when
// the player quit instead of returning to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
