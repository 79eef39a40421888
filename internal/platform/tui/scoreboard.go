package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chaos-arcade/internal/registry"
	"github.com/vovakirdan/chaos-arcade/internal/storage"
)

const (
	boardScores = 50 // rows loaded per game
	boardChrome = 9  // rows taken by title, tabs, stats, borders and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardStatsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardEmptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true).Padding(1, 2)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Next, k.Prev, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("←", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel lists finished sessions per game, best first.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	store     *storage.Store
	allTime   int // persisted chaos session high score
	stats     *storage.GameStats
	rows      int
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	embedded  bool
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard showing the first registered game.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	if store != nil {
		if high, err := store.LoadHighScore(); err == nil {
			m.allTime = high
		}
	}
	m.table = newScoreTable(width, height)
	m.load()
	return m
}

func newScoreTable(width, height int) table.Model {
	dateW := min(max(width-30, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 5},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-boardChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57"))
	t.SetStyles(s)
	return t
}

// Embedded returns a copy that reports back and quit through IsGoingBack
// and IsQuitting instead of ending the program.
func (m ScoreboardModel) Embedded() ScoreboardModel {
	m.embedded = true
	return m
}

// load fills the table and stats for the current game.
func (m *ScoreboardModel) load() {
	var rows []table.Row
	m.stats = nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.current].ID
		if scores, err := m.store.TopScores(id, boardScores); err == nil {
			for i, s := range scores {
				rows = append(rows, table.Row{
					fmt.Sprintf("#%d", i+1),
					fmt.Sprintf("%d", s.Score),
					s.CreatedAt.Format("Jan 02 15:04"),
				})
			}
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}
	m.rows = len(rows)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(step int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + step + len(m.games)) % len(m.games)
	m.load()
}

func (m ScoreboardModel) exit() (tea.Model, tea.Cmd) {
	if m.embedded {
		return m, nil
	}
	return m, tea.Quit
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m.exit()
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m.exit()
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = newScoreTable(m.width, m.height)
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(boardStatsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n")

	body := boardEmptyStyle.Render("No sessions recorded yet.\nFinish a run to get on the board!")
	if m.rows > 0 {
		body = m.table.View()
	}
	b.WriteString(centerBlock(boardFrameStyle.Render(body), m.width))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width && len(m.games) > 0 {
		return boardActiveTab.Render("< " + m.games[m.current].Title + " >")
	}
	return line
}

// statsLine summarizes the selected game's history.
func (m ScoreboardModel) statsLine() string {
	parts := []string{fmt.Sprintf("All-time high: %d", m.allTime)}
	if st := m.stats; st != nil && st.GamesCount > 0 {
		parts = append(parts,
			fmt.Sprintf("Sessions: %d", st.GamesCount),
			fmt.Sprintf("Average: %.0f", st.AvgScore))
		if !st.LastPlayed.IsZero() {
			parts = append(parts, "Last: "+st.LastPlayed.Format("Jan 02 15:04"))
		}
	}
	return strings.Join(parts, "   ")
}

// centerBlock centers every line of a multi-line block as one unit.
func centerBlock(block string, width int) string {
	pad := (width - lipgloss.Width(block)) / 2
	if pad <= 0 {
		return block
	}
	return lipgloss.NewStyle().MarginLeft(pad).Render(block)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
