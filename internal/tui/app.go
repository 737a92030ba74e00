// internal/tui/app.go
//
// This is the interactive drafter. It uses bubbletea, which follows The Elm
// Architecture: the App holds all state, Update folds messages into it, and
// View renders it.
//
// Two tabs: the player pool where the user picks exactly ten players, and the
// team display that shows the balanced split and its copy-paste summary.

package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/drafter/internal/balance"
	"github.com/kingrea/drafter/internal/config"
	"github.com/kingrea/drafter/internal/logbook"
	"github.com/kingrea/drafter/internal/present"
	"github.com/kingrea/drafter/internal/roster"
	"github.com/kingrea/drafter/internal/selection"
)

// appState represents which tab we're on
type appState int

const (
	stateSelect appState = iota // Player pool, toggling picks
	stateTeams                  // Balanced teams for the last draft
)

const logPanelLines = 6

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn present.CopyFunc) AppOption {
	return func(a *App) {
		if fn != nil {
			a.copyFn = fn
		}
	}
}

// WithDraftOptions fixes the balancer options used for every draft, overriding
// the configured seed.
func WithDraftOptions(opts ...balance.Option) AppOption {
	return func(a *App) {
		a.draftOpts = opts
	}
}

// WithClock overrides the time source used for exported records.
func WithClock(now func() time.Time) AppOption {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

type clipboardMsg struct {
	err error
}

type exportFinishedMsg struct {
	id   string
	path string
	err  error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	state     appState
	config    *config.Config
	logbook   *logbook.Logbook
	roster    roster.Result
	selection *selection.Selection
	split     *balance.TeamSplit

	copyFn    present.CopyFunc
	draftOpts []balance.Option
	now       func() time.Time

	// UI components
	poolList  list.Model
	keys      keyMap
	help      help.Model
	statusMsg string
	notice    string

	width  int
	height int
}

// playerItem implements list.Item for one pool entry.
type playerItem struct {
	player   roster.Participant
	selected bool
}

func (i playerItem) Title() string {
	if i.selected {
		return "✓ " + i.player.Name
	}
	return "  " + i.player.Name
}

func (i playerItem) Description() string {
	return fmt.Sprintf("Score %d · %s", i.player.Score, i.player.Role)
}

func (i playerItem) FilterValue() string { return i.player.Name }

// NewApp loads the roster named by cfg and builds the application model. A
// missing roster file is returned as an error before any UI is shown.
func NewApp(cfg *config.Config, opts ...AppOption) (*App, error) {
	lb, logErr := logbook.New(cfg.LogPath())
	result, err := roster.Load(cfg.RosterPath())
	if err != nil {
		lb.Error("Roster load failed: %v", err)
		return nil, err
	}
	lb.Info("Session opened · %d players from %s", len(result.Participants), result.Path)
	for _, diag := range result.Diagnostics {
		lb.Warn("Skipped roster %s", diag)
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	poolList := list.New(nil, delegate, 0, 0)
	poolList.Title = "Click on players to select them (10 players max)"
	poolList.SetShowStatusBar(false)
	poolList.SetFilteringEnabled(true)
	poolList.SetShowHelp(false)

	app := &App{
		state:     stateSelect,
		config:    cfg,
		logbook:   lb,
		roster:    result,
		selection: selection.New(result.Participants),
		copyFn:    present.CopyToClipboard,
		now:       time.Now,
		poolList:  poolList,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	app.refreshPool()
	if n := len(result.Diagnostics); n > 0 {
		app.statusMsg = fmt.Sprintf("Loaded %d players · skipped %d malformed line(s), see log", len(result.Participants), n)
	} else {
		app.statusMsg = fmt.Sprintf("Loaded %d players", len(result.Participants))
	}
	if logErr != nil {
		app.notice = fmt.Sprintf("Logging disabled: %v", logErr)
	}
	return app, nil
}

func (a *App) logInfo(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Info(format, args...)
}

func (a *App) logWarn(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Warn(format, args...)
}

func (a *App) logError(format string, args ...any) {
	if a.logbook == nil {
		return
	}
	a.logbook.Error(format, args...)
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.poolList.SetSize(max(0, msg.Width/2), max(0, msg.Height-14))
		return a, nil

	case clipboardMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Clipboard unavailable: %v", msg.err)
			a.logWarn("Clipboard copy failed: %v", msg.err)
			return a, nil
		}
		a.statusMsg = "Team summary copied to clipboard"
		return a, nil

	case exportFinishedMsg:
		if msg.err != nil {
			a.statusMsg = fmt.Sprintf("Export failed: %v", msg.err)
			a.logError("Export failed: %v", msg.err)
			return a, nil
		}
		a.statusMsg = fmt.Sprintf("Draft exported to %s", msg.path)
		a.logInfo("Draft %s exported to %s", msg.id, msg.path)
		return a, nil

	case tea.KeyMsg:
		if a.state == stateSelect && a.poolList.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Draft):
			return a.draft()
		case key.Matches(msg, a.keys.Switch):
			return a.switchTab()
		}
		switch a.state {
		case stateSelect:
			switch {
			case key.Matches(msg, a.keys.Toggle):
				return a.toggleCurrent()
			case key.Matches(msg, a.keys.Clear):
				a.selection.Clear()
				a.notice = ""
				a.refreshPool()
				a.statusMsg = "Selection cleared"
				return a, nil
			}
		case stateTeams:
			switch {
			case key.Matches(msg, a.keys.Back):
				a.state = stateSelect
				return a, nil
			case key.Matches(msg, a.keys.Copy):
				return a, a.copySummary()
			case key.Matches(msg, a.keys.Export):
				return a, a.exportDraft()
			}
			return a, nil
		}
	}

	if a.state == stateSelect {
		var cmd tea.Cmd
		a.poolList, cmd = a.poolList.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a *App) toggleCurrent() (tea.Model, tea.Cmd) {
	item, ok := a.poolList.SelectedItem().(playerItem)
	if !ok {
		return a, nil
	}
	return a.toggle(item.player.Name)
}

func (a *App) toggle(name string) (tea.Model, tea.Cmd) {
	added, err := a.selection.Toggle(name)
	if err != nil {
		if errors.Is(err, selection.ErrLimitReached) {
			a.notice = fmt.Sprintf("Limit Reached · You can only select %d players.", selection.Limit)
			a.logWarn("Selection rejected %s: limit of %d reached", name, selection.Limit)
			return a, nil
		}
		a.notice = err.Error()
		return a, nil
	}
	a.notice = ""
	verb := "Removed"
	if added {
		verb = "Selected"
	}
	a.statusMsg = fmt.Sprintf("%s %s · %d/%d", verb, name, a.selection.Count(), selection.Limit)
	return a, a.refreshPool()
}

func (a *App) draft() (tea.Model, tea.Cmd) {
	split, err := a.selection.Draft(a.draftOptions()...)
	if err != nil {
		if errors.Is(err, balance.ErrIncompleteSelection) {
			a.notice = fmt.Sprintf("Incomplete Selection · Please select exactly %d players.", selection.Limit)
			a.logWarn("Draft requested with %d player(s) selected", a.selection.Count())
			return a, nil
		}
		a.notice = fmt.Sprintf("Draft failed: %v", err)
		a.logError("Draft failed: %v", err)
		return a, nil
	}
	a.split = &split
	a.notice = ""
	a.state = stateTeams
	a.statusMsg = fmt.Sprintf("Drafted · %d vs %d · seed %d", split.ScoreA, split.ScoreB, split.Seed)
	a.logInfo("Draft · %d vs %d (diff %d, role balance %d, seed %d) · %s",
		split.ScoreA, split.ScoreB, split.ScoreDiff(), split.RoleBalance, split.Seed,
		strings.ReplaceAll(present.Summary(split), "\n", " | "))
	if a.config != nil && a.config.ClipboardEnabled() {
		return a, a.copySummary()
	}
	return a, nil
}

func (a *App) draftOptions() []balance.Option {
	if a.draftOpts != nil {
		return a.draftOpts
	}
	if a.config != nil && a.config.Seed() != 0 {
		return []balance.Option{balance.WithSeed(a.config.Seed())}
	}
	return nil
}

func (a *App) switchTab() (tea.Model, tea.Cmd) {
	if a.state == stateTeams {
		a.state = stateSelect
		return a, nil
	}
	if a.split == nil {
		a.statusMsg = "No teams drafted yet"
		return a, nil
	}
	a.state = stateTeams
	return a, nil
}

func (a *App) copySummary() tea.Cmd {
	if a.split == nil {
		return nil
	}
	summary := present.Summary(*a.split)
	copyFn := a.copyFn
	return func() tea.Msg {
		return clipboardMsg{err: copyFn(summary)}
	}
}

func (a *App) exportDraft() tea.Cmd {
	if a.split == nil || a.config == nil {
		return nil
	}
	rec := present.NewRecord(*a.split, a.now())
	dir := a.config.ExportDir()
	return func() tea.Msg {
		path, err := present.Export(dir, rec)
		return exportFinishedMsg{id: rec.ID, path: path, err: err}
	}
}

func (a *App) refreshPool() tea.Cmd {
	pool := a.selection.Pool()
	items := make([]list.Item, len(pool))
	for i, p := range pool {
		items[i] = playerItem{player: p, selected: a.selection.IsSelected(p.Name)}
	}
	return a.poolList.SetItems(items)
}

// Shutdown persists the roster sorted by name when configured to. It refuses
// to rewrite a file that had malformed lines, since those would be lost.
func (a *App) Shutdown() error {
	if a.config == nil || !a.config.SaveOnExit() {
		return nil
	}
	if n := len(a.roster.Diagnostics); n > 0 {
		a.logWarn("Roster not rewritten: %d malformed line(s) would be dropped", n)
		return nil
	}
	if err := roster.Save(a.config.RosterPath(), a.roster.Participants); err != nil {
		a.logError("Roster save failed: %v", err)
		return err
	}
	a.logInfo("Roster saved sorted to %s", a.config.RosterPath())
	return nil
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 100
	}
	rightWidth := max(32, width/3)
	leftWidth := width - rightWidth - 4
	if leftWidth < 40 {
		leftWidth = width - 4
		rightWidth = 0
	}

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF6B6B")).
		MarginBottom(1).
		Render("⬡ DRAFTER")
	sections := []string{header, a.renderTabs()}

	switch a.state {
	case stateSelect:
		sections = append(sections, a.renderSelectBoard(leftWidth, rightWidth))
	case stateTeams:
		sections = append(sections, renderTeams(a.split, width-4))
	}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	if a.notice != "" {
		sections = append(sections, noticeStyle.Render(a.notice))
	}
	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.statusMsg)
	sections = append(sections, footer, a.renderHelp())
	return strings.Join(sections, "\n")
}

func (a *App) renderTabs() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).Underline(true)
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	selectTab, teamsTab := inactive, inactive
	if a.state == stateSelect {
		selectTab = active
	} else {
		teamsTab = active
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		selectTab.Render("Player Selection"),
		"   ",
		teamsTab.Render("Team Display"),
	)
}

func (a *App) renderSelectBoard(leftWidth, rightWidth int) string {
	selectedLine := "Selected Players: " + strings.Join(roster.Names(a.selection.Selected()), ", ")
	left := lipgloss.JoinVertical(lipgloss.Left,
		a.poolList.View(),
		"",
		lipgloss.NewStyle().Width(max(20, leftWidth-4)).Render(selectedLine),
	)
	leftBox := panelStyle.Width(max(20, leftWidth)).Render(left)
	if rightWidth <= 0 {
		return leftBox
	}
	rightBox := panelStyle.Width(max(20, rightWidth)).Render(a.renderPicksPanel(rightWidth - 4))
	return lipgloss.JoinHorizontal(lipgloss.Top, leftBox, rightBox)
}

func (a *App) renderPicksPanel(width int) string {
	picked := a.selection.Selected()
	title := panelTitleStyle.Render(fmt.Sprintf("Picks (%d/%d)", len(picked), selection.Limit))
	if len(picked) == 0 {
		note := mutedStyle.Render("Nobody picked yet. Press space on a player.")
		return lipgloss.JoinVertical(lipgloss.Left, title, note)
	}
	rows := make([]string, 0, len(picked)+2)
	for i, p := range picked {
		rows = append(rows, fmt.Sprintf("%2d. %s (%d · %s)", i+1, p.Name, p.Score, p.Role))
	}
	rows = append(rows, "", fmt.Sprintf("Total score: %d", roster.TotalScore(picked)))
	if remaining := a.selection.Remaining(); remaining > 0 {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("%d more to draft", remaining)))
	} else {
		rows = append(rows, readyStyle.Render("Ready · press d to draft"))
	}
	body := lipgloss.NewStyle().Width(max(20, width)).Render(strings.Join(rows, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, title, body)
}

func (a *App) renderLogPanel() string {
	if a.logbook == nil {
		return ""
	}
	lines, total := a.logbook.Tail(logPanelLines)
	if len(lines) == 0 {
		return ""
	}
	fileName := filepath.Base(a.logbook.Path())
	if fileName == "." || fileName == "" {
		fileName = "log"
	}
	head := panelTitleStyle.Render(fmt.Sprintf("LOG · %s · %d entries", fileName, total))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")).
		Render(strings.Join(lines, "\n"))
	return panelStyle.Render(fmt.Sprintf("%s\n%s", head, body))
}

func (a *App) renderHelp() string {
	if a.state == stateTeams {
		return a.help.ShortHelpView(a.keys.teamsHelp())
	}
	return a.help.ShortHelpView(a.keys.selectionHelp())
}
