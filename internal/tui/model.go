package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	bprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tempo-app/tempo/internal/clock"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/repo"
	"github.com/tempo-app/tempo/internal/timer"
)

type tab int

const (
	tabTodos tab = iota
	tabHabits
	tabFocus
)

type tickMsg time.Time

// Model is the dashboard: a todo pane, a habit pane for today, and the focus
// timer. All storage access goes through the repositories; the timer pane
// re-derives remaining time from the session start timestamp on every tick.
type Model struct {
	store  *repo.Store
	clock  clock.Clock
	engine *timer.Engine

	keys KeyMap
	help help.Model
	bar  bprogress.Model

	active      tab
	todos       []models.TodoItem
	habits      []models.Habit
	doneToday   map[string]bool
	todoCursor  int
	habitCursor int

	form      *huh.Form
	formValue string

	status   string
	width    int
	height   int
	quitting bool
}

func NewModel(store *repo.Store, clk clock.Clock) Model {
	engine := timer.New(store.Sessions, clk)
	if err := engine.Attach(); err != nil {
		engine.Reset()
	}

	m := Model{
		store:  store,
		clock:  clk,
		engine: engine,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		bar:    bprogress.New(bprogress.WithDefaultGradient()),
	}
	m.reload()
	return m
}

func (m *Model) today() string {
	return m.clock.Now().Format(models.DateFormat)
}

// reload refreshes the panes from storage.
func (m *Model) reload() {
	if todos, err := m.store.Todos.All(); err == nil {
		m.todos = todos
	}
	if habits, err := m.store.Habits.Enabled(); err == nil {
		m.habits = habits
	}
	m.doneToday = make(map[string]bool, len(m.habits))
	if completions, err := m.store.Completions.ForDate(m.today()); err == nil {
		for _, c := range completions {
			m.doneToday[c.HabitID] = c.Completed
		}
	}
	if m.todoCursor >= len(m.todos) {
		m.todoCursor = max(0, len(m.todos)-1)
	}
	if m.habitCursor >= len(m.habits) {
		m.habitCursor = max(0, len(m.habits)-1)
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(timer.TickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
