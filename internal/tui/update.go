package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/tempo-app/tempo/internal/errors"
	"github.com/tempo-app/tempo/internal/models"
	"github.com/tempo-app/tempo/internal/timer"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = min(60, msg.Width-10)
		return m, nil

	case tickMsg:
		if done, err := m.engine.Tick(); err != nil {
			m.status = "Failed to complete session: " + err.Error()
		} else if done {
			m.status = "Focus session complete. Take a break."
		}
		return m, tickCmd()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		var err error
		if m.active == tabTodos {
			_, err = m.store.Todos.Create(m.formValue)
		} else {
			_, err = m.store.Habits.Create(m.formValue)
		}
		if err != nil {
			m.status = err.Error()
		}
		m.form = nil
		m.reload()
	case huh.StateAborted:
		m.form = nil
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.NextTab):
		m.active = (m.active + 1) % 3
		m.status = ""

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Add):
		switch m.active {
		case tabTodos:
			return m.openForm("What needs doing?")
		case tabHabits:
			return m.openForm("Habit to track?")
		}

	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()

	case key.Matches(msg, m.keys.Delete):
		m.deleteCurrent()

	case key.Matches(msg, m.keys.Start):
		if m.active == tabFocus {
			m.startOrResume()
		}

	case key.Matches(msg, m.keys.Pause):
		if m.active == tabFocus {
			m.engine.Pause()
		}

	case key.Matches(msg, m.keys.Reset):
		if m.active == tabFocus {
			m.engine.Reset()
			m.status = "Timer reset. The open session stays in storage."
		}
	}
	return m, nil
}

func (m Model) openForm(title string) (tea.Model, tea.Cmd) {
	m.formValue = ""
	m.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&m.formValue),
	))
	return m, m.form.Init()
}

func (m *Model) moveCursor(delta int) {
	switch m.active {
	case tabTodos:
		m.todoCursor = clampIndex(m.todoCursor+delta, len(m.todos))
	case tabHabits:
		m.habitCursor = clampIndex(m.habitCursor+delta, len(m.habits))
	}
}

func (m *Model) toggleCurrent() {
	switch m.active {
	case tabTodos:
		if m.todoCursor >= len(m.todos) {
			return
		}
		todo := m.todos[m.todoCursor]
		done := !todo.Done
		if _, err := m.store.Todos.Update(todo.ID, models.TodoPatch{Done: &done}); err != nil {
			m.status = err.Error()
		}
		m.reload()
	case tabHabits:
		if m.habitCursor >= len(m.habits) {
			return
		}
		habit := m.habits[m.habitCursor]
		completed := !m.doneToday[habit.ID]
		if _, err := m.store.Completions.Toggle(habit.ID, habit.Label, m.today(), completed); err != nil {
			m.status = err.Error()
		}
		m.reload()
	}
}

func (m *Model) deleteCurrent() {
	switch m.active {
	case tabTodos:
		if m.todoCursor >= len(m.todos) {
			return
		}
		if err := m.store.Todos.Delete(m.todos[m.todoCursor].ID); err != nil {
			m.status = err.Error()
		}
		m.reload()
	case tabHabits:
		if m.habitCursor >= len(m.habits) {
			return
		}
		if err := m.store.Habits.Delete(m.habits[m.habitCursor].ID); err != nil {
			m.status = err.Error()
		}
		m.reload()
	}
}

func (m *Model) startOrResume() {
	switch m.engine.State() {
	case timer.StatePaused:
		m.engine.Resume()
	case timer.StateIdle, timer.StateCompleted:
		if m.engine.State() == timer.StateCompleted {
			m.engine.Reset()
		}
		if err := m.engine.Start(); err != nil {
			// An open session left behind by reset or another process;
			// pick it up instead of failing.
			if errors.IsConflict(err) {
				if aerr := m.engine.Attach(); aerr == nil {
					return
				}
			}
			m.status = err.Error()
		}
	}
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
