package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tempo-app/tempo/internal/models"
	prog "github.com/tempo-app/tempo/internal/progress"
	"github.com/tempo-app/tempo/internal/timer"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("tempo"))
	b.WriteString("  ")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.form.View())
	} else {
		switch m.active {
		case tabTodos:
			b.WriteString(paneStyle.Render(m.renderTodos()))
		case tabHabits:
			b.WriteString(paneStyle.Render(m.renderHabits()))
		case tabFocus:
			b.WriteString(paneStyle.Render(m.renderFocus()))
		}
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) renderTabs() string {
	names := []string{"Todos", "Habits", "Focus"}
	rendered := make([]string, len(names))
	for i, name := range names {
		if tab(i) == m.active {
			rendered[i] = activeTabStyle.Render(name)
		} else {
			rendered[i] = tabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTodos() string {
	if len(m.todos) == 0 {
		return dimStyle.Render("No todos. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, t := range m.todos {
		cursor := "  "
		if i == m.todoCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "○"
		line := t.Text
		if t.Done {
			mark = "✓"
			line = doneStyle.Render(line)
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, line)
	}

	pct := prog.Percent(m.todos, func(t models.TodoItem) bool { return t.Done })
	fmt.Fprintf(&b, "\n%s", dimStyle.Render(fmt.Sprintf("%d%% complete", pct)))
	return b.String()
}

func (m Model) renderHabits() string {
	if len(m.habits) == 0 {
		return dimStyle.Render("No habits. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, h := range m.habits {
		cursor := "  "
		if i == m.habitCursor {
			cursor = cursorStyle.Render("> ")
		}
		mark := "○"
		if m.doneToday[h.ID] {
			mark = "✓"
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, mark, h.Label)
	}

	pct := prog.Percent(m.habits, func(h models.Habit) bool { return m.doneToday[h.ID] })
	fmt.Fprintf(&b, "\n%s", dimStyle.Render(fmt.Sprintf("today: %d%% complete", pct)))
	return b.String()
}

func (m Model) renderFocus() string {
	var b strings.Builder

	b.WriteString(clockStyle.Render(timer.FormatClock(m.engine.Remaining())))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(float64(m.engine.Progress()) / 100))
	b.WriteString("\n\n")

	switch m.engine.State() {
	case timer.StateIdle:
		b.WriteString(dimStyle.Render("Press 's' to start a 25-minute session."))
	case timer.StateRunning:
		b.WriteString(dimStyle.Render("Running. 'p' to pause, 'r' to reset."))
	case timer.StatePaused:
		b.WriteString(dimStyle.Render("Paused. 's' to resume."))
	case timer.StateCompleted:
		b.WriteString(statusStyle.Render("Complete! 's' starts the next session."))
	}

	if sessions, err := m.store.Sessions.Completed(); err == nil && len(sessions) > 0 {
		b.WriteString("\n\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d sessions completed", len(sessions))))
	}
	return b.String()
}
