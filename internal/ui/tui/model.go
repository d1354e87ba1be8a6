// Package tui is a terminal front end over the same controller the desktop
// window uses.
package tui

import (
	"fmt"
	"strings"

	"pomotask/internal/app"
	"pomotask/internal/core/model"
	"pomotask/internal/core/session"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Padding(0, 1)
	clockStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	workStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	breakStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	longBreakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)
	itemStyle      = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("12")).Bold(true)
	doneStyle      = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("241")).Strikethrough(true)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const maxBarWidth = 48

// Controller is the subset of app.Controller the terminal UI drives.
type Controller interface {
	ToggleRunning()
	Reset()
	SkipBreak()
	ToggleSound()
	AddTask(text string, category model.Category, priority model.Priority) (model.Task, bool)
	ToggleTask(id string) bool
	RemoveTask(id string) bool
}

type snapshotMsg app.Snapshot

type closedMsg struct{}

// Model renders controller snapshots and maps keys to intents.
type Model struct {
	controller Controller
	snapshots  <-chan app.Snapshot
	snapshot   app.Snapshot
	cursor     int
	adding     bool
	input      textinput.Model
	category   model.Category
	priority   model.Priority
	bar        progress.Model
	quitting   bool
}

func New(controller Controller, snapshots <-chan app.Snapshot) *Model {
	input := textinput.New()
	input.Placeholder = "what needs doing?"
	input.CharLimit = 200

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = maxBarWidth

	return &Model{
		controller: controller,
		snapshots:  snapshots,
		input:      input,
		category:   model.CategoryWork,
		priority:   model.PriorityMedium,
		bar:        bar,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.waitForSnapshot()
}

func (m *Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		snapshot, ok := <-m.snapshots
		if !ok {
			return closedMsg{}
		}
		return snapshotMsg(snapshot)
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = app.Snapshot(msg)
		m.clampCursor()
		return m, m.waitForSnapshot()

	case closedMsg:
		m.quitting = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.bar.Width = min(maxBarWidth, max(msg.Width-4, 10))

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case " ":
		m.controller.ToggleRunning()

	case "r":
		m.controller.Reset()

	case "b":
		m.controller.SkipBreak()

	case "s":
		m.controller.ToggleSound()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.snapshot.Tasks)-1 {
			m.cursor++
		}

	case "x", "enter":
		if task, ok := m.selected(); ok {
			m.controller.ToggleTask(task.ID)
		}

	case "d", "delete":
		if task, ok := m.selected(); ok {
			m.controller.RemoveTask(task.ID)
		}

	case "a":
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()
	}

	return m, nil
}

func (m *Model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		m.stopAdding()
		return m, nil

	case "enter":
		if _, ok := m.controller.AddTask(m.input.Value(), m.category, m.priority); ok {
			m.stopAdding()
		}
		return m, nil

	case "tab":
		m.category = m.category.Next()
		return m, nil

	case "shift+tab":
		m.priority = m.priority.Next()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Model) selected() (model.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snapshot.Tasks) {
		return model.Task{}, false
	}
	return m.snapshot.Tasks[m.cursor], true
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.snapshot.Tasks) {
		m.cursor = len(m.snapshot.Tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	snapshot := m.snapshot
	var s strings.Builder

	s.WriteString(titleStyle.Render("PomoTask"))
	s.WriteString("\n\n")

	s.WriteString(phaseStyle(snapshot.Phase).Render(snapshot.PhaseLabel))
	s.WriteString(clockStyle.Render(snapshot.Clock))
	if !snapshot.Running {
		s.WriteString(metaStyle.Render("paused"))
	}
	s.WriteString("\n")
	s.WriteString(m.bar.ViewAs(snapshot.Progress))
	s.WriteString("\n")

	sound := "off"
	if snapshot.SoundEnabled {
		sound = "on"
	}
	s.WriteString(metaStyle.Render(fmt.Sprintf("session %s · %d pomodoros · sound %s",
		snapshot.CycleLabel(), snapshot.CompletedPomodoros, sound)))
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("Tasks (%d/%d done)\n", snapshot.TaskStats.Completed, snapshot.TaskStats.Total))
	if len(snapshot.Tasks) == 0 {
		s.WriteString(itemStyle.Render(metaStyle.Render("no tasks yet")))
		s.WriteString("\n")
	}
	for i, task := range snapshot.Tasks {
		s.WriteString(m.renderTask(i, task))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	if m.adding {
		s.WriteString(m.input.View())
		s.WriteString("\n")
		s.WriteString(helpStyle.Render(fmt.Sprintf("category: %s (tab) · priority: %s (shift+tab) · enter to add, esc to cancel",
			m.category, m.priority)))
	} else {
		s.WriteString(helpStyle.Render("space start/pause · r reset · b skip break · s sound · a add · x toggle · d delete · q quit"))
	}
	s.WriteString("\n")

	return s.String()
}

func (m *Model) renderTask(index int, task model.Task) string {
	mark := "[ ]"
	if task.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s", mark, task.Text)
	meta := metaStyle.Render(fmt.Sprintf(" %s/%s", task.Category, task.Priority))

	switch {
	case index == m.cursor:
		return selectedStyle.Render("> "+line) + meta
	case task.Completed:
		return doneStyle.Render("  "+line) + meta
	default:
		return itemStyle.Render("  "+line) + meta
	}
}

func phaseStyle(phase session.Phase) lipgloss.Style {
	switch phase {
	case session.PhaseBreak:
		return breakStyle
	case session.PhaseLongBreak:
		return longBreakStyle
	default:
		return workStyle
	}
}

// Run drives controller from the terminal until the user quits.
func Run(controller *app.Controller) error {
	p := tea.NewProgram(New(controller, controller.Subscribe()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
