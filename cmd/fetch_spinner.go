package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// fetchSpinner shows a spinner on stderr while a network fetch runs and
// hands the fetch's error back once it settles.
type fetchSpinner struct {
	spinner spinner.Model
	label   string
	start   tea.Cmd
	err     error
	settled bool
}

type fetchSettledMsg struct {
	err error
}

func newFetchSpinner(label string, start tea.Cmd) fetchSpinner {
	sp := spinner.New(
		spinner.WithSpinner(spinner.MiniDot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
	)

	return fetchSpinner{
		spinner: sp,
		label:   lipgloss.NewStyle().Faint(true).Render(label),
		start:   start,
	}
}

func (m fetchSpinner) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.start)
}

func (m fetchSpinner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchSettledMsg:
		m.settled = true
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m fetchSpinner) View() string {
	if m.settled {
		return ""
	}

	return m.spinner.View() + " " + m.label
}

func runFetchSpinner(ctx context.Context, output io.Writer, label string, fetch func(context.Context) error) error {
	program := tea.NewProgram(
		newFetchSpinner(label, func() tea.Msg {
			return fetchSettledMsg{err: fetch(ctx)}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return err
	}

	model, ok := final.(fetchSpinner)
	if !ok {
		return fmt.Errorf("unexpected spinner model %T", final)
	}

	return model.err
}
