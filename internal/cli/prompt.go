package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// passwordModel is the bubbletea model for masked password entry.
type passwordModel struct {
	prompt   string
	input    []rune
	done     bool
	canceled bool
}

func (m passwordModel) Init() tea.Cmd {
	return nil
}

func (m passwordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeyRunes, tea.KeySpace:
			m.input = append(m.input, key.Runes...)
		}
	}
	return m, nil
}

func (m passwordModel) View() string {
	if m.done || m.canceled {
		return ""
	}
	return m.prompt + " " + StyleDim.Render(strings.Repeat("*", len(m.input)))
}

// promptPassword interactively asks for a password without echoing it.
func promptPassword(prompt string) (string, error) {
	p := tea.NewProgram(passwordModel{prompt: prompt})
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	m, ok := final.(passwordModel)
	if !ok || m.canceled {
		return "", fmt.Errorf("password entry canceled")
	}
	return string(m.input), nil
}
