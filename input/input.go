package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// IsInteractive reports whether stdin is a terminal.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Prompt asks for a single line of text. The placeholder is only a hint;
// pressing Enter on an empty box returns "". Esc or Ctrl+C also return "".
func Prompt(message, placeholder string) (string, error) {
	if !IsInteractive() {
		return ReadLine(os.Stdin)
	}

	final, err := tea.NewProgram(newPromptModel(message, placeholder)).Run()
	if err != nil {
		return "", fmt.Errorf("failed to show prompt: %w", err)
	}
	return final.(promptModel).Result(), nil
}

// ReadLine reads one line from r and trims surrounding whitespace.
// EOF with no data yields "".
func ReadLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a yes/no question on stdout and reads the answer from r.
// Returns true for y/yes; an empty answer returns defaultYes.
func Confirm(r io.Reader, message string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}

	fmt.Print(promptStyle.Render(message) + " " + hintStyle.Render(hint) + ": ")

	answer, err := ReadLine(r)
	if err != nil {
		return defaultYes
	}
	answer = strings.ToLower(answer)
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

// promptModel is the BubbleTea model behind Prompt.
type promptModel struct {
	message   string
	input     textinput.Model
	submitted bool
}

func newPromptModel(message, placeholder string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Focus()

	return promptModel{message: message, input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted {
		return ""
	}
	var b strings.Builder
	b.WriteString(promptStyle.Render(m.message) + "\n")
	b.WriteString(m.input.View() + "\n")
	b.WriteString(hintStyle.Render("[Enter] Confirm    [Esc] Cancel") + "\n")
	return b.String()
}

// Result returns the trimmed value if the prompt was submitted, "" otherwise.
func (m promptModel) Result() string {
	if !m.submitted {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}
