package cli

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

// confirmModel asks a yes/no question. Enter answers yes.
type confirmModel struct {
	Question string
	Answer   bool
	Done     bool
}

func newConfirmModel(question string) confirmModel {
	return confirmModel{Question: question}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y", "enter":
			m.Answer, m.Done = true, true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.Answer, m.Done = false, true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m confirmModel) View() string {
	if m.Done {
		return ""
	}
	return StyleWarning.Render(iconWarning) + " " + m.Question + " " + StyleDim.Render("[Y/n]") + " "
}

// stdinIsTerminal reports whether a person can answer prompts.
var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// confirmRetry asks whether a failed server call should be sent again. It
// answers no without prompting when stdin is not a terminal.
func confirmRetry(ctx context.Context, question string) bool {
	if !stdinIsTerminal() {
		return false
	}
	p := tea.NewProgram(newConfirmModel(question),
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	)
	final, err := p.Run()
	if err != nil {
		return false
	}
	m, ok := final.(confirmModel)
	return ok && m.Answer
}
