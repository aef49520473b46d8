package tui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// editorName is $VISUAL, then $EDITOR, then vi.
func editorName() string {
	for _, k := range []string{"VISUAL", "EDITOR"} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}
	return "vi"
}

// editInEditor writes text to a temp file and suspends the program while the
// user's editor runs on it. The result comes back as an editorDoneMsg.
func editInEditor(gen int, text string) (tea.Cmd, error) {
	argv := editorArgs(editorName())
	if len(argv) == 0 {
		argv = []string{"vi"}
	}

	f, err := os.CreateTemp("", "lostfound-description-*.md")
	if err != nil {
		return nil, err
	}
	path := f.Name()
	if _, err := f.WriteString(text); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return nil, err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return nil, err
	}

	c := exec.Command(argv[0], append(argv[1:], path)...)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return editorDoneMsg{gen: gen, path: path, before: text, err: err}
	}), nil
}

// readEditorResult returns the edited text and removes the temp file.
func readEditorResult(msg editorDoneMsg) (text string, changed bool, err error) {
	defer func() { _ = os.Remove(msg.path) }()
	if msg.err != nil {
		return msg.before, false, fmt.Errorf("%s: %w", editorName(), msg.err)
	}
	b, err := os.ReadFile(msg.path)
	if err != nil {
		return msg.before, false, err
	}
	text = strings.TrimRight(string(b), "\n")
	return text, strings.TrimSpace(text) != strings.TrimSpace(msg.before), nil
}

// editorArgs splits an editor command line. Single and double quotes group
// words; a backslash escapes the next rune outside single quotes.
func editorArgs(s string) []string {
	var (
		out     []string
		word    strings.Builder
		inWord  bool
		quote   rune
		escaped bool
	)
	for _, r := range s {
		switch {
		case escaped:
			word.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped, inWord = true, true
		case quote != 0 && r == quote:
			quote = 0
		case quote == 0 && (r == '\'' || r == '"'):
			quote, inWord = r, true
		case quote == 0 && unicode.IsSpace(r):
			if inWord {
				out = append(out, word.String())
				word.Reset()
				inWord = false
			}
		default:
			word.WriteRune(r)
			inWord = true
		}
	}
	if inWord {
		out = append(out, word.String())
	}
	return out
}
