package tui

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEditorArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"nano", []string{"nano"}},
		{"code --wait", []string{"code", "--wait"}},
		{"vim -u 'my vimrc'", []string{"vim", "-u", "my vimrc"}},
		{`vim -c "set ft=markdown"`, []string{"vim", "-c", "set ft=markdown"}},
		{`my\ editor -f`, []string{"my editor", "-f"}},
		{`emacs ''`, []string{"emacs", ""}},
	}
	for _, tt := range tests {
		if got := editorArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("editorArgs(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReadEditorResult(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "description.md")
	if err := os.WriteFile(path, []byte("Red backpack\nwith books\n"), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	text, changed, err := readEditorResult(editorDoneMsg{path: path, before: "Red backpack"})
	if err != nil {
		t.Fatalf("readEditorResult: %v", err)
	}
	if text != "Red backpack\nwith books" || !changed {
		t.Fatalf("unexpected result %q changed=%v", text, changed)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected temp file removed, stat err=%v", err)
	}

	path = filepath.Join(t.TempDir(), "failed.md")
	_ = os.WriteFile(path, []byte("ignored"), 0o600)
	text, changed, err = readEditorResult(editorDoneMsg{path: path, before: "kept", err: errors.New("exit status 1")})
	if err == nil || text != "kept" || changed {
		t.Fatalf("expected failure to keep the old text; got %q changed=%v err=%v", text, changed, err)
	}
}
