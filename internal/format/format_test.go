package format

import (
	"bytes"
	"strings"
	"testing"
)

type sample struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	ItemType string   `json:"itemType"`
	Tags     []string `json:"tags"`
	Missing  *string  `json:"missing"`
	Done     bool     `json:"done"`
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "", want: JSON},
		{in: "json", want: JSON},
		{in: " EDN ", want: EDN},
		{in: "yaml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("Parse(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWrite_JSONEnvelope(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": sample{ID: 3, Title: "Lost Wallet2"}}, JSON, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"data":{"id":3,"title":"Lost Wallet2","itemType":"","tags":null,"missing":null,"done":false}}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_EDN(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	v := sample{ID: 3, Title: "Found \"Phone\"", ItemType: "phone", Tags: []string{"a", "b"}, Done: true}
	if err := Write(&buf, v, EDN, false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:done true :id 3 :item-type "phone" :missing nil :tags ["a" "b"] :title "Found \"Phone\""}` + "\n"
	if buf.String() != want {
		t.Fatalf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWrite_EDNPretty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": []any{1, map[string]any{}}}, EDN, true); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := strings.Join([]string{
		"{",
		"  :data [",
		"    1",
		"    {}",
		"  ]",
		"}",
	}, "\n") + "\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	if err := Write(&bytes.Buffer{}, 1, Format("xml"), false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}
