package main

import (
	"reflect"
	"testing"
)

func TestRewriteItemRefArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"lostfound"},
			want: []string{"lostfound"},
		},
		{
			name: "item ref first token",
			in:   []string{"lostfound", "lost-2"},
			want: []string{"lostfound", "items", "show", "lost-2"},
		},
		{
			name: "item ref after value flag",
			in:   []string{"lostfound", "--format", "edn", "found-1"},
			want: []string{"lostfound", "--format", "edn", "items", "show", "found-1"},
		},
		{
			name: "item ref after equals flag",
			in:   []string{"lostfound", "--config=./lf.yaml", "lost-1"},
			want: []string{"lostfound", "--config=./lf.yaml", "items", "show", "lost-1"},
		},
		{
			name: "item ref after bool flag",
			in:   []string{"lostfound", "--pretty", "lost-1"},
			want: []string{"lostfound", "--pretty", "items", "show", "lost-1"},
		},
		{
			name: "flag value that looks like a ref is not rewritten",
			in:   []string{"lostfound", "--format", "lost-1"},
			want: []string{"lostfound", "--format", "lost-1"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"lostfound", "items", "show", "lost-2"},
			want: []string{"lostfound", "items", "show", "lost-2"},
		},
		{
			name: "unknown command not rewritten",
			in:   []string{"lostfound", "stolen-2"},
			want: []string{"lostfound", "stolen-2"},
		},
		{
			name: "after double dash not rewritten",
			in:   []string{"lostfound", "--", "lost-2"},
			want: []string{"lostfound", "--", "lost-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := rewriteItemRefArgs(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rewriteItemRefArgs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
