package prompt

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestSelect(t *testing.T) {
	color.NoColor = true
	items := []string{"Super Mario 64 (1996) [sm64]", "Super Mario 64 DS (2004) [sm64ds]", "Super Mario Sunshine (2002) [sms]"}

	tests := []struct {
		name    string
		input   string
		want    int
		wantErr bool
	}{
		{"explicit choice", "2\n", 1, false},
		{"default on empty line", "\n", 0, false},
		{"re-prompt after junk", "x\n3\n", 2, false},
		{"out of range then valid", "9\n1\n", 0, false},
		{"last line without newline", "2", 1, false},
		{"whitespace around number", "  3  \n", 2, false},
		{"no input", "", 0, true},
		{"out of range then eof", "9\n", 0, true},
		{"too many bad answers", strings.Repeat("x\n", maxAttempts), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			got, err := Select(strings.NewReader(tt.input), &out, "Pick a game", items)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got index %d", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Select = %d, want %d", got, tt.want)
			}
			if !strings.Contains(out.String(), " 2) Super Mario 64 DS") {
				t.Errorf("menu not printed:\n%s", out.String())
			}
		})
	}
}

func TestSelectEOFWrapped(t *testing.T) {
	_, err := Select(strings.NewReader(""), io.Discard, "Pick", []string{"a"})
	if !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want wrapped io.EOF", err)
	}
}

func TestSelectNoItems(t *testing.T) {
	_, err := Select(strings.NewReader("1\n"), io.Discard, "Pick", nil)
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v, want ErrNoItems", err)
	}
}
