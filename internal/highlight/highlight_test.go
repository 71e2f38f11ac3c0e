package highlight

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestHighlightPreservesText(t *testing.T) {
	text := "\"\"\"\n\nArgs:\n    a (int): \n\n\"\"\""
	for _, theme := range []string{"github-dark", "monokai", "github", "no-such-theme"} {
		out := Highlight(text, "python", theme)
		if Known(theme) && !strings.Contains(out, "\x1b[") {
			t.Errorf("%s: expected ANSI sequences", theme)
		}
		if got := ansi.Strip(out); got != text {
			t.Errorf("%s: stripped output differs:\nexpected %q\ngot      %q", theme, text, got)
		}
	}
}

func TestHighlightUnknownLanguage(t *testing.T) {
	if got := Highlight("x = 1", "no-such-language", "monokai"); got != "x = 1" {
		t.Errorf("expected text unchanged, got %q", got)
	}
}

func TestThemeBg(t *testing.T) {
	bg := ThemeBg("monokai")
	if len(bg) != 7 || bg[0] != '#' {
		t.Errorf("expected #rrggbb background, got %q", bg)
	}
}

func TestHexToBgSeq(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#272822", "\x1b[48;2;39;40;34m"},
		{"#FFffFF", "\x1b[48;2;255;255;255m"},
		{"272822", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := hexToBgSeq(tt.in); got != tt.want {
			t.Errorf("hexToBgSeq(%q) = %q, expected %q", tt.in, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("github-dark") {
		t.Error("expected github-dark to be known")
	}
	if Known("no-such-theme") {
		t.Error("expected unknown theme")
	}
}
