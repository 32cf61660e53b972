package palette

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/vovakirdan/codenames/internal/core"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"", ModeAuto, false},
		{"auto", ModeAuto, false},
		{"ALWAYS", ModeAlways, false},
		{" never ", ModeNever, false},
		{"sometimes", ModeAuto, true},
	}

	for _, tc := range tests {
		got, err := ParseMode(tc.input)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			continue
		}
		if got != tc.expected {
			t.Errorf("ParseMode(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestPlainLeavesTextAlone(t *testing.T) {
	var p Plain
	if p.SupportsColor() {
		t.Error("Plain.SupportsColor() = true")
	}
	for _, l := range core.Labels {
		if got := p.Colorize("word", l, true); got != "word" {
			t.Errorf("Plain.Colorize(%v) = %q, expected %q", l, got, "word")
		}
	}
}

func TestStyledEmitsEscapes(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyled(&buf)
	s.ForceProfile(termenv.ANSI)

	if !s.SupportsColor() {
		t.Fatal("SupportsColor() = false after forcing ANSI profile")
	}

	out := s.Colorize("cane", core.LabelRed, false)
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("Colorize() = %q, expected ANSI escape", out)
	}
	if !strings.Contains(out, "cane") {
		t.Errorf("Colorize() = %q, lost the text", out)
	}
	if Width(out) != len("cane") {
		t.Errorf("Width(%q) = %d, expected %d", out, Width(out), len("cane"))
	}
}

func TestStyledAsciiProfileIsPlain(t *testing.T) {
	var buf bytes.Buffer
	s := NewStyled(&buf)
	s.ForceProfile(termenv.Ascii)

	if s.SupportsColor() {
		t.Error("SupportsColor() = true with Ascii profile")
	}
	if got := s.Colorize("gatto", core.LabelBlue, false); got != "gatto" {
		t.Errorf("Colorize() = %q, expected plain text", got)
	}
}

func TestDetect(t *testing.T) {
	var buf bytes.Buffer

	if Detect(&buf, ModeNever).SupportsColor() {
		t.Error("never mode should not support colour")
	}
	if Detect(&buf, ModeAuto).SupportsColor() {
		t.Error("auto mode on a buffer should not support colour")
	}
	if !Detect(&buf, ModeAlways).SupportsColor() {
		t.Error("always mode should support colour")
	}
}

func TestIsTerminalOnBuffer(t *testing.T) {
	if IsTerminal(&bytes.Buffer{}) {
		t.Error("IsTerminal(buffer) = true")
	}
}
