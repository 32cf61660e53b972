// Package palette decides whether output can carry colour and renders
// labelled text accordingly. The game renders through the Colorizer
// interface so the same grid code serves terminals, pipes and tests.
package palette

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/vovakirdan/codenames/internal/core"
)

// Colorizer renders text in the colour of a label.
type Colorizer interface {
	// SupportsColor reports whether Colorize emits escape sequences.
	SupportsColor() bool

	// Colorize wraps text in the colour of l, optionally bold.
	Colorize(text string, l core.Label, bold bool) string
}

// Mode selects how colour support is decided.
type Mode string

const (
	ModeAuto   Mode = "auto"
	ModeAlways Mode = "always"
	ModeNever  Mode = "never"
)

// ParseMode validates a colour mode name. Empty input means auto.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ModeAuto, nil
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	default:
		return ModeAuto, fmt.Errorf("palette: unknown colour mode %q (want auto, always or never)", s)
	}
}

// Plain is the no-op Colorizer used for pipes, files and tests.
type Plain struct{}

// SupportsColor always returns false.
func (Plain) SupportsColor() bool { return false }

// Colorize returns text unchanged.
func (Plain) Colorize(text string, _ core.Label, _ bool) string { return text }

// labelColors maps labels to ANSI colour numbers.
var labelColors = map[core.Label]lipgloss.Color{
	core.LabelWhite:  lipgloss.Color("7"),
	core.LabelRed:    lipgloss.Color("1"),
	core.LabelBlue:   lipgloss.Color("4"),
	core.LabelYellow: lipgloss.Color("3"),
}

// Styled colours text with lipgloss styles bound to one output.
type Styled struct {
	renderer *lipgloss.Renderer
	styles   map[core.Label]lipgloss.Style
}

// NewStyled creates a Styled colorizer for w. The colour profile is
// whatever termenv detects for w.
func NewStyled(w io.Writer) *Styled {
	r := lipgloss.NewRenderer(w)
	s := &Styled{
		renderer: r,
		styles:   make(map[core.Label]lipgloss.Style, len(labelColors)),
	}
	for l, c := range labelColors {
		s.styles[l] = r.NewStyle().Foreground(c)
	}
	return s
}

// ForceProfile overrides the detected colour profile.
func (s *Styled) ForceProfile(p termenv.Profile) {
	s.renderer.SetColorProfile(p)
}

// SupportsColor reports whether the renderer's profile has any colours.
func (s *Styled) SupportsColor() bool {
	return s.renderer.ColorProfile() != termenv.Ascii
}

// Colorize renders text in the colour of l.
func (s *Styled) Colorize(text string, l core.Label, bold bool) string {
	style, ok := s.styles[l]
	if !ok {
		style = s.renderer.NewStyle()
	}
	return style.Bold(bold).Render(text)
}

// Detect picks a Colorizer for w according to mode.
//
// In auto mode colour is used only when w is a terminal and its colour
// profile is not plain ASCII, which also covers NO_COLOR.
func Detect(w io.Writer, mode Mode) Colorizer {
	switch mode {
	case ModeNever:
		return Plain{}
	case ModeAlways:
		s := NewStyled(w)
		if !s.SupportsColor() {
			s.ForceProfile(termenv.ANSI)
		}
		return s
	}

	if !IsTerminal(w) {
		return Plain{}
	}
	s := NewStyled(w)
	if !s.SupportsColor() {
		return Plain{}
	}
	return s
}

// IsTerminal reports whether w is backed by an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Width returns the printable width of s, ignoring escape sequences and
// counting wide runes as two cells.
func Width(s string) int {
	return lipgloss.Width(s)
}

var (
	_ Colorizer = Plain{}
	_ Colorizer = (*Styled)(nil)
)
