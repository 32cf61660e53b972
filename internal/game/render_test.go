package game

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vovakirdan/codenames/internal/core"
	"github.com/vovakirdan/codenames/internal/palette"
)

// tagColorizer marks coloured words as <label:word> or <LABEL:word> when bold.
type tagColorizer struct{}

func (tagColorizer) SupportsColor() bool { return true }

func (tagColorizer) Colorize(text string, l core.Label, bold bool) string {
	name := l.String()
	if bold {
		name = strings.ToUpper(name)
	}
	return fmt.Sprintf("<%s:%s>", name, text)
}

func TestRenderLayout(t *testing.T) {
	g, _ := FromBoard(testBoard())
	lines := strings.Split(strings.TrimSuffix(g.Render(palette.Plain{}), "\n"), "\n")

	if len(lines) != 1+4*core.BoardSize {
		t.Fatalf("Render() has %d lines, expected %d", len(lines), 1+4*core.BoardSize)
	}

	border := strings.Repeat("+-----", core.BoardSize) + "+"
	blank := strings.Repeat("|     ", core.BoardSize) + "|"

	expected := []string{
		border,
		blank,
		"| w00 | w05 | w10 | w15 | w20 |",
		blank,
		border,
		blank,
		"| w01 | w06 | w11 | w16 | w21 |",
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d = %q, expected %q", i, lines[i], want)
		}
	}
	if lines[len(lines)-1] != border {
		t.Errorf("last line = %q, expected border", lines[len(lines)-1])
	}
}

func TestRenderRightAligns(t *testing.T) {
	board := testBoard()
	board[0] = "a"
	board[5] = "lunghissima"
	g, _ := FromBoard(board)

	lines := strings.Split(g.Render(nil), "\n")
	width := len("lunghissima")

	if got, want := lines[0], strings.Repeat("+"+strings.Repeat("-", width+2), core.BoardSize)+"+"; got != want {
		t.Errorf("border = %q, expected %q", got, want)
	}
	if !strings.HasPrefix(lines[2], "| "+strings.Repeat(" ", width-1)+"a | lunghissima |") {
		t.Errorf("word line = %q, expected right-aligned cells", lines[2])
	}
}

func TestRenderMultibyteWords(t *testing.T) {
	board := testBoard()
	board[0] = "città"
	g, _ := FromBoard(board)

	lines := strings.Split(g.Render(nil), "\n")
	if palette.Width(lines[0]) != palette.Width(lines[2]) {
		t.Errorf("border width %d != word line width %d", palette.Width(lines[0]), palette.Width(lines[2]))
	}
}

func TestRenderColorizesByLabel(t *testing.T) {
	g, _ := FromBoard(testBoard())
	g.SetColor(0, 1, "red")

	out := g.Render(tagColorizer{})
	if !strings.Contains(out, "<RED:w05>") {
		t.Errorf("labelled cell should render bold red, got:\n%s", out)
	}
	if !strings.Contains(out, "<white:w00>") {
		t.Errorf("white cell should render plain white, got:\n%s", out)
	}
}

func TestRenderCursor(t *testing.T) {
	g, _ := FromBoard(testBoard())

	plain := strings.Split(g.Render(nil), "\n")
	marked := strings.Split(g.RenderCursor(nil, core.NewCell(1, 2)), "\n")

	if marked[6] != "| w01 | w06 |>w11<| w16 | w21 |" {
		t.Errorf("cursor line = %q", marked[6])
	}
	for i := range plain {
		if len(plain[i]) != len(marked[i]) {
			t.Errorf("line %d width changed with cursor: %d vs %d", i, len(plain[i]), len(marked[i]))
		}
	}
}
