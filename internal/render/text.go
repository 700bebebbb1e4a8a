package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/input"
	"github.com/vancomm/minesweeper/internal/mines"
)

type styles struct {
	hidden, flag, zero lipgloss.Style
	mine, exploded     lipgloss.Style
	numbers            [8]lipgloss.Style
	board              lipgloss.Style
	label, value       lipgloss.Style
	won, lost, help    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}
	return styles{
		hidden:   fg("248"),
		flag:     fg("196").Bold(true),
		zero:     fg("240"),
		mine:     fg("208").Bold(true),
		exploded: fg("15").Background(lipgloss.Color("9")).Bold(true),
		numbers: [8]lipgloss.Style{
			fg("33"),  // 1: light blue
			fg("41"),  // 2: green
			fg("196"), // 3: red
			fg("99"),  // 4: deep purple
			fg("160"), // 5: maroon
			fg("37"),  // 6: cyan
			fg("248"), // 7: dark gray
			fg("243"), // 8: gray
		},
		board: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("248")).
			Padding(0, 1),
		label: r.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255")).
			Bold(true).Padding(0, 1),
		value: r.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1),
		won:  fg("10").Bold(true),
		lost: fg("9").Bold(true),
		help: fg("248"),
	}
}

// Text draws the board to a terminal.
type Text struct {
	w      io.Writer
	styles styles
}

func NewText(w io.Writer) *Text {
	return &Text{w: w, styles: newStyles(lipgloss.NewRenderer(w))}
}

func (t *Text) Render(g *mines.Game, l input.Layout) error {
	_, err := fmt.Fprintln(t.w, t.View(g, l))
	return err
}

func (t *Text) glyph(s mines.CellState) string {
	var (
		char  string
		style lipgloss.Style
	)
	switch {
	case s == mines.Unknown:
		char, style = "■", t.styles.hidden
	case s == mines.Flagged:
		char, style = "⚑", t.styles.flag
	case s == mines.Mine:
		char, style = "*", t.styles.mine
	case s == mines.ExplodedMine:
		char, style = "X", t.styles.exploded
	case s == 0:
		char, style = "·", t.styles.zero
	default:
		n, _ := s.Number()
		char, style = fmt.Sprint(n), t.styles.numbers[n-1]
	}
	return style.Render(" " + char + " ")
}

func (t *Text) View(g *mines.Game, l input.Layout) string {
	var board strings.Builder
	for i, tile := range Tiles(g, l) {
		if tile.X == 0 && i > 0 {
			board.WriteString("\n")
		}
		board.WriteString(t.glyph(tile.State))
	}

	field := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Left,
			t.styles.label.Render(label),
			t.styles.value.Render(fmt.Sprint(value)),
		)
	}
	status := lipgloss.JoinHorizontal(lipgloss.Top,
		field("MINES", g.Board().MineCount()), "  ",
		field("FLAGS", g.FlagsLeft()), "  ",
		field("STATUS", strings.ToUpper(g.Status().String())),
	)

	var help string
	switch g.Status() {
	case mines.Won:
		help = t.styles.won.Render("YOU WIN • n to restart, q to quit")
	case mines.Lost:
		help = t.styles.lost.Render("GAME OVER • n to restart, q to quit")
	default:
		help = t.styles.help.Render("o x y: reveal • f x y: flag • n: restart • q: quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		t.styles.board.Render(board.String()),
		status,
		help,
	)
}
