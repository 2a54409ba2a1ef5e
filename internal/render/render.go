// Package render draws cubes for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	gocube "github.com/SeamusWaldron/gocube_cross"
)

var (
	stickerStyles = map[gocube.Color]lipgloss.Style{
		gocube.White:  sticker("#FFFFFF"),
		gocube.Red:    sticker("#C41E3A"),
		gocube.Blue:   sticker("#0051BA"),
		gocube.Orange: sticker("#FF5800"),
		gocube.Green:  sticker("#009E60"),
		gocube.Yellow: sticker("#FFD500"),
	}

	highlightStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))
)

func sticker(bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg)).
		Foreground(lipgloss.Color("#000000"))
}

// Renderer draws the unfolded net of a cube.
type Renderer struct {
	// Color draws stickers as colored cells instead of plain letters.
	Color bool
}

// New returns a renderer.
func New(color bool) *Renderer {
	return &Renderer{Color: color}
}

// Net renders the cube as an unfolded net, Top above Left Front Right Back
// with Bottom below. Facelets listed in highlight are emphasized.
func (r *Renderer) Net(c *gocube.Cube, highlight ...gocube.Position) string {
	marked := make(map[gocube.Position]bool, len(highlight))
	for _, p := range highlight {
		marked[p] = true
	}

	var b strings.Builder
	blank := strings.Repeat(" ", 9)

	row := func(faces []gocube.CubeFace, line int, indent bool) {
		if indent {
			b.WriteString(blank)
		}
		for _, f := range faces {
			for col := 0; col < 3; col++ {
				p := gocube.At(f, line*3+col)
				b.WriteString(r.cell(c.Color(p), marked[p]))
			}
		}
		b.WriteString("\n")
	}

	for line := 0; line < 3; line++ {
		row([]gocube.CubeFace{gocube.Top}, line, true)
	}
	sides := []gocube.CubeFace{gocube.Left, gocube.Front, gocube.Right, gocube.Back}
	for line := 0; line < 3; line++ {
		row(sides, line, false)
	}
	for line := 0; line < 3; line++ {
		row([]gocube.CubeFace{gocube.Bottom}, line, true)
	}

	return b.String()
}

// cell renders one sticker three columns wide.
func (r *Renderer) cell(color gocube.Color, marked bool) string {
	text := " " + color.String() + " "
	if marked {
		text = "[" + color.String() + "]"
	}
	if !r.Color {
		return text
	}

	style, ok := stickerStyles[color]
	if !ok {
		return text
	}
	if marked {
		style = style.Inherit(highlightStyle)
	}
	return style.Render(text)
}

// Title renders a heading.
func Title(s string) string {
	return titleStyle.Render(s)
}

// Label renders secondary text.
func Label(s string) string {
	return labelStyle.Render(s)
}

// Moves renders a move sequence.
func Moves(moves []gocube.Move) string {
	if len(moves) == 0 {
		return labelStyle.Render("(none)")
	}
	return moveStyle.Render(gocube.FormatMoves(moves))
}

// Phase renders a phase name.
func Phase(p gocube.Phase) string {
	return phaseStyle.Render(p.DisplayName())
}
