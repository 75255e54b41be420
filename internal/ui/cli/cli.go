// Package cli prints simulation frames to a terminal.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"langton/internal/ant"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Printer writes frames, optionally colored, to an output stream.
type Printer struct {
	out   io.Writer
	color bool

	white, black, ant, title lipgloss.Style
}

// New returns a Printer writing to out. Colors are only used when color is
// set; see IsTerminal.
func New(out io.Writer, color bool) *Printer {
	return &Printer{
		out:   out,
		color: color,
		white: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		black: lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("240")),
		ant:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// PrintTitle writes a single title line.
func (p *Printer) PrintTitle(title string) error {
	if p.color {
		title = p.title.Render(title)
	}
	_, err := fmt.Fprintln(p.out, title)
	return errors.WithStack(err)
}

// PrintFrame writes the frame, one line per row.
func (p *Printer) PrintFrame(frame ant.Frame) error {
	var sb strings.Builder
	for _, row := range frame {
		if !p.color {
			sb.Write(row)
			sb.WriteByte('\n')
			continue
		}
		for _, c := range row {
			sb.WriteString(p.styleFor(c).Render(string(c)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(p.out, sb.String())
	return errors.WithStack(err)
}

func (p *Printer) styleFor(c byte) lipgloss.Style {
	switch c {
	case ant.WhiteGlyph:
		return p.white
	case ant.BlackGlyph:
		return p.black
	default:
		return p.ant
	}
}
