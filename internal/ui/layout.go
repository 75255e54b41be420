package ui

import (
	"strings"

	"langton/internal/core"
)

// MinPanelHeight is the smallest height of the HUD panel in pixels.
const MinPanelHeight = 360

type lineKind int

const (
	lineTitle lineKind = iota
	lineHeader
	lineParam
	lineHint
	lineBlank
)

type hudLine struct {
	kind  lineKind
	label string
	value string
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Status"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

// buildLines flattens a parameter snapshot into the rows painted by the HUD,
// followed by free-form hint lines.
func buildLines(title string, snapshot core.ParameterSnapshot, hints []string) []hudLine {
	lines := []hudLine{{kind: lineTitle, label: title}}
	for _, group := range snapshot.Groups {
		lines = append(lines, hudLine{kind: lineBlank}, hudLine{kind: lineHeader, label: group.Name})
		for _, p := range group.Params {
			lines = append(lines, hudLine{kind: lineParam, label: p.Label, value: p.Value})
		}
	}
	if len(hints) > 0 {
		lines = append(lines, hudLine{kind: lineBlank})
		for _, h := range hints {
			lines = append(lines, hudLine{kind: lineHint, label: h})
		}
	}
	return lines
}

// wrapValue splits long values (error messages mostly) into chunks of at most
// width characters, breaking on spaces where possible.
func wrapValue(value string, width int) []string {
	if width <= 0 || len(value) <= width {
		return []string{value}
	}
	var out []string
	for len(value) > width {
		cut := strings.LastIndexByte(value[:width+1], ' ')
		if cut <= 0 {
			cut = width
		}
		out = append(out, strings.TrimSpace(value[:cut]))
		value = strings.TrimSpace(value[cut:])
	}
	if value != "" {
		out = append(out, value)
	}
	return out
}

// cellRect returns the pixel rectangle (x0, y0, x1, y1) covered by a grid
// cell at the given scale.
func cellRect(row, col, scale int) (int, int, int, int) {
	return col * scale, row * scale, (col + 1) * scale, (row + 1) * scale
}
