package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bigDigits maps digits and colon to three rows of half blocks.
var bigDigits = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {"▀█ ", " █ ", "▀▀▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", "▀▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {"▀", " ", "▀"},
}

// bigTimeWidth is the width of "00:00" drawn in big digits.
const bigTimeWidth = 4*3 + 1 + 4

// renderBigTime draws a "HH:MM" string in big digits, or as a single
// styled line when the space is narrower than the big glyphs.
func renderBigTime(s string, style lipgloss.Style, width int) string {
	if width < bigTimeWidth {
		return style.Render(s)
	}

	var rows [3][]string
	for _, ch := range s {
		glyph, ok := bigDigits[ch]
		if !ok {
			return style.Render(s)
		}
		for i := range rows {
			rows[i] = append(rows[i], glyph[i])
		}
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = style.Render(strings.Join(r, " "))
	}
	return strings.Join(lines, "\n")
}
