package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	subtle    = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"}
	special   = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Green
	warning   = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F55385"} // Pink/Red
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"} // Purple
	faceBg    = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1A1A1A"}
)

// faceStyles are bound to a renderer so mono targets never emit color.
type faceStyles struct {
	frame  lipgloss.Style
	date   lipgloss.Style
	clock  lipgloss.Style
	icon   lipgloss.Style
	low    lipgloss.Style
	status lipgloss.Style
}

func newFaceStyles(t Target, w io.Writer) faceStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(t.profile())

	frame := r.NewStyle().
		Border(t.border()).
		BorderForeground(subtle).
		Width(t.Cols() - 2).
		Height(t.Rows() - 2).
		Align(lipgloss.Center)
	if t.Compositing == compAssign {
		frame = frame.Background(faceBg)
	}

	return faceStyles{
		frame: frame,
		date: r.NewStyle().
			Foreground(subtle).
			Bold(true),
		clock: r.NewStyle().
			Foreground(special).
			Bold(true).
			Align(lipgloss.Center),
		icon:   r.NewStyle().Foreground(highlight),
		low:    r.NewStyle().Foreground(warning),
		status: r.NewStyle().Foreground(subtle),
	}
}
