package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type compositing int

const (
	// compAssign draws bitmaps as-is.
	compAssign compositing = iota
	// compSet draws only the set pixels, letting the background show.
	compSet
)

// Target describes the screen a face is drawn for.
type Target struct {
	Name        string
	Width       int // pixels
	Height      int // pixels
	Round       bool
	Compositing compositing
	ColorDepth  int // bits per pixel
}

// Cell metrics used to turn pixel bounds into a character frame.
const (
	pxPerCol = 4
	pxPerRow = 8
)

var targets = map[string]Target{
	"aplite":  {Name: "aplite", Width: 144, Height: 168, Compositing: compSet, ColorDepth: 1},
	"basalt":  {Name: "basalt", Width: 144, Height: 168, Compositing: compAssign, ColorDepth: 8},
	"chalk":   {Name: "chalk", Width: 180, Height: 180, Round: true, Compositing: compAssign, ColorDepth: 8},
	"diorite": {Name: "diorite", Width: 144, Height: 168, Compositing: compSet, ColorDepth: 1},
	"emery":   {Name: "emery", Width: 200, Height: 228, Compositing: compAssign, ColorDepth: 8},
}

func lookupTarget(name string) (Target, error) {
	t, ok := targets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Target{}, fmt.Errorf("unknown target %q (known: %s)", name, strings.Join(targetNames(), ", "))
	}
	return t, nil
}

func targetNames() []string {
	names := make([]string, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// defaultTarget picks a color target unless the terminal cannot show color.
func defaultTarget(profile termenv.Profile) Target {
	if profile == termenv.Ascii {
		return targets["aplite"]
	}
	return targets["basalt"]
}

func (t Target) Cols() int { return t.Width / pxPerCol }
func (t Target) Rows() int { return t.Height / pxPerRow }

func (t Target) Mono() bool { return t.ColorDepth <= 1 }

// profile is the color profile the face is rendered with.
func (t Target) profile() termenv.Profile {
	if t.Mono() {
		return termenv.Ascii
	}
	return termenv.ANSI256
}

func (t Target) border() lipgloss.Border {
	if t.Round {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
