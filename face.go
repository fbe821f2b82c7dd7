package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	lowBatteryPercent = 20
	iconRows          = 3
)

// face is the display surface. It caches what was last rendered so a
// layout change can redraw without asking the clock or battery again.
type face struct {
	target Target
	styles faceStyles

	timeText string
	dateText string
	icon     *iconResource
	battery  BatteryState
	status   string
}

func newFace(t Target, w io.Writer) *face {
	return &face{
		target:   t,
		styles:   newFaceStyles(t, w),
		timeText: "00:00",
	}
}

func (f *face) RenderTimeText(s string) { f.timeText = s }

func (f *face) RenderDateText(s string) { f.dateText = s }

// SetIconResource swaps the live icon. The previous resource is released
// only once the new one has loaded.
func (f *face) SetIconResource(id IconID) error {
	res, err := loadIcon(id)
	if err != nil {
		return err
	}
	f.icon.release()
	f.icon = res
	return nil
}

func (f *face) SetStatus(s string) { f.status = s }

// Close releases the live icon.
func (f *face) Close() {
	f.icon.release()
	f.icon = nil
}

func (f *face) onTick(t time.Time, use24h bool) {
	f.RenderTimeText(formatTime(t, use24h))
	f.RenderDateText(formatDate(t))
}

// onBatteryChange installs the icon for s. The state is only cached once
// its icon is live, so a failed load is retried on the next notification.
func (f *face) onBatteryChange(s BatteryState) error {
	if err := f.SetIconResource(selectIcon(s)); err != nil {
		return err
	}
	f.battery = s
	return nil
}

func (f *face) batteryLine() string {
	if f.status != "" {
		return f.styles.status.Render(f.status)
	}
	if f.icon == nil {
		return ""
	}
	line := fmt.Sprintf("%d%%", f.battery.Percent)
	switch {
	case f.battery.Charging:
		line += " charging"
	case f.battery.Plugged:
		line += " plugged"
	}
	if !f.battery.Charging && f.battery.Percent <= lowBatteryPercent {
		return f.styles.low.Render(line)
	}
	return f.styles.status.Render(line)
}

// Render draws the face centered in a width x height area. A zero area
// renders the bare frame.
func (f *face) Render(width, height int) string {
	inner := f.target.Cols() - 2
	rows := f.target.Rows() - 2

	clock := renderBigTime(f.timeText, f.styles.clock, inner)
	iconArt := strings.Repeat("\n", iconRows-1)
	if f.icon != nil {
		iconArt = f.styles.icon.Render(f.icon.String())
	}
	bottom := lipgloss.JoinVertical(lipgloss.Center, iconArt, f.batteryLine())

	// Date on top, battery at the bottom, time centered in what is left.
	spare := rows - 1 - lipgloss.Height(clock) - lipgloss.Height(bottom)
	if spare < 2 {
		spare = 2
	}
	above := spare / 2
	below := spare - above

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		f.styles.date.Render(f.dateText),
		strings.Repeat("\n", above-1),
		clock,
		strings.Repeat("\n", below-1),
		bottom,
	)
	framed := f.styles.frame.Render(content)

	if width <= 0 || height <= 0 {
		return framed
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, framed)
}
