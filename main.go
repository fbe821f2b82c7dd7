package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
)

type tickMsg time.Time

type model struct {
	width, height int

	face   *face
	source batterySource
	poll   time.Duration
	use24h func() bool
	now    func() time.Time
}

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runFace(f *face, src batterySource, poll time.Duration, use24h func() bool) error {
	m := model{
		face:   f,
		source: src,
		poll:   poll,
		use24h: use24h,
		now:    time.Now,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run watchface: %w", err)
	}
	return nil
}

func (m model) Init() tea.Cmd {
	// Draw the time and battery straight away, then follow the services.
	return tea.Batch(
		func() tea.Msg { return tickMsg(m.now()) },
		fetchBatteryCmd(m.source),
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.face.Close()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.face.onTick(time.Time(msg), m.use24h())
		return m, tea.Every(time.Minute, func(t time.Time) tea.Msg { return tickMsg(t) })
	case batteryMsg:
		return m.batteryChanged(msg)
	}
	return m, nil
}

func (m model) batteryChanged(msg batteryMsg) (tea.Model, tea.Cmd) {
	src := m.source
	next := tea.Tick(m.poll, func(_ time.Time) tea.Msg { return fetchBattery(src) })

	if msg.err != nil {
		logDebug("battery read: %v", msg.err)
		m.face.SetStatus(batteryStatus(msg.err))
		return m, next
	}
	m.face.SetStatus("")

	if m.face.icon != nil && msg.state == m.face.battery {
		return m, next
	}

	if err := m.face.onBatteryChange(msg.state); err != nil {
		logDebug("battery icon: %v", err)
		return m, next
	}
	logDebug("battery %d%% charging=%t plugged=%t -> %s",
		msg.state.Percent, msg.state.Charging, msg.state.Plugged, m.face.icon.id)
	return m, next
}

func (m model) View() string {
	return m.face.Render(m.width, m.height)
}
