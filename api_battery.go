package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shirou/gopsutil/v3/host"
)

var errNoBattery = errors.New("no battery found")

type batteryMsg struct {
	state BatteryState
	err   error
}

type batterySource interface {
	Peek() (BatteryState, error)
}

func fetchBatteryCmd(src batterySource) tea.Cmd {
	return func() tea.Msg { return fetchBattery(src) }
}

func fetchBattery(src batterySource) tea.Msg {
	s, err := src.Peek()
	return batteryMsg{state: s, err: err}
}

// batteryStatus is the short text shown in place of the percentage when
// the battery cannot be read.
func batteryStatus(err error) string {
	if errors.Is(err, errNoBattery) {
		return "No Battery"
	}
	return "Read Err"
}

// sysfsSource reads the Linux power_supply class.
type sysfsSource struct {
	root string
}

func (s sysfsSource) Peek() (BatteryState, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return BatteryState{}, fmt.Errorf("read %s: %w", s.root, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)

	var (
		bat     string
		mainsOn bool
	)
	for _, n := range names {
		dir := filepath.Join(s.root, n)
		switch readAttr(dir, "type") {
		case "Battery":
			// Mice, keyboards and other peripherals report scope Device.
			if bat == "" && readAttr(dir, "scope") != "Device" {
				bat = dir
			}
		case "Mains":
			if readAttr(dir, "online") == "1" {
				mainsOn = true
			}
		}
	}
	if bat == "" {
		return BatteryState{}, errNoBattery
	}

	pct, err := strconv.Atoi(readAttr(bat, "capacity"))
	if err != nil {
		return BatteryState{}, fmt.Errorf("%s capacity: %w", filepath.Base(bat), err)
	}
	status := readAttr(bat, "status")

	return BatteryState{
		Percent:  pct,
		Charging: status == "Charging",
		Plugged:  mainsOn || status == "Charging" || status == "Full",
	}, nil
}

func readAttr(dir, name string) string {
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

// simSource replays a scripted list of states, one per Peek, and then
// keeps returning the last one.
type simSource struct {
	steps []BatteryState
	next  int
}

// parseScript reads steps like "73,70,20c,100p": a percentage with an
// optional c (charging) and p (plugged) suffix.
func parseScript(script string) ([]BatteryState, error) {
	var steps []BatteryState
	for _, tok := range strings.Split(script, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok == "" {
			continue
		}
		var st BatteryState
		num := strings.TrimRight(tok, "cp")
		for _, r := range tok[len(num):] {
			switch r {
			case 'c':
				st.Charging = true
				st.Plugged = true
			case 'p':
				st.Plugged = true
			}
		}
		pct, err := strconv.Atoi(num)
		if err != nil {
			return nil, fmt.Errorf("battery script step %q: %w", tok, err)
		}
		st.Percent = pct
		steps = append(steps, st)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("battery script %q has no steps", script)
	}
	return steps, nil
}

func newSimSource(script string) (*simSource, error) {
	steps, err := parseScript(script)
	if err != nil {
		return nil, err
	}
	return &simSource{steps: steps}, nil
}

func (s *simSource) Peek() (BatteryState, error) {
	st := s.steps[s.next]
	if s.next < len(s.steps)-1 {
		s.next++
	}
	return st, nil
}

var hostInfo = host.Info

// openBatterySource builds the configured source. In auto mode virtual
// guests and machines without a battery get the simulator.
func openBatterySource(s settings) (batterySource, string, error) {
	switch s.battery {
	case "sysfs":
		return sysfsSource{root: s.powerSupply}, "sysfs " + s.powerSupply, nil
	case "sim":
		src, err := newSimSource(s.script)
		if err != nil {
			return nil, "", err
		}
		return src, "sim " + s.script, nil
	}

	if info, err := hostInfo(); err == nil {
		logDebug("host: %s %s (%s), virtualization %s/%s",
			info.Platform, info.PlatformVersion, info.KernelArch,
			info.VirtualizationSystem, info.VirtualizationRole)
		if info.VirtualizationRole == "guest" {
			src, err := newSimSource(s.script)
			if err != nil {
				return nil, "", err
			}
			return src, "sim (virtual guest)", nil
		}
	}

	sys := sysfsSource{root: s.powerSupply}
	if _, err := sys.Peek(); err != nil {
		src, serr := newSimSource(s.script)
		if serr != nil {
			return nil, "", serr
		}
		return src, fmt.Sprintf("sim (%v)", err), nil
	}
	return sys, "sysfs " + s.powerSupply, nil
}
