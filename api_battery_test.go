package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v3/host"
)

func writeSupply(t *testing.T, root, name string, attrs map[string]string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for k, v := range attrs {
		if err := os.WriteFile(filepath.Join(dir, k), []byte(v+"\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func TestSysfsSource_Peek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		battery map[string]string
		acOn    string
		want    BatteryState
	}{
		{
			name:    "discharging",
			battery: map[string]string{"type": "Battery", "capacity": "73", "status": "Discharging"},
			acOn:    "0",
			want:    BatteryState{Percent: 73},
		},
		{
			name:    "charging",
			battery: map[string]string{"type": "Battery", "capacity": "20", "status": "Charging"},
			acOn:    "1",
			want:    BatteryState{Percent: 20, Charging: true, Plugged: true},
		},
		{
			name:    "full on mains",
			battery: map[string]string{"type": "Battery", "capacity": "100", "status": "Full"},
			acOn:    "1",
			want:    BatteryState{Percent: 100, Plugged: true},
		},
		{
			name:    "not charging but plugged",
			battery: map[string]string{"type": "Battery", "capacity": "80", "status": "Not charging"},
			acOn:    "1",
			want:    BatteryState{Percent: 80, Plugged: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			root := t.TempDir()
			writeSupply(t, root, "AC", map[string]string{"type": "Mains", "online": tt.acOn})
			writeSupply(t, root, "BAT0", tt.battery)

			got, err := sysfsSource{root: root}.Peek()
			if err != nil {
				t.Fatalf("Peek: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Peek = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSysfsSource_FirstBatteryWins(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSupply(t, root, "BAT1", map[string]string{"type": "Battery", "capacity": "10", "status": "Discharging"})
	writeSupply(t, root, "BAT0", map[string]string{"type": "Battery", "capacity": "90", "status": "Discharging"})

	got, err := sysfsSource{root: root}.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got.Percent != 90 {
		t.Fatalf("expected BAT0, got %+v", got)
	}
}

func TestSysfsSource_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"type": "Mains", "online": "1"})
	if _, err := (sysfsSource{root: root}).Peek(); !errors.Is(err, errNoBattery) {
		t.Fatalf("expected errNoBattery, got %v", err)
	}

	writeSupply(t, root, "hidpp_battery_0", map[string]string{"type": "Battery", "scope": "Device", "capacity": "40", "status": "Discharging"})
	if st, err := (sysfsSource{root: root}).Peek(); !errors.Is(err, errNoBattery) {
		t.Fatalf("peripheral battery should be ignored, got %+v, %v", st, err)
	}

	writeSupply(t, root, "BAT0", map[string]string{"type": "Battery", "capacity": "lots"})
	if _, err := (sysfsSource{root: root}).Peek(); err == nil {
		t.Fatalf("expected capacity parse error")
	}

	if _, err := (sysfsSource{root: filepath.Join(root, "missing")}).Peek(); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestSysfsSource_SkipsPeripheralBattery(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSupply(t, root, "AC", map[string]string{"type": "Mains", "online": "0"})
	writeSupply(t, root, "CMB0", map[string]string{"type": "Battery", "scope": "System", "capacity": "60", "status": "Discharging"})
	writeSupply(t, root, "AAA_mouse", map[string]string{"type": "Battery", "scope": "Device", "capacity": "5", "status": "Discharging"})

	got, err := sysfsSource{root: root}.Peek()
	if err != nil {
		t.Fatalf("Peek: %v", err)
	}
	if got.Percent != 60 {
		t.Fatalf("expected the system battery, got %+v", got)
	}
}

func TestParseScript(t *testing.T) {
	t.Parallel()

	got, err := parseScript(" 73, 70 ,20c,100p,,5cp")
	if err != nil {
		t.Fatalf("parseScript: %v", err)
	}
	want := []BatteryState{
		{Percent: 73},
		{Percent: 70},
		{Percent: 20, Charging: true, Plugged: true},
		{Percent: 100, Plugged: true},
		{Percent: 5, Charging: true, Plugged: true},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d steps, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("step %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	for _, bad := range []string{"", " , ", "c", "7x", "abc"} {
		if _, err := parseScript(bad); err == nil {
			t.Errorf("parseScript(%q) expected error", bad)
		}
	}
}

func TestSimSource_StopsOnLastStep(t *testing.T) {
	t.Parallel()

	src, err := newSimSource("73,70,20c")
	if err != nil {
		t.Fatalf("newSimSource: %v", err)
	}
	want := []IconID{IconPct100, IconPct70, IconCharging, IconCharging}
	for i, id := range want {
		st, err := src.Peek()
		if err != nil {
			t.Fatalf("Peek: %v", err)
		}
		if got := selectIcon(st); got != id {
			t.Fatalf("peek %d icon = %s, want %s", i, got, id)
		}
	}
}

func TestOpenBatterySource(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", map[string]string{"type": "Battery", "capacity": "50", "status": "Discharging"})

	oldInfo := hostInfo
	t.Cleanup(func() { hostInfo = oldInfo })
	role := ""
	hostInfo = func() (*host.InfoStat, error) {
		return &host.InfoStat{Platform: "test", VirtualizationRole: role}, nil
	}

	base := settings{battery: "auto", script: "40", powerSupply: root}

	src, _, err := openBatterySource(base)
	if err != nil {
		t.Fatalf("auto: %v", err)
	}
	if _, ok := src.(sysfsSource); !ok {
		t.Fatalf("auto on a host with a battery = %T, want sysfsSource", src)
	}

	role = "guest"
	src, _, err = openBatterySource(base)
	if err != nil {
		t.Fatalf("auto guest: %v", err)
	}
	if _, ok := src.(*simSource); !ok {
		t.Fatalf("auto on a guest = %T, want *simSource", src)
	}

	role = ""
	empty := base
	empty.powerSupply = t.TempDir()
	src, desc, err := openBatterySource(empty)
	if err != nil {
		t.Fatalf("auto without battery: %v", err)
	}
	if _, ok := src.(*simSource); !ok {
		t.Fatalf("auto without battery = %T (%s), want *simSource", src, desc)
	}

	mouseOnly := base
	mouseOnly.powerSupply = t.TempDir()
	writeSupply(t, mouseOnly.powerSupply, "AC", map[string]string{"type": "Mains", "online": "1"})
	writeSupply(t, mouseOnly.powerSupply, "hidpp_battery_0", map[string]string{"type": "Battery", "scope": "Device", "capacity": "40"})
	src, desc, err = openBatterySource(mouseOnly)
	if err != nil {
		t.Fatalf("auto with only a mouse battery: %v", err)
	}
	if _, ok := src.(*simSource); !ok {
		t.Fatalf("auto with only a mouse battery = %T (%s), want *simSource", src, desc)
	}

	forced := base
	forced.battery = "sysfs"
	forced.powerSupply = empty.powerSupply
	if src, _, _ := openBatterySource(forced); src == nil {
		t.Fatalf("explicit sysfs should not fall back")
	} else if _, ok := src.(sysfsSource); !ok {
		t.Fatalf("explicit sysfs = %T", src)
	}

	bad := base
	bad.battery = "sim"
	bad.script = "oops"
	if _, _, err := openBatterySource(bad); err == nil {
		t.Fatalf("expected script error")
	}
}
