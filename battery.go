package main

// BatteryState is one snapshot from the battery service.
type BatteryState struct {
	Percent  int
	Charging bool
	Plugged  bool
}

// IconID names one of the battery icon resources.
type IconID int

const (
	IconCharging IconID = iota
	IconPct100
	IconPct90
	IconPct80
	IconPct70
	IconPct60
	IconPct50
	IconPct40
	IconPct30
	IconPct20
	IconPct10
	IconPct0
)

// decileIcons is indexed by percent/10.
var decileIcons = [11]IconID{
	IconPct0, IconPct10, IconPct20, IconPct30, IconPct40, IconPct50,
	IconPct60, IconPct70, IconPct80, IconPct90, IconPct100,
}

var iconNames = map[IconID]string{
	IconCharging: "battery_charging",
	IconPct100:   "battery_100",
	IconPct90:    "battery_090",
	IconPct80:    "battery_080",
	IconPct70:    "battery_070",
	IconPct60:    "battery_060",
	IconPct50:    "battery_050",
	IconPct40:    "battery_040",
	IconPct30:    "battery_030",
	IconPct20:    "battery_020",
	IconPct10:    "battery_010",
	IconPct0:     "battery_000",
}

func (id IconID) String() string {
	if name, ok := iconNames[id]; ok {
		return name
	}
	return "battery_unknown"
}

// selectIcon maps a battery state to its icon. Charging wins over the
// percentage. Percentages that are not an exact decile in [0,100] show
// the full icon.
func selectIcon(s BatteryState) IconID {
	if s.Charging {
		return IconCharging
	}
	if s.Percent >= 0 && s.Percent <= 100 && s.Percent%10 == 0 {
		return decileIcons[s.Percent/10]
	}
	return IconPct100
}

// level returns the fill in tenths drawn for a decile icon.
func (id IconID) level() int {
	for i, d := range decileIcons {
		if d == id {
			return i
		}
	}
	return -1
}
