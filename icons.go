package main

import (
	"fmt"
	"strings"
)

const iconCells = 10

// iconResource is a loaded battery icon. The face owns it until it is
// replaced or the face is closed.
type iconResource struct {
	id       IconID
	art      []string
	released bool
}

func loadIcon(id IconID) (*iconResource, error) {
	if _, ok := iconNames[id]; !ok {
		return nil, fmt.Errorf("load icon %d: no such resource", int(id))
	}

	var body string
	if id == IconCharging {
		label := "CHARGING"
		pad := iconCells - len(label)
		body = strings.Repeat(" ", pad/2) + label + strings.Repeat(" ", pad-pad/2)
	} else {
		filled := id.level()
		body = strings.Repeat("█", filled) + strings.Repeat("░", iconCells-filled)
	}

	return &iconResource{
		id: id,
		art: []string{
			"┌" + strings.Repeat("─", iconCells) + "┐",
			"│" + body + "│█",
			"└" + strings.Repeat("─", iconCells) + "┘",
		},
	}, nil
}

func (r *iconResource) release() {
	if r == nil {
		return
	}
	r.released = true
	r.art = nil
}

func (r *iconResource) String() string {
	if r == nil || r.released {
		return ""
	}
	return strings.Join(r.art, "\n")
}
