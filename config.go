package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPowerSupply = "/sys/class/power_supply"
	defaultPoll        = 30 * time.Second
	defaultScript      = "100"
)

type settings struct {
	target      string
	battery     string
	script      string
	powerSupply string
	poll        time.Duration
	debug       bool
}

// settingsFromEnv reads the WATCHFACE_* variables. Call it after the
// .env file has been loaded.
func settingsFromEnv() (settings, error) {
	s := settings{
		target:      os.Getenv("WATCHFACE_TARGET"),
		battery:     envOr("WATCHFACE_BATTERY", "auto"),
		script:      envOr("WATCHFACE_BATTERY_SCRIPT", defaultScript),
		powerSupply: envOr("WATCHFACE_POWER_SUPPLY", defaultPowerSupply),
		poll:        defaultPoll,
	}

	if v := strings.TrimSpace(os.Getenv("WATCHFACE_POLL")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return s, fmt.Errorf("WATCHFACE_POLL: %w", err)
		}
		s.poll = d
	}
	if v := strings.TrimSpace(os.Getenv("WATCHFACE_DEBUG")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("WATCHFACE_DEBUG: %w", err)
		}
		s.debug = b
	}
	return s, nil
}

func (s settings) validate() error {
	if s.poll <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", s.poll)
	}
	switch s.battery {
	case "auto", "sysfs", "sim":
	default:
		return fmt.Errorf("unknown battery source %q (want auto, sysfs or sim)", s.battery)
	}
	return nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// clockIs24hStyle reports the host's clock preference. It is read on
// every tick so a change to the environment shows up on the next minute.
func clockIs24hStyle() bool {
	v := strings.TrimSpace(os.Getenv("WATCHFACE_24H"))
	if v == "" {
		return true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return b
}
