package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		force24h bool
		env      settings
		envErr   error
	)
	env, envErr = settingsFromEnv()

	cmd := &cobra.Command{
		Use:          "watchface",
		Short:        "Time, date and battery on a small watch-sized face",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Run on the default target, reading the laptop battery
  watchface

  # Round color screen, scripted battery
  watchface --target chalk --battery sim --script 73,70,20c
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if envErr != nil {
				return envErr
			}
			if err := env.validate(); err != nil {
				return err
			}
			if env.debug {
				debugLogPath = "debug.log"
			}

			target := defaultTarget(lipgloss.ColorProfile())
			if env.target != "" {
				t, err := lookupTarget(env.target)
				if err != nil {
					return err
				}
				target = t
			}

			src, desc, err := openBatterySource(env)
			if err != nil {
				return fmt.Errorf("battery source: %w", err)
			}
			logDebug("target %s (%dx%d), battery %s", target.Name, target.Width, target.Height, desc)

			use24h := clockIs24hStyle
			if cmd.Flags().Changed("24h") {
				use24h = func() bool { return force24h }
			}
			return runFace(newFace(target, os.Stdout), src, env.poll, use24h)
		},
	}

	cmd.Flags().StringVar(&env.target, "target", env.target, "screen target ("+strings.Join(targetNames(), ", ")+")")
	cmd.Flags().StringVar(&env.battery, "battery", env.battery, "battery source: auto, sysfs or sim")
	cmd.Flags().StringVar(&env.script, "script", env.script, "simulated battery steps, e.g. 73,70,20c")
	cmd.Flags().StringVar(&env.powerSupply, "power-supply", env.powerSupply, "sysfs power_supply directory")
	cmd.Flags().DurationVar(&env.poll, "poll", env.poll, "battery poll interval")
	cmd.Flags().BoolVar(&force24h, "24h", true, "use a 24-hour clock (overrides WATCHFACE_24H)")
	cmd.Flags().BoolVar(&env.debug, "debug", env.debug, "append debug output to debug.log")

	return cmd
}
