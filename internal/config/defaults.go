package config

// Default returns the starter configuration written by --init:
// sensible settings plus example groups covering the common macOS
// maintenance surface.
func Default() *Config {
	return &Config{
		Settings: Settings{
			ShowBanner:           true,
			ShowWeather:          true,
			ShowSystemInfo:       true,
			ShowProgress:         true,
			ParallelExecution:    false,
			ParallelLimit:        DefaultParallelLimit,
			SkipOptionalOnError:  false,
			KeychainLabel:        DefaultKeychainLabel,
			UseColors:            true,
			Verbose:              false,
			DesktopNotifications: true,
		},
		Groups: []TaskGroup{
			{
				Name:        "System Updates",
				Icon:        "🍎",
				Enabled:     true,
				Description: "macOS system updates",
				Parallel:    false,
				Tasks: []Task{
					{
						Name:         "macOS Updates",
						Icon:         "🍎",
						Command:      []string{"softwareupdate", "--install", "--all"},
						Required:     true,
						Sudo:         true,
						Enabled:      true,
						CheckCommand: "softwareupdate",
						Description:  "Install macOS system updates",
						Timeout:      3600,
					},
				},
			},
			{
				Name:        "Homebrew",
				Icon:        "🍺",
				Enabled:     true,
				Description: "Homebrew package manager",
				Parallel:    false,
				Tasks: []Task{
					{
						Name:         "Update Formulae",
						Icon:         "📦",
						Command:      []string{"brew", "update"},
						Required:     true,
						Enabled:      true,
						CheckCommand: "brew",
						Description:  "Update Homebrew package definitions",
						Timeout:      300,
					},
					{
						Name:         "Upgrade Packages",
						Icon:         "⬆️",
						Command:      []string{"brew", "upgrade"},
						Required:     true,
						Enabled:      true,
						CheckCommand: "brew",
						Description:  "Upgrade all outdated packages",
						Timeout:      1200,
					},
				},
			},
		},
	}
}
