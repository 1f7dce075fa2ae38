package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Raw decode targets. Absent booleans that default to true (and absent
// timeouts) must be distinguishable from explicit false/zero, so the
// raw layer uses pointers and the loader resolves them.
type rawConfig struct {
	Settings rawSettings `toml:"settings"`
	Groups   []rawGroup  `toml:"groups"`
}

type rawSettings struct {
	ShowBanner           *bool  `toml:"show_banner"`
	ShowWeather          *bool  `toml:"show_weather"`
	ShowSystemInfo       *bool  `toml:"show_system_info"`
	ShowProgress         *bool  `toml:"show_progress"`
	ParallelExecution    *bool  `toml:"parallel_execution"`
	ParallelLimit        *int   `toml:"parallel_limit"`
	SkipOptionalOnError  *bool  `toml:"skip_optional_on_error"`
	KeychainLabel        string `toml:"keychain_label"`
	UseColors            *bool  `toml:"use_colors"`
	Verbose              *bool  `toml:"verbose"`
	LogFile              string `toml:"log_file"`
	DesktopNotifications *bool  `toml:"desktop_notifications"`
}

type rawGroup struct {
	Name        string    `toml:"name"`
	Icon        string    `toml:"icon"`
	Enabled     *bool     `toml:"enabled"`
	Description string    `toml:"description"`
	Parallel    bool      `toml:"parallel"`
	Tasks       []rawTask `toml:"tasks"`
}

type rawTask struct {
	Name        string            `toml:"name"`
	Icon        string            `toml:"icon"`
	Command     []string          `toml:"command"`
	Required    *bool             `toml:"required"`
	Sudo        bool              `toml:"sudo"`
	Enabled     *bool             `toml:"enabled"`
	CheckCommand string           `toml:"check_command"`
	CheckPath   string            `toml:"check_path"`
	Description string            `toml:"description"`
	Timeout     *int              `toml:"timeout"`
	Env         map[string]string `toml:"env"`
	WorkingDir  string            `toml:"working_dir"`
}

// ResolvePath returns the config file path to use: the explicit path if
// given, otherwise the conventional XDG location.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(xdg.ConfigHome, "tide", "config.toml")
}

// Load reads and resolves the configuration at path. A missing file is
// an error pointing the user at --init; malformed TOML is an error.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s\nRun 'tide --init' to create one", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg := resolve(raw)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolve converts the raw decode into a fully-defaulted Config.
func resolve(raw rawConfig) *Config {
	s := raw.Settings
	cfg := &Config{
		Settings: Settings{
			ShowBanner:           boolOr(s.ShowBanner, true),
			ShowWeather:          boolOr(s.ShowWeather, true),
			ShowSystemInfo:       boolOr(s.ShowSystemInfo, true),
			ShowProgress:         boolOr(s.ShowProgress, false),
			ParallelExecution:    boolOr(s.ParallelExecution, false),
			ParallelLimit:        intOr(s.ParallelLimit, DefaultParallelLimit),
			SkipOptionalOnError:  boolOr(s.SkipOptionalOnError, false),
			KeychainLabel:        stringOr(s.KeychainLabel, DefaultKeychainLabel),
			UseColors:            boolOr(s.UseColors, true),
			Verbose:              boolOr(s.Verbose, false),
			LogFile:              s.LogFile,
			DesktopNotifications: boolOr(s.DesktopNotifications, true),
		},
	}

	for _, rg := range raw.Groups {
		group := TaskGroup{
			Name:        rg.Name,
			Icon:        rg.Icon,
			Enabled:     boolOr(rg.Enabled, true),
			Description: rg.Description,
			Parallel:    rg.Parallel,
		}
		for _, rt := range rg.Tasks {
			group.Tasks = append(group.Tasks, Task{
				Name:         rt.Name,
				Icon:         rt.Icon,
				Command:      rt.Command,
				Required:     boolOr(rt.Required, true),
				Sudo:         rt.Sudo,
				Enabled:      boolOr(rt.Enabled, true),
				CheckCommand: rt.CheckCommand,
				CheckPath:    rt.CheckPath,
				Description:  rt.Description,
				Timeout:      intOr(rt.Timeout, DefaultTimeout),
				Env:          rt.Env,
				WorkingDir:   rt.WorkingDir,
			})
		}
		cfg.Groups = append(cfg.Groups, group)
	}

	return cfg
}

// validate rejects configs the engine cannot schedule.
func validate(cfg *Config) error {
	for _, group := range cfg.Groups {
		if group.Name == "" {
			return fmt.Errorf("config contains a group with no name")
		}
		for _, task := range group.Tasks {
			if task.Name == "" {
				return fmt.Errorf("group %q contains a task with no name", group.Name)
			}
			if len(task.Command) == 0 {
				return fmt.Errorf("task %q in group %q has an empty command", task.Name, group.Name)
			}
			if task.Timeout <= 0 {
				return fmt.Errorf("task %q in group %q has a non-positive timeout", task.Name, group.Name)
			}
		}
	}
	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
