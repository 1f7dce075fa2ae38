package config

// Config is the top-level configuration: global settings plus an
// ordered list of task groups.
type Config struct {
	Settings Settings    `toml:"settings"`
	Groups   []TaskGroup `toml:"groups"`
}

// Settings holds global run behavior.
type Settings struct {
	ShowBanner           bool   `toml:"show_banner"`
	ShowWeather          bool   `toml:"show_weather"`
	ShowSystemInfo       bool   `toml:"show_system_info"`
	ShowProgress         bool   `toml:"show_progress"`
	ParallelExecution    bool   `toml:"parallel_execution"`
	ParallelLimit        int    `toml:"parallel_limit"`
	SkipOptionalOnError  bool   `toml:"skip_optional_on_error"`
	KeychainLabel        string `toml:"keychain_label"`
	UseColors            bool   `toml:"use_colors"`
	Verbose              bool   `toml:"verbose"`
	LogFile              string `toml:"log_file,omitempty"`
	DesktopNotifications bool   `toml:"desktop_notifications"`
}

// TaskGroup is an ordered collection of tasks executed together.
// A parallel group's tasks go to the parallel bin; otherwise they run
// sequentially in list order.
type TaskGroup struct {
	Name        string `toml:"name"`
	Icon        string `toml:"icon,omitempty"`
	Enabled     bool   `toml:"enabled"`
	Description string `toml:"description,omitempty"`
	Parallel    bool   `toml:"parallel"`
	Tasks       []Task `toml:"tasks"`
}

// Task is one external command to run.
type Task struct {
	Name        string            `toml:"name"`
	Icon        string            `toml:"icon,omitempty"`
	Command     []string          `toml:"command"`
	Required    bool              `toml:"required"`
	Sudo        bool              `toml:"sudo"`
	Enabled     bool              `toml:"enabled"`
	CheckCommand string           `toml:"check_command,omitempty"`
	CheckPath   string            `toml:"check_path,omitempty"`
	Description string            `toml:"description,omitempty"`
	Timeout     int               `toml:"timeout"` // seconds
	Env         map[string]string `toml:"env,omitempty"`
	WorkingDir  string            `toml:"working_dir,omitempty"`
}

// DefaultTimeout is applied to tasks that don't declare one.
const DefaultTimeout = 300

// DefaultKeychainLabel identifies where the cached elevation secret
// lives when the config doesn't override it.
const DefaultKeychainLabel = "tide-sudo"

// DefaultParallelLimit bounds the parallel bin when unconfigured.
const DefaultParallelLimit = 4
