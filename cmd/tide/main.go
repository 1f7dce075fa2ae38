package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/BreathCodeFlow/tide/internal/auth"
	"github.com/BreathCodeFlow/tide/internal/config"
	"github.com/BreathCodeFlow/tide/internal/events"
	"github.com/BreathCodeFlow/tide/internal/executor"
	"github.com/BreathCodeFlow/tide/internal/logger"
	"github.com/BreathCodeFlow/tide/internal/notify"
	"github.com/BreathCodeFlow/tide/internal/scheduler"
	"github.com/BreathCodeFlow/tide/internal/ui"
)

type cliArgs struct {
	quiet      bool
	dryRun     bool
	force      bool
	verbose    bool
	list       bool
	initConfig bool
	version    bool
	parallel   int
	configPath string
	groups     []string
	skipGroups []string
}

func parseArgs(arguments []string) (cliArgs, error) {
	var args cliArgs
	var groups, skipGroups string

	fs := flag.NewFlagSet("tide", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "🌊 Tide - Refresh your system with the update wave")
		fmt.Fprintln(fs.Output(), "\nUsage: tide [options]")
		fmt.Fprintln(fs.Output(), "\nOptions:")
		fs.PrintDefaults()
	}

	fs.BoolVar(&args.quiet, "quiet", false, "Run in quiet mode (no banner, minimal output)")
	fs.BoolVar(&args.quiet, "q", false, "Shorthand for --quiet")
	fs.BoolVar(&args.dryRun, "dry-run", false, "Show what would be executed without running anything")
	fs.BoolVar(&args.dryRun, "n", false, "Shorthand for --dry-run")
	fs.StringVar(&groups, "groups", "", "Run specific groups only (comma-separated)")
	fs.StringVar(&groups, "g", "", "Shorthand for --groups")
	fs.StringVar(&skipGroups, "skip-groups", "", "Skip specific groups (comma-separated)")
	fs.StringVar(&skipGroups, "x", "", "Shorthand for --skip-groups")
	fs.IntVar(&args.parallel, "parallel", config.DefaultParallelLimit, "Maximum parallel tasks")
	fs.IntVar(&args.parallel, "j", config.DefaultParallelLimit, "Shorthand for --parallel")
	fs.StringVar(&args.configPath, "config", "", "Config file path (default: ~/.config/tide/config.toml)")
	fs.StringVar(&args.configPath, "c", "", "Shorthand for --config")
	fs.BoolVar(&args.initConfig, "init", false, "Generate default config and exit")
	fs.BoolVar(&args.list, "list", false, "List all configured tasks and exit")
	fs.BoolVar(&args.list, "l", false, "Shorthand for --list")
	fs.BoolVar(&args.force, "force", false, "Run without confirmations")
	fs.BoolVar(&args.force, "f", false, "Shorthand for --force")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable verbose output")
	fs.BoolVar(&args.verbose, "v", false, "Shorthand for --verbose")
	fs.BoolVar(&args.version, "version", false, "Print version and exit")

	if err := fs.Parse(arguments); err != nil {
		return cliArgs{}, err
	}

	args.groups = splitList(groups)
	args.skipGroups = splitList(skipGroups)
	return args, nil
}

func splitList(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(arguments []string) int {
	args, err := parseArgs(arguments)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if args.version {
		fmt.Printf("tide %s\n", ui.Version)
		return 0
	}

	if args.initConfig {
		return initConfig(args.configPath)
	}

	if runtime.GOOS != "darwin" {
		fmt.Fprintln(os.Stderr, "❌ This tool is for macOS only!")
		return 1
	}

	configPath := config.ResolvePath(args.configPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		return 1
	}
	printer := ui.NewPrinter(os.Stdout, cfg.Settings.UseColors)

	if args.list {
		printer.TaskList(*cfg, args.groups, args.skipGroups, args.verbose)
		fmt.Printf("Using config file: %s\n", configPath)
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verbose := args.verbose || cfg.Settings.Verbose

	var sink *logger.Logger
	if cfg.Settings.LogFile != "" {
		logPath := config.ResolveLogPath(cfg.Settings.LogFile, configPath)
		sink, err = logger.New(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "⚠️  Could not open log file: %v\n", err)
		} else {
			defer sink.Close()
			if !args.quiet {
				fmt.Printf("📝 Task output will be logged to %s\n", logPath)
			}
		}
	}

	// Weather is fetched concurrently with the run and rendered at the
	// end, so a slow network never delays the tasks.
	var weatherCh chan string
	if !args.quiet && cfg.Settings.ShowWeather {
		weatherCh = make(chan string, 1)
		go func() {
			report, err := ui.FetchWeather(ctx, nil)
			if err != nil {
				report = ""
			}
			weatherCh <- report
		}()
	}

	if !args.quiet && cfg.Settings.ShowBanner {
		printer.Banner()
	}

	units := scheduler.Collect(*cfg, args.groups, args.skipGroups)
	if len(units) == 0 {
		fmt.Println("No tasks to run!")
		return 0
	}

	if !args.force && !args.quiet {
		fmt.Printf("\n📦 Ready to run %d tasks\n", len(units))
		if args.dryRun {
			fmt.Println("🔸 DRY RUN MODE - No changes will be made")
		}
		proceed, err := auth.TerminalPrompt{}.Confirm("Continue?", true)
		if err != nil || !proceed {
			fmt.Println("Cancelled by user")
			return 0
		}
	}

	bus := events.NewBus()

	notifier := notify.New(cfg.Settings.DesktopNotifications && !args.quiet)
	forwarder := notify.NewForwarder(bus, notifier)

	var progress *ui.Progress
	if cfg.Settings.ShowProgress && !args.quiet {
		progress = ui.NewProgress(bus, printer)
	}

	negotiator := auth.NewNegotiator(
		auth.KeychainStore{},
		auth.TerminalPrompt{},
		bus,
		verbose,
	)

	runner := executor.NewRunner(executor.Options{
		DryRun:        args.dryRun,
		Verbose:       verbose,
		Env:           executor.Environment(),
		KeychainLabel: cfg.Settings.KeychainLabel,
		Auth:          negotiator,
		Bus:           bus,
		Log:           sink,
	})

	dispatcher := scheduler.NewDispatcher(*cfg, runner, scheduler.Options{
		DryRun:        args.dryRun,
		Quiet:         args.quiet,
		ParallelLimit: args.parallel,
		Auth:          negotiator,
		Bus:           bus,
	})

	start := time.Now()
	results := dispatcher.Run(ctx, units)
	elapsed := time.Since(start)

	summary := scheduler.Summarize(results, elapsed)
	printer.Summary(summary)

	if summary.Failed == 0 && summary.Succeeded > 0 {
		bus.Publish(events.TopicRun, events.RunCompletedEvent{
			SuccessCount: summary.Succeeded,
			TotalSeconds: int(elapsed.Seconds()),
			Timestamp:    time.Now(),
		})
	}

	if !args.quiet && cfg.Settings.ShowSystemInfo {
		printer.SystemInfo()
	}

	if weatherCh != nil {
		printer.Weather(<-weatherCh)
	}

	bus.Close()
	forwarder.Wait()
	if progress != nil {
		progress.Wait()
	}

	if summary.Failed > 0 {
		return 1
	}
	return 0
}

// initConfig writes the starter configuration, asking before it
// overwrites an existing file.
func initConfig(explicitPath string) int {
	path := config.ResolvePath(explicitPath)

	if _, err := os.Stat(path); err == nil {
		overwrite, err := auth.TerminalPrompt{}.Confirm("Config file already exists. Overwrite?", false)
		if err != nil || !overwrite {
			return 0
		}
	}

	if err := config.Save(config.Default(), path); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Could not write config: %v\n", err)
		return 1
	}

	fmt.Printf("✓ Config created: %s\n", path)
	fmt.Printf("Edit it with: nano %s\n", filepath.Clean(path))
	return 0
}
