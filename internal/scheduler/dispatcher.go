package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/BreathCodeFlow/tide/internal/auth"
	"github.com/BreathCodeFlow/tide/internal/config"
	"github.com/BreathCodeFlow/tide/internal/events"
	"github.com/BreathCodeFlow/tide/internal/executor"
)

// TaskRunner executes a single task to a terminal result.
// Implemented by executor.Runner.
type TaskRunner interface {
	Run(ctx context.Context, task config.Task, groupName, groupIcon string) executor.Result
}

// Authorizer negotiates elevated privileges ahead of the run.
// Implemented by auth.Negotiator.
type Authorizer interface {
	PreAuthorize(ctx context.Context, label string) error
}

// Unit is one runnable task paired with the group it came from.
type Unit struct {
	Task  config.Task
	Group config.TaskGroup
}

// Options configures a Dispatcher.
type Options struct {
	DryRun        bool
	Quiet         bool
	ParallelLimit int // CLI bound; combined with the configured limit
	Auth          Authorizer
	Bus           *events.Bus
}

// Dispatcher partitions runnable tasks into a sequential and a parallel
// bin and drives both to completion. It always returns a complete result
// set; task failures are carried in results, never as an error.
type Dispatcher struct {
	cfg    config.Config
	runner TaskRunner
	opts   Options

	sudoAvailable func() bool
}

// NewDispatcher creates a dispatcher over a resolved configuration.
func NewDispatcher(cfg config.Config, runner TaskRunner, opts Options) *Dispatcher {
	return &Dispatcher{
		cfg:           cfg,
		runner:        runner,
		opts:          opts,
		sudoAvailable: func() bool { return auth.CommandExists("sudo") },
	}
}

// Collect returns the runnable units of a configuration in declaration
// order, honoring group enablement, task enablement, and the CLI
// include/exclude group lists. Matching is case-insensitive on group
// names.
func Collect(cfg config.Config, include, exclude []string) []Unit {
	var units []Unit
	for _, group := range cfg.Groups {
		if !group.Enabled {
			continue
		}
		if len(include) > 0 && !containsFold(include, group.Name) {
			continue
		}
		if containsFold(exclude, group.Name) {
			continue
		}
		for _, task := range group.Tasks {
			if !task.Enabled {
				continue
			}
			units = append(units, Unit{Task: task, Group: group})
		}
	}
	return units
}

// Partition splits units into the sequential and parallel bins.
// A unit is parallel when its group opts in, or when global parallel
// execution is on and the task does not need elevation.
func (d *Dispatcher) Partition(units []Unit) (sequential, parallel []Unit) {
	for _, u := range units {
		if u.Group.Parallel || (d.cfg.Settings.ParallelExecution && !u.Task.Sudo) {
			parallel = append(parallel, u)
		} else {
			sequential = append(sequential, u)
		}
	}
	return sequential, parallel
}

// Run executes all units and returns their results: the sequential bin
// first, in declaration order, then the parallel bin in completion
// order.
func (d *Dispatcher) Run(ctx context.Context, units []Unit) []executor.Result {
	d.preAuthorize(ctx, units)

	sequential, parallel := d.Partition(units)

	results := make([]executor.Result, 0, len(units))
	results = append(results, d.runSequential(ctx, sequential)...)
	results = append(results, d.runParallel(ctx, parallel)...)
	return results
}

// preAuthorize negotiates sudo once before any worker can need it, so a
// password prompt never fires mid-run under a task's timeout. Failure
// is advisory: each elevated task re-negotiates on its own.
func (d *Dispatcher) preAuthorize(ctx context.Context, units []Unit) {
	if d.opts.Auth == nil || d.opts.DryRun || d.opts.Quiet {
		return
	}
	if !needsElevation(units) || !d.sudoAvailable() {
		return
	}
	if err := d.opts.Auth.PreAuthorize(ctx, d.cfg.Settings.KeychainLabel); err != nil {
		d.publish(events.TopicAuth, events.TaskFailedEvent{
			Name:      "pre-authorization",
			Reason:    err.Error(),
			Timestamp: time.Now(),
		})
	}
}

func (d *Dispatcher) runSequential(ctx context.Context, units []Unit) []executor.Result {
	results := make([]executor.Result, 0, len(units))
	for _, u := range units {
		res := d.runOne(ctx, u)
		results = append(results, res)
		if res.Status == executor.StatusFailed && u.Task.Required && d.cfg.Settings.SkipOptionalOnError {
			break
		}
	}
	return results
}

func (d *Dispatcher) runParallel(ctx context.Context, units []Unit) []executor.Result {
	if len(units) == 0 {
		return nil
	}

	gate := semaphore.NewWeighted(int64(d.gateSize()))
	resultCh := make(chan executor.Result, len(units))

	var g errgroup.Group
	for _, u := range units {
		g.Go(func() error {
			if err := gate.Acquire(ctx, 1); err != nil {
				resultCh <- executor.Result{
					Name:      u.Task.Name,
					Group:     u.Group.Name,
					GroupIcon: u.Group.Icon,
					Status:    executor.StatusFailed,
					Output:    fmt.Sprintf("cancelled before start: %v", err),
				}
				return nil
			}
			defer gate.Release(1)
			resultCh <- d.runOne(ctx, u)
			return nil
		})
	}

	_ = g.Wait()
	close(resultCh)

	results := make([]executor.Result, 0, len(units))
	for res := range resultCh {
		results = append(results, res)
	}
	return results
}

// runOne executes a unit and applies the required-ness policy: failures
// of optional tasks are reclassified to skips before anyone sees them.
func (d *Dispatcher) runOne(ctx context.Context, u Unit) executor.Result {
	res := d.runner.Run(ctx, u.Task, u.Group.Name, u.Group.Icon)

	if res.Status == executor.StatusFailed && !u.Task.Required {
		res.Status = executor.StatusSkipped
	}

	if res.Status == executor.StatusFailed {
		d.publish(events.TopicTask, events.TaskFailedEvent{
			Name:      res.Name,
			Group:     res.Group,
			Reason:    res.Output,
			Timestamp: time.Now(),
		})
	}

	d.publish(events.TopicTask, events.TaskFinishedEvent{
		Name:      res.Name,
		Group:     res.Group,
		GroupIcon: res.GroupIcon,
		Status:    res.Status.String(),
		Reason:    res.Output,
		Duration:  res.Duration,
		Timestamp: time.Now(),
	})

	return res
}

// gateSize bounds parallel workers by the stricter of the CLI and
// configured limits, never below one.
func (d *Dispatcher) gateSize() int {
	limit := d.opts.ParallelLimit
	if limit <= 0 {
		limit = config.DefaultParallelLimit
	}
	cfgLimit := d.cfg.Settings.ParallelLimit
	if cfgLimit > 0 && cfgLimit < limit {
		limit = cfgLimit
	}
	if limit < 1 {
		limit = 1
	}
	return limit
}

func (d *Dispatcher) publish(topic string, event events.Event) {
	if d.opts.Bus == nil {
		return
	}
	d.opts.Bus.Publish(topic, event)
}

func needsElevation(units []Unit) bool {
	for _, u := range units {
		if u.Task.Sudo {
			return true
		}
	}
	return false
}

func containsFold(list []string, name string) bool {
	for _, item := range list {
		if strings.EqualFold(item, name) {
			return true
		}
	}
	return false
}
