package scheduler

import (
	"time"

	"github.com/BreathCodeFlow/tide/internal/executor"
)

// Failure names a failed task and carries its reason for diagnostics.
type Failure struct {
	Name   string
	Group  string
	Reason string
}

// Summary is the aggregate view of a finished run.
type Summary struct {
	Total        int
	Succeeded    int
	Failed       int
	Skipped      int
	TotalElapsed time.Duration
	Longest      executor.Result // zero value when no results
	Failures     []Failure       // in result order
}

// Summarize reduces a result list to its summary. Pure: no side
// effects, and repeated calls over the same results yield identical
// summaries. TotalElapsed is the wall time of the whole run, supplied
// by the caller, not the sum of task durations.
func Summarize(results []executor.Result, elapsed time.Duration) Summary {
	s := Summary{
		Total:        len(results),
		TotalElapsed: elapsed,
	}

	for _, res := range results {
		switch res.Status {
		case executor.StatusSuccess:
			s.Succeeded++
		case executor.StatusFailed:
			s.Failed++
			s.Failures = append(s.Failures, Failure{
				Name:   res.Name,
				Group:  res.Group,
				Reason: res.Output,
			})
		case executor.StatusSkipped:
			s.Skipped++
		}
		if res.Duration > s.Longest.Duration {
			s.Longest = res
		}
	}

	return s
}
