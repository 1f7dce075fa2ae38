package notify

import (
	"github.com/BreathCodeFlow/tide/internal/events"
)

// Forwarder consumes bus events and maps them to desktop notifications.
// It runs until the bus closes; notification errors are discarded so
// telemetry plumbing can never affect task outcomes.
type Forwarder struct {
	notifier *Notifier
	done     chan struct{}
}

// NewForwarder subscribes the notifier to the bus and starts forwarding.
func NewForwarder(bus *events.Bus, notifier *Notifier) *Forwarder {
	f := &Forwarder{
		notifier: notifier,
		done:     make(chan struct{}),
	}

	ch := bus.SubscribeAll(0)
	go f.run(ch)

	return f
}

// Wait blocks until the bus closes and all pending events are drained.
func (f *Forwarder) Wait() {
	<-f.done
}

func (f *Forwarder) run(ch <-chan events.Event) {
	defer close(f.done)

	for ev := range ch {
		switch e := ev.(type) {
		case events.InteractiveInputEvent:
			_ = f.notifier.InteractiveInputDetected(e.Name, e.Group)
		case events.TaskTimedOutEvent:
			_ = f.notifier.TaskTimedOut(e.Name, e.Group, e.Seconds)
		case events.TaskFailedEvent:
			_ = f.notifier.TaskFailed(e.Name, e.Group, e.Reason)
		case events.ElevationRequiredEvent:
			_ = f.notifier.ElevationRequired()
		case events.RunCompletedEvent:
			_ = f.notifier.AllTasksComplete(e.SuccessCount, e.TotalSeconds)
		}
	}
}
