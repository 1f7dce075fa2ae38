package events

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// TestPublishSubscribe verifies basic publish/subscribe functionality.
func TestPublishSubscribe(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(TopicTask, 10)

	event := TaskStartedEvent{
		Name:      "Update Formulae",
		Group:     "Homebrew",
		Command:   "brew update",
		Timestamp: time.Now(),
	}

	bus.Publish(TopicTask, event)

	select {
	case received := <-ch:
		if received.TaskName() != "Update Formulae" {
			t.Errorf("expected task name 'Update Formulae', got '%s'", received.TaskName())
		}
		if received.EventType() != EventTypeTaskStarted {
			t.Errorf("expected event type '%s', got '%s'", EventTypeTaskStarted, received.EventType())
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("timeout waiting for event")
	}
}

// TestMultipleSubscribers verifies multiple subscribers receive the same event.
func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch1 := bus.Subscribe(TopicTask, 10)
	ch2 := bus.Subscribe(TopicTask, 10)

	event := TaskFinishedEvent{
		Name:      "Upgrade Packages",
		Group:     "Homebrew",
		Status:    "success",
		Duration:  100 * time.Millisecond,
		Timestamp: time.Now(),
	}

	bus.Publish(TopicTask, event)

	for i, ch := range []<-chan Event{ch1, ch2} {
		select {
		case received := <-ch:
			if received.TaskName() != "Upgrade Packages" {
				t.Errorf("subscriber %d: expected task name 'Upgrade Packages', got '%s'", i+1, received.TaskName())
			}
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("subscriber %d: timeout waiting for event", i+1)
		}
	}
}

// TestSubscribeAllReceivesEveryTopic verifies cross-topic subscriptions.
func TestSubscribeAllReceivesEveryTopic(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.SubscribeAll(10)

	bus.Publish(TopicTask, TaskFailedEvent{Name: "macOS Updates", Group: "System", Reason: "exit status 1"})
	bus.Publish(TopicAuth, ElevationRequiredEvent{Timestamp: time.Now()})
	bus.Publish(TopicRun, RunCompletedEvent{SuccessCount: 3, TotalSeconds: 42})

	types := make(map[string]bool)
	for i := 0; i < 3; i++ {
		select {
		case received := <-ch:
			types[received.EventType()] = true
		case <-time.After(100 * time.Millisecond):
			t.Fatalf("timeout waiting for event %d", i+1)
		}
	}

	for _, want := range []string{EventTypeTaskFailed, EventTypeElevationRequired, EventTypeRunCompleted} {
		if !types[want] {
			t.Errorf("SubscribeAll missed event type %s", want)
		}
	}
}

// TestNonBlockingSend verifies that publishing doesn't block when channels are full.
func TestNonBlockingSend(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	// Subscribe with buffer size 1
	ch := bus.Subscribe(TopicTask, 1)

	done := make(chan bool)
	go func() {
		for i := 0; i < 10; i++ {
			event := TaskStartedEvent{
				Name:      fmt.Sprintf("task-%d", i),
				Group:     "Test",
				Timestamp: time.Now(),
			}
			bus.Publish(TopicTask, event)
		}
		done <- true
	}()

	select {
	case <-done:
		// Publisher didn't block.
	case <-time.After(100 * time.Millisecond):
		t.Fatal("publisher blocked (expected non-blocking behavior)")
	}

	select {
	case received := <-ch:
		if received == nil {
			t.Error("received nil event")
		}
	default:
		t.Error("expected at least one event in buffer")
	}
}

// TestCloseSignalsSubscribers verifies that closing the bus closes subscriber channels.
func TestCloseSignalsSubscribers(t *testing.T) {
	bus := NewBus()

	ch := bus.Subscribe(TopicTask, 10)
	all := bus.SubscribeAll(10)

	bus.Close()

	for range ch {
		t.Error("unexpected event on closed channel")
	}
	for range all {
		t.Error("unexpected event on closed all-topic channel")
	}

	// Close is idempotent and publish after close is a no-op.
	bus.Close()
	bus.Publish(TopicTask, TaskStartedEvent{Name: "late"})
}

// TestConcurrentPublish verifies the bus is safe for concurrent publishers.
func TestConcurrentPublish(t *testing.T) {
	bus := NewBus()
	defer bus.Close()

	ch := bus.Subscribe(TopicTask, 1024)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				bus.Publish(TopicTask, TaskStartedEvent{
					Name:  fmt.Sprintf("worker-%d-task-%d", w, i),
					Group: "Concurrent",
				})
			}
		}(w)
	}
	wg.Wait()

	received := 0
	for {
		select {
		case <-ch:
			received++
		default:
			if received != 400 {
				t.Errorf("expected 400 events, received %d", received)
			}
			return
		}
	}
}
