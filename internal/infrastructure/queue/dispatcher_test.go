package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookstore/identity-service/internal/core/domain"
)

type published struct {
	topic   string
	payload map[string]string
}

type stubPublisher struct {
	out  chan published
	fail bool
}

func (p *stubPublisher) Publish(_ context.Context, topic string, payload map[string]string) error {
	if p.fail {
		return errors.New("broker unavailable")
	}
	p.out <- published{topic: topic, payload: payload}
	return nil
}

func TestDispatcher_DeliversEvent(t *testing.T) {
	pub := &stubPublisher{out: make(chan published, 1)}
	d := NewDispatcher(2, pub, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{
		Kind:     domain.EventRegistered,
		UserID:   "1",
		Email:    "alice@x.com",
		Username: "alice",
		Time:     time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	})

	select {
	case got := <-pub.out:
		if got.topic != domain.TopicUserRegistered {
			t.Fatalf("unexpected topic: %s", got.topic)
		}
		if got.payload["email"] != "alice@x.com" || got.payload["username"] != "alice" || got.payload["id"] != "1" {
			t.Fatalf("unexpected payload: %v", got.payload)
		}
		if got.payload["time"] != "2026-01-02T03:04:05Z" {
			t.Fatalf("unexpected time: %s", got.payload["time"])
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event was not delivered")
	}
}

func TestDispatcher_LoginPayloadOmitsUsername(t *testing.T) {
	pub := &stubPublisher{out: make(chan published, 1)}
	d := NewDispatcher(1, pub, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(domain.AuthEvent{Kind: domain.EventLoggedIn, UserID: "2", Email: "bob@x.com", Time: time.Now()})

	select {
	case got := <-pub.out:
		if got.topic != domain.TopicUserLoggedIn {
			t.Fatalf("unexpected topic: %s", got.topic)
		}
		if _, ok := got.payload["username"]; ok {
			t.Fatalf("login payload must not carry a username: %v", got.payload)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("event was not delivered")
	}
}

func TestDispatcher_PublishFailureDoesNotPropagate(t *testing.T) {
	failing := &stubPublisher{fail: true}
	d := NewDispatcher(1, failing, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Enqueue never returns an error and must not panic when every publish
	// fails; the worker keeps draining.
	for i := 0; i < 10; i++ {
		d.Enqueue(domain.AuthEvent{Kind: domain.EventLoggedIn, UserID: "3", Email: "carol@x.com", Time: time.Now()})
	}

	// Give workers a moment to drain, then verify the channel empties out.
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(d.workers[d.shardIndex("carol@x.com")]) == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("worker stopped draining after publish failures")
}

func TestDispatcher_CancelStopsWorkers(t *testing.T) {
	pub := &stubPublisher{out: make(chan published, 16)}
	d := NewDispatcher(1, pub, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)
	cancel()

	// After cancellation enqueued events may be dropped; Enqueue itself must
	// stay non-blocking even with no worker draining.
	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer*2; i++ {
			d.Enqueue(domain.AuthEvent{Kind: domain.EventLoggedIn, Email: "dave@x.com", Time: time.Now()})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked after cancellation")
	}
}
