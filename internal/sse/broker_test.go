package sse

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// recv waits for the next message on ch.
func recv(t *testing.T, ch chan []byte) string {
	t.Helper()
	select {
	case msg := <-ch:
		return string(msg)
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
		return ""
	}
}

// eventID extracts the id field of a raw SSE message.
func eventID(t *testing.T, msg string) string {
	t.Helper()
	line, _, _ := strings.Cut(msg, "\n")
	id, ok := strings.CutPrefix(line, "id: ")
	if !ok {
		t.Fatalf("no id in %q", msg)
	}
	return id
}

func TestSubscribeUnsubscribe(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients")
	}
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}
	b.Unsubscribe(ch)
	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after unsub")
	}
}

func TestPublishDelivery(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.Publish(Event{Type: TypePostCreated, Data: map[string]string{"slug": "a"}})

	select {
	case msg := <-ch:
		s := string(msg)
		if !strings.HasPrefix(s, "id: ") {
			t.Errorf("missing event id in %q", s)
		}
		if !strings.Contains(s, "event: post.created") {
			t.Errorf("missing event type in %q", s)
		}
		if !strings.Contains(s, `"slug":"a"`) {
			t.Errorf("missing data in %q", s)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for message")
	}
}

func TestPublishPostEvent_ListingThrottle(t *testing.T) {
	b := NewBroker(500 * time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// First event should trigger listing.updated.
	b.PublishPostEvent("created", "a")
	// Second event immediately should NOT trigger another listing.updated.
	b.PublishPostEvent("updated", "b")

	// Drain and count events.
	time.Sleep(50 * time.Millisecond)
	listingCount := 0
	postCount := 0
loop:
	for {
		select {
		case msg := <-ch:
			s := string(msg)
			if strings.Contains(s, "listing.updated") {
				listingCount++
			} else {
				postCount++
			}
		default:
			break loop
		}
	}

	if postCount != 2 {
		t.Errorf("post events = %d, want 2", postCount)
	}
	if listingCount != 1 {
		t.Errorf("listing events = %d, want 1 (throttled)", listingCount)
	}
}

func TestSSEHandler(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	defer b.Close()

	// Start handler in background.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		b.ServeHTTP(w, req)
		close(done)
	}()

	// Give handler time to subscribe.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client from handler")
	}

	b.Publish(Event{Type: TypePostUpdated, Data: map[string]string{"slug": "x"}})
	time.Sleep(50 * time.Millisecond)

	// Cancel context to disconnect.
	cancel()
	<-done

	body := w.Body.String()
	if !strings.Contains(body, "event: post.updated") {
		t.Errorf("handler output missing event: %q", body)
	}

	// Client should be cleaned up.
	time.Sleep(50 * time.Millisecond)
	if b.ClientCount() != 0 {
		t.Errorf("client not cleaned up after disconnect")
	}
}

func TestPublishDropsOnFullBuffer(t *testing.T) {
	b := NewBroker(time.Second)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	// Fill buffer (capacity 64) and then one more should not block.
	for i := 0; i < 70; i++ {
		b.Publish(Event{Type: "test", Data: map[string]string{"i": "x"}})
	}
	// If we reach here without deadlock, the test passes.
}

func TestCloseClosesSubscribersAndStopsOperations(t *testing.T) {
	b := NewBroker(100 * time.Millisecond)
	ch := b.Subscribe()
	if b.ClientCount() != 1 {
		t.Fatalf("expected 1 client")
	}

	b.Close()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("expected subscriber channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for channel close")
	}

	if b.ClientCount() != 0 {
		t.Fatalf("expected 0 clients after close")
	}

	// Should be safe no-op after close.
	b.Publish(Event{Type: TypePostUpdated, Data: map[string]string{"slug": "x"}})
	b.PublishPostEvent("updated", "x")
}

func TestPublishPostEvent_UnknownKindIgnored(t *testing.T) {
	b := NewBroker(time.Millisecond)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishPostEvent("renamed", "a")
	select {
	case msg := <-ch:
		t.Errorf("unexpected message %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishPostEvent_Payload(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()
	ch := b.Subscribe()
	defer b.Unsubscribe(ch)

	b.PublishPostEvent("deleted", "old-post")
	msg := recv(t, ch)
	if !strings.Contains(msg, "event: post.deleted") {
		t.Fatalf("unexpected message %q", msg)
	}
	_, data, _ := strings.Cut(msg, "data: ")
	var change PostChange
	if err := json.Unmarshal([]byte(strings.TrimSpace(data)), &change); err != nil {
		t.Fatal(err)
	}
	if change.Slug != "old-post" || change.Kind != "deleted" || change.At.IsZero() {
		t.Errorf("payload = %+v", change)
	}
}

func TestSubscribeFrom_ReplaysMissed(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()
	first := b.Subscribe()

	for _, slug := range []string{"a", "b", "c"} {
		b.Publish(Event{Type: TypePostUpdated, Data: map[string]string{"slug": slug}})
	}
	id := eventID(t, recv(t, first))
	b.Unsubscribe(first)

	again := b.SubscribeFrom(id)
	defer b.Unsubscribe(again)
	if msg := recv(t, again); !strings.Contains(msg, `"slug":"b"`) {
		t.Errorf("first replayed = %q", msg)
	}
	if msg := recv(t, again); !strings.Contains(msg, `"slug":"c"`) {
		t.Errorf("second replayed = %q", msg)
	}
}

func TestSubscribeFrom_UnknownIDReplaysNothing(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()
	b.Publish(Event{Type: TypePostUpdated, Data: map[string]string{"slug": "a"}})
	time.Sleep(20 * time.Millisecond)

	ch := b.SubscribeFrom("not-an-id")
	defer b.Unsubscribe(ch)
	select {
	case msg := <-ch:
		t.Errorf("unexpected replay %q", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSSEHandler_LastEventIDHeader(t *testing.T) {
	b := NewBroker(time.Hour)
	defer b.Close()
	probe := b.Subscribe()
	b.Publish(Event{Type: TypePostCreated, Data: map[string]string{"slug": "seen"}})
	b.Publish(Event{Type: TypePostCreated, Data: map[string]string{"slug": "missed"}})
	id := eventID(t, recv(t, probe))
	b.Unsubscribe(probe)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil).WithContext(ctx)
	req.Header.Set("Last-Event-ID", id)
	w := httptest.NewRecorder()
	b.ServeHTTP(w, req)

	body := w.Body.String()
	if !strings.HasPrefix(body, "retry: 3000\n\n") {
		t.Errorf("missing retry hint in %q", body)
	}
	if !strings.Contains(body, `"slug":"missed"`) || strings.Contains(body, `"slug":"seen"`) {
		t.Errorf("unexpected replay in %q", body)
	}
}
