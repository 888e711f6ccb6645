// Package sse implements a Server-Sent Events broker that tells connected
// readers when posts change on disk. Clients that reconnect with a
// Last-Event-ID header are replayed what they missed.
package sse

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event types.
const (
	TypePostCreated    = "post.created"
	TypePostUpdated    = "post.updated"
	TypePostDeleted    = "post.deleted"
	TypeListingUpdated = "listing.updated"
)

var postEventTypes = map[string]string{
	"created": TypePostCreated,
	"updated": TypePostUpdated,
	"deleted": TypePostDeleted,
}

const (
	// heartbeat keeps idle connections open through proxies.
	heartbeat = 30 * time.Second
	// historySize bounds the replay buffer.
	historySize = 128
	// clientBuffer is the per-client queue; slow clients drop messages.
	clientBuffer = 64
	// retryMillis is the reconnect delay suggested to browsers.
	retryMillis = 3000
)

// Event represents an SSE event to broadcast.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// PostChange is the payload of the post.* events.
type PostChange struct {
	Slug string    `json:"slug"`
	Kind string    `json:"kind"`
	At   time.Time `json:"at"`
}

type postEventReq struct {
	kind string
	slug string
}

type subscribeReq struct {
	ch     chan []byte
	lastID string
}

type message struct {
	id  string
	raw []byte
}

// Broker manages SSE client connections and broadcasts events.
//
// A single event loop goroutine owns the client set, the replay history and
// the listing throttle timestamp. Public methods talk to it over channels.
type Broker struct {
	listingMin time.Duration

	subscribeCh   chan subscribeReq
	unsubscribeCh chan chan []byte
	publishCh     chan Event
	postEventCh   chan postEventReq
	countReqCh    chan chan int

	stopCh  chan struct{}
	stopped chan struct{}
	closed  atomic.Bool
}

// NewBroker creates a new SSE broker. At most one listing.updated event is
// sent per listingThrottle.
func NewBroker(listingThrottle time.Duration) *Broker {
	if listingThrottle <= 0 {
		listingThrottle = 2 * time.Second
	}

	b := &Broker{
		listingMin:    listingThrottle,
		subscribeCh:   make(chan subscribeReq),
		unsubscribeCh: make(chan chan []byte),
		publishCh:     make(chan Event, 256),
		postEventCh:   make(chan postEventReq, 256),
		countReqCh:    make(chan chan int),
		stopCh:        make(chan struct{}),
		stopped:       make(chan struct{}),
	}

	go b.run()
	return b
}

func (b *Broker) run() {
	defer close(b.stopped)

	clients := make(map[chan []byte]struct{})
	history := make([]message, 0, historySize)
	var lastListing time.Time

	broadcast := func(event Event) {
		payload, err := json.Marshal(event.Data)
		if err != nil {
			return
		}
		id := uuid.NewString()
		raw := []byte(fmt.Sprintf("id: %s\nevent: %s\ndata: %s\n\n", id, event.Type, payload))

		if len(history) == historySize {
			copy(history, history[1:])
			history = history[:historySize-1]
		}
		history = append(history, message{id: id, raw: raw})

		for ch := range clients {
			select {
			case ch <- raw:
			default:
				// Client buffer full; skip to avoid blocking broker loop.
			}
		}
	}

	// replay queues the messages after lastID. An unknown id replays nothing:
	// the client reloads its listing on listing.updated anyway.
	replay := func(ch chan []byte, lastID string) {
		if lastID == "" {
			return
		}
		for i, m := range history {
			if m.id != lastID {
				continue
			}
			for _, next := range history[i+1:] {
				select {
				case ch <- next.raw:
				default:
					return
				}
			}
			return
		}
	}

	for {
		select {
		case <-b.stopCh:
			for ch := range clients {
				close(ch)
			}
			return

		case req := <-b.subscribeCh:
			replay(req.ch, req.lastID)
			clients[req.ch] = struct{}{}

		case ch := <-b.unsubscribeCh:
			if _, ok := clients[ch]; ok {
				delete(clients, ch)
				close(ch)
			}

		case event := <-b.publishCh:
			broadcast(event)

		case req := <-b.postEventCh:
			typ, ok := postEventTypes[req.kind]
			if !ok {
				continue
			}
			now := time.Now()
			broadcast(Event{Type: typ, Data: PostChange{Slug: req.slug, Kind: req.kind, At: now.UTC()}})

			if now.Sub(lastListing) >= b.listingMin {
				lastListing = now
				broadcast(Event{Type: TypeListingUpdated, Data: map[string]string{}})
			}

		case resp := <-b.countReqCh:
			resp <- len(clients)
		}
	}
}

// Close gracefully stops broker loop and closes all client channels.
func (b *Broker) Close() {
	if b.closed.CompareAndSwap(false, true) {
		close(b.stopCh)
	}
	<-b.stopped
}

// Subscribe adds a new client and returns its channel.
func (b *Broker) Subscribe() chan []byte {
	return b.SubscribeFrom("")
}

// SubscribeFrom adds a new client that first receives every buffered
// message published after lastID.
func (b *Broker) SubscribeFrom(lastID string) chan []byte {
	ch := make(chan []byte, clientBuffer)
	if b.closed.Load() {
		close(ch)
		return ch
	}
	select {
	case b.subscribeCh <- subscribeReq{ch: ch, lastID: lastID}:
	case <-b.stopped:
		close(ch)
	}
	return ch
}

// Unsubscribe removes a client.
func (b *Broker) Unsubscribe(ch chan []byte) {
	if b.closed.Load() {
		return
	}
	select {
	case b.unsubscribeCh <- ch:
	case <-b.stopped:
	}
}

// ClientCount returns the number of connected clients.
func (b *Broker) ClientCount() int {
	if b.closed.Load() {
		return 0
	}

	resp := make(chan int, 1)
	select {
	case b.countReqCh <- resp:
	case <-b.stopped:
		return 0
	}

	select {
	case n := <-resp:
		return n
	case <-b.stopped:
		return 0
	}
}

// Publish sends an event to all connected clients.
func (b *Broker) Publish(event Event) {
	if b.closed.Load() {
		return
	}
	select {
	case b.publishCh <- event:
	case <-b.stopped:
	}
}

// PublishPostEvent publishes a post change ("created", "updated" or
// "deleted") and a throttled listing.updated event.
func (b *Broker) PublishPostEvent(kind, slug string) {
	if b.closed.Load() {
		return
	}
	select {
	case b.postEventCh <- postEventReq{kind: kind, slug: slug}:
	case <-b.stopped:
	}
}

// ServeHTTP is the SSE endpoint handler (GET /api/events).
func (b *Broker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	lastID := r.Header.Get("Last-Event-ID")
	if lastID == "" {
		lastID = r.URL.Query().Get("lastEventId")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintf(w, "retry: %d\n\n", retryMillis)
	flusher.Flush()

	ch := b.SubscribeFrom(lastID)
	defer b.Unsubscribe(ch)

	ping := time.NewTicker(heartbeat)
	defer ping.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ping.C:
			_, _ = w.Write([]byte(": ping\n\n"))
			flusher.Flush()
		case msg, ok := <-ch:
			if !ok {
				return
			}
			_, _ = w.Write(msg)
			flusher.Flush()
		}
	}
}
