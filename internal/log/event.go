package log

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// EventType represents classification of an event.
type EventType string

const (
	PersonaSaved     EventType = "PERSONA_SAVED"
	PersonaDeleted   EventType = "PERSONA_DELETED"
	ModelLoad        EventType = "MODEL_LOAD"
	ModelCache       EventType = "MODEL_CACHE"
	LLMInput         EventType = "LLM_INPUT"
	LLMOutput        EventType = "LLM_OUTPUT"
	InferenceFailure EventType = "INFERENCE_FAILURE"
)

type Event struct {
	Time      time.Time   `json:"ts"`
	EventType EventType   `json:"eventtype"`
	Payload   interface{} `json:"p"`
}

// Collector collects events and fans them out to subscribers.
type Collector struct {
	mu   sync.RWMutex
	subs []chan Event
}

var Default = &Collector{}

// Emit publishes an event of type t stamped with the current time.
func Emit(t EventType, payload interface{}) {
	Default.Publish(Event{Time: time.Now(), EventType: t, Payload: payload})
}

// Publish sends e to all subscribers without blocking.
func (c *Collector) Publish(e Event) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, ch := range c.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe returns a receive-only channel for events. buf is channel size.
func (c *Collector) Subscribe(buf int) <-chan Event {
	ch := make(chan Event, buf)
	c.mu.Lock()
	c.subs = append(c.subs, ch)
	c.mu.Unlock()
	return ch
}

// Unsubscribe closes ch and stops delivering events to it.
func (c *Collector) Unsubscribe(ch <-chan Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, sub := range c.subs {
		if sub == ch {
			close(sub)
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// FileSink writes every event (JSON encoded) to w, filtering by event types if
// provided. The returned function detaches the sink and blocks until the
// buffered events are written.
func FileSink(w io.Writer, filters ...EventType) func() {
	return Default.FileSink(w, filters...)
}

func (c *Collector) FileSink(w io.Writer, filters ...EventType) func() {
	want := map[EventType]bool{}
	for _, f := range filters {
		want[f] = true
	}
	events := c.Subscribe(100)
	done := make(chan struct{})
	go func() {
		defer close(done)
		enc := json.NewEncoder(w)
		for ev := range events {
			if len(want) > 0 && !want[ev.EventType] {
				continue
			}
			_ = enc.Encode(ev)
		}
	}()
	return func() {
		c.Unsubscribe(events)
		<-done
	}
}
