// Package executor runs a selected catalog action: it records the execution
// in the recency tracker, navigates to the action's route, and raises any
// view signal the route's query string asks for.
package executor

import (
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/recency"
)

// Navigator performs the actual route change. The embedding application
// provides it; over HTTP it is the event stream the client view layer
// observes.
type Navigator interface {
	Navigate(route string)
}

// Sink receives deferred view signals. Emission is fire-and-forget: the
// executor never learns whether a destination view reacted.
type Sink interface {
	Emit(Signal)
}

// Signal types raised from route query-string conventions.
const (
	SignalOpenModal      = "open-modal"
	SignalOpenCreateForm = "open-create-form"
)

// Signal is the structured notification a destination view observes after
// navigation.
type Signal struct {
	Type  string `json:"type"`
	Modal string `json:"modal,omitempty"`
}

// Intent is the pending one-shot counterpart of a Signal: stored at
// execution time and consumed by the destination view when it mounts,
// removing the timing assumption of the delayed broadcast.
type Intent struct {
	ActionID string `json:"action_id"`
	Signal   Signal `json:"signal"`
}

// DefaultSignalDelay approximates the time the navigated view needs to
// mount before a broadcast signal is worth raising.
const DefaultSignalDelay = 120 * time.Millisecond

// Executor executes catalog actions. Navigation and signal emission never
// retry and never surface failures.
type Executor struct {
	tracker *recency.Tracker
	nav     Navigator
	sink    Sink
	delay   time.Duration
	log     *zap.Logger

	mu      sync.Mutex
	pending *Intent
}

// New creates an executor. sink may be nil when no broadcast channel exists;
// the pending intent is still stored. A non-positive delay uses
// DefaultSignalDelay.
func New(tracker *recency.Tracker, nav Navigator, sink Sink, delay time.Duration, log *zap.Logger) *Executor {
	if delay <= 0 {
		delay = DefaultSignalDelay
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Executor{tracker: tracker, nav: nav, sink: sink, delay: delay, log: log}
}

// Execute records, navigates, and schedules the route's signal, returning
// the same action for chaining.
func (e *Executor) Execute(a catalog.Action) catalog.Action {
	e.tracker.Record(a.ID)
	e.nav.Navigate(a.Route)

	if sig, ok := signalFor(a.Route); ok {
		e.mu.Lock()
		e.pending = &Intent{ActionID: a.ID, Signal: sig}
		e.mu.Unlock()

		if e.sink != nil {
			// One-shot timer; no cancellation. The signal is safe to
			// ignore if the destination view never mounted.
			time.AfterFunc(e.delay, func() { e.sink.Emit(sig) })
		}
		e.log.Debug("scheduled view signal",
			zap.String("action", a.ID), zap.String("signal", sig.Type))
	}

	return a
}

// ConsumeIntent returns the pending intent at most once. Destination views
// call it on mount instead of racing the broadcast delay.
func (e *Executor) ConsumeIntent() (Intent, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.pending == nil {
		return Intent{}, false
	}
	intent := *e.pending
	e.pending = nil
	return intent, true
}

// signalFor inspects a route's query string for the two recognized
// conventions: modal=<name> opens a named modal, action=create opens the
// destination's creation form.
func signalFor(route string) (Signal, bool) {
	_, rawQuery, found := strings.Cut(route, "?")
	if !found {
		return Signal{}, false
	}
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Signal{}, false
	}

	if modal := values.Get("modal"); modal != "" {
		return Signal{Type: SignalOpenModal, Modal: modal}, true
	}
	if values.Get("action") == "create" {
		return Signal{Type: SignalOpenCreateForm}, true
	}
	return Signal{}, false
}
