package executor

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/careshift/servicetree/internal/catalog"
	"github.com/careshift/servicetree/internal/recency"
	"github.com/careshift/servicetree/internal/storage"
)

type recordingNavigator struct {
	mu     sync.Mutex
	routes []string
}

func (n *recordingNavigator) Navigate(route string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.routes = append(n.routes, route)
}

type recordingSink struct {
	mu      sync.Mutex
	signals []Signal
	ch      chan Signal
}

func newRecordingSink() *recordingSink {
	return &recordingSink{ch: make(chan Signal, 4)}
}

func (s *recordingSink) Emit(sig Signal) {
	s.mu.Lock()
	s.signals = append(s.signals, sig)
	s.mu.Unlock()
	s.ch <- sig
}

func newExecutor(t *testing.T, sink Sink) (*Executor, *recordingNavigator, *recency.Tracker) {
	t.Helper()
	nav := &recordingNavigator{}
	tracker := recency.NewTracker(storage.NewMemory(), "", 0, nil)
	return New(tracker, nav, sink, time.Millisecond, nil), nav, tracker
}

func TestExecuteRecordsAndNavigates(t *testing.T) {
	e, nav, tracker := newExecutor(t, nil)

	a := catalog.Action{ID: "calendar.getEvents", Route: "/dashboard/calendar"}
	got := e.Execute(a)

	assert.Equal(t, a, got, "execute returns the same action for chaining")
	assert.Equal(t, []string{"/dashboard/calendar"}, nav.routes)
	assert.Equal(t, []string{"calendar.getEvents"}, tracker.List())
}

func TestExecuteNavigatesRouteVerbatim(t *testing.T) {
	e, nav, _ := newExecutor(t, nil)

	e.Execute(catalog.Action{ID: "calendar.createEvent", Route: "/dashboard/calendar?action=create"})
	assert.Equal(t, []string{"/dashboard/calendar?action=create"}, nav.routes)
}

func TestExecuteEmitsCreateFormSignal(t *testing.T) {
	sink := newRecordingSink()
	e, _, _ := newExecutor(t, sink)

	e.Execute(catalog.Action{ID: "calendar.createEvent", Route: "/dashboard/calendar?action=create"})

	select {
	case sig := <-sink.ch:
		assert.Equal(t, SignalOpenCreateForm, sig.Type)
		assert.Empty(t, sig.Modal)
	case <-time.After(time.Second):
		t.Fatal("expected a deferred signal")
	}
}

func TestExecuteEmitsModalSignal(t *testing.T) {
	sink := newRecordingSink()
	e, _, _ := newExecutor(t, sink)

	e.Execute(catalog.Action{ID: "storage.uploadFile", Route: "/dashboard/documents?modal=upload"})

	select {
	case sig := <-sink.ch:
		assert.Equal(t, SignalOpenModal, sig.Type)
		assert.Equal(t, "upload", sig.Modal)
	case <-time.After(time.Second):
		t.Fatal("expected a deferred signal")
	}
}

func TestExecutePlainRouteEmitsNothing(t *testing.T) {
	sink := newRecordingSink()
	e, _, _ := newExecutor(t, sink)

	e.Execute(catalog.Action{ID: "messages.open", Route: "/dashboard/messages"})

	select {
	case <-sink.ch:
		t.Fatal("plain route must not raise a signal")
	case <-time.After(20 * time.Millisecond):
	}

	_, ok := e.ConsumeIntent()
	assert.False(t, ok)
}

func TestConsumeIntentIsOneShot(t *testing.T) {
	e, _, _ := newExecutor(t, nil)

	e.Execute(catalog.Action{ID: "calendar.createEvent", Route: "/dashboard/calendar?action=create"})

	intent, ok := e.ConsumeIntent()
	require.True(t, ok)
	assert.Equal(t, "calendar.createEvent", intent.ActionID)
	assert.Equal(t, SignalOpenCreateForm, intent.Signal.Type)

	_, ok = e.ConsumeIntent()
	assert.False(t, ok, "intent is consumed exactly once")
}

func TestSignalFor(t *testing.T) {
	tests := []struct {
		route    string
		expected Signal
		ok       bool
	}{
		{"/dashboard/calendar", Signal{}, false},
		{"/dashboard/calendar?action=create", Signal{Type: SignalOpenCreateForm}, true},
		{"/dashboard/documents?modal=upload", Signal{Type: SignalOpenModal, Modal: "upload"}, true},
		{"/dashboard?modal=upload&action=create", Signal{Type: SignalOpenModal, Modal: "upload"}, true},
		{"/dashboard?action=edit", Signal{}, false},
		{"/dashboard?", Signal{}, false},
	}
	for _, tt := range tests {
		sig, ok := signalFor(tt.route)
		assert.Equal(t, tt.ok, ok, "route %q", tt.route)
		assert.Equal(t, tt.expected, sig, "route %q", tt.route)
	}
}
