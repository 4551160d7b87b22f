package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Pub(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

var alice = compose.Info{Name: "Alice", Number: "10086", Location: "Beijing", SlotID: 1}

func TestScript(t *testing.T) {
	steps := Script(alice, compose.WebCall, time.Second)
	require.Len(t, steps, 4)

	assert.Equal(t, compose.Info{Number: "10086", Status: StatusDialing, SlotID: 1}, steps[0].Event.Info)
	assert.Equal(t, StatusRinging, steps[1].Event.Info.Status)
	assert.Equal(t, alice, steps[2].Event.Info)
	assert.Equal(t, StatusEnded, steps[3].Event.Info.Status)
	assert.True(t, steps[3].Event.Done)
	for _, step := range steps {
		assert.Equal(t, compose.WebCall, step.Event.Kind)
	}
}

func TestDial(t *testing.T) {
	rec := &recorder{}
	require.NoError(t, Dial(context.Background(), rec, Script(alice, compose.Regular, time.Millisecond)))
	require.Len(t, rec.events, 4)
	assert.Equal(t, "Alice", rec.events[2].Info.Name)
}

func TestDialCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rec := &recorder{}
	steps := []Step{
		{Event: Event{Info: alice}},
		{After: time.Hour, Event: Event{Done: true}},
	}

	done := make(chan error)
	go func() { done <- Dial(ctx, rec, steps) }()
	assert.Eventually(t, func() bool {
		rec.mu.Lock()
		defer rec.mu.Unlock()
		return len(rec.events) == 1
	}, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("dial did not return")
	}
}

type sink struct{ last compose.Label }

func (s *sink) Present(l compose.Label) { s.last = l }
func (s *sink) Clear() { s.last = compose.Label{} }

func TestApplyThroughTopic(t *testing.T) {
	s := &sink{}
	c := compose.New(compose.Config{Sink: s, Badges: compose.BadgeTexts{WebCall: "Web"}})
	topic := pubsub.NewTopic[Event](pubsub.Sync)
	topic.Sub(context.Background(), func(ev Event) { Apply(c, ev) })

	require.NoError(t, Dial(context.Background(), topic, Script(alice, compose.WebCall, 0)))
	assert.Equal(t, "Alice [Web]\n"+StatusEnded, s.last.String())

	Apply(c, Script(alice, compose.WebCall, 0)[0].Event)
	assert.Equal(t, "10086 [Web]\n"+StatusDialing, s.last.String())
}

func TestApplyKindOnly(t *testing.T) {
	s := &sink{}
	c := compose.New(compose.Config{Sink: s, Badges: compose.BadgeTexts{WebCall: "Web"}})

	Apply(c, Event{Info: alice, Kind: compose.Regular})
	_, ok := s.last.Badge()
	assert.False(t, ok)

	Apply(c, Event{Info: alice, Kind: compose.WebCall})
	assert.Equal(t, "Web", c.BadgeText())
	badge, ok := s.last.Badge()
	require.True(t, ok)
	assert.Equal(t, "Web", badge.Text)
}
