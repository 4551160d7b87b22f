// Package feed simulates the progression of a call as a stream of caller
// info snapshots.
package feed

import (
	"context"
	"time"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/pubsub"
	"k8s.io/klog/v2"
)

const (
	StatusDialing = "Dialing"
	StatusRinging = "Ringing"
	StatusEnded   = "Call ended"
)

type Event struct {
	Info compose.Info
	Kind compose.CallKind
	// Done marks the last event of a call.
	Done bool
}

type Step struct {
	After time.Duration
	Event Event
}

// Script is an outgoing call to info: the number is known at once, the
// rest once the call connects.
func Script(info compose.Info, kind compose.CallKind, pace time.Duration) []Step {
	dialing := compose.Info{Number: info.Number, Status: StatusDialing, SlotID: info.SlotID}
	ringing := dialing
	ringing.Status = StatusRinging
	connected := info
	connected.Status = ""
	ended := info
	ended.Status = StatusEnded

	return []Step{
		{Event: Event{Info: dialing, Kind: kind}},
		{After: pace, Event: Event{Info: ringing, Kind: kind}},
		{After: 2 * pace, Event: Event{Info: connected, Kind: kind}},
		{After: 4 * pace, Event: Event{Info: ended, Kind: kind, Done: true}},
	}
}

// Dial publishes each step after its delay. It returns early with the
// context error when ctx is done.
func Dial(ctx context.Context, pub pubsub.Publisher[Event], steps []Step) error {
	for i, step := range steps {
		if step.After > 0 {
			timer := time.NewTimer(step.After)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		klog.V(2).Infof("call step %d: %+v", i, step.Event.Info)
		pub.Pub(step.Event)
	}
	return nil
}

// Apply shows an event on the composer with a single rebuild.
func Apply(c *compose.Composer, ev Event) {
	c.SetInfoKind(ev.Info, ev.Kind)
}
