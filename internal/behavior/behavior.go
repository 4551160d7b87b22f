package behavior

import (
	"context"

	"github.com/getseabird/callerinfo/internal/compose"
	"github.com/getseabird/callerinfo/internal/prefs"
	"github.com/imkira/go-observer/v2"
	"k8s.io/klog/v2"
)

type Behavior struct {
	Preferences observer.Property[prefs.Preferences]
	// Save persists preferences after an update; nil skips persisting.
	Save func(prefs.Preferences) error
}

func NewBehavior() (*Behavior, error) {
	p, err := prefs.Load()
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		klog.Warningf("invalid preferences: %v", err)
	}

	return &Behavior{
		Preferences: observer.NewProperty(*p),
		Save: func(p prefs.Preferences) error {
			return p.Save()
		},
	}, nil
}

// UpdatePreferences applies f to a copy of the current preferences and
// publishes the validated result. Invalid values are reset and reported,
// but the rest of the update still goes through.
func (b *Behavior) UpdatePreferences(f func(*prefs.Preferences)) error {
	p := b.Preferences.Value()
	p.Dimensions = clone(p.Dimensions)
	f(&p)
	verr := p.Validate()
	b.Preferences.Update(p)
	if b.Save != nil {
		if err := b.Save(p); err != nil {
			klog.Errorf("failed to save preferences: %v", err)
			return err
		}
	}
	return verr
}

// StartPadder draws the start padding a composer subtracts from its
// content width.
type StartPadder interface {
	SetStartPadding(padding int)
}

// Bind applies the preferences to c and views now and again on every
// change. Changes arrive on another goroutine, so dispatch must run fn on
// the thread that owns c.
func (b *Behavior) Bind(ctx context.Context, c *compose.Composer, dispatch func(fn func()), views ...StartPadder) {
	apply := func(p prefs.Preferences) {
		c.SetStyle(p.Style())
		c.SetStartPadding(p.StartPadding)
		for _, v := range views {
			v.SetStartPadding(p.StartPadding)
		}
	}
	apply(b.Preferences.Value())
	b.OnChange(ctx, dispatch, apply)
}

// OnChange calls f through dispatch with every new preferences value until
// ctx is done.
func (b *Behavior) OnChange(ctx context.Context, dispatch func(fn func()), f func(prefs.Preferences)) {
	onChange(ctx, b.Preferences, func(p prefs.Preferences) {
		dispatch(func() { f(p) })
	})
}

func clone(m map[string]int) map[string]int {
	if m == nil {
		return nil
	}
	c := make(map[string]int, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
