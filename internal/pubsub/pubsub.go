package pubsub

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type EventHandler[T any] func(T)

// Dispatcher runs fn, usually by scheduling it on the UI thread.
type Dispatcher func(fn func())

// Sync runs handlers on the publishing goroutine.
func Sync(fn func()) { fn() }

type Publisher[T any] interface {
	Pub(value T)
}

type Topic[T any] interface {
	Publisher[T]
	Sub(ctx context.Context, fn EventHandler[T])
}

// NewTopic returns a topic delivering every value through dispatch.
// Handlers of one topic never run concurrently.
func NewTopic[T any](dispatch Dispatcher) Topic[T] {
	if dispatch == nil {
		dispatch = Sync
	}
	return &topic[T]{dispatch: dispatch}
}

type topic[T any] struct {
	dispatch Dispatcher
	mutex    sync.RWMutex
	handling sync.Mutex
	subs     map[string]EventHandler[T]
}

// Sub registers fn until ctx is done.
func (t *topic[T]) Sub(ctx context.Context, fn EventHandler[T]) {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	uid := uuid.NewString()
	if t.subs == nil {
		t.subs = map[string]EventHandler[T]{}
	}
	t.subs[uid] = fn
	context.AfterFunc(ctx, func() {
		t.mutex.Lock()
		defer t.mutex.Unlock()
		delete(t.subs, uid)
	})
}

func (t *topic[T]) Pub(value T) {
	t.mutex.RLock()
	subs := make([]EventHandler[T], 0, len(t.subs))
	for _, fn := range t.subs {
		subs = append(subs, fn)
	}
	t.mutex.RUnlock()

	for _, fn := range subs {
		t.dispatch(func() {
			t.handling.Lock()
			defer t.handling.Unlock()
			fn(value)
		})
	}
}

// Len returns the number of subscribers.
func (t *topic[T]) Len() int {
	t.mutex.RLock()
	defer t.mutex.RUnlock()
	return len(t.subs)
}
