// Package store holds the client-side state machines. Every store
// follows the same contract: an operation flips Loading on and clears
// the previous outcome, and its completion writes back either an Error
// or a Success message, never both. Completions are tagged with a
// generation token taken when the operation started, so a response that
// arrives after a newer operation began cannot overwrite newer state.
package store

import (
	"slices"
	"sync"

	"storefront/internal/domain/apierror"
)

// Store names carried on dispatched events.
const (
	StoreProduct      = "product"
	StoreCategory     = "category"
	StoreCart         = "cart"
	StoreOrder        = "order"
	StorePayment      = "payment"
	StoreReview       = "review"
	StoreAddress      = "address"
	StoreUser         = "user"
	StoreSubscription = "subscription"
)

// Status is the uniform request flag block every store carries.
type Status struct {
	Loading bool
	Error   string
	Success string
}

// Event announces a completed store operation. It is published for
// every completion, including stale ones, so cross-cutting listeners
// such as the auth interceptor still see failures whose state updates
// were discarded.
type Event struct {
	Store     string
	Operation string
	Err       error
}

// Dispatcher fans store events out to subscribers synchronously, in
// subscription order.
type Dispatcher struct {
	mu   sync.RWMutex
	subs []func(Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers a listener for every subsequent event.
func (d *Dispatcher) Subscribe(fn func(Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.subs = append(d.subs, fn)
}

func (d *Dispatcher) publish(event Event) {
	d.mu.RLock()
	subs := slices.Clone(d.subs)
	d.mu.RUnlock()

	for _, fn := range subs {
		fn(event)
	}
}

// lifecycle implements the shared operation contract. Stores embed it
// and route every remote call through begin and finish.
type lifecycle struct {
	mu     sync.Mutex
	gen    uint64
	status Status
	name   string
	events *Dispatcher
}

// begin starts an operation: it invalidates older in-flight operations
// by advancing the generation, flips Loading on and clears the previous
// outcome. The returned token must be handed back to finish.
func (l *lifecycle) begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.gen++
	l.status = Status{Loading: true}

	return l.gen
}

// finish completes the operation started with gen. State is only
// touched when gen is still current; the event publishes either way.
func (l *lifecycle) finish(operation string, gen uint64, err error, success string, apply func()) {
	l.mu.Lock()
	if gen == l.gen {
		l.status.Loading = false
		if err != nil {
			l.status.Error = apierror.MessageOf(err)
		} else {
			if apply != nil {
				apply()
			}
			l.status.Success = success
		}
	}
	l.mu.Unlock()

	l.events.publish(Event{Store: l.name, Operation: operation, Err: err})
}

// Status returns the current request flags.
func (l *lifecycle) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.status
}

// ClearStatus drops any lingering error or success message without
// touching entity state, the equivalent of dismissing a banner.
func (l *lifecycle) ClearStatus() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.status.Error = ""
	l.status.Success = ""
}

// orDefault prefers the server's message and falls back to a
// client-side one so Success is never empty after a completed
// operation.
func orDefault(message, fallback string) string {
	if message != "" {
		return message
	}

	return fallback
}
