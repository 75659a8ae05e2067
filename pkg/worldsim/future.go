package worldsim

import (
	"context"

	"github.com/Jaydccq/mini-ups-sub002/internal"
	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
)

var closedChan = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Future is the eventual outcome of one command sent to the simulator. On any
// failure Await yields the zero T (false for bool futures) and the error.
type Future[T any] struct {
	SeqNum uint64

	slot    *internal.Slot
	convert func(codec.InboundMessage) (T, error)
	err     error
}

func pendingFuture[T any](slot *internal.Slot, convert func(codec.InboundMessage) (T, error)) *Future[T] {
	return &Future[T]{SeqNum: slot.SeqNum, slot: slot, convert: convert}
}

func failedFuture[T any](err error) *Future[T] {
	return &Future[T]{err: err}
}

// Done is closed once Await would return without blocking.
func (f *Future[T]) Done() <-chan struct{} {
	if f.slot == nil {
		return closedChan
	}
	return f.slot.Done()
}

// Await blocks until the request completes or ctx is done. Giving up on ctx
// does not cancel the request; it still resolves or times out on its own.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	var zero T
	if f.slot == nil {
		return zero, f.err
	}

	msg, err := f.slot.Wait(ctx)
	if err != nil {
		return zero, err
	}
	return f.convert(msg)
}
