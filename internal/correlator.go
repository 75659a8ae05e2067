package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/errors"
)

// Slot is the single-assignment result of one pending request.
type Slot struct {
	SeqNum uint64

	done  chan struct{}
	once  sync.Once
	value codec.InboundMessage
	err   error
}

func newSlot(seqNum uint64) *Slot {
	return &Slot{
		SeqNum: seqNum,
		done:   make(chan struct{}),
	}
}

func (s *Slot) complete(value codec.InboundMessage, err error) bool {
	completed := false
	s.once.Do(func() {
		s.value = value
		s.err = err
		completed = true
		close(s.done)
	})
	return completed
}

// Done is closed once the slot holds a response or a failure.
func (s *Slot) Done() <-chan struct{} {
	return s.done
}

// Result must only be read after Done is closed.
func (s *Slot) Result() (codec.InboundMessage, error) {
	return s.value, s.err
}

func (s *Slot) Wait(ctx context.Context) (codec.InboundMessage, error) {
	select {
	case <-s.done:
		return s.value, s.err
	case <-ctx.Done():
		return codec.InboundMessage{}, ctx.Err()
	}
}

type PendingRequest struct {
	SeqNum    uint64
	CreatedAt time.Time
	Deadline  time.Time

	accepts []codec.Kind
	slot    *Slot
	timer   *time.Timer
}

func (p *PendingRequest) acceptsKind(kind codec.Kind) bool {
	if len(p.accepts) == 0 {
		return true
	}
	for _, k := range p.accepts {
		if k == kind {
			return true
		}
	}
	return false
}

// Correlator pairs outbound sequence numbers with their eventual responses.
// Whoever removes an entry from the pending map owns its completion, so every
// request completes exactly once no matter how responses, timers, connection
// loss and shutdown race.
type Correlator struct {
	MaxPending int

	nextSeqNum atomic.Uint64
	now        func() time.Time

	mut_pending sync.Mutex
	pending     map[uint64]*PendingRequest
}

func CreateCorrelator(maxPending int) *Correlator {
	return &Correlator{
		MaxPending:  maxPending,
		nextSeqNum:  atomic.Uint64{},
		now:         time.Now,
		mut_pending: sync.Mutex{},
		pending:     make(map[uint64]*PendingRequest),
	}
}

// NextSeqNum returns 1, 2, 3, ... for the life of the process.
func (c *Correlator) NextSeqNum() uint64 {
	return c.nextSeqNum.Add(1)
}

// Register arms a pending slot for seqNum that fails with RequestTimeout
// after timeout. If accepts is non-empty only those message kinds resolve it.
func (c *Correlator) Register(seqNum uint64, timeout time.Duration, accepts ...codec.Kind) (*Slot, error) {
	c.mut_pending.Lock()
	defer c.mut_pending.Unlock()

	if _, has := c.pending[seqNum]; has {
		return nil, &errors.DuplicateSeqNum{SeqNum: seqNum}
	}
	if c.MaxPending > 0 && len(c.pending) >= c.MaxPending {
		return nil, &errors.TooManyPending{Limit: c.MaxPending}
	}

	now := c.now()
	req := &PendingRequest{
		SeqNum:    seqNum,
		CreatedAt: now,
		Deadline:  now.Add(timeout),
		accepts:   accepts,
		slot:      newSlot(seqNum),
	}
	req.timer = time.AfterFunc(timeout, func() {
		c.Expire(seqNum)
	})
	c.pending[seqNum] = req

	return req.slot, nil
}

func (c *Correlator) take(seqNum uint64, kind codec.Kind) *PendingRequest {
	c.mut_pending.Lock()
	defer c.mut_pending.Unlock()

	req, has := c.pending[seqNum]
	if !has {
		return nil
	}
	if kind != codec.KindNone && !req.acceptsKind(kind) {
		return nil
	}
	delete(c.pending, seqNum)
	req.timer.Stop()
	return req
}

// Resolve completes seqNum with msg. It returns false if the request is no
// longer pending or does not accept msg's kind.
func (c *Correlator) Resolve(seqNum uint64, msg codec.InboundMessage) bool {
	req := c.take(seqNum, msg.Kind)
	if req == nil {
		return false
	}
	return req.slot.complete(msg, nil)
}

// Reject fails seqNum with err.
func (c *Correlator) Reject(seqNum uint64, err error) bool {
	req := c.take(seqNum, codec.KindNone)
	if req == nil {
		return false
	}
	return req.slot.complete(codec.InboundMessage{}, err)
}

// Expire fails seqNum with RequestTimeout.
func (c *Correlator) Expire(seqNum uint64) bool {
	req := c.take(seqNum, codec.KindNone)
	if req == nil {
		return false
	}
	return req.slot.complete(codec.InboundMessage{}, &errors.RequestTimeout{
		SeqNum:  seqNum,
		Timeout: req.Deadline.Sub(req.CreatedAt),
	})
}

// FailAll fails every pending request with reason and returns how many were
// failed.
func (c *Correlator) FailAll(reason error) int {
	c.mut_pending.Lock()
	reqs := make([]*PendingRequest, 0, len(c.pending))
	for seqNum, req := range c.pending {
		delete(c.pending, seqNum)
		req.timer.Stop()
		reqs = append(reqs, req)
	}
	c.mut_pending.Unlock()

	failed := 0
	for _, req := range reqs {
		if req.slot.complete(codec.InboundMessage{}, reason) {
			failed++
		}
	}
	return failed
}

func (c *Correlator) Has(seqNum uint64) bool {
	c.mut_pending.Lock()
	defer c.mut_pending.Unlock()

	_, has := c.pending[seqNum]
	return has
}

func (c *Correlator) Len() int {
	c.mut_pending.Lock()
	defer c.mut_pending.Unlock()

	return len(c.pending)
}
