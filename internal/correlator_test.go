package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ackFor(seq uint64) codec.InboundMessage {
	return codec.InboundMessage{Kind: codec.KindAck, SeqNum: int64(seq)}
}

func TestSeqNumsStartAtOneAndIncrease(t *testing.T) {
	c := CreateCorrelator(0)
	assert.Equal(t, uint64(1), c.NextSeqNum())
	assert.Equal(t, uint64(2), c.NextSeqNum())
	assert.Equal(t, uint64(3), c.NextSeqNum())
}

func TestResolveCompletesOnce(t *testing.T) {
	c := CreateCorrelator(0)
	seq := c.NextSeqNum()
	slot, err := c.Register(seq, time.Minute)
	require.NoError(t, err)

	assert.True(t, c.Resolve(seq, ackFor(seq)))
	assert.False(t, c.Resolve(seq, ackFor(seq)))
	assert.False(t, c.Expire(seq))
	assert.Equal(t, 0, c.FailAll(errors.ErrConnectionLost))

	msg, err := slot.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, codec.KindAck, msg.Kind)
	assert.Equal(t, 0, c.Len())
}

func TestTimeoutFailsWithinDeadline(t *testing.T) {
	c := CreateCorrelator(0)
	seq := c.NextSeqNum()
	slot, err := c.Register(seq, 50*time.Millisecond)
	require.NoError(t, err)

	select {
	case <-slot.Done():
	case <-time.After(200 * time.Millisecond):
		t.Fatal("request did not time out within 200ms")
	}

	_, err = slot.Result()
	var timeout *errors.RequestTimeout
	require.ErrorAs(t, err, &timeout)
	assert.Equal(t, seq, timeout.SeqNum)
	assert.Equal(t, 50*time.Millisecond, timeout.Timeout)

	assert.False(t, c.Resolve(seq, ackFor(seq)))
}

func TestRejectCarriesError(t *testing.T) {
	c := CreateCorrelator(0)
	slot, err := c.Register(7, time.Minute)
	require.NoError(t, err)

	simErr := &errors.SimulatorError{Message: "truck busy", OriginSeqNum: 7}
	assert.True(t, c.Reject(7, simErr))

	_, err = slot.Wait(context.Background())
	assert.ErrorIs(t, err, simErr)
}

func TestFailAllFailsEveryPendingRequest(t *testing.T) {
	c := CreateCorrelator(0)
	slots := []*Slot{}
	for i := 0; i < 5; i++ {
		slot, err := c.Register(c.NextSeqNum(), time.Minute)
		require.NoError(t, err)
		slots = append(slots, slot)
	}

	assert.Equal(t, 5, c.FailAll(errors.ErrShuttingDown))
	for _, slot := range slots {
		_, err := slot.Wait(context.Background())
		assert.ErrorIs(t, err, errors.ErrShuttingDown)
	}
	assert.Equal(t, 0, c.Len())
}

func TestRegisterRejectsDuplicatesAndOverflow(t *testing.T) {
	c := CreateCorrelator(2)
	_, err := c.Register(1, time.Minute)
	require.NoError(t, err)

	_, err = c.Register(1, time.Minute)
	var dup *errors.DuplicateSeqNum
	assert.ErrorAs(t, err, &dup)

	_, err = c.Register(2, time.Minute)
	require.NoError(t, err)

	_, err = c.Register(3, time.Minute)
	var tooMany *errors.TooManyPending
	assert.ErrorAs(t, err, &tooMany)

	c.FailAll(errors.ErrShuttingDown)
}

func TestAcceptedKindsRestrictResolution(t *testing.T) {
	c := CreateCorrelator(0)
	slot, err := c.Register(4, time.Minute, codec.KindTruckStatus)
	require.NoError(t, err)

	assert.False(t, c.Resolve(4, ackFor(4)))
	assert.True(t, c.Has(4))

	status := codec.InboundMessage{
		Kind:   codec.KindTruckStatus,
		SeqNum: 4,
		Truck:  &codec.TruckReport{TruckID: 1, Status: "idle"},
	}
	assert.True(t, c.Resolve(4, status))

	msg, err := slot.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, codec.KindTruckStatus, msg.Kind)
}

func TestRacingCompletionsResolveExactlyOnce(t *testing.T) {
	c := CreateCorrelator(0)

	for round := 0; round < 200; round++ {
		seq := c.NextSeqNum()
		slot, err := c.Register(seq, time.Millisecond)
		require.NoError(t, err)

		var wins atomic.Int32
		wg := sync.WaitGroup{}
		for i := 0; i < 4; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				var won bool
				switch i {
				case 0:
					won = c.Resolve(seq, ackFor(seq))
				case 1:
					won = c.Expire(seq)
				case 2:
					won = c.Reject(seq, errors.ErrConnectionLost)
				case 3:
					won = c.FailAll(errors.ErrShuttingDown) > 0
				}
				if won {
					wins.Add(1)
				}
			}(i)
		}
		wg.Wait()

		<-slot.Done()
		// The timer may have expired the request before any racer ran.
		assert.LessOrEqual(t, wins.Load(), int32(1))
		assert.False(t, c.Has(seq))
	}
}
