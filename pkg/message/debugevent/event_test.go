package debugevent

import (
	"testing"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeParse(t *testing.T) {
	in := Event{
		Direction:   DirectionOutbound,
		MessageType: "UCommands",
		SizeBytes:   42,
		SeqNum:      7,
		Summary:     "UCommands(pickups=1 deliveries=0 queries=0 acks=0)",
		Timestamp:   time.UnixMicro(1_700_000_000_123_456),
	}

	out, err := Parse(Serialize(in))
	require.NoError(t, err)
	assert.Equal(t, in.Direction, out.Direction)
	assert.Equal(t, in.MessageType, out.MessageType)
	assert.Equal(t, in.SizeBytes, out.SizeBytes)
	assert.Equal(t, in.SeqNum, out.SeqNum)
	assert.Equal(t, in.Summary, out.Summary)
	assert.True(t, in.Timestamp.Equal(out.Timestamp))
}

func TestParseShortBuffer(t *testing.T) {
	_, err := Parse([]byte{1, 2})
	var underflow *errors.Underflow
	assert.ErrorAs(t, err, &underflow)
}

func TestParseGarbageDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_, _ = Parse([]byte{0xff, 0xff, 0xff, 0x7f, 0, 0})
	})
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "Inbound", DirectionInbound.String())
	assert.Equal(t, "Direction(9)", Direction(9).String())
}
