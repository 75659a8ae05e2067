package debugevent

import (
	"fmt"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Event is one protocol frame observed on the world simulator connection.
type Event struct {
	Direction   Direction
	MessageType string
	SizeBytes   int
	SeqNum      int64
	Summary     string
	Timestamp   time.Time
}

func Serialize(e Event) []byte {
	b := flatbuffers.NewBuilder(128)
	messageType := b.CreateString(e.MessageType)
	summary := b.CreateString(e.Summary)

	DebugEventStart(b)
	DebugEventAddDirection(b, e.Direction)
	DebugEventAddMessageType(b, messageType)
	DebugEventAddSizeBytes(b, uint32(e.SizeBytes))
	DebugEventAddSequenceNumber(b, e.SeqNum)
	DebugEventAddSummary(b, summary)
	DebugEventAddTimestampMicros(b, e.Timestamp.UnixMicro())
	msg := DebugEventEnd(b)
	b.Finish(msg)

	return b.FinishedBytes()
}

// Parse reads a serialized DebugEvent. Flatbuffer accessors panic on
// truncated input, so the panic is turned into an error here.
func Parse(buf []byte) (ev Event, err error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return Event{}, &errors.Underflow{
			MessageName: "DebugEvent",
			MsgSize:     len(buf),
			MinimumSize: flatbuffers.SizeUOffsetT,
		}
	}

	defer func() {
		if r := recover(); r != nil {
			ev = Event{}
			err = fmt.Errorf("deformed DebugEvent: %v", r)
		}
	}()

	root := GetRootAsDebugEvent(buf, 0)
	direction := root.Direction()
	if _, ok := EnumNamesDirection[direction]; !ok {
		return Event{}, &errors.InvalidEnumValue{EnumName: "Direction", IntValue: uint8(direction)}
	}

	return Event{
		Direction:   direction,
		MessageType: string(root.MessageType()),
		SizeBytes:   int(root.SizeBytes()),
		SeqNum:      root.SequenceNumber(),
		Summary:     string(root.Summary()),
		Timestamp:   time.UnixMicro(root.TimestampMicros()),
	}, nil
}
