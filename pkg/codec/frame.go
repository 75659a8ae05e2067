// Package codec frames world_ups records on the TCP stream: every record is
// preceded by its byte length as a base-128 varint.
package codec

import (
	stderrors "errors"
	"io"

	"github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// MaxFrameSize bounds a single frame body. A larger length prefix means the
// stream is corrupt or not a world simulator.
const MaxFrameSize = 16 << 20

// maxVarint32Len is the longest encoding of a 32-bit length prefix.
const maxVarint32Len = 5

// ErrNeedMoreBytes is returned while the buffered bytes do not yet hold a
// complete frame. It is never a failure.
var ErrNeedMoreBytes = stderrors.New("need more bytes to complete frame")

// AppendFrame appends varint(len(body)) || body for the record to dst. A
// record with an unset required field is not encoded.
func AppendFrame(dst []byte, m proto.Message) ([]byte, error) {
	body, err := proto.Marshal(m)
	if err != nil {
		return dst, &errors.MalformedMessage{MessageName: messageName(m), Reason: "encode", Cause: err}
	}
	dst = protowire.AppendVarint(dst, uint64(len(body)))
	return append(dst, body...), nil
}

func EncodeConnect(m *worldups.UConnect) ([]byte, error) {
	return AppendFrame(nil, m)
}

func EncodeCommands(m *worldups.UCommands) ([]byte, error) {
	return AppendFrame(nil, m)
}

func EncodeConnected(m *worldups.UConnected) ([]byte, error) {
	return AppendFrame(nil, m)
}

func EncodeResponses(m *worldups.UResponses) ([]byte, error) {
	return AppendFrame(nil, m)
}

// Unmarshal decodes one frame body into m. Missing required fields and
// truncated bodies are reported as MalformedMessage.
func Unmarshal(body []byte, m proto.Message) error {
	if err := proto.Unmarshal(body, m); err != nil {
		return &errors.MalformedMessage{MessageName: messageName(m), Reason: "decode", Cause: err}
	}
	return nil
}

func messageName(m proto.Message) string {
	return string(m.ProtoReflect().Descriptor().Name())
}

// SplitFrame returns the first frame body in b and the number of bytes it
// occupies including its prefix. The returned body aliases b.
func SplitFrame(b []byte, maxFrameSize int) (body []byte, consumed int, err error) {
	if len(b) == 0 {
		return nil, 0, ErrNeedMoreBytes
	}

	size, n := protowire.ConsumeVarint(b)
	if n < 0 {
		perr := protowire.ParseError(n)
		if stderrors.Is(perr, io.ErrUnexpectedEOF) && len(b) < maxVarint32Len {
			return nil, 0, ErrNeedMoreBytes
		}
		return nil, 0, &errors.MalformedMessage{MessageName: "frame", Reason: "bad length prefix", Cause: perr}
	}
	if n > maxVarint32Len {
		return nil, 0, &errors.MalformedMessage{MessageName: "frame", Reason: "length prefix longer than varint32"}
	}
	if size > uint64(maxFrameSize) {
		return nil, 0, &errors.FrameTooLarge{Size: size, Limit: maxFrameSize}
	}

	end := n + int(size)
	if len(b) < end {
		return nil, 0, ErrNeedMoreBytes
	}
	return b[n:end], end, nil
}

// FrameSplitter reassembles frames from arbitrarily chunked stream reads.
// It is owned by a single reader goroutine.
type FrameSplitter struct {
	MaxFrameSize int

	buf []byte
}

func (s *FrameSplitter) Feed(b []byte) {
	s.buf = append(s.buf, b...)
}

// Next pops the next complete frame body. It returns ErrNeedMoreBytes when
// the buffer holds only a partial frame (or nothing).
func (s *FrameSplitter) Next() ([]byte, error) {
	limit := s.MaxFrameSize
	if limit <= 0 {
		limit = MaxFrameSize
	}

	body, consumed, err := SplitFrame(s.buf, limit)
	if err != nil {
		return nil, err
	}

	s.buf = s.buf[consumed:]
	if len(s.buf) == 0 {
		// Drop the backing array so later Feeds never write over returned bodies.
		s.buf = nil
	}
	return body, nil
}

func (s *FrameSplitter) Buffered() int {
	return len(s.buf)
}
