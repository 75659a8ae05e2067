package errors

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotConnected   = errors.New("not connected to the world simulator")
	ErrConnectionLost = errors.New("connection to the world simulator was lost")
	ErrShuttingDown   = errors.New("world simulator client is shutting down")
)

type Underflow struct {
	MessageName string
	MsgSize     int
	MinimumSize int
}

func (e *Underflow) Error() string {
	return fmt.Sprintf("Message parsing underflowed (type=%s), provided %d bytes, needed at least %d", e.MessageName, e.MsgSize, e.MinimumSize)
}

type InvalidEnumValue struct {
	EnumName string
	IntValue uint8
}

func (e *InvalidEnumValue) Error() string {
	return fmt.Sprintf("Invalid enum value=%d (enum: %s)", e.IntValue, e.EnumName)
}

type MissingFieldError struct {
	MessageName string
	FieldName   string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Missing field %s in message type %s", e.FieldName, e.MessageName)
}

// MalformedMessage is returned for a frame body that cannot be decoded into
// the expected record. The frame is dropped; the connection stays up.
type MalformedMessage struct {
	MessageName string
	Reason      string
	Cause       error
}

func (e *MalformedMessage) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Malformed %s message: %s: %v", e.MessageName, e.Reason, e.Cause)
	}
	return fmt.Sprintf("Malformed %s message: %s", e.MessageName, e.Reason)
}

func (e *MalformedMessage) Unwrap() error {
	return e.Cause
}

type FrameTooLarge struct {
	Size  uint64
	Limit int
}

func (e *FrameTooLarge) Error() string {
	return fmt.Sprintf("Frame length prefix %d exceeds limit of %d bytes", e.Size, e.Limit)
}

type ConnectionFailed struct {
	Address string
	Reason  string
	Cause   error
}

func (e *ConnectionFailed) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Failed to connect to world simulator at %s: %s: %v", e.Address, e.Reason, e.Cause)
	}
	return fmt.Sprintf("Failed to connect to world simulator at %s: %s", e.Address, e.Reason)
}

func (e *ConnectionFailed) Unwrap() error {
	return e.Cause
}

type RequestTimeout struct {
	SeqNum  uint64
	Timeout time.Duration
}

func (e *RequestTimeout) Error() string {
	return fmt.Sprintf("Request seqnum=%d timed out after %s", e.SeqNum, e.Timeout)
}

type UnexpectedResponseType struct {
	Expected string
	Actual   string
}

func (e *UnexpectedResponseType) Error() string {
	return fmt.Sprintf("Expected %s response, got %s", e.Expected, e.Actual)
}

// SimulatorError is the simulator's rejection of one of our commands.
type SimulatorError struct {
	Message      string
	OriginSeqNum int64
	SeqNum       int64
}

func (e *SimulatorError) Error() string {
	return fmt.Sprintf("World simulator rejected command seqnum=%d: %s", e.OriginSeqNum, e.Message)
}

type TooManyPending struct {
	Limit int
}

func (e *TooManyPending) Error() string {
	return fmt.Sprintf("Too many pending requests (limit %d) - cannot register new request", e.Limit)
}

type DuplicateSeqNum struct {
	SeqNum uint64
}

func (e *DuplicateSeqNum) Error() string {
	return fmt.Sprintf("Attempted to register duplicate seqnum %d", e.SeqNum)
}

type InvalidStateTransition struct {
	From string
	To   string
}

func (e *InvalidStateTransition) Error() string {
	return fmt.Sprintf("Invalid connection state transition %s -> %s", e.From, e.To)
}
