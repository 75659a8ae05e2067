package codec

import (
	"fmt"

	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
)

type Kind uint8

const (
	KindNone Kind = iota
	KindConnectedAck
	KindTruckFinished
	KindTruckStatus
	KindDeliveryMade
	KindError
	KindAck
	KindWorldFinished
)

func (k Kind) String() string {
	switch k {
	case KindConnectedAck:
		return "ConnectedAck"
	case KindTruckFinished:
		return "TruckFinished"
	case KindTruckStatus:
		return "TruckStatus"
	case KindDeliveryMade:
		return "DeliveryMade"
	case KindError:
		return "Error"
	case KindAck:
		return "Ack"
	case KindWorldFinished:
		return "WorldFinished"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// TruckReport is the truck position and raw status text carried by both
// UFinished and UTruck.
type TruckReport struct {
	TruckID int32
	X       int32
	Y       int32
	Status  string
}

type DeliveryReport struct {
	TruckID   int32
	PackageID int64
}

type ErrorReport struct {
	Message      string
	OriginSeqNum int64
}

type ConnectedReport struct {
	WorldID int64
	Result  string
}

// InboundMessage is one logical message received from the simulator. A single
// UResponses frame flattens into several of these. Exactly one payload pointer
// is set, chosen by Kind; Ack and WorldFinished carry none.
//
// SeqNum is the simulator's own sequence number for event kinds, and the
// acknowledged client sequence number for KindAck.
type InboundMessage struct {
	Kind   Kind
	SeqNum int64

	Connected *ConnectedReport
	Truck     *TruckReport
	Delivery  *DeliveryReport
	Error     *ErrorReport
}

func (m InboundMessage) String() string {
	switch m.Kind {
	case KindConnectedAck:
		return fmt.Sprintf("ConnectedAck(world=%d result=%q)", m.Connected.WorldID, m.Connected.Result)
	case KindTruckFinished, KindTruckStatus:
		return fmt.Sprintf("%s(truck=%d pos=%d,%d status=%q seq=%d)", m.Kind, m.Truck.TruckID, m.Truck.X, m.Truck.Y, m.Truck.Status, m.SeqNum)
	case KindDeliveryMade:
		return fmt.Sprintf("DeliveryMade(truck=%d package=%d seq=%d)", m.Delivery.TruckID, m.Delivery.PackageID, m.SeqNum)
	case KindError:
		return fmt.Sprintf("Error(origin=%d seq=%d err=%q)", m.Error.OriginSeqNum, m.SeqNum, m.Error.Message)
	case KindAck:
		return fmt.Sprintf("Ack(seq=%d)", m.SeqNum)
	}
	return m.Kind.String()
}

// FromResponses flattens a UResponses record. Events and errors come first
// and acks after them, so an error naming a sequence number that the same
// frame also acks rejects the command instead of completing it. The world
// finished marker is always last.
func FromResponses(r *worldups.UResponses) []InboundMessage {
	msgs := make([]InboundMessage, 0, len(r.GetCompletions())+len(r.GetDelivered())+len(r.GetAcks())+len(r.GetTruckstatus())+len(r.GetError())+1)

	for _, f := range r.GetCompletions() {
		msgs = append(msgs, InboundMessage{
			Kind:   KindTruckFinished,
			SeqNum: f.GetSeqnum(),
			Truck:  &TruckReport{TruckID: f.GetTruckid(), X: f.GetX(), Y: f.GetY(), Status: f.GetStatus()},
		})
	}
	for _, d := range r.GetDelivered() {
		msgs = append(msgs, InboundMessage{
			Kind:     KindDeliveryMade,
			SeqNum:   d.GetSeqnum(),
			Delivery: &DeliveryReport{TruckID: d.GetTruckid(), PackageID: d.GetPackageid()},
		})
	}
	for _, t := range r.GetTruckstatus() {
		msgs = append(msgs, InboundMessage{
			Kind:   KindTruckStatus,
			SeqNum: t.GetSeqnum(),
			Truck:  &TruckReport{TruckID: t.GetTruckid(), X: t.GetX(), Y: t.GetY(), Status: t.GetStatus()},
		})
	}
	for _, e := range r.GetError() {
		msgs = append(msgs, InboundMessage{
			Kind:   KindError,
			SeqNum: e.GetSeqnum(),
			Error:  &ErrorReport{Message: e.GetErr(), OriginSeqNum: e.GetOriginseqnum()},
		})
	}
	for _, ack := range r.GetAcks() {
		msgs = append(msgs, InboundMessage{Kind: KindAck, SeqNum: ack})
	}
	if r.GetFinished() {
		msgs = append(msgs, InboundMessage{Kind: KindWorldFinished})
	}

	return msgs
}

// DecodeResponses decodes one frame body received after the handshake.
func DecodeResponses(body []byte) ([]InboundMessage, error) {
	var r worldups.UResponses
	if err := Unmarshal(body, &r); err != nil {
		return nil, err
	}
	return FromResponses(&r), nil
}

// DecodeConnected decodes the handshake reply.
func DecodeConnected(body []byte) (InboundMessage, error) {
	var c worldups.UConnected
	if err := Unmarshal(body, &c); err != nil {
		return InboundMessage{}, err
	}
	return InboundMessage{
		Kind:      KindConnectedAck,
		Connected: &ConnectedReport{WorldID: c.GetWorldid(), Result: c.GetResult()},
	}, nil
}

// WorldSeqNums lists the simulator sequence numbers in msgs that the
// simulator expects us to acknowledge.
func WorldSeqNums(msgs []InboundMessage) []int64 {
	var seqs []int64
	for _, m := range msgs {
		switch m.Kind {
		case KindTruckFinished, KindTruckStatus, KindDeliveryMade, KindError:
			seqs = append(seqs, m.SeqNum)
		}
	}
	return seqs
}

// SummarizeCommands renders an outbound UCommands for logs and the debug feed.
func SummarizeCommands(c *worldups.UCommands) string {
	s := fmt.Sprintf("UCommands(pickups=%d deliveries=%d queries=%d acks=%d", len(c.GetPickups()), len(c.GetDeliveries()), len(c.GetQueries()), len(c.GetAcks()))
	if c.Simspeed != nil {
		s += fmt.Sprintf(" simspeed=%d", c.GetSimspeed())
	}
	if c.GetDisconnect() {
		s += " disconnect"
	}
	return s + ")"
}

// CommandSeqNums lists the client sequence numbers carried by c.
func CommandSeqNums(c *worldups.UCommands) []int64 {
	var seqs []int64
	for _, p := range c.GetPickups() {
		seqs = append(seqs, p.GetSeqnum())
	}
	for _, d := range c.GetDeliveries() {
		seqs = append(seqs, d.GetSeqnum())
	}
	for _, q := range c.GetQueries() {
		seqs = append(seqs, q.GetSeqnum())
	}
	return seqs
}
