// Package simtest runs an in-process stand-in for the world simulator so
// connection and client tests can exercise real TCP framing.
package simtest

import (
	"errors"
	"net"
	"strconv"
	"sync"
	"testing"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"google.golang.org/protobuf/proto"
)

// Responder builds the simulator's reply to one UCommands. Returning nil
// sends nothing.
type Responder func(cmd *worldups.UCommands) *worldups.UResponses

type FakeWorld struct {
	listener net.Listener

	mut             sync.Mutex
	worldID         int64
	handshakeResult string
	responder       Responder
	connects        []*worldups.UConnect
	current         net.Conn
	conns           []net.Conn
	closed          bool

	commands chan *worldups.UCommands
	wg       sync.WaitGroup
}

// Start listens on a loopback port and stops when the test ends.
func Start(t testing.TB) *FakeWorld {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("simtest: listen: %v", err)
	}

	w := &FakeWorld{
		listener:        listener,
		worldID:         1,
		handshakeResult: worldups.ConnectedResult,
		commands:        make(chan *worldups.UCommands, 128),
	}

	w.wg.Add(1)
	go w.acceptLoop()

	t.Cleanup(w.Close)
	return w
}

func (w *FakeWorld) Host() string {
	return w.listener.Addr().(*net.TCPAddr).IP.String()
}

func (w *FakeWorld) Port() int {
	return w.listener.Addr().(*net.TCPAddr).Port
}

func (w *FakeWorld) Address() string {
	return net.JoinHostPort(w.Host(), strconv.Itoa(w.Port()))
}

func (w *FakeWorld) SetWorldID(id int64) {
	w.mut.Lock()
	defer w.mut.Unlock()
	w.worldID = id
}

func (w *FakeWorld) SetHandshakeResult(result string) {
	w.mut.Lock()
	defer w.mut.Unlock()
	w.handshakeResult = result
}

func (w *FakeWorld) SetResponder(r Responder) {
	w.mut.Lock()
	defer w.mut.Unlock()
	w.responder = r
}

// Commands yields every UCommands received, across connections.
func (w *FakeWorld) Commands() <-chan *worldups.UCommands {
	return w.commands
}

func (w *FakeWorld) Connects() []*worldups.UConnect {
	w.mut.Lock()
	defer w.mut.Unlock()
	return append([]*worldups.UConnect(nil), w.connects...)
}

// Send pushes an unsolicited UResponses to the most recent connection.
func (w *FakeWorld) Send(resp *worldups.UResponses) error {
	w.mut.Lock()
	conn := w.current
	w.mut.Unlock()

	if conn == nil {
		return errors.New("simtest: no client connected")
	}
	frame, err := codec.EncodeResponses(resp)
	if err != nil {
		return err
	}
	_, err = conn.Write(frame)
	return err
}

// SendRaw writes bytes as-is to the most recent connection.
func (w *FakeWorld) SendRaw(b []byte) error {
	w.mut.Lock()
	conn := w.current
	w.mut.Unlock()

	if conn == nil {
		return errors.New("simtest: no client connected")
	}
	_, err := conn.Write(b)
	return err
}

// DropConnection closes the most recent connection from the simulator side.
func (w *FakeWorld) DropConnection() {
	w.mut.Lock()
	conn := w.current
	w.current = nil
	w.mut.Unlock()

	if conn != nil {
		conn.Close()
	}
}

func (w *FakeWorld) Close() {
	w.mut.Lock()
	if w.closed {
		w.mut.Unlock()
		return
	}
	w.closed = true
	conns := w.conns
	w.mut.Unlock()

	w.listener.Close()
	for _, c := range conns {
		c.Close()
	}
	w.wg.Wait()
}

func (w *FakeWorld) acceptLoop() {
	defer w.wg.Done()
	for {
		conn, err := w.listener.Accept()
		if err != nil {
			return
		}

		w.mut.Lock()
		if w.closed {
			w.mut.Unlock()
			conn.Close()
			return
		}
		w.conns = append(w.conns, conn)
		w.mut.Unlock()

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			w.serve(conn)
		}()
	}
}

func (w *FakeWorld) serve(conn net.Conn) {
	defer conn.Close()

	var splitter codec.FrameSplitter
	buf := make([]byte, 4096)
	handshaken := false

	for {
		n, err := conn.Read(buf)
		if n > 0 {
			splitter.Feed(buf[:n])
			for {
				body, nextErr := splitter.Next()
				if nextErr != nil {
					break
				}
				if !handshaken {
					if !w.handleConnect(conn, body) {
						return
					}
					handshaken = true
					continue
				}
				w.handleCommands(conn, body)
			}
		}
		if err != nil {
			return
		}
	}
}

func (w *FakeWorld) handleConnect(conn net.Conn, body []byte) bool {
	hello := &worldups.UConnect{}
	if err := codec.Unmarshal(body, hello); err != nil {
		return false
	}

	w.mut.Lock()
	w.connects = append(w.connects, hello)
	worldID := w.worldID
	if hello.Worldid != nil {
		worldID = hello.GetWorldid()
	}
	result := w.handshakeResult
	w.current = conn
	w.mut.Unlock()

	frame, err := codec.EncodeConnected(&worldups.UConnected{Worldid: proto.Int64(worldID), Result: proto.String(result)})
	if err != nil {
		return false
	}
	_, err = conn.Write(frame)
	return err == nil && result == worldups.ConnectedResult
}

func (w *FakeWorld) handleCommands(conn net.Conn, body []byte) {
	cmd := &worldups.UCommands{}
	if err := codec.Unmarshal(body, cmd); err != nil {
		return
	}

	select {
	case w.commands <- cmd:
	default:
	}

	w.mut.Lock()
	responder := w.responder
	w.mut.Unlock()

	if responder == nil {
		return
	}
	if resp := responder(cmd); resp != nil {
		if frame, err := codec.EncodeResponses(resp); err == nil {
			conn.Write(frame)
		}
	}
}

// AckAll is a Responder that acknowledges every command sequence number.
func AckAll(cmd *worldups.UCommands) *worldups.UResponses {
	seqNums := codec.CommandSeqNums(cmd)
	if len(seqNums) == 0 {
		return nil
	}
	return &worldups.UResponses{Acks: seqNums}
}
