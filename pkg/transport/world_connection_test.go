package transport

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/internal/simtest"
	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	simerr "github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/protobuf/proto"
)

type connectionRecorder struct {
	mut      sync.Mutex
	messages []codec.InboundMessage
	frames   []debugevent.Event
	lost     chan error
}

func (p *connectionRecorder) received() []codec.InboundMessage {
	p.mut.Lock()
	defer p.mut.Unlock()
	return append([]codec.InboundMessage(nil), p.messages...)
}

func newTestConnection(t *testing.T, modify func(*WorldConnectionParams)) (*WorldConnection, *connectionRecorder) {
	t.Helper()

	rec := &connectionRecorder{lost: make(chan error, 8)}
	params := WorldConnectionParams{
		ConnectTimeout:   time.Second,
		HandshakeTimeout: time.Second,
		WriteTimeout:     time.Second,
		KeepAlive:        true,
		NoDelay:          true,
		InitialTrucks: func(context.Context) ([]*worldups.UInitTruck, error) {
			return []*worldups.UInitTruck{
				{Id: proto.Int32(1), X: proto.Int32(0), Y: proto.Int32(0)},
				{Id: proto.Int32(2), X: proto.Int32(5), Y: proto.Int32(5)},
			}, nil
		},
		OnMessages: func(ctx context.Context, msgs []codec.InboundMessage) {
			rec.mut.Lock()
			defer rec.mut.Unlock()
			rec.messages = append(rec.messages, msgs...)
		},
		OnConnectionLost: func(err error) {
			rec.lost <- err
		},
		OnFrame: func(ev debugevent.Event) {
			rec.mut.Lock()
			defer rec.mut.Unlock()
			rec.frames = append(rec.frames, ev)
		},
		Logger: zaptest.NewLogger(t),
	}
	if modify != nil {
		modify(&params)
	}

	conn, err := CreateWorldConnection(params)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Shutdown() })
	return conn, rec
}

func nextCommand(t *testing.T, world *simtest.FakeWorld) *worldups.UCommands {
	t.Helper()
	select {
	case cmd := <-world.Commands():
		return cmd
	case <-time.After(2 * time.Second):
		t.Fatal("fake world received no command")
	}
	return nil
}

func TestBackoffDelays(t *testing.T) {
	b := Backoff{InitialDelay: 100 * time.Millisecond, MaxDelay: 300 * time.Millisecond, Multiplier: 2.0, MaxAttempts: 3}

	assert.Equal(t, 100*time.Millisecond, b.Delay(1))
	assert.Equal(t, 200*time.Millisecond, b.Delay(2))
	assert.Equal(t, 300*time.Millisecond, b.Delay(3))
	assert.Equal(t, 300*time.Millisecond, b.Delay(10))

	assert.True(t, b.Allows(3))
	assert.False(t, b.Allows(4))
	assert.True(t, Backoff{MaxAttempts: -1}.Allows(1_000_000))
}

func TestConnectHandshake(t *testing.T) {
	world := simtest.Start(t)
	world.SetWorldID(77)
	conn, rec := newTestConnection(t, nil)

	worldID, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(77), worldID)
	assert.Equal(t, StateConnected, conn.State())

	id, ok := conn.WorldID()
	assert.True(t, ok)
	assert.Equal(t, int64(77), id)

	connects := world.Connects()
	require.Len(t, connects, 1)
	assert.Nil(t, connects[0].Worldid)
	require.NotNil(t, connects[0].IsAmazon)
	assert.False(t, connects[0].GetIsAmazon())
	assert.Len(t, connects[0].GetTrucks(), 2)

	rec.mut.Lock()
	defer rec.mut.Unlock()
	require.Len(t, rec.frames, 2)
	assert.Equal(t, "UConnect", rec.frames[0].MessageType)
	assert.Equal(t, debugevent.DirectionInbound, rec.frames[1].Direction)
}

func TestConnectToExistingWorld(t *testing.T) {
	world := simtest.Start(t)
	conn, _ := newTestConnection(t, nil)

	requested := int64(12)
	worldID, err := conn.Connect(context.Background(), world.Host(), world.Port(), &requested)
	require.NoError(t, err)
	assert.Equal(t, int64(12), worldID)
	require.NotNil(t, world.Connects()[0].Worldid)
}

func TestConnectCanceledAfterReplyFailsHandshake(t *testing.T) {
	world := simtest.Start(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Cancel in the window between reading UConnected and clearing the
	// handshake deadline.
	conn, _ := newTestConnection(t, func(p *WorldConnectionParams) {
		p.OnFrame = func(ev debugevent.Event) {
			if ev.Direction == debugevent.DirectionInbound && ev.MessageType == "UConnected" {
				cancel()
			}
		}
	})

	_, err := conn.Connect(ctx, world.Host(), world.Port(), nil)
	var failed *simerr.ConnectionFailed
	require.ErrorAs(t, err, &failed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateDisconnected, conn.State())
}

func TestHandshakeDeadlineIsClearedAfterConnect(t *testing.T) {
	world := simtest.Start(t)
	conn, rec := newTestConnection(t, func(p *WorldConnectionParams) {
		p.HandshakeTimeout = 50 * time.Millisecond
	})

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, world.Send(&worldups.UResponses{Acks: []int64{4}}))

	require.Eventually(t, func() bool { return len(rec.received()) == 1 }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, codec.InboundMessage{Kind: codec.KindAck, SeqNum: 4}, rec.received()[0])
	assert.Equal(t, StateConnected, conn.State())
}

func TestConnectRefusedByWorld(t *testing.T) {
	world := simtest.Start(t)
	world.SetHandshakeResult("error: world does not exist")
	conn, _ := newTestConnection(t, nil)

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	var failed *simerr.ConnectionFailed
	require.ErrorAs(t, err, &failed)
	assert.Contains(t, err.Error(), "world does not exist")
	assert.Equal(t, StateDisconnected, conn.State())
}

func TestConnectDialFailure(t *testing.T) {
	conn, _ := newTestConnection(t, func(p *WorldConnectionParams) {
		p.Dial = func(ctx context.Context, network, address string) (net.Conn, error) {
			return nil, errors.New("connection refused")
		}
	})

	_, err := conn.Connect(context.Background(), "127.0.0.1", 1, nil)
	var failed *simerr.ConnectionFailed
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, "127.0.0.1:1", failed.Address)
	assert.Equal(t, StateDisconnected, conn.State())
}

func TestConnectTwiceIsRejected(t *testing.T) {
	world := simtest.Start(t)
	conn, _ := newTestConnection(t, nil)

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	_, err = conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	var invalid *simerr.InvalidStateTransition
	assert.ErrorAs(t, err, &invalid)
}

func TestSendRequiresConnection(t *testing.T) {
	conn, _ := newTestConnection(t, nil)

	err := conn.Send(&worldups.UCommands{Acks: []int64{1}})
	assert.ErrorIs(t, err, simerr.ErrNotConnected)

	require.NoError(t, conn.Shutdown())
	err = conn.Send(&worldups.UCommands{Acks: []int64{1}})
	assert.ErrorIs(t, err, simerr.ErrShuttingDown)

	_, err = conn.Connect(context.Background(), "127.0.0.1", 1, nil)
	assert.ErrorIs(t, err, simerr.ErrShuttingDown)
}

func TestSendPreservesOrder(t *testing.T) {
	world := simtest.Start(t)
	conn, _ := newTestConnection(t, nil)
	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, conn.Send(&worldups.UCommands{
			Queries: []*worldups.UQuery{{Truckid: proto.Int32(1), Seqnum: proto.Int64(i)}},
		}))
	}

	for i := int64(1); i <= 5; i++ {
		cmd := nextCommand(t, world)
		require.Len(t, cmd.GetQueries(), 1)
		assert.Equal(t, i, cmd.GetQueries()[0].GetSeqnum())
	}
}

func TestInboundFramesReachCallbackAndMalformedFramesAreDropped(t *testing.T) {
	world := simtest.Start(t)
	conn, rec := newTestConnection(t, nil)
	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	// A frame whose body is not a valid UResponses.
	require.NoError(t, world.SendRaw([]byte{0x03, 0x0a, 0x10, 0x01}))
	require.NoError(t, world.Send(&worldups.UResponses{
		Completions: []*worldups.UFinished{{
			Truckid: proto.Int32(1), X: proto.Int32(2), Y: proto.Int32(3), Status: proto.String("idle"), Seqnum: proto.Int64(50),
		}},
	}))

	require.Eventually(t, func() bool { return len(rec.received()) == 1 }, 2*time.Second, 5*time.Millisecond)
	msg := rec.received()[0]
	assert.Equal(t, codec.KindTruckFinished, msg.Kind)
	assert.Equal(t, int64(50), msg.SeqNum)
	assert.Equal(t, StateConnected, conn.State())
}

func TestDroppedConnectionReconnectsWithBackoff(t *testing.T) {
	world := simtest.Start(t)
	world.SetWorldID(9)

	var dials atomic.Int32
	var mut sync.Mutex
	var delays []time.Duration

	conn, rec := newTestConnection(t, func(p *WorldConnectionParams) {
		p.ReconnectEnabled = true
		p.Reconnect = Backoff{
			InitialDelay: 100 * time.Millisecond,
			MaxDelay:     30 * time.Second,
			Multiplier:   2.0,
			MaxAttempts:  10,
		}
		p.Dial = func(ctx context.Context, network, address string) (net.Conn, error) {
			n := dials.Add(1)
			if n >= 2 && n <= 4 {
				return nil, errors.New("connection refused")
			}
			var d net.Dialer
			return d.DialContext(ctx, network, address)
		}
		p.After = func(d time.Duration) <-chan time.Time {
			mut.Lock()
			delays = append(delays, d)
			mut.Unlock()
			ch := make(chan time.Time, 1)
			ch <- time.Now()
			return ch
		}
	})

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	world.DropConnection()

	select {
	case lostErr := <-rec.lost:
		assert.ErrorIs(t, lostErr, simerr.ErrConnectionLost)
	case <-time.After(2 * time.Second):
		t.Fatal("connection loss was not reported")
	}

	require.Eventually(t, func() bool { return conn.State() == StateConnected }, 2*time.Second, 5*time.Millisecond)

	mut.Lock()
	assert.Equal(t, []time.Duration{
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
		800 * time.Millisecond,
	}, delays)
	mut.Unlock()

	connects := world.Connects()
	require.Len(t, connects, 2)
	require.NotNil(t, connects[1].Worldid, "reconnect rejoins the assigned world")
	assert.Equal(t, int64(9), connects[1].GetWorldid())
}

func TestReconnectGivesUpAfterMaxAttempts(t *testing.T) {
	world := simtest.Start(t)

	var dials atomic.Int32
	conn, rec := newTestConnection(t, func(p *WorldConnectionParams) {
		p.ReconnectEnabled = true
		p.Reconnect = Backoff{InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, Multiplier: 2, MaxAttempts: 2}
		p.Dial = func(ctx context.Context, network, address string) (net.Conn, error) {
			if dials.Add(1) > 1 {
				return nil, errors.New("connection refused")
			}
			var d net.Dialer
			return d.DialContext(ctx, network, address)
		}
	})

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)
	world.DropConnection()
	<-rec.lost

	require.Eventually(t, func() bool { return conn.State() == StateDisconnected }, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int32(3), dials.Load())
}

func TestDisconnectSendsDisconnectAndDoesNotReconnect(t *testing.T) {
	world := simtest.Start(t)
	conn, rec := newTestConnection(t, func(p *WorldConnectionParams) {
		p.ReconnectEnabled = true
		p.Reconnect = Backoff{InitialDelay: time.Millisecond, Multiplier: 2, MaxAttempts: -1}
	})

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	require.NoError(t, conn.Disconnect())
	assert.Equal(t, StateDisconnected, conn.State())

	cmd := nextCommand(t, world)
	assert.True(t, cmd.GetDisconnect())

	select {
	case <-rec.lost:
		t.Fatal("explicit disconnect reported as connection loss")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Len(t, world.Connects(), 1)
	assert.NoError(t, conn.Disconnect())
}

func TestShutdownIsTerminal(t *testing.T) {
	world := simtest.Start(t)
	conn, _ := newTestConnection(t, nil)

	_, err := conn.Connect(context.Background(), world.Host(), world.Port(), nil)
	require.NoError(t, err)

	require.NoError(t, conn.Shutdown())
	assert.Equal(t, StateShutdown, conn.State())
	require.NoError(t, conn.Shutdown())
	assert.NoError(t, conn.Disconnect())
	assert.Equal(t, StateShutdown, conn.State())
}
