package transport

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	simerr "github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
	StateReconnecting
	StateShutdown
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateReconnecting:
		return "RECONNECTING"
	case StateShutdown:
		return "SHUTDOWN"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

type WorldConnectionParams struct {
	ConnectTimeout   time.Duration
	HandshakeTimeout time.Duration
	WriteTimeout     time.Duration
	// ReadIdleTimeout only logs a warning when the simulator goes quiet.
	ReadIdleTimeout time.Duration
	KeepAlive       bool
	NoDelay         bool

	OutgoingQueueLength int
	MaxFrameSize        int

	ReconnectEnabled bool
	Reconnect        Backoff

	// InitialTrucks supplies the fleet announced in every handshake,
	// including the ones made by reconnects.
	InitialTrucks func(ctx context.Context) ([]*worldups.UInitTruck, error)
	// OnMessages receives the decoded messages of each inbound frame, in
	// order, on the connection's reader goroutine.
	OnMessages func(ctx context.Context, msgs []codec.InboundMessage)
	// OnConnectionLost runs once per established connection that drops
	// without being asked to. err wraps ErrConnectionLost.
	OnConnectionLost func(err error)
	// OnFrame observes every frame written or read.
	OnFrame func(ev debugevent.Event)

	Dial  func(ctx context.Context, network, address string) (net.Conn, error)
	After func(d time.Duration) <-chan time.Time

	Logger *zap.Logger
}

type outboundFrame struct {
	data       []byte
	seqNum     int64
	summary    string
	closeAfter bool
}

// connSession is one TCP socket and its reader and writer goroutines.
type connSession struct {
	id       string
	conn     net.Conn
	outgoing chan outboundFrame
	done     chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	log      *zap.Logger

	splitter codec.FrameSplitter

	closeOnce sync.Once
	closeErr  error
}

func (s *connSession) close() error {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.done)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *connSession) isClosed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// WorldConnection owns the single TCP connection to the world simulator and
// its DISCONNECTED -> CONNECTING -> CONNECTED -> RECONNECTING -> SHUTDOWN
// lifecycle.
type WorldConnection struct {
	params WorldConnectionParams
	log    *zap.Logger

	lifeCtx    context.Context
	lifeCancel context.CancelFunc
	wg         sync.WaitGroup

	mut_state       sync.RWMutex
	state           State
	host            string
	port            int
	worldID         int64
	hasWorldID      bool
	session         *connSession
	reconnectCancel context.CancelFunc

	shutdownOnce sync.Once
	shutdownErr  error
}

func CreateWorldConnection(params WorldConnectionParams) (*WorldConnection, error) {
	if params.OnMessages == nil {
		return nil, errors.New("world connection needs an OnMessages callback")
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	if params.ConnectTimeout <= 0 {
		params.ConnectTimeout = 10 * time.Second
	}
	if params.HandshakeTimeout <= 0 {
		params.HandshakeTimeout = 30 * time.Second
	}
	if params.WriteTimeout <= 0 {
		params.WriteTimeout = 5 * time.Second
	}
	if params.OutgoingQueueLength <= 0 {
		params.OutgoingQueueLength = 256
	}
	if params.MaxFrameSize <= 0 {
		params.MaxFrameSize = codec.MaxFrameSize
	}
	if params.InitialTrucks == nil {
		params.InitialTrucks = func(context.Context) ([]*worldups.UInitTruck, error) { return nil, nil }
	}
	if params.OnConnectionLost == nil {
		params.OnConnectionLost = func(error) {}
	}
	if params.Dial == nil {
		keepAlive := time.Duration(0)
		if !params.KeepAlive {
			keepAlive = -1
		}
		dialer := &net.Dialer{KeepAlive: keepAlive}
		params.Dial = dialer.DialContext
	}
	if params.After == nil {
		params.After = time.After
	}

	lifeCtx, lifeCancel := context.WithCancel(context.Background())

	return &WorldConnection{
		params:     params,
		log:        logger.With(zap.String("handler", "WorldConnection")),
		lifeCtx:    lifeCtx,
		lifeCancel: lifeCancel,
		state:      StateDisconnected,
	}, nil
}

func (c *WorldConnection) State() State {
	c.mut_state.RLock()
	defer c.mut_state.RUnlock()
	return c.state
}

func (c *WorldConnection) IsConnected() bool {
	return c.State() == StateConnected
}

// WorldID is the world assigned by the last successful handshake.
func (c *WorldConnection) WorldID() (int64, bool) {
	c.mut_state.RLock()
	defer c.mut_state.RUnlock()
	return c.worldID, c.hasWorldID
}

// Connect dials the simulator and performs the handshake. A nil worldID asks
// for a new world. Failures are returned, never retried.
func (c *WorldConnection) Connect(ctx context.Context, host string, port int, worldID *int64) (int64, error) {
	c.mut_state.Lock()
	switch c.state {
	case StateShutdown:
		c.mut_state.Unlock()
		return 0, simerr.ErrShuttingDown
	case StateDisconnected:
	default:
		from := c.state
		c.mut_state.Unlock()
		return 0, &simerr.InvalidStateTransition{From: from.String(), To: StateConnecting.String()}
	}
	c.state = StateConnecting
	c.host = host
	c.port = port
	c.mut_state.Unlock()

	sess, assigned, err := c.establish(ctx, host, port, worldID)

	c.mut_state.Lock()
	defer c.mut_state.Unlock()

	if c.state != StateConnecting {
		if sess != nil {
			sess.close()
		}
		if c.state == StateShutdown {
			return 0, simerr.ErrShuttingDown
		}
		return 0, &simerr.ConnectionFailed{Address: joinAddress(host, port), Reason: "connect aborted by disconnect"}
	}
	if err != nil {
		c.state = StateDisconnected
		return 0, err
	}

	c.adoptSession(sess, assigned)
	sess.log.Info("Connected to world simulator", zap.Int64("worldId", assigned))
	return assigned, nil
}

// adoptSession must be called with mut_state held.
func (c *WorldConnection) adoptSession(sess *connSession, worldID int64) {
	c.state = StateConnected
	c.session = sess
	c.worldID = worldID
	c.hasWorldID = true

	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		c.writeLoop(sess)
	}()
	go func() {
		defer c.wg.Done()
		c.readLoop(sess)
	}()
}

func joinAddress(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

func (c *WorldConnection) establish(ctx context.Context, host string, port int, worldID *int64) (*connSession, int64, error) {
	address := joinAddress(host, port)
	fail := func(reason string, cause error) error {
		return &simerr.ConnectionFailed{Address: address, Reason: reason, Cause: cause}
	}

	dialCtx, dialCancel := context.WithTimeout(ctx, c.params.ConnectTimeout)
	conn, err := c.params.Dial(dialCtx, "tcp", address)
	dialCancel()
	if err != nil {
		return nil, 0, fail("dial failed", err)
	}

	if tcpConn, ok := conn.(*net.TCPConn); ok {
		tcpConn.SetNoDelay(c.params.NoDelay)
		tcpConn.SetKeepAlive(c.params.KeepAlive)
	}

	sessionID := uuid.NewString()
	sessCtx, sessCancel := context.WithCancel(c.lifeCtx)
	sess := &connSession{
		id:       sessionID,
		conn:     conn,
		outgoing: make(chan outboundFrame, c.params.OutgoingQueueLength),
		done:     make(chan struct{}),
		ctx:      sessCtx,
		cancel:   sessCancel,
		log:      c.log.With(zap.String("sessionId", sessionID), zap.String("address", address)),
		splitter: codec.FrameSplitter{MaxFrameSize: c.params.MaxFrameSize},
	}

	worldID, err = c.handshake(ctx, sess, worldID)
	if err != nil {
		sess.close()
		return nil, 0, fail("handshake failed", err)
	}
	return sess, *worldID, nil
}

func (c *WorldConnection) handshake(ctx context.Context, sess *connSession, worldID *int64) (*int64, error) {
	trucks, err := c.params.InitialTrucks(ctx)
	if err != nil {
		return nil, fmt.Errorf("load trucks: %w", err)
	}

	deadline := time.Now().Add(c.params.HandshakeTimeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	sess.conn.SetDeadline(deadline)
	stop := context.AfterFunc(ctx, func() {
		sess.conn.SetDeadline(time.Unix(1, 0))
	})

	assigned, err := c.exchangeHello(sess, worldID, trucks)
	// Once the cancel hook has fired the socket carries a deadline in the
	// past, so the session is unusable even if the reply arrived.
	if !stop() {
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}

	sess.conn.SetDeadline(time.Time{})
	return assigned, nil
}

func (c *WorldConnection) exchangeHello(sess *connSession, worldID *int64, trucks []*worldups.UInitTruck) (*int64, error) {
	hello := &worldups.UConnect{Worldid: worldID, Trucks: trucks, IsAmazon: proto.Bool(false)}
	frame, err := codec.EncodeConnect(hello)
	if err != nil {
		return nil, err
	}
	if _, err := sess.conn.Write(frame); err != nil {
		return nil, fmt.Errorf("write UConnect: %w", err)
	}
	c.reportFrame(debugevent.DirectionOutbound, "UConnect", len(frame), 0,
		fmt.Sprintf("UConnect(trucks=%d worldid=%s)", len(trucks), formatWorldID(worldID)))

	buf := make([]byte, 4096)
	var body []byte
	for {
		body, err = sess.splitter.Next()
		if err == nil {
			break
		}
		if !errors.Is(err, codec.ErrNeedMoreBytes) {
			return nil, err
		}

		n, readErr := sess.conn.Read(buf)
		if n > 0 {
			sess.splitter.Feed(buf[:n])
		}
		if readErr != nil && n == 0 {
			return nil, fmt.Errorf("read UConnected: %w", readErr)
		}
	}

	msg, err := codec.DecodeConnected(body)
	if err != nil {
		return nil, err
	}
	c.reportFrame(debugevent.DirectionInbound, "UConnected", len(body), 0, msg.String())

	if msg.Connected.Result != worldups.ConnectedResult {
		return nil, fmt.Errorf("simulator refused connection: %q", msg.Connected.Result)
	}

	assigned := msg.Connected.WorldID
	return &assigned, nil
}

func formatWorldID(worldID *int64) string {
	if worldID == nil {
		return "new"
	}
	return strconv.FormatInt(*worldID, 10)
}

func (c *WorldConnection) reportFrame(direction debugevent.Direction, messageType string, size int, seqNum int64, summary string) {
	if c.params.OnFrame == nil {
		return
	}
	c.params.OnFrame(debugevent.Event{
		Direction:   direction,
		MessageType: messageType,
		SizeBytes:   size,
		SeqNum:      seqNum,
		Summary:     summary,
		Timestamp:   time.Now(),
	})
}

// Send queues cmd for the writer goroutine. Frames go out in Send order.
func (c *WorldConnection) Send(cmd *worldups.UCommands) error {
	c.mut_state.RLock()
	state, sess := c.state, c.session
	c.mut_state.RUnlock()

	if state == StateShutdown {
		return simerr.ErrShuttingDown
	}
	if state != StateConnected || sess == nil {
		return simerr.ErrNotConnected
	}

	data, err := codec.EncodeCommands(cmd)
	if err != nil {
		return err
	}
	frame := outboundFrame{data: data}
	if c.params.OnFrame != nil {
		frame.summary = codec.SummarizeCommands(cmd)
		if seqNums := codec.CommandSeqNums(cmd); len(seqNums) > 0 {
			frame.seqNum = seqNums[0]
		}
	}

	select {
	case sess.outgoing <- frame:
		return nil
	case <-sess.done:
		return simerr.ErrConnectionLost
	}
}

func (c *WorldConnection) writeLoop(sess *connSession) {
	defer sess.log.Debug("Stopping writer goroutine")

	for {
		select {
		case <-sess.done:
			return
		case frame := <-sess.outgoing:
			sess.conn.SetWriteDeadline(time.Now().Add(c.params.WriteTimeout))
			_, err := sess.conn.Write(frame.data)
			if err != nil {
				if frame.closeAfter {
					sess.close()
					return
				}
				c.sessionFailed(sess, fmt.Errorf("write: %w", err))
				return
			}
			c.reportFrame(debugevent.DirectionOutbound, "UCommands", len(frame.data), frame.seqNum, frame.summary)

			if frame.closeAfter {
				sess.close()
				return
			}
		}
	}
}

func (c *WorldConnection) readLoop(sess *connSession) {
	defer sess.log.Debug("Stopping reader goroutine")

	// Frames that arrived together with UConnected are already buffered.
	if sess.splitter.Buffered() > 0 {
		if err := c.drainFrames(sess); err != nil {
			c.sessionFailed(sess, err)
			return
		}
	}

	buf := make([]byte, 64*1024)
	for {
		if c.params.ReadIdleTimeout > 0 {
			sess.conn.SetReadDeadline(time.Now().Add(c.params.ReadIdleTimeout))
		}

		n, err := sess.conn.Read(buf)
		if n > 0 {
			sess.splitter.Feed(buf[:n])
			if frameErr := c.drainFrames(sess); frameErr != nil {
				c.sessionFailed(sess, frameErr)
				return
			}
		}

		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() && !sess.isClosed() {
				sess.log.Warn("No data from world simulator", zap.Duration("idle", c.params.ReadIdleTimeout))
				continue
			}
			c.sessionFailed(sess, fmt.Errorf("read: %w", err))
			return
		}
	}
}

// drainFrames hands every complete frame to OnMessages. Undecodable bodies are
// dropped; only a corrupt length prefix, which cannot be resynchronized, is
// returned as an error.
func (c *WorldConnection) drainFrames(sess *connSession) error {
	for {
		body, err := sess.splitter.Next()
		if errors.Is(err, codec.ErrNeedMoreBytes) {
			return nil
		}
		if err != nil {
			return err
		}

		msgs, err := codec.DecodeResponses(body)
		if err != nil {
			sess.log.Warn("Dropping malformed frame from world simulator", zap.Int("size", len(body)), zap.Error(err))
			continue
		}

		if c.params.OnFrame != nil {
			var seqNum int64
			summaries := make([]string, 0, len(msgs))
			for _, m := range msgs {
				if seqNum == 0 {
					seqNum = m.SeqNum
				}
				summaries = append(summaries, m.String())
			}
			c.reportFrame(debugevent.DirectionInbound, "UResponses", len(body), seqNum, strings.Join(summaries, " "))
		}

		c.params.OnMessages(sess.ctx, msgs)
	}
}

// sessionFailed tears down a socket that broke on its own. If the session is
// still the live one, pending work is failed and reconnection begins.
func (c *WorldConnection) sessionFailed(sess *connSession, cause error) {
	sess.close()

	c.mut_state.Lock()
	if c.session != sess {
		c.mut_state.Unlock()
		return
	}
	c.session = nil
	c.state = StateDisconnected

	reconnect := c.params.ReconnectEnabled && c.params.Reconnect.Allows(1)
	var worldID *int64
	if c.hasWorldID {
		id := c.worldID
		worldID = &id
	}
	if reconnect {
		var loopCtx context.Context
		loopCtx, c.reconnectCancel = context.WithCancel(c.lifeCtx)
		c.state = StateReconnecting
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()
			c.reconnectLoop(loopCtx, worldID)
		}()
	}
	c.mut_state.Unlock()

	sess.log.Warn("Lost connection to world simulator", zap.Error(cause), zap.Bool("reconnecting", reconnect))
	c.params.OnConnectionLost(fmt.Errorf("%w: %v", simerr.ErrConnectionLost, cause))
}

func (c *WorldConnection) reconnectLoop(ctx context.Context, worldID *int64) {
	c.mut_state.RLock()
	host, port := c.host, c.port
	c.mut_state.RUnlock()

	attempt := 1
	for ; c.params.Reconnect.Allows(attempt); attempt++ {
		delay := c.params.Reconnect.Delay(attempt)
		c.log.Info("Scheduling reconnect", zap.Int("attempt", attempt), zap.Duration("delay", delay))

		select {
		case <-ctx.Done():
			return
		case <-c.params.After(delay):
		}

		if !c.transition(ctx, StateReconnecting, StateConnecting) {
			return
		}

		sess, assigned, err := c.establish(ctx, host, port, worldID)

		c.mut_state.Lock()
		if ctx.Err() != nil || c.state != StateConnecting {
			c.mut_state.Unlock()
			if sess != nil {
				sess.close()
			}
			return
		}
		if err != nil {
			c.state = StateReconnecting
			c.mut_state.Unlock()
			c.log.Warn("Reconnect attempt failed", zap.Int("attempt", attempt), zap.Error(err))
			continue
		}
		c.adoptSession(sess, assigned)
		cancel := c.reconnectCancel
		c.reconnectCancel = nil
		c.mut_state.Unlock()

		if cancel != nil {
			cancel()
		}
		sess.log.Info("Reconnected to world simulator", zap.Int("attempt", attempt), zap.Int64("worldId", assigned))
		return
	}

	c.mut_state.Lock()
	if ctx.Err() == nil && c.state == StateReconnecting {
		c.state = StateDisconnected
		if c.reconnectCancel != nil {
			c.reconnectCancel()
			c.reconnectCancel = nil
		}
	}
	c.mut_state.Unlock()
	c.log.Error("Giving up on reconnecting to world simulator", zap.Int("attempts", attempt-1))
}

func (c *WorldConnection) transition(ctx context.Context, from, to State) bool {
	c.mut_state.Lock()
	defer c.mut_state.Unlock()

	if ctx.Err() != nil || c.state != from {
		return false
	}
	c.state = to
	return true
}

// Disconnect sends a best-effort disconnect command, closes the socket and
// stops any reconnection. Calling it while disconnected is a no-op.
func (c *WorldConnection) Disconnect() error {
	c.mut_state.Lock()
	if c.state == StateShutdown {
		c.mut_state.Unlock()
		return nil
	}
	sess := c.session
	c.session = nil
	c.state = StateDisconnected
	if c.reconnectCancel != nil {
		c.reconnectCancel()
		c.reconnectCancel = nil
	}
	c.mut_state.Unlock()

	if sess == nil {
		return nil
	}
	sess.log.Info("Disconnecting from world simulator")
	return c.closeGracefully(sess)
}

func (c *WorldConnection) closeGracefully(sess *connSession) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.params.WriteTimeout)
	defer cancel()

	data, err := codec.EncodeCommands(&worldups.UCommands{Disconnect: proto.Bool(true)})
	if err != nil {
		return err
	}
	frame := outboundFrame{
		data:       data,
		summary:    "UCommands(disconnect)",
		closeAfter: true,
	}

	select {
	case sess.outgoing <- frame:
	case <-sess.done:
	case <-ctx.Done():
	}

	select {
	case <-sess.done:
	case <-ctx.Done():
		sess.log.Warn("Timed out flushing disconnect command, closing socket")
	}

	if err := sess.close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

// Shutdown disconnects and moves to the terminal SHUTDOWN state, waiting for
// every connection goroutine to exit.
func (c *WorldConnection) Shutdown() error {
	c.shutdownOnce.Do(func() {
		c.mut_state.Lock()
		sess := c.session
		c.session = nil
		c.state = StateShutdown
		if c.reconnectCancel != nil {
			c.reconnectCancel()
			c.reconnectCancel = nil
		}
		c.mut_state.Unlock()

		var err error
		if sess != nil {
			err = multierr.Append(err, c.closeGracefully(sess))
		}
		c.lifeCancel()
		c.wg.Wait()

		c.shutdownErr = err
		c.log.Info("World connection shut down")
	})
	return c.shutdownErr
}
