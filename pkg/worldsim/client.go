// Package worldsim is the command surface of the world simulator client. It
// wires the connection, correlator, dispatcher and event handler together and
// turns each command into a Future.
package worldsim

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sort"
	"sync"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/internal"
	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/config"
	"github.com/Jaydccq/mini-ups-sub002/pkg/dispatch"
	simerr "github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"github.com/Jaydccq/mini-ups-sub002/pkg/handlers"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	"github.com/Jaydccq/mini-ups-sub002/pkg/message/worldups"
	"github.com/Jaydccq/mini-ups-sub002/pkg/transport"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

type CallOptions struct {
	Timeout time.Duration
}

type CallOption func(*CallOptions)

// WithTimeout overrides the configured response timeout for one command.
func WithTimeout(d time.Duration) CallOption {
	return func(o *CallOptions) {
		o.Timeout = d
	}
}

type ClientParams struct {
	Config config.Config

	Trucks    fleet.TruckStore
	Shipments fleet.ShipmentStore
	// Notifier defaults to one that only logs.
	Notifier fleet.AmazonNotifier

	// OnFrame observes every frame exchanged with the simulator.
	OnFrame func(ev debugevent.Event)

	Dial   func(ctx context.Context, network, address string) (net.Conn, error)
	After  func(d time.Duration) <-chan time.Time
	GetNow func() time.Time

	Logger *zap.Logger
}

type Client struct {
	cfg config.Config

	conn       *transport.WorldConnection
	correlator *internal.Correlator
	dispatcher *dispatch.Dispatcher

	lifeCtx    context.Context
	lifeCancel context.CancelFunc
	wg         sync.WaitGroup

	shutdownOnce sync.Once
	shutdownErr  error

	log *zap.Logger
}

func CreateClient(params ClientParams) (*Client, error) {
	if err := params.Config.Validate(); err != nil {
		return nil, err
	}
	if params.Trucks == nil || params.Shipments == nil {
		return nil, errors.New("world simulator client needs a truck store and a shipment store")
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}
	cfg := params.Config

	c := &Client{
		cfg:        cfg,
		correlator: internal.CreateCorrelator(cfg.Message.MaxPendingResponses),
		log:        logger.With(zap.String("handler", "WorldSimClient")),
	}

	handler, err := handlers.CreateEventHandler(handlers.EventHandlerParams{
		Trucks:    params.Trucks,
		Shipments: params.Shipments,
		Notifier:  params.Notifier,
		GetNow:    params.GetNow,
		Logger:    logger,
	})
	if err != nil {
		return nil, err
	}

	var sendAcks func([]int64)
	if cfg.Message.AckInbound {
		sendAcks = c.sendAcks
	}
	c.dispatcher, err = dispatch.CreateDispatcher(dispatch.DispatcherParams{
		Resolver: c.correlator,
		Handler:  handler,
		SendAcks: sendAcks,
		Workers:  cfg.Connection.WorkerThreads,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	trucks := params.Trucks
	c.conn, err = transport.CreateWorldConnection(transport.WorldConnectionParams{
		ConnectTimeout:      cfg.Connection.ConnectTimeout,
		HandshakeTimeout:    cfg.Connection.HandshakeTimeout,
		WriteTimeout:        cfg.Connection.WriteTimeout,
		ReadIdleTimeout:     cfg.Connection.ReadIdleTimeout,
		KeepAlive:           cfg.Connection.KeepAlive,
		NoDelay:             cfg.Connection.TCPNoDelay,
		OutgoingQueueLength: cfg.Connection.OutgoingQueueLength,
		ReconnectEnabled:    cfg.Reconnect.Enabled,
		Reconnect: transport.Backoff{
			InitialDelay: cfg.Reconnect.InitialDelay,
			MaxDelay:     cfg.Reconnect.MaxDelay,
			Multiplier:   cfg.Reconnect.BackoffMultiplier,
			MaxAttempts:  cfg.Reconnect.MaxAttempts,
		},
		InitialTrucks: func(ctx context.Context) ([]*worldups.UInitTruck, error) {
			return initialTrucks(ctx, trucks)
		},
		OnMessages:       c.dispatcher.Dispatch,
		OnConnectionLost: c.onConnectionLost,
		OnFrame:          params.OnFrame,
		Dial:             params.Dial,
		After:            params.After,
		Logger:           logger,
	})
	if err != nil {
		return nil, err
	}

	c.lifeCtx, c.lifeCancel = context.WithCancel(context.Background())
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.dispatcher.Start(c.lifeCtx)
	}()

	return c, nil
}

func initialTrucks(ctx context.Context, store fleet.TruckStore) ([]*worldups.UInitTruck, error) {
	trucks, err := store.ListTrucks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list trucks for handshake: %w", err)
	}

	out := make([]*worldups.UInitTruck, 0, len(trucks))
	for _, t := range trucks {
		out = append(out, &worldups.UInitTruck{Id: proto.Int32(t.ID), X: proto.Int32(t.X), Y: proto.Int32(t.Y)})
	}
	return out, nil
}

func (c *Client) sendAcks(seqNums []int64) {
	if err := c.conn.Send(&worldups.UCommands{Acks: seqNums}); err != nil {
		c.log.Warn("Failed to acknowledge simulator messages", zap.Int64s("seqNums", seqNums), zap.Error(err))
	}
}

func (c *Client) onConnectionLost(err error) {
	if failed := c.correlator.FailAll(err); failed > 0 {
		c.log.Warn("Failed pending requests after connection loss", zap.Int("count", failed))
	}
}

// ConnectToWorld joins worldID, or asks for a new world when it is nil, and
// returns the world id the simulator assigned. An existing connection is
// dropped first.
func (c *Client) ConnectToWorld(ctx context.Context, worldID *int64) (int64, error) {
	switch c.conn.State() {
	case transport.StateShutdown:
		return 0, simerr.ErrShuttingDown
	case transport.StateDisconnected:
	default:
		if err := c.DisconnectFromWorld(); err != nil {
			c.log.Warn("Error while dropping previous world connection", zap.Error(err))
		}
	}

	assigned, err := c.conn.Connect(ctx, c.cfg.World.Host, c.cfg.World.Port, worldID)
	if err != nil {
		return 0, err
	}

	if speed := c.cfg.Simulation.Speed; speed > 0 {
		c.SetSimulationSpeed(speed)
	}
	return assigned, nil
}

// DisconnectFromWorld tells the simulator we are leaving and fails every
// outstanding command with ErrConnectionLost.
func (c *Client) DisconnectFromWorld() error {
	err := c.conn.Disconnect()
	if failed := c.correlator.FailAll(simerr.ErrConnectionLost); failed > 0 {
		c.log.Info("Failed pending requests on disconnect", zap.Int("count", failed))
	}
	return err
}

// Shutdown is terminal. Outstanding commands fail with ErrShuttingDown.
func (c *Client) Shutdown() error {
	c.shutdownOnce.Do(func() {
		defer c.log.Info("World simulator client shut down")

		var err error
		err = multierr.Append(err, c.conn.Shutdown())
		c.correlator.FailAll(simerr.ErrShuttingDown)

		c.lifeCancel()
		c.wg.Wait()
		c.shutdownErr = err
	})
	return c.shutdownErr
}

func (c *Client) IsConnected() bool {
	return c.conn.IsConnected()
}

func (c *Client) State() transport.State {
	return c.conn.State()
}

func (c *Client) WorldID() (int64, bool) {
	return c.conn.WorldID()
}

// PendingCount is the number of commands still waiting for the simulator.
func (c *Client) PendingCount() int {
	return c.correlator.Len()
}

func (c *Client) callOptions(defaultTimeout time.Duration, opts []CallOption) CallOptions {
	o := CallOptions{Timeout: defaultTimeout}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return o
}

func (c *Client) unavailable() error {
	switch c.conn.State() {
	case transport.StateConnected:
		return nil
	case transport.StateShutdown:
		return simerr.ErrShuttingDown
	default:
		return simerr.ErrNotConnected
	}
}

// send registers a pending slot for the next sequence number, lets build
// stamp it into a command and queues that command.
func (c *Client) send(timeout time.Duration, accepts codec.Kind, build func(seqNum int64) *worldups.UCommands) (*internal.Slot, error) {
	if err := c.unavailable(); err != nil {
		return nil, err
	}

	seqNum := c.correlator.NextSeqNum()
	slot, err := c.correlator.Register(seqNum, timeout, accepts)
	if err != nil {
		return nil, err
	}

	if err := c.conn.Send(build(int64(seqNum))); err != nil {
		c.correlator.Reject(seqNum, err)
	}
	return slot, nil
}

func acknowledged(codec.InboundMessage) (bool, error) {
	return true, nil
}

// SendTruckToPickup sends truckID to warehouseID. The future is true once the
// simulator acknowledges the command.
func (c *Client) SendTruckToPickup(truckID int32, warehouseID int32, opts ...CallOption) *Future[bool] {
	o := c.callOptions(c.cfg.Message.ResponseTimeout, opts)

	slot, err := c.send(o.Timeout, codec.KindAck, func(seqNum int64) *worldups.UCommands {
		return &worldups.UCommands{
			Pickups: []*worldups.UGoPickup{{Truckid: proto.Int32(truckID), Whid: proto.Int32(warehouseID), Seqnum: proto.Int64(seqNum)}},
		}
	})
	if err != nil {
		return failedFuture[bool](err)
	}

	c.log.Debug("Sent truck to pickup", zap.Int32("truckId", truckID), zap.Int32("warehouseId", warehouseID), zap.Uint64("seqNum", slot.SeqNum))
	return pendingFuture(slot, acknowledged)
}

// SendTruckToDeliver sends truckID out with the given packages, keyed by
// package id. Packages are sent in ascending package id order.
func (c *Client) SendTruckToDeliver(truckID int32, packages map[int64]fleet.Location, opts ...CallOption) *Future[bool] {
	if len(packages) == 0 {
		return failedFuture[bool](&simerr.MissingFieldError{MessageName: "UGoDeliver", FieldName: "packages"})
	}
	o := c.callOptions(c.cfg.Message.ResponseTimeout, opts)

	locations := make([]*worldups.UDeliveryLocation, 0, len(packages))
	for packageID, loc := range packages {
		locations = append(locations, &worldups.UDeliveryLocation{Packageid: proto.Int64(packageID), X: proto.Int32(loc.X), Y: proto.Int32(loc.Y)})
	}
	sort.Slice(locations, func(i, j int) bool {
		return locations[i].GetPackageid() < locations[j].GetPackageid()
	})

	slot, err := c.send(o.Timeout, codec.KindAck, func(seqNum int64) *worldups.UCommands {
		return &worldups.UCommands{
			Deliveries: []*worldups.UGoDeliver{{Truckid: proto.Int32(truckID), Packages: locations, Seqnum: proto.Int64(seqNum)}},
		}
	})
	if err != nil {
		return failedFuture[bool](err)
	}

	c.log.Debug("Sent truck to deliver", zap.Int32("truckId", truckID), zap.Int("packages", len(locations)), zap.Uint64("seqNum", slot.SeqNum))
	return pendingFuture(slot, acknowledged)
}

// QueryTruckStatus asks for the current position and status of truckID.
// The default timeout is the configured query timeout.
func (c *Client) QueryTruckStatus(truckID int32, opts ...CallOption) *Future[codec.TruckReport] {
	o := c.callOptions(c.cfg.Message.QueryTimeout, opts)

	slot, err := c.send(o.Timeout, codec.KindTruckStatus, func(seqNum int64) *worldups.UCommands {
		return &worldups.UCommands{
			Queries: []*worldups.UQuery{{Truckid: proto.Int32(truckID), Seqnum: proto.Int64(seqNum)}},
		}
	})
	if err != nil {
		return failedFuture[codec.TruckReport](err)
	}

	return pendingFuture(slot, func(msg codec.InboundMessage) (codec.TruckReport, error) {
		if msg.Kind != codec.KindTruckStatus || msg.Truck == nil {
			return codec.TruckReport{}, &simerr.UnexpectedResponseType{
				Expected: codec.KindTruckStatus.String(),
				Actual:   msg.Kind.String(),
			}
		}
		return *msg.Truck, nil
	})
}

// SetSimulationSpeed is fire-and-forget; nothing correlates a reply to it.
func (c *Client) SetSimulationSpeed(speed uint32) error {
	err := c.conn.Send(&worldups.UCommands{Simspeed: proto.Uint32(speed)})
	if err != nil {
		c.log.Warn("Failed to set simulation speed", zap.Uint32("speed", speed), zap.Error(err))
		return err
	}
	c.log.Info("Set simulation speed", zap.Uint32("speed", speed))
	return nil
}
