// Package dispatch routes decoded simulator messages either to the pending
// request waiting for them or to the business event handler.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	simerr "github.com/Jaydccq/mini-ups-sub002/pkg/errors"
	"go.uber.org/zap"
)

type Resolver interface {
	Resolve(seqNum uint64, msg codec.InboundMessage) bool
	Reject(seqNum uint64, err error) bool
}

type EventHandler interface {
	OnTruckFinished(ctx context.Context, report codec.TruckReport)
	OnTruckStatus(ctx context.Context, report codec.TruckReport)
	OnDeliveryMade(ctx context.Context, report codec.DeliveryReport)
	OnError(ctx context.Context, report codec.ErrorReport, seqNum int64)
}

type DispatcherParams struct {
	Resolver Resolver
	Handler  EventHandler

	// SendAcks acknowledges simulator sequence numbers. Nil disables acking.
	SendAcks func(seqNums []int64)

	// Workers > 1 shards event handling by truck id. Events for one truck
	// keep their order; events for different trucks may interleave.
	Workers           int
	WorkerQueueLength int

	Logger *zap.Logger
}

type Dispatcher struct {
	resolver Resolver
	handler  EventHandler
	sendAcks func([]int64)

	mut_workers sync.RWMutex
	workers     []chan codec.InboundMessage
	numWorkers  int
	queueLength int

	log *zap.Logger
}

func CreateDispatcher(params DispatcherParams) (*Dispatcher, error) {
	if params.Resolver == nil || params.Handler == nil {
		return nil, errors.New("dispatcher needs a resolver and an event handler")
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	queueLength := 256
	if params.WorkerQueueLength > 0 {
		queueLength = params.WorkerQueueLength
	}

	return &Dispatcher{
		resolver:    params.Resolver,
		handler:     params.Handler,
		sendAcks:    params.SendAcks,
		numWorkers:  params.Workers,
		queueLength: queueLength,
		log:         logger.With(zap.String("handler", "Dispatcher")),
	}, nil
}

// Start runs the event workers until ctx is done. With one worker or fewer,
// events are handled inline by Dispatch and Start only waits.
func (d *Dispatcher) Start(ctx context.Context) {
	defer d.log.Info("Stopping dispatcher")

	if d.numWorkers <= 1 {
		<-ctx.Done()
		return
	}

	queues := make([]chan codec.InboundMessage, d.numWorkers)
	for i := range queues {
		queues[i] = make(chan codec.InboundMessage, d.queueLength)
	}

	d.mut_workers.Lock()
	d.workers = queues
	d.mut_workers.Unlock()

	wg := sync.WaitGroup{}
	for i, queue := range queues {
		wg.Add(1)
		go func(worker int, queue <-chan codec.InboundMessage) {
			defer wg.Done()
			d.log.Debug("Starting dispatch worker", zap.Int("worker", worker))
			for {
				select {
				case <-ctx.Done():
					return
				case msg := <-queue:
					d.handleEvent(ctx, msg)
				}
			}
		}(i, queue)
	}

	wg.Wait()

	d.mut_workers.Lock()
	d.workers = nil
	d.mut_workers.Unlock()
}

// Dispatch routes the messages of one frame in order, then acknowledges the
// simulator's sequence numbers for that frame.
func (d *Dispatcher) Dispatch(ctx context.Context, msgs []codec.InboundMessage) {
	for _, msg := range msgs {
		d.route(ctx, msg)
	}

	if d.sendAcks == nil {
		return
	}
	if seqNums := codec.WorldSeqNums(msgs); len(seqNums) > 0 {
		d.sendAcks(seqNums)
	}
}

func (d *Dispatcher) route(ctx context.Context, msg codec.InboundMessage) {
	switch msg.Kind {
	case codec.KindAck:
		if msg.SeqNum > 0 && d.resolver.Resolve(uint64(msg.SeqNum), msg) {
			d.log.Debug("Ack resolved pending request", zap.Int64("seqNum", msg.SeqNum))
		}
	case codec.KindTruckStatus:
		if msg.SeqNum > 0 && d.resolver.Resolve(uint64(msg.SeqNum), msg) {
			d.log.Debug("Truck status answered pending query", zap.Int64("seqNum", msg.SeqNum))
			return
		}
		d.enqueueEvent(ctx, msg)
	case codec.KindTruckFinished, codec.KindDeliveryMade:
		d.enqueueEvent(ctx, msg)
	case codec.KindError:
		origin := msg.Error.OriginSeqNum
		if origin > 0 {
			d.resolver.Reject(uint64(origin), &simerr.SimulatorError{
				Message:      msg.Error.Message,
				OriginSeqNum: origin,
				SeqNum:       msg.SeqNum,
			})
		}
		d.handler.OnError(ctx, *msg.Error, msg.SeqNum)
	case codec.KindConnectedAck:
		d.log.Warn("Ignoring connected ack outside of handshake", zap.Stringer("msg", msg))
	case codec.KindWorldFinished:
		d.log.Info("World simulator reported the world as finished")
	default:
		d.log.Warn("Ignoring message of unknown kind", zap.Stringer("kind", msg.Kind))
	}
}

func (d *Dispatcher) enqueueEvent(ctx context.Context, msg codec.InboundMessage) {
	d.mut_workers.RLock()
	workers := d.workers
	d.mut_workers.RUnlock()

	if len(workers) == 0 {
		d.handleEvent(ctx, msg)
		return
	}

	var truckID int32
	switch {
	case msg.Truck != nil:
		truckID = msg.Truck.TruckID
	case msg.Delivery != nil:
		truckID = msg.Delivery.TruckID
	}
	shard := int(uint32(truckID) % uint32(len(workers)))

	select {
	case workers[shard] <- msg:
	case <-ctx.Done():
	}
}

func (d *Dispatcher) handleEvent(ctx context.Context, msg codec.InboundMessage) {
	switch msg.Kind {
	case codec.KindTruckFinished:
		d.handler.OnTruckFinished(ctx, *msg.Truck)
	case codec.KindTruckStatus:
		d.handler.OnTruckStatus(ctx, *msg.Truck)
	case codec.KindDeliveryMade:
		d.handler.OnDeliveryMade(ctx, *msg.Delivery)
	}
}
