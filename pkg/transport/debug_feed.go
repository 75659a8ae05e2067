package transport

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/message/debugevent"
	utils "github.com/Jaydccq/mini-ups-sub002/pkg/util"
	"github.com/gorilla/websocket"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type DebugFeedParams struct {
	ListenAddress    string
	ListenEndpoint   string
	AllowAllHosts    bool
	AllowlistedHosts []string
	DenylistedHosts  []string

	// RecentBufferSize events are kept and replayed to new subscribers.
	RecentBufferSize      int
	SubscriberQueueLength int

	Logger *zap.Logger
}

type DebugFeedStats struct {
	Total             uint64
	Inbound           uint64
	Outbound          uint64
	MessagesPerSecond float64
	Subscribers       int
}

// DebugFeed broadcasts every frame exchanged with the world simulator to
// websocket subscribers as DebugEvent flatbuffers.
type DebugFeed struct {
	upgrader *websocket.Upgrader
	params   DebugFeedParams

	mut_subscribers sync.RWMutex
	subscribers     map[string]chan []byte

	mut_recent sync.Mutex
	recent     []debugevent.Event
	recentNext int

	inbound   atomic.Uint64
	outbound  atomic.Uint64
	startTime time.Time

	mut_server sync.Mutex
	server     *http.Server

	log       *zap.Logger
	stringGen *utils.RandomStringGenerator
}

func checkOrigin(r *http.Request, params DebugFeedParams) bool {
	origin := r.Header.Get("Origin")
	if utils.Contains(origin, params.DenylistedHosts) {
		return false
	}

	if params.AllowAllHosts || origin == "" {
		return true
	}

	return utils.Contains(origin, params.AllowlistedHosts)
}

func CreateDebugFeed(params DebugFeedParams) (*DebugFeed, error) {
	if params.ListenEndpoint == "" {
		params.ListenEndpoint = "/ws/debug"
	}
	if params.RecentBufferSize <= 0 {
		params.RecentBufferSize = 100
	}
	if params.SubscriberQueueLength <= 0 {
		params.SubscriberQueueLength = 64
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	return &DebugFeed{
		upgrader: &websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return checkOrigin(r, params)
			},
		},
		params:      params,
		subscribers: make(map[string]chan []byte),
		recent:      make([]debugevent.Event, 0, params.RecentBufferSize),
		startTime:   time.Now(),
		log:         logger.With(zap.String("handler", "DebugFeed")),
		stringGen:   utils.CreateRandomstringGenerator(time.Now().UnixMicro()),
	}, nil
}

// Publish records ev and fans it out. Subscribers that cannot keep up miss
// events rather than stall the connection goroutines.
func (f *DebugFeed) Publish(ev debugevent.Event) {
	if ev.Direction == debugevent.DirectionInbound {
		f.inbound.Add(1)
	} else {
		f.outbound.Add(1)
	}

	f.mut_recent.Lock()
	if len(f.recent) < f.params.RecentBufferSize {
		f.recent = append(f.recent, ev)
	} else {
		f.recent[f.recentNext] = ev
	}
	f.recentNext = (f.recentNext + 1) % f.params.RecentBufferSize
	f.mut_recent.Unlock()

	payload := debugevent.Serialize(ev)

	f.mut_subscribers.RLock()
	defer f.mut_subscribers.RUnlock()
	for id, queue := range f.subscribers {
		select {
		case queue <- payload:
		default:
			f.log.Debug("Debug subscriber is behind, dropping event", zap.String("subscriberId", id))
		}
	}
}

// Recent returns the buffered events, oldest first.
func (f *DebugFeed) Recent() []debugevent.Event {
	f.mut_recent.Lock()
	defer f.mut_recent.Unlock()

	if len(f.recent) < f.params.RecentBufferSize {
		return append([]debugevent.Event(nil), f.recent...)
	}
	out := make([]debugevent.Event, 0, len(f.recent))
	out = append(out, f.recent[f.recentNext:]...)
	return append(out, f.recent[:f.recentNext]...)
}

func (f *DebugFeed) Stats() DebugFeedStats {
	inbound := f.inbound.Load()
	outbound := f.outbound.Load()

	f.mut_subscribers.RLock()
	subscribers := len(f.subscribers)
	f.mut_subscribers.RUnlock()

	stats := DebugFeedStats{
		Total:       inbound + outbound,
		Inbound:     inbound,
		Outbound:    outbound,
		Subscribers: subscribers,
	}
	if elapsed := time.Since(f.startTime).Seconds(); elapsed > 0 {
		stats.MessagesPerSecond = float64(stats.Total) / elapsed
	}
	return stats
}

// Handler serves the websocket endpoint. Subscriptions end when ctx is done.
func (f *DebugFeed) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(f.params.ListenEndpoint, func(w http.ResponseWriter, r *http.Request) {
		f.onWsRequest(ctx, w, r)
	})
	return mux
}

func (f *DebugFeed) onWsRequest(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	subscriberID := f.stringGen.GetRandomString(6)
	log := f.log.With(zap.String("subscriberId", subscriberID))

	c, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade HTTP request to WebSocket connection", zap.Error(err))
		return
	}
	defer c.Close()

	queue := make(chan []byte, f.params.SubscriberQueueLength)

	// Register before snapshotting so nothing published in between is lost;
	// a duplicate of the newest event is harmless for a debug view.
	f.mut_subscribers.Lock()
	f.subscribers[subscriberID] = queue
	f.mut_subscribers.Unlock()
	log.Info("Debug subscriber connected")

	defer func() {
		f.mut_subscribers.Lock()
		delete(f.subscribers, subscriberID)
		f.mut_subscribers.Unlock()
		log.Info("Debug subscriber disconnected")
	}()

	for _, ev := range f.Recent() {
		if err := c.WriteMessage(websocket.BinaryMessage, debugevent.Serialize(ev)); err != nil {
			log.Warn("Failed to replay recent events", zap.Error(err))
			return
		}
	}

	// Subscribers never send anything meaningful; reading only detects close.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			c.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(time.Second))
			return
		case <-closed:
			return
		case payload := <-queue:
			if err := c.WriteMessage(websocket.BinaryMessage, payload); err != nil {
				log.Warn("Failed to write debug event", zap.Error(err))
				return
			}
		}
	}
}

// Start serves the feed on ListenAddress until ctx is done. It returns early
// with the listener error if the address cannot be bound.
func (f *DebugFeed) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	server := &http.Server{
		Addr:    f.params.ListenAddress,
		Handler: f.Handler(ctx),
	}
	f.mut_server.Lock()
	f.server = server
	f.mut_server.Unlock()

	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()

		<-ctx.Done()

		shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownRelease()
		f.log.Info("Attempting to trigger shutdown of debug feed server")

		if err := server.Shutdown(shutdownCtx); err != nil {
			f.log.Error("Failed to gracefully shut down debug feed server", zap.Error(err))
		}
	}()

	f.log.Sugar().Infof("Starting debug feed at %s%s", f.params.ListenAddress, f.params.ListenEndpoint)
	var serveErr error
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		f.log.Error("Debug feed server failed", zap.String("address", f.params.ListenAddress), zap.Error(err))
		serveErr = err
		cancel()
	}

	wg.Wait()
	return serveErr
}

// Close force-closes the server and every subscriber connection.
func (f *DebugFeed) Close() error {
	f.mut_server.Lock()
	server := f.server
	f.mut_server.Unlock()

	var err error
	if server != nil {
		err = multierr.Append(err, server.Close())
	}
	return err
}
