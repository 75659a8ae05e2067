package handlers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type arrival struct {
	TruckID    string
	Location   string
	ShipmentID string
}

type recordingNotifier struct {
	mut       sync.Mutex
	arrivals  []arrival
	delivered []string
	err       error
}

func (n *recordingNotifier) NotifyTruckArrived(ctx context.Context, truckID, location, shipmentID string) error {
	n.mut.Lock()
	defer n.mut.Unlock()
	n.arrivals = append(n.arrivals, arrival{truckID, location, shipmentID})
	return n.err
}

func (n *recordingNotifier) NotifyShipmentDelivered(ctx context.Context, shipmentID string) error {
	n.mut.Lock()
	defer n.mut.Unlock()
	n.delivered = append(n.delivered, shipmentID)
	return n.err
}

var fixedNow = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func newHandler(t *testing.T, store *fleet.MemoryStore, notifier fleet.AmazonNotifier, logger *zap.Logger) *EventHandler {
	t.Helper()
	if logger == nil {
		logger = zaptest.NewLogger(t)
	}
	h, err := CreateEventHandler(EventHandlerParams{
		Trucks:    store,
		Shipments: store,
		Notifier:  notifier,
		GetNow:    func() time.Time { return fixedNow },
		Logger:    logger,
	})
	require.NoError(t, err)
	return h
}

func TestMapTruckStatusTable(t *testing.T) {
	cases := []struct {
		raw    string
		status fleet.TruckStatus
		ok     bool
	}{
		{"idle", fleet.TruckIdle, true},
		{"traveling", fleet.TruckEnRoute, true},
		{"arrive warehouse", fleet.TruckAtWarehouse, true},
		{"loading", fleet.TruckLoading, true},
		{"delivering", fleet.TruckDelivering, true},
		{"IDLE", "", false},
		{"arrived", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		status, ok := MapTruckStatus(tc.raw)
		assert.Equal(t, tc.ok, ok, tc.raw)
		assert.Equal(t, tc.status, status, tc.raw)
	}
}

func TestTruckFinishedUpdatesPositionAndStatus(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveTruck(ctx, fleet.Truck{ID: 1, Status: fleet.TruckEnRoute}))

	h := newHandler(t, store, &recordingNotifier{}, nil)
	h.OnTruckFinished(ctx, codec.TruckReport{TruckID: 1, X: 4, Y: 9, Status: "idle"})

	truck, err := store.GetTruck(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, fleet.Truck{ID: 1, X: 4, Y: 9, Status: fleet.TruckIdle}, truck)
}

func TestUnknownStatusUpdatesPositionOnly(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveTruck(ctx, fleet.Truck{ID: 1, Status: fleet.TruckLoading}))

	core, logs := observer.New(zapcore.WarnLevel)
	h := newHandler(t, store, &recordingNotifier{}, zap.New(core))
	h.OnTruckStatus(ctx, codec.TruckReport{TruckID: 1, X: 2, Y: 3, Status: "teleporting"})

	truck, err := store.GetTruck(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, fleet.Truck{ID: 1, X: 2, Y: 3, Status: fleet.TruckLoading}, truck)
	assert.Equal(t, 1, logs.FilterField(zap.String("simulatorStatus", "teleporting")).Len())
}

func TestUnknownTruckLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveTruck(ctx, fleet.Truck{ID: 1, Status: fleet.TruckIdle}))
	notifier := &recordingNotifier{}

	h := newHandler(t, store, notifier, nil)
	h.OnTruckFinished(ctx, codec.TruckReport{TruckID: 99, X: 1, Y: 1, Status: "arrive warehouse"})

	trucks, err := store.ListTrucks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []fleet.Truck{{ID: 1, Status: fleet.TruckIdle}}, trucks)
	assert.Empty(t, notifier.arrivals)
}

func TestArrivalNotifiesEveryAssignedShipment(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveTruck(ctx, fleet.Truck{ID: 5, Status: fleet.TruckEnRoute}))
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 1, ShipmentID: "S1", TruckID: 5}))
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 2, ShipmentID: "S2", TruckID: 5}))
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 3, ShipmentID: "S3", TruckID: 6}))
	notifier := &recordingNotifier{}

	h := newHandler(t, store, notifier, nil)
	h.OnTruckFinished(ctx, codec.TruckReport{TruckID: 5, X: 3, Y: 7, Status: "arrive warehouse"})

	assert.Equal(t, []arrival{
		{TruckID: "5", Location: "3_7", ShipmentID: "S1"},
		{TruckID: "5", Location: "3_7", ShipmentID: "S2"},
	}, notifier.arrivals)

	truck, err := store.GetTruck(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, fleet.TruckAtWarehouse, truck.Status)
}

func TestNotifierFailureDoesNotPropagate(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveTruck(ctx, fleet.Truck{ID: 5}))
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 1, ShipmentID: "S1", TruckID: 5}))
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 2, ShipmentID: "S2", TruckID: 5}))
	notifier := &recordingNotifier{err: errors.New("amazon unreachable")}

	h := newHandler(t, store, notifier, nil)
	h.OnTruckStatus(ctx, codec.TruckReport{TruckID: 5, X: 1, Y: 1, Status: "arrive warehouse"})

	// Every shipment is still attempted after the first failure.
	assert.Len(t, notifier.arrivals, 2)
}

func TestDeliveryMadeMarksShipmentDelivered(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	require.NoError(t, store.SaveShipment(ctx, fleet.Shipment{ID: 4, ShipmentID: "1004", TruckID: 2, Status: fleet.ShipmentOutForDelivery}))
	notifier := &recordingNotifier{}

	h := newHandler(t, store, notifier, nil)
	h.OnDeliveryMade(ctx, codec.DeliveryReport{TruckID: 2, PackageID: 1004})

	shipment, err := store.GetShipment(ctx, "1004")
	require.NoError(t, err)
	assert.Equal(t, fleet.ShipmentDelivered, shipment.Status)
	require.NotNil(t, shipment.ActualDelivery)
	assert.Equal(t, fixedNow, *shipment.ActualDelivery)
	assert.Equal(t, []string{"1004"}, notifier.delivered)

	// A repeated delivery event neither reverts nor re-notifies.
	h.OnDeliveryMade(ctx, codec.DeliveryReport{TruckID: 2, PackageID: 1004})
	assert.Equal(t, []string{"1004"}, notifier.delivered)
}

func TestDeliveryOfUnknownShipmentIsIgnored(t *testing.T) {
	ctx := context.Background()
	store := fleet.CreateMemoryStore()
	notifier := &recordingNotifier{}

	h := newHandler(t, store, notifier, nil)
	h.OnDeliveryMade(ctx, codec.DeliveryReport{TruckID: 2, PackageID: 555})

	assert.Empty(t, notifier.delivered)
	_, err := store.GetShipment(ctx, "555")
	assert.ErrorIs(t, err, fleet.ErrShipmentNotFound)
}

func TestCreateEventHandlerRequiresStores(t *testing.T) {
	_, err := CreateEventHandler(EventHandlerParams{})
	assert.Error(t, err)
}
