package fleet

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedTOML = `
[[trucks]]
id = 2
x = 10
y = -3

[[trucks]]
id = 1
x = 0
y = 0
status = "LOADING"

[[shipments]]
id = 7
shipment_id = "1007"
truck_id = 1
status = "TRUCK_DISPATCHED"

[[shipments]]
id = 8
shipment_id = "1008"
truck_id = 1
`

func TestLoadSeedFileFillsStore(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fleet.toml")
	require.NoError(t, os.WriteFile(path, []byte(seedTOML), 0o600))

	store := CreateMemoryStore()
	ctx := context.Background()
	require.NoError(t, LoadSeedFile(ctx, path, store, store))

	trucks, err := store.ListTrucks(ctx)
	require.NoError(t, err)
	assert.Equal(t, []Truck{
		{ID: 1, X: 0, Y: 0, Status: TruckLoading},
		{ID: 2, X: 10, Y: -3, Status: TruckIdle},
	}, trucks)

	shipments, err := store.ListShipmentsByTruck(ctx, 1)
	require.NoError(t, err)
	require.Len(t, shipments, 2)
	assert.Equal(t, ShipmentTruckDispatched, shipments[0].Status)
	assert.Equal(t, ShipmentCreated, shipments[1].Status)
}

func TestParseSeedRejectsDuplicateTrucks(t *testing.T) {
	t.Parallel()

	_, _, err := ParseSeed([]byte("[[trucks]]\nid = 1\n[[trucks]]\nid = 1\n"))
	assert.ErrorContains(t, err, "duplicate truck id 1")
}

func TestMemoryStoreNotFound(t *testing.T) {
	t.Parallel()

	store := CreateMemoryStore()
	_, err := store.GetTruck(context.Background(), 9)
	assert.ErrorIs(t, err, ErrTruckNotFound)

	_, err = store.GetShipment(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}
