package fleet

import (
	"context"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type seedFile struct {
	Trucks    []seedTruck    `toml:"trucks"`
	Shipments []seedShipment `toml:"shipments"`
}

type seedTruck struct {
	ID     int32  `toml:"id"`
	X      int32  `toml:"x"`
	Y      int32  `toml:"y"`
	Status string `toml:"status"`
}

type seedShipment struct {
	ID         int64  `toml:"id"`
	ShipmentID string `toml:"shipment_id"`
	TruckID    int32  `toml:"truck_id"`
	Status     string `toml:"status"`
}

// ParseSeed reads a TOML fleet description:
//
//	[[trucks]]
//	id = 1
//	x = 0
//	y = 0
//
//	[[shipments]]
//	id = 1
//	shipment_id = "1001"
//	truck_id = 1
func ParseSeed(data []byte) ([]Truck, []Shipment, error) {
	var f seedFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("parse fleet seed: %w", err)
	}

	seen := map[int32]bool{}
	trucks := make([]Truck, 0, len(f.Trucks))
	for _, t := range f.Trucks {
		if seen[t.ID] {
			return nil, nil, fmt.Errorf("fleet seed: duplicate truck id %d", t.ID)
		}
		seen[t.ID] = true

		status := TruckStatus(t.Status)
		if status == "" {
			status = TruckIdle
		}
		trucks = append(trucks, Truck{ID: t.ID, X: t.X, Y: t.Y, Status: status})
	}

	shipments := make([]Shipment, 0, len(f.Shipments))
	for _, s := range f.Shipments {
		if s.ShipmentID == "" {
			return nil, nil, fmt.Errorf("fleet seed: shipment %d has no shipment_id", s.ID)
		}
		status := ShipmentStatus(s.Status)
		if status == "" {
			status = ShipmentCreated
		}
		shipments = append(shipments, Shipment{ID: s.ID, ShipmentID: s.ShipmentID, TruckID: s.TruckID, Status: status})
	}

	return trucks, shipments, nil
}

// LoadSeedFile parses path and saves its contents into the stores.
func LoadSeedFile(ctx context.Context, path string, trucks TruckStore, shipments ShipmentStore) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read fleet seed: %w", err)
	}

	seedTrucks, seedShipments, err := ParseSeed(data)
	if err != nil {
		return err
	}

	for _, t := range seedTrucks {
		if err := trucks.SaveTruck(ctx, t); err != nil {
			return err
		}
	}
	for _, s := range seedShipments {
		if err := shipments.SaveShipment(ctx, s); err != nil {
			return err
		}
	}
	return nil
}
