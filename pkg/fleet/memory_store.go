package fleet

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryStore is a process-local TruckStore and ShipmentStore.
type MemoryStore struct {
	mut_trucks sync.RWMutex
	trucks     map[int32]Truck

	mut_shipments sync.RWMutex
	shipments     map[string]Shipment
}

func CreateMemoryStore() *MemoryStore {
	return &MemoryStore{
		mut_trucks:    sync.RWMutex{},
		trucks:        make(map[int32]Truck),
		mut_shipments: sync.RWMutex{},
		shipments:     make(map[string]Shipment),
	}
}

func (s *MemoryStore) ListTrucks(ctx context.Context) ([]Truck, error) {
	s.mut_trucks.RLock()
	defer s.mut_trucks.RUnlock()

	trucks := make([]Truck, 0, len(s.trucks))
	for _, t := range s.trucks {
		trucks = append(trucks, t)
	}
	sort.Slice(trucks, func(i, j int) bool { return trucks[i].ID < trucks[j].ID })
	return trucks, nil
}

func (s *MemoryStore) GetTruck(ctx context.Context, id int32) (Truck, error) {
	s.mut_trucks.RLock()
	defer s.mut_trucks.RUnlock()

	t, has := s.trucks[id]
	if !has {
		return Truck{}, fmt.Errorf("truck %d: %w", id, ErrTruckNotFound)
	}
	return t, nil
}

func (s *MemoryStore) SaveTruck(ctx context.Context, truck Truck) error {
	s.mut_trucks.Lock()
	defer s.mut_trucks.Unlock()

	s.trucks[truck.ID] = truck
	return nil
}

func (s *MemoryStore) GetShipment(ctx context.Context, shipmentID string) (Shipment, error) {
	s.mut_shipments.RLock()
	defer s.mut_shipments.RUnlock()

	sh, has := s.shipments[shipmentID]
	if !has {
		return Shipment{}, fmt.Errorf("shipment %s: %w", shipmentID, ErrShipmentNotFound)
	}
	return sh, nil
}

func (s *MemoryStore) ListShipmentsByTruck(ctx context.Context, truckID int32) ([]Shipment, error) {
	s.mut_shipments.RLock()
	defer s.mut_shipments.RUnlock()

	shipments := []Shipment{}
	for _, sh := range s.shipments {
		if sh.TruckID == truckID {
			shipments = append(shipments, sh)
		}
	}
	sort.Slice(shipments, func(i, j int) bool { return shipments[i].ShipmentID < shipments[j].ShipmentID })
	return shipments, nil
}

func (s *MemoryStore) SaveShipment(ctx context.Context, shipment Shipment) error {
	s.mut_shipments.Lock()
	defer s.mut_shipments.Unlock()

	s.shipments[shipment.ShipmentID] = shipment
	return nil
}
