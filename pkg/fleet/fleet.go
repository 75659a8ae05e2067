// Package fleet models the trucks and shipments the world simulator moves,
// and the stores and notifier the simulator client writes through.
package fleet

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTruckNotFound    = errors.New("truck not found")
	ErrShipmentNotFound = errors.New("shipment not found")
)

type TruckStatus string

const (
	TruckIdle        TruckStatus = "IDLE"
	TruckEnRoute     TruckStatus = "EN_ROUTE"
	TruckAtWarehouse TruckStatus = "AT_WAREHOUSE"
	TruckLoading     TruckStatus = "LOADING"
	TruckDelivering  TruckStatus = "DELIVERING"
)

type ShipmentStatus string

const (
	ShipmentCreated         ShipmentStatus = "CREATED"
	ShipmentTruckDispatched ShipmentStatus = "TRUCK_DISPATCHED"
	ShipmentPickedUp        ShipmentStatus = "PICKED_UP"
	ShipmentInTransit       ShipmentStatus = "IN_TRANSIT"
	ShipmentOutForDelivery  ShipmentStatus = "OUT_FOR_DELIVERY"
	ShipmentDelivered       ShipmentStatus = "DELIVERED"
	ShipmentCancelled       ShipmentStatus = "CANCELLED"
	ShipmentException       ShipmentStatus = "EXCEPTION"
)

type Location struct {
	X int32
	Y int32
}

type Truck struct {
	ID     int32
	X      int32
	Y      int32
	Status TruckStatus
}

// Shipment is a package in transit. ShipmentID is the business identifier
// shared with Amazon; the simulator's package id is its decimal form.
type Shipment struct {
	ID             int64
	ShipmentID     string
	TruckID        int32
	Status         ShipmentStatus
	ActualDelivery *time.Time
}

type TruckStore interface {
	ListTrucks(ctx context.Context) ([]Truck, error)
	GetTruck(ctx context.Context, id int32) (Truck, error)
	SaveTruck(ctx context.Context, truck Truck) error
}

type ShipmentStore interface {
	GetShipment(ctx context.Context, shipmentID string) (Shipment, error)
	ListShipmentsByTruck(ctx context.Context, truckID int32) ([]Shipment, error)
	SaveShipment(ctx context.Context, shipment Shipment) error
}

// AmazonNotifier forwards truck and shipment milestones to the Amazon side.
type AmazonNotifier interface {
	NotifyTruckArrived(ctx context.Context, truckID string, warehouseLocation string, shipmentID string) error
	NotifyShipmentDelivered(ctx context.Context, shipmentID string) error
}
