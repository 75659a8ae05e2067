// Package handlers applies simulator events to truck and shipment state and
// forwards the resulting milestones to Amazon.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Jaydccq/mini-ups-sub002/pkg/codec"
	"github.com/Jaydccq/mini-ups-sub002/pkg/fleet"
	"go.uber.org/zap"
)

type EventHandlerParams struct {
	Trucks    fleet.TruckStore
	Shipments fleet.ShipmentStore
	Notifier  fleet.AmazonNotifier

	GetNow func() time.Time

	Logger *zap.Logger
}

// EventHandler is the only writer of truck position and status. Every call
// completes its store writes before returning; failures are logged and the
// event is dropped.
type EventHandler struct {
	trucks    fleet.TruckStore
	shipments fleet.ShipmentStore
	notifier  fleet.AmazonNotifier
	getNow    func() time.Time

	log *zap.Logger
}

func CreateEventHandler(params EventHandlerParams) (*EventHandler, error) {
	if params.Trucks == nil || params.Shipments == nil {
		return nil, errors.New("event handler needs both a truck store and a shipment store")
	}

	logger := params.Logger
	if logger == nil {
		logger = zap.Must(zap.NewDevelopment())
	}

	notifier := params.Notifier
	if notifier == nil {
		notifier = CreateLoggingNotifier(logger)
	}

	getNow := params.GetNow
	if getNow == nil {
		getNow = time.Now
	}

	return &EventHandler{
		trucks:    params.Trucks,
		shipments: params.Shipments,
		notifier:  notifier,
		getNow:    getNow,
		log:       logger.With(zap.String("handler", "WorldEvents")),
	}, nil
}

func (h *EventHandler) OnTruckFinished(ctx context.Context, report codec.TruckReport) {
	h.applyTruckReport(ctx, report, "TruckFinished")
}

func (h *EventHandler) OnTruckStatus(ctx context.Context, report codec.TruckReport) {
	h.applyTruckReport(ctx, report, "TruckStatus")
}

func (h *EventHandler) applyTruckReport(ctx context.Context, report codec.TruckReport, event string) {
	log := h.log.With(zap.Int32("truckId", report.TruckID), zap.String("event", event))

	truck, err := h.trucks.GetTruck(ctx, report.TruckID)
	if err != nil {
		if errors.Is(err, fleet.ErrTruckNotFound) {
			log.Warn("Simulator reported unknown truck, ignoring")
		} else {
			log.Error("Failed to load truck", zap.Error(err))
		}
		return
	}

	truck.X = report.X
	truck.Y = report.Y

	status, known := MapTruckStatus(report.Status)
	if known {
		truck.Status = status
	} else {
		log.Warn("Unknown truck status from simulator, keeping previous status",
			zap.String("simulatorStatus", report.Status),
			zap.String("status", string(truck.Status)))
	}

	if err := h.trucks.SaveTruck(ctx, truck); err != nil {
		log.Error("Failed to save truck", zap.Error(err))
		return
	}

	log.Debug("Truck updated",
		zap.Int32("x", truck.X),
		zap.Int32("y", truck.Y),
		zap.String("status", string(truck.Status)))

	if known && status == fleet.TruckAtWarehouse {
		h.notifyArrival(ctx, truck, log)
	}
}

// notifyArrival tells Amazon about every shipment assigned to the truck. The
// simulator does not say which warehouse was reached, so shipments bound to
// other warehouses are notified as well.
func (h *EventHandler) notifyArrival(ctx context.Context, truck fleet.Truck, log *zap.Logger) {
	shipments, err := h.shipments.ListShipmentsByTruck(ctx, truck.ID)
	if err != nil {
		log.Error("Failed to list shipments for arrived truck", zap.Error(err))
		return
	}

	truckID := strconv.FormatInt(int64(truck.ID), 10)
	location := fmt.Sprintf("%d_%d", truck.X, truck.Y)
	for _, s := range shipments {
		if err := h.notifier.NotifyTruckArrived(ctx, truckID, location, s.ShipmentID); err != nil {
			log.Error("Failed to notify truck arrival",
				zap.String("shipmentId", s.ShipmentID),
				zap.String("location", location),
				zap.Error(err))
		}
	}
}

func (h *EventHandler) OnDeliveryMade(ctx context.Context, report codec.DeliveryReport) {
	shipmentID := strconv.FormatInt(report.PackageID, 10)
	log := h.log.With(
		zap.Int32("truckId", report.TruckID),
		zap.String("shipmentId", shipmentID),
		zap.String("event", "DeliveryMade"))

	shipment, err := h.shipments.GetShipment(ctx, shipmentID)
	if err != nil {
		if errors.Is(err, fleet.ErrShipmentNotFound) {
			log.Warn("Simulator delivered unknown shipment, ignoring")
		} else {
			log.Error("Failed to load shipment", zap.Error(err))
		}
		return
	}

	if shipment.Status == fleet.ShipmentDelivered {
		log.Info("Shipment already delivered, ignoring repeated delivery")
		return
	}

	now := h.getNow()
	shipment.Status = fleet.ShipmentDelivered
	shipment.ActualDelivery = &now
	if err := h.shipments.SaveShipment(ctx, shipment); err != nil {
		log.Error("Failed to save delivered shipment", zap.Error(err))
		return
	}
	log.Info("Shipment delivered")

	if err := h.notifier.NotifyShipmentDelivered(ctx, shipmentID); err != nil {
		log.Error("Failed to notify shipment delivery", zap.Error(err))
	}
}

func (h *EventHandler) OnError(ctx context.Context, report codec.ErrorReport, seqNum int64) {
	h.log.Warn("World simulator reported an error",
		zap.String("error", report.Message),
		zap.Int64("originSeqNum", report.OriginSeqNum),
		zap.Int64("seqNum", seqNum))
}
