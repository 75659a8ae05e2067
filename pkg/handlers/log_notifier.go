package handlers

import (
	"context"

	"go.uber.org/zap"
)

// LoggingNotifier records Amazon notifications in the log instead of sending
// them anywhere. It stands in when no Amazon integration is wired.
type LoggingNotifier struct {
	log *zap.Logger
}

func CreateLoggingNotifier(logger *zap.Logger) *LoggingNotifier {
	return &LoggingNotifier{
		log: logger.With(zap.String("handler", "AmazonNotifier")),
	}
}

func (n *LoggingNotifier) NotifyTruckArrived(ctx context.Context, truckID string, warehouseLocation string, shipmentID string) error {
	n.log.Info("Truck arrived at warehouse",
		zap.String("truckId", truckID),
		zap.String("location", warehouseLocation),
		zap.String("shipmentId", shipmentID))
	return nil
}

func (n *LoggingNotifier) NotifyShipmentDelivered(ctx context.Context, shipmentID string) error {
	n.log.Info("Shipment delivered", zap.String("shipmentId", shipmentID))
	return nil
}
