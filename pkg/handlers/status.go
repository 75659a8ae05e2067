package handlers

import "github.com/Jaydccq/mini-ups-sub002/pkg/fleet"

var simulatorTruckStatuses = map[string]fleet.TruckStatus{
	"idle":             fleet.TruckIdle,
	"traveling":        fleet.TruckEnRoute,
	"arrive warehouse": fleet.TruckAtWarehouse,
	"loading":          fleet.TruckLoading,
	"delivering":       fleet.TruckDelivering,
}

// MapTruckStatus translates the simulator's status text. The match is exact;
// ok is false for any text outside the table.
func MapTruckStatus(raw string) (status fleet.TruckStatus, ok bool) {
	status, ok = simulatorTruckStatuses[raw]
	return status, ok
}
