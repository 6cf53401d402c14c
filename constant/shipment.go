package constant

import "strings"

type ShipmentStatus string

const (
	ShipmentStatusInQueue                 ShipmentStatus = "in-queue"
	ShipmentStatusPacked                  ShipmentStatus = "packed"
	ShipmentStatusInTransit               ShipmentStatus = "in-transit"
	ShipmentStatusDispatched              ShipmentStatus = "dispatched"
	ShipmentStatusDelivered               ShipmentStatus = "delivered"
	ShipmentStatusCancelled               ShipmentStatus = "cancelled"
	ShipmentStatusReturned                ShipmentStatus = "returned"
	ShipmentStatusWaitingForStockAddition ShipmentStatus = "waiting_for_stock_addition"
)

// ShipmentAllowedStatuses are the statuses callers may request.
var ShipmentAllowedStatuses = []ShipmentStatus{
	ShipmentStatusInQueue,
	ShipmentStatusPacked,
	ShipmentStatusInTransit,
	ShipmentStatusDispatched,
	ShipmentStatusDelivered,
	ShipmentStatusCancelled,
	ShipmentStatusReturned,
}

// ShipmentInternalStatuses are written by the system itself and skip transition rules.
var ShipmentInternalStatuses = []ShipmentStatus{
	ShipmentStatusWaitingForStockAddition,
}

func (s ShipmentStatus) IsAllowed() bool {
	for _, st := range ShipmentAllowedStatuses {
		if s == st {
			return true
		}
	}
	return false
}

func (s ShipmentStatus) IsInternal() bool {
	for _, st := range ShipmentInternalStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// Normalize lower-cases a stored status so legacy rows compare equal.
func (s ShipmentStatus) Normalize() ShipmentStatus {
	return ShipmentStatus(strings.ToLower(string(s)))
}

// IsQueued reports the in-queue/packed group.
func (s ShipmentStatus) IsQueued() bool {
	return s == ShipmentStatusInQueue || s == ShipmentStatusPacked
}

// IsInTransit reports the in-transit/dispatched group.
func (s ShipmentStatus) IsInTransit() bool {
	return s == ShipmentStatusInTransit || s == ShipmentStatusDispatched
}

// HasLeftWarehouse reports statuses where the goods were physically picked.
func (s ShipmentStatus) HasLeftWarehouse() bool {
	return s.IsInTransit() || s == ShipmentStatusDelivered || s == ShipmentStatusReturned
}
