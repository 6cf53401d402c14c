// Package statemachine governs shipment status writes and the inventory
// movements each transition implies.
package statemachine

import (
	"github.com/muhammadheryan/fulfillment/application/accumulator"
	"github.com/muhammadheryan/fulfillment/application/inventory"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
)

type Machine struct {
	ledger *inventory.Ledger
	events *accumulator.Accumulator
}

func New(ledger *inventory.Ledger, events *accumulator.Accumulator) *Machine {
	return &Machine{ledger: ledger, events: events}
}

// Transition returns the status to store when `to` is requested on a shipment
// currently in `from`. A veto substitutes another status and is not an error.
// The old status is compared case-insensitively, the new one exactly.
func (m *Machine) Transition(s *model.Shipment, from, to constant.ShipmentStatus) (constant.ShipmentStatus, error) {
	if to.IsInternal() {
		m.touch(s)
		return to, nil
	}
	if !to.IsAllowed() {
		return from, errors.SetCustomError(constant.ErrInvalidShipmentStatus)
	}

	old := from.Normalize()
	if old == to {
		return to, nil
	}
	// a shipment with parked lines stays waiting until stock arrives or it is cancelled
	if s.HasWaitingContents() && old != constant.ShipmentStatusCancelled && to != constant.ShipmentStatusCancelled {
		return old, nil
	}

	switch {
	case to.IsQueued():
		m.toQueued(s, old)
		if s.HasWaitingContents() {
			to = constant.ShipmentStatusWaitingForStockAddition
		}
	case to.IsInTransit():
		if old == constant.ShipmentStatusCancelled {
			return constant.ShipmentStatusCancelled, nil
		}
		m.toInTransit(s, old)
	case to == constant.ShipmentStatusDelivered:
		if old == constant.ShipmentStatusCancelled {
			return constant.ShipmentStatusCancelled, nil
		}
		m.toDelivered(s, old)
	case to == constant.ShipmentStatusCancelled:
		if old.HasLeftWarehouse() {
			return old, nil
		}
		m.cancel(s)
	case to == constant.ShipmentStatusReturned:
		if !old.IsInTransit() && old != constant.ShipmentStatusDelivered {
			return old, nil
		}
		m.toReturned(s, old)
	}

	m.touch(s)
	return to, nil
}

func (m *Machine) toQueued(s *model.Shipment, old constant.ShipmentStatus) {
	switch {
	case old == constant.ShipmentStatusCancelled:
		m.uncancel(s)
	case old.HasLeftWarehouse():
		if old == constant.ShipmentStatusReturned {
			m.reverseReturn(s)
		} else if old == constant.ShipmentStatusDelivered {
			accumulator.Remove(m.events, accumulator.PendingDelivery, s)
		}
		for _, c := range reserved(s) {
			m.ledger.Restock(c.SKU, c.Quantity)
		}
	}
}

func (m *Machine) toInTransit(s *model.Shipment, old constant.ShipmentStatus) {
	switch {
	case holdsReservation(old):
		m.ship(s)
	case old == constant.ShipmentStatusDelivered:
		accumulator.Remove(m.events, accumulator.PendingDelivery, s)
	case old == constant.ShipmentStatusReturned:
		m.reverseReturn(s)
	}
}

func (m *Machine) toDelivered(s *model.Shipment, old constant.ShipmentStatus) {
	switch {
	case holdsReservation(old):
		m.ship(s)
	case old == constant.ShipmentStatusReturned:
		m.reverseReturn(s)
	}
	accumulator.Add(m.events, accumulator.PendingDelivery, s)
}

func (m *Machine) toReturned(s *model.Shipment, old constant.ShipmentStatus) {
	if old != constant.ShipmentStatusReturned {
		accumulator.Add(m.events, accumulator.PendingReturn, s)
	}
	for _, c := range reserved(s) {
		m.ledger.ReturnStock(c.SKU, c.Quantity)
	}
}

// cancel releases what the shipment holds. Lines still parked in the
// stock-addition backlog never took a reservation and keep their flag, so
// un-cancelling parks them again.
func (m *Machine) cancel(s *model.Shipment) {
	for _, c := range s.Contents {
		if c.WaitingForStockAddition {
			m.ledger.DropFromBacklog(c.SKU, c.Quantity)
			continue
		}
		m.ledger.ReleaseReservation(c.SKU, c.Quantity)
	}
}

func (m *Machine) uncancel(s *model.Shipment) {
	for _, c := range s.Contents {
		if c.WaitingForStockAddition {
			m.ledger.QueueForStockAddition(c.SKU, c.Quantity)
			continue
		}
		m.ledger.Reserve(c.SKU, c.Quantity)
	}
}

func (m *Machine) ship(s *model.Shipment) {
	for _, c := range reserved(s) {
		m.ledger.Ship(c.SKU, c.Quantity)
	}
}

// reverseReturn undoes the restock done when the shipment was returned.
func (m *Machine) reverseReturn(s *model.Shipment) {
	accumulator.Remove(m.events, accumulator.PendingReturn, s)
	for _, c := range reserved(s) {
		m.ledger.ConsumeStock(c.SKU, c.Quantity)
	}
}

// holdsReservation reports statuses whose non-parked lines count in to_be_shipped.
func holdsReservation(status constant.ShipmentStatus) bool {
	return status.IsQueued() || status == constant.ShipmentStatusWaitingForStockAddition
}

// reserved lists the lines that took stock, skipping those parked for stock addition.
func reserved(s *model.Shipment) []*model.SKUInShipment {
	out := make([]*model.SKUInShipment, 0, len(s.Contents))
	for _, c := range s.Contents {
		if !c.WaitingForStockAddition {
			out = append(out, c)
		}
	}
	return out
}

func (m *Machine) touch(s *model.Shipment) {
	accumulator.Add(m.events, accumulator.StatusChanged, s)
}
