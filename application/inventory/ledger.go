// Package inventory owns the SKU counters: stock_in_inventory, to_be_shipped
// and the to_be_shipped_on_stock_addition backlog.
package inventory

import (
	"database/sql"

	"github.com/muhammadheryan/fulfillment/application/accumulator"
	"github.com/muhammadheryan/fulfillment/model"
)

// Ledger applies the counter deltas implied by fulfillment events and queues
// out-of-stock signals on the transaction's accumulator.
type Ledger struct {
	events *accumulator.Accumulator
}

func NewLedger(events *accumulator.Accumulator) *Ledger {
	return &Ledger{events: events}
}

// Reserve promises qty units to a shipment.
func (l *Ledger) Reserve(sku *model.SKU, qty int64) {
	l.setToBeShipped(sku, sku.ToBeShipped+qty)
}

// ReleaseReservation un-promises qty units without touching physical stock.
func (l *Ledger) ReleaseReservation(sku *model.SKU, qty int64) {
	l.setToBeShipped(sku, sku.ToBeShipped-qty)
}

// Ship removes qty units from both the reservation and physical stock.
func (l *Ledger) Ship(sku *model.SKU, qty int64) {
	l.setToBeShipped(sku, sku.ToBeShipped-qty)
	l.setStock(sku, sku.StockInInventory-qty)
}

// Restock puts qty shipped units back on the shelf and re-reserves them.
func (l *Ledger) Restock(sku *model.SKU, qty int64) {
	l.setToBeShipped(sku, sku.ToBeShipped+qty)
	l.setStock(sku, sku.StockInInventory+qty)
}

// ReturnStock adds returned units back to physical stock.
func (l *Ledger) ReturnStock(sku *model.SKU, qty int64) {
	l.setStock(sku, sku.StockInInventory+qty)
}

// ConsumeStock depletes physical stock.
func (l *Ledger) ConsumeStock(sku *model.SKU, qty int64) {
	l.setStock(sku, sku.StockInInventory-qty)
}

// ReceiveStock records a stock arrival.
func (l *Ledger) ReceiveStock(sku *model.SKU, qty int64) {
	l.setStock(sku, sku.StockInInventory+qty)
}

// QueueForStockAddition parks qty units in the backlog until stock arrives.
func (l *Ledger) QueueForStockAddition(sku *model.SKU, qty int64) {
	sku.ToBeShippedOnStockAddition = sql.NullInt64{
		Int64: sku.ToBeShippedOnStockAddition.Int64 + qty,
		Valid: true,
	}
}

// DropFromBacklog forgets qty backlog units, e.g. when their shipment is cancelled.
func (l *Ledger) DropFromBacklog(sku *model.SKU, qty int64) {
	backlog := sku.ToBeShippedOnStockAddition.Int64 - qty
	if backlog < 0 {
		backlog = 0
	}
	sku.ToBeShippedOnStockAddition = sql.NullInt64{Int64: backlog, Valid: true}
}

// PromoteFromBacklog moves qty units from the backlog into the reservation.
func (l *Ledger) PromoteFromBacklog(sku *model.SKU, qty int64) {
	l.DropFromBacklog(sku, qty)
	l.Reserve(sku, qty)
}

// setToBeShipped flags the SKU when the new reservation consumes all remaining stock.
func (l *Ledger) setToBeShipped(sku *model.SKU, value int64) {
	if observed(sku) && sku.StockInInventory != 0 && value != 0 && sku.StockInInventory-value <= 0 {
		accumulator.Add(l.events, accumulator.OutOfStock, sku)
	}
	sku.ToBeShipped = value
}

// setStock flags the SKU when a decrement drives positive stock to zero or below.
func (l *Ledger) setStock(sku *model.SKU, value int64) {
	if observed(sku) && sku.StockInInventory > 0 && value < sku.StockInInventory && value <= 0 {
		accumulator.Add(l.events, accumulator.OutOfStock, sku)
	}
	sku.StockInInventory = value
}

func observed(sku *model.SKU) bool {
	return sku.Kind.IsKnown()
}
