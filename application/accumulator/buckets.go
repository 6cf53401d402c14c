package accumulator

import (
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
)

// CostChange is one write to a shipment's total cost. Amount is cost before minus cost after.
type CostChange struct {
	Shipment *model.Shipment
	Amount   decimal.Decimal
}

// QAPass is one increase (or correction) of a warehouse entry item's QA-passed count.
type QAPass struct {
	Item  *model.WarehouseEntryItem
	Delta int64
}

var (
	StatusChanged   = NewKey[*model.Shipment]("status_changed_shipments")
	OutOfStock      = NewKey[*model.SKU]("out_of_stock")
	ClaimsRedeemed  = NewKey[*model.Claim]("claims_redeemed")
	ReadyToProcess  = NewKey[*QAPass]("ready_to_process")
	CostChanges     = NewKey[*CostChange]("cost_changes")
	PendingDelivery = NewKey[*model.Shipment]("shipments_delivered")
	PendingReturn   = NewKey[*model.Shipment]("shipments_returned")
	NewContents     = NewKey[*model.SKUInShipment]("skus_to_be_shipped")
)
