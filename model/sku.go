package model

import (
	"database/sql"

	"github.com/muhammadheryan/fulfillment/constant"
)

// SKU is a purchasable or producible item and its inventory counters.
// Counters are only changed through the inventory ledger.
type SKU struct {
	ID                         uint64           `db:"id"`
	UserID                     uint64           `db:"user_id"`
	Kind                       constant.SKUKind `db:"kind"`
	Name                       string           `db:"name"`
	StockInInventory           int64            `db:"stock_in_inventory"`
	ToBeShipped                int64            `db:"to_be_shipped"`
	ToBeShippedOnStockAddition sql.NullInt64    `db:"to_be_shipped_on_stock_addition"`
}

// AvailableStock is physical stock not yet promised to a shipment.
func (s *SKU) AvailableStock() int64 {
	return s.StockInInventory - s.ToBeShipped
}

type SKUDetail struct {
	ID                         uint64           `json:"id"`
	Name                       string           `json:"name"`
	Kind                       constant.SKUKind `json:"kind"`
	StockInInventory           int64            `json:"stock_in_inventory"`
	ToBeShipped                int64            `json:"to_be_shipped"`
	ToBeShippedOnStockAddition int64            `json:"to_be_shipped_on_stock_addition"`
	AvailableStock             int64            `json:"available_stock"`
}

func NewSKUDetail(s *SKU) *SKUDetail {
	return &SKUDetail{
		ID:                         s.ID,
		Name:                       s.Name,
		Kind:                       s.Kind,
		StockInInventory:           s.StockInInventory,
		ToBeShipped:                s.ToBeShipped,
		ToBeShippedOnStockAddition: s.ToBeShippedOnStockAddition.Int64,
		AvailableStock:             s.AvailableStock(),
	}
}

type ReceiveStockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}
