package model

// Alert is a user-facing warning row created during reconciliation.
type Alert interface {
	AlertUserID() uint64
}

type ShipmentReturnedAlert struct {
	ID         uint64 `db:"id"`
	ShipmentID uint64 `db:"shipment_id"`
	UserID     uint64 `db:"user_id"`
}

func (a *ShipmentReturnedAlert) AlertUserID() uint64 { return a.UserID }

type OutOfStockAlert struct {
	ID     uint64 `db:"id"`
	SKUID  uint64 `db:"sku_id"`
	UserID uint64 `db:"user_id"`
}

func (a *OutOfStockAlert) AlertUserID() uint64 { return a.UserID }
