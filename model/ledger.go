package model

import "github.com/shopspring/decimal"

// ShipmentDeduction records a charge against the shipment owner. Amount is negative.
type ShipmentDeduction struct {
	ID         uint64          `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	ShipmentID uint64          `db:"shipment_id"`
	UserID     uint64          `db:"user_id"`
}

// ShipmentRefund records a credit to the shipment owner. Amount is positive.
type ShipmentRefund struct {
	ID         uint64          `db:"id"`
	Amount     decimal.Decimal `db:"amount"`
	ShipmentID uint64          `db:"shipment_id"`
	UserID     uint64          `db:"user_id"`
}

func BuildShipmentDeduction(amount decimal.Decimal, shipmentID, userID uint64) *ShipmentDeduction {
	return &ShipmentDeduction{Amount: amount, ShipmentID: shipmentID, UserID: userID}
}

func BuildShipmentRefund(amount decimal.Decimal, shipmentID, userID uint64) *ShipmentRefund {
	return &ShipmentRefund{Amount: amount, ShipmentID: shipmentID, UserID: userID}
}
