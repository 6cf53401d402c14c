package model

import (
	"database/sql"
	"time"
)

type NotificationKind string

const (
	NotificationShipmentDelivered NotificationKind = "shipment_delivered"
	NotificationClaimRedeemed     NotificationKind = "claim_redeemed"
)

type Notification struct {
	ID         uint64           `db:"id"`
	UUID       string           `db:"uuid"`
	UserID     uint64           `db:"user_id"`
	Kind       NotificationKind `db:"kind"`
	ShipmentID sql.NullInt64    `db:"shipment_id"`
	ClaimID    sql.NullInt64    `db:"claim_id"`
	Message    string           `db:"message"`
	CreatedAt  time.Time        `db:"created_at"`
}
