// Package notification builds the user notifications raised by deliveries
// and claim redemptions. Builders never persist what they return.
package notification

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadheryan/fulfillment/model"
)

type Builder struct {
	now func() time.Time
}

func NewBuilder(location *time.Location) *Builder {
	if location == nil {
		location = time.UTC
	}
	return &Builder{now: func() time.Time { return time.Now().In(location) }}
}

func (b *Builder) BuildAllFromShipments(shipments []*model.Shipment) ([]*model.Notification, error) {
	out := make([]*model.Notification, 0, len(shipments))
	for _, s := range shipments {
		out = append(out, &model.Notification{
			UUID:       uuid.NewString(),
			UserID:     s.UserID,
			Kind:       model.NotificationShipmentDelivered,
			ShipmentID: sql.NullInt64{Int64: int64(s.ID), Valid: true},
			Message:    fmt.Sprintf("Shipment #%d has been delivered.", s.ID),
			CreatedAt:  b.now(),
		})
	}
	return out, nil
}

func (b *Builder) BuildAllFromClaims(claims []*model.Claim) ([]*model.Notification, error) {
	out := make([]*model.Notification, 0, len(claims))
	for _, c := range claims {
		out = append(out, &model.Notification{
			UUID:      uuid.NewString(),
			UserID:    c.UserID,
			Kind:      model.NotificationClaimRedeemed,
			ClaimID:   sql.NullInt64{Int64: int64(c.ID), Valid: true},
			Message:   fmt.Sprintf("Your claim #%d has been redeemed.", c.ID),
			CreatedAt: b.now(),
		})
	}
	return out, nil
}
