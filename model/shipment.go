package model

import (
	"time"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/shopspring/decimal"
)

// StatusTransition decides the status actually stored when a caller requests `to`.
// It may veto by returning a different status, or reject the write with an error.
type StatusTransition func(s *Shipment, from, to constant.ShipmentStatus) (constant.ShipmentStatus, error)

// Shipment is a fulfillment unit. Its status is only writable through SetStatus.
type Shipment struct {
	ID          uint64
	UserID      uint64
	TotalCost   decimal.Decimal
	LastActedAt *time.Time
	// OrderItemInstances counts order-item instances already materialized for this shipment.
	OrderItemInstances int64
	Contents           []*SKUInShipment

	status constant.ShipmentStatus
}

func NewShipment(id, userID uint64, status constant.ShipmentStatus) *Shipment {
	return &Shipment{ID: id, UserID: userID, status: status}
}

func (s *Shipment) Status() constant.ShipmentStatus {
	return s.status
}

// SetStatus runs the requested status through transition and stores the effective value.
func (s *Shipment) SetStatus(to constant.ShipmentStatus, transition StatusTransition) error {
	effective, err := transition(s, s.status, to)
	if err != nil {
		return err
	}
	s.status = effective
	return nil
}

// HasWaitingContents reports whether any line still waits for stock.
func (s *Shipment) HasWaitingContents() bool {
	for _, c := range s.Contents {
		if c.WaitingForStockAddition {
			return true
		}
	}
	return false
}

// SKUInShipment links a shipment to a SKU with a quantity.
type SKUInShipment struct {
	ID                      uint64 `db:"id"`
	ShipmentID              uint64 `db:"shipment_id"`
	SKUID                   uint64 `db:"sku_id"`
	Quantity                int64  `db:"quantity"`
	WaitingForStockAddition bool   `db:"waiting_for_stock_addition"`

	Shipment *Shipment `db:"-"`
	SKU      *SKU      `db:"-"`
}

// ShipmentRow is the flat persisted form of a shipment.
type ShipmentRow struct {
	ID          uint64                  `db:"id"`
	UserID      uint64                  `db:"user_id"`
	Status      constant.ShipmentStatus `db:"status"`
	TotalCost   decimal.Decimal         `db:"total_cost"`
	LastActedAt *time.Time              `db:"last_acted_at"`
}

// WaitingContent identifies a content line queued for stock arrival.
type WaitingContent struct {
	ID         uint64 `db:"id"`
	ShipmentID uint64 `db:"shipment_id"`
}

type ShipmentLineRequest struct {
	SKUID    uint64 `json:"sku_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

type CreateShipmentRequest struct {
	UserID    uint64                `json:"user_id" validate:"required"`
	TotalCost decimal.Decimal       `json:"total_cost" validate:"gte=0"`
	Lines     []ShipmentLineRequest `json:"lines" validate:"required,min=1,dive"`
}

type UpdateShipmentStatusRequest struct {
	Status constant.ShipmentStatus `json:"status" validate:"required"`
}

type UpdateShipmentCostRequest struct {
	TotalCost decimal.Decimal `json:"total_cost" validate:"gte=0"`
}

type ShipmentLineDetail struct {
	SKUID                   uint64 `json:"sku_id"`
	Quantity                int64  `json:"quantity"`
	WaitingForStockAddition bool   `json:"waiting_for_stock_addition"`
}

type ShipmentDetail struct {
	ID          uint64                  `json:"id"`
	UserID      uint64                  `json:"user_id"`
	Status      constant.ShipmentStatus `json:"status"`
	TotalCost   decimal.Decimal         `json:"total_cost"`
	LastActedAt *time.Time              `json:"last_acted_at,omitempty"`
	Lines       []ShipmentLineDetail    `json:"lines"`
}

func NewShipmentDetail(s *Shipment) *ShipmentDetail {
	lines := make([]ShipmentLineDetail, 0, len(s.Contents))
	for _, c := range s.Contents {
		lines = append(lines, ShipmentLineDetail{
			SKUID:                   c.SKUID,
			Quantity:                c.Quantity,
			WaitingForStockAddition: c.WaitingForStockAddition,
		})
	}
	return &ShipmentDetail{
		ID:          s.ID,
		UserID:      s.UserID,
		Status:      s.Status(),
		TotalCost:   s.TotalCost,
		LastActedAt: s.LastActedAt,
		Lines:       lines,
	}
}
