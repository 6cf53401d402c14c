package ledger

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

// LedgerRepository stores the balance movements caused by shipment cost changes.
type LedgerRepository interface {
	InsertDeductionTx(ctx context.Context, tx *sqlx.Tx, d *model.ShipmentDeduction) (uint64, error)
	InsertRefundTx(ctx context.Context, tx *sqlx.Tx, r *model.ShipmentRefund) (uint64, error)
}

func NewLedgerRepository(conn *sqlx.DB) LedgerRepository {
	return &SQL{conn: conn}
}

func (s *SQL) InsertDeductionTx(ctx context.Context, tx *sqlx.Tx, d *model.ShipmentDeduction) (uint64, error) {
	return insert(ctx, tx, "INSERT INTO shipment_deduction (amount, shipment_id, user_id) VALUES (?, ?, ?)", d.Amount, d.ShipmentID, d.UserID)
}

func (s *SQL) InsertRefundTx(ctx context.Context, tx *sqlx.Tx, r *model.ShipmentRefund) (uint64, error) {
	return insert(ctx, tx, "INSERT INTO shipment_refund (amount, shipment_id, user_id) VALUES (?, ?, ?)", r.Amount, r.ShipmentID, r.UserID)
}

func insert(ctx context.Context, tx *sqlx.Tx, query string, args ...any) (uint64, error) {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
