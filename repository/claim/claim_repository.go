package claim

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ClaimRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Claim, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, claim *model.Claim) error
	ReleaseOnHoldTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) (int64, error)
}

func NewClaimRepository(conn *sqlx.DB) ClaimRepository {
	return &SQL{conn: conn}
}

const (
	selectClaimForUpdate = `SELECT id, user_id, campaign_id, converted, customer_on_hold FROM claim WHERE id = ? FOR UPDATE`
	updateClaim          = `UPDATE claim SET converted = ?, customer_on_hold = ? WHERE id = ?`
	releaseOnHold        = `UPDATE claim SET customer_on_hold = FALSE WHERE campaign_id = ? AND customer_on_hold = TRUE`
)

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Claim, error) {
	var claim model.Claim
	if err := tx.GetContext(ctx, &claim, selectClaimForUpdate, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, claim *model.Claim) error {
	_, err := tx.ExecContext(ctx, updateClaim, claim.Converted, claim.CustomerOnHold, claim.ID)
	return err
}

// ReleaseOnHoldTx clears the customer hold on every claim of the campaign and returns how many changed.
func (r *SQL) ReleaseOnHoldTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, releaseOnHold, campaignID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
