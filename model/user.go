package model

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// UserEntity represents the user table entity
type UserEntity struct {
	ID                        uint64          `db:"id" json:"id"`
	Name                      string          `db:"name" json:"name"`
	Email                     string          `db:"email" json:"email"`
	AccountBalance            decimal.Decimal `db:"account_balance" json:"account_balance"`
	ClaimRedemptionNotifyHook sql.NullString  `db:"claim_redemption_notify_hook" json:"-"`
}

// HasClaimRedemptionNotifyHook reports whether the user opted in to redemption callbacks.
func (u *UserEntity) HasClaimRedemptionNotifyHook() bool {
	return u.ClaimRedemptionNotifyHook.Valid && u.ClaimRedemptionNotifyHook.String != ""
}
