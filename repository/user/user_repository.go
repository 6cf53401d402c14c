package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type UserRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error)
	UpdateBalanceTx(ctx context.Context, tx *sqlx.Tx, id uint64, balance decimal.Decimal) error
}

func NewUserRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

const (
	selectUserForUpdate = `SELECT id, name, email, account_balance, claim_redemption_notify_hook FROM user WHERE id = ? FOR UPDATE`
	updateUserBalance   = `UPDATE user SET account_balance = ? WHERE id = ?`
)

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.UserEntity, error) {
	var user model.UserEntity
	if err := tx.GetContext(ctx, &user, selectUserForUpdate, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (s *SQL) UpdateBalanceTx(ctx context.Context, tx *sqlx.Tx, id uint64, balance decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, updateUserBalance, balance, id)
	return err
}
