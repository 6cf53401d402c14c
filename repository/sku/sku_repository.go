package sku

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

type SKURepository interface {
	GetByID(ctx context.Context, id uint64) (*model.SKU, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SKU, error)
	UpdateCountersTx(ctx context.Context, tx *sqlx.Tx, sku *model.SKU) error
}

func NewSKURepository(conn *sqlx.DB) SKURepository {
	return &SQL{conn: conn}
}

const (
	selectSKU = `SELECT id, user_id, kind, name, stock_in_inventory, to_be_shipped, to_be_shipped_on_stock_addition FROM sku WHERE id = ?`

	updateSKUCounters = `UPDATE sku SET stock_in_inventory = ?, to_be_shipped = ?, to_be_shipped_on_stock_addition = ? WHERE id = ?`
)

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.SKU, error) {
	var sku model.SKU
	if err := s.conn.GetContext(ctx, &sku, selectSKU, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sku, nil
}

func (s *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.SKU, error) {
	var sku model.SKU
	if err := tx.GetContext(ctx, &sku, selectSKU+" FOR UPDATE", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &sku, nil
}

func (s *SQL) UpdateCountersTx(ctx context.Context, tx *sqlx.Tx, sku *model.SKU) error {
	_, err := tx.ExecContext(ctx, updateSKUCounters, sku.StockInInventory, sku.ToBeShipped, sku.ToBeShippedOnStockAddition, sku.ID)
	return err
}
