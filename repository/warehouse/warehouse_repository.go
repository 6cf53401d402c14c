package warehouse

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type WarehouseRepository interface {
	GetEntryItemForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.WarehouseEntryItem, error)
	UpdateEntryItemTx(ctx context.Context, tx *sqlx.Tx, item *model.WarehouseEntryItem) error
	GetPrintableForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderItemPrintable, error)
	UpdatePrintableTx(ctx context.Context, tx *sqlx.Tx, printable *model.OrderItemPrintable) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewWarehouseRepository(conn *sqlx.DB) WarehouseRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetEntryItemForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.WarehouseEntryItem, error) {
	var item model.WarehouseEntryItem
	q := "SELECT id, warehouse_entry_id, order_item_printable_id, qa_passed FROM warehouse_entry_item WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &item, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *SQL) UpdateEntryItemTx(ctx context.Context, tx *sqlx.Tx, item *model.WarehouseEntryItem) error {
	_, err := tx.ExecContext(ctx, "UPDATE warehouse_entry_item SET qa_passed = ? WHERE id = ?", item.QAPassed, item.ID)
	return err
}

func (r *SQL) GetPrintableForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.OrderItemPrintable, error) {
	var printable model.OrderItemPrintable
	q := "SELECT id, ready_to_process FROM order_item_printable WHERE id = ? FOR UPDATE"
	if err := tx.GetContext(ctx, &printable, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &printable, nil
}

func (r *SQL) UpdatePrintableTx(ctx context.Context, tx *sqlx.Tx, printable *model.OrderItemPrintable) error {
	_, err := tx.ExecContext(ctx, "UPDATE order_item_printable SET ready_to_process = ? WHERE id = ?", printable.ReadyToProcess, printable.ID)
	return err
}
