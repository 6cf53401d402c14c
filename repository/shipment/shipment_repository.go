package shipment

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ShipmentRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, userID uint64, status constant.ShipmentStatus) (uint64, error)
	InsertContentTx(ctx context.Context, tx *sqlx.Tx, content *model.SKUInShipment) (uint64, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ShipmentRow, error)
	ListContentsTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) ([]*model.SKUInShipment, error)
	CountOrderItemInstancesTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (int64, error)
	ListWaitingContentsBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]model.WaitingContent, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, row *model.ShipmentRow) error
	UpdateContentTx(ctx context.Context, tx *sqlx.Tx, content *model.SKUInShipment) error
}

func NewShipmentRepository(conn *sqlx.DB) ShipmentRepository {
	return &SQL{conn: conn}
}

const (
	insertShipment        = "INSERT INTO shipment (user_id, status, total_cost) VALUES (?, ?, 0)"
	insertShipmentContent = "INSERT INTO sku_in_shipment (shipment_id, sku_id, quantity, waiting_for_stock_addition) VALUES (?, ?, ?, ?)"

	selectShipmentForUpdate = "SELECT id, user_id, status, total_cost, last_acted_at FROM shipment WHERE id = ? FOR UPDATE"
	selectContents          = "SELECT id, shipment_id, sku_id, quantity, waiting_for_stock_addition FROM sku_in_shipment WHERE shipment_id = ? ORDER BY id FOR UPDATE"
	countOrderItemInstances = "SELECT COUNT(*) FROM order_item_instance WHERE shipment_id = ?"

	// oldest first, so earlier shipments get arriving stock before later ones.
	// Lines of cancelled shipments keep their flag but are not in the backlog.
	selectWaitingBySKU = "SELECT c.id, c.shipment_id FROM sku_in_shipment c JOIN shipment s ON s.id = c.shipment_id " +
		"WHERE c.sku_id = ? AND c.waiting_for_stock_addition = TRUE AND LOWER(s.status) = ? ORDER BY c.id"

	updateShipment        = "UPDATE shipment SET status = ?, total_cost = ?, last_acted_at = ? WHERE id = ?"
	updateShipmentContent = "UPDATE sku_in_shipment SET quantity = ?, waiting_for_stock_addition = ? WHERE id = ?"
)

func (r *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, userID uint64, status constant.ShipmentStatus) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertShipment, userID, status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertContentTx(ctx context.Context, tx *sqlx.Tx, content *model.SKUInShipment) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertShipmentContent, content.ShipmentID, content.SKUID, content.Quantity, content.WaitingForStockAddition)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.ShipmentRow, error) {
	var row model.ShipmentRow
	if err := tx.GetContext(ctx, &row, selectShipmentForUpdate, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (r *SQL) ListContentsTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) ([]*model.SKUInShipment, error) {
	rows, err := tx.QueryxContext(ctx, selectContents, shipmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contents := make([]*model.SKUInShipment, 0)
	for rows.Next() {
		var c model.SKUInShipment
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		contents = append(contents, &c)
	}
	return contents, rows.Err()
}

func (r *SQL) CountOrderItemInstancesTx(ctx context.Context, tx *sqlx.Tx, shipmentID uint64) (int64, error) {
	var total int64
	if err := tx.GetContext(ctx, &total, countOrderItemInstances, shipmentID); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *SQL) ListWaitingContentsBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]model.WaitingContent, error) {
	waiting := make([]model.WaitingContent, 0)
	if err := tx.SelectContext(ctx, &waiting, selectWaitingBySKU, skuID, constant.ShipmentStatusWaitingForStockAddition); err != nil {
		return nil, err
	}
	return waiting, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, row *model.ShipmentRow) error {
	_, err := tx.ExecContext(ctx, updateShipment, row.Status, row.TotalCost, row.LastActedAt, row.ID)
	return err
}

func (r *SQL) UpdateContentTx(ctx context.Context, tx *sqlx.Tx, content *model.SKUInShipment) error {
	_, err := tx.ExecContext(ctx, updateShipmentContent, content.Quantity, content.WaitingForStockAddition, content.ID)
	return err
}
