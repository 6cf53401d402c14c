package alert

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AlertRepository interface {
	InsertShipmentReturnedTx(ctx context.Context, tx *sqlx.Tx, a *model.ShipmentReturnedAlert) error
	InsertOutOfStockTx(ctx context.Context, tx *sqlx.Tx, a *model.OutOfStockAlert) error
}

func NewAlertRepository(conn *sqlx.DB) AlertRepository {
	return &SQL{conn: conn}
}

func (s *SQL) InsertShipmentReturnedTx(ctx context.Context, tx *sqlx.Tx, a *model.ShipmentReturnedAlert) error {
	res, err := tx.NamedExecContext(ctx, "INSERT INTO shipment_returned_alert (shipment_id, user_id) VALUES (:shipment_id, :user_id)", a)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

func (s *SQL) InsertOutOfStockTx(ctx context.Context, tx *sqlx.Tx, a *model.OutOfStockAlert) error {
	res, err := tx.NamedExecContext(ctx, "INSERT INTO out_of_stock_alert (sku_id, user_id) VALUES (:sku_id, :user_id)", a)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}
