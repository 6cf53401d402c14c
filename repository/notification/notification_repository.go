package notification

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/model"
)

type SQL struct {
	conn *sqlx.DB
}

type NotificationRepository interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, n *model.Notification) error
}

func NewNotificationRepository(conn *sqlx.DB) NotificationRepository {
	return &SQL{conn: conn}
}

const insertNotification = `INSERT INTO notification (uuid, user_id, kind, shipment_id, claim_id, message, created_at)
VALUES (:uuid, :user_id, :kind, :shipment_id, :claim_id, :message, :created_at)`

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, n *model.Notification) error {
	res, err := tx.NamedExecContext(ctx, insertNotification, n)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)
	return nil
}
