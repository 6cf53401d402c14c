package campaign

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

type CampaignRepository interface {
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CampaignRow, error)
	ListSlotsTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) ([]*model.CampaignSlot, error)
	ListSlotInstancesBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]*model.SKUInCampaignSlot, error)
	ListAwaitingStockIDs(ctx context.Context) ([]uint64, error)
	ListAwaitingStockIDsBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, row *model.CampaignRow) error
}

func NewCampaignRepository(conn *sqlx.DB) CampaignRepository {
	return &SQL{conn: conn}
}

const (
	selectCampaignForUpdate = `SELECT id, name, active, activate_on_stock_arrival FROM campaign WHERE id = ? FOR UPDATE`
	selectSlots             = `SELECT id, campaign_id, name FROM campaign_slot WHERE campaign_id = ? ORDER BY id`
	selectSlotMembers       = `SELECT id, campaign_id, campaign_slot_id, sku_id FROM sku_in_campaign_slot WHERE campaign_id = ? ORDER BY sku_id`
	selectInstancesBySKU    = `SELECT id, campaign_id, campaign_slot_id, sku_id FROM sku_in_campaign_slot WHERE sku_id = ? ORDER BY id`

	selectAwaitingStock = `SELECT id FROM campaign WHERE active = FALSE AND activate_on_stock_arrival = TRUE ORDER BY id`

	selectAwaitingStockBySKU = `SELECT DISTINCT c.id
FROM campaign c
JOIN sku_in_campaign_slot s ON s.campaign_id = c.id
WHERE s.sku_id = ? AND c.active = FALSE AND c.activate_on_stock_arrival = TRUE
ORDER BY c.id`

	updateCampaign = `UPDATE campaign SET active = ?, activate_on_stock_arrival = ? WHERE id = ?`
)

func (r *SQL) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.CampaignRow, error) {
	var row model.CampaignRow
	if err := tx.GetContext(ctx, &row, selectCampaignForUpdate, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// ListSlotsTx returns the campaign's slots with SKUIDs filled in ascending order.
func (r *SQL) ListSlotsTx(ctx context.Context, tx *sqlx.Tx, campaignID uint64) ([]*model.CampaignSlot, error) {
	slots := make([]*model.CampaignSlot, 0)
	if err := tx.SelectContext(ctx, &slots, selectSlots, campaignID); err != nil {
		return nil, err
	}

	members := make([]model.SKUInCampaignSlot, 0)
	if err := tx.SelectContext(ctx, &members, selectSlotMembers, campaignID); err != nil {
		return nil, err
	}

	byID := make(map[uint64]*model.CampaignSlot, len(slots))
	for _, slot := range slots {
		byID[slot.ID] = slot
	}
	for _, m := range members {
		if slot, ok := byID[m.CampaignSlotID]; ok {
			slot.SKUIDs = append(slot.SKUIDs, m.SKUID)
		}
	}
	return slots, nil
}

func (r *SQL) ListSlotInstancesBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]*model.SKUInCampaignSlot, error) {
	instances := make([]*model.SKUInCampaignSlot, 0)
	if err := tx.SelectContext(ctx, &instances, selectInstancesBySKU, skuID); err != nil {
		return nil, err
	}
	return instances, nil
}

func (r *SQL) ListAwaitingStockIDs(ctx context.Context) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := r.conn.SelectContext(ctx, &ids, selectAwaitingStock); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQL) ListAwaitingStockIDsBySKUTx(ctx context.Context, tx *sqlx.Tx, skuID uint64) ([]uint64, error) {
	ids := make([]uint64, 0)
	if err := tx.SelectContext(ctx, &ids, selectAwaitingStockBySKU, skuID); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, row *model.CampaignRow) error {
	_, err := tx.ExecContext(ctx, updateCampaign, row.Active, row.ActivateOnStockArrival, row.ID)
	return err
}
