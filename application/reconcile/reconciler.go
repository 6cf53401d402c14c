// Package reconcile turns the events accumulated during a transaction into
// counter updates, ledger rows, alerts and notifications, right before commit.
package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/fulfillment/application/accumulator"
	"github.com/muhammadheryan/fulfillment/application/inventory"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Unit is the transaction being committed.
type Unit interface {
	Events() *accumulator.Accumulator
	Ledger() *inventory.Ledger
	Now() time.Time

	SKU(ctx context.Context, id uint64) (*model.SKU, error)
	User(ctx context.Context, id uint64) (*model.UserEntity, error)
	Campaign(ctx context.Context, id uint64) (*model.Campaign, error)
	OrderItemPrintable(ctx context.Context, id uint64) (*model.OrderItemPrintable, error)
	CampaignSlotInstances(ctx context.Context, skuID uint64) ([]*model.SKUInCampaignSlot, error)

	SetShipmentStatus(s *model.Shipment, status constant.ShipmentStatus) error
	SetCampaignActive(ctx context.Context, c *model.Campaign, active bool) error

	SaveDeduction(ctx context.Context, d *model.ShipmentDeduction) error
	SaveRefund(ctx context.Context, r *model.ShipmentRefund) error
	SaveNotifications(ctx context.Context, notifications []*model.Notification) error
	SaveAlerts(ctx context.Context, alerts []model.Alert) error

	AfterCommit(fn func(ctx context.Context))
}

// DeliveryNotifier builds notifications for delivered shipments without persisting them.
type DeliveryNotifier interface {
	BuildAllFromShipments(shipments []*model.Shipment) ([]*model.Notification, error)
}

// RedemptionNotifier builds notifications for redeemed claims without persisting them.
type RedemptionNotifier interface {
	BuildAllFromClaims(claims []*model.Claim) ([]*model.Notification, error)
}

// RedemptionHook calls out to a user who opted in to redemption callbacks.
type RedemptionHook interface {
	PostClaimRedemption(ctx context.Context, claim *model.Claim, user *model.UserEntity) error
}

type Reconciler struct {
	deliveries  DeliveryNotifier
	redemptions RedemptionNotifier
	hook        RedemptionHook
}

func New(deliveries DeliveryNotifier, redemptions RedemptionNotifier, hook RedemptionHook) *Reconciler {
	return &Reconciler{deliveries: deliveries, redemptions: redemptions, hook: hook}
}

// Reconcile drains every bucket of u's accumulator. Any error aborts the commit.
func (r *Reconciler) Reconcile(ctx context.Context, u Unit) error {
	events := u.Events()

	r.stampStatusChanges(u)

	if err := r.applyCostChanges(ctx, u); err != nil {
		return fmt.Errorf("apply cost changes: %w", err)
	}

	for _, qa := range accumulator.Drain(events, accumulator.ReadyToProcess) {
		printable, err := u.OrderItemPrintable(ctx, qa.Item.OrderItemPrintableID)
		if err != nil {
			return fmt.Errorf("load order item printable %d: %w", qa.Item.OrderItemPrintableID, err)
		}
		printable.ReadyToProcess += qa.Delta
	}

	notifications, err := r.buildNotifications(ctx, u)
	if err != nil {
		return err
	}

	if err := r.scheduleNewContents(ctx, u); err != nil {
		return fmt.Errorf("schedule new contents: %w", err)
	}
	// contents parked for stock change their shipment's status
	r.stampStatusChanges(u)

	if len(notifications) > 0 {
		if err := u.SaveNotifications(ctx, notifications); err != nil {
			return fmt.Errorf("save notifications: %w", err)
		}
	}

	var alerts []model.Alert
	for {
		shipment, ok := accumulator.Pop(events, accumulator.PendingReturn)
		if !ok {
			break
		}
		alerts = append(alerts, &model.ShipmentReturnedAlert{ShipmentID: shipment.ID, UserID: shipment.UserID})
	}
	for {
		sku, ok := accumulator.Pop(events, accumulator.OutOfStock)
		if !ok {
			break
		}
		alerts = append(alerts, &model.OutOfStockAlert{SKUID: sku.ID, UserID: sku.UserID})
		if err := r.deactivateStarvedCampaign(ctx, u, sku); err != nil {
			return fmt.Errorf("deactivate campaigns for sku %d: %w", sku.ID, err)
		}
	}
	if len(alerts) > 0 {
		if err := u.SaveAlerts(ctx, alerts); err != nil {
			return fmt.Errorf("save alerts: %w", err)
		}
	}
	return nil
}

func (r *Reconciler) stampStatusChanges(u Unit) {
	now := u.Now()
	for _, s := range accumulator.Drain(u.Events(), accumulator.StatusChanged) {
		stamp := now
		s.LastActedAt = &stamp
	}
}

func (r *Reconciler) applyCostChanges(ctx context.Context, u Unit) error {
	for _, change := range accumulator.Drain(u.Events(), accumulator.CostChanges) {
		if change.Amount.IsZero() {
			continue
		}
		shipment := change.Shipment
		user, err := u.User(ctx, shipment.UserID)
		if err != nil {
			return err
		}
		user.AccountBalance = user.AccountBalance.Add(change.Amount)

		if change.Amount.IsNegative() {
			err = u.SaveDeduction(ctx, model.BuildShipmentDeduction(change.Amount, shipment.ID, shipment.UserID))
		} else {
			err = u.SaveRefund(ctx, model.BuildShipmentRefund(change.Amount, shipment.ID, shipment.UserID))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) buildNotifications(ctx context.Context, u Unit) ([]*model.Notification, error) {
	var notifications []*model.Notification

	if delivered := accumulator.Drain(u.Events(), accumulator.PendingDelivery); len(delivered) > 0 {
		built, err := r.deliveries.BuildAllFromShipments(delivered)
		if err != nil {
			return nil, fmt.Errorf("build delivery notifications: %w", err)
		}
		notifications = append(notifications, built...)
	}

	if claims := accumulator.Drain(u.Events(), accumulator.ClaimsRedeemed); len(claims) > 0 {
		built, err := r.redemptions.BuildAllFromClaims(claims)
		if err != nil {
			return nil, fmt.Errorf("build redemption notifications: %w", err)
		}
		notifications = append(notifications, built...)
		for _, claim := range claims {
			r.schedulePostRedemption(ctx, u, claim)
		}
	}
	return notifications, nil
}

// schedulePostRedemption is best-effort: nothing here may fail the commit.
func (r *Reconciler) schedulePostRedemption(ctx context.Context, u Unit, claim *model.Claim) {
	if r.hook == nil {
		return
	}
	user, err := u.User(ctx, claim.UserID)
	if err != nil {
		logger.Warn("[Reconcile] load claim user", zap.Uint64("claim_id", claim.ID), zap.String("error", err.Error()))
		return
	}
	if !user.HasClaimRedemptionNotifyHook() {
		return
	}
	hookUser := *user
	u.AfterCommit(func(ctx context.Context) {
		if err := r.hook.PostClaimRedemption(ctx, claim, &hookUser); err != nil {
			logger.Warn("[Reconcile] post claim redemption", zap.Uint64("claim_id", claim.ID), zap.String("error", err.Error()))
		}
	})
}

// scheduleNewContents reserves stock for freshly linked SKUs, or parks them
// in the stock-addition backlog when nothing is available.
func (r *Reconciler) scheduleNewContents(ctx context.Context, u Unit) error {
	ledger := u.Ledger()
	for _, link := range accumulator.Drain(u.Events(), accumulator.NewContents) {
		shipment := link.Shipment
		if shipment != nil && shipment.OrderItemInstances > 0 {
			continue
		}
		sku := link.SKU
		if sku == nil {
			var err error
			if sku, err = u.SKU(ctx, link.SKUID); err != nil {
				return err
			}
			link.SKU = sku
		}
		if sku.AvailableStock() > 0 {
			ledger.Reserve(sku, link.Quantity)
			continue
		}
		ledger.QueueForStockAddition(sku, link.Quantity)
		link.WaitingForStockAddition = true
		if shipment != nil {
			if err := u.SetShipmentStatus(shipment, constant.ShipmentStatusWaitingForStockAddition); err != nil {
				return err
			}
		}
	}
	return nil
}

// deactivateStarvedCampaign turns off the first active campaign whose slot
// has no other SKU left in stock.
func (r *Reconciler) deactivateStarvedCampaign(ctx context.Context, u Unit, sku *model.SKU) error {
	instances, err := u.CampaignSlotInstances(ctx, sku.ID)
	if err != nil {
		return err
	}
	for _, inst := range instances {
		campaign, err := u.Campaign(ctx, inst.CampaignID)
		if err != nil {
			return err
		}
		if !campaign.Active() {
			continue
		}
		slot := campaign.Slot(inst.CampaignSlotID)
		if slot == nil {
			continue
		}
		starved := true
		for _, other := range slot.SKUs {
			if other.ID != sku.ID && other.AvailableStock() > 0 {
				starved = false
				break
			}
		}
		if !starved {
			continue
		}
		if err := u.SetCampaignActive(ctx, campaign, false); err != nil {
			return err
		}
		campaign.ActivateOnStockArrival = true
		logger.Info("[Reconcile] campaign deactivated on stock-out", zap.Uint64("campaign_id", campaign.ID), zap.Uint64("sku_id", sku.ID))
		break
	}
	return nil
}
