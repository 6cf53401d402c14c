// Package restock handles stock arrival: it feeds parked shipment lines and
// retries campaigns that were waiting for stock.
package restock

import (
	"context"

	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	campaignrepo "github.com/muhammadheryan/fulfillment/repository/campaign"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

type RestockApp interface {
	ReceiveStock(ctx context.Context, skuID uint64, qty int64) (*model.SKUDetail, error)
	RetryPendingActivations(ctx context.Context) (int, error)
}

type restockAppImpl struct {
	uow          unitofwork.Runner
	campaignRepo campaignrepo.CampaignRepository
}

func NewRestockApp(uow unitofwork.Runner, campaignRepo campaignrepo.CampaignRepository) RestockApp {
	return &restockAppImpl{uow: uow, campaignRepo: campaignRepo}
}

func (s *restockAppImpl) ReceiveStock(ctx context.Context, skuID uint64, qty int64) (*model.SKUDetail, error) {
	if qty <= 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	var sku *model.SKU
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		// shipment rows are locked before SKU rows, the order UpdateStatus uses
		waiting, err := uow.WaitingContents(ctx, skuID)
		if err != nil {
			return err
		}
		shipmentIDs := make([]uint64, 0, len(waiting))
		for _, w := range waiting {
			shipmentIDs = append(shipmentIDs, w.ShipmentID)
		}
		shipments, err := uow.Shipments(ctx, shipmentIDs)
		if err != nil {
			return err
		}

		if sku, err = uow.SKU(ctx, skuID); err != nil {
			return err
		}
		uow.Ledger().ReceiveStock(sku, qty)

		if err := promoteWaiting(uow, sku, waiting, shipments); err != nil {
			return err
		}

		campaignIDs, err := uow.CampaignsAwaitingStock(ctx, skuID)
		if err != nil {
			return err
		}
		for _, id := range campaignIDs {
			campaign, err := uow.Campaign(ctx, id)
			if err != nil {
				return err
			}
			if err := uow.SetCampaignActive(ctx, campaign, true); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[ReceiveStock] unit of work", err)
	}

	return model.NewSKUDetail(sku), nil
}

// promoteWaiting moves parked lines of sku into the reservation, oldest first,
// while available stock covers them. Lines of a cancelled shipment hold no
// backlog and are left alone. A shipment with no parked line left goes back in queue.
func promoteWaiting(uow *unitofwork.Session, sku *model.SKU, waiting []model.WaitingContent, shipments map[uint64]*model.Shipment) error {
	for _, w := range waiting {
		if sku.AvailableStock() <= 0 {
			return nil
		}
		shipment := shipments[w.ShipmentID]
		if shipment == nil || shipment.Status().Normalize() != constant.ShipmentStatusWaitingForStockAddition {
			continue
		}
		content := findContent(shipment, w.ID)
		if content == nil || !content.WaitingForStockAddition || content.Quantity > sku.AvailableStock() {
			continue
		}

		uow.Ledger().PromoteFromBacklog(sku, content.Quantity)
		content.WaitingForStockAddition = false

		if !shipment.HasWaitingContents() {
			if err := uow.SetShipmentStatus(shipment, constant.ShipmentStatusInQueue); err != nil {
				return err
			}
		}
	}
	return nil
}

func findContent(shipment *model.Shipment, id uint64) *model.SKUInShipment {
	for _, c := range shipment.Contents {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// RetryPendingActivations retries every inactive campaign flagged for stock
// arrival, one transaction each, and returns how many went live.
func (s *restockAppImpl) RetryPendingActivations(ctx context.Context) (int, error) {
	ids, err := s.campaignRepo.ListAwaitingStockIDs(ctx)
	if err != nil {
		logger.Error("[RetryPendingActivations] list campaigns", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}

	activated := 0
	for _, id := range ids {
		var live bool
		err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
			campaign, err := uow.Campaign(ctx, id)
			if err != nil {
				return err
			}
			// another instance may have handled it since the listing
			if campaign.Active() || !campaign.ActivateOnStockArrival {
				return nil
			}
			if err := uow.SetCampaignActive(ctx, campaign, true); err != nil {
				return err
			}
			live = campaign.Active()
			return nil
		})
		if err != nil {
			logger.Error("[RetryPendingActivations] activate campaign", zap.Uint64("campaign_id", id), zap.String("error", err.Error()))
			continue
		}
		if live {
			activated++
		}
	}
	return activated, nil
}
