package campaign

import (
	"context"

	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

type CampaignApp interface {
	Activate(ctx context.Context, campaignID uint64) (*model.CampaignDetail, error)
	Deactivate(ctx context.Context, campaignID uint64) (*model.CampaignDetail, error)
}

type campaignAppImpl struct {
	uow unitofwork.Runner
}

func NewCampaignApp(uow unitofwork.Runner) CampaignApp {
	return &campaignAppImpl{uow: uow}
}

// Activate goes through the stock gate. Without stock the campaign stays
// inactive and is retried when stock arrives.
func (s *campaignAppImpl) Activate(ctx context.Context, campaignID uint64) (*model.CampaignDetail, error) {
	var campaign *model.Campaign
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if campaign, err = uow.Campaign(ctx, campaignID); err != nil {
			return err
		}
		return uow.SetCampaignActive(ctx, campaign, true)
	})
	if err != nil {
		return nil, errors.Normalize("[ActivateCampaign] unit of work", err)
	}

	if !campaign.Active() {
		logger.Info("[ActivateCampaign] insufficient stock, waiting for stock arrival", zap.Uint64("campaign_id", campaignID))
	}
	return model.NewCampaignDetail(campaign), nil
}

func (s *campaignAppImpl) Deactivate(ctx context.Context, campaignID uint64) (*model.CampaignDetail, error) {
	var campaign *model.Campaign
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if campaign, err = uow.Campaign(ctx, campaignID); err != nil {
			return err
		}
		if err := uow.SetCampaignActive(ctx, campaign, false); err != nil {
			return err
		}
		campaign.ActivateOnStockArrival = false
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[DeactivateCampaign] unit of work", err)
	}

	return model.NewCampaignDetail(campaign), nil
}
