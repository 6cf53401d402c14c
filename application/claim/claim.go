package claim

import (
	"context"

	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
)

type ClaimApp interface {
	Redeem(ctx context.Context, claimID uint64) (*model.ClaimDetail, error)
}

type claimAppImpl struct {
	uow unitofwork.Runner
}

func NewClaimApp(uow unitofwork.Runner) ClaimApp {
	return &claimAppImpl{uow: uow}
}

func (s *claimAppImpl) Redeem(ctx context.Context, claimID uint64) (*model.ClaimDetail, error) {
	var claim *model.Claim
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if claim, err = uow.Claim(ctx, claimID); err != nil {
			return err
		}
		if claim.Converted {
			return errors.SetCustomError(constant.ErrClaimAlreadyRedeemed)
		}
		uow.SetClaimConverted(claim, true)
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[RedeemClaim] unit of work", err)
	}

	return model.NewClaimDetail(claim), nil
}
