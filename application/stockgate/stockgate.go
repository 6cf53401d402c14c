// Package stockgate decides whether a campaign may go live given the stock
// behind each of its slots.
package stockgate

import (
	"context"

	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

// Effects are the transactional side effects of a successful activation.
type Effects interface {
	ReleaseClaimsOnHold(ctx context.Context, campaignID uint64) error
	AfterCommit(fn func(ctx context.Context))
}

// Mailer announces an activated campaign. Delivery is fire-and-forget.
type Mailer interface {
	SendActivationMails(ctx context.Context, c *model.Campaign) error
}

type Gate struct {
	mailer Mailer
}

func New(mailer Mailer) *Gate {
	return &Gate{mailer: mailer}
}

// HasSufficientStock reports whether every slot has at least one SKU with available stock.
func HasSufficientStock(c *model.Campaign) bool {
	for _, slot := range c.Slots {
		inStock := false
		for _, sku := range slot.SKUs {
			if sku.AvailableStock() > 0 {
				inStock = true
				break
			}
		}
		if !inStock {
			return false
		}
	}
	return true
}

// Evaluate returns the active value to store. An activation without stock is
// vetoed and leaves the campaign flagged for retry on stock arrival.
func (g *Gate) Evaluate(ctx context.Context, fx Effects, c *model.Campaign, active bool) (bool, error) {
	if !active {
		return false, nil
	}
	if !HasSufficientStock(c) {
		c.ActivateOnStockArrival = true
		return false, nil
	}

	if err := fx.ReleaseClaimsOnHold(ctx, c.ID); err != nil {
		return false, err
	}
	c.ActivateOnStockArrival = false

	if g.mailer != nil {
		fx.AfterCommit(func(ctx context.Context) {
			if err := g.mailer.SendActivationMails(ctx, c); err != nil {
				logger.Error("[StockGate] send activation mails", zap.Uint64("campaign_id", c.ID), zap.String("error", err.Error()))
			}
		})
	}
	return true, nil
}
