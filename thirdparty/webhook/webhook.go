// Package webhook calls the endpoints users register to hear about claim redemptions.
package webhook

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/muhammadheryan/fulfillment/model"
)

type Client struct {
	client *resty.Client
}

type claimRedeemedPayload struct {
	Event      string    `json:"event"`
	ClaimID    uint64    `json:"claim_id"`
	CampaignID uint64    `json:"campaign_id"`
	UserID     uint64    `json:"user_id"`
	SentAt     time.Time `json:"sent_at"`
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		client: resty.New().
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
	}
}

// PostClaimRedemption posts the redeemed claim to the user's hook URL.
func (c *Client) PostClaimRedemption(ctx context.Context, claim *model.Claim, user *model.UserEntity) error {
	if !user.HasClaimRedemptionNotifyHook() {
		return nil
	}
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(claimRedeemedPayload{
			Event:      "claim.redeemed",
			ClaimID:    claim.ID,
			CampaignID: claim.CampaignID,
			UserID:     user.ID,
			SentAt:     time.Now().UTC(),
		}).
		Post(user.ClaimRedemptionNotifyHook.String)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("claim redemption hook returned status %d", resp.StatusCode())
	}
	return nil
}
