package model

// Claim is a redeemable reward held by a customer for a campaign.
type Claim struct {
	ID             uint64 `db:"id"`
	UserID         uint64 `db:"user_id"`
	CampaignID     uint64 `db:"campaign_id"`
	Converted      bool   `db:"converted"`
	CustomerOnHold bool   `db:"customer_on_hold"`
}

type ClaimDetail struct {
	ID             uint64 `json:"id"`
	CampaignID     uint64 `json:"campaign_id"`
	Converted      bool   `json:"converted"`
	CustomerOnHold bool   `json:"customer_on_hold"`
}

func NewClaimDetail(c *Claim) *ClaimDetail {
	return &ClaimDetail{
		ID:             c.ID,
		CampaignID:     c.CampaignID,
		Converted:      c.Converted,
		CustomerOnHold: c.CustomerOnHold,
	}
}
