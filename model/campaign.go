package model

// ActivationGate decides the stored value when a campaign's active flag is written.
type ActivationGate func(c *Campaign, active bool) (bool, error)

// Campaign is a promotion made of slots. Its active flag is only writable through SetActive.
type Campaign struct {
	ID                     uint64
	Name                   string
	ActivateOnStockArrival bool
	Slots                  []*CampaignSlot

	active bool
}

func NewCampaign(id uint64, name string, active, activateOnStockArrival bool) *Campaign {
	return &Campaign{ID: id, Name: name, active: active, ActivateOnStockArrival: activateOnStockArrival}
}

func (c *Campaign) Active() bool {
	return c.active
}

// SetActive runs the write through gate. Writing the current value is a no-op.
func (c *Campaign) SetActive(active bool, gate ActivationGate) error {
	if active == c.active {
		return nil
	}
	effective, err := gate(c, active)
	if err != nil {
		return err
	}
	c.active = effective
	return nil
}

// Slot finds a slot by id.
func (c *Campaign) Slot(id uint64) *CampaignSlot {
	for _, s := range c.Slots {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// CampaignSlot holds the candidate SKUs for one position of a campaign.
type CampaignSlot struct {
	ID         uint64   `db:"id"`
	CampaignID uint64   `db:"campaign_id"`
	Name       string   `db:"name"`
	SKUIDs     []uint64 `db:"-"`
	SKUs       []*SKU   `db:"-"`
}

// SKUInCampaignSlot is one membership of a SKU in a campaign slot.
type SKUInCampaignSlot struct {
	ID             uint64 `db:"id"`
	CampaignID     uint64 `db:"campaign_id"`
	CampaignSlotID uint64 `db:"campaign_slot_id"`
	SKUID          uint64 `db:"sku_id"`
}

// CampaignRow is the flat persisted form of a campaign.
type CampaignRow struct {
	ID                     uint64 `db:"id"`
	Name                   string `db:"name"`
	Active                 bool   `db:"active"`
	ActivateOnStockArrival bool   `db:"activate_on_stock_arrival"`
}

type CampaignDetail struct {
	ID                     uint64 `json:"id"`
	Name                   string `json:"name"`
	Active                 bool   `json:"active"`
	ActivateOnStockArrival bool   `json:"activate_on_stock_arrival"`
}

func NewCampaignDetail(c *Campaign) *CampaignDetail {
	return &CampaignDetail{
		ID:                     c.ID,
		Name:                   c.Name,
		Active:                 c.Active(),
		ActivateOnStockArrival: c.ActivateOnStockArrival,
	}
}
