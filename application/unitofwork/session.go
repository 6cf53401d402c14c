package unitofwork

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/accumulator"
	"github.com/muhammadheryan/fulfillment/application/inventory"
	"github.com/muhammadheryan/fulfillment/application/statemachine"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/shopspring/decimal"
)

type tracked[T any] struct {
	entity   *T
	snapshot T
}

type trackedShipment struct {
	entity   *model.Shipment
	snapshot model.ShipmentRow
}

type trackedCampaign struct {
	entity   *model.Campaign
	snapshot model.CampaignRow
}

type trackedUser struct {
	entity  *model.UserEntity
	balance decimal.Decimal
}

// Session is the identity map of one transaction. Every entity is loaded and
// row-locked at most once; writes to intercepted fields go through its setters.
type Session struct {
	tx      *sqlx.Tx
	repos   Repositories
	events  *accumulator.Accumulator
	ledger  *inventory.Ledger
	machine *statemachine.Machine
	m       *Manager
	now     time.Time

	skus          map[uint64]*tracked[model.SKU]
	shipments     map[uint64]*trackedShipment
	contents      map[uint64]*tracked[model.SKUInShipment]
	campaigns     map[uint64]*trackedCampaign
	claims        map[uint64]*tracked[model.Claim]
	users         map[uint64]*trackedUser
	entryItems    map[uint64]*tracked[model.WarehouseEntryItem]
	printables    map[uint64]*tracked[model.OrderItemPrintable]
	slotInstances map[uint64][]*model.SKUInCampaignSlot

	afterCommit []func(ctx context.Context)
}

func newSession(tx *sqlx.Tx, m *Manager) *Session {
	events := accumulator.New()
	ledger := inventory.NewLedger(events)
	return &Session{
		tx:            tx,
		repos:         m.repos,
		events:        events,
		ledger:        ledger,
		machine:       statemachine.New(ledger, events),
		m:             m,
		now:           time.Now().In(m.location),
		skus:          map[uint64]*tracked[model.SKU]{},
		shipments:     map[uint64]*trackedShipment{},
		contents:      map[uint64]*tracked[model.SKUInShipment]{},
		campaigns:     map[uint64]*trackedCampaign{},
		claims:        map[uint64]*tracked[model.Claim]{},
		users:         map[uint64]*trackedUser{},
		entryItems:    map[uint64]*tracked[model.WarehouseEntryItem]{},
		printables:    map[uint64]*tracked[model.OrderItemPrintable]{},
		slotInstances: map[uint64][]*model.SKUInCampaignSlot{},
	}
}

func (s *Session) Events() *accumulator.Accumulator { return s.events }

func (s *Session) Ledger() *inventory.Ledger { return s.ledger }

// Now is the transaction's clock in the business time zone.
func (s *Session) Now() time.Time { return s.now }

func (s *Session) AfterCommit(fn func(ctx context.Context)) {
	s.afterCommit = append(s.afterCommit, fn)
}

func notFound(kind string, id uint64) error {
	return fmt.Errorf("%s %d: %w", kind, id, errors.SetCustomError(constant.ErrNotFound))
}

func (s *Session) SKU(ctx context.Context, id uint64) (*model.SKU, error) {
	if t, ok := s.skus[id]; ok {
		return t.entity, nil
	}
	sku, err := s.repos.SKU.GetForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load sku %d: %w", id, err)
	}
	if sku == nil {
		return nil, notFound("sku", id)
	}
	s.skus[id] = &tracked[model.SKU]{entity: sku, snapshot: *sku}
	return sku, nil
}

// lockSKUs loads ids in ascending order so concurrent transactions lock SKU rows in the same order.
func (s *Session) lockSKUs(ctx context.Context, ids []uint64) (map[uint64]*model.SKU, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	out := make(map[uint64]*model.SKU, len(sorted))
	for _, id := range sorted {
		sku, err := s.SKU(ctx, id)
		if err != nil {
			return nil, err
		}
		out[id] = sku
	}
	return out, nil
}

// Shipment loads a shipment with its content lines and their SKUs.
func (s *Session) Shipment(ctx context.Context, id uint64) (*model.Shipment, error) {
	shipments, err := s.Shipments(ctx, []uint64{id})
	if err != nil {
		return nil, err
	}
	return shipments[id], nil
}

// Shipments loads several shipments, locking every shipment row in ascending
// id order before any of their SKU rows.
func (s *Session) Shipments(ctx context.Context, ids []uint64) (map[uint64]*model.Shipment, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	type loaded struct {
		row       *model.ShipmentRow
		contents  []*model.SKUInShipment
		instances int64
	}
	out := make(map[uint64]*model.Shipment, len(sorted))
	pending := make([]loaded, 0, len(sorted))
	var skuIDs []uint64
	for _, id := range sorted {
		if t, ok := s.shipments[id]; ok {
			out[id] = t.entity
			continue
		}
		row, err := s.repos.Shipment.GetForUpdateTx(ctx, s.tx, id)
		if err != nil {
			return nil, fmt.Errorf("load shipment %d: %w", id, err)
		}
		if row == nil {
			return nil, notFound("shipment", id)
		}
		contents, err := s.repos.Shipment.ListContentsTx(ctx, s.tx, id)
		if err != nil {
			return nil, fmt.Errorf("load shipment %d contents: %w", id, err)
		}
		instances, err := s.repos.Shipment.CountOrderItemInstancesTx(ctx, s.tx, id)
		if err != nil {
			return nil, fmt.Errorf("count shipment %d order item instances: %w", id, err)
		}
		for _, c := range contents {
			skuIDs = append(skuIDs, c.SKUID)
		}
		pending = append(pending, loaded{row: row, contents: contents, instances: instances})
	}

	skus, err := s.lockSKUs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}

	for _, l := range pending {
		shipment := model.NewShipment(l.row.ID, l.row.UserID, l.row.Status)
		shipment.TotalCost = l.row.TotalCost
		shipment.LastActedAt = l.row.LastActedAt
		shipment.OrderItemInstances = l.instances
		for _, c := range l.contents {
			c.Shipment = shipment
			c.SKU = skus[c.SKUID]
			shipment.Contents = append(shipment.Contents, c)
			s.contents[c.ID] = &tracked[model.SKUInShipment]{entity: c, snapshot: *c}
		}
		s.shipments[l.row.ID] = &trackedShipment{entity: shipment, snapshot: *l.row}
		out[l.row.ID] = shipment
	}
	return out, nil
}

// CreateShipment inserts an empty in-queue shipment for userID.
func (s *Session) CreateShipment(ctx context.Context, userID uint64) (*model.Shipment, error) {
	status := constant.ShipmentStatusInQueue
	id, err := s.repos.Shipment.InsertTx(ctx, s.tx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("insert shipment: %w", err)
	}
	shipment := model.NewShipment(id, userID, status)
	s.shipments[id] = &trackedShipment{
		entity:   shipment,
		snapshot: model.ShipmentRow{ID: id, UserID: userID, Status: status, TotalCost: decimal.Zero},
	}
	return shipment, nil
}

// AddContent links qty units of a SKU to the shipment. Stock is reserved or
// queued at commit.
func (s *Session) AddContent(ctx context.Context, shipment *model.Shipment, skuID uint64, qty int64) (*model.SKUInShipment, error) {
	sku, err := s.SKU(ctx, skuID)
	if err != nil {
		return nil, err
	}
	content := &model.SKUInShipment{
		ShipmentID: shipment.ID,
		SKUID:      skuID,
		Quantity:   qty,
		Shipment:   shipment,
		SKU:        sku,
	}
	id, err := s.repos.Shipment.InsertContentTx(ctx, s.tx, content)
	if err != nil {
		return nil, fmt.Errorf("insert shipment content: %w", err)
	}
	content.ID = id
	shipment.Contents = append(shipment.Contents, content)
	s.contents[id] = &tracked[model.SKUInShipment]{entity: content, snapshot: *content}
	accumulator.Add(s.events, accumulator.NewContents, content)
	return content, nil
}

// WaitingContents lists content lines of a SKU parked until stock arrives, oldest first.
func (s *Session) WaitingContents(ctx context.Context, skuID uint64) ([]model.WaitingContent, error) {
	return s.repos.Shipment.ListWaitingContentsBySKUTx(ctx, s.tx, skuID)
}

// Campaign loads a campaign with its slots and the SKUs behind them.
func (s *Session) Campaign(ctx context.Context, id uint64) (*model.Campaign, error) {
	if t, ok := s.campaigns[id]; ok {
		return t.entity, nil
	}
	row, err := s.repos.Campaign.GetForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign %d: %w", id, err)
	}
	if row == nil {
		return nil, notFound("campaign", id)
	}
	slots, err := s.repos.Campaign.ListSlotsTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load campaign %d slots: %w", id, err)
	}

	var skuIDs []uint64
	for _, slot := range slots {
		skuIDs = append(skuIDs, slot.SKUIDs...)
	}
	skus, err := s.lockSKUs(ctx, skuIDs)
	if err != nil {
		return nil, err
	}
	for _, slot := range slots {
		slot.SKUs = make([]*model.SKU, 0, len(slot.SKUIDs))
		for _, skuID := range slot.SKUIDs {
			slot.SKUs = append(slot.SKUs, skus[skuID])
		}
	}

	campaign := model.NewCampaign(row.ID, row.Name, row.Active, row.ActivateOnStockArrival)
	campaign.Slots = slots
	s.campaigns[id] = &trackedCampaign{entity: campaign, snapshot: *row}
	return campaign, nil
}

func (s *Session) CampaignSlotInstances(ctx context.Context, skuID uint64) ([]*model.SKUInCampaignSlot, error) {
	if instances, ok := s.slotInstances[skuID]; ok {
		return instances, nil
	}
	instances, err := s.repos.Campaign.ListSlotInstancesBySKUTx(ctx, s.tx, skuID)
	if err != nil {
		return nil, fmt.Errorf("list campaign slots of sku %d: %w", skuID, err)
	}
	s.slotInstances[skuID] = instances
	return instances, nil
}

// CampaignsAwaitingStock lists inactive campaigns flagged for retry that include skuID.
func (s *Session) CampaignsAwaitingStock(ctx context.Context, skuID uint64) ([]uint64, error) {
	return s.repos.Campaign.ListAwaitingStockIDsBySKUTx(ctx, s.tx, skuID)
}

func (s *Session) Claim(ctx context.Context, id uint64) (*model.Claim, error) {
	if t, ok := s.claims[id]; ok {
		return t.entity, nil
	}
	claim, err := s.repos.Claim.GetForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load claim %d: %w", id, err)
	}
	if claim == nil {
		return nil, notFound("claim", id)
	}
	s.claims[id] = &tracked[model.Claim]{entity: claim, snapshot: *claim}
	return claim, nil
}

func (s *Session) User(ctx context.Context, id uint64) (*model.UserEntity, error) {
	if t, ok := s.users[id]; ok {
		return t.entity, nil
	}
	user, err := s.repos.User.GetForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load user %d: %w", id, err)
	}
	if user == nil {
		return nil, notFound("user", id)
	}
	s.users[id] = &trackedUser{entity: user, balance: user.AccountBalance}
	return user, nil
}

func (s *Session) WarehouseEntryItem(ctx context.Context, id uint64) (*model.WarehouseEntryItem, error) {
	if t, ok := s.entryItems[id]; ok {
		return t.entity, nil
	}
	item, err := s.repos.Warehouse.GetEntryItemForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load warehouse entry item %d: %w", id, err)
	}
	if item == nil {
		return nil, notFound("warehouse entry item", id)
	}
	s.entryItems[id] = &tracked[model.WarehouseEntryItem]{entity: item, snapshot: *item}
	return item, nil
}

func (s *Session) OrderItemPrintable(ctx context.Context, id uint64) (*model.OrderItemPrintable, error) {
	if t, ok := s.printables[id]; ok {
		return t.entity, nil
	}
	printable, err := s.repos.Warehouse.GetPrintableForUpdateTx(ctx, s.tx, id)
	if err != nil {
		return nil, fmt.Errorf("load order item printable %d: %w", id, err)
	}
	if printable == nil {
		return nil, notFound("order item printable", id)
	}
	s.printables[id] = &tracked[model.OrderItemPrintable]{entity: printable, snapshot: *printable}
	return printable, nil
}

// SetShipmentStatus writes a status through the state machine. A veto is not an error.
func (s *Session) SetShipmentStatus(shipment *model.Shipment, status constant.ShipmentStatus) error {
	return shipment.SetStatus(status, s.machine.Transition)
}

// SetCampaignActive writes the active flag through the stock gate.
func (s *Session) SetCampaignActive(ctx context.Context, c *model.Campaign, active bool) error {
	return c.SetActive(active, func(c *model.Campaign, active bool) (bool, error) {
		return s.m.gate.Evaluate(ctx, s, c, active)
	})
}

// SetShipmentCost records the change as cost before minus cost after. Writing a zero cost records nothing.
func (s *Session) SetShipmentCost(shipment *model.Shipment, cost decimal.Decimal) {
	if !cost.IsZero() {
		accumulator.Add(s.events, accumulator.CostChanges, &accumulator.CostChange{
			Shipment: shipment,
			Amount:   shipment.TotalCost.Sub(cost),
		})
	}
	shipment.TotalCost = cost
}

func (s *Session) SetClaimConverted(claim *model.Claim, converted bool) {
	if converted {
		accumulator.Add(s.events, accumulator.ClaimsRedeemed, claim)
	}
	claim.Converted = converted
}

// SetQAPassed records the increase of passed units so the printable's ready counter follows it.
func (s *Session) SetQAPassed(item *model.WarehouseEntryItem, qaPassed int64) {
	delta := qaPassed - item.QAPassed
	if qaPassed != 0 && delta != 0 {
		accumulator.Add(s.events, accumulator.ReadyToProcess, &accumulator.QAPass{Item: item, Delta: delta})
	}
	item.QAPassed = qaPassed
}

// ReleaseClaimsOnHold clears the customer hold on every claim of the campaign.
func (s *Session) ReleaseClaimsOnHold(ctx context.Context, campaignID uint64) error {
	if _, err := s.repos.Claim.ReleaseOnHoldTx(ctx, s.tx, campaignID); err != nil {
		return fmt.Errorf("release claims of campaign %d: %w", campaignID, err)
	}
	for _, t := range s.claims {
		if t.entity.CampaignID == campaignID {
			t.entity.CustomerOnHold = false
			t.snapshot.CustomerOnHold = false
		}
	}
	return nil
}

func (s *Session) SaveDeduction(ctx context.Context, d *model.ShipmentDeduction) error {
	id, err := s.repos.Ledger.InsertDeductionTx(ctx, s.tx, d)
	if err != nil {
		return err
	}
	d.ID = id
	return nil
}

func (s *Session) SaveRefund(ctx context.Context, r *model.ShipmentRefund) error {
	id, err := s.repos.Ledger.InsertRefundTx(ctx, s.tx, r)
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

func (s *Session) SaveNotifications(ctx context.Context, notifications []*model.Notification) error {
	for _, n := range notifications {
		if err := s.repos.Notification.InsertTx(ctx, s.tx, n); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) SaveAlerts(ctx context.Context, alerts []model.Alert) error {
	for _, a := range alerts {
		var err error
		switch alert := a.(type) {
		case *model.ShipmentReturnedAlert:
			err = s.repos.Alert.InsertShipmentReturnedTx(ctx, s.tx, alert)
		case *model.OutOfStockAlert:
			err = s.repos.Alert.InsertOutOfStockTx(ctx, s.tx, alert)
		default:
			err = fmt.Errorf("unknown alert type %T", a)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// flush writes every tracked entity that differs from its load-time snapshot, in id order.
func (s *Session) flush(ctx context.Context) (int, error) {
	written := 0

	for _, id := range slices.Sorted(maps.Keys(s.skus)) {
		t := s.skus[id]
		if *t.entity == t.snapshot {
			continue
		}
		if err := s.repos.SKU.UpdateCountersTx(ctx, s.tx, t.entity); err != nil {
			return written, fmt.Errorf("update sku %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.shipments)) {
		t := s.shipments[id]
		row := shipmentRow(t.entity)
		if sameShipmentRow(row, t.snapshot) {
			continue
		}
		if err := s.repos.Shipment.UpdateTx(ctx, s.tx, &row); err != nil {
			return written, fmt.Errorf("update shipment %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.contents)) {
		t := s.contents[id]
		if t.entity.Quantity == t.snapshot.Quantity && t.entity.WaitingForStockAddition == t.snapshot.WaitingForStockAddition {
			continue
		}
		if err := s.repos.Shipment.UpdateContentTx(ctx, s.tx, t.entity); err != nil {
			return written, fmt.Errorf("update shipment content %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.campaigns)) {
		t := s.campaigns[id]
		row := model.CampaignRow{ID: id, Name: t.entity.Name, Active: t.entity.Active(), ActivateOnStockArrival: t.entity.ActivateOnStockArrival}
		if row == t.snapshot {
			continue
		}
		if err := s.repos.Campaign.UpdateTx(ctx, s.tx, &row); err != nil {
			return written, fmt.Errorf("update campaign %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.claims)) {
		t := s.claims[id]
		if *t.entity == t.snapshot {
			continue
		}
		if err := s.repos.Claim.UpdateTx(ctx, s.tx, t.entity); err != nil {
			return written, fmt.Errorf("update claim %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.users)) {
		t := s.users[id]
		if t.entity.AccountBalance.Equal(t.balance) {
			continue
		}
		if err := s.repos.User.UpdateBalanceTx(ctx, s.tx, id, t.entity.AccountBalance); err != nil {
			return written, fmt.Errorf("update user %d balance: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.entryItems)) {
		t := s.entryItems[id]
		if *t.entity == t.snapshot {
			continue
		}
		if err := s.repos.Warehouse.UpdateEntryItemTx(ctx, s.tx, t.entity); err != nil {
			return written, fmt.Errorf("update warehouse entry item %d: %w", id, err)
		}
		written++
	}

	for _, id := range slices.Sorted(maps.Keys(s.printables)) {
		t := s.printables[id]
		if *t.entity == t.snapshot {
			continue
		}
		if err := s.repos.Warehouse.UpdatePrintableTx(ctx, s.tx, t.entity); err != nil {
			return written, fmt.Errorf("update order item printable %d: %w", id, err)
		}
		written++
	}

	return written, nil
}

func shipmentRow(s *model.Shipment) model.ShipmentRow {
	return model.ShipmentRow{
		ID:          s.ID,
		UserID:      s.UserID,
		Status:      s.Status(),
		TotalCost:   s.TotalCost,
		LastActedAt: s.LastActedAt,
	}
}

func sameShipmentRow(a, b model.ShipmentRow) bool {
	if a.Status != b.Status || !a.TotalCost.Equal(b.TotalCost) {
		return false
	}
	if a.LastActedAt == nil || b.LastActedAt == nil {
		return a.LastActedAt == b.LastActedAt
	}
	return a.LastActedAt.Equal(*b.LastActedAt)
}
