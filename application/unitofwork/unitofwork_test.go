package unitofwork_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/notification"
	"github.com/muhammadheryan/fulfillment/application/reconcile"
	"github.com/muhammadheryan/fulfillment/application/stockgate"
	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	alertmocks "github.com/muhammadheryan/fulfillment/mocks/repository/alert"
	campaignmocks "github.com/muhammadheryan/fulfillment/mocks/repository/campaign"
	claimmocks "github.com/muhammadheryan/fulfillment/mocks/repository/claim"
	ledgermocks "github.com/muhammadheryan/fulfillment/mocks/repository/ledger"
	notificationmocks "github.com/muhammadheryan/fulfillment/mocks/repository/notification"
	shipmentmocks "github.com/muhammadheryan/fulfillment/mocks/repository/shipment"
	skumocks "github.com/muhammadheryan/fulfillment/mocks/repository/sku"
	txmocks "github.com/muhammadheryan/fulfillment/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/fulfillment/mocks/repository/user"
	warehousemocks "github.com/muhammadheryan/fulfillment/mocks/repository/warehouse"
	"github.com/muhammadheryan/fulfillment/model"
	cerr "github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fields struct {
	txRepo           *txmocks.TxRepository
	skuRepo          *skumocks.SKURepository
	shipmentRepo     *shipmentmocks.ShipmentRepository
	campaignRepo     *campaignmocks.CampaignRepository
	claimRepo        *claimmocks.ClaimRepository
	userRepo         *usermocks.UserRepository
	warehouseRepo    *warehousemocks.WarehouseRepository
	ledgerRepo       *ledgermocks.LedgerRepository
	alertRepo        *alertmocks.AlertRepository
	notificationRepo *notificationmocks.NotificationRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:           txmocks.NewTxRepository(t),
		skuRepo:          skumocks.NewSKURepository(t),
		shipmentRepo:     shipmentmocks.NewShipmentRepository(t),
		campaignRepo:     campaignmocks.NewCampaignRepository(t),
		claimRepo:        claimmocks.NewClaimRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		warehouseRepo:    warehousemocks.NewWarehouseRepository(t),
		ledgerRepo:       ledgermocks.NewLedgerRepository(t),
		alertRepo:        alertmocks.NewAlertRepository(t),
		notificationRepo: notificationmocks.NewNotificationRepository(t),
	}
}

type nopMailer struct{}

func (nopMailer) SendActivationMails(context.Context, *model.Campaign) error { return nil }

func newManager(f fields) *unitofwork.Manager {
	builder := notification.NewBuilder(time.UTC)
	return unitofwork.NewManager(f.txRepo, unitofwork.Repositories{
		SKU:          f.skuRepo,
		Shipment:     f.shipmentRepo,
		Campaign:     f.campaignRepo,
		Claim:        f.claimRepo,
		User:         f.userRepo,
		Warehouse:    f.warehouseRepo,
		Ledger:       f.ledgerRepo,
		Alert:        f.alertRepo,
		Notification: f.notificationRepo,
	}, reconcile.New(builder, builder, nil), stockgate.New(nopMailer{}), time.UTC)
}

func TestManager_Run(t *testing.T) {
	errWork := errors.New("work failed")
	tests := []struct {
		name        string
		work        unitofwork.Work
		mockCall    func(f fields)
		wantErr     error
		wantErrCode constant.ErrorType
	}{
		{
			name: "success: untouched entities are not written",
			work: func(ctx context.Context, s *unitofwork.Session) error {
				_, err := s.SKU(ctx, 1)
				return err
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.SKU{ID: 1, StockInInventory: 5}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: changed counters are flushed and hooks run after commit",
			work: func(ctx context.Context, s *unitofwork.Session) error {
				sku, err := s.SKU(ctx, 1)
				if err != nil {
					return err
				}
				// second load hits the identity map
				if _, err := s.SKU(ctx, 1); err != nil {
					return err
				}
				s.Ledger().ReceiveStock(sku, 10)
				s.AfterCommit(func(context.Context) {})
				return nil
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.SKU{ID: 1, StockInInventory: 5}, nil).Once()
				f.skuRepo.On("UpdateCountersTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SKU) bool {
					return s.ID == 1 && s.StockInInventory == 15
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "error: begin tx",
			work: func(context.Context, *unitofwork.Session) error { return nil },
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("conn refused")).Once()
			},
			wantErr: errors.New("begin tx: conn refused"),
		},
		{
			name: "error: work fails and rolls back",
			work: func(ctx context.Context, s *unitofwork.Session) error {
				s.AfterCommit(func(context.Context) {})
				return errWork
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: errWork,
		},
		{
			name: "error: missing row is not found",
			work: func(ctx context.Context, s *unitofwork.Session) error {
				_, err := s.Claim(ctx, 9)
				return err
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.claimRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(9)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErrCode: constant.ErrNotFound,
		},
		{
			name: "error: commit fails and hooks are skipped",
			work: func(ctx context.Context, s *unitofwork.Session) error {
				s.AfterCommit(func(context.Context) {})
				return nil
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(errors.New("deadlock")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: errors.New("commit tx: deadlock"),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			hooks := 0
			work := func(ctx context.Context, s *unitofwork.Session) error {
				err := tt.work(ctx, s)
				s.AfterCommit(func(context.Context) { hooks++ })
				return err
			}

			err := newManager(f).Run(context.Background(), work)

			switch {
			case tt.wantErrCode != 0:
				require.Error(t, err)
				assert.True(t, cerr.Is(err, tt.wantErrCode), "error = %v", err)
				assert.Zero(t, hooks)
			case tt.wantErr != nil:
				require.Error(t, err)
				if !errors.Is(err, tt.wantErr) {
					assert.EqualError(t, err, tt.wantErr.Error())
				}
				assert.Zero(t, hooks)
			default:
				require.NoError(t, err)
				assert.Equal(t, 1, hooks)
			}
		})
	}
}

func TestSession_ShipmentLocksSKUsInIDOrder(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	var locked []uint64

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.ShipmentRow{
		ID: 4, UserID: 2, Status: constant.ShipmentStatusPacked, TotalCost: decimal.NewFromInt(10),
	}, nil).Once()
	f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(4)).Return([]*model.SKUInShipment{
		{ID: 1, ShipmentID: 4, SKUID: 7, Quantity: 1},
		{ID: 2, ShipmentID: 4, SKUID: 3, Quantity: 1},
		{ID: 3, ShipmentID: 4, SKUID: 7, Quantity: 2},
	}, nil).Once()
	f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(4)).Return(int64(0), nil).Once()
	for _, id := range []uint64{3, 7} {
		id := id
		f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, id).
			Run(func(mock.Arguments) { locked = append(locked, id) }).
			Return(&model.SKU{ID: id, StockInInventory: 10}, nil).Once()
	}
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	err := newManager(f).Run(context.Background(), func(ctx context.Context, s *unitofwork.Session) error {
		shipment, err := s.Shipment(ctx, 4)
		if err != nil {
			return err
		}
		require.Len(t, shipment.Contents, 3)
		assert.Same(t, shipment.Contents[0].SKU, shipment.Contents[2].SKU)
		assert.Same(t, shipment, shipment.Contents[1].Shipment)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 7}, locked)
}

func TestSession_ShipmentsLockRowsBeforeSKUs(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	var locked []string

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	contents := map[uint64][]*model.SKUInShipment{
		5: {{ID: 50, ShipmentID: 5, SKUID: 9, Quantity: 1}, {ID: 51, ShipmentID: 5, SKUID: 2, Quantity: 1}},
		8: {{ID: 80, ShipmentID: 8, SKUID: 2, Quantity: 1}},
	}
	for _, id := range []uint64{5, 8} {
		id := id
		f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, id).
			Run(func(mock.Arguments) { locked = append(locked, fmt.Sprintf("shipment:%d", id)) }).
			Return(&model.ShipmentRow{ID: id, UserID: 2, Status: constant.ShipmentStatusWaitingForStockAddition}, nil).Once()
		f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, id).Return(contents[id], nil).Once()
		f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, id).Return(int64(0), nil).Once()
	}
	for _, id := range []uint64{2, 9} {
		id := id
		f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, id).
			Run(func(mock.Arguments) { locked = append(locked, fmt.Sprintf("sku:%d", id)) }).
			Return(&model.SKU{ID: id}, nil).Once()
	}
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	err := newManager(f).Run(context.Background(), func(ctx context.Context, s *unitofwork.Session) error {
		shipments, err := s.Shipments(ctx, []uint64{8, 5, 8})
		if err != nil {
			return err
		}
		require.Len(t, shipments, 2)
		assert.Same(t, shipments[5].Contents[1].SKU, shipments[8].Contents[0].SKU)

		again, err := s.Shipment(ctx, 8)
		require.NoError(t, err)
		assert.Same(t, shipments[8], again)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"shipment:5", "shipment:8", "sku:2", "sku:9"}, locked)
}

func TestSession_CostChangeRefundsUser(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.ShipmentRow{
		ID: 4, UserID: 2, Status: constant.ShipmentStatusInQueue, TotalCost: decimal.NewFromInt(100),
	}, nil).Once()
	f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(4)).Return([]*model.SKUInShipment{}, nil).Once()
	f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(4)).Return(int64(0), nil).Once()
	f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.UserEntity{ID: 2, AccountBalance: decimal.NewFromInt(5)}, nil).Once()
	f.ledgerRepo.On("InsertRefundTx", mock.Anything, tx, mock.MatchedBy(func(r *model.ShipmentRefund) bool {
		return r.ShipmentID == 4 && r.UserID == 2 && r.Amount.Equal(decimal.NewFromInt(20))
	})).Return(uint64(1), nil).Once()
	f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(row *model.ShipmentRow) bool {
		return row.ID == 4 && row.TotalCost.Equal(decimal.NewFromInt(80)) && row.Status == constant.ShipmentStatusInQueue
	})).Return(nil).Once()
	f.userRepo.On("UpdateBalanceTx", mock.Anything, tx, uint64(2), mock.MatchedBy(func(b decimal.Decimal) bool {
		return b.Equal(decimal.NewFromInt(25))
	})).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	err := newManager(f).Run(context.Background(), func(ctx context.Context, s *unitofwork.Session) error {
		shipment, err := s.Shipment(ctx, 4)
		if err != nil {
			return err
		}
		s.SetShipmentCost(shipment, decimal.NewFromInt(80))
		return nil
	})

	require.NoError(t, err)
}

func TestSession_QAPassedFeedsPrintable(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.warehouseRepo.On("GetEntryItemForUpdateTx", mock.Anything, tx, uint64(3)).Return(&model.WarehouseEntryItem{ID: 3, OrderItemPrintableID: 9, QAPassed: 1}, nil).Once()
	f.warehouseRepo.On("GetPrintableForUpdateTx", mock.Anything, tx, uint64(9)).Return(&model.OrderItemPrintable{ID: 9, ReadyToProcess: 1}, nil).Once()
	f.warehouseRepo.On("UpdateEntryItemTx", mock.Anything, tx, mock.MatchedBy(func(i *model.WarehouseEntryItem) bool {
		return i.ID == 3 && i.QAPassed == 4
	})).Return(nil).Once()
	f.warehouseRepo.On("UpdatePrintableTx", mock.Anything, tx, mock.MatchedBy(func(p *model.OrderItemPrintable) bool {
		return p.ID == 9 && p.ReadyToProcess == 4
	})).Return(nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()

	err := newManager(f).Run(context.Background(), func(ctx context.Context, s *unitofwork.Session) error {
		item, err := s.WarehouseEntryItem(ctx, 3)
		if err != nil {
			return err
		}
		s.SetQAPassed(item, 4)
		return nil
	})

	require.NoError(t, err)
}

func TestSession_ReconcileFailureRollsBack(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}

	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.warehouseRepo.On("GetEntryItemForUpdateTx", mock.Anything, tx, uint64(3)).Return(&model.WarehouseEntryItem{ID: 3, OrderItemPrintableID: 9}, nil).Once()
	f.warehouseRepo.On("GetPrintableForUpdateTx", mock.Anything, tx, uint64(9)).Return(nil, errors.New("lock wait timeout")).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Once()

	err := newManager(f).Run(context.Background(), func(ctx context.Context, s *unitofwork.Session) error {
		item, err := s.WarehouseEntryItem(ctx, 3)
		if err != nil {
			return err
		}
		s.SetQAPassed(item, 2)
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reconcile")
	assert.Contains(t, err.Error(), "lock wait timeout")
}
