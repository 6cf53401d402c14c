package shipment_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/fulfillment/application/notification"
	"github.com/muhammadheryan/fulfillment/application/reconcile"
	appshipment "github.com/muhammadheryan/fulfillment/application/shipment"
	"github.com/muhammadheryan/fulfillment/application/stockgate"
	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	ledgermocks "github.com/muhammadheryan/fulfillment/mocks/repository/ledger"
	notificationmocks "github.com/muhammadheryan/fulfillment/mocks/repository/notification"
	shipmentmocks "github.com/muhammadheryan/fulfillment/mocks/repository/shipment"
	skumocks "github.com/muhammadheryan/fulfillment/mocks/repository/sku"
	txmocks "github.com/muhammadheryan/fulfillment/mocks/repository/tx"
	usermocks "github.com/muhammadheryan/fulfillment/mocks/repository/user"
	"github.com/muhammadheryan/fulfillment/model"
	cerr "github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type fields struct {
	txRepo           *txmocks.TxRepository
	skuRepo          *skumocks.SKURepository
	shipmentRepo     *shipmentmocks.ShipmentRepository
	userRepo         *usermocks.UserRepository
	ledgerRepo       *ledgermocks.LedgerRepository
	notificationRepo *notificationmocks.NotificationRepository
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:           txmocks.NewTxRepository(t),
		skuRepo:          skumocks.NewSKURepository(t),
		shipmentRepo:     shipmentmocks.NewShipmentRepository(t),
		userRepo:         usermocks.NewUserRepository(t),
		ledgerRepo:       ledgermocks.NewLedgerRepository(t),
		notificationRepo: notificationmocks.NewNotificationRepository(t),
	}
}

func newApp(f fields) appshipment.ShipmentApp {
	builder := notification.NewBuilder(time.UTC)
	uow := unitofwork.NewManager(f.txRepo, unitofwork.Repositories{
		SKU:          f.skuRepo,
		Shipment:     f.shipmentRepo,
		User:         f.userRepo,
		Ledger:       f.ledgerRepo,
		Notification: f.notificationRepo,
	}, reconcile.New(builder, builder, nil), stockgate.New(nil), time.UTC)
	return appshipment.NewShipmentApp(uow)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
}

func TestShipmentApp_CreateShipment(t *testing.T) {
	type args struct {
		ctx context.Context
		req *model.CreateShipmentRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		want     *model.ShipmentDetail
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: line reserved and cost deducted",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{
					UserID:    5,
					TotalCost: decimal.NewFromInt(50),
					Lines:     []model.ShipmentLineRequest{{SKUID: 1, Quantity: 2}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("InsertTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusInQueue).Return(uint64(10), nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.SKU{ID: 1, Kind: constant.SKUKindTshirt, StockInInventory: 10}, nil).Once()
				f.shipmentRepo.On("InsertContentTx", mock.Anything, tx, mock.MatchedBy(func(c *model.SKUInShipment) bool {
					return c.ShipmentID == 10 && c.SKUID == 1 && c.Quantity == 2
				})).Return(uint64(100), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(&model.UserEntity{ID: 5, AccountBalance: decimal.NewFromInt(100)}, nil).Once()
				f.ledgerRepo.On("InsertDeductionTx", mock.Anything, tx, mock.MatchedBy(func(d *model.ShipmentDeduction) bool {
					return d.ShipmentID == 10 && d.Amount.Equal(decimal.NewFromInt(-50))
				})).Return(uint64(1), nil).Once()
				f.skuRepo.On("UpdateCountersTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SKU) bool {
					return s.ID == 1 && s.ToBeShipped == 2 && s.StockInInventory == 10
				})).Return(nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(row *model.ShipmentRow) bool {
					return row.ID == 10 && row.TotalCost.Equal(decimal.NewFromInt(50))
				})).Return(nil).Once()
				f.userRepo.On("UpdateBalanceTx", mock.Anything, tx, uint64(5), mock.MatchedBy(func(b decimal.Decimal) bool {
					return b.Equal(decimal.NewFromInt(50))
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ShipmentDetail{
				ID:     10,
				UserID: 5,
				Status: constant.ShipmentStatusInQueue,
				Lines:  []model.ShipmentLineDetail{{SKUID: 1, Quantity: 2}},
			},
		},
		{
			name: "success: line without stock parks the shipment",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{
					UserID: 5,
					Lines:  []model.ShipmentLineRequest{{SKUID: 1, Quantity: 3}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("InsertTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusInQueue).Return(uint64(11), nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.SKU{ID: 1, Kind: constant.SKUKindTshirt, StockInInventory: 4, ToBeShipped: 4}, nil).Once()
				f.shipmentRepo.On("InsertContentTx", mock.Anything, tx, mock.Anything).Return(uint64(101), nil).Once()
				f.skuRepo.On("UpdateCountersTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SKU) bool {
					return s.ToBeShipped == 4 && s.ToBeShippedOnStockAddition.Valid && s.ToBeShippedOnStockAddition.Int64 == 3
				})).Return(nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(row *model.ShipmentRow) bool {
					return row.ID == 11 && row.Status == constant.ShipmentStatusWaitingForStockAddition && row.LastActedAt != nil
				})).Return(nil).Once()
				f.shipmentRepo.On("UpdateContentTx", mock.Anything, tx, mock.MatchedBy(func(c *model.SKUInShipment) bool {
					return c.ID == 101 && c.WaitingForStockAddition
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			want: &model.ShipmentDetail{
				ID:     11,
				UserID: 5,
				Status: constant.ShipmentStatusWaitingForStockAddition,
				Lines:  []model.ShipmentLineDetail{{SKUID: 1, Quantity: 3, WaitingForStockAddition: true}},
			},
		},
		{
			name: "error: empty lines",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{UserID: 5},
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: zero quantity",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{
					UserID: 5,
					Lines:  []model.ShipmentLineRequest{{SKUID: 1, Quantity: 0}},
				},
			},
			wantErr: true,
			errCode: constant.ErrInvalidQuantity,
		},
		{
			name: "error: unknown sku",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{
					UserID: 5,
					Lines:  []model.ShipmentLineRequest{{SKUID: 404, Quantity: 1}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("InsertTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusInQueue).Return(uint64(12), nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(404)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: insert shipment fails",
			args: args{
				ctx: context.Background(),
				req: &model.CreateShipmentRequest{
					UserID: 5,
					Lines:  []model.ShipmentLineRequest{{SKUID: 1, Quantity: 1}},
				},
			},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("InsertTx", mock.Anything, tx, uint64(5), constant.ShipmentStatusInQueue).Return(uint64(0), errors.New("db error")).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := newApp(f).CreateShipment(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateShipment() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.ID != tt.want.ID || got.UserID != tt.want.UserID || got.Status != tt.want.Status {
				t.Fatalf("CreateShipment() = %+v, want %+v", got, tt.want)
			}
			if len(got.Lines) != len(tt.want.Lines) {
				t.Fatalf("CreateShipment() lines = %+v, want %+v", got.Lines, tt.want.Lines)
			}
			for i := range got.Lines {
				if got.Lines[i] != tt.want.Lines[i] {
					t.Fatalf("CreateShipment() line %d = %+v, want %+v", i, got.Lines[i], tt.want.Lines[i])
				}
			}
		})
	}
}

func TestShipmentApp_UpdateStatus(t *testing.T) {
	type args struct {
		ctx        context.Context
		shipmentID uint64
		status     constant.ShipmentStatus
	}
	tests := []struct {
		name       string
		args       args
		mockCall   func(f fields)
		wantStatus constant.ShipmentStatus
		wantErr    bool
		errCode    constant.ErrorType
	}{
		{
			name: "success: packed shipment goes in transit",
			args: args{ctx: context.Background(), shipmentID: 1, status: constant.ShipmentStatusInTransit},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.ShipmentRow{ID: 1, UserID: 5, Status: constant.ShipmentStatusPacked}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(1)).Return([]*model.SKUInShipment{{ID: 1, ShipmentID: 1, SKUID: 2, Quantity: 2}}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(1)).Return(int64(0), nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.SKU{ID: 2, Kind: constant.SKUKindPoster, StockInInventory: 10, ToBeShipped: 2}, nil).Once()
				f.skuRepo.On("UpdateCountersTx", mock.Anything, tx, mock.MatchedBy(func(s *model.SKU) bool {
					return s.ID == 2 && s.StockInInventory == 8 && s.ToBeShipped == 0
				})).Return(nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(row *model.ShipmentRow) bool {
					return row.Status == constant.ShipmentStatusInTransit && row.LastActedAt != nil
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantStatus: constant.ShipmentStatusInTransit,
		},
		{
			name: "success: delivery raises a notification",
			args: args{ctx: context.Background(), shipmentID: 2, status: constant.ShipmentStatusDelivered},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.ShipmentRow{ID: 2, UserID: 5, Status: constant.ShipmentStatusInTransit}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(2)).Return([]*model.SKUInShipment{}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(2)).Return(int64(0), nil).Once()
				f.notificationRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(n *model.Notification) bool {
					return n.UserID == 5 && n.Kind == model.NotificationShipmentDelivered && n.ShipmentID.Int64 == 2
				})).Return(nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantStatus: constant.ShipmentStatusDelivered,
		},
		{
			name: "success: cancelled shipment cannot ship",
			args: args{ctx: context.Background(), shipmentID: 3, status: constant.ShipmentStatusDispatched},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(3)).Return(&model.ShipmentRow{ID: 3, UserID: 5, Status: constant.ShipmentStatusCancelled}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(3)).Return([]*model.SKUInShipment{}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(3)).Return(int64(0), nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantStatus: constant.ShipmentStatusCancelled,
		},
		{
			name: "success: dispatch vetoed while a line waits for stock",
			args: args{ctx: context.Background(), shipmentID: 6, status: constant.ShipmentStatusDispatched},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(6)).Return(&model.ShipmentRow{ID: 6, UserID: 5, Status: constant.ShipmentStatusInQueue}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(6)).Return([]*model.SKUInShipment{
					{ID: 60, ShipmentID: 6, SKUID: 2, Quantity: 2, WaitingForStockAddition: true},
				}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(6)).Return(int64(0), nil).Once()
				f.skuRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(2)).Return(&model.SKU{
					ID: 2, Kind: constant.SKUKindPoster, ToBeShippedOnStockAddition: sql.NullInt64{Int64: 2, Valid: true},
				}, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
			wantStatus: constant.ShipmentStatusInQueue,
		},
		{
			name:    "error: internal status cannot be requested",
			args:    args{ctx: context.Background(), shipmentID: 4, status: constant.ShipmentStatusWaitingForStockAddition},
			wantErr: true,
			errCode: constant.ErrInvalidShipmentStatus,
		},
		{
			name: "error: unknown status",
			args: args{ctx: context.Background(), shipmentID: 4, status: "lost"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(4)).Return(&model.ShipmentRow{ID: 4, UserID: 5, Status: constant.ShipmentStatusInQueue}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(4)).Return([]*model.SKUInShipment{}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(4)).Return(int64(0), nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidShipmentStatus,
		},
		{
			name: "error: shipment not found",
			args: args{ctx: context.Background(), shipmentID: 999, status: constant.ShipmentStatusPacked},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := newApp(f).UpdateStatus(tt.args.ctx, tt.args.shipmentID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got.Status != tt.wantStatus {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, tt.wantStatus)
			}
		})
	}
}

func TestShipmentApp_UpdateCost(t *testing.T) {
	type args struct {
		ctx        context.Context
		shipmentID uint64
		cost       decimal.Decimal
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: increase is deducted",
			args: args{ctx: context.Background(), shipmentID: 1, cost: decimal.NewFromInt(100)},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.ShipmentRow{ID: 1, UserID: 5, Status: constant.ShipmentStatusInQueue, TotalCost: decimal.NewFromInt(80)}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(1)).Return([]*model.SKUInShipment{}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(1)).Return(int64(0), nil).Once()
				f.userRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(5)).Return(&model.UserEntity{ID: 5, AccountBalance: decimal.NewFromInt(30)}, nil).Once()
				f.ledgerRepo.On("InsertDeductionTx", mock.Anything, tx, mock.MatchedBy(func(d *model.ShipmentDeduction) bool {
					return d.Amount.Equal(decimal.NewFromInt(-20))
				})).Return(uint64(1), nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.Anything).Return(nil).Once()
				f.userRepo.On("UpdateBalanceTx", mock.Anything, tx, uint64(5), mock.MatchedBy(func(b decimal.Decimal) bool {
					return b.Equal(decimal.NewFromInt(10))
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name: "success: zero cost records no ledger row",
			args: args{ctx: context.Background(), shipmentID: 1, cost: decimal.Zero},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.shipmentRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.ShipmentRow{ID: 1, UserID: 5, Status: constant.ShipmentStatusInQueue, TotalCost: decimal.NewFromInt(80)}, nil).Once()
				f.shipmentRepo.On("ListContentsTx", mock.Anything, tx, uint64(1)).Return([]*model.SKUInShipment{}, nil).Once()
				f.shipmentRepo.On("CountOrderItemInstancesTx", mock.Anything, tx, uint64(1)).Return(int64(0), nil).Once()
				f.shipmentRepo.On("UpdateTx", mock.Anything, tx, mock.MatchedBy(func(row *model.ShipmentRow) bool {
					return row.TotalCost.IsZero()
				})).Return(nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
			},
		},
		{
			name:    "error: negative cost",
			args:    args{ctx: context.Background(), shipmentID: 1, cost: decimal.NewFromInt(-1)},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := newApp(f).UpdateCost(tt.args.ctx, tt.args.shipmentID, tt.args.cost)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateCost() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if !got.TotalCost.Equal(tt.args.cost) {
				t.Fatalf("UpdateCost() total = %s, want %s", got.TotalCost, tt.args.cost)
			}
		})
	}
}
