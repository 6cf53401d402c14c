// Package unitofwork is the transaction boundary of every write: it owns the
// sqlx transaction, the entities loaded in it, the event accumulator and the
// commit sequence (reconcile, flush, commit, after-commit hooks).
package unitofwork

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/fulfillment/application/reconcile"
	"github.com/muhammadheryan/fulfillment/application/stockgate"
	alertrepo "github.com/muhammadheryan/fulfillment/repository/alert"
	campaignrepo "github.com/muhammadheryan/fulfillment/repository/campaign"
	claimrepo "github.com/muhammadheryan/fulfillment/repository/claim"
	ledgerrepo "github.com/muhammadheryan/fulfillment/repository/ledger"
	notificationrepo "github.com/muhammadheryan/fulfillment/repository/notification"
	shipmentrepo "github.com/muhammadheryan/fulfillment/repository/shipment"
	skurepo "github.com/muhammadheryan/fulfillment/repository/sku"
	txrepo "github.com/muhammadheryan/fulfillment/repository/tx"
	userrepo "github.com/muhammadheryan/fulfillment/repository/user"
	warehouserepo "github.com/muhammadheryan/fulfillment/repository/warehouse"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type Repositories struct {
	SKU          skurepo.SKURepository
	Shipment     shipmentrepo.ShipmentRepository
	Campaign     campaignrepo.CampaignRepository
	Claim        claimrepo.ClaimRepository
	User         userrepo.UserRepository
	Warehouse    warehouserepo.WarehouseRepository
	Ledger       ledgerrepo.LedgerRepository
	Alert        alertrepo.AlertRepository
	Notification notificationrepo.NotificationRepository
}

var (
	_ reconcile.Unit    = (*Session)(nil)
	_ stockgate.Effects = (*Session)(nil)
)

// Work is the body of a transaction. Returning an error rolls everything back.
type Work func(ctx context.Context, s *Session) error

// Runner runs work in a unit of work.
type Runner interface {
	Run(ctx context.Context, work Work) error
}

type Manager struct {
	txRepo     txrepo.TxRepository
	repos      Repositories
	reconciler *reconcile.Reconciler
	gate       *stockgate.Gate
	location   *time.Location
	tracer     trace.Tracer
}

func NewManager(txRepo txrepo.TxRepository, repos Repositories, reconciler *reconcile.Reconciler, gate *stockgate.Gate, location *time.Location) *Manager {
	if location == nil {
		location = time.UTC
	}
	return &Manager{
		txRepo:     txRepo,
		repos:      repos,
		reconciler: reconciler,
		gate:       gate,
		location:   location,
		tracer:     otel.Tracer("github.com/muhammadheryan/fulfillment/unitofwork"),
	}
}

// Run executes work inside one transaction and commits it together with
// everything the reconciler derives from it.
func (m *Manager) Run(ctx context.Context, work Work) error {
	tx, err := m.txRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = m.txRepo.RollbackTx(tx)
		}
	}()

	s := newSession(tx, m)
	if err := work(ctx, s); err != nil {
		return err
	}

	if err := m.commit(ctx, s); err != nil {
		return err
	}
	committed = true

	hookCtx := context.WithoutCancel(ctx)
	for _, hook := range s.afterCommit {
		hook(hookCtx)
	}
	return nil
}

func (m *Manager) commit(ctx context.Context, s *Session) (err error) {
	ctx, span := m.tracer.Start(ctx, "unitofwork.commit")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	if err = m.reconciler.Reconcile(ctx, s); err != nil {
		return fmt.Errorf("reconcile: %w", err)
	}
	if pending := s.events.Pending(); len(pending) > 0 {
		logger.Error("[UnitOfWork] accumulator not drained", zap.Strings("buckets", pending))
	}

	written, err := s.flush(ctx)
	if err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	span.SetAttributes(attribute.Int("unitofwork.rows_written", written))

	if err = m.txRepo.CommitTx(s.tx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
