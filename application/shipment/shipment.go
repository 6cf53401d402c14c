package shipment

import (
	"context"

	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ShipmentApp interface {
	CreateShipment(ctx context.Context, req *model.CreateShipmentRequest) (*model.ShipmentDetail, error)
	UpdateStatus(ctx context.Context, shipmentID uint64, status constant.ShipmentStatus) (*model.ShipmentDetail, error)
	UpdateCost(ctx context.Context, shipmentID uint64, cost decimal.Decimal) (*model.ShipmentDetail, error)
}

type shipmentAppImpl struct {
	uow unitofwork.Runner
}

func NewShipmentApp(uow unitofwork.Runner) ShipmentApp {
	return &shipmentAppImpl{uow: uow}
}

func (s *shipmentAppImpl) CreateShipment(ctx context.Context, req *model.CreateShipmentRequest) (*model.ShipmentDetail, error) {
	if len(req.Lines) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
		}
	}

	var shipment *model.Shipment
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if shipment, err = uow.CreateShipment(ctx, req.UserID); err != nil {
			return err
		}
		for _, line := range req.Lines {
			if _, err := uow.AddContent(ctx, shipment, line.SKUID, line.Quantity); err != nil {
				return err
			}
		}
		uow.SetShipmentCost(shipment, req.TotalCost)
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[CreateShipment] unit of work", err)
	}

	return model.NewShipmentDetail(shipment), nil
}

// UpdateStatus returns the status actually stored, which differs from the request when vetoed.
func (s *shipmentAppImpl) UpdateStatus(ctx context.Context, shipmentID uint64, status constant.ShipmentStatus) (*model.ShipmentDetail, error) {
	// waiting_for_stock_addition is set by the engine when lines are parked
	if status.IsInternal() {
		return nil, errors.SetCustomError(constant.ErrInvalidShipmentStatus)
	}

	var shipment *model.Shipment
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if shipment, err = uow.Shipment(ctx, shipmentID); err != nil {
			return err
		}
		return uow.SetShipmentStatus(shipment, status)
	})
	if err != nil {
		return nil, errors.Normalize("[UpdateShipmentStatus] unit of work", err)
	}

	if shipment.Status() != status {
		logger.Info("[UpdateShipmentStatus] transition vetoed", zap.Uint64("shipment_id", shipmentID), zap.String("requested", string(status)), zap.String("effective", string(shipment.Status())))
	}
	return model.NewShipmentDetail(shipment), nil
}

func (s *shipmentAppImpl) UpdateCost(ctx context.Context, shipmentID uint64, cost decimal.Decimal) (*model.ShipmentDetail, error) {
	if cost.IsNegative() {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var shipment *model.Shipment
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if shipment, err = uow.Shipment(ctx, shipmentID); err != nil {
			return err
		}
		uow.SetShipmentCost(shipment, cost)
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[UpdateShipmentCost] unit of work", err)
	}

	return model.NewShipmentDetail(shipment), nil
}
