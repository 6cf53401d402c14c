package warehouse

import (
	"context"

	"github.com/muhammadheryan/fulfillment/application/unitofwork"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
)

type WarehouseApp interface {
	RecordQAPassed(ctx context.Context, itemID uint64, qaPassed int64) (*model.WarehouseEntryItemDetail, error)
}

type warehouseAppImpl struct {
	uow unitofwork.Runner
}

func NewWarehouseApp(uow unitofwork.Runner) WarehouseApp {
	return &warehouseAppImpl{uow: uow}
}

// RecordQAPassed writes the QA-passed count of an intake item. Its printable's
// ready_to_process counter follows at commit.
func (s *warehouseAppImpl) RecordQAPassed(ctx context.Context, itemID uint64, qaPassed int64) (*model.WarehouseEntryItemDetail, error) {
	if qaPassed < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidQuantity)
	}

	var item *model.WarehouseEntryItem
	err := s.uow.Run(ctx, func(ctx context.Context, uow *unitofwork.Session) error {
		var err error
		if item, err = uow.WarehouseEntryItem(ctx, itemID); err != nil {
			return err
		}
		uow.SetQAPassed(item, qaPassed)
		return nil
	})
	if err != nil {
		return nil, errors.Normalize("[RecordQAPassed] unit of work", err)
	}

	return &model.WarehouseEntryItemDetail{
		ID:                   item.ID,
		OrderItemPrintableID: item.OrderItemPrintableID,
		QAPassed:             item.QAPassed,
	}, nil
}
