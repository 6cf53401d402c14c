package sku

import (
	"context"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	skuRepo "github.com/muhammadheryan/fulfillment/repository/sku"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

type SKUApp interface {
	GetSKU(ctx context.Context, id uint64) (*model.SKUDetail, error)
}

type skuAppImpl struct {
	skuRepo skuRepo.SKURepository
}

func NewSKUApp(skuRepo skuRepo.SKURepository) SKUApp {
	return &skuAppImpl{skuRepo: skuRepo}
}

func (s *skuAppImpl) GetSKU(ctx context.Context, id uint64) (*model.SKUDetail, error) {
	result, err := s.skuRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetSKU] error skuRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return model.NewSKUDetail(result), nil
}
