package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	campaignapp "github.com/muhammadheryan/fulfillment/application/campaign"
	claimapp "github.com/muhammadheryan/fulfillment/application/claim"
	restockapp "github.com/muhammadheryan/fulfillment/application/restock"
	shipmentapp "github.com/muhammadheryan/fulfillment/application/shipment"
	skuapp "github.com/muhammadheryan/fulfillment/application/sku"
	warehouseapp "github.com/muhammadheryan/fulfillment/application/warehouse"
	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	validatorx "github.com/muhammadheryan/fulfillment/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	ShipmentApp  shipmentapp.ShipmentApp
	CampaignApp  campaignapp.CampaignApp
	ClaimApp     claimapp.ClaimApp
	WarehouseApp warehouseapp.WarehouseApp
	RestockApp   restockapp.RestockApp
	SKUApp       skuapp.SKUApp
}

func NewTransport(rh *RestHandler) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	mux.HandleFunc("/shipments", rh.CreateShipment).Methods(http.MethodPost)
	mux.HandleFunc("/shipments/{id:[0-9]+}/status", rh.UpdateShipmentStatus).Methods(http.MethodPatch)
	mux.HandleFunc("/shipments/{id:[0-9]+}/cost", rh.UpdateShipmentCost).Methods(http.MethodPatch)

	mux.HandleFunc("/campaigns/{id:[0-9]+}/activate", rh.ActivateCampaign).Methods(http.MethodPost)
	mux.HandleFunc("/campaigns/{id:[0-9]+}/deactivate", rh.DeactivateCampaign).Methods(http.MethodPost)

	mux.HandleFunc("/claims/{id:[0-9]+}/redeem", rh.RedeemClaim).Methods(http.MethodPost)

	mux.HandleFunc("/warehouse-entry-items/{id:[0-9]+}/qa", rh.RecordQAPassed).Methods(http.MethodPatch)

	mux.HandleFunc("/skus/{id:[0-9]+}", rh.GetSKU).Methods(http.MethodGet)
	mux.HandleFunc("/skus/{id:[0-9]+}/stock", rh.ReceiveStock).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

func pathID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || id == 0 {
		return 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return id, nil
}

func decode(r *http.Request, req any) error {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if err := validatorx.ValidateStruct(req); err != nil {
		logger.Debug("request validation failed", zap.String("path", r.URL.Path), zap.Strings("fields", validatorx.Fields(err)))
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

// CreateShipment handler
// @Summary Create shipment
// @Description Create an in-queue shipment. Lines without available stock wait for stock addition.
// @Tags Shipment
// @Accept json
// @Produce json
// @Param request body model.CreateShipmentRequest true "Create Shipment Request"
// @Success 200 {object} model.ShipmentDetail
// @Failure 400 {object} ErrorResponse
// @Router /shipments [post]
func (s *RestHandler) CreateShipment(w http.ResponseWriter, r *http.Request) {
	var req model.CreateShipmentRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShipmentApp.CreateShipment(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateShipmentStatus handler
// @Summary Update shipment status
// @Description Request a status change. The returned status is the effective one: vetoed transitions keep or substitute the status.
// @Tags Shipment
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body model.UpdateShipmentStatusRequest true "Update Status Request"
// @Success 200 {object} model.ShipmentDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{id}/status [patch]
func (s *RestHandler) UpdateShipmentStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateShipmentStatusRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShipmentApp.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateShipmentCost handler
// @Summary Update shipment cost
// @Tags Shipment
// @Accept json
// @Produce json
// @Param id path int true "Shipment ID"
// @Param request body model.UpdateShipmentCostRequest true "Update Cost Request"
// @Success 200 {object} model.ShipmentDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shipments/{id}/cost [patch]
func (s *RestHandler) UpdateShipmentCost(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateShipmentCostRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ShipmentApp.UpdateCost(r.Context(), id, req.TotalCost)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ActivateCampaign handler
// @Summary Activate campaign
// @Description Activates the campaign when every slot has stock, otherwise flags it for activation on stock arrival.
// @Tags Campaign
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} model.CampaignDetail
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/activate [post]
func (s *RestHandler) ActivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CampaignApp.Activate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeactivateCampaign handler
// @Summary Deactivate campaign
// @Tags Campaign
// @Produce json
// @Param id path int true "Campaign ID"
// @Success 200 {object} model.CampaignDetail
// @Failure 404 {object} ErrorResponse
// @Router /campaigns/{id}/deactivate [post]
func (s *RestHandler) DeactivateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CampaignApp.Deactivate(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RedeemClaim handler
// @Summary Redeem claim
// @Tags Claim
// @Produce json
// @Param id path int true "Claim ID"
// @Success 200 {object} model.ClaimDetail
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /claims/{id}/redeem [post]
func (s *RestHandler) RedeemClaim(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ClaimApp.Redeem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// RecordQAPassed handler
// @Summary Record QA-passed units
// @Tags Warehouse
// @Accept json
// @Produce json
// @Param id path int true "Warehouse Entry Item ID"
// @Param request body model.RecordQAPassedRequest true "QA Request"
// @Success 200 {object} model.WarehouseEntryItemDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /warehouse-entry-items/{id}/qa [patch]
func (s *RestHandler) RecordQAPassed(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.RecordQAPassedRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.WarehouseApp.RecordQAPassed(r.Context(), id, req.QAPassed)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetSKU handler
// @Summary Get SKU counters
// @Tags SKU
// @Produce json
// @Param id path int true "SKU ID"
// @Success 200 {object} model.SKUDetail
// @Failure 404 {object} ErrorResponse
// @Router /skus/{id} [get]
func (s *RestHandler) GetSKU(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.SKUApp.GetSKU(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ReceiveStock handler
// @Summary Receive stock
// @Description Adds stock, promotes waiting shipment lines and retries campaigns waiting for stock.
// @Tags SKU
// @Accept json
// @Produce json
// @Param id path int true "SKU ID"
// @Param request body model.ReceiveStockRequest true "Receive Stock Request"
// @Success 200 {object} model.SKUDetail
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /skus/{id}/stock [post]
func (s *RestHandler) ReceiveStock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReceiveStockRequest
	if err := decode(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.RestockApp.ReceiveStock(r.Context(), id, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
