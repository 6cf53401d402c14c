package transport_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/fulfillment/constant"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/transport"
	cerr "github.com/muhammadheryan/fulfillment/utils/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeShipmentApp struct {
	gotID     uint64
	gotStatus constant.ShipmentStatus
	gotReq    *model.CreateShipmentRequest
}

func (f *fakeShipmentApp) CreateShipment(_ context.Context, req *model.CreateShipmentRequest) (*model.ShipmentDetail, error) {
	f.gotReq = req
	return &model.ShipmentDetail{ID: 1, UserID: req.UserID, Status: constant.ShipmentStatusInQueue}, nil
}

func (f *fakeShipmentApp) UpdateStatus(_ context.Context, id uint64, status constant.ShipmentStatus) (*model.ShipmentDetail, error) {
	f.gotID, f.gotStatus = id, status
	// vetoed: cancelled shipments stay cancelled
	return &model.ShipmentDetail{ID: id, Status: constant.ShipmentStatusCancelled}, nil
}

func (f *fakeShipmentApp) UpdateCost(_ context.Context, id uint64, cost decimal.Decimal) (*model.ShipmentDetail, error) {
	return nil, errors.New("connection reset")
}

type fakeSKUApp struct{}

func (fakeSKUApp) GetSKU(_ context.Context, id uint64) (*model.SKUDetail, error) {
	if id == 404 {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}
	return &model.SKUDetail{ID: id, StockInInventory: 3, AvailableStock: 3}, nil
}

func serve(h http.Handler, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) transport.ErrorResponse {
	t.Helper()
	var res transport.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	return res
}

func TestTransport_Shipments(t *testing.T) {
	shipments := &fakeShipmentApp{}
	h := transport.NewTransport(&transport.RestHandler{ShipmentApp: shipments, SKUApp: fakeSKUApp{}})

	t.Run("create decodes and validates the body", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/shipments", `{"user_id":5,"total_cost":"12.50","lines":[{"sku_id":1,"quantity":2}]}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, shipments.gotReq)
		assert.True(t, shipments.gotReq.TotalCost.Equal(decimal.RequireFromString("12.50")))
		assert.Equal(t, []model.ShipmentLineRequest{{SKUID: 1, Quantity: 2}}, shipments.gotReq.Lines)
	})

	t.Run("create rejects a line without quantity", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/shipments", `{"user_id":5,"lines":[{"sku_id":1}]}`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInvalidRequest], decodeError(t, rec).Code)
	})

	t.Run("create rejects malformed json", func(t *testing.T) {
		rec := serve(h, http.MethodPost, "/shipments", `{"user_id":`, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("status returns the effective status", func(t *testing.T) {
		rec := serve(h, http.MethodPatch, "/shipments/7/status", `{"status":"dispatched"}`, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, uint64(7), shipments.gotID)
		assert.Equal(t, constant.ShipmentStatusDispatched, shipments.gotStatus)
		var res model.ShipmentDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, constant.ShipmentStatusCancelled, res.Status)
	})

	t.Run("unexpected errors are internal", func(t *testing.T) {
		rec := serve(h, http.MethodPatch, "/shipments/7/cost", `{"total_cost":"1"}`, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrInternal], decodeError(t, rec).Code)
	})
}

func TestTransport_SKU(t *testing.T) {
	h := transport.NewTransport(&transport.RestHandler{SKUApp: fakeSKUApp{}})

	t.Run("found", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/skus/2", "", map[string]string{"X-Request-ID": "req-1"})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-1", rec.Header().Get("X-Request-ID"))
		var res model.SKUDetail
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
		assert.Equal(t, int64(3), res.AvailableStock)
	})

	t.Run("not found", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/skus/404", "", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		assert.Equal(t, constant.ErrorTypeCode[constant.ErrNotFound], decodeError(t, rec).Code)
	})

	t.Run("zero id is rejected", func(t *testing.T) {
		rec := serve(h, http.MethodGet, "/skus/0", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
