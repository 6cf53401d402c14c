package webhook_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/muhammadheryan/fulfillment/model"
	"github.com/muhammadheryan/fulfillment/thirdparty/webhook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userWithHook(url string) *model.UserEntity {
	return &model.UserEntity{ID: 5, ClaimRedemptionNotifyHook: sql.NullString{String: url, Valid: true}}
}

func TestClient_PostClaimRedemption(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	err := webhook.NewClient(time.Second).PostClaimRedemption(context.Background(), &model.Claim{ID: 3, CampaignID: 9, UserID: 5}, userWithHook(srv.URL))

	require.NoError(t, err)
	assert.Equal(t, "claim.redeemed", got["event"])
	assert.EqualValues(t, 3, got["claim_id"])
	assert.EqualValues(t, 9, got["campaign_id"])
	assert.EqualValues(t, 5, got["user_id"])
}

func TestClient_PostClaimRedemption_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	err := webhook.NewClient(time.Second).PostClaimRedemption(context.Background(), &model.Claim{ID: 3}, userWithHook(srv.URL))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestClient_PostClaimRedemption_NoHook(t *testing.T) {
	err := webhook.NewClient(time.Second).PostClaimRedemption(context.Background(), &model.Claim{ID: 3}, &model.UserEntity{ID: 5})

	require.NoError(t, err)
}
