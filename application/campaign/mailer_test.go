package campaign_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcampaign "github.com/muhammadheryan/fulfillment/application/campaign"
	redismocks "github.com/muhammadheryan/fulfillment/mocks/repository/redis"
	"github.com/muhammadheryan/fulfillment/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivationMailer_SendActivationMails(t *testing.T) {
	const key = "campaign:activation_mail:7"
	campaign := model.NewCampaign(7, "winter", true, false)

	tests := []struct {
		name          string
		publishErr    error
		mockCall      func(r *redismocks.Repository)
		wantPublished int
		wantErr       bool
	}{
		{
			name: "success: first activation is published",
			mockCall: func(r *redismocks.Repository) {
				r.On("SetNX", mock.Anything, key, "1", 30*time.Minute).Return(true, nil).Once()
			},
			wantPublished: 1,
		},
		{
			name: "success: repeated activation is deduplicated",
			mockCall: func(r *redismocks.Repository) {
				r.On("SetNX", mock.Anything, key, "1", 30*time.Minute).Return(false, nil).Once()
			},
		},
		{
			name:       "error: failed publish releases the dedup key",
			publishErr: errors.New("channel closed"),
			mockCall: func(r *redismocks.Repository) {
				r.On("SetNX", mock.Anything, key, "1", 30*time.Minute).Return(true, nil).Once()
				r.On("Delete", mock.Anything, key).Return(nil).Once()
			},
			wantErr: true,
		},
		{
			name: "error: redis unavailable",
			mockCall: func(r *redismocks.Repository) {
				r.On("SetNX", mock.Anything, key, "1", 30*time.Minute).Return(false, errors.New("i/o timeout")).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			redisRepo := redismocks.NewRepository(t)
			tt.mockCall(redisRepo)
			publisher := &fakePublisher{err: tt.publishErr}

			err := appcampaign.NewActivationMailer(redisRepo, publisher, 30*time.Minute).SendActivationMails(context.Background(), campaign)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			require.Len(t, publisher.published, tt.wantPublished)
			if tt.wantPublished > 0 {
				assert.Equal(t, uint64(7), publisher.published[0].CampaignID)
				assert.Equal(t, "winter", publisher.published[0].CampaignName)
				assert.False(t, publisher.published[0].ActivatedAt.IsZero())
			}
		})
	}
}

func TestActivationMailer_WithoutPublisher(t *testing.T) {
	redisRepo := redismocks.NewRepository(t)

	err := appcampaign.NewActivationMailer(redisRepo, nil, time.Minute).SendActivationMails(context.Background(), model.NewCampaign(1, "x", true, false))

	require.NoError(t, err)
}
