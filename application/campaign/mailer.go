package campaign

import (
	"context"
	"fmt"
	"time"

	"github.com/muhammadheryan/fulfillment/application/stockgate"
	"github.com/muhammadheryan/fulfillment/model"
	redisrepo "github.com/muhammadheryan/fulfillment/repository/redis"
	"github.com/muhammadheryan/fulfillment/thirdparty/rabbitmq"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"go.uber.org/zap"
)

type ActivationPublisher interface {
	PublishCampaignActivated(msg rabbitmq.CampaignActivatedMessage) error
}

type activationMailer struct {
	redisRepo redisrepo.Repository
	publisher ActivationPublisher
	dedupTTL  time.Duration
}

// NewActivationMailer queues one activation mail per campaign per dedupTTL.
func NewActivationMailer(redisRepo redisrepo.Repository, publisher ActivationPublisher, dedupTTL time.Duration) stockgate.Mailer {
	return &activationMailer{redisRepo: redisRepo, publisher: publisher, dedupTTL: dedupTTL}
}

func activationMailKey(campaignID uint64) string {
	return fmt.Sprintf("campaign:activation_mail:%d", campaignID)
}

func (m *activationMailer) SendActivationMails(ctx context.Context, c *model.Campaign) error {
	if m.publisher == nil {
		return nil
	}

	key := activationMailKey(c.ID)
	fresh, err := m.redisRepo.SetNX(ctx, key, "1", m.dedupTTL)
	if err != nil {
		return fmt.Errorf("reserve activation mail key: %w", err)
	}
	if !fresh {
		logger.Info("[SendActivationMails] already sent recently", zap.Uint64("campaign_id", c.ID))
		return nil
	}

	msg := rabbitmq.CampaignActivatedMessage{
		CampaignID:   c.ID,
		CampaignName: c.Name,
		ActivatedAt:  time.Now().UTC(),
	}
	if err := m.publisher.PublishCampaignActivated(msg); err != nil {
		if delErr := m.redisRepo.Delete(ctx, key); delErr != nil {
			logger.Warn("[SendActivationMails] release dedup key", zap.String("error", delErr.Error()))
		}
		return fmt.Errorf("publish campaign activated: %w", err)
	}
	return nil
}
