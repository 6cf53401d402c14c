package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/muhammadheryan/fulfillment/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer delivers campaign activation mails through the mail API.
type Consumer struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
	client  *resty.Client
}

type campaignMailRequest struct {
	CampaignID   uint64 `json:"campaign_id"`
	CampaignName string `json:"campaign_name"`
	Template     string `json:"template"`
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}

	client := resty.New().
		SetBaseURL(apiURL).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Internal-Service", "campaign-mail-consumer").
		SetTimeout(10 * time.Second)

	return &Consumer{conn: conn, channel: channel, client: client}, nil
}

func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	err := c.channel.Qos(1, 0, false)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		campaignMailQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if msg.DeliveryTag == 0 { // channel closed
					return
				}

				var campaignMsg CampaignActivatedMessage
				if err := json.Unmarshal(msg.Body, &campaignMsg); err != nil {
					logger.Error("[CampaignMailConsumer] unmarshal message", zap.String("message_id", msg.MessageId), zap.String("error", err.Error()))
					msg.Ack(false)
					continue
				}

				if err := c.sendCampaignMail(ctx, campaignMsg); err != nil {
					logger.Error("[CampaignMailConsumer] send mail", zap.Uint64("campaign_id", campaignMsg.CampaignID), zap.String("error", err.Error()))
					msg.Nack(false, true)
					continue
				}

				msg.Ack(false)
				logger.Info("[CampaignMailConsumer] mail sent", zap.Uint64("campaign_id", campaignMsg.CampaignID))
			}
		}
	}()

	return nil
}

func (c *Consumer) sendCampaignMail(ctx context.Context, msg CampaignActivatedMessage) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(campaignMailRequest{
			CampaignID:   msg.CampaignID,
			CampaignName: msg.CampaignName,
			Template:     "campaign_activated",
		}).
		Post("/v1/mails/campaign")
	if err != nil {
		return err
	}

	// 4xx will not succeed on retry
	if resp.StatusCode() >= 500 {
		return fmt.Errorf("mail API returned status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
