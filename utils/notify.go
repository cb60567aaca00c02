package utils

import (
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/kamaucodes/sokomart-api/models"
)

// NotifyPurchase posts a completed-purchase event to the webhook
// configured via PURCHASE_WEBHOOK_URL. With no URL configured this is a
// no-op.
func NotifyPurchase(purchase models.Purchase) error {
	webhookURL := os.Getenv("PURCHASE_WEBHOOK_URL")
	if webhookURL == "" {
		return nil
	}

	resp, err := resty.New().SetTimeout(10 * time.Second).
		R().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]any{
			"event":      "purchase.completed",
			"purchaseId": purchase.ID,
			"total":      purchase.Total,
			"itemCount":  purchase.ItemCount(),
			"date":       purchase.Date,
		}).
		Post(webhookURL)

	if err != nil {
		return err
	}
	if resp.StatusCode() >= 300 {
		return fmt.Errorf("webhook responded with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
