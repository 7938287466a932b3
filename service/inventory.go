package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/storefront/settlements.api/config"
	"github.com/storefront/settlements.api/models"
)

//go:generate mockgen -destination mock_inventory.go -package service github.com/storefront/settlements.api/service InventoryService

// InventoryService restores stock for goods that came back
type InventoryService interface {
	IncrementStock(ctx context.Context, idempotencyKey string, items []models.StockAdjustment) error
}

// InventoryClient is an InventoryService backed by the inventory API
type InventoryClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

type stockIncrementRequest struct {
	Items []stockIncrementItem `json:"items"`
}

type stockIncrementItem struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// NewInventoryClient returns an InventoryClient for the configured inventory API
func NewInventoryClient(cfg *config.Config) *InventoryClient {
	return &InventoryClient{
		BaseURL: strings.TrimRight(cfg.InventoryAPIURL, "/"),
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.InventoryTimeoutSeconds) * time.Second,
		},
	}
}

// IncrementStock asks the inventory API to add items back to stock. Repeated
// calls with the same idempotency key are applied once downstream.
func (client *InventoryClient) IncrementStock(ctx context.Context, idempotencyKey string, items []models.StockAdjustment) error {
	incrementRequest := stockIncrementRequest{Items: make([]stockIncrementItem, 0, len(items))}
	for _, item := range items {
		incrementRequest.Items = append(incrementRequest.Items, stockIncrementItem{VariantID: item.VariantID, Quantity: item.Quantity})
	}

	requestBody, err := json.Marshal(incrementRequest)
	if err != nil {
		return fmt.Errorf("error reading stock increment request: [%w]", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, client.BaseURL+"/inventory/stock-increments", bytes.NewBuffer(requestBody))
	if err != nil {
		return fmt.Errorf("error generating stock increment request: [%w]", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Idempotency-Key", idempotencyKey)

	resp, err := client.HTTPClient.Do(request)
	if err != nil {
		return fmt.Errorf("error sending stock increment request: [%w]", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("inventory API returned status [%d]: [%s]", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	log.Trace("stock increment accepted", log.Data{"idempotency_key": idempotencyKey, "items": len(items)})
	return nil
}
