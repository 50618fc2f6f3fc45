package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Order event statuses understood by the attribution collector.
const (
	AttributionStatusWaiting = "waiting_payment"
	AttributionStatusPaid    = "paid"
)

// trackingParamNames are the campaign parameters forwarded to the collector.
var trackingParamNames = []string{
	"src", "sck", "utm_source", "utm_campaign", "utm_medium",
	"utm_content", "utm_term", "xcod", "fbclid", "gclid",
}

// OrderEvent is the fixed order schema the attribution collector records.
type OrderEvent struct {
	OrderID            string             `json:"orderId"`
	Platform           string             `json:"platform"`
	PaymentMethod      string             `json:"paymentMethod"`
	Status             string             `json:"status"`
	CreatedAt          string             `json:"createdAt"`
	ApprovedDate       *string            `json:"approvedDate"`
	RefundedAt         *string            `json:"refundedAt"`
	Customer           OrderCustomer      `json:"customer"`
	Products           []OrderProduct     `json:"products"`
	TrackingParameters map[string]*string `json:"trackingParameters"`
	Commission         OrderCommission    `json:"commission"`
	IsTest             bool               `json:"isTest"`
}

type OrderCustomer struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	Document string  `json:"document"`
	Country  string  `json:"country"`
	IP       *string `json:"ip"`
}

type OrderProduct struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PlanID       *string `json:"planId"`
	PlanName     *string `json:"planName"`
	Quantity     int     `json:"quantity"`
	PriceInCents int64   `json:"priceInCents"`
}

type OrderCommission struct {
	TotalPriceInCents    int64 `json:"totalPriceInCents"`
	GatewayFeeInCents    int64 `json:"gatewayFeeInCents"`
	UserCommissionInCents int64 `json:"userCommissionInCents"`
}

// NewOrderEvent assembles a collector event for one charge. utms may be
// nil; missing parameters are reported as explicit nulls.
func NewOrderEvent(transactionID, status string, c OrderCustomer, productID, productName string, amountCents int64, utms map[string]string) OrderEvent {
	now := time.Now().UTC().Format(time.RFC3339)

	var approved *string
	if status == AttributionStatusPaid {
		approved = &now
	}

	tracking := make(map[string]*string, len(trackingParamNames))
	for _, name := range trackingParamNames {
		if v, ok := utms[name]; ok && v != "" {
			value := v
			tracking[name] = &value
		} else {
			tracking[name] = nil
		}
	}

	return OrderEvent{
		OrderID:       transactionID,
		Platform:      "Duttify",
		PaymentMethod: "pix",
		Status:        status,
		CreatedAt:     now,
		ApprovedDate:  approved,
		Customer:      c,
		Products: []OrderProduct{{
			ID:           productID,
			Name:         productName,
			Quantity:     1,
			PriceInCents: amountCents,
		}},
		TrackingParameters: tracking,
		Commission: OrderCommission{
			TotalPriceInCents:    amountCents,
			GatewayFeeInCents:    0,
			UserCommissionInCents: amountCents,
		},
	}
}

// AttributionClient reports order events to the marketing-attribution
// collector. All calls are best-effort: callers log failures and move on,
// the user never sees them.
type AttributionClient struct {
	url        string
	token      string
	httpClient *http.Client
}

func NewAttributionClient(url, token string, timeout time.Duration) *AttributionClient {
	return &AttributionClient{
		url:   url,
		token: token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Report posts one order event with the static credential header.
func (c *AttributionClient) Report(ctx context.Context, event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build attribution request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-token", c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("attribution post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("attribution collector returned status %d", resp.StatusCode)
	}
	return nil
}
