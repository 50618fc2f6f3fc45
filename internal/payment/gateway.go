package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

var (
	ErrInvalidAmount  = errors.New("charge amount must be positive")
	ErrGatewayFailure = errors.New("gateway charge failed")
)

// Upstream status strings that count as a settled payment.
var paidStatuses = map[string]bool{
	"COMPLETED": true,
	"PAID":      true,
	"APPROVED":  true,
}

// ChargeRequest describes one PIX charge to create.
type ChargeRequest struct {
	AmountCents    int64
	Document       string
	Name           string
	Email          string
	Phone          string
	ProductName    string
	IdempotencyKey string
}

// Charge is the payable result handed back to the payment screen.
type Charge struct {
	PixCode       string `json:"pixCode"`
	TransactionID string `json:"transactionId"`
	QRCodeURL     string `json:"qrCodeUrl"`
}

// Status is the polled payment state. Transport and decode failures
// collapse to {false, "ERROR"} instead of propagating.
type Status struct {
	IsPaid bool   `json:"isPaid"`
	Status string `json:"status"`
}

// Gateway creates PIX charges and reports their settlement status.
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error)
	CheckStatus(ctx context.Context, transactionID string) Status
}

// HTTPGateway talks to the hosted PIX gateway. The credentialed endpoint
// URL stays server-side only.
type HTTPGateway struct {
	endpoint   string
	qrBaseURL  string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*Charge]
}

func NewHTTPGateway(endpoint, qrBaseURL string, timeout time.Duration) *HTTPGateway {
	return &HTTPGateway{
		endpoint:  endpoint,
		qrBaseURL: qrBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// charge creation stops hammering a broken gateway; status polls
		// stay unbreakered because they already degrade gracefully
		breaker: gobreaker.NewCircuitBreaker[*Charge](gobreaker.Settings{
			Name:    "pix-gateway",
			Timeout: 30 * time.Second,
		}),
	}
}

type gatewayCustomer struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type gatewayItem struct {
	Title    string `json:"title"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

type createChargeBody struct {
	Amount        int64           `json:"amount"`
	Description   string          `json:"description"`
	Customer      gatewayCustomer `json:"customer"`
	Item          gatewayItem     `json:"item"`
	PaymentMethod string          `json:"paymentMethod"`
}

type createChargeResponse struct {
	PixCode       string `json:"pixCode"`
	TransactionID string `json:"transactionId"`
	ID            string `json:"id"`
}

// CreateCharge issues the create-charge POST. The idempotency key ties the
// request to the originating session so a retried request cannot create a
// duplicate charge upstream.
func (g *HTTPGateway) CreateCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if req.AmountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	charge, err := g.breaker.Execute(func() (*Charge, error) {
		return g.createCharge(ctx, req)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
		}
		return nil, err
	}
	return charge, nil
}

func (g *HTTPGateway) createCharge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	body := createChargeBody{
		Amount:      req.AmountCents,
		Description: fmt.Sprintf("Entrada - %s", req.ProductName),
		Customer: gatewayCustomer{
			Name:     req.Name,
			Document: req.Document,
			Email:    req.Email,
			Phone:    req.Phone,
		},
		Item: gatewayItem{
			Title:    req.ProductName,
			Price:    req.AmountCents,
			Quantity: 1,
		},
		PaymentMethod: "PIX",
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrGatewayFailure, resp.StatusCode)
	}

	var result createChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGatewayFailure, err)
	}
	if result.PixCode == "" {
		return nil, fmt.Errorf("%w: response missing pixCode", ErrGatewayFailure)
	}

	transactionID := result.TransactionID
	if transactionID == "" {
		transactionID = result.ID
	}
	if transactionID == "" {
		transactionID = fmt.Sprintf("pix_%d", time.Now().UnixMilli())
	}

	return &Charge{
		PixCode:       result.PixCode,
		TransactionID: transactionID,
		QRCodeURL:     g.qrCodeURL(result.PixCode),
	}, nil
}

type statusResponse struct {
	Status string `json:"status"`
}

// CheckStatus polls the gateway for a transaction. Any failure downgrades
// to not-paid with status ERROR; polling must never break the flow.
func (g *HTTPGateway) CheckStatus(ctx context.Context, transactionID string) Status {
	pollURL := fmt.Sprintf("%s?transactionId=%s", g.endpoint, url.QueryEscape(transactionID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pollURL, nil)
	if err != nil {
		return Status{IsPaid: false, Status: "ERROR"}
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return Status{IsPaid: false, Status: "ERROR"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Status{IsPaid: false, Status: "ERROR"}
	}

	var result statusResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return Status{IsPaid: false, Status: "ERROR"}
	}

	status := result.Status
	if status == "" {
		status = "PENDING"
	}
	return Status{
		IsPaid: paidStatuses[strings.ToUpper(status)],
		Status: status,
	}
}

// qrCodeURL delegates QR rendering to the public renderer; there is no
// local encoding.
func (g *HTTPGateway) qrCodeURL(pixCode string) string {
	return fmt.Sprintf("%s?data=%s&size=300x300", g.qrBaseURL, url.QueryEscape(pixCode))
}
