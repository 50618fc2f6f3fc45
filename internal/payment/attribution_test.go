package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderEvent_WaitingPayment(t *testing.T) {
	event := NewOrderEvent("tx_1", AttributionStatusWaiting, OrderCustomer{
		Name:     "Maria Souza",
		Document: "52998224725",
		Country:  "BR",
	}, AttributionProductID, "iPhone 17", 13990, map[string]string{
		"utm_source": "fb",
		"fbclid":     "abc123",
	})

	assert.Equal(t, "tx_1", event.OrderID)
	assert.Equal(t, "pix", event.PaymentMethod)
	assert.Equal(t, AttributionStatusWaiting, event.Status)
	assert.Nil(t, event.ApprovedDate)
	require.Len(t, event.Products, 1)
	assert.Equal(t, int64(13990), event.Products[0].PriceInCents)
	assert.Equal(t, int64(13990), event.Commission.TotalPriceInCents)
	assert.Equal(t, int64(0), event.Commission.GatewayFeeInCents)

	require.NotNil(t, event.TrackingParameters["utm_source"])
	assert.Equal(t, "fb", *event.TrackingParameters["utm_source"])
	assert.Nil(t, event.TrackingParameters["gclid"])
}

func TestNewOrderEvent_PaidSetsApprovedDate(t *testing.T) {
	event := NewOrderEvent("tx_1", AttributionStatusPaid, OrderCustomer{}, AttributionProductID, "iPhone 17", 13990, nil)
	require.NotNil(t, event.ApprovedDate)
	assert.Equal(t, event.CreatedAt, *event.ApprovedDate)
}

// Absent campaign parameters must serialize as explicit nulls, the shape
// the collector expects.
func TestOrderEvent_NullTracking(t *testing.T) {
	event := NewOrderEvent("tx_1", AttributionStatusWaiting, OrderCustomer{}, AttributionProductID, "iPhone 17", 100, nil)
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	tracking, ok := raw["trackingParameters"].(map[string]any)
	require.True(t, ok)
	for _, name := range trackingParamNames {
		v, present := tracking[name]
		assert.True(t, present, "missing %s", name)
		assert.Nil(t, v)
	}
}

func TestReport_SendsTokenHeader(t *testing.T) {
	var gotToken string
	var gotEvent OrderEvent

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("x-api-token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotEvent))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewAttributionClient(srv.URL, "secret-token", 5*time.Second)
	event := NewOrderEvent("tx_1", AttributionStatusWaiting, OrderCustomer{Document: "52998224725"}, AttributionProductID, "iPhone 17", 13990, nil)

	require.NoError(t, c.Report(context.Background(), event))
	assert.Equal(t, "secret-token", gotToken)
	assert.Equal(t, "tx_1", gotEvent.OrderID)
}

func TestReport_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewAttributionClient(srv.URL, "bad-token", 5*time.Second)
	err := c.Report(context.Background(), OrderEvent{})
	assert.Error(t, err)
}

func TestCustomerEmail(t *testing.T) {
	assert.Equal(t, "52998224725@cliente.com.br", CustomerEmail("529.982.247-25"))
}
