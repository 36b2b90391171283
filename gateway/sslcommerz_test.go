package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		StoreID:       "teststore",
		StorePassword: "testpass",
		BaseURL:       baseURL,
		HTTPClient:    http.DefaultClient,
	}
}

func sampleRequest() PaymentRequest {
	return PaymentRequest{
		TotalAmount:     25.5,
		Currency:        "USD",
		TranID:          "tran-42",
		SuccessURL:      "http://localhost:5000/api/v1/user/payment/success/tran-42?orderId=abc",
		FailURL:         "http://localhost:5000/api/v1/user/payment/fail/tran-42?orderId=abc",
		CancelURL:       "http://localhost:5173/cancel",
		IPNURL:          "http://localhost:5000/ipn",
		ShippingMethod:  "Courier",
		ProductName:     "Kacchi Biryani",
		ProductCategory: "Rice",
		ProductProfile:  "general",
		CustomerName:    "Diner",
		CustomerEmail:   "diner@example.com",
	}
}

func TestNewClientFromEnv(t *testing.T) {
	t.Setenv("STORE_ID", "env-store")
	t.Setenv("STORE_PASSWORD", "env-pass")
	t.Setenv("GATEWAY_LIVE", "")

	client := NewClientFromEnv()
	assert.Equal(t, "env-store", client.StoreID)
	assert.Equal(t, "env-pass", client.StorePassword)
	assert.Equal(t, sandboxURL, client.BaseURL)

	t.Setenv("GATEWAY_LIVE", "true")
	assert.Equal(t, liveURL, NewClientFromEnv().BaseURL)
}

func TestInitiateSessionSuccess(t *testing.T) {
	var posted url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		posted = r.PostForm
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"SUCCESS","GatewayPageURL":"https://pay.example.com/session/1"}`))
	}))
	defer server.Close()

	redirect, err := testClient(server.URL).InitiateSession(context.Background(), sampleRequest())
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/session/1", redirect)

	assert.Equal(t, "teststore", posted.Get("store_id"))
	assert.Equal(t, "testpass", posted.Get("store_passwd"))
	assert.Equal(t, "tran-42", posted.Get("tran_id"))
	assert.Equal(t, "25.50", posted.Get("total_amount"))
	assert.Equal(t, "USD", posted.Get("currency"))
	assert.Equal(t, "Dhaka", posted.Get("cus_add1"), "placeholder address block must be posted")
	assert.Equal(t, "Diner", posted.Get("ship_name"))
}

func TestInitiateSessionDeclined(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"FAILED","failedreason":"store credential error"}`))
	}))
	defer server.Close()

	_, err := testClient(server.URL).InitiateSession(context.Background(), sampleRequest())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store credential error")
}

func TestInitiateSessionHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := testClient(server.URL).InitiateSession(context.Background(), sampleRequest())
	assert.Error(t, err)
}

func TestInitiateSessionUnreachableGateway(t *testing.T) {
	client := testClient("http://127.0.0.1:1")

	_, err := client.InitiateSession(context.Background(), sampleRequest())
	assert.Error(t, err)
}
