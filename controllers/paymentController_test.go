package controllers

import (
	"sync"
	"testing"

	"github.com/Mehedihasan444/restuarent-management-server-side/gateway"
	"github.com/Mehedihasan444/restuarent-management-server-side/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func TestNewTransactionIDDistinctPerInitiation(t *testing.T) {
	// Concurrent initiations must never share a transaction id.
	const n = 50
	ids := make(chan string, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- newTransactionID()
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[string]bool{}
	for id := range ids {
		assert.False(t, seen[id], "transaction id %s issued twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestNewPaymentGatewayReadsEnvAtCall(t *testing.T) {
	// Credentials that arrive after package init (e.g. from .env)
	// must reach the client; nothing may snapshot them early.
	t.Setenv("STORE_ID", "late-store")
	t.Setenv("STORE_PASSWORD", "late-pass")

	client, ok := newPaymentGateway().(*gateway.Client)
	require.True(t, ok)
	assert.Equal(t, "late-store", client.StoreID)
	assert.Equal(t, "late-pass", client.StorePassword)
}

func TestCorrelationFilterByOrderID(t *testing.T) {
	id := primitive.NewObjectID()

	filter, err := correlationFilter(id.Hex(), "")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": id}, filter)
}

func TestCorrelationFilterByCode(t *testing.T) {
	filter, err := correlationFilter("", "checkout-code-1")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"code": "checkout-code-1"}, filter)
}

func TestCorrelationFilterPrefersOrderID(t *testing.T) {
	id := primitive.NewObjectID()

	filter, err := correlationFilter(id.Hex(), "some-code")
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": id}, filter)
}

func TestCorrelationFilterRejectsBadInput(t *testing.T) {
	_, err := correlationFilter("not-an-object-id", "")
	assert.Error(t, err)

	_, err = correlationFilter("", "")
	assert.Error(t, err, "a callback without correlation is unanswerable")
}

func TestNotTerminalExcludesTerminalOrders(t *testing.T) {
	filter := notTerminal(bson.M{"code": "abc"})

	assert.Equal(t, "abc", filter["code"])
	assert.Equal(t, bson.M{"$nin": []string{models.PaymentComplete, models.PaymentFailed}}, filter["payment"])
}

func TestOrderTerminal(t *testing.T) {
	assert.False(t, models.Order{}.Terminal())
	assert.True(t, models.Order{Payment: models.PaymentComplete}.Terminal())
	assert.True(t, models.Order{Payment: models.PaymentFailed}.Terminal())
}

func TestBuildOrderPaymentRequest(t *testing.T) {
	order := models.Order{
		ID:           primitive.NewObjectID(),
		UserEmail:    strPtr("diner@example.com"),
		UserName:     strPtr("Diner"),
		FoodName:     strPtr("Kacchi Biryani"),
		FoodCategory: strPtr("Rice"),
		Price:        floatPtr(12.5),
	}

	req := buildOrderPaymentRequest(order, "tran-1")

	assert.Equal(t, 12.5, req.TotalAmount)
	assert.Equal(t, "USD", req.Currency)
	assert.Equal(t, "tran-1", req.TranID)
	assert.Equal(t, "Kacchi Biryani", req.ProductName)
	assert.Equal(t, "Rice", req.ProductCategory)
	assert.Equal(t, "Diner", req.CustomerName)
	assert.Equal(t, "diner@example.com", req.CustomerEmail)

	assert.Contains(t, req.SuccessURL, "/api/v1/user/payment/success/tran-1")
	assert.Contains(t, req.SuccessURL, "orderId="+order.ID.Hex())
	assert.Contains(t, req.FailURL, "/api/v1/user/payment/fail/tran-1")
	assert.Contains(t, req.FailURL, "orderId="+order.ID.Hex())
}

func TestBuildCheckoutPaymentRequest(t *testing.T) {
	order := models.Order{
		UserEmail: strPtr("diner@example.com"),
		UserName:  strPtr("Diner"),
		TotalBill: floatPtr(44),
		Code:      "code-9",
	}

	req := buildCheckoutPaymentRequest(order, "tran-2")

	assert.Equal(t, 44.0, req.TotalAmount)
	assert.Equal(t, "combine food", req.ProductName)
	assert.Equal(t, "Mix category", req.ProductCategory)
	assert.Contains(t, req.SuccessURL, "code=code-9")
	assert.Contains(t, req.FailURL, "code=code-9")
}

func TestBuildPaymentRequestsUseDistinctTransactionIDs(t *testing.T) {
	order := models.Order{ID: primitive.NewObjectID(), Price: floatPtr(1)}

	first := buildOrderPaymentRequest(order, newTransactionID())
	second := buildOrderPaymentRequest(order, newTransactionID())

	assert.NotEqual(t, first.TranID, second.TranID,
		"repeated initiations for the same order must not share an id")
}
