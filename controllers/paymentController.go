package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Mehedihasan444/restuarent-management-server-side/gateway"
	"github.com/Mehedihasan444/restuarent-management-server-side/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentGateway is the seam to the external payment collaborator.
type PaymentGateway interface {
	InitiateSession(ctx context.Context, req gateway.PaymentRequest) (string, error)
}

// newPaymentGateway builds the gateway client at request time so
// credentials loaded from .env are honored; tests swap in a fake.
var newPaymentGateway = func() PaymentGateway { return gateway.NewClientFromEnv() }

func serverURL() string {
	if v := os.Getenv("SERVER_URL"); v != "" {
		return v
	}
	return "http://localhost:5000"
}

func clientURL() string {
	if v := os.Getenv("CLIENT_URL"); v != "" {
		return v
	}
	return "http://localhost:5173"
}

// newTransactionID mints a fresh gateway correlation id. One id per
// initiation: concurrent payment attempts must never share one.
func newTransactionID() string {
	return uuid.NewString()
}

// callbackURLs builds the success and fail URLs the gateway will call
// back on, carrying the transaction id in the path and the order
// correlation in the query string.
func callbackURLs(tranID, correlationKey, correlationValue string) (successURL, failURL string) {
	successURL = fmt.Sprintf("%s/api/v1/user/payment/success/%s?%s=%s",
		serverURL(), tranID, correlationKey, url.QueryEscape(correlationValue))
	failURL = fmt.Sprintf("%s/api/v1/user/payment/fail/%s?%s=%s",
		serverURL(), tranID, correlationKey, url.QueryEscape(correlationValue))
	return successURL, failURL
}

// correlationFilter resolves a callback's orderId/code query pair into
// the order lookup filter. Exactly one of the two is expected.
func correlationFilter(orderID, code string) (bson.M, error) {
	if orderID != "" {
		id, err := primitive.ObjectIDFromHex(orderID)
		if err != nil {
			return nil, fmt.Errorf("invalid order id %q", orderID)
		}
		return bson.M{"_id": id}, nil
	}
	if code != "" {
		return bson.M{"code": code}, nil
	}
	return nil, fmt.Errorf("missing order correlation")
}

func strValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

// buildOrderPaymentRequest assembles the gateway session request for
// an already-placed order, correlated by the order's own id.
func buildOrderPaymentRequest(order models.Order, tranID string) gateway.PaymentRequest {
	successURL, failURL := callbackURLs(tranID, "orderId", order.ID.Hex())
	return gateway.PaymentRequest{
		TotalAmount:     floatValue(order.Price),
		Currency:        "USD",
		TranID:          tranID,
		SuccessURL:      successURL,
		FailURL:         failURL,
		CancelURL:       clientURL() + "/cancel",
		IPNURL:          serverURL() + "/ipn",
		ShippingMethod:  "Courier",
		ProductName:     strValue(order.FoodName),
		ProductCategory: strValue(order.FoodCategory),
		ProductProfile:  "general",
		CustomerName:    strValue(order.UserName),
		CustomerEmail:   strValue(order.UserEmail),
	}
}

// buildCheckoutPaymentRequest assembles the gateway session request
// for an inline cart checkout, correlated by the generated code.
func buildCheckoutPaymentRequest(order models.Order, tranID string) gateway.PaymentRequest {
	successURL, failURL := callbackURLs(tranID, "code", order.Code)
	return gateway.PaymentRequest{
		TotalAmount:     floatValue(order.TotalBill),
		Currency:        "USD",
		TranID:          tranID,
		SuccessURL:      successURL,
		FailURL:         failURL,
		CancelURL:       clientURL() + "/cancel",
		IPNURL:          serverURL() + "/ipn",
		ShippingMethod:  "Courier",
		ProductName:     "combine food",
		ProductCategory: "Mix category",
		ProductProfile:  "general",
		CustomerName:    strValue(order.UserName),
		CustomerEmail:   strValue(order.UserEmail),
	}
}

// InitiateOrderPayment starts a gateway session for an existing order
// and returns the redirect URL.
func InitiateOrderPayment() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		var order models.Order
		err = orderCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		if err != nil {
			log.Println("error fetching order for payment:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while fetching the order"})
			return
		}

		tranID := newTransactionID()
		redirectURL, err := newPaymentGateway().InitiateSession(ctx, buildOrderPaymentRequest(order, tranID))
		if err != nil {
			log.Printf("gateway session failed: tranId=%s orderId=%s err=%v", tranID, order.ID.Hex(), err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway is unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": redirectURL})
	}
}

// InitiateCartCheckout inserts an order for the whole cart, tagged
// with a generated checkout code, then starts a gateway session
// correlated by that code.
func InitiateCartCheckout() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		var order models.Order
		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		validationErr := validate.Struct(order)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		if order.UserEmail != nil {
			email := strings.ToLower(*order.UserEmail)
			order.UserEmail = &email
		}
		order.Code = uuid.NewString()
		order.Payment = ""
		order.TransactionID = ""

		if _, insertErr := orderCollection.InsertOne(ctx, order); insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order item was not created"})
			return
		}

		tranID := newTransactionID()
		redirectURL, err := newPaymentGateway().InitiateSession(ctx, buildCheckoutPaymentRequest(order, tranID))
		if err != nil {
			log.Printf("gateway session failed: tranId=%s code=%s err=%v", tranID, order.Code, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Payment gateway is unavailable"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"url": redirectURL})
	}
}

// resolveCallbackOrder loads the order a gateway callback refers to.
// It answers the request itself on every failure path and returns ok
// only when a live, non-terminal order was found.
func resolveCallbackOrder(ctx context.Context, c *gin.Context, tranID string) (order models.Order, filter bson.M, ok bool) {
	filter, err := correlationFilter(c.Query("orderId"), c.Query("code"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return order, nil, false
	}

	err = orderCollection.FindOne(ctx, filter).Decode(&order)
	if err == mongo.ErrNoDocuments {
		log.Printf("payment callback for unknown order: tranId=%s filter=%v", tranID, filter)
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return order, nil, false
	}
	if err != nil {
		log.Println("error fetching order for callback:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while fetching the order"})
		return order, nil, false
	}
	return order, filter, true
}

// notTerminal narrows an update filter so a terminal payment status
// can never be overwritten, even by a racing callback.
func notTerminal(filter bson.M) bson.M {
	narrowed := bson.M{"payment": bson.M{"$nin": []string{models.PaymentComplete, models.PaymentFailed}}}
	for k, v := range filter {
		narrowed[k] = v
	}
	return narrowed
}

// PaymentSuccess is the gateway's success callback. It moves the
// correlated order to complete, records the transaction id, clears
// the paying user's cart in the checkout flow, and redirects the
// buyer to the success page.
func PaymentSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tranID := c.Param("tranId")
		order, filter, ok := resolveCallbackOrder(ctx, c, tranID)
		if !ok {
			return
		}

		redirect := clientURL() + "/api/v1/payment-complete/" + tranID
		if order.Terminal() {
			// Duplicate delivery; nothing left to do.
			log.Printf("payment callback on terminal order: tranId=%s payment=%s", tranID, order.Payment)
			c.Redirect(http.StatusFound, redirect)
			return
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "payment", Value: models.PaymentComplete},
			{Key: "transactionId", Value: tranID},
		}}}
		result, err := orderCollection.UpdateOne(ctx, notTerminal(filter), update)
		if err != nil {
			log.Println("error completing payment:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order item update failed"})
			return
		}
		if result.ModifiedCount == 0 {
			log.Printf("payment completion matched no live order: tranId=%s", tranID)
		}

		// Checkout orders carry a code; for those, clear the paying
		// user's cart lines. Best effort, scoped to the order's owner.
		if order.Code != "" && order.UserEmail != nil {
			if _, err := cartCollection.DeleteMany(ctx, bson.M{"userEmail": *order.UserEmail}); err != nil {
				log.Println("error clearing cart after payment:", err)
			}
		}

		c.Redirect(http.StatusFound, redirect)
	}
}

// PaymentFail is the gateway's failure callback. It moves the
// correlated order to failed without recording a transaction id and
// redirects the buyer to the failure page.
func PaymentFail() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		tranID := c.Param("tranId")
		order, filter, ok := resolveCallbackOrder(ctx, c, tranID)
		if !ok {
			return
		}

		redirect := clientURL() + "/api/v1/payment-failed/" + tranID
		if order.Terminal() {
			log.Printf("payment callback on terminal order: tranId=%s payment=%s", tranID, order.Payment)
			c.Redirect(http.StatusFound, redirect)
			return
		}

		update := bson.D{{Key: "$set", Value: bson.D{
			{Key: "payment", Value: models.PaymentFailed},
		}}}
		result, err := orderCollection.UpdateOne(ctx, notTerminal(filter), update)
		if err != nil {
			log.Println("error failing payment:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order item update failed"})
			return
		}
		if result.ModifiedCount == 0 {
			log.Printf("payment failure matched no live order: tranId=%s", tranID)
		}

		c.Redirect(http.StatusFound, redirect)
	}
}
