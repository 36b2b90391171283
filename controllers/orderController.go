package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Mehedihasan444/restuarent-management-server-side/database"
	"github.com/Mehedihasan444/restuarent-management-server-side/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "Orders")

// PlaceOrder inserts a new order with no payment status set; the
// payment callbacks are the only writers of that field.
func PlaceOrder() gin.HandlerFunc {
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

		result, insertErr := orderCollection.InsertOne(ctx, order)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order item was not created"})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// GetCustomerOrders lists every order.
func GetCustomerOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := orderCollection.Find(ctx, bson.M{})
		if err != nil {
			log.Println("error listing orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing order items"})
			return
		}

		var allOrders []models.Order
		if err = cursor.All(ctx, &allOrders); err != nil {
			log.Println("error decoding orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing order items"})
			return
		}
		if allOrders == nil {
			allOrders = []models.Order{}
		}
		c.JSON(http.StatusOK, allOrders)
	}
}

// userOrdersQuery authorizes a per-user order listing and builds its
// filter. Emails are identity, so both the token comparison and the
// stored-document filter use the lower-cased form.
func userOrdersQuery(tokenEmail, pathEmail string) (bson.M, bool) {
	email := strings.ToLower(pathEmail)
	if !strings.EqualFold(tokenEmail, email) {
		return nil, false
	}
	return bson.M{"userEmail": email}, true
}

// GetUserFoodOrders lists the orders of one user. The session cookie
// must carry the same email as the path, compared case-insensitively.
func GetUserFoodOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter, ok := userOrdersQuery(c.GetString("email"), c.Param("userEmail"))
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}

		cursor, err := orderCollection.Find(ctx, filter)
		if err != nil {
			log.Println("error listing user orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing order items"})
			return
		}

		var orders []models.Order
		if err = cursor.All(ctx, &orders); err != nil {
			log.Println("error decoding user orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing order items"})
			return
		}
		if orders == nil {
			orders = []models.Order{}
		}
		c.JSON(http.StatusOK, orders)
	}
}

// DeleteOrder removes one order by id.
func DeleteOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("orderId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
			return
		}

		result, err := orderCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Println("error deleting order:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Order item was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
