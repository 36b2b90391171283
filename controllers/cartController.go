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

var cartCollection *mongo.Collection = database.OpenCollection(database.Client, "cartItems")

// AddCartItem inserts a cart line for a user.
func AddCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var item models.CartItem

		if err := c.BindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		validationErr := validate.Struct(item)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		if item.UserEmail != nil {
			email := strings.ToLower(*item.UserEmail)
			item.UserEmail = &email
		}

		result, insertErr := cartCollection.InsertOne(ctx, item)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart item was not created"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

// GetCartItems lists one user's cart lines.
func GetCartItems() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		email := strings.ToLower(c.Param("email"))
		cursor, err := cartCollection.Find(ctx, bson.M{"userEmail": email})
		if err != nil {
			log.Println("error listing cart items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing cart items"})
			return
		}

		var items []models.CartItem
		if err = cursor.All(ctx, &items); err != nil {
			log.Println("error decoding cart items:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing cart items"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}
		c.JSON(http.StatusOK, items)
	}
}

// DeleteCartItem removes one cart line by id.
func DeleteCartItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		id, err := primitive.ObjectIDFromHex(c.Param("itemId"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart item id"})
			return
		}

		result, err := cartCollection.DeleteOne(ctx, bson.M{"_id": id})
		if err != nil {
			log.Println("error deleting cart item:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart item was not deleted"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
