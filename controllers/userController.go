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
	"go.mongodb.org/mongo-driver/mongo"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "Users")

// CreateUser inserts a user record unless one already exists for the
// email. Emails are lower-cased before both the duplicate check and
// the insert, so identity is case-insensitive.
func CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var user models.User

		if err := c.BindJSON(&user); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// validate the data based on user struct
		validationErr := validate.Struct(user)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		email := strings.ToLower(*user.Email)
		user.Email = &email

		// check if the email has already been used by another user
		count, err := userCollection.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			log.Println("error checking for existing user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while checking for the email"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}

		result, insertErr := userCollection.InsertOne(ctx, user)
		if insertErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User item was not created"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "insertedId": result.InsertedID})
	}
}

// GetUserRole fetches the role record for an email. A miss is an
// explicit 404 rather than an empty body.
func GetUserRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		email := strings.ToLower(c.Param("email"))
		var user models.User

		err := userCollection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		if err != nil {
			log.Println("error fetching user role:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while fetching the user"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
