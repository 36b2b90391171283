package controllers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Mehedihasan444/restuarent-management-server-side/database"
	"github.com/Mehedihasan444/restuarent-management-server-side/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var sliderCollection *mongo.Collection = database.OpenCollection(database.Client, "HomeBannerSlider")

// GetHomeBannerSlides lists the home-page banner records.
func GetHomeBannerSlides() gin.HandlerFunc {
	return func(c *gin.Context) {
		var ctx, cancel = context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		cursor, err := sliderCollection.Find(ctx, bson.M{})
		if err != nil {
			log.Println("error listing banner slides:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing banner slides"})
			return
		}

		var slides []models.BannerSlide
		if err = cursor.All(ctx, &slides); err != nil {
			log.Println("error decoding banner slides:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error occur while listing banner slides"})
			return
		}
		if slides == nil {
			slides = []models.BannerSlide{}
		}
		c.JSON(http.StatusOK, slides)
	}
}
