package routes

// Routes used to define the URL routes and assign the req to the correspond controller

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
)

func FoodRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/api/v1/foods", controller.GetFoods())                       // Paged/filtered food listing
	incomingRoutes.GET("/api/v1/foods/desc", controller.GetTopSellingFoods())       // Best sellers first
	incomingRoutes.GET("/api/v1/foodDetails/:foodId", controller.GetFoodDetails())  // Get one food by ID
	incomingRoutes.PUT("/api/v1/foods/:foodId", controller.UpdateFoodStock())       // Quantity/sellCount update
	incomingRoutes.POST("/api/v1/user/add-food", controller.CreateFood())           // Create a food item
	incomingRoutes.GET("/api/v1/user/added-foods", controller.GetAddedFoods())      // Foods added by a user
	incomingRoutes.PUT("/api/v1/user/update-food/:foodId", controller.UpdateFood()) // Full food update
	incomingRoutes.DELETE("/api/v1/user/delete-food/:foodId", controller.DeleteFood())
	incomingRoutes.GET("/api/v1/home-banner-slider", controller.GetHomeBannerSlides())
}
