package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
	"github.com/Mehedihasan444/restuarent-management-server-side/middleware"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/v1/user/food-order", controller.PlaceOrder())
	incomingRoutes.GET("/api/v1/customer-orders", controller.GetCustomerOrders())
	incomingRoutes.GET("/api/v1/user/food-orders/:userEmail", middleware.Authentication(), controller.GetUserFoodOrders())
	incomingRoutes.DELETE("/api/v1/user/delete-order/:orderId", controller.DeleteOrder())
}
