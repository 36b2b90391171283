package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
)

func CartRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/v1/user/cart", controller.AddCartItem())
	incomingRoutes.GET("/api/v1/user/cart/:email", controller.GetCartItems())
	incomingRoutes.DELETE("/api/v1/user/cart/delete-item/:itemId", controller.DeleteCartItem())
}
