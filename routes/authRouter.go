package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
)

func AuthRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/v1/auth/access-token", controller.CreateAccessToken())
	incomingRoutes.POST("/logOut", controller.LogOut())
}
