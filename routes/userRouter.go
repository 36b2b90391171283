package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
)

func UserRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/v1/users", controller.CreateUser())
	incomingRoutes.GET("/api/v1/user/role/:email", controller.GetUserRole())
}
