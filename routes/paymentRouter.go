package routes

import (
	"github.com/gin-gonic/gin"

	controller "github.com/Mehedihasan444/restuarent-management-server-side/controllers"
)

// All payment routes, callbacks included, are registered here at
// startup; the callbacks share nothing with the initiators beyond the
// correlation identifiers they carry.
func PaymentRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/api/v1/user/food/payment/:id", controller.InitiateOrderPayment())
	incomingRoutes.POST("/api/v1/user/foods/payment", controller.InitiateCartCheckout())
	incomingRoutes.POST("/api/v1/user/payment/success/:tranId", controller.PaymentSuccess())
	incomingRoutes.POST("/api/v1/user/payment/fail/:tranId", controller.PaymentFail())
}
