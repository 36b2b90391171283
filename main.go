// Use Gin web framework in Go and MongoDB as database.
package main

import (
	"os"

	// config loads .env during package init, before any package
	// snapshots the environment
	_ "github.com/Mehedihasan444/restuarent-management-server-side/config"
	"github.com/Mehedihasan444/restuarent-management-server-side/metrics"
	routes "github.com/Mehedihasan444/restuarent-management-server-side/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	port := os.Getenv("PORT")

	// default port is 5000
	if port == "" {
		port = "5000"
	}

	clientOrigin := os.Getenv("CLIENT_ORIGIN")
	if clientOrigin == "" {
		clientOrigin = "http://localhost:5173"
	}

	// create a new Gin router and use the built-in logging middleware on Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// credentialed CORS for the storefront origin
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{clientOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
	}))

	// request metrics for every route
	serverMetrics := metrics.NewServerMetrics("api")
	router.Use(serverMetrics.Middleware())
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Restaurant is running")
	})

	// set up all routes at startup
	routes.UserRoutes(router)
	routes.AuthRoutes(router)
	routes.FoodRoutes(router)
	routes.OrderRoutes(router)
	routes.CartRoutes(router)
	routes.PaymentRoutes(router)

	// start the gin server and listen on the configured port
	router.Run(":" + port)
}
