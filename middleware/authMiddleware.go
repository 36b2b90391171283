package middleware

import (
	"net/http"

	helper "github.com/Mehedihasan444/restuarent-management-server-side/helpers"

	"github.com/gin-gonic/gin"
)

func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve the token from the session cookie.
		clientToken, err := c.Cookie("token")
		if err != nil || clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			c.Abort()
			return
		}

		// Validate the token and get the claims.
		claims, err := helper.ValidateToken(clientToken)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			c.Abort()
			return
		}

		// Set user information in the context from the claims.
		c.Set("email", claims.Email)

		c.Next() // Proceed to the next handler in the chain.
	}
}
