package controllers

import (
	"net/http"

	helper "github.com/Mehedihasan444/restuarent-management-server-side/helpers"

	"github.com/gin-gonic/gin"
)

// CreateAccessToken issues the session cookie: a signed token carrying
// the user's email, delivered httpOnly / secure / SameSite=None.
func CreateAccessToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Email string `json:"email"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.Email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
			return
		}

		token, err := helper.GenerateToken(body.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token was not created"})
			return
		}

		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie("token", token, int(helper.TokenLifetime.Seconds()), "/", "", true, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// LogOut clears the session cookie.
func LogOut() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetSameSite(http.SameSiteNoneMode)
		c.SetCookie("token", "", -1, "/", "", true, true)
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
