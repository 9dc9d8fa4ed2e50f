package auth

import (
	"net/http"
	"strings"

	"swapi/models"

	"github.com/gin-gonic/gin"
)

// User is authenticated and its account still exists
type HandlerFunc func(c *gin.Context, user *models.User)

// Router is a wrapper class that adds bearer-token checks + User pre-loading
type Router struct {
	Base *gin.Engine
}

func (cr *Router) baseExec(c *gin.Context, handler HandlerFunc) {
	userID, err := ValidateToken(BearerToken(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	// The token may outlive the account
	user, err := models.UserByID(userID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "access denied"})
		return
	}
	handler(c, &user)
}

// BearerToken extracts the token from the Authorization header. A missing
// "Bearer" prefix is tolerated.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}

func (cr *Router) GET(path string, handler HandlerFunc) {
	cr.Base.GET(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) POST(path string, handler HandlerFunc) {
	cr.Base.POST(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}

func (cr *Router) DELETE(path string, handler HandlerFunc) {
	cr.Base.DELETE(path, func(c *gin.Context) {
		cr.baseExec(c, handler)
	})
}
