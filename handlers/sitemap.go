package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
)

// Sitemap lists every registered route, mirroring what the API offers.
func Sitemap(router *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		endpoints := []string{}
		for _, route := range router.Routes() {
			endpoints = append(endpoints, route.Method+" "+route.Path)
		}
		sort.Strings(endpoints)
		c.JSON(http.StatusOK, gin.H{"endpoints": endpoints})
	}
}
