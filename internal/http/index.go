package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100"><text y=".9em" font-size="90">💪</text></svg>`

// Index greets API clients
// GET /
func Index(c *gin.Context) {
	respondOK(c, MessageResponse{Message: "Workout API"})
}

// Ping is a liveness probe that never touches the database
// GET /ping
func Ping(c *gin.Context) {
	respondOK(c, MessageResponse{Message: "pong"})
}

// Favicon serves the icon browsers ask for
// GET /favicon.ico
func Favicon(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=86400")
	c.Data(http.StatusOK, "image/svg+xml", []byte(faviconSVG))
}
