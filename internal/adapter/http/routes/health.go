package routes

import (
	"net/http"
	"time"

	"gyeonjeok/internal/adapter/http/dto/response"
	"gyeonjeok/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, response.HealthResponse{
			Status:    "ok",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	})
}

func addAuthRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	rg.POST("/signup", authHandler.Signup)
}
