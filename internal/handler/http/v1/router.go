package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the responder API routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/stats", h.getStats)

	api.GET("/responder/:id", h.getResponder)
	api.POST("/responder", h.createResponder)
	api.PUT("/responder", h.updateResponder)

	responders := api.Group("/responders")
	{
		responders.GET("", h.listResponders)
		responders.GET("/byname/:name", h.getResponderByName)
		responders.GET("/available", h.availableResponders)
		responders.GET("/person", h.personResponders)
		responders.POST("", h.createResponders)
		responders.POST("/reset", h.resetResponders)
		responders.POST("/clear", h.clearResponders)
	}

	api.GET("/health", h.healthCheck)
}
