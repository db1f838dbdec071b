package incoming

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repository *Repository
}

func NewHandler(r *Repository) *Handler {
	return &Handler{Repository: r}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/incoming/import", h.Import)
}

// Import replaces the inbound shipment schedule with the posted export.
func (h *Handler) Import(c *gin.Context) {
	var shipments []Shipment
	if err := c.BindJSON(&shipments); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.Import(shipments); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not import incoming shipments", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(shipments)})
}
