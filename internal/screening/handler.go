package screening

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Repository *Repository
}

func NewHandler(r *Repository) *Handler {
	return &Handler{Repository: r}
}

func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/screening/import", h.Import)
	router.GET("/screening/:key", h.Get)
}

// Import replaces the screening table with the posted export.
func (h *Handler) Import(c *gin.Context) {
	var entries []Entry
	if err := c.BindJSON(&entries); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if err := h.Repository.Import(entries); err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not import screening data", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": len(entries)})
}

// Get resolves the screening status for an "order-line" key, or a bare
// order number.
func (h *Handler) Get(c *gin.Context) {
	order, line := splitKey(c.Param("key"))

	status, err := h.Repository.Lookup(order, line)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Could not look up screening status", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"key":       c.Param("key"),
		"fs_lot":    status.Lot,
		"fs_status": status.Status,
		"fs_info":   status.Info(),
	})
}

// splitKey separates "order-line" on the last dash; a key without a dash
// is an order-only lookup.
func splitKey(key string) (order, line string) {
	if i := strings.LastIndex(key, "-"); i > 0 {
		return key[:i], key[i+1:]
	}
	return key, ""
}
