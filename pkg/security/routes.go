package security

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Robindeep5394188/Material-Review/internal/rate_limiter"
	"github.com/Robindeep5394188/Material-Review/internal/repository"
)

type LoginHandler struct {
	repo        *repository.Repository
	rateLimiter *rate_limiter.RateLimiter
}

func NewLoginHandler(r *repository.Repository) *LoginHandler {
	return &LoginHandler{
		repo:        r,
		rateLimiter: rate_limiter.NewRateLimiter(10, 5*time.Minute),
	}
}

func (l *LoginHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/auth", l.Login)
}

func (l *LoginHandler) Login(c *gin.Context) {
	key := clientKey(c)
	if !l.rateLimiter.IsAllowed(key) {
		c.Header("X-RateLimit-Remaining", "0")
		c.JSON(http.StatusTooManyRequests, gin.H{
			"error":    "Too many login attempts, try again later",
			"reset_at": time.Now().Add(5 * time.Minute).Format(time.RFC3339),
		})
		return
	}

	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	user, err := AuthenticateUser(req.Username, req.Password, l.repo)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := GenerateJWT(user.ID, user.Role, user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// clientKey identifies the caller for rate limiting: the forwarded IP
// when present, extended with the user agent for private addresses so
// office NAT does not lock everyone out together.
func clientKey(c *gin.Context) string {
	clientIP := c.GetHeader("X-Forwarded-For")
	if clientIP == "" {
		clientIP = c.GetHeader("X-Real-IP")
	}
	if clientIP == "" {
		clientIP = c.ClientIP()
	}
	if strings.Contains(clientIP, ",") {
		clientIP = strings.TrimSpace(strings.Split(clientIP, ",")[0])
	}
	if isPrivateIP(clientIP) {
		clientIP = clientIP + ":" + c.GetHeader("User-Agent")
	}
	return clientIP
}

func isPrivateIP(ip string) bool {
	privatePrefixes := []string{
		"10.", "127.", "169.254.", "192.168.", "::1", "fc00::", "fe80::",
	}
	for i := 16; i <= 31; i++ {
		privatePrefixes = append(privatePrefixes, "172."+strconv.Itoa(i)+".")
	}
	for _, prefix := range privatePrefixes {
		if strings.HasPrefix(ip, prefix) {
			return true
		}
	}
	return false
}
