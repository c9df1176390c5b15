package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/services"
	"github.com/yeremiapane/food-order-app/utils"
)

const callerContextKey = "caller"

// AuthMiddleware resolves the Bearer token to a CallerIdentity. The user
// record is re-read on every request rather than trusting claims baked into
// the token, so a deleted account or a revoked admin flag takes effect on
// the next request.
func AuthMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if utils.IsTokenBlacklisted(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("account no longer exists"))
			c.Abort()
			return
		}

		c.Set(callerContextKey, services.CallerIdentity{ID: user.ID, IsAdmin: user.IsAdmin})
		c.Set("token", tokenString)
		c.Next()
	}
}

// RequireAdmin gates admin routes. Runs after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Caller(c).IsAdmin {
			utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// Caller returns the identity resolved by AuthMiddleware. The zero value
// means the request never passed authentication.
func Caller(c *gin.Context) services.CallerIdentity {
	v, exists := c.Get(callerContextKey)
	if !exists {
		return services.CallerIdentity{}
	}
	caller, _ := v.(services.CallerIdentity)
	return caller
}
