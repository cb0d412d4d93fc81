package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Lex0104/Saphir/internal/config"
	"github.com/Lex0104/Saphir/internal/models"
)

const ContextUser = "currentUser"

// CurrentUser returns the authenticated requester, or nil for anonymous.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

func parseToken(c *gin.Context, cfg *config.Config) (uint, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, false
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	sub, ok := claims["sub"].(float64)
	if !ok {
		return 0, false
	}

	return uint(sub), true
}

func loadUser(db *gorm.DB, id uint) *models.User {
	var user models.User
	if err := db.Preload("Roles").First(&user, id).Error; err != nil {
		return nil
	}
	return &user
}

// AuthMiddleware requires a valid bearer token. Anonymous requesters are
// redirected to the login endpoint rather than handed a bare denial; a bad
// token is a 401.
func AuthMiddleware(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Redirect(http.StatusFound, cfg.LoginURL)
			c.Abort()
			return
		}

		id, ok := parseToken(c, cfg)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		user := loadUser(db, id)
		if user == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown_user"})
			return
		}

		c.Set(ContextUser, user)
		c.Next()
	}
}
