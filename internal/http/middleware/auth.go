package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/naviproai/navi-backend/internal/clients/identity"
	"github.com/naviproai/navi-backend/internal/pkg/logger"
	"github.com/naviproai/navi-backend/internal/requestdata"
	"github.com/naviproai/navi-backend/internal/utils"
)

// AuthMiddleware resolves the caller's identity from the bearer token. When
// an identity service is configured the token is resolved remotely; otherwise
// it is verified locally against the shared HS256 secret.
type AuthMiddleware struct {
	log       *logger.Logger
	identity  identity.Client
	jwtSecret []byte
}

func NewAuthMiddleware(log *logger.Logger, identityClient identity.Client) *AuthMiddleware {
	middlewareLogger := log.With("Middleware", "AuthMiddleware")
	secret := utils.GetEnv("JWT_SECRET_KEY", "", middlewareLogger)
	return &AuthMiddleware{
		log:       middlewareLogger,
		identity:  identityClient,
		jwtSecret: []byte(secret),
	}
}

func (am *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "missing or invalid token", "code": "unauthorized"},
			})
			return
		}

		rd, err := am.resolve(c, tokenString)
		if err != nil {
			am.log.Debug("Token resolution failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "invalid or expired token", "code": "unauthorized"},
			})
			return
		}
		if rd.UserID == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "forbidden", "code": "forbidden"},
			})
			return
		}

		ctx := requestdata.WithRequestData(c.Request.Context(), rd)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func (am *AuthMiddleware) resolve(c *gin.Context, tokenString string) (*requestdata.RequestData, error) {
	if am.identity != nil {
		user, err := am.identity.ResolveToken(c.Request.Context(), tokenString)
		if err != nil {
			return nil, err
		}
		return &requestdata.RequestData{
			TokenString: tokenString,
			UserID:      user.ID,
			Email:       user.Email,
		}, nil
	}
	return am.verifyLocal(tokenString)
}

func (am *AuthMiddleware) verifyLocal(tokenString string) (*requestdata.RequestData, error) {
	if len(am.jwtSecret) == 0 {
		return nil, errors.New("no identity service and no JWT secret configured")
	}
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return am.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		sub, _ = claims["user_id"].(string)
	}
	email, _ := claims["email"].(string)
	return &requestdata.RequestData{
		TokenString: tokenString,
		UserID:      sub,
		Email:       email,
	}, nil
}

func extractToken(c *gin.Context) string {
	if qToken := c.Query("token"); qToken != "" {
		return qToken
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "Bearer ") {
		return authHeader[7:]
	}
	return ""
}
