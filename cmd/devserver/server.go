package main

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/FaisalHanif12/PrimeForm-sub002/internal/config"
	"github.com/FaisalHanif12/PrimeForm-sub002/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const contextUserIDKey = "userID"

// devServer bundles the handlers' shared state.
type devServer struct {
	cfg    config.Config
	store  *memStore
	photos storage.PhotoStorage
}

func newDevServer(cfg config.Config, photos storage.PhotoStorage) *devServer {
	return &devServer{cfg: cfg, store: newMemStore(), photos: photos}
}

// jwtClaims mirrors what the client's identity manager reads back out.
type jwtClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

func (s *devServer) issueToken(userID string) (string, error) {
	expiration := s.cfg.JWT.Expiration
	if expiration <= 0 {
		expiration = 24 * time.Hour
	}
	claims := jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWT.Secret))
}

// authMiddleware validates the bearer token and stores the user id in the
// gin context.
func (s *devServer) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header is missing")
			return
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithError(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}

		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(s.cfg.JWT.Secret), nil
		})
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithError(c, http.StatusUnauthorized, "Token has expired")
			} else {
				abortWithError(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}
		if !token.Valid || claims.UserID == "" {
			abortWithError(c, http.StatusUnauthorized, "Invalid token or missing claims")
			return
		}

		c.Set(contextUserIDKey, claims.UserID)
		c.Next()
	}
}

func userID(c *gin.Context) string {
	return c.GetString(contextUserIDKey)
}

// respond writes the standard success envelope.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": true, "message": message})
}

func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"success": false, "message": message})
}

func (s *devServer) registerRoutes(router *gin.Engine) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", s.handleRegister)
		authGroup.POST("/login", s.handleLogin)
	}

	protected := apiV1.Group("")
	protected.Use(s.authMiddleware())
	{
		protected.GET("/profile", s.handleGetProfile)
		protected.PUT("/profile", s.handlePutProfile)

		protected.GET("/diet-plan", s.handleGetDietPlan)
		protected.DELETE("/diet-plan", s.handleDeleteDietPlan)
		protected.POST("/diet-plan/generate", s.handleGenerateDietPlan)

		protected.GET("/workout-plan", s.handleGetWorkoutPlan)
		protected.DELETE("/workout-plan", s.handleDeleteWorkoutPlan)
		protected.POST("/workout-plan/generate", s.handleGenerateWorkoutPlan)

		protected.GET("/trainer/conversations", s.handleListConversations)
		protected.POST("/trainer/conversations", s.handleCreateConversation)
		protected.POST("/trainer/messages", s.handleSendMessage)

		protected.POST("/progress/exercises", s.handleCompleteExercise)
		protected.POST("/progress/days", s.handleCompleteDay)
		protected.POST("/progress/sync", s.handleProgressSync)
		protected.GET("/progress/summary", s.handleProgressSummary)

		protected.GET("/notifications", s.handleListNotifications)
		protected.GET("/notifications/unread-count", s.handleUnreadCount)
		protected.POST("/notifications/read-all", s.handleReadAll)

		protected.POST("/progress/photos/upload-url", s.handlePhotoUploadURL)
		protected.POST("/progress/photos", s.handleConfirmPhoto)
	}
}
