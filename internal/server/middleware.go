package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const userKey = "user_id"

// requireAuth resolves the session cookie to a user and stores the user
// id in the request context.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			s.respondError(c, errUnauthorized("authentication required"))
			return
		}

		user, err := s.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			s.respondError(c, err)
			return
		}

		c.Set(userKey, user.ID)
		c.Next()
	}
}

func currentUser(c *gin.Context) string {
	return c.GetString(userKey)
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// recovery turns panics into opaque 500s instead of dropped connections.
func (s *Server) recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				s.log.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path))
				c.AbortWithStatusJSON(errInternal().Status, errInternal())
			}
		}()
		c.Next()
	}
}
