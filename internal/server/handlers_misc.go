package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mindflow/internal/wellness"
)

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) handleWellnessTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tips":      wellness.Tips(),
		"randomTip": wellness.Random(nil),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	stats, err := s.study.Stats(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (s *Server) handleAchievements(c *gin.Context) {
	statuses, err := s.study.Achievements(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}
