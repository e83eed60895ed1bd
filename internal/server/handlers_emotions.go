package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mindflow/internal/planner"
)

type createEmotionRequest struct {
	Emotion   string `json:"emotion" binding:"required,oneof=happy normal anxious tired frustrated"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=5"`
	Context   string `json:"context"`
}

func (s *Server) handleListEmotions(c *gin.Context) {
	entries, err := s.study.Emotions(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (s *Server) handleCreateEmotion(c *gin.Context) {
	var req createEmotionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	stats, err := s.study.RecordEmotion(c.Request.Context(), currentUser(c), req.Emotion, req.Intensity, req.Context)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"stats":   stats,
		"message": planner.Message(planner.Emotion(req.Emotion)),
	})
}
