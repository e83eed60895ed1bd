package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mindflow/internal/store"
)

type createSessionRequest struct {
	Duration    int        `json:"duration" binding:"required,min=1"`
	PlanID      string     `json:"planId"`
	TaskID      string     `json:"taskId"`
	FocusLevel  *int       `json:"focusLevel" binding:"omitempty,min=1,max=10"`
	Notes       string     `json:"notes"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (s *Server) handleListSessions(c *gin.Context) {
	sessions, err := s.study.Sessions(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (s *Server) handleCreateSession(c *gin.Context) {
	var req createSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	sess := &store.StudySession{
		Duration:    req.Duration,
		PlanID:      req.PlanID,
		TaskID:      req.TaskID,
		FocusLevel:  req.FocusLevel,
		Notes:       req.Notes,
		CompletedAt: req.CompletedAt,
	}
	stats, err := s.study.RecordSession(c.Request.Context(), currentUser(c), sess)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session": sess,
		"stats":   stats,
	})
}

type updateSessionRequest struct {
	FocusLevel  *int       `json:"focusLevel" binding:"omitempty,min=1,max=10"`
	Notes       *string    `json:"notes"`
	CompletedAt *time.Time `json:"completedAt"`
}

func (s *Server) handleUpdateSession(c *gin.Context) {
	var req updateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	changes := map[string]any{}
	if req.FocusLevel != nil {
		changes["focus_level"] = *req.FocusLevel
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if req.CompletedAt != nil {
		changes["completed_at"] = *req.CompletedAt
	}
	if len(changes) == 0 {
		s.respondError(c, errValidation("invalid input", "no fields to update"))
		return
	}

	sess, err := s.study.UpdateSession(c.Request.Context(), currentUser(c), c.Param("id"), changes)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}
