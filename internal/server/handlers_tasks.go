package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mindflow/internal/store"
)

type createTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1"`
	Description string     `json:"description"`
	Priority    string     `json:"priority" binding:"omitempty,oneof=low medium high"`
	PlanID      string     `json:"planId"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1"`
	Description *string `json:"description"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=low medium high"`
	Completed   *bool   `json:"completed"`
}

func (s *Server) handleListTasks(c *gin.Context) {
	tasks, err := s.study.Tasks(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}
	if req.Priority == "" {
		req.Priority = "medium"
	}

	task := &store.Task{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		PlanID:      req.PlanID,
		DueDate:     req.DueDate,
	}
	if err := s.study.CreateTask(c.Request.Context(), currentUser(c), task); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	changes := map[string]any{}
	if req.Title != nil {
		changes["title"] = *req.Title
	}
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Priority != nil {
		changes["priority"] = *req.Priority
	}
	if req.Completed != nil {
		changes["completed"] = *req.Completed
	}
	if len(changes) == 0 {
		s.respondError(c, errValidation("invalid input", "no fields to update"))
		return
	}

	task, err := s.study.UpdateTask(c.Request.Context(), currentUser(c), c.Param("id"), changes)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.study.DeleteTask(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
