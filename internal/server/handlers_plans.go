package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mindflow/internal/planner"
	"github.com/abhisek/mindflow/internal/study"
	"github.com/abhisek/mindflow/internal/subjects"
)

type createPlanRequest struct {
	RawTasks       string   `json:"rawTasks" binding:"required,min=3"`
	AvailableHours int      `json:"availableHours" binding:"required,min=1,max=24"`
	Subject        string   `json:"subject"`
	CustomSubject  string   `json:"customSubject"`
	KnowledgeLevel string   `json:"knowledgeLevel" binding:"omitempty,oneof=beginner intermediate advanced"`
	Challenges     []string `json:"challenges"`
	EnergyTime     string   `json:"energyTime" binding:"omitempty,oneof=morning afternoon night"`
}

type planResponse struct {
	ID             string   `json:"id"`
	Subject        string   `json:"subject"`
	CustomSubject  string   `json:"customSubject,omitempty"`
	KnowledgeLevel string   `json:"knowledgeLevel"`
	AvailableHours int      `json:"availableHours"`
	Challenges     []string `json:"challenges"`
	EnergyTime     string   `json:"energyTime,omitempty"`
	RawTasks       string   `json:"rawTasks"`
	CreatedAt      string   `json:"createdAt"`
	Plan           any      `json:"generatedPlan"`
}

func planJSON(res *study.PlanResult) planResponse {
	return planResponse{
		ID:             res.Record.ID,
		Subject:        res.Record.Subject,
		CustomSubject:  res.Record.CustomSubject,
		KnowledgeLevel: res.Record.KnowledgeLevel,
		AvailableHours: res.Record.AvailableHours,
		Challenges:     study.DecodeChallenges(res.Record.Challenges),
		EnergyTime:     res.Record.EnergyTime,
		RawTasks:       res.Record.RawTasks,
		CreatedAt:      res.Record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		Plan:           res.Plan,
	}
}

func (s *Server) handleCreatePlan(c *gin.Context) {
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	res, err := s.study.GeneratePlan(c.Request.Context(), currentUser(c), study.CreatePlanInput{
		RawTasks:       req.RawTasks,
		AvailableHours: req.AvailableHours,
		Subject:        req.Subject,
		CustomSubject:  req.CustomSubject,
		KnowledgeLevel: subjects.KnowledgeLevel(req.KnowledgeLevel),
		Challenges:     req.Challenges,
		EnergyTime:     planner.EnergyTime(req.EnergyTime),
	})
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planJSON(res))
}

func (s *Server) handleRegeneratePlan(c *gin.Context) {
	res, err := s.study.RegeneratePlan(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planJSON(res))
}

func (s *Server) handleListPlans(c *gin.Context) {
	plans, err := s.study.Plans(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

func (s *Server) handleLatestPlan(c *gin.Context) {
	res, err := s.study.LatestPlan(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planJSON(res))
}

func (s *Server) handleGetPlan(c *gin.Context) {
	res, err := s.study.Plan(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, planJSON(res))
}

type adaptPlanRequest struct {
	Emotion   string `json:"emotion" binding:"required,oneof=happy normal anxious tired frustrated"`
	Intensity int    `json:"intensity" binding:"required,min=1,max=5"`
	Context   string `json:"context"`
}

func (s *Server) handleAdaptPlan(c *gin.Context) {
	var req adaptPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errValidation("invalid input", bindingDetails(err)))
		return
	}

	res, err := s.study.AdaptToEmotion(c.Request.Context(), currentUser(c), c.Param("id"),
		planner.Emotion(req.Emotion), req.Intensity, req.Context)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":     res.Plan,
		"feedback": res.Feedback,
	})
}

func (s *Server) handleCompleteItem(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		s.respondError(c, errValidation("invalid input", "itemId must be an integer"))
		return
	}

	res, stats, err := s.study.CompleteTask(c.Request.Context(), currentUser(c), c.Param("id"), itemID)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"plan":  res.Plan,
		"stats": stats,
	})
}
