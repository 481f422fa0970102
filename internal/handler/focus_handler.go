package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"focusflow/backend/internal/middleware"
	"focusflow/backend/internal/service"
)

type FocusHandler struct {
	focusService *service.FocusService
}

type planRequest struct {
	EnergyLevel   string   `json:"energyLevel"`
	TimeAvailable int      `json:"timeAvailable"`
	FocusArea     string   `json:"focusArea"`
	TaskIDs       []string `json:"taskIds"`
	Query         string   `json:"query"`
}

type startSessionRequest struct {
	EnergyLevel  string `json:"energyLevel"`
	FocusMinutes int    `json:"focusMinutes"`
	BreakMinutes int    `json:"breakMinutes"`
	TaskCount    int    `json:"taskCount"`
}

type reflectionRequest struct {
	Completed bool   `json:"completed"`
	Feeling   string `json:"feeling"`
	Note      string `json:"note"`
}

func NewFocusHandler(focusService *service.FocusService) *FocusHandler {
	return &FocusHandler{focusService: focusService}
}

func (h *FocusHandler) GeneratePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	plan, apiErr := h.focusService.GeneratePlan(c.Request.Context(), middleware.UserID(c), service.PlanRequest{
		EnergyLevel:   req.EnergyLevel,
		TimeAvailable: req.TimeAvailable,
		FocusArea:     req.FocusArea,
		TaskIDs:       req.TaskIDs,
		Query:         req.Query,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plan": plan})
}

func (h *FocusHandler) StartSession(c *gin.Context) {
	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	session, apiErr := h.focusService.StartSession(c.Request.Context(), middleware.UserID(c), service.StartSessionInput{
		EnergyLevel:  req.EnergyLevel,
		FocusMinutes: req.FocusMinutes,
		BreakMinutes: req.BreakMinutes,
		TaskCount:    req.TaskCount,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session": session})
}

func (h *FocusHandler) AddReflection(c *gin.Context) {
	var req reflectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	session, apiErr := h.focusService.AddReflection(c.Request.Context(), middleware.UserID(c), c.Param("id"), service.ReflectionInput{
		Completed: req.Completed,
		Feeling:   req.Feeling,
		Note:      req.Note,
	})
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

func (h *FocusHandler) History(c *gin.Context) {
	limit := 50
	if rawLimit := c.Query("limit"); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			limit = parsed
		}
	}

	sessions, apiErr := h.focusService.History(c.Request.Context(), middleware.UserID(c), limit)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}
