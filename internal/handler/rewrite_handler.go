package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focusflow/backend/internal/service"
)

type RewriteHandler struct {
	rewriteService *service.RewriteService
}

type rewriteRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

func NewRewriteHandler(rewriteService *service.RewriteService) *RewriteHandler {
	return &RewriteHandler{rewriteService: rewriteService}
}

func (h *RewriteHandler) Rewrite(c *gin.Context) {
	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": gin.H{"code": "invalid_json", "message": "invalid request body"},
		})
		return
	}

	rewritten, apiErr := h.rewriteService.Rewrite(c.Request.Context(), req.Text, req.Tone)
	if apiErr != nil {
		writeError(c, apiErr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": rewritten})
}
