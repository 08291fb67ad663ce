package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"studenttrip/logger"
	"studenttrip/planner"
	"studenttrip/services"
	"studenttrip/store"
)

type Handler struct {
	planner   *services.Planner
	rand      planner.Randomizer
	aiEnabled bool
}

func New(p *services.Planner, r planner.Randomizer, aiEnabled bool) *Handler {
	if r == nil {
		r = planner.DefaultRandomizer()
	}
	return &Handler{planner: p, rand: r, aiEnabled: aiEnabled}
}

func (h *Handler) CreatePlan(c *gin.Context) {
	var req services.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	plan, err := h.planner.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, plan)
}

func (h *Handler) GetPlan(c *gin.Context) {
	plan, err := h.planner.Store().GetPlan(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

func (h *Handler) Health(c *gin.Context) {
	ai := "fallback"
	if h.aiEnabled {
		ai = "enabled"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "Student Travel Planner API",
		"ai":      ai,
	})
}

// respondError maps domain errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Message, "field": vErr.Field})
	case errors.Is(err, planner.ErrUnknownCategory), errors.Is(err, planner.ErrInvalidDuration):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrPlanNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
	default:
		_ = c.Error(err)
		logger.L().Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
