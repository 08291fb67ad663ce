package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"studenttrip/planner"
)

type TransportRequest struct {
	Origin      string                  `json:"origin" binding:"required"`
	Destination string                  `json:"destination" binding:"required"`
	Preferences []planner.TransportMode `json:"preferences"`
	Budget      int                     `json:"budget"`
}

type AccommodationRequest struct {
	Destination string                      `json:"destination" binding:"required"`
	Duration    int                         `json:"duration" binding:"required,gt=0"`
	Types       []planner.AccommodationType `json:"types"`
	Budget      int                         `json:"budget"`
	TravelStyle planner.TravelStyle         `json:"travel_style"`
}

type ItineraryRequest struct {
	Destination  string             `json:"destination" binding:"required"`
	Duration     int                `json:"duration"`
	Interests    []planner.Interest `json:"interests"`
	BudgetPerDay int                `json:"budget_per_day"`
}

type ItineraryResponse struct {
	planner.Itinerary
	Total          int   `json:"total"`
	OverBudgetDays []int `json:"over_budget_days"`
}

func (h *Handler) Transport(c *gin.Context) {
	var req TransportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	options := planner.SelectTransportation(h.rand, req.Origin, req.Destination, req.Preferences, req.Budget)
	c.JSON(http.StatusOK, gin.H{"options": options})
}

func (h *Handler) Accommodation(c *gin.Context) {
	var req AccommodationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.TravelStyle == "" {
		req.TravelStyle = planner.Balanced
	}

	options := planner.SelectAccommodation(h.rand, req.Destination, req.Duration, req.Types, req.Budget, req.TravelStyle)
	c.JSON(http.StatusOK, gin.H{"options": options})
}

func (h *Handler) Itinerary(c *gin.Context) {
	var req ItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	it, err := planner.BuildItinerary(h.rand, req.Destination, req.Duration, req.Interests, req.BudgetPerDay)
	if err != nil {
		respondError(c, err)
		return
	}

	over := it.OverBudgetDays()
	if over == nil {
		over = []int{}
	}
	c.JSON(http.StatusOK, ItineraryResponse{Itinerary: it, Total: it.Total(), OverBudgetDays: over})
}

func (h *Handler) Safety(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing destination"})
		return
	}
	c.JSON(http.StatusOK, planner.SafetyTips(destination))
}
