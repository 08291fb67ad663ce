package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studenttrip/planner"
	"studenttrip/services"
	"studenttrip/store"
)

const planBody = `{
	"origin": "london",
	"destination": "rome",
	"start_date": "2026-07-01",
	"end_date": "2026-07-04",
	"budget": 600,
	"travelers": 1,
	"travel_style": "💰 Budget Backpacker",
	"interests": ["Food", "🏛️ Museums"],
	"transport_preferences": ["Train", "Bus"],
	"accommodation_types": ["Hostel"]
}`

func newTestRouter(t *testing.T) (*gin.Engine, *store.Store[services.TravelPlan]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New[services.TravelPlan](time.Hour)
	p := services.NewPlanner(nil, s, time.Second, services.WithRandomizer(planner.NewSeededRandomizer(7)))
	h := New(p, planner.NewSeededRandomizer(7), false)
	return NewRouter(h, []string{"http://localhost:5173"}), s
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createPlan(t *testing.T, r http.Handler) services.TravelPlan {
	t.Helper()
	w := do(r, http.MethodPost, "/api/plan", planBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var plan services.TravelPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &plan))
	return plan
}

func TestHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "fallback", body["ai"])
}

func TestCreateAndGetPlan(t *testing.T) {
	r, s := newTestRouter(t)
	plan := createPlan(t, r)

	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "Rome", plan.Meta.Destination)
	assert.Equal(t, 3, plan.Meta.Days)
	assert.Equal(t, planner.BudgetBackpacker, plan.Meta.Style)
	assert.Equal(t, []planner.Interest{planner.Food, planner.Museums}, plan.Meta.Interests)
	assert.Equal(t, services.SourceFallback, plan.Recommendations.Source)
	assert.Equal(t, 1, s.Count())

	w := do(r, http.MethodGet, "/api/plan/"+plan.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	var got services.TravelPlan
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, plan.Options.Cost, got.Options.Cost)
}

func TestCreatePlan_BadRequests(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(r, http.MethodPost, "/api/plan", `{"origin": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/plan", strings.Replace(planBody, `"Food"`, `"Skydiving"`, 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/plan", strings.Replace(planBody, `"2026-07-04"`, `"2026-06-30"`, 1))
	require.Equal(t, http.StatusBadRequest, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "end_date", body["field"])
}

func TestGetPlan_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/plan/missing", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/plan/missing/download?format=pdf", "").Code)
}

func TestDownloadPlan(t *testing.T) {
	r, s := newTestRouter(t)
	plan := createPlan(t, r)

	w := do(r, http.MethodGet, "/api/plan/"+plan.ID+"/download", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "travel_plan_rome.md")
	assert.True(t, strings.HasPrefix(w.Body.String(), "# 🎒 Travel Plan: London → Rome"))

	_, cached := s.GetExport(plan.ID, formatPDF)
	assert.False(t, cached)

	w = do(r, http.MethodGet, "/api/plan/"+plan.ID+"/download?format=pdf", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))

	data, cached := s.GetExport(plan.ID, formatPDF)
	require.True(t, cached)
	assert.Equal(t, w.Body.Bytes(), data)

	w = do(r, http.MethodGet, "/api/plan/"+plan.ID+"/download?format=docx", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTransport(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/transport",
		`{"origin":"Berlin","destination":"Prague","preferences":["🚆 Train","Bus"],"budget":300}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Options []planner.TransportOption `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Options, 2)
	for i, o := range body.Options {
		pr, ok := planner.TransportPriceRange(o.Mode)
		require.True(t, ok, o.Mode)
		assert.True(t, pr.Contains(o.Price))
		if i > 0 {
			assert.LessOrEqual(t, body.Options[i-1].Price, o.Price)
		}
	}

	w = do(r, http.MethodPost, "/api/transport", `{"origin":"Berlin","destination":"Prague","preferences":["Teleport"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccommodation(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/accommodation",
		`{"destination":"Lisbon","duration":3,"types":["Hostel","Airbnb"],"budget":400}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Options []planner.AccommodationOption `json:"options"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Options, 2)
	for _, o := range body.Options {
		assert.True(t, strings.HasPrefix(o.Name, "Lisbon "))
	}

	w = do(r, http.MethodPost, "/api/accommodation", `{"destination":"Lisbon","duration":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestItinerary(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodPost, "/api/itinerary",
		`{"destination":"Kyoto","duration":10,"interests":["Nature"],"budget_per_day":20}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body ItineraryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Days, planner.MaxItineraryDays)

	sum := 0
	for _, d := range body.Days {
		sum += d.DailyTotal
	}
	assert.Equal(t, sum, body.Total)
	// Lunch and dinner alone exceed a $20 day.
	assert.Len(t, body.OverBudgetDays, planner.MaxItineraryDays)

	w = do(r, http.MethodPost, "/api/itinerary", `{"destination":"Kyoto","duration":0,"interests":["Nature"]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSafety(t *testing.T) {
	r, _ := newTestRouter(t)
	w := do(r, http.MethodGet, "/api/safety?destination=Cairo", "")
	require.Equal(t, http.StatusOK, w.Code)

	var guide planner.SafetyGuide
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &guide))
	assert.Equal(t, planner.SafetyTips("Cairo"), guide)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/api/safety", "").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)
	createPlan(t, r)

	w := do(r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "travelplanner_plans_generated_total")
}
