// internal/handlers/statistics_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phixforge/phixforge-backend/internal/models"
	"github.com/phixforge/phixforge-backend/internal/services"
)

type staticProposalSource struct {
	proposals []models.Proposal
}

func (s *staticProposalSource) Proposals() ([]models.Proposal, error) {
	return s.proposals, nil
}

func newStatisticsRouter(proposals []models.Proposal) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewStatisticsHandler(services.NewStatisticsService(&staticProposalSource{proposals: proposals}))

	r := gin.New()
	r.GET("/statistics", handler.GetDashboard)
	r.GET("/statistics/filters", handler.GetFilters)
	return r
}

func TestGetDashboard(t *testing.T) {
	router := newStatisticsRouter([]models.Proposal{
		{Programme: "Horizon", IsGranted: true, Deadline: "2024-03-01", PhixBudget: 65000, FundedPercent: 100},
		{Programme: "Horizon", IsGranted: false, Deadline: "2024-06-01"},
	})

	req, _ := http.NewRequest("GET", "/statistics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			TotalProposals   int     `json:"totalProposals"`
			GrantedProposals int     `json:"grantedProposals"`
			SuccessRate      float64 `json:"successRate"`
			TotalBudget      float64 `json:"totalBudget"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Success)
	assert.Equal(t, 2, response.Data.TotalProposals)
	assert.Equal(t, 1, response.Data.GrantedProposals)
	assert.InDelta(t, 50.0, response.Data.SuccessRate, 1e-9)
	assert.InDelta(t, 65000, response.Data.TotalBudget, 1e-9)
}

func TestGetDashboardWithProgrammeFilter(t *testing.T) {
	router := newStatisticsRouter([]models.Proposal{
		{Programme: "Horizon", IsGranted: true, Deadline: "2024-03-01"},
		{Programme: "Eurostars", IsGranted: false, Deadline: "2024-06-01"},
	})

	req, _ := http.NewRequest("GET", "/statistics?programme=Horizon", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			TotalProposals int `json:"totalProposals"`
			Programmes     []struct {
				Name string `json:"name"`
			} `json:"programmes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, 1, response.Data.TotalProposals)
	// Programme breakdown ignores the filter and still lists both programmes.
	assert.Len(t, response.Data.Programmes, 2)
}

func TestGetDashboardRejectsBadYear(t *testing.T) {
	router := newStatisticsRouter(nil)

	req, _ := http.NewRequest("GET", "/statistics?year=recent", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetFilters(t *testing.T) {
	router := newStatisticsRouter([]models.Proposal{
		{Programme: "Horizon", Deadline: "2024-03-01"},
		{Programme: "Eurostars", Deadline: "2022-11-01"},
	})

	req, _ := http.NewRequest("GET", "/statistics/filters", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Data struct {
			Years      []int    `json:"years"`
			Programmes []string `json:"programmes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, []int{2024, 2022}, response.Data.Years)
	assert.Equal(t, []string{"Eurostars", "Horizon"}, response.Data.Programmes)
}
