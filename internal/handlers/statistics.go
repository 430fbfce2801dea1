// internal/handlers/statistics.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phixforge/phixforge-backend/internal/metrics"
	"github.com/phixforge/phixforge-backend/internal/services"
	"github.com/phixforge/phixforge-backend/internal/utils"
)

type StatisticsHandler struct {
	statisticsService *services.StatisticsService
}

func NewStatisticsHandler(statisticsService *services.StatisticsService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService}
}

// GET /statistics?year=&programme=
func (h *StatisticsHandler) GetDashboard(c *gin.Context) {
	var filter metrics.Filter

	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			utils.BadRequestResponse(c, "Invalid year filter", nil)
			return
		}
		filter.Year = year
	}
	filter.Programme = c.Query("programme")

	stats, err := h.statisticsService.Dashboard(filter)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, stats)
}

// GET /statistics/filters
func (h *StatisticsHandler) GetFilters(c *gin.Context) {
	options, err := h.statisticsService.Filters()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, options)
}
