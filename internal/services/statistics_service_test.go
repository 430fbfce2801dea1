// internal/services/statistics_service_test.go
package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phixforge/phixforge-backend/internal/metrics"
	"github.com/phixforge/phixforge-backend/internal/models"
)

type fakeProposalSource struct {
	proposals []models.Proposal
	err       error
}

func (f *fakeProposalSource) Proposals() ([]models.Proposal, error) {
	return f.proposals, f.err
}

func TestStatisticsServiceDashboard(t *testing.T) {
	source := &fakeProposalSource{proposals: []models.Proposal{
		{Programme: "Horizon", IsGranted: true, Deadline: "2024-03-01", PhixBudget: 65000, FundedPercent: 50},
		{Programme: "Horizon", IsGranted: false, Deadline: "2024-06-01"},
	}}

	service := NewStatisticsService(source)
	service.now = func() time.Time { return time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC) }

	stats, err := service.Dashboard(metrics.Filter{})
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProposals)
	assert.Equal(t, 1, stats.GrantedProposals)
	assert.InDelta(t, 50.0, stats.SuccessRate, 1e-9)
	assert.InDelta(t, 65000, stats.TotalBudget, 1e-9)
	assert.InDelta(t, 32500, stats.CoFunding, 1e-9)
	require.Len(t, stats.Programmes, 1)
	assert.InDelta(t, 50.0, stats.Programmes[0].Rate, 1e-9)
}

func TestStatisticsServicePropagatesSourceError(t *testing.T) {
	service := NewStatisticsService(&fakeProposalSource{err: errors.New("boom")})

	_, err := service.Dashboard(metrics.Filter{})
	assert.Error(t, err)

	_, err = service.Filters()
	assert.Error(t, err)
}

func TestStatisticsServiceFilters(t *testing.T) {
	source := &fakeProposalSource{proposals: []models.Proposal{
		{Programme: "Horizon", Deadline: "2024-03-01"},
		{Programme: "Eurostars", Deadline: "2022-11-01"},
	}}

	service := NewStatisticsService(source)
	options, err := service.Filters()
	require.NoError(t, err)

	assert.Equal(t, []int{2024, 2022}, options.Years)
	assert.Equal(t, []string{"Eurostars", "Horizon"}, options.Programmes)
}
