// internal/metrics/budget_test.go
package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phixforge/phixforge-backend/internal/models"
)

func TestBudgetRollup(t *testing.T) {
	tests := []struct {
		name         string
		workPackages []models.WorkPackage
		wantDirect   float64
		wantOverhead float64
		wantBudget   float64
	}{
		{
			name:         "empty work package list",
			workPackages: nil,
			wantDirect:   0,
			wantOverhead: 0,
			wantBudget:   0,
		},
		{
			name: "single work package with person months and other costs",
			workPackages: []models.WorkPackage{
				{
					PhixPersonMonths: 10,
					PersonMonthRate:  5000,
					OtherCosts:       []models.CostItem{{Description: "Masks", Value: 2000}},
					TravelCosts:      []models.CostItem{},
				},
			},
			wantDirect:   52000,
			wantOverhead: 13000,
			wantBudget:   65000,
		},
		{
			name: "multiple work packages sum before overhead",
			workPackages: []models.WorkPackage{
				{PhixPersonMonths: 4, PersonMonthRate: 6000},
				{
					PhixPersonMonths: 2,
					PersonMonthRate:  7500,
					OtherCosts:       []models.CostItem{{Value: 500}, {Value: 1500}},
					TravelCosts:      []models.CostItem{{Value: 1000}},
				},
			},
			wantDirect:   42000,
			wantOverhead: 10500,
			wantBudget:   52500,
		},
		{
			name: "negative cost lines pass through unchanged",
			workPackages: []models.WorkPackage{
				{
					PhixPersonMonths: 1,
					PersonMonthRate:  4000,
					OtherCosts:       []models.CostItem{{Description: "credit", Value: -1000}},
				},
			},
			wantDirect:   3000,
			wantOverhead: 750,
			wantBudget:   3750,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BudgetRollup(tt.workPackages)
			assert.InDelta(t, tt.wantDirect, got.DirectCosts, 1e-9)
			assert.InDelta(t, tt.wantOverhead, got.Overhead, 1e-9)
			assert.InDelta(t, tt.wantBudget, got.PhixBudget, 1e-9)
		})
	}
}

func TestBudgetRollupInvariant(t *testing.T) {
	// phixBudget must equal directCosts * 1.25 for any cost mix, with the
	// overhead applied once to the aggregate.
	workPackages := []models.WorkPackage{
		{PhixPersonMonths: 3.5, PersonMonthRate: 6200.40, OtherCosts: []models.CostItem{{Value: 123.45}}},
		{PhixPersonMonths: 12, PersonMonthRate: 5890, TravelCosts: []models.CostItem{{Value: 980.55}, {Value: 2100}}},
		{PhixPersonMonths: 0, PersonMonthRate: 9999},
	}

	got := BudgetRollup(workPackages)
	assert.InDelta(t, got.DirectCosts*1.25, got.PhixBudget, 1e-9)
	assert.InDelta(t, got.DirectCosts*0.25, got.Overhead, 1e-9)

	var direct float64
	for _, wp := range workPackages {
		direct += WorkPackageSubtotal(wp)
	}
	assert.InDelta(t, direct, got.DirectCosts, 1e-9)
}

func TestCoFundingGap(t *testing.T) {
	tests := []struct {
		name          string
		phixBudget    float64
		fundedPercent float64
		want          float64
	}{
		{"fully funded has no gap", 65000, 100, 0},
		{"fully funded has no gap for any budget", 123456789.12, 100, 0},
		{"half funded", 65000, 50, 32500},
		{"seventy percent funded", 100000, 70, 30000},
		{"unfunded proposal carries the full budget", 40000, 0, 40000},
		{"zero budget has no gap", 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CoFundingGap(tt.phixBudget, tt.fundedPercent), 1e-9)
		})
	}
}

func TestProposalBudgetPrefersRollup(t *testing.T) {
	p := models.Proposal{
		PhixBudget: 999999, // stale stored figure
		WorkPackages: models.JSONColumn[[]models.WorkPackage]{Data: []models.WorkPackage{
			{PhixPersonMonths: 10, PersonMonthRate: 5000, OtherCosts: []models.CostItem{{Value: 2000}}},
		}},
	}
	assert.InDelta(t, 65000, ProposalBudget(p), 1e-9)
}

func TestProposalBudgetFallsBackToStoredFigure(t *testing.T) {
	p := models.Proposal{PhixBudget: 42000}
	assert.InDelta(t, 42000, ProposalBudget(p), 1e-9)
}
