// internal/services/proposal_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phixforge/phixforge-backend/internal/models"
)

func TestNormalizeProposalDerivesBudget(t *testing.T) {
	p := models.Proposal{
		PhixBudget: 1, // client-supplied figure must be overwritten
		WorkPackages: models.JSONColumn[[]models.WorkPackage]{Data: []models.WorkPackage{
			{PhixPersonMonths: 10, PersonMonthRate: 5000, OtherCosts: []models.CostItem{{Value: 2000}}},
		}},
	}

	normalizeProposal(&p)
	assert.InDelta(t, 65000, p.PhixBudget, 1e-9)
}

func TestNormalizeProposalKeepsStoredBudgetWithoutWorkPackages(t *testing.T) {
	p := models.Proposal{PhixBudget: 42000}
	normalizeProposal(&p)
	assert.InDelta(t, 42000, p.PhixBudget, 1e-9)
}

func TestNormalizeProposalClearsGrantFieldsWhenUngranted(t *testing.T) {
	p := models.Proposal{
		IsGranted:       false,
		IsCompleted:     true,
		StartDate:       "2024-01-01",
		DurationMonths:  24,
		ExtensionMonths: 6,
	}

	normalizeProposal(&p)

	assert.False(t, p.IsCompleted)
	assert.Empty(t, p.StartDate)
	assert.Zero(t, p.DurationMonths)
	assert.Zero(t, p.ExtensionMonths)
}

func TestNormalizeProposalKeepsGrantFieldsWhenGranted(t *testing.T) {
	p := models.Proposal{
		IsGranted:      true,
		StartDate:      "2024-01-01",
		DurationMonths: 24,
	}

	normalizeProposal(&p)

	assert.Equal(t, "2024-01-01", p.StartDate)
	assert.Equal(t, 24, p.DurationMonths)
}
