// internal/services/report_service_test.go
package services

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phixforge/phixforge-backend/internal/models"
)

func TestRenderProposalReportBudgetFigures(t *testing.T) {
	proposal := models.Proposal{
		Acronym:        "PHOTON",
		Programme:      "Horizon",
		FundedPercent:  60,
		IsGranted:      true,
		StartDate:      "2024-01-01",
		DurationMonths: 24,
		WorkPackages: models.JSONColumn[[]models.WorkPackage]{Data: []models.WorkPackage{
			{
				Number:           "WP1",
				PhixPersonMonths: 10,
				PersonMonthRate:  5000,
				OtherCosts:       []models.CostItem{{Description: "Masks", Value: 2000}},
			},
		}},
		Partners: models.JSONColumn[[]models.Partner]{Data: []models.Partner{
			{Name: "TU Delft", Country: "Netherlands"},
		}},
	}

	f, err := renderProposalReport(proposal, []string{"Wire bonding"}, "Proposal")
	require.NoError(t, err)

	rows, err := f.GetRows("Proposal")
	require.NoError(t, err)

	figures := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			figures[row[0]] = row[1]
		}
	}

	assert.Equal(t, "PHOTON", figures["Acronym"])
	assert.Equal(t, "Wire bonding", figures["PHIX Processes"])
	assert.Equal(t, "Netherlands", figures["TU Delft"])

	// The report must reproduce the engine's rollup exactly.
	assertCellValue(t, figures["Total Direct Costs"], 52000)
	assertCellValue(t, figures["Overhead (25%)"], 13000)
	assertCellValue(t, figures["TOTAL PHIX BUDGET"], 65000)
	assertCellValue(t, figures["Co-Funding Required"], 26000)
}

func TestRenderProposalReportEmptyWorkPackages(t *testing.T) {
	proposal := models.Proposal{Acronym: "EMPTY", FundedPercent: 100}

	f, err := renderProposalReport(proposal, nil, "Proposal")
	require.NoError(t, err)

	rows, err := f.GetRows("Proposal")
	require.NoError(t, err)

	figures := map[string]string{}
	for _, row := range rows {
		if len(row) >= 2 {
			figures[row[0]] = row[1]
		}
	}

	assertCellValue(t, figures["TOTAL PHIX BUDGET"], 0)
	assertCellValue(t, figures["Co-Funding Required"], 0)
}

func assertCellValue(t *testing.T, cell string, want float64) {
	t.Helper()
	got, err := strconv.ParseFloat(cell, 64)
	require.NoError(t, err, "cell %q is not numeric", cell)
	assert.InDelta(t, want, got, 1e-6)
}
