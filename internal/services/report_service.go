// internal/services/report_service.go
package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"github.com/phixforge/phixforge-backend/internal/config"
	"github.com/phixforge/phixforge-backend/internal/metrics"
	"github.com/phixforge/phixforge-backend/internal/models"
)

// ReportService renders one proposal into a workbook. The budget section is
// fed by the same rollup the dashboard uses, so the report and the on-screen
// figures always agree.
type ReportService struct {
	db        *gorm.DB
	proposals *ProposalService
	sheetName string
}

func NewReportService(db *gorm.DB, proposals *ProposalService, cfg config.ExportConfig) *ReportService {
	sheetName := cfg.ReportSheetName
	if sheetName == "" {
		sheetName = "Proposal"
	}
	return &ReportService{db: db, proposals: proposals, sheetName: sheetName}
}

// BuildProposalReport produces the report workbook for one proposal.
func (s *ReportService) BuildProposalReport(id uuid.UUID) (*excelize.File, string, error) {
	proposal, err := s.proposals.GetProposal(id)
	if err != nil {
		return nil, "", err
	}

	processNames, err := s.resolveProcessNames(proposal.PhixProcesses)
	if err != nil {
		return nil, "", err
	}

	f, err := renderProposalReport(*proposal, processNames, s.sheetName)
	if err != nil {
		return nil, "", err
	}

	fileName := fmt.Sprintf("proposal_%s.xlsx", sanitizeFileName(proposal.Acronym))
	return f, fileName, nil
}

// renderProposalReport lays the proposal out on a single worksheet. Budget
// figures come straight from the metrics engine.
func renderProposalReport(proposal models.Proposal, processNames []string, sheetName string) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	row := 1
	writeRow := func(label string, value interface{}) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), value)
		row++
	}

	writeRow("Acronym", proposal.Acronym)
	writeRow("Programme", proposal.Programme)
	writeRow("Call", proposal.Call)
	writeRow("Type", proposal.Type)
	writeRow("Deadline", proposal.Deadline)
	writeRow("Funded", fmt.Sprintf("%.0f%%", proposal.FundedPercent))
	writeRow("Total Budget", proposal.TotalBudget)
	writeRow("Granted", proposal.IsGranted)
	if proposal.IsGranted {
		writeRow("Start Date", proposal.StartDate)
		writeRow("Duration (months)", proposal.DurationMonths)
		if proposal.ExtensionMonths > 0 {
			writeRow("Extension (months)", proposal.ExtensionMonths)
		}
	}
	writeRow("PIC Platform", proposal.PicPlatform)
	writeRow("PHIX Role", proposal.PhixRole)
	writeRow("Wavelengths", strings.Join(proposal.Wavelengths, ", "))
	writeRow("PHIX Processes", strings.Join(processNames, ", "))
	row++

	// Partners
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Partners")
	row++
	for _, partner := range proposal.Partners.Data {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), partner.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), partner.Country)
		row++
	}
	row++

	// Work packages with per-package subtotals
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Work Packages")
	row++
	headers := []string{"Number", "Description", "Lead Partner", "Person Months", "Rate", "Other Costs", "Travel Costs", "Subtotal"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheetName, cell, header)
	}
	row++
	for _, wp := range proposal.WorkPackages.Data {
		var otherTotal, travelTotal float64
		for _, c := range wp.OtherCosts {
			otherTotal += c.Value
		}
		for _, c := range wp.TravelCosts {
			travelTotal += c.Value
		}

		values := []interface{}{
			wp.Number, wp.Description, wp.LeadPartner,
			wp.PhixPersonMonths, wp.PersonMonthRate,
			otherTotal, travelTotal,
			metrics.WorkPackageSubtotal(wp),
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheetName, cell, value)
		}
		row++
	}
	row++

	// Budget rollup; identical figures to the dashboard and budget endpoint
	rollup := metrics.BudgetRollup(proposal.WorkPackages.Data)
	budget := metrics.ProposalBudget(proposal)
	writeRow("Total Direct Costs", rollup.DirectCosts)
	writeRow("Overhead (25%)", rollup.Overhead)
	writeRow("TOTAL PHIX BUDGET", rollup.PhixBudget)
	writeRow("Co-Funding Required", metrics.CoFundingGap(budget, proposal.FundedPercent))

	return f, nil
}

func (s *ReportService) resolveProcessNames(ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var processes []models.Process
	if err := s.db.Where("id IN ?", ids).Find(&processes).Error; err != nil {
		return nil, fmt.Errorf("failed to resolve processes: %w", err)
	}

	byID := make(map[string]string, len(processes))
	for _, p := range processes {
		byID[p.ID.String()] = p.Name
	}

	// Keep the proposal's reference order; unresolved ids are skipped.
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names, nil
}

func sanitizeFileName(name string) string {
	if name == "" {
		return "export"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-")
	return replacer.Replace(name)
}
