// internal/metrics/budget.go
package metrics

import (
	"github.com/phixforge/phixforge-backend/internal/models"
)

// OverheadRate is the fixed indirect-cost rate applied once to the aggregate
// direct costs, never per work package.
const OverheadRate = 0.25

// BudgetBreakdown is the per-proposal financial rollup.
type BudgetBreakdown struct {
	DirectCosts float64 `json:"directCosts"`
	Overhead    float64 `json:"overhead"`
	PhixBudget  float64 `json:"phixBudget"`
}

// WorkPackageSubtotal returns the direct cost of a single work package:
// person months at the given rate plus all other and travel cost lines.
func WorkPackageSubtotal(wp models.WorkPackage) float64 {
	subtotal := wp.PhixPersonMonths * wp.PersonMonthRate
	for _, c := range wp.OtherCosts {
		subtotal += c.Value
	}
	for _, c := range wp.TravelCosts {
		subtotal += c.Value
	}
	return subtotal
}

// BudgetRollup folds the work packages of one proposal into direct costs,
// overhead and the total PHIX budget. An empty work-package list yields all
// zeros. Negative cost lines flow through the arithmetic unchanged.
func BudgetRollup(workPackages []models.WorkPackage) BudgetBreakdown {
	var direct float64
	for _, wp := range workPackages {
		direct += WorkPackageSubtotal(wp)
	}

	overhead := direct * OverheadRate
	return BudgetBreakdown{
		DirectCosts: direct,
		Overhead:    overhead,
		PhixBudget:  direct + overhead,
	}
}

// CoFundingGap returns the co-financing the organization must provide for a
// proposal funded below 100%. The basis is the work-package-derived PHIX
// budget; at full funding the gap is zero regardless of budget.
func CoFundingGap(phixBudget, fundedPercent float64) float64 {
	if fundedPercent >= 100 {
		return 0
	}
	return phixBudget * (100 - fundedPercent) / 100
}

// ProposalBudget returns the authoritative PHIX budget figure for a proposal.
// The work-package rollup wins when work packages exist; otherwise the stored
// figure is used so imported records without cost detail still aggregate.
func ProposalBudget(p models.Proposal) float64 {
	if len(p.WorkPackages.Data) > 0 {
		return BudgetRollup(p.WorkPackages.Data).PhixBudget
	}
	return p.PhixBudget
}
