// internal/metrics/dashboard.go
package metrics

import (
	"sort"
	"time"

	"github.com/phixforge/phixforge-backend/internal/models"
)

// Filter narrows the proposal snapshot the dashboard is computed over.
// Zero values mean "all". Programme success rates and the temporal trend
// deliberately ignore the filter; they are portfolio-wide statistics.
type Filter struct {
	Year      int    `json:"year,omitempty"`
	Programme string `json:"programme,omitempty"`
}

// Apply returns the proposals matching the filter. A year filter matches the
// calendar year of the submission deadline; proposals without a parseable
// deadline never match a year filter.
func (f Filter) Apply(proposals []models.Proposal) []models.Proposal {
	if f.Year == 0 && f.Programme == "" {
		return proposals
	}

	filtered := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if f.Programme != "" && p.Programme != f.Programme {
			continue
		}
		if f.Year != 0 {
			deadline, ok := ParseDate(p.Deadline)
			if !ok || deadline.Year() != f.Year {
				continue
			}
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// ProgrammeStat is the per-programme submission outcome.
type ProgrammeStat struct {
	Name    string  `json:"name"`
	Total   int     `json:"total"`
	Granted int     `json:"granted"`
	Rate    float64 `json:"rate"`
}

// YearStat is one bucket of the temporal submission trend.
type YearStat struct {
	Year      int `json:"year"`
	Submitted int `json:"submitted"`
	Granted   int `json:"granted"`
}

// DashboardStats is the full dashboard payload.
type DashboardStats struct {
	TotalProposals    int     `json:"totalProposals"`
	GrantedProposals  int     `json:"grantedProposals"`
	OngoingProjects   int     `json:"ongoingProjects"`
	CompletedProjects int     `json:"completedProjects"`
	TotalBudget       float64 `json:"totalBudget"`
	AverageBudget     float64 `json:"averageBudget"`
	CoFunding         float64 `json:"coFunding"`
	SuccessRate       float64 `json:"successRate"`

	TopProcesses     []CountEntry    `json:"topProcesses"`
	Wavelengths      []CountEntry    `json:"wavelengths"`
	Applications     []CountEntry    `json:"applications"`
	TopPartners      []CountEntry    `json:"topPartners"`
	PartnerCountries []CountEntry    `json:"partnerCountries"`
	Programmes       []ProgrammeStat `json:"programmes"`
	Temporal         []YearStat      `json:"temporal"`
}

// Dashboard folds the full proposal list into the dashboard payload. The
// filter applies to the portfolio counters and the ranking breakdowns; the
// programme success rates and the yearly trend always use the full list.
func Dashboard(all []models.Proposal, filter Filter, now time.Time) DashboardStats {
	proposals := filter.Apply(all)

	granted := make([]models.Proposal, 0, len(proposals))
	for _, p := range proposals {
		if p.IsGranted {
			granted = append(granted, p)
		}
	}

	stats := DashboardStats{
		TotalProposals:   len(proposals),
		GrantedProposals: len(granted),
	}

	for _, p := range granted {
		budget := ProposalBudget(p)
		stats.TotalBudget += budget
		stats.CoFunding += CoFundingGap(budget, p.FundedPercent)

		switch Classify(p, now) {
		case models.ProjectStatusActive:
			stats.OngoingProjects++
		case models.ProjectStatusCompleted:
			stats.CompletedProjects++
		}
	}

	if len(proposals) > 0 {
		stats.SuccessRate = float64(len(granted)) / float64(len(proposals)) * 100
	}
	if len(granted) > 0 {
		stats.AverageBudget = stats.TotalBudget / float64(len(granted))
	}

	stats.TopProcesses = TopN(CountBy(granted, func(p models.Proposal) []string {
		return p.PhixProcesses
	}), 5)
	stats.Wavelengths = CountBy(granted, func(p models.Proposal) []string {
		return p.Wavelengths
	})
	stats.Applications = CountBy(granted, func(p models.Proposal) []string {
		return []string{p.ProjectApplication}
	})
	stats.TopPartners = TopN(CountBy(granted, func(p models.Proposal) []string {
		names := make([]string, 0, len(p.Partners.Data))
		for _, partner := range p.Partners.Data {
			names = append(names, partner.Name)
		}
		return names
	}), 10)
	stats.PartnerCountries = TopN(CountBy(granted, func(p models.Proposal) []string {
		countries := make([]string, 0, len(p.Partners.Data))
		for _, partner := range p.Partners.Data {
			countries = append(countries, partner.Country)
		}
		return countries
	}), 10)

	stats.Programmes = ProgrammeSuccessRates(all)
	stats.Temporal = TemporalTrend(all)

	return stats
}

// ProgrammeSuccessRates groups the full proposal list by programme and
// reports per-programme grant rates, sorted by granted count descending.
// Proposals without a programme are skipped.
func ProgrammeSuccessRates(all []models.Proposal) []ProgrammeStat {
	index := make(map[string]int)
	var stats []ProgrammeStat

	for _, p := range all {
		if p.Programme == "" {
			continue
		}
		i, seen := index[p.Programme]
		if !seen {
			i = len(stats)
			index[p.Programme] = i
			stats = append(stats, ProgrammeStat{Name: p.Programme})
		}
		stats[i].Total++
		if p.IsGranted {
			stats[i].Granted++
		}
	}

	for i := range stats {
		if stats[i].Total > 0 {
			stats[i].Rate = float64(stats[i].Granted) / float64(stats[i].Total) * 100
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Granted > stats[j].Granted
	})
	return stats
}

// TemporalTrend groups the full proposal list by the calendar year of the
// submission deadline, ascending. Proposals without a parseable deadline are
// excluded.
func TemporalTrend(all []models.Proposal) []YearStat {
	byYear := make(map[int]*YearStat)

	for _, p := range all {
		deadline, ok := ParseDate(p.Deadline)
		if !ok {
			continue
		}
		year := deadline.Year()
		stat, seen := byYear[year]
		if !seen {
			stat = &YearStat{Year: year}
			byYear[year] = stat
		}
		stat.Submitted++
		if p.IsGranted {
			stat.Granted++
		}
	}

	trend := make([]YearStat, 0, len(byYear))
	for _, stat := range byYear {
		trend = append(trend, *stat)
	}
	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Year < trend[j].Year
	})
	return trend
}

// FilterOptions lists the filter values present in the dataset: deadline
// years descending and programme names ascending.
type FilterOptions struct {
	Years      []int    `json:"years"`
	Programmes []string `json:"programmes"`
}

// AvailableFilters collects the distinct years and programmes the dashboard
// can be filtered by.
func AvailableFilters(all []models.Proposal) FilterOptions {
	yearSet := make(map[int]struct{})
	programmeSet := make(map[string]struct{})

	for _, p := range all {
		if deadline, ok := ParseDate(p.Deadline); ok {
			yearSet[deadline.Year()] = struct{}{}
		}
		if p.Programme != "" {
			programmeSet[p.Programme] = struct{}{}
		}
	}

	options := FilterOptions{
		Years:      make([]int, 0, len(yearSet)),
		Programmes: make([]string, 0, len(programmeSet)),
	}
	for year := range yearSet {
		options.Years = append(options.Years, year)
	}
	for programme := range programmeSet {
		options.Programmes = append(options.Programmes, programme)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(options.Years)))
	sort.Strings(options.Programmes)
	return options
}
