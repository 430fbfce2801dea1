// internal/metrics/ranking.go
package metrics

import (
	"sort"

	"github.com/phixforge/phixforge-backend/internal/models"
)

// CountEntry is one bucket of a ranking aggregation.
type CountEntry struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CountBy counts occurrences of every non-empty value produced by the
// extractor across the proposal set and returns the buckets sorted by count
// descending. Ties keep first-seen order. Empty values never form a bucket.
func CountBy(proposals []models.Proposal, extract func(models.Proposal) []string) []CountEntry {
	counts := make(map[string]int)
	var order []string

	for _, p := range proposals {
		for _, value := range extract(p) {
			if value == "" {
				continue
			}
			if _, seen := counts[value]; !seen {
				order = append(order, value)
			}
			counts[value]++
		}
	}

	entries := make([]CountEntry, 0, len(order))
	for _, name := range order {
		entries = append(entries, CountEntry{Name: name, Count: counts[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})
	return entries
}

// TopN truncates a ranked bucket list to its first n entries.
func TopN(entries []CountEntry, n int) []CountEntry {
	if n >= 0 && len(entries) > n {
		return entries[:n]
	}
	return entries
}
