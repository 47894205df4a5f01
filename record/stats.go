package record

import (
	"sort"
	"strings"

	"github.com/talentscout/screener/interview"
)

// Count is one labeled tally in a statistic.
type Count struct {
	Label string
	N     int
}

// Stats summarizes the stored corpus for the viewer.
type Stats struct {
	Total             int
	Completed         int
	AverageExperience float64
	AverageSentiment  float64
	Positions         []Count
	TopTechnologies   []Count
}

// Summarize aggregates outcomes into corpus statistics. Technology
// counts are capped at the ten most mentioned.
func Summarize(outcomes []*interview.Outcome) *Stats {
	stats := &Stats{Total: len(outcomes)}
	if len(outcomes) == 0 {
		return stats
	}

	positions := map[string]int{}
	technologies := map[string]int{}
	var expSum float64
	var expN int
	var sentSum float64

	for _, outcome := range outcomes {
		if outcome.Completed {
			stats.Completed++
		}
		sentSum += outcome.AverageSentiment
		if outcome.Profile == nil {
			continue
		}
		if outcome.Profile.ExperienceYears != nil {
			expSum += *outcome.Profile.ExperienceYears
			expN++
		}
		for _, pos := range outcome.Profile.DesiredPositions {
			positions[strings.ToLower(strings.TrimSpace(pos))]++
		}
		for _, tech := range outcome.Profile.TechStack {
			technologies[tech]++
		}
	}

	if expN > 0 {
		stats.AverageExperience = expSum / float64(expN)
	}
	stats.AverageSentiment = sentSum / float64(len(outcomes))
	stats.Positions = sortedCounts(positions, 0)
	stats.TopTechnologies = sortedCounts(technologies, 10)
	return stats
}

func sortedCounts(m map[string]int, limit int) []Count {
	counts := make([]Count, 0, len(m))
	for label, n := range m {
		counts = append(counts, Count{Label: label, N: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N != counts[j].N {
			return counts[i].N > counts[j].N
		}
		return counts[i].Label < counts[j].Label
	})
	if limit > 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
