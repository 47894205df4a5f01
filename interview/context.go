package interview

import (
	"github.com/talentscout/screener/extract"
	"github.com/talentscout/screener/profile"
	"github.com/talentscout/screener/sentiment"
)

// DefaultRecentTurns is how many verbatim turns the context hands to
// the generator as conversational memory.
const DefaultRecentTurns = 6

// TrendSummary is the rolling sentiment summary exposed to the
// generator.
type TrendSummary struct {
	Average float64         `json:"average"`
	Label   sentiment.Label `json:"label"`
	Scores  []int           `json:"scores"`
}

// Context is the structured summary handed to the external generator
// each turn: current stage, profile snapshot, sentiment trend and the
// recent turns. Unset profile fields are explicitly marked absent in
// the rendered prompt, never guessed.
type Context struct {
	Stage   Stage            `json:"stage"`
	Profile *profile.Profile `json:"profile"`
	Missing []extract.Field  `json:"missing"`
	Trend   TrendSummary     `json:"trend"`
	Recent  []Turn           `json:"recent"`
	// Note carries tone guidance, set when the trend is negative.
	Note string `json:"note,omitempty"`
}

// buildContext snapshots the session for prompt assembly. Caller holds
// the session lock.
func buildContext(s *Session, recentTurns int) *Context {
	snapshot := *s.profile
	c := &Context{
		Stage:   s.stage,
		Profile: &snapshot,
		Missing: missingFields(s.profile),
		Trend: TrendSummary{
			Average: s.trend.Average(),
			Label:   s.trend.Label(),
			Scores:  s.trend.Scores(),
		},
		Recent: s.recent(recentTurns),
	}
	if c.Trend.Label == sentiment.Negative {
		c.Note = "The candidate seems stressed or nervous. Be extra encouraging and supportive."
	}
	return c
}

func missingFields(p *profile.Profile) []extract.Field {
	var missing []extract.Field
	if p.Name == "" {
		missing = append(missing, extract.FieldName)
	}
	if p.Email == "" {
		missing = append(missing, extract.FieldEmail)
	}
	if p.Phone == "" {
		missing = append(missing, extract.FieldPhone)
	}
	if p.ExperienceYears == nil {
		missing = append(missing, extract.FieldExperience)
	}
	if len(p.DesiredPositions) == 0 {
		missing = append(missing, extract.FieldPosition)
	}
	if p.Location == "" {
		missing = append(missing, extract.FieldLocation)
	}
	if len(p.TechStack) == 0 {
		missing = append(missing, extract.FieldTechStack)
	}
	return missing
}
