package interview

import (
	"fmt"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
)

// fieldDisplayNames maps profile fields to the names shown in prompts.
var fieldDisplayNames = map[string]string{
	"name":       "Full name",
	"email":      "Email address",
	"phone":      "Phone number",
	"experience": "Years of experience",
	"position":   "Desired position",
	"location":   "Current location",
	"tech_stack": "Tech stack",
}

// Prompt renders the context into the markdown system section the
// generator receives. Recent turns are passed separately as chat
// history, so they are not repeated here.
func (c *Context) Prompt() (string, error) {
	profileJSON, err := sonic.Marshal(c.Profile)
	if err != nil {
		return "", fmt.Errorf("marshal profile snapshot: %w", err)
	}

	sections := []string{
		fmt.Sprintf("# Interview stage:\n%s", c.Stage),
		fmt.Sprintf("# Candidate profile collected so far:\n```json\n%s\n```", string(profileJSON)),
	}
	if s := formatMissingSection(c); s != "" {
		sections = append(sections, s)
	}
	sections = append(sections, fmt.Sprintf("# Candidate sentiment trend:\n%s (window average %.2f)", c.Trend.Label, c.Trend.Average))
	if c.Note != "" {
		sections = append(sections, fmt.Sprintf("# Note:\n%s", c.Note))
	}
	return strings.Join(sections, "\n\n"), nil
}

func formatMissingSection(c *Context) string {
	if len(c.Missing) == 0 {
		return ""
	}
	var buf strings.Builder
	buf.WriteString("# Fields still to collect (in order):\n")
	table := tablewriter.NewTable(&buf, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Field", "Status")
	for i, field := range c.Missing {
		name := fieldDisplayNames[string(field)]
		if name == "" {
			name = string(field)
		}
		status := "not provided"
		if i == 0 {
			status = "asking now"
		}
		_ = table.Append(name, status)
	}
	_ = table.Render()
	return buf.String()
}
