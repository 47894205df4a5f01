// Command viewer is the read-only analytics tool over stored candidate
// records. It never writes; the interview engine is the only producer.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"

	"github.com/talentscout/screener/profile"
	"github.com/talentscout/screener/record"
)

func main() {
	dir := flag.String("data", "candidate_data", "candidate record directory")
	session := flag.String("session", "", "show one session in detail")
	stats := flag.Bool("stats", false, "show corpus statistics")
	flag.Parse()

	ctx := context.Background()
	store := record.NewFileStore(*dir)

	switch {
	case *session != "":
		if err := showDetail(ctx, store, *session); err != nil {
			log.Fatal(err)
		}
	case *stats:
		if err := showStats(ctx, store); err != nil {
			log.Fatal(err)
		}
	default:
		if err := showList(ctx, store); err != nil {
			log.Fatal(err)
		}
	}
}

func showList(ctx context.Context, store *record.FileStore) error {
	outcomes, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(outcomes) == 0 {
		fmt.Println("No candidate records found. Complete some interviews first.")
		return nil
	}
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Session", "Name", "Email", "Experience", "Tech stack", "Sentiment")
	for _, outcome := range outcomes {
		p := profileOrEmpty(outcome.Profile)
		experience := ""
		if p.ExperienceYears != nil {
			experience = fmt.Sprintf("%.1f years", *p.ExperienceYears)
		}
		_ = table.Append(
			outcome.SessionID,
			p.Name,
			p.Email,
			experience,
			strings.Join(p.TechStack, ", "),
			fmt.Sprintf("%.2f", outcome.AverageSentiment),
		)
	}
	return table.Render()
}

func showDetail(ctx context.Context, store *record.FileStore, sessionID string) error {
	outcome, err := store.Load(ctx, sessionID)
	if err != nil {
		return err
	}
	p := profileOrEmpty(outcome.Profile)
	fmt.Printf("Session %s (%s - %s)\n\n", outcome.SessionID,
		outcome.StartedAt.Format("2006-01-02 15:04"), outcome.EndedAt.Format("15:04"))
	fmt.Printf("Name:      %s\n", orNA(p.Name))
	fmt.Printf("Email:     %s\n", orNA(p.Email))
	fmt.Printf("Phone:     %s\n", orNA(p.Phone))
	if p.ExperienceYears != nil {
		fmt.Printf("Experience: %.1f years\n", *p.ExperienceYears)
	} else {
		fmt.Println("Experience: n/a")
	}
	fmt.Printf("Positions: %s\n", orNA(strings.Join(p.DesiredPositions, ", ")))
	fmt.Printf("Location:  %s\n", orNA(p.Location))
	fmt.Printf("Stack:     %s\n", orNA(strings.Join(p.TechStack, ", ")))
	fmt.Printf("Sentiment: %.2f\n\n", outcome.AverageSentiment)

	if len(p.Questions) > 0 {
		fmt.Println("Technical questions:")
		for i, q := range p.Questions {
			fmt.Printf("  %d. %s\n", i+1, q)
			if answer, ok := p.Answers[i]; ok {
				fmt.Printf("     > %s\n", answer)
			}
		}
		fmt.Println()
	}

	fmt.Println("Conversation:")
	for _, turn := range outcome.Turns {
		fmt.Printf("  [%s] %s\n", turn.Role, turn.Text)
	}
	return nil
}

func showStats(ctx context.Context, store *record.FileStore) error {
	outcomes, err := store.List(ctx)
	if err != nil {
		return err
	}
	stats := record.Summarize(outcomes)
	fmt.Printf("Candidates screened: %d (%d completed)\n", stats.Total, stats.Completed)
	fmt.Printf("Average experience:  %.1f years\n", stats.AverageExperience)
	fmt.Printf("Average sentiment:   %.2f\n\n", stats.AverageSentiment)

	if len(stats.Positions) > 0 {
		fmt.Println("Popular positions:")
		renderCounts(stats.Positions)
	}
	if len(stats.TopTechnologies) > 0 {
		fmt.Println("Most common technologies:")
		renderCounts(stats.TopTechnologies)
	}
	return nil
}

func renderCounts(counts []record.Count) {
	table := tablewriter.NewTable(os.Stdout, tablewriter.WithRenderer(renderer.NewMarkdown()))
	table.Header("Label", "Count")
	for _, c := range counts {
		_ = table.Append(c.Label, fmt.Sprintf("%d", c.N))
	}
	_ = table.Render()
	fmt.Println()
}

// profileOrEmpty shields the views from hand-edited records where the
// profile object is null.
func profileOrEmpty(p *profile.Profile) *profile.Profile {
	if p == nil {
		return &profile.Profile{}
	}
	return p
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "n/a"
	}
	return s
}
