package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

var (
	dayTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dayLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dayValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	dayTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
)

type DayShowCmd struct {
	Date string `arg:"" optional:"" help:"Date to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayShowCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	log, err := ctx.Store.GetDailyLog(date)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Printf("No daily log for %s\n", date)
			return nil
		}
		return fmt.Errorf("failed to get daily log: %w", err)
	}

	fmt.Println(dayTitleStyle.Render(date))
	rows := []struct {
		label string
		value string
	}{
		{"Milk", fmt.Sprintf("%d feeds, %s total", log.MilkTimes, ctx.FormatAmount(log.MilkTotalMl))},
		{"Poop", fmt.Sprintf("%d", log.PoopTimes)},
		{"Pee", fmt.Sprintf("%d", log.PeeTimes)},
		{"Sleep", fmt.Sprintf("%.1f h", log.SleepHours)},
	}
	for _, row := range rows {
		fmt.Printf("  %s %s\n",
			dayLabelStyle.Render(fmt.Sprintf("%-6s", row.label)),
			dayValueStyle.Render(row.value))
	}
	if len(log.SymptomsTags) > 0 {
		fmt.Printf("  %s %s\n",
			dayLabelStyle.Render(fmt.Sprintf("%-6s", "Tags")),
			dayTagStyle.Render(strings.Join(log.SymptomsTags, ", ")))
	}
	if log.Note != "" {
		fmt.Printf("  %s %s\n",
			dayLabelStyle.Render(fmt.Sprintf("%-6s", "Note")),
			dayValueStyle.Render(log.Note))
	}
	return nil
}

type DayListCmd struct {
	From  string `help:"Earliest date to include (YYYY-MM-DD)."`
	To    string `help:"Latest date to include (YYYY-MM-DD)."`
	Limit int    `short:"l" help:"Maximum number of days to show." default:"30"`
}

func (c *DayListCmd) Run(ctx *Context) error {
	logs, err := ctx.Store.GetDailyLogs(c.From, c.To, true)
	if err != nil {
		return fmt.Errorf("failed to get daily logs: %w", err)
	}
	if len(logs) == 0 {
		fmt.Println("No daily logs found")
		return nil
	}
	if c.Limit > 0 && len(logs) > c.Limit {
		logs = logs[:c.Limit]
	}

	for _, log := range logs {
		fmt.Println(FormatDailyLog(log))
	}
	return nil
}

type DayNoteCmd struct {
	Date string  `arg:"" help:"Date of the daily log (YYYY-MM-DD)."`
	Note *string `short:"n" help:"Note text. Empty string clears."`
	Tags *string `help:"Comma-separated symptom tags. Empty string clears."`
}

func (c *DayNoteCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if c.Note == nil && c.Tags == nil {
		return fmt.Errorf("nothing to change (pass --note and/or --tags)")
	}

	// The row may not exist yet if no events were logged that day.
	log, err := ctx.Store.GetDailyLog(date)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("failed to get daily log: %w", err)
		}
		log = models.DailyLog{Date: date, SymptomsTags: []string{}}
	}

	if c.Note != nil {
		log.Note = *c.Note
	}
	if c.Tags != nil {
		log.SymptomsTags = ParseTags(*c.Tags)
		if log.SymptomsTags == nil {
			log.SymptomsTags = []string{}
		}
	}

	if err := ctx.Store.PutDailyLog(log); err != nil {
		return fmt.Errorf("failed to save daily log: %w", err)
	}

	fmt.Printf("Updated daily log for %s\n", date)
	return nil
}

type DayResyncCmd struct {
	Date string `arg:"" optional:"" help:"Date to recompute (YYYY-MM-DD). Omit to rebuild every date."`
	All  bool   `help:"Recompute every date that has raw events."`
}

func (c *DayResyncCmd) Run(ctx *Context) error {
	if c.All || c.Date == "" {
		count, err := ctx.Aggregator.Rebuild()
		if err != nil {
			return fmt.Errorf("rebuild failed: %w", err)
		}
		fmt.Printf("Recomputed aggregates for %d date(s)\n", count)
		return nil
	}

	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if err := ctx.Aggregator.Resync(date); err != nil {
		return fmt.Errorf("resync failed: %w", err)
	}
	fmt.Printf("Recomputed aggregate for %s\n", date)
	return nil
}
