package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/utils"
)

func parseSleepPlace(s string) (models.SleepPlace, error) {
	switch s {
	case "crib":
		return models.PlaceCrib, nil
	case "held":
		return models.PlaceHeld, nil
	case "stroller":
		return models.PlaceStroller, nil
	case "other", "":
		return models.PlaceOther, nil
	default:
		return "", fmt.Errorf("invalid sleep place: %s (crib|held|stroller|other)", s)
	}
}

func parseSleepMethod(s string) (models.SleepMethod, error) {
	switch s {
	case "fed-to-sleep":
		return models.MethodFedToSleep, nil
	case "held-to-sleep":
		return models.MethodHeldToSleep, nil
	case "self-soothed", "":
		return models.MethodSelfSoothed, nil
	case "other":
		return models.MethodOther, nil
	default:
		return "", fmt.Errorf("invalid sleep method: %s (fed-to-sleep|held-to-sleep|self-soothed|other)", s)
	}
}

// validateSleepWindow rejects inverted intervals before they reach the store.
func validateSleepWindow(start, end string) error {
	s, err := utils.ParseTimestamp(start)
	if err != nil {
		return fmt.Errorf("invalid start time %q (expected YYYY-MM-DDTHH:MM)", start)
	}
	e, err := utils.ParseTimestamp(end)
	if err != nil {
		return fmt.Errorf("invalid end time %q (expected YYYY-MM-DDTHH:MM)", end)
	}
	if e.Before(s) {
		return fmt.Errorf("sleep end %s is before start %s", end, start)
	}
	return nil
}

type SleepAddCmd struct {
	Start  string `arg:"" help:"Sleep start (YYYY-MM-DDTHH:MM)."`
	End    string `arg:"" help:"Sleep end (YYYY-MM-DDTHH:MM)."`
	Place  string `short:"p" help:"Where the baby slept (crib|held|stroller|other)." default:"crib"`
	Method string `short:"m" help:"How the baby fell asleep (fed-to-sleep|held-to-sleep|self-soothed)." default:"self-soothed"`
	Note   string `short:"n" help:"Free-form note."`
}

func (c *SleepAddCmd) Run(ctx *Context) error {
	place, err := parseSleepPlace(c.Place)
	if err != nil {
		return err
	}
	method, err := parseSleepMethod(c.Method)
	if err != nil {
		return err
	}
	if err := validateSleepWindow(c.Start, c.End); err != nil {
		return err
	}

	sleep := models.SleepEvent{
		Start:  c.Start,
		End:    c.End,
		Place:  place,
		Method: method,
		Note:   c.Note,
	}

	id, err := ctx.Store.AddSleepEvent(sleep)
	if err != nil {
		return err
	}

	fmt.Printf("Added sleep %s - %s (ID: %d)\n", c.Start, c.End, id)
	return nil
}

type SleepEditCmd struct {
	ID     int64   `arg:"" help:"Sleep event ID."`
	Start  *string `help:"New start (YYYY-MM-DDTHH:MM)."`
	End    *string `help:"New end (YYYY-MM-DDTHH:MM)."`
	Place  *string `short:"p" help:"New place (crib|held|stroller|other)."`
	Method *string `short:"m" help:"New method (fed-to-sleep|held-to-sleep|self-soothed)."`
	Note   *string `short:"n" help:"New note."`
}

func (c *SleepEditCmd) Run(ctx *Context) error {
	sleep, err := ctx.Store.GetSleepEvent(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find sleep event: %w", err)
	}

	if c.Start != nil {
		sleep.Start = *c.Start
	}
	if c.End != nil {
		sleep.End = *c.End
	}
	if err := validateSleepWindow(sleep.Start, sleep.End); err != nil {
		return err
	}
	if c.Place != nil {
		place, err := parseSleepPlace(*c.Place)
		if err != nil {
			return err
		}
		sleep.Place = place
	}
	if c.Method != nil {
		method, err := parseSleepMethod(*c.Method)
		if err != nil {
			return err
		}
		sleep.Method = method
	}
	if c.Note != nil {
		sleep.Note = *c.Note
	}

	if err := ctx.Store.UpdateSleepEvent(sleep); err != nil {
		return fmt.Errorf("failed to update sleep event: %w", err)
	}

	fmt.Printf("Updated sleep event %d\n", c.ID)
	return nil
}

type SleepDeleteCmd struct {
	ID int64 `arg:"" help:"Sleep event ID to delete."`
}

func (c *SleepDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteSleepEvent(c.ID); err != nil {
		return fmt.Errorf("failed to delete sleep event: %w", err)
	}
	fmt.Printf("Deleted sleep event %d\n", c.ID)
	return nil
}

type SleepListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD). Defaults to today."`
}

func (c *SleepListCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	sleeps, err := ctx.Store.GetSleepEventsOverlapping(date)
	if err != nil {
		return fmt.Errorf("failed to get sleep events: %w", err)
	}
	if len(sleeps) == 0 {
		fmt.Printf("No sleep on %s\n", date)
		return nil
	}

	fmt.Printf("Sleep on %s:\n", date)
	for _, s := range sleeps {
		line := fmt.Sprintf("  [%d] %s - %s  %s/%s", s.ID, s.Start, s.End, s.Place, s.Method)
		if len(s.DatesTouched()) > 1 {
			line += "  (crosses midnight)"
		}
		if s.Note != "" {
			line += "  (" + s.Note + ")"
		}
		fmt.Println(line)
	}

	if agg, err := ctx.Store.GetDailyLog(date); err == nil {
		fmt.Printf("\nTotal on %s: %.1fh\n", date, agg.SleepHours)
	}
	return nil
}
