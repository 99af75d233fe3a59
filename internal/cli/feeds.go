package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/models"
)

func parseFeedType(s string) (models.FeedType, error) {
	switch s {
	case "breast":
		return models.FeedBreast, nil
	case "formula":
		return models.FeedFormula, nil
	case "mixed":
		return models.FeedMixed, nil
	default:
		return "", fmt.Errorf("invalid feed type: %s (breast|formula|mixed)", s)
	}
}

func parseFeedSide(s string) (models.FeedSide, error) {
	switch s {
	case "left":
		return models.SideLeft, nil
	case "right":
		return models.SideRight, nil
	case "both":
		return models.SideBoth, nil
	case "none", "":
		return models.SideNone, nil
	default:
		return "", fmt.Errorf("invalid feed side: %s (left|right|both|none)", s)
	}
}

type FeedAddCmd struct {
	Type     string `arg:"" help:"Feed type (breast|formula|mixed)."`
	Time     string `short:"t" help:"Time of the feed (YYYY-MM-DDTHH:MM). Defaults to now."`
	Amount   *int   `short:"a" help:"Amount in milliliters."`
	Duration *int   `short:"d" help:"Nursing duration in minutes."`
	Side     string `short:"s" help:"Breast side (left|right|both|none)." default:"none"`
	SpitUp   bool   `help:"Baby spat up after the feed."`
	BurpOk   bool   `help:"Baby burped after the feed."`
	Note     string `short:"n" help:"Free-form note."`
}

func (c *FeedAddCmd) Run(ctx *Context) error {
	feedType, err := parseFeedType(c.Type)
	if err != nil {
		return err
	}
	side, err := parseFeedSide(c.Side)
	if err != nil {
		return err
	}
	ts, err := ctx.ResolveTimestamp(c.Time)
	if err != nil {
		return err
	}
	if c.Amount != nil && *c.Amount < 0 {
		return fmt.Errorf("amount must not be negative")
	}
	if c.Duration != nil && *c.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	feed := models.FeedEvent{
		Datetime:    ts,
		Type:        feedType,
		AmountMl:    c.Amount,
		DurationMin: c.Duration,
		Side:        side,
		SpitUp:      c.SpitUp,
		BurpOk:      c.BurpOk,
		Note:        c.Note,
	}

	id, err := ctx.Store.AddFeedEvent(feed)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s feed at %s (ID: %d)\n", feedType, ts, id)
	return nil
}

type FeedEditCmd struct {
	ID       int64   `arg:"" help:"Feed event ID."`
	Time     *string `short:"t" help:"New time (YYYY-MM-DDTHH:MM)."`
	Type     *string `help:"New feed type (breast|formula|mixed)."`
	Amount   *int    `short:"a" help:"New amount in milliliters."`
	Duration *int    `short:"d" help:"New nursing duration in minutes."`
	Side     *string `short:"s" help:"New breast side (left|right|both|none)."`
	SpitUp   *bool   `help:"Set spit-up status."`
	BurpOk   *bool   `help:"Set burp status."`
	Note     *string `short:"n" help:"New note."`
}

func (c *FeedEditCmd) Run(ctx *Context) error {
	feed, err := ctx.Store.GetFeedEvent(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find feed event: %w", err)
	}

	if c.Time != nil {
		ts, err := ctx.ResolveTimestamp(*c.Time)
		if err != nil {
			return err
		}
		feed.Datetime = ts
	}
	if c.Type != nil {
		feedType, err := parseFeedType(*c.Type)
		if err != nil {
			return err
		}
		feed.Type = feedType
	}
	if c.Amount != nil {
		if *c.Amount < 0 {
			return fmt.Errorf("amount must not be negative")
		}
		feed.AmountMl = c.Amount
	}
	if c.Duration != nil {
		if *c.Duration < 0 {
			return fmt.Errorf("duration must not be negative")
		}
		feed.DurationMin = c.Duration
	}
	if c.Side != nil {
		side, err := parseFeedSide(*c.Side)
		if err != nil {
			return err
		}
		feed.Side = side
	}
	if c.SpitUp != nil {
		feed.SpitUp = *c.SpitUp
	}
	if c.BurpOk != nil {
		feed.BurpOk = *c.BurpOk
	}
	if c.Note != nil {
		feed.Note = *c.Note
	}

	if err := ctx.Store.UpdateFeedEvent(feed); err != nil {
		return fmt.Errorf("failed to update feed event: %w", err)
	}

	fmt.Printf("Updated feed event %d\n", c.ID)
	return nil
}

type FeedDeleteCmd struct {
	ID int64 `arg:"" help:"Feed event ID to delete."`
}

func (c *FeedDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteFeedEvent(c.ID); err != nil {
		return fmt.Errorf("failed to delete feed event: %w", err)
	}
	fmt.Printf("Deleted feed event %d\n", c.ID)
	return nil
}

type FeedListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD). Defaults to today."`
}

func (c *FeedListCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	feeds, err := ctx.Store.GetFeedEventsForDate(date)
	if err != nil {
		return fmt.Errorf("failed to get feed events: %w", err)
	}
	if len(feeds) == 0 {
		fmt.Printf("No feeds on %s\n", date)
		return nil
	}

	fmt.Printf("Feeds on %s:\n", date)
	for _, f := range feeds {
		line := fmt.Sprintf("  [%d] %s  %s", f.ID, f.Datetime[11:], f.Type)
		if f.AmountMl != nil {
			line += "  " + ctx.FormatAmount(*f.AmountMl)
		}
		if f.DurationMin != nil {
			line += fmt.Sprintf("  %dm", *f.DurationMin)
		}
		if f.Side != models.SideNone {
			line += "  " + string(f.Side)
		}
		if f.SpitUp {
			line += "  spit-up"
		}
		if f.Note != "" {
			line += "  (" + f.Note + ")"
		}
		fmt.Println(line)
	}
	return nil
}
