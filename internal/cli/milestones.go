package cli

import (
	"fmt"
	"strings"

	"github.com/babylog/babylog/internal/models"
)

type MilestoneAddCmd struct {
	Title       string `arg:"" help:"Milestone title."`
	Date        string `short:"d" help:"Milestone date (YYYY-MM-DD). Defaults to today."`
	Description string `help:"Longer description."`
	Tags        string `help:"Comma-separated tags."`
}

func (c *MilestoneAddCmd) Run(ctx *Context) error {
	if c.Title == "" {
		return fmt.Errorf("milestone title must not be empty")
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	m := models.Milestone{
		Date:        date,
		Title:       c.Title,
		Description: c.Description,
		Tags:        ParseTags(c.Tags),
	}

	id, err := ctx.Store.AddMilestone(m)
	if err != nil {
		return err
	}

	fmt.Printf("Added milestone: %s on %s (ID: %d)\n", c.Title, date, id)
	return nil
}

type MilestoneEditCmd struct {
	ID          int64   `arg:"" help:"Milestone ID."`
	Title       *string `help:"New title."`
	Date        *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Description *string `help:"New description."`
	Tags        *string `help:"New comma-separated tags. Empty string clears."`
}

func (c *MilestoneEditCmd) Run(ctx *Context) error {
	m, err := ctx.Store.GetMilestone(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find milestone: %w", err)
	}

	if c.Title != nil {
		if *c.Title == "" {
			return fmt.Errorf("milestone title must not be empty")
		}
		m.Title = *c.Title
	}
	if c.Date != nil {
		date, err := ctx.ResolveDate(*c.Date)
		if err != nil {
			return err
		}
		m.Date = date
	}
	if c.Description != nil {
		m.Description = *c.Description
	}
	if c.Tags != nil {
		m.Tags = ParseTags(*c.Tags)
	}

	if err := ctx.Store.UpdateMilestone(m); err != nil {
		return fmt.Errorf("failed to update milestone: %w", err)
	}

	fmt.Printf("Updated milestone %d\n", c.ID)
	return nil
}

type MilestoneDeleteCmd struct {
	ID int64 `arg:"" help:"Milestone ID to delete."`
}

func (c *MilestoneDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteMilestone(c.ID); err != nil {
		return fmt.Errorf("failed to delete milestone: %w", err)
	}
	fmt.Printf("Deleted milestone %d\n", c.ID)
	return nil
}

type MilestoneListCmd struct {
	Tag string `help:"Only show milestones carrying this tag."`
}

func (c *MilestoneListCmd) Run(ctx *Context) error {
	milestones, err := ctx.Store.GetAllMilestones()
	if err != nil {
		return fmt.Errorf("failed to get milestones: %w", err)
	}

	var shown int
	for _, m := range milestones {
		if c.Tag != "" && !hasTag(m.Tags, c.Tag) {
			continue
		}
		if shown == 0 {
			fmt.Println("Milestones:")
		}
		shown++

		line := fmt.Sprintf("  [%d] %s  %s", m.ID, m.Date, m.Title)
		if len(m.Tags) > 0 {
			line += "  [" + strings.Join(m.Tags, ",") + "]"
		}
		fmt.Println(line)
		if m.Description != "" {
			fmt.Printf("      %s\n", m.Description)
		}
	}
	if shown == 0 {
		fmt.Println("No milestones found")
	}
	return nil
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
