package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/models"
)

func parseStoolTexture(s string) (models.StoolTexture, error) {
	switch s {
	case "watery":
		return models.TextureWatery, nil
	case "mushy":
		return models.TextureMushy, nil
	case "formed":
		return models.TextureFormed, nil
	case "hard":
		return models.TextureHard, nil
	default:
		return "", fmt.Errorf("invalid stool texture: %s (watery|mushy|formed|hard)", s)
	}
}

func parseStoolColor(s string) (models.StoolColor, error) {
	switch s {
	case "yellow":
		return models.ColorYellow, nil
	case "green":
		return models.ColorGreen, nil
	case "black":
		return models.ColorBlack, nil
	case "red":
		return models.ColorRed, nil
	default:
		return "", fmt.Errorf("invalid stool color: %s (yellow|green|black|red)", s)
	}
}

type DiaperAddCmd struct {
	Kind    string `arg:"" help:"Diaper kind (stool|urine)."`
	Time    string `short:"t" help:"Time of the change (YYYY-MM-DDTHH:MM). Defaults to now."`
	Texture string `help:"Stool texture (watery|mushy|formed|hard). Stool only."`
	Color   string `help:"Stool color (yellow|green|black|red). Stool only."`
	Note    string `short:"n" help:"Free-form note."`
}

func (c *DiaperAddCmd) Run(ctx *Context) error {
	var kind models.DiaperKind
	switch c.Kind {
	case "stool":
		kind = models.DiaperStool
	case "urine":
		kind = models.DiaperUrine
	default:
		return fmt.Errorf("invalid diaper kind: %s (stool|urine)", c.Kind)
	}

	// Texture and color describe stool; a urine change cannot carry them.
	if kind == models.DiaperUrine && (c.Texture != "" || c.Color != "") {
		return fmt.Errorf("--texture and --color only apply to stool diapers")
	}

	ts, err := ctx.ResolveTimestamp(c.Time)
	if err != nil {
		return err
	}

	diaper := models.DiaperEvent{
		Datetime: ts,
		Kind:     kind,
		Note:     c.Note,
	}
	if c.Texture != "" {
		texture, err := parseStoolTexture(c.Texture)
		if err != nil {
			return err
		}
		diaper.PoopTexture = &texture
	}
	if c.Color != "" {
		color, err := parseStoolColor(c.Color)
		if err != nil {
			return err
		}
		diaper.PoopColor = &color
	}

	id, err := ctx.Store.AddDiaperEvent(diaper)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s diaper at %s (ID: %d)\n", kind, ts, id)
	return nil
}

type DiaperEditCmd struct {
	ID      int64   `arg:"" help:"Diaper event ID."`
	Time    *string `short:"t" help:"New time (YYYY-MM-DDTHH:MM)."`
	Kind    *string `help:"New kind (stool|urine)."`
	Texture *string `help:"New stool texture (watery|mushy|formed|hard). Empty string clears."`
	Color   *string `help:"New stool color (yellow|green|black|red). Empty string clears."`
	Note    *string `short:"n" help:"New note."`
}

func (c *DiaperEditCmd) Run(ctx *Context) error {
	diaper, err := ctx.Store.GetDiaperEvent(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find diaper event: %w", err)
	}

	if c.Time != nil {
		ts, err := ctx.ResolveTimestamp(*c.Time)
		if err != nil {
			return err
		}
		diaper.Datetime = ts
	}
	if c.Kind != nil {
		switch *c.Kind {
		case "stool":
			diaper.Kind = models.DiaperStool
		case "urine":
			diaper.Kind = models.DiaperUrine
		default:
			return fmt.Errorf("invalid diaper kind: %s (stool|urine)", *c.Kind)
		}
	}
	if c.Texture != nil {
		if *c.Texture == "" {
			diaper.PoopTexture = nil
		} else {
			texture, err := parseStoolTexture(*c.Texture)
			if err != nil {
				return err
			}
			diaper.PoopTexture = &texture
		}
	}
	if c.Color != nil {
		if *c.Color == "" {
			diaper.PoopColor = nil
		} else {
			color, err := parseStoolColor(*c.Color)
			if err != nil {
				return err
			}
			diaper.PoopColor = &color
		}
	}
	if c.Note != nil {
		diaper.Note = *c.Note
	}

	if diaper.Kind == models.DiaperUrine && (diaper.PoopTexture != nil || diaper.PoopColor != nil) {
		return fmt.Errorf("texture and color only apply to stool diapers")
	}

	if err := ctx.Store.UpdateDiaperEvent(diaper); err != nil {
		return fmt.Errorf("failed to update diaper event: %w", err)
	}

	fmt.Printf("Updated diaper event %d\n", c.ID)
	return nil
}

type DiaperDeleteCmd struct {
	ID int64 `arg:"" help:"Diaper event ID to delete."`
}

func (c *DiaperDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteDiaperEvent(c.ID); err != nil {
		return fmt.Errorf("failed to delete diaper event: %w", err)
	}
	fmt.Printf("Deleted diaper event %d\n", c.ID)
	return nil
}

type DiaperListCmd struct {
	Date string `arg:"" optional:"" help:"Date to list (YYYY-MM-DD). Defaults to today."`
}

func (c *DiaperListCmd) Run(ctx *Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	diapers, err := ctx.Store.GetDiaperEventsForDate(date)
	if err != nil {
		return fmt.Errorf("failed to get diaper events: %w", err)
	}
	if len(diapers) == 0 {
		fmt.Printf("No diaper changes on %s\n", date)
		return nil
	}

	fmt.Printf("Diaper changes on %s:\n", date)
	for _, d := range diapers {
		line := fmt.Sprintf("  [%d] %s  %s", d.ID, d.Datetime[11:], d.Kind)
		if d.PoopTexture != nil {
			line += "  " + string(*d.PoopTexture)
		}
		if d.PoopColor != nil {
			line += "  " + string(*d.PoopColor)
		}
		if d.Note != "" {
			line += "  (" + d.Note + ")"
		}
		fmt.Println(line)
	}
	return nil
}
