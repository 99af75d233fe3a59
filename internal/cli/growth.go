package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/models"
)

type GrowthAddCmd struct {
	Date   string   `short:"d" help:"Measurement date (YYYY-MM-DD). Defaults to today."`
	Weight *float64 `short:"w" help:"Weight in kilograms."`
	Height *float64 `help:"Height in centimeters."`
	Head   *float64 `help:"Head circumference in centimeters."`
	Note   string   `short:"n" help:"Free-form note."`
}

func (c *GrowthAddCmd) Run(ctx *Context) error {
	if c.Weight == nil && c.Height == nil && c.Head == nil {
		return fmt.Errorf("at least one of --weight, --height, or --head is required")
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	rec := models.GrowthRecord{
		Date:     date,
		WeightKg: c.Weight,
		HeightCm: c.Height,
		HeadCm:   c.Head,
		Note:     c.Note,
	}

	id, err := ctx.Store.AddGrowthRecord(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Added growth record for %s (ID: %d)\n", date, id)
	return nil
}

type GrowthEditCmd struct {
	ID     int64    `arg:"" help:"Growth record ID."`
	Date   *string  `short:"d" help:"New date (YYYY-MM-DD)."`
	Weight *float64 `short:"w" help:"New weight in kilograms."`
	Height *float64 `help:"New height in centimeters."`
	Head   *float64 `help:"New head circumference in centimeters."`
	Note   *string  `short:"n" help:"New note."`
}

func (c *GrowthEditCmd) Run(ctx *Context) error {
	rec, err := ctx.Store.GetGrowthRecord(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find growth record: %w", err)
	}

	if c.Date != nil {
		date, err := ctx.ResolveDate(*c.Date)
		if err != nil {
			return err
		}
		rec.Date = date
	}
	if c.Weight != nil {
		rec.WeightKg = c.Weight
	}
	if c.Height != nil {
		rec.HeightCm = c.Height
	}
	if c.Head != nil {
		rec.HeadCm = c.Head
	}
	if c.Note != nil {
		rec.Note = *c.Note
	}

	if err := ctx.Store.UpdateGrowthRecord(rec); err != nil {
		return fmt.Errorf("failed to update growth record: %w", err)
	}

	fmt.Printf("Updated growth record %d\n", c.ID)
	return nil
}

type GrowthDeleteCmd struct {
	ID int64 `arg:"" help:"Growth record ID to delete."`
}

func (c *GrowthDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteGrowthRecord(c.ID); err != nil {
		return fmt.Errorf("failed to delete growth record: %w", err)
	}
	fmt.Printf("Deleted growth record %d\n", c.ID)
	return nil
}

type GrowthListCmd struct{}

func (c *GrowthListCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetAllGrowthRecords()
	if err != nil {
		return fmt.Errorf("failed to get growth records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No growth records found")
		return nil
	}

	fmt.Println("Growth records:")
	for _, rec := range records {
		line := fmt.Sprintf("  [%d] %s", rec.ID, rec.Date)
		if rec.WeightKg != nil {
			line += fmt.Sprintf("  %.2fkg", *rec.WeightKg)
		}
		if rec.HeightCm != nil {
			line += fmt.Sprintf("  %.1fcm", *rec.HeightCm)
		}
		if rec.HeadCm != nil {
			line += fmt.Sprintf("  head %.1fcm", *rec.HeadCm)
		}
		if rec.Note != "" {
			line += "  (" + rec.Note + ")"
		}
		fmt.Println(line)
	}
	return nil
}
