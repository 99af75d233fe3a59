package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/models"
)

type VaccineAddCmd struct {
	Name     string `arg:"" help:"Vaccine name."`
	Date     string `short:"d" help:"Vaccination date (YYYY-MM-DD). Defaults to today."`
	Reaction string `short:"r" help:"Observed reaction, if any."`
	Note     string `short:"n" help:"Free-form note."`
}

func (c *VaccineAddCmd) Run(ctx *Context) error {
	if c.Name == "" {
		return fmt.Errorf("vaccine name must not be empty")
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	rec := models.VaccineRecord{
		Date:     date,
		Name:     c.Name,
		Reaction: c.Reaction,
		Note:     c.Note,
	}

	id, err := ctx.Store.AddVaccineRecord(rec)
	if err != nil {
		return err
	}

	fmt.Printf("Added vaccine record: %s on %s (ID: %d)\n", c.Name, date, id)
	return nil
}

type VaccineEditCmd struct {
	ID       int64   `arg:"" help:"Vaccine record ID."`
	Name     *string `help:"New vaccine name."`
	Date     *string `short:"d" help:"New date (YYYY-MM-DD)."`
	Reaction *string `short:"r" help:"New reaction."`
	Note     *string `short:"n" help:"New note."`
}

func (c *VaccineEditCmd) Run(ctx *Context) error {
	rec, err := ctx.Store.GetVaccineRecord(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find vaccine record: %w", err)
	}

	if c.Name != nil {
		if *c.Name == "" {
			return fmt.Errorf("vaccine name must not be empty")
		}
		rec.Name = *c.Name
	}
	if c.Date != nil {
		date, err := ctx.ResolveDate(*c.Date)
		if err != nil {
			return err
		}
		rec.Date = date
	}
	if c.Reaction != nil {
		rec.Reaction = *c.Reaction
	}
	if c.Note != nil {
		rec.Note = *c.Note
	}

	if err := ctx.Store.UpdateVaccineRecord(rec); err != nil {
		return fmt.Errorf("failed to update vaccine record: %w", err)
	}

	fmt.Printf("Updated vaccine record %d\n", c.ID)
	return nil
}

type VaccineDeleteCmd struct {
	ID int64 `arg:"" help:"Vaccine record ID to delete."`
}

func (c *VaccineDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteVaccineRecord(c.ID); err != nil {
		return fmt.Errorf("failed to delete vaccine record: %w", err)
	}
	fmt.Printf("Deleted vaccine record %d\n", c.ID)
	return nil
}

type VaccineListCmd struct{}

func (c *VaccineListCmd) Run(ctx *Context) error {
	records, err := ctx.Store.GetAllVaccineRecords()
	if err != nil {
		return fmt.Errorf("failed to get vaccine records: %w", err)
	}
	if len(records) == 0 {
		fmt.Println("No vaccine records found")
		return nil
	}

	fmt.Println("Vaccine records:")
	for _, rec := range records {
		line := fmt.Sprintf("  [%d] %s  %s", rec.ID, rec.Date, rec.Name)
		if rec.Reaction != "" {
			line += "  reaction: " + rec.Reaction
		}
		if rec.Note != "" {
			line += "  (" + rec.Note + ")"
		}
		fmt.Println(line)
	}
	return nil
}
