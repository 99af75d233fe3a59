package cli

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
	"github.com/babylog/babylog/internal/utils"
)

type ProfileSetCmd struct {
	Name      string `help:"Baby's name."`
	Nickname  string `help:"Nickname."`
	BirthDate string `help:"Birth date (YYYY-MM-DD)."`
	BirthTime string `help:"Birth time (HH:MM)."`
	Gender    string `help:"Gender (male|female)."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	// Start from the stored profile, so a partial set keeps the rest.
	profile, err := ctx.Store.GetProfile()
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	if c.Name != "" {
		profile.Name = c.Name
	}
	if c.Nickname != "" {
		profile.Nickname = c.Nickname
	}
	if c.BirthDate != "" {
		profile.BirthDate = c.BirthDate
	}
	if c.BirthTime != "" {
		profile.BirthTime = c.BirthTime
	}
	if c.Gender != "" {
		profile.Gender = models.Gender(c.Gender)
	}

	// No flags at all: fall back to an interactive form.
	if c.Name == "" && c.Nickname == "" && c.BirthDate == "" && c.BirthTime == "" && c.Gender == "" {
		if err := promptProfile(&profile); err != nil {
			return err
		}
	}

	if profile.Name == "" {
		return fmt.Errorf("name must not be empty")
	}
	if profile.BirthDate == "" || !utils.ValidDate(profile.BirthDate) {
		return fmt.Errorf("invalid birth date %q (expected YYYY-MM-DD)", profile.BirthDate)
	}
	switch profile.Gender {
	case "", models.GenderMale, models.GenderFemale:
	default:
		return fmt.Errorf("invalid gender %q (male|female)", profile.Gender)
	}

	if _, err := ctx.Store.PutProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Saved profile for %s\n", profile.Name)
	return nil
}

func promptProfile(profile *models.Profile) error {
	gender := string(profile.Gender)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&profile.Name),
			huh.NewInput().
				Title("Nickname (optional)").
				Value(&profile.Nickname),
			huh.NewInput().
				Title("Birth date (YYYY-MM-DD)").
				Value(&profile.BirthDate),
			huh.NewInput().
				Title("Birth time (HH:MM, optional)").
				Value(&profile.BirthTime),
			huh.NewSelect[string]().
				Title("Gender").
				Options(
					huh.NewOption("Male", "male"),
					huh.NewOption("Female", "female"),
					huh.NewOption("Prefer not to say", ""),
				).
				Value(&gender),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	profile.Gender = models.Gender(gender)
	return nil
}

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			fmt.Println("No profile set. Run 'babylog profile set' first.")
			return nil
		}
		return fmt.Errorf("failed to load profile: %w", err)
	}

	fmt.Printf("Name:       %s\n", profile.Name)
	if profile.Nickname != "" {
		fmt.Printf("Nickname:   %s\n", profile.Nickname)
	}
	fmt.Printf("Birth date: %s", profile.BirthDate)
	if profile.BirthTime != "" {
		fmt.Printf(" %s", profile.BirthTime)
	}
	fmt.Println()
	if profile.Gender != "" {
		fmt.Printf("Gender:     %s\n", profile.Gender)
	}

	if age, err := formatAge(profile.BirthDate); err == nil {
		fmt.Printf("Age:        %s\n", age)
	}
	return nil
}

// formatAge renders the baby's age as days for the first three months, then
// months and days.
func formatAge(birthDate string) (string, error) {
	birth, err := utils.ParseDate(birthDate)
	if err != nil {
		return "", err
	}
	today, err := utils.ParseDate(utils.Today())
	if err != nil {
		return "", err
	}
	if today.Before(birth) {
		return "", fmt.Errorf("birth date is in the future")
	}

	days := int(today.Sub(birth).Hours() / 24)
	if days < 90 {
		return fmt.Sprintf("%d days", days), nil
	}

	months := 0
	cursor := birth
	for {
		next := cursor.AddDate(0, 1, 0)
		if next.After(today) {
			break
		}
		cursor = next
		months++
	}
	rest := int(today.Sub(cursor).Hours() / 24)
	return fmt.Sprintf("%d months %d days", months, rest), nil
}
