package cli

import (
	"fmt"
	"strings"

	"github.com/babylog/babylog/internal/models"
)

type JournalAddCmd struct {
	Title   string `arg:"" help:"Entry title."`
	Time    string `short:"t" help:"Entry time (YYYY-MM-DDTHH:MM). Defaults to now."`
	Tags    string `help:"Comma-separated tags."`
	Context string `help:"What was going on."`
	Action  string `help:"What you did."`
	Result  string `help:"What happened."`
	Next    string `help:"What to try next time."`
	Mood    string `help:"Mood, free-form."`
}

func (c *JournalAddCmd) Run(ctx *Context) error {
	if c.Title == "" {
		return fmt.Errorf("entry title must not be empty")
	}
	ts, err := ctx.ResolveTimestamp(c.Time)
	if err != nil {
		return err
	}

	entry := models.JournalEntry{
		Datetime: ts,
		Title:    c.Title,
		Tags:     ParseTags(c.Tags),
		Context:  c.Context,
		Action:   c.Action,
		Result:   c.Result,
		Next:     c.Next,
		Mood:     c.Mood,
	}

	id, err := ctx.Store.AddJournalEntry(entry)
	if err != nil {
		return err
	}

	fmt.Printf("Added journal entry: %s (ID: %d)\n", c.Title, id)
	return nil
}

type JournalEditCmd struct {
	ID      int64   `arg:"" help:"Journal entry ID."`
	Title   *string `help:"New title."`
	Time    *string `short:"t" help:"New time (YYYY-MM-DDTHH:MM)."`
	Tags    *string `help:"New comma-separated tags. Empty string clears."`
	Context *string `help:"New context."`
	Action  *string `help:"New action."`
	Result  *string `help:"New result."`
	Next    *string `help:"New next step."`
	Mood    *string `help:"New mood."`
}

func (c *JournalEditCmd) Run(ctx *Context) error {
	entry, err := ctx.Store.GetJournalEntry(c.ID)
	if err != nil {
		return fmt.Errorf("failed to find journal entry: %w", err)
	}

	if c.Title != nil {
		if *c.Title == "" {
			return fmt.Errorf("entry title must not be empty")
		}
		entry.Title = *c.Title
	}
	if c.Time != nil {
		ts, err := ctx.ResolveTimestamp(*c.Time)
		if err != nil {
			return err
		}
		entry.Datetime = ts
	}
	if c.Tags != nil {
		entry.Tags = ParseTags(*c.Tags)
	}
	if c.Context != nil {
		entry.Context = *c.Context
	}
	if c.Action != nil {
		entry.Action = *c.Action
	}
	if c.Result != nil {
		entry.Result = *c.Result
	}
	if c.Next != nil {
		entry.Next = *c.Next
	}
	if c.Mood != nil {
		entry.Mood = *c.Mood
	}

	if err := ctx.Store.UpdateJournalEntry(entry); err != nil {
		return fmt.Errorf("failed to update journal entry: %w", err)
	}

	fmt.Printf("Updated journal entry %d\n", c.ID)
	return nil
}

type JournalDeleteCmd struct {
	ID int64 `arg:"" help:"Journal entry ID to delete."`
}

func (c *JournalDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Store.DeleteJournalEntry(c.ID); err != nil {
		return fmt.Errorf("failed to delete journal entry: %w", err)
	}
	fmt.Printf("Deleted journal entry %d\n", c.ID)
	return nil
}

type JournalListCmd struct {
	From string `help:"Earliest date to include (YYYY-MM-DD)."`
	To   string `help:"Latest date to include (YYYY-MM-DD)."`
	Long bool   `short:"l" help:"Show the full context/action/result/next body."`
}

func (c *JournalListCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetJournalEntries(c.From, c.To, true)
	if err != nil {
		return fmt.Errorf("failed to get journal entries: %w", err)
	}
	if len(entries) == 0 {
		fmt.Println("No journal entries found")
		return nil
	}

	fmt.Println("Journal:")
	for _, e := range entries {
		line := fmt.Sprintf("  [%d] %s  %s", e.ID, e.Datetime, e.Title)
		if e.Mood != "" {
			line += "  (" + e.Mood + ")"
		}
		if len(e.Tags) > 0 {
			line += "  [" + strings.Join(e.Tags, ",") + "]"
		}
		fmt.Println(line)

		if c.Long {
			for _, part := range []struct{ label, text string }{
				{"context", e.Context},
				{"action", e.Action},
				{"result", e.Result},
				{"next", e.Next},
			} {
				if part.text != "" {
					fmt.Printf("      %s: %s\n", part.label, part.text)
				}
			}
		}
	}
	return nil
}
