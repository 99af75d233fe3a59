package cli

import (
	"fmt"

	"github.com/babylog/babylog/internal/report"
)

type ReportXlsxCmd struct {
	Out  string `short:"o" help:"Output file path." default:"babylog-report.xlsx"`
	From string `help:"Earliest date to include (YYYY-MM-DD)."`
	To   string `help:"Latest date to include (YYYY-MM-DD)."`
}

func (c *ReportXlsxCmd) Run(ctx *Context) error {
	if c.From != "" {
		if _, err := ctx.ResolveDate(c.From); err != nil {
			return err
		}
	}
	if c.To != "" {
		if _, err := ctx.ResolveDate(c.To); err != nil {
			return err
		}
	}

	writer := report.NewWriter(ctx.Store)
	if err := writer.WriteXLSX(c.Out, c.From, c.To); err != nil {
		return fmt.Errorf("report failed: %w", err)
	}

	fmt.Printf("✓ Report written to: %s\n", c.Out)
	return nil
}
