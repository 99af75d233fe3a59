package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/babylog/babylog/internal/aggregator"
	"github.com/babylog/babylog/internal/backup"
	"github.com/babylog/babylog/internal/bus"
	"github.com/babylog/babylog/internal/config"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
	"github.com/babylog/babylog/internal/utils"
)

type Context struct {
	Store      storage.Provider
	Bus        *bus.Bus
	Aggregator *aggregator.Aggregator
	Config     config.Config
	ConfigDir  string
	// Location is the timezone for the "today"/"now" defaults, from the
	// config's timezone setting. Nil means system local time.
	Location *time.Location
}

func (c *Context) location() *time.Location {
	if c.Location != nil {
		return c.Location
	}
	return time.Local
}

// Codec returns the backup codec bound to the store.
func (c *Context) Codec() *backup.Codec {
	return backup.NewCodec(c.Store)
}

// ResolveDate turns an optional date flag into a concrete date, defaulting
// to today, and validates the format.
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" {
		return utils.TodayIn(c.location()), nil
	}
	if !utils.ValidDate(date) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}
	return date, nil
}

// ResolveTimestamp turns an optional timestamp flag into a concrete
// minute-precision timestamp, defaulting to now.
func (c *Context) ResolveTimestamp(ts string) (string, error) {
	if ts == "" {
		return utils.NowStampIn(c.location()), nil
	}
	if !utils.ValidTimestamp(ts) {
		return "", fmt.Errorf("invalid time %q (expected YYYY-MM-DDTHH:MM)", ts)
	}
	return ts, nil
}

// ParseTags parses a comma-separated tag list, trimming whitespace and
// dropping empties.
func ParseTags(s string) []string {
	if s == "" {
		return nil
	}
	var tags []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

// FormatAmount renders a feed amount in the configured volume unit.
func (c *Context) FormatAmount(ml int) string {
	if c.Config.VolumeUnit == "oz" {
		return fmt.Sprintf("%.1f oz", float64(ml)/29.5735)
	}
	return fmt.Sprintf("%d ml", ml)
}

// FormatDailyLog renders one aggregate line for list output.
func FormatDailyLog(log models.DailyLog) string {
	line := fmt.Sprintf("%s  milk %dx/%dml  poop %dx  pee %dx  sleep %.1fh",
		log.Date, log.MilkTimes, log.MilkTotalMl, log.PoopTimes, log.PeeTimes, log.SleepHours)
	if len(log.SymptomsTags) > 0 {
		line += "  [" + strings.Join(log.SymptomsTags, ",") + "]"
	}
	return line
}
