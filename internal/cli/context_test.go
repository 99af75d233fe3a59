package cli

import (
	"reflect"
	"testing"
	"time"

	"github.com/babylog/babylog/internal/config"
	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/utils"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"empty", "", nil},
		{"single", "fever", []string{"fever"}},
		{"multiple", "fever,rash", []string{"fever", "rash"}},
		{"whitespace trimmed", " fever , rash ", []string{"fever", "rash"}},
		{"empties dropped", "fever,,rash,", []string{"fever", "rash"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTags(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("ParseTags(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	mlCtx := &Context{Config: config.Config{VolumeUnit: "ml"}}
	if got := mlCtx.FormatAmount(120); got != "120 ml" {
		t.Errorf("FormatAmount(120) = %q, want %q", got, "120 ml")
	}

	ozCtx := &Context{Config: config.Config{VolumeUnit: "oz"}}
	if got := ozCtx.FormatAmount(120); got != "4.1 oz" {
		t.Errorf("FormatAmount(120) in oz = %q, want %q", got, "4.1 oz")
	}
}

func TestFormatDailyLog(t *testing.T) {
	log := models.DailyLog{
		Date:        "2024-03-01",
		MilkTimes:   6,
		MilkTotalMl: 720,
		PoopTimes:   2,
		PeeTimes:    5,
		SleepHours:  14.5,
	}

	want := "2024-03-01  milk 6x/720ml  poop 2x  pee 5x  sleep 14.5h"
	if got := FormatDailyLog(log); got != want {
		t.Errorf("FormatDailyLog() = %q, want %q", got, want)
	}

	log.SymptomsTags = []string{"fever", "rash"}
	want += "  [fever,rash]"
	if got := FormatDailyLog(log); got != want {
		t.Errorf("FormatDailyLog() with tags = %q, want %q", got, want)
	}
}

func TestResolveDate(t *testing.T) {
	ctx := &Context{}

	got, err := ctx.ResolveDate("2024-03-01")
	if err != nil || got != "2024-03-01" {
		t.Errorf("ResolveDate(2024-03-01) = %q, %v", got, err)
	}

	if _, err := ctx.ResolveDate("03/01/2024"); err == nil {
		t.Error("ResolveDate accepted a non-ISO date")
	}

	today, err := ctx.ResolveDate("")
	if err != nil || len(today) != 10 {
		t.Errorf("ResolveDate(\"\") = %q, %v", today, err)
	}
}

func TestResolveDefaultsHonorLocation(t *testing.T) {
	loc := time.FixedZone("UTC+14", 14*3600)
	ctx := &Context{Location: loc}

	before := utils.TodayIn(loc)
	date, err := ctx.ResolveDate("")
	after := utils.TodayIn(loc)
	if err != nil {
		t.Fatalf("ResolveDate(\"\") error: %v", err)
	}
	if date != before && date != after {
		t.Errorf("ResolveDate(\"\") = %q, want today in %v", date, loc)
	}

	ts, err := ctx.ResolveTimestamp("")
	if err != nil {
		t.Fatalf("ResolveTimestamp(\"\") error: %v", err)
	}
	if ts[:10] != before && ts[:10] != after {
		t.Errorf("ResolveTimestamp(\"\") = %q, not in the configured zone", ts)
	}
}

func TestParseFeedType(t *testing.T) {
	for input, want := range map[string]models.FeedType{
		"breast":  models.FeedBreast,
		"formula": models.FeedFormula,
		"mixed":   models.FeedMixed,
	} {
		got, err := parseFeedType(input)
		if err != nil || got != want {
			t.Errorf("parseFeedType(%q) = %q, %v", input, got, err)
		}
	}

	if _, err := parseFeedType("solid"); err == nil {
		t.Error("parseFeedType accepted an unknown type")
	}
}

func TestParseStoolColor(t *testing.T) {
	for _, input := range []string{"yellow", "green", "black", "red"} {
		if _, err := parseStoolColor(input); err != nil {
			t.Errorf("parseStoolColor(%q) error: %v", input, err)
		}
	}

	// Brown is not part of the recorded palette.
	if _, err := parseStoolColor("brown"); err == nil {
		t.Error("parseStoolColor accepted brown")
	}
}

func TestValidateSleepWindow(t *testing.T) {
	if err := validateSleepWindow("2024-03-01T22:00", "2024-03-02T06:00"); err != nil {
		t.Errorf("valid midnight-crossing window rejected: %v", err)
	}
	if err := validateSleepWindow("2024-03-01T22:00", "2024-03-01T21:00"); err == nil {
		t.Error("end before start accepted")
	}
	if err := validateSleepWindow("not-a-time", "2024-03-01T21:00"); err == nil {
		t.Error("malformed start accepted")
	}
}

func TestHasTag(t *testing.T) {
	tags := []string{"rolls-over", "smiles"}
	if !hasTag(tags, "smiles") {
		t.Error("hasTag missed an existing tag")
	}
	if hasTag(tags, "crawls") {
		t.Error("hasTag matched a missing tag")
	}
	if hasTag(nil, "smiles") {
		t.Error("hasTag matched on nil tags")
	}
}
