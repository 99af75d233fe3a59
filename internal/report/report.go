package report

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/babylog/babylog/internal/models"
	"github.com/babylog/babylog/internal/storage"
)

var dailyLogHeader = []string{
	"Date",
	"Milk Times",
	"Milk Total (ml)",
	"Poop Times",
	"Pee Times",
	"Sleep (h)",
	"Symptoms",
	"Note",
}

var growthHeader = []string{
	"Date",
	"Weight (kg)",
	"Height (cm)",
	"Head (cm)",
	"Note",
}

// Writer renders stored data as an xlsx workbook with one sheet of daily
// aggregates and one of growth records.
type Writer struct {
	store storage.Provider
}

func NewWriter(store storage.Provider) *Writer {
	return &Writer{store: store}
}

// WriteXLSX writes the workbook to path. from and to bound the daily log
// sheet; empty strings mean unbounded.
func (w *Writer) WriteXLSX(path, from, to string) error {
	logs, err := w.store.GetDailyLogs(from, to, false)
	if err != nil {
		return fmt.Errorf("failed to get daily logs: %w", err)
	}
	growth, err := w.store.GetAllGrowthRecords()
	if err != nil {
		return fmt.Errorf("failed to get growth records: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	if err := w.writeDailyLogs(f, headerStyle, logs); err != nil {
		return err
	}
	if err := w.writeGrowth(f, headerStyle, growth); err != nil {
		return err
	}
	f.DeleteSheet("Sheet1")

	return f.SaveAs(path)
}

func (w *Writer) writeDailyLogs(f *excelize.File, headerStyle int, logs []models.DailyLog) error {
	const sheet = "Daily Logs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	if err := writeHeader(f, sheet, dailyLogHeader, headerStyle); err != nil {
		return err
	}

	widths := []float64{12, 11, 14, 11, 10, 10, 24, 36}
	if err := setWidths(f, sheet, widths); err != nil {
		return err
	}

	for i, log := range logs {
		row := i + 2
		cells := []interface{}{
			log.Date,
			log.MilkTimes,
			log.MilkTotalMl,
			log.PoopTimes,
			log.PeeTimes,
			log.SleepHours,
			joinTags(log.SymptomsTags),
			log.Note,
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) writeGrowth(f *excelize.File, headerStyle int, records []models.GrowthRecord) error {
	const sheet = "Growth"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	if err := writeHeader(f, sheet, growthHeader, headerStyle); err != nil {
		return err
	}

	widths := []float64{12, 12, 12, 12, 36}
	if err := setWidths(f, sheet, widths); err != nil {
		return err
	}

	for i, rec := range records {
		row := i + 2
		cells := []interface{}{
			rec.Date,
			floatOrBlank(rec.WeightKg),
			floatOrBlank(rec.HeightCm),
			floatOrBlank(rec.HeadCm),
			rec.Note,
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return fmt.Errorf("failed to set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return fmt.Errorf("failed to set header style: %w", err)
		}
	}
	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to convert column number: %w", err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for col, value := range cells {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to convert coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell %s: %w", cell, err)
		}
	}
	return nil
}

func joinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func floatOrBlank(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
