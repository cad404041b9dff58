// Package export writes a day's floor-plan timeline to an Excel workbook,
// one sheet per zone.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"floorline/internal/filter"
	"floorline/internal/layout"
	"floorline/internal/metrics"
	"floorline/internal/model"
	"floorline/internal/timeutil"
)

var header = []string{
	"Table", "Capacity", "Type", "Status", "Guest", "People", "Phone",
	"Start", "End", "Row", "Coverage",
}

// DayPlan builds a workbook for the selected day: one sheet per zone, one
// row per timeline event, ordered the way the layout engine emits them.
type DayPlan struct {
	file *excelize.File
}

// BuildDayPlan lays out every table of the selected day and collects the
// events into a workbook. An empty zones selection includes all zones.
func BuildDayPlan(snap *model.BookingSnapshot, day string, zones []string) (*DayPlan, error) {
	if snap == nil {
		return nil, fmt.Errorf("no snapshot loaded")
	}

	openMin := timeutil.ClockToMinutesOrZero(snap.Restaurant.OpeningTime)
	closeMin := timeutil.ClockToMinutesOrZero(snap.Restaurant.ClosingTime)
	tables := filter.Tables(snap, day, zones)

	f := excelize.NewFile()
	firstSheet := true

	for _, zone := range filter.Zones(snap) {
		if !zoneIncluded(zone, zones) {
			continue
		}

		sheet := sheetName(zone)
		if firstSheet {
			f.SetSheetName("Sheet1", sheet)
			firstSheet = false
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				f.Close()
				return nil, fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		if err := writeZone(f, sheet, zone, tables, openMin, closeMin); err != nil {
			f.Close()
			return nil, err
		}
	}

	metrics.IncExport()
	return &DayPlan{file: f}, nil
}

// Save writes the workbook to w.
func (p *DayPlan) Save(w io.Writer) error {
	return p.file.Write(w)
}

// SaveToFile writes the workbook to disk.
func (p *DayPlan) SaveToFile(path string) error {
	return p.file.SaveAs(path)
}

// Close releases workbook resources.
func (p *DayPlan) Close() error {
	return p.file.Close()
}

func writeZone(f *excelize.File, sheet, zone string, tables []model.Table, openMin, closeMin int) error {
	row := 1
	for i, col := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return err
		}
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		startCell, _ := excelize.CoordinatesToCellName(1, row)
		endCell, _ := excelize.CoordinatesToCellName(len(header), row)
		_ = f.SetCellStyle(sheet, startCell, endCell, style)
	}
	row++

	for _, t := range tables {
		if t.Zone != zone {
			continue
		}
		for _, ev := range layout.Table(t, openMin, closeMin) {
			values := []any{
				t.Number,
				t.Capacity,
				string(ev.Type),
				ev.Status,
				ev.Name,
				ev.NumPeople,
				ev.PhoneNumber,
				timeutil.MinutesToClock(normalizeClock(openMin + ev.StartMin)),
				timeutil.MinutesToClock(normalizeClock(openMin + ev.EndMin)),
				ev.RowIndex + 1,
				fmt.Sprintf("%.0f%%", ev.CoverRatio*100),
			}
			for i, val := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, val); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}

func zoneIncluded(zone string, zones []string) bool {
	if len(zones) == 0 {
		return true
	}
	for _, z := range zones {
		if z == zone {
			return true
		}
	}
	return false
}

// sheetName truncates to the 31-char Excel sheet name limit.
func sheetName(zone string) string {
	if len(zone) > 31 {
		return zone[:31]
	}
	return zone
}

func normalizeClock(minutes int) int {
	return ((minutes % 1440) + 1440) % 1440
}
