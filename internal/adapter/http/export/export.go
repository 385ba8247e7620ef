// Package export renders schedule lists as downloadable tables.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/schedule-lookup/schedule-lookup-service/internal/domain"
)

// Content types and file names of the export formats.
const (
	CSVContentType  = "text/csv; charset=utf-8"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	CSVFilename     = "schedules.csv"
	XLSXFilename    = "schedules.xlsx"
	SheetName       = "Schedules"
)

// Columns is the header row shared by every format, in order.
var Columns = []string{
	"originLocode",
	"destinationLocode",
	"etd",
	"eta",
	"vessel",
	"voyage",
	"carrier",
	"routingType",
	"transitDays",
	"service",
}

// Row flattens a schedule into the Columns order.
func Row(s domain.Schedule) []string {
	return []string{
		locodeOf(s.OriginLocode, s.Origin),
		locodeOf(s.DestinationLocode, s.Destination),
		s.ETD,
		s.ETA,
		s.Vessel,
		s.Voyage,
		s.Carrier,
		string(s.RoutingType),
		strconv.Itoa(s.TransitDays),
		s.ServiceOrEmpty(),
	}
}

// locodeOf returns the known locode, or a best-effort code built from the
// display name's first 5 characters ("Rotterdam, NL" -> "ROTTE").
func locodeOf(locode, display string) string {
	if locode != "" {
		return locode
	}
	name, _, _ := strings.Cut(display, ",")
	code := []rune(strings.ToUpper(strings.TrimSpace(name)))
	if len(code) > 5 {
		code = code[:5]
	}
	return string(code)
}

// CSV renders schedules as RFC 4180 CSV with a header row.
func CSV(schedules []domain.Schedule) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Columns); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, s := range schedules {
		if err := w.Write(Row(s)); err != nil {
			return nil, fmt.Errorf("write csv row %s: %w", s.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// XLSX renders schedules into a single-sheet workbook. transitDays is
// written as a number, everything else as text.
func XLSX(schedules []domain.Schedule) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("name sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return nil, fmt.Errorf("open sheet writer: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("write xlsx header: %w", err)
	}

	transitCol := indexOf(Columns, "transitDays")
	for i, s := range schedules {
		row := Row(s)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cells[transitCol] = s.TransitDays

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := sw.SetRow(cell, cells); err != nil {
			return nil, fmt.Errorf("write xlsx row %s: %w", s.ID, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("flush xlsx: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encode xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
