package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

const (
	TardinessSheet  = "Опоздания"
	NoDataMarker    = "нет данных"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var tardinessHeaders = []string{"Сотрудник", "Количество опозданий", "Среднее опоздание (мин)"}

// TardinessFilename names the workbook after the report period.
func TardinessFilename(r report.TardinessReport) string {
	if r.PeriodStart == r.PeriodEnd {
		return fmt.Sprintf("tardiness_%s.xlsx", r.PeriodEnd)
	}
	return fmt.Sprintf("tardiness_%s_%s.xlsx", r.PeriodStart, r.PeriodEnd)
}

// TardinessWorkbook renders the report rows as an xlsx workbook.
func TardinessWorkbook(r report.TardinessReport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TardinessSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	for i, h := range tardinessHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(TardinessSheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	if err := f.SetCellStyle(TardinessSheet, "A1", "C1", headerStyle); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, row := range r.Rows {
		line := i + 2
		var mean interface{} = NoDataMarker
		if row.MeanDelayMinutes != nil {
			mean = *row.MeanDelayMinutes
		}
		values := []interface{}{row.EmployeeName, row.LateCount, mean}
		cell, _ := excelize.CoordinatesToCellName(1, line)
		if err := f.SetSheetRow(TardinessSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", line, err)
		}
	}

	_ = f.SetColWidth(TardinessSheet, "A", "A", 30)
	_ = f.SetColWidth(TardinessSheet, "B", "C", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
