package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/cmlabs-hris/presence-bot-go/internal/domain/report"
)

func TestTardinessWorkbook(t *testing.T) {
	mean := 8
	r := report.TardinessReport{
		WindowDays:  7,
		PeriodStart: "2026-10-08",
		PeriodEnd:   "2026-10-15",
		Rows: []report.ReportRow{
			{UserID: 1, EmployeeName: "Анна", LateCount: 2, MeanDelayMinutes: &mean},
			{UserID: 2, EmployeeName: "Борис", LateCount: 0},
		},
	}

	content, err := TardinessWorkbook(r)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(TardinessSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, tardinessHeaders, rows[0])
	assert.Equal(t, []string{"Анна", "2", "8"}, rows[1])
	assert.Equal(t, []string{"Борис", "0", NoDataMarker}, rows[2])
}

func TestTardinessFilename(t *testing.T) {
	assert.Equal(t, "tardiness_2026-10-15.xlsx",
		TardinessFilename(report.TardinessReport{PeriodStart: "2026-10-15", PeriodEnd: "2026-10-15"}))
	assert.Equal(t, "tardiness_2026-10-08_2026-10-15.xlsx",
		TardinessFilename(report.TardinessReport{PeriodStart: "2026-10-08", PeriodEnd: "2026-10-15"}))
}
