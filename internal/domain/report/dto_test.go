package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTardinessReportRequest_Validate(t *testing.T) {
	for _, days := range []int{0, 1, 7, 30, MaxWindowDays} {
		req := TardinessReportRequest{WindowDays: days}
		assert.NoError(t, req.Validate(), days)
	}
	for _, days := range []int{-1, MaxWindowDays + 1} {
		req := TardinessReportRequest{WindowDays: days}
		assert.Error(t, req.Validate(), days)
	}
}
