package report

import "errors"

var ErrReportNotFound = errors.New("no report has been generated yet")
