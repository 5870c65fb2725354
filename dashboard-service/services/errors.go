package services

import "errors"

var (
	// ErrDatasetParse marks an upload that could not be read as CSV.
	ErrDatasetParse = errors.New("dataset parse error")
	// ErrReportExport marks a report that could not be rendered or written.
	ErrReportExport = errors.New("report export error")
)
