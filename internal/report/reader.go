package report

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"time"

	apperrors "pxmcli/internal/errors"
)

// sourceRow is a raw report row before any timestamp parsing. Timestamps of
// rows that get filtered out are never parsed, so a broken value in a
// non-matching row cannot fail a run.
type sourceRow struct {
	fileName     string
	creationTime string
}

// creationTimeLayouts are the textual timestamp forms the source report is
// known to emit. The fractional part is optional in all of them.
var creationTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006/01/02 15:04:05.999999999",
}

// readReport loads the report at path into memory, preserving row order.
func readReport(path string) ([]sourceRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeParseError, "failed to open report file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err == io.EOF {
		return nil, apperrors.New(apperrors.CodeParseError, "report file is empty")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeParseError, "failed to read report header", err)
	}

	nameIdx, timeIdx := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case columnFileName:
			nameIdx = i
		case columnCreationTime:
			timeIdx = i
		}
	}
	if nameIdx < 0 {
		return nil, apperrors.Newf(apperrors.CodeParseError, "report is missing required column %q", columnFileName)
	}
	if timeIdx < 0 {
		return nil, apperrors.Newf(apperrors.CodeParseError, "report is missing required column %q", columnCreationTime)
	}

	var rows []sourceRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeParseError, "malformed report row", err)
		}

		var row sourceRow
		if nameIdx < len(rec) {
			row.fileName = rec[nameIdx]
		}
		if timeIdx < len(rec) {
			row.creationTime = rec[timeIdx]
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// parseCreationTime parses a millisecond-precision creation timestamp.
func parseCreationTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)

	var lastErr error
	for _, layout := range creationTimeLayouts {
		t, err := time.Parse(layout, trimmed)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
