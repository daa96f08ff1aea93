package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	apperrors "pxmcli/internal/errors"
)

// Processor rewrites a file creation time report in place.
type Processor struct {
	logger *slog.Logger
}

// NewProcessor creates a processor. A nil logger falls back to the default
// slog logger.
func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{logger: logger}
}

// Summary describes what a successful run did to the report file.
type Summary struct {
	// TotalRows is the number of data rows in the source report.
	TotalRows int
	// MatchingRows is the number of rows that survived filtering.
	MatchingRows int
	// Cleared is true when no row matched and the file was truncated.
	Cleared bool
}

// Process reads the report at path, reduces it to the interval table and
// overwrites the file with the result. When no row matches the file is
// truncated to zero bytes, which is a success, not an error.
//
// A missing file is reported as CodeFileNotFound and leaves the filesystem
// untouched. Structural or timestamp problems are reported as
// CodeParseError. There is no rollback: a write failure can leave the file
// partially rewritten.
func (p *Processor) Process(path string) (*Summary, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.Wrap(apperrors.CodeFileNotFound, fmt.Sprintf("report file %q not found", path), err)
		}
		return nil, fmt.Errorf("failed to stat report file %q: %w", path, err)
	}

	rows, err := readReport(path)
	if err != nil {
		return nil, err
	}

	selected := selectMatching(rows)
	p.logger.Info("report loaded",
		slog.String("path", path),
		slog.Int("total_rows", len(rows)),
		slog.Int("matching_rows", len(selected)))

	summary := &Summary{TotalRows: len(rows), MatchingRows: len(selected)}

	if len(selected) == 0 {
		if err := os.Truncate(path, 0); err != nil {
			return nil, fmt.Errorf("failed to clear report file: %w", err)
		}
		p.logger.Info("no matching rows, report cleared", slog.String("path", path))
		summary.Cleared = true
		return summary, nil
	}

	records, err := parseRecords(selected)
	if err != nil {
		return nil, err
	}

	out := buildRows(records)

	if err := writeReport(path, out); err != nil {
		return nil, err
	}

	p.logger.Info("report rewritten",
		slog.String("path", path),
		slog.Int("rows_written", len(out)))

	return summary, nil
}

// selectMatching keeps rows whose filename ends with the match suffix,
// preserving their relative order. Rows without a filename are skipped.
func selectMatching(rows []sourceRow) []sourceRow {
	var selected []sourceRow
	for _, row := range rows {
		if row.fileName == "" {
			continue
		}
		if strings.HasSuffix(row.fileName, matchSuffix) {
			selected = append(selected, row)
		}
	}
	return selected
}

// parseRecords parses the creation timestamps of the selected rows.
func parseRecords(rows []sourceRow) ([]Record, error) {
	records := make([]Record, len(rows))
	for i, row := range rows {
		t, err := parseCreationTime(row.creationTime)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeParseError,
				fmt.Sprintf("unparseable creation time %q for %q", row.creationTime, row.fileName), err)
		}
		records[i] = Record{FileName: row.fileName, CreationTime: t}
	}
	return records, nil
}

// buildRows derives the output table: reformatted filenames plus the
// elapsed seconds since the previous record. The first row keeps an invalid
// interval so it serializes as an empty field.
func buildRows(records []Record) []Row {
	rows := make([]Row, len(records))
	for i, rec := range records {
		row := Row{FileName: reformatName(rec.FileName)}
		if i > 0 {
			row.Interval = Interval{
				Seconds: rec.CreationTime.Sub(records[i-1].CreationTime).Seconds(),
				Valid:   true,
			}
		}
		rows[i] = row
	}
	return rows
}

// writeReport overwrites the file at path with the output table: two
// columns, no header, no index.
func writeReport(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write([]string{row.FileName, row.Interval.Field()}); err != nil {
			f.Close()
			return fmt.Errorf("failed to write report row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("failed to flush report: %w", err)
	}
	return f.Close()
}
