package report

import (
	"strconv"
	"strings"
	"time"
)

// Column names required in the source report. Additional columns are
// ignored and dropped from the output.
const (
	columnFileName     = "FileName"
	columnCreationTime = "CreationTime (with ms)"
)

// matchSuffix selects the rows that survive filtering. The match is
// case-sensitive.
const matchSuffix = ".pxm"

// Record is one kept row of the source report with its timestamp parsed.
type Record struct {
	FileName     string
	CreationTime time.Time
}

// Interval is the elapsed time since the previous kept row. The first kept
// row has no predecessor, so its interval is not valid and serializes as an
// empty field rather than zero.
type Interval struct {
	Seconds float64
	Valid   bool
}

// Field renders the interval as a CSV field: a signed decimal in fractional
// seconds, or the empty string when there is no predecessor.
func (iv Interval) Field() string {
	if !iv.Valid {
		return ""
	}
	return strconv.FormatFloat(iv.Seconds, 'f', -1, 64)
}

// Row is one line of the rewritten report.
type Row struct {
	FileName string
	Interval Interval
}

// reformatName keeps the segment after the last underscore, so
// "PXMs_04_0000_0003.pxm" becomes "0003.pxm". Names without an underscore
// are returned unchanged.
func reformatName(name string) string {
	if i := strings.LastIndexByte(name, '_'); i >= 0 {
		return name[i+1:]
	}
	return name
}
