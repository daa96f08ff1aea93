// Package report turns a file creation time report into a compact interval
// table.
//
// The input is a CSV with a header row containing at least the FileName and
// "CreationTime (with ms)" columns. The processor keeps rows whose filename
// ends in ".pxm", computes the elapsed seconds between consecutive kept
// rows, shortens each filename to the segment after its last underscore and
// overwrites the input file with a headerless two-column CSV:
//
//	0003.pxm,
//	0004.pxm,1.5
//
// The interval field of the first kept row is always empty because it has
// no predecessor. When no row matches, the file is truncated to zero bytes
// and the run still counts as a success.
package report
