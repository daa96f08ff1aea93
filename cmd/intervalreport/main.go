// Command intervalreport reduces a file creation time report to a two
// column CSV of short filenames and the elapsed seconds between
// consecutive .pxm entries, overwriting the report in place.
//
// Usage:
//
//	intervalreport [report.csv]
//
// Without an argument it processes FileCreationTime_Report.csv in the
// current directory. Errors are reported as messages on stdout; the
// process always exits normally.
package main

import (
	"flag"
	"fmt"
	"log/slog"

	"pxmcli/internal/config"
	apperrors "pxmcli/internal/errors"
	"pxmcli/internal/infrastructure"
	"pxmcli/internal/report"
)

func main() {
	flag.Parse()

	path := config.DefaultReportFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("Failed to load config, using defaults", "error", err)
		cfg = config.Default()
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	logger.Info("Starting report processing", slog.String("report", path))

	summary, err := report.NewProcessor(logger).Process(path)
	if err != nil {
		logger.Error("Report processing failed",
			slog.String("report", path),
			slog.String("code", string(apperrors.CodeOf(err))),
			slog.String("error", err.Error()))
		fmt.Println(failureMessage(path, err))
		return
	}

	if summary.Cleared {
		fmt.Printf("No .pxm entries found in %q.\n", path)
		fmt.Printf("File %q has been cleared.\n", path)
	} else {
		fmt.Printf("File %q processed and saved (%d of %d rows kept).\n",
			path, summary.MatchingRows, summary.TotalRows)
	}

	logger.Info("Report processing completed",
		slog.String("report", path),
		slog.Int("total_rows", summary.TotalRows),
		slog.Int("matching_rows", summary.MatchingRows),
		slog.Bool("cleared", summary.Cleared))
}

// failureMessage maps a processing error to the message shown to the
// operator.
func failureMessage(path string, err error) string {
	switch apperrors.CodeOf(err) {
	case apperrors.CodeFileNotFound:
		return fmt.Sprintf("Error: file %q not found", path)
	case apperrors.CodeParseError:
		return fmt.Sprintf("Error while parsing %q: %v", path, err)
	default:
		return fmt.Sprintf("Error while processing %q: %v", path, err)
	}
}
