package cli

import (
	"context"

	"github.com/itsutakahope/churching-sub001/internal/application/service"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/config"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/logging"
	"github.com/itsutakahope/churching-sub001/internal/infrastructure/storage"
)

// RunReport computes a dedication breakdown and prints it as a ledger
// report. With the save flag set the report is also persisted.
func RunReport(cfg *config.Config, flags *ReportFlags) error {
	loggingCfg := cfg.Observability.Logging
	if flags.Verbose {
		loggingCfg.Level = "debug"
	}
	logger := logging.NewLoggerWithComponent(loggingCfg, "report")

	dbPath := cfg.Storage.DatabasePath
	if flags.DBPath != "" {
		dbPath = flags.DBPath
	}

	store, err := storage.NewStorage(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	period := cfg.Summary.Period
	if flags.Period != "" {
		period = flags.Period
	}

	summary := service.NewSummaryService(store, logger)

	view, err := summary.ComputeSummary(context.Background(), period)
	if err != nil {
		return err
	}

	PrintReportHeader(period, dbPath)
	PrintSummary(view)

	if flags.Save {
		report, err := summary.GenerateReport(context.Background(), period)
		if err != nil {
			return err
		}
		logger.Info("report saved", "id", report.ID, "status", report.Status)
	}

	return nil
}
