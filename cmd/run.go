package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/ingest"
	"github.com/guestlink/guestlink/internal/journey"
	"github.com/guestlink/guestlink/internal/pipeline"
	"github.com/guestlink/guestlink/internal/report"
)

var (
	runWorkbook     string
	runReportPath   string
	runSkipReport   bool
	runReservations bool
	runPrintJSON    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a full resolution pass over the configured sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		if runWorkbook != "" {
			cfg.Sources.Workbook = runWorkbook
		}
		if runReservations {
			cfg.Journey.IncludeReservations = true
		}

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		raw, err := ingest.Load(cfg.Sources)
		if err != nil {
			return eris.Wrap(err, "load sources")
		}

		pass, err := pipeline.Run(ctx, raw, journey.Options{
			IncludeReservations: cfg.Journey.IncludeReservations,
		})
		if err != nil {
			return eris.Wrap(err, "pipeline run")
		}

		if err := st.SavePass(ctx, pass); err != nil {
			return eris.Wrap(err, "save pass")
		}

		zap.L().Info("pass complete",
			zap.String("pass_id", pass.ID),
			zap.Int("profiles", len(pass.Profiles)),
			zap.Int("journeys", len(pass.Journeys)),
		)

		if !runSkipReport {
			path := runReportPath
			if path == "" {
				path = cfg.Report.Path
			}
			if err := report.Write(pass, path); err != nil {
				return eris.Wrap(err, "write report")
			}
		}

		if runPrintJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(pass)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runWorkbook, "workbook", "", "workbook path (default from config)")
	runCmd.Flags().StringVar(&runReportPath, "report", "", "report output path (default from config)")
	runCmd.Flags().BoolVar(&runSkipReport, "no-report", false, "skip XLSX report export")
	runCmd.Flags().BoolVar(&runReservations, "reservations", false, "include reservation events in journeys")
	runCmd.Flags().BoolVar(&runPrintJSON, "json", false, "print pass result JSON to stdout")
	rootCmd.AddCommand(runCmd)
}
