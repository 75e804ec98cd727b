package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/report"
)

var (
	exportPassID string
	exportPath   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a stored pass as an XLSX report",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close()

		result, err := loadPass(ctx, st, exportPassID)
		if err != nil {
			return err
		}

		path := exportPath
		if path == "" {
			path = cfg.Report.Path
		}
		if err := report.Write(result, path); err != nil {
			return eris.Wrap(err, "write report")
		}

		zap.L().Info("export complete", zap.String("pass_id", result.ID), zap.String("path", path))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportPassID, "pass", "", "pass ID to export (default latest)")
	exportCmd.Flags().StringVar(&exportPath, "out", "", "report output path (default from config)")
	rootCmd.AddCommand(exportCmd)
}
