package ingest

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/config"
	"github.com/guestlink/guestlink/internal/model"
)

// Load materializes all four sources into raw records. Each source
// comes from its CSV override when set, otherwise from the shared
// workbook sheet. A source with no configured location, a missing
// sheet, or an empty table contributes an empty record set; only an
// unreadable file fails the pass.
func Load(cfg config.SourcesConfig) (*model.RawRecords, error) {
	var (
		wb     *xlsx.File
		wbErr  error
		opened bool
	)
	workbook := func() *xlsx.File {
		if !opened {
			opened = true
			if cfg.Workbook != "" {
				wb, wbErr = OpenWorkbook(cfg.Workbook)
			}
		}
		return wb
	}

	csvOpts := CSVOptions{Encoding: cfg.CSV.Encoding}
	if cfg.CSV.Comma != "" {
		csvOpts.Comma = rune(cfg.CSV.Comma[0])
	}

	sourceRows := func(csvPath, sheet string) ([][]string, error) {
		if csvPath != "" {
			return ReadCSV(csvPath, csvOpts)
		}
		if rows := SheetRows(workbook(), sheet); rows != nil {
			return rows, nil
		}
		return nil, wbErr
	}

	raw := &model.RawRecords{}

	rows, err := sourceRows(cfg.CSV.Ledger, cfg.Sheets.Ledger)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: load ledger")
	}
	raw.Ledger = ExtractLedger(rows)

	rows, err = sourceRows(cfg.CSV.LeadForms, cfg.Sheets.LeadForms)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: load lead forms")
	}
	raw.LeadForms = ExtractLeadForms(rows)

	rows, err = sourceRows(cfg.CSV.CRM, cfg.Sheets.CRM)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: load crm")
	}
	raw.CRM = ExtractCRM(rows)

	rows, err = sourceRows(cfg.CSV.Reservations, cfg.Sheets.Reservations)
	if err != nil {
		return nil, eris.Wrap(err, "ingest: load reservations")
	}
	raw.Reservations = ExtractReservations(rows)

	zap.L().Info("ingest: sources loaded",
		zap.Int("ledger", len(raw.Ledger)),
		zap.Int("lead_forms", len(raw.LeadForms)),
		zap.Int("crm", len(raw.CRM)),
		zap.Int("reservations", len(raw.Reservations)),
	)
	return raw, nil
}
