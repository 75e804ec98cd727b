package ingest

import (
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/identity"
	"github.com/guestlink/guestlink/internal/model"
)

// Guest ledger column order: name, phone, email, visit count, total
// amount, first visit, last visit. Row 1 is the header.
const (
	ledgerColName = iota
	ledgerColPhone
	ledgerColEmail
	ledgerColVisits
	ledgerColTotal
	ledgerColFirstVisit
	ledgerColLastVisit
)

// ExtractLedger converts ledger sheet rows into typed records. Every
// non-empty data row is emitted, including rows without a usable
// identity key; downstream stages decide what to skip.
func ExtractLedger(rows [][]string) []model.LedgerRecord {
	if len(rows) < 2 {
		return nil
	}

	records := make([]model.LedgerRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		records = append(records, model.LedgerRecord{
			Name:        Cell(row, ledgerColName),
			Phone:       identity.NormalizePhone(Cell(row, ledgerColPhone)),
			Email:       identity.NormalizeEmail(Cell(row, ledgerColEmail)),
			VisitsCount: ParseInt(Cell(row, ledgerColVisits)),
			TotalAmount: ParseNumber(Cell(row, ledgerColTotal)),
			FirstVisit:  ParseDate(Cell(row, ledgerColFirstVisit)),
			LastVisit:   ParseDate(Cell(row, ledgerColLastVisit)),
		})
	}

	zap.L().Info("ingest: ledger extracted", zap.Int("records", len(records)))
	return records
}
