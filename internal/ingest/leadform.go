package ingest

import (
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/identity"
	"github.com/guestlink/guestlink/internal/model"
)

// Lead-form export positions. The form builder emits a wide sheet;
// only these columns matter and the gaps between them are ignored.
const (
	leadColName       = 0
	leadColPhone      = 1
	leadColReferrer   = 2
	leadColEmail      = 6
	leadColDate       = 7
	leadColFormName   = 10
	leadColTime       = 11
	leadColUtmCamp    = 16
	leadColUtmSource  = 17
	leadColUtmMedium  = 19
	leadColButtonText = 23
)

// ExtractLeadForms converts lead-form sheet rows into typed records.
func ExtractLeadForms(rows [][]string) []model.LeadFormRecord {
	if len(rows) < 2 {
		return nil
	}

	records := make([]model.LeadFormRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		records = append(records, model.LeadFormRecord{
			Name:        Cell(row, leadColName),
			Phone:       identity.NormalizePhone(Cell(row, leadColPhone)),
			Email:       identity.NormalizeEmail(Cell(row, leadColEmail)),
			Date:        ParseDate(Cell(row, leadColDate)),
			Time:        Cell(row, leadColTime),
			FormName:    Cell(row, leadColFormName),
			UtmSource:   Cell(row, leadColUtmSource),
			UtmMedium:   Cell(row, leadColUtmMedium),
			UtmCampaign: Cell(row, leadColUtmCamp),
			Referrer:    Cell(row, leadColReferrer),
			ButtonText:  Cell(row, leadColButtonText),
		})
	}

	zap.L().Info("ingest: lead forms extracted", zap.Int("records", len(records)))
	return records
}
