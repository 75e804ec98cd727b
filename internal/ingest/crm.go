package ingest

import (
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/identity"
	"github.com/guestlink/guestlink/internal/model"
)

// ExtractCRM converts the CRM export into typed records via its
// two-row header field map. Rows are emitted even when they carry no
// deal ID or identity key; the resolver and assessor each apply their
// own filters.
func ExtractCRM(rows [][]string) []model.CRMRecord {
	t := NewCRMTable(rows)
	if len(t.Rows) == 0 {
		return nil
	}

	records := make([]model.CRMRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		if rowEmpty(row) {
			continue
		}
		records = append(records, model.CRMRecord{
			ContactName: t.Value(row, FieldContactName),
			Phone:       identity.NormalizePhone(t.Value(row, FieldContactPhone)),
			Email:       identity.NormalizeEmail(t.Email(row)),
			DealID:      t.Value(row, FieldDealID),
			DealName:    t.Value(row, FieldDealName),
			Stage:       t.Value(row, FieldDealStage),
			Responsible: t.Value(row, FieldDealResponsible),
			Budget:      ParseNumber(t.Value(row, FieldDealBudget)),
			CreateDate:  ParseDate(t.Value(row, FieldDealCreateDate)),
			CloseDate:   ParseDate(t.Value(row, FieldDealCloseDate)),
			UtmSource:   t.Value(row, FieldUtmSource),
			UtmMedium:   t.Value(row, FieldUtmMedium),
			UtmCampaign: t.Value(row, FieldUtmCampaign),
			DealSource:  t.Value(row, FieldDealSource),
			City:        t.Value(row, FieldCityTag),
			LeadType:    t.Value(row, FieldLeadType),
			BookingDate: ParseDate(t.Value(row, FieldBookingDate)),
			Venue:       t.Value(row, FieldVenue),
			ArrivalTime: t.Value(row, FieldArrivalTime),
			GuestsCount: ParseInt(t.Value(row, FieldGuestsCount)),
		})
	}

	zap.L().Info("ingest: crm extracted",
		zap.Int("records", len(records)),
		zap.Bool("email_column_found", t.emailCol >= 0),
	)
	return records
}
