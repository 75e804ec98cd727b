// Package ingest turns rectangular source tables into typed raw
// records. Extraction never fails on malformed input: short rows,
// missing sheets, and unparseable cells degrade to empty values so a
// pass always produces whatever the data supports.
package ingest

import (
	"strings"

	"go.uber.org/zap"
)

// Cell returns the trimmed cell at idx, or "" when the row is too
// short or the index is negative. Rows from real exports are ragged;
// lookups must never panic.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func rowEmpty(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// CRMField names one of the CRM export columns the pipeline reads.
// The export addresses fields by name, not position, so a re-exported
// sheet can reorder or add columns without breaking extraction.
type CRMField string

const (
	FieldDealID          CRMField = "Deal.ID"
	FieldDealName        CRMField = "Deal.Name"
	FieldDealStage       CRMField = "Deal.Status"
	FieldDealResponsible CRMField = "Deal.Responsible"
	FieldDealBudget      CRMField = "Deal.Budget"
	FieldDealCreateDate  CRMField = "Deal.CreateDate"
	FieldDealCloseDate   CRMField = "Deal.CloseDate"
	FieldContactName     CRMField = "Contact.Name"
	FieldContactPhone    CRMField = "Contact.Phone"
	FieldUtmSource       CRMField = "Deal.UTM_SOURCE"
	FieldUtmMedium       CRMField = "Deal.UTM_MEDIUM"
	FieldUtmCampaign     CRMField = "Deal.UTM_CAMPAIGN"
	FieldDealSource      CRMField = "Deal.Source"
	FieldCityTag         CRMField = "Deal.CityTag"
	FieldLeadType        CRMField = "Deal.LeadType"
	FieldBookingDate     CRMField = "Deal.BookingDate"
	FieldVenue           CRMField = "Deal.Venue"
	FieldArrivalTime     CRMField = "Deal.ArrivalTime"
	FieldGuestsCount     CRMField = "Deal.GuestsCount"
)

var crmFields = []CRMField{
	FieldDealID, FieldDealName, FieldDealStage, FieldDealResponsible,
	FieldDealBudget, FieldDealCreateDate, FieldDealCloseDate,
	FieldContactName, FieldContactPhone,
	FieldUtmSource, FieldUtmMedium, FieldUtmCampaign,
	FieldDealSource, FieldCityTag, FieldLeadType,
	FieldBookingDate, FieldVenue, FieldArrivalTime, FieldGuestsCount,
}

// CRMTable is the CRM export with its two-row header resolved into a
// field-name index map. The first header row carries logical block
// labels, the second the field names; data starts on the third row.
type CRMTable struct {
	Blocks  []string
	Headers []string
	Rows    [][]string

	fields   map[CRMField]int
	emailCol int
}

// NewCRMTable builds the field map from the two header rows. Tables
// with fewer than three rows yield an empty CRMTable: no data from
// this source is a normal, non-fatal case.
func NewCRMTable(rows [][]string) CRMTable {
	t := CRMTable{fields: make(map[CRMField]int), emailCol: -1}
	if len(rows) < 3 {
		zap.L().Info("ingest: crm table has no data rows", zap.Int("rows", len(rows)))
		return t
	}

	t.Blocks = rows[0]
	t.Headers = rows[1]
	t.Rows = rows[2:]

	byName := make(map[string]int, len(t.Headers))
	for i, h := range t.Headers {
		h = strings.TrimSpace(h)
		if h == "" {
			continue
		}
		if _, ok := byName[h]; !ok {
			byName[h] = i
		}
		// The email column has no fixed name across exports.
		if t.emailCol < 0 && strings.Contains(strings.ToLower(h), "email") {
			t.emailCol = i
		}
	}
	for _, f := range crmFields {
		if idx, ok := byName[string(f)]; ok {
			t.fields[f] = idx
		}
	}

	return t
}

// Value returns the named field's cell in row, or "" when the field
// is absent from this export or the row is too short.
func (t *CRMTable) Value(row []string, f CRMField) string {
	idx, ok := t.fields[f]
	if !ok {
		return ""
	}
	return Cell(row, idx)
}

// Email returns the row's email cell, located by case-insensitive
// substring match on the header text.
func (t *CRMTable) Email(row []string) string {
	return Cell(row, t.emailCol)
}

// HasField reports whether this export carries the named column.
func (t *CRMTable) HasField(f CRMField) bool {
	_, ok := t.fields[f]
	return ok
}
