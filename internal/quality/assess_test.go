package quality

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlink/guestlink/internal/model"
)

func TestAssess_CountersPerSource(t *testing.T) {
	raw := &model.RawRecords{
		Ledger: []model.LedgerRecord{
			{Phone: "9991234567", Email: "a@example.com"},
			{Phone: "9991234567"},
			{Email: "b@example.com"},
			{Phone: "123"},
		},
	}

	report := Assess(raw)
	q := report.Ledger
	assert.Equal(t, 4, q.TotalRecords)
	assert.Equal(t, 1, q.MissingPhones)
	assert.Equal(t, 3, q.MissingEmails)
	assert.Equal(t, []string{"9991234567"}, q.DuplicatePhones)
	assert.Equal(t, []string{"123"}, q.InvalidPhones)
}

func TestAssess_DuplicateReportedOnce(t *testing.T) {
	raw := &model.RawRecords{
		LeadForms: []model.LeadFormRecord{
			{Phone: "79991234567"},
			{Phone: "79991234567"},
			{Phone: "79991234567"},
		},
	}

	report := Assess(raw)
	assert.Equal(t, []string{"79991234567"}, report.LeadForm.DuplicatePhones)
}

func TestAssess_DuplicatesSorted(t *testing.T) {
	raw := &model.RawRecords{
		CRM: []model.CRMRecord{
			{Phone: "79992222222"},
			{Phone: "79991111111"},
			{Phone: "79992222222"},
			{Phone: "79991111111"},
		},
	}

	report := Assess(raw)
	assert.Equal(t, []string{"79991111111", "79992222222"}, report.CRM.DuplicatePhones)
}

func TestAssess_PhoneLengthBounds(t *testing.T) {
	// 10 and 11 digit phones are plausible; anything shorter or longer
	// is flagged.
	raw := &model.RawRecords{
		Reservations: []model.ReservationRecord{
			{Phone: "9991234567"},
			{Phone: "79991234567"},
			{Phone: "999123456"},
			{Phone: "779991234567"},
		},
	}

	report := Assess(raw)
	assert.Equal(t, []string{"999123456", "779991234567"}, report.Reservation.InvalidPhones)
}

func TestAssess_SourcesIndependent(t *testing.T) {
	raw := &model.RawRecords{
		Ledger:    []model.LedgerRecord{{Phone: "79991234567"}},
		LeadForms: []model.LeadFormRecord{{Phone: "79991234567"}},
	}

	report := Assess(raw)
	// The same phone in two sources is not a duplicate within either.
	assert.Empty(t, report.Ledger.DuplicatePhones)
	assert.Empty(t, report.LeadForm.DuplicatePhones)
	assert.Equal(t, 1, report.Ledger.TotalRecords)
	assert.Equal(t, 1, report.LeadForm.TotalRecords)
}

func TestAssess_EmptyInput(t *testing.T) {
	report := Assess(&model.RawRecords{})
	for _, src := range model.Sources {
		q := report.BySource(src)
		require.NotNil(t, q)
		assert.Zero(t, q.TotalRecords)
		assert.Empty(t, q.DuplicatePhones)
	}
}

func TestQualityReport_BySource(t *testing.T) {
	raw := &model.RawRecords{
		CRM: []model.CRMRecord{{Phone: "79991234567"}},
	}

	report := Assess(raw)
	assert.Equal(t, 1, report.BySource(model.SourceCRM).TotalRecords)
	assert.Nil(t, report.BySource(model.Source("UNKNOWN")))
}
