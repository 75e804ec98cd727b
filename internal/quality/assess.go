// Package quality audits raw per-source records for missing,
// duplicate, and invalid identity keys. It describes the input as
// extracted, independent of any merge decision.
package quality

import (
	"sort"

	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/model"
)

// Phones outside this digit-length range cannot be real numbers in
// the canonical form and are flagged.
const (
	minPhoneLen = 10
	maxPhoneLen = 11
)

// Assess audits all four sources. Each source is assessed
// independently; an empty source simply yields zero counters and
// never aborts the others.
func Assess(raw *model.RawRecords) model.QualityReport {
	var report model.QualityReport

	ledger := newSourceAudit()
	for _, rec := range raw.Ledger {
		ledger.row(rec.Phone, rec.Email)
	}
	report.Ledger = ledger.result()

	leads := newSourceAudit()
	for _, rec := range raw.LeadForms {
		leads.row(rec.Phone, rec.Email)
	}
	report.LeadForm = leads.result()

	crm := newSourceAudit()
	for _, rec := range raw.CRM {
		crm.row(rec.Phone, rec.Email)
	}
	report.CRM = crm.result()

	reservations := newSourceAudit()
	for _, rec := range raw.Reservations {
		reservations.row(rec.Phone, rec.Email)
	}
	report.Reservation = reservations.result()

	zap.L().Info("quality: assessment complete",
		zap.Int("ledger_records", report.Ledger.TotalRecords),
		zap.Int("lead_form_records", report.LeadForm.TotalRecords),
		zap.Int("crm_records", report.CRM.TotalRecords),
		zap.Int("reservation_records", report.Reservation.TotalRecords),
		zap.Int("duplicate_phones", len(report.Ledger.DuplicatePhones)+
			len(report.LeadForm.DuplicatePhones)+
			len(report.CRM.DuplicatePhones)+
			len(report.Reservation.DuplicatePhones)),
	)
	return report
}

// sourceAudit accumulates one source's counters. Phones are already
// normalized by extraction; an empty string means the row had none.
type sourceAudit struct {
	q          model.SourceQuality
	seen       map[string]struct{}
	duplicates map[string]struct{}
}

func newSourceAudit() *sourceAudit {
	return &sourceAudit{
		seen:       make(map[string]struct{}),
		duplicates: make(map[string]struct{}),
	}
}

func (a *sourceAudit) row(phone, email string) {
	a.q.TotalRecords++

	if phone == "" {
		a.q.MissingPhones++
	}
	if email == "" {
		a.q.MissingEmails++
	}

	if phone == "" {
		return
	}
	if _, ok := a.seen[phone]; ok {
		a.duplicates[phone] = struct{}{}
	}
	a.seen[phone] = struct{}{}

	if len(phone) < minPhoneLen || len(phone) > maxPhoneLen {
		a.q.InvalidPhones = append(a.q.InvalidPhones, phone)
	}
}

func (a *sourceAudit) result() model.SourceQuality {
	if len(a.duplicates) > 0 {
		dups := make([]string, 0, len(a.duplicates))
		for phone := range a.duplicates {
			dups = append(dups, phone)
		}
		sort.Strings(dups)
		a.q.DuplicatePhones = dups
	}
	return a.q
}
