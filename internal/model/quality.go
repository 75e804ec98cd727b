package model

// SourceQuality audits one source's raw rows. DuplicatePhones holds
// each phone seen more than once within the source exactly once,
// sorted; InvalidPhones holds every normalized phone whose length
// falls outside [10,11] digits, in row order.
type SourceQuality struct {
	TotalRecords    int      `json:"total_records"`
	MissingPhones   int      `json:"missing_phones"`
	MissingEmails   int      `json:"missing_emails"`
	DuplicatePhones []string `json:"duplicate_phones,omitempty"`
	InvalidPhones   []string `json:"invalid_phones,omitempty"`
}

// QualityReport is the per-source audit of one pass's raw input. It
// describes the rows as extracted, not the merged profiles.
type QualityReport struct {
	Ledger      SourceQuality `json:"ledger"`
	LeadForm    SourceQuality `json:"lead_form"`
	CRM         SourceQuality `json:"crm"`
	Reservation SourceQuality `json:"reservation"`
}

// BySource returns the audit slot for the given source, or nil for an
// unknown source tag.
func (r *QualityReport) BySource(s Source) *SourceQuality {
	switch s {
	case SourceLedger:
		return &r.Ledger
	case SourceLeadForm:
		return &r.LeadForm
	case SourceCRM:
		return &r.CRM
	case SourceReservation:
		return &r.Reservation
	}
	return nil
}
