package model

import "time"

// Source identifies which operational export a raw record came from.
type Source string

const (
	SourceLedger      Source = "LEDGER"
	SourceLeadForm    Source = "LEAD_FORM"
	SourceCRM         Source = "CRM"
	SourceReservation Source = "RESERVATION"
)

// Sources lists all sources in resolution priority order: the ledger
// seeds profiles, later sources only enrich.
var Sources = []Source{SourceLedger, SourceLeadForm, SourceCRM, SourceReservation}

// LedgerRecord is one row of the historical guest ledger. Phone and
// Email are already normalized; an empty Key means the row cannot be
// linked to a customer.
type LedgerRecord struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	VisitsCount int       `json:"visits_count"`
	TotalAmount float64   `json:"total_amount"`
	FirstVisit  time.Time `json:"first_visit"`
	LastVisit   time.Time `json:"last_visit"`
}

func (r LedgerRecord) Key() string { return recordKey(r.Phone, r.Email) }

// LeadFormRecord is one website lead-form submission.
type LeadFormRecord struct {
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time,omitempty"`
	FormName    string    `json:"form_name,omitempty"`
	UtmSource   string    `json:"utm_source,omitempty"`
	UtmMedium   string    `json:"utm_medium,omitempty"`
	UtmCampaign string    `json:"utm_campaign,omitempty"`
	Referrer    string    `json:"referrer,omitempty"`
	ButtonText  string    `json:"button_text,omitempty"`
}

func (r LeadFormRecord) Key() string { return recordKey(r.Phone, r.Email) }

// CRMRecord is one row of the CRM deal export. A row without a DealID
// still links its contact but contributes no deal.
type CRMRecord struct {
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	DealID      string    `json:"deal_id,omitempty"`
	DealName    string    `json:"deal_name,omitempty"`
	Stage       string    `json:"stage,omitempty"`
	Responsible string    `json:"responsible,omitempty"`
	Budget      float64   `json:"budget,omitempty"`
	CreateDate  time.Time `json:"create_date,omitempty"`
	CloseDate   time.Time `json:"close_date,omitempty"`
	UtmSource   string    `json:"utm_source,omitempty"`
	UtmMedium   string    `json:"utm_medium,omitempty"`
	UtmCampaign string    `json:"utm_campaign,omitempty"`
	DealSource  string    `json:"deal_source,omitempty"`
	City        string    `json:"city,omitempty"`
	LeadType    string    `json:"lead_type,omitempty"`
	BookingDate time.Time `json:"booking_date,omitempty"`
	Venue       string    `json:"venue,omitempty"`
	ArrivalTime string    `json:"arrival_time,omitempty"`
	GuestsCount int       `json:"guests_count,omitempty"`
}

func (r CRMRecord) Key() string { return recordKey(r.Phone, r.Email) }

// ReservationRecord is one row of the reservation log.
type ReservationRecord struct {
	ID        string    `json:"id"`
	ReserveID string    `json:"reserve_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	DateTime  time.Time `json:"datetime"`
	Status    string    `json:"status,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Guests    int       `json:"guests,omitempty"`
	Source    string    `json:"source,omitempty"`
}

func (r ReservationRecord) Key() string { return recordKey(r.Phone, r.Email) }

// RawRecords is the fully materialized input of one pass. It is never
// mutated once extraction completes, so the core stages may consume it
// concurrently.
type RawRecords struct {
	Ledger       []LedgerRecord
	LeadForms    []LeadFormRecord
	CRM          []CRMRecord
	Reservations []ReservationRecord
}

func recordKey(phone, email string) string {
	if phone != "" {
		return phone
	}
	return email
}
