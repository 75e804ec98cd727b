package model

import "time"

// CustomerProfile is the unified view of one customer, merged from all
// four sources and keyed by their identity key (canonical phone, or
// email when no phone is known).
type CustomerProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`

	// Aggregate visit history, seeded from the ledger.
	VisitsCount    int       `json:"visits_count"`
	TotalAmount    float64   `json:"total_amount"`
	AvgCheck       float64   `json:"avg_check"`
	FirstVisitDate time.Time `json:"first_visit_date,omitempty"`
	LastVisitDate  time.Time `json:"last_visit_date,omitempty"`

	// First-touch attribution: the earliest dated marketing sighting.
	FirstSource      string    `json:"first_source,omitempty"`
	FirstUtmSource   string    `json:"first_utm_source,omitempty"`
	FirstUtmMedium   string    `json:"first_utm_medium,omitempty"`
	FirstUtmCampaign string    `json:"first_utm_campaign,omitempty"`
	FirstSourceDate  time.Time `json:"first_source_date,omitempty"`

	CRMDeals            []Deal           `json:"crm_deals,omitempty"`
	Reservations        []Reservation    `json:"reservations,omitempty"`
	LeadFormSubmissions []LeadSubmission `json:"lead_form_submissions,omitempty"`
}

// Deal is a CRM deal owned by a profile.
type Deal struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Stage      string    `json:"stage,omitempty"`
	Budget     float64   `json:"budget,omitempty"`
	CreateDate time.Time `json:"create_date,omitempty"`
	CloseDate  time.Time `json:"close_date,omitempty"`
	Source     string    `json:"source,omitempty"`
	City       string    `json:"city,omitempty"`
	LeadType   string    `json:"lead_type,omitempty"`
}

// Reservation is a reservation-log entry owned by a profile.
type Reservation struct {
	ID       string    `json:"id"`
	DateTime time.Time `json:"datetime"`
	Status   string    `json:"status,omitempty"`
	Amount   float64   `json:"amount,omitempty"`
	Guests   int       `json:"guests,omitempty"`
}

// LeadSubmission is a lead-form submission owned by a profile.
type LeadSubmission struct {
	Date        time.Time `json:"date"`
	FormName    string    `json:"form_name,omitempty"`
	UtmSource   string    `json:"utm_source,omitempty"`
	UtmMedium   string    `json:"utm_medium,omitempty"`
	UtmCampaign string    `json:"utm_campaign,omitempty"`
}
