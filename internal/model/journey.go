package model

import "time"

// EventType tags a journey event with the interaction it records.
type EventType string

const (
	EventSiteLead           EventType = "SITE_LEAD"
	EventCRMDealCreated     EventType = "CRM_DEAL_CREATED"
	EventCRMDealClosed      EventType = "CRM_DEAL_CLOSED"
	EventReservationCreated EventType = "RESERVATION_CREATED"
)

// JourneyEvent is one interaction in a customer's timeline. Time is
// the raw clock string from the source ("18:30"); it is only used to
// break same-day ordering ties and may be empty.
type JourneyEvent struct {
	Type              EventType    `json:"type"`
	Date              time.Time    `json:"date"`
	Time              string       `json:"time,omitempty"`
	DaysSincePrevious int          `json:"days_since_previous"`
	Details           EventDetails `json:"details"`
}

// EventDetails carries the variant-specific payload of an event. Only
// the fields relevant to the event's type are set.
type EventDetails struct {
	// SITE_LEAD
	FormName   string `json:"form_name,omitempty"`
	UtmSource  string `json:"utm_source,omitempty"`
	ButtonText string `json:"button_text,omitempty"`

	// CRM_DEAL_CREATED / CRM_DEAL_CLOSED
	DealID      string  `json:"deal_id,omitempty"`
	DealName    string  `json:"deal_name,omitempty"`
	Stage       string  `json:"stage,omitempty"`
	Responsible string  `json:"responsible,omitempty"`
	Budget      float64 `json:"budget,omitempty"`

	// RESERVATION_CREATED
	Venue       string  `json:"venue,omitempty"`
	ArrivalTime string  `json:"arrival_time,omitempty"`
	Status      string  `json:"status,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Guests      int     `json:"guests,omitempty"`
}

// CustomerJourney is the ordered event sequence of one customer.
type CustomerJourney struct {
	Key    string         `json:"key"`
	Events []JourneyEvent `json:"events"`
}
