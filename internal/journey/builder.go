// Package journey reconstructs per-customer timelines of cross-source
// events.
package journey

import (
	"sort"

	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/model"
)

// Options configures the builder. The default source set is lead
// forms and CRM; the reservation log can be folded in as
// RESERVATION_CREATED events.
type Options struct {
	IncludeReservations bool
}

// builder groups events by identity key in first-sighting order.
type builder struct {
	events map[string][]model.JourneyEvent
	order  []string
}

// Build walks the raw record sets and returns one ordered event
// sequence per customer. Customers with no events are dropped.
func Build(raw *model.RawRecords, opts Options) []model.CustomerJourney {
	b := &builder{events: make(map[string][]model.JourneyEvent)}

	b.addLeadForms(raw.LeadForms)
	b.addCRM(raw.CRM)
	if opts.IncludeReservations {
		b.addReservations(raw.Reservations)
	}

	return b.finalize()
}

func (b *builder) add(key string, ev model.JourneyEvent) {
	if _, ok := b.events[key]; !ok {
		b.order = append(b.order, key)
	}
	b.events[key] = append(b.events[key], ev)
}

func (b *builder) addLeadForms(records []model.LeadFormRecord) {
	var added int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}
		b.add(key, model.JourneyEvent{
			Type: model.EventSiteLead,
			Date: rec.Date,
			Time: rec.Time,
			Details: model.EventDetails{
				FormName:   rec.FormName,
				UtmSource:  rec.UtmSource,
				ButtonText: rec.ButtonText,
			},
		})
		added++
	}
	zap.L().Info("journey: lead form events added", zap.Int("events", added))
}

// addCRM emits up to three events per row: deal creation, deal
// closure, and a reservation made through the CRM, each gated on its
// date being present.
func (b *builder) addCRM(records []model.CRMRecord) {
	var added int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		if !rec.CreateDate.IsZero() {
			b.add(key, model.JourneyEvent{
				Type: model.EventCRMDealCreated,
				Date: rec.CreateDate,
				Details: model.EventDetails{
					DealID:      rec.DealID,
					DealName:    rec.DealName,
					Stage:       rec.Stage,
					Responsible: rec.Responsible,
				},
			})
			added++
		}

		if !rec.CloseDate.IsZero() {
			b.add(key, model.JourneyEvent{
				Type: model.EventCRMDealClosed,
				Date: rec.CloseDate,
				Details: model.EventDetails{
					DealID: rec.DealID,
					Budget: rec.Budget,
				},
			})
			added++
		}

		if !rec.BookingDate.IsZero() {
			b.add(key, model.JourneyEvent{
				Type: model.EventReservationCreated,
				Date: rec.BookingDate,
				Details: model.EventDetails{
					DealID:      rec.DealID,
					Venue:       rec.Venue,
					ArrivalTime: rec.ArrivalTime,
					Guests:      rec.GuestsCount,
				},
			})
			added++
		}
	}
	zap.L().Info("journey: crm events added", zap.Int("events", added))
}

func (b *builder) addReservations(records []model.ReservationRecord) {
	var added int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}
		b.add(key, model.JourneyEvent{
			Type: model.EventReservationCreated,
			Date: rec.DateTime,
			Details: model.EventDetails{
				Status: rec.Status,
				Amount: rec.Amount,
				Guests: rec.Guests,
			},
		})
		added++
	}
	zap.L().Info("journey: reservation events added", zap.Int("events", added))
}

// finalize sorts each customer's events by (date, time) and computes
// whole-day gaps. A missing clock sorts as 00:00 but is not stored.
func (b *builder) finalize() []model.CustomerJourney {
	journeys := make([]model.CustomerJourney, 0, len(b.order))
	var totalEvents int

	for _, key := range b.order {
		events := b.events[key]
		if len(events) == 0 {
			continue
		}

		sort.SliceStable(events, func(i, j int) bool {
			di, dj := model.DateOnly(events[i].Date), model.DateOnly(events[j].Date)
			if !di.Equal(dj) {
				return di.Before(dj)
			}
			return eventClock(events[i]) < eventClock(events[j])
		})

		events[0].DaysSincePrevious = 0
		for i := 1; i < len(events); i++ {
			events[i].DaysSincePrevious = model.DaysBetween(events[i-1].Date, events[i].Date)
		}

		totalEvents += len(events)
		journeys = append(journeys, model.CustomerJourney{Key: key, Events: events})
	}

	zap.L().Info("journey: timelines built",
		zap.Int("customers", len(journeys)),
		zap.Int("events", totalEvents),
	)
	return journeys
}

func eventClock(ev model.JourneyEvent) string {
	if ev.Time == "" {
		return "00:00"
	}
	// "9:30" sorts after "10:00" lexicographically unless padded.
	if len(ev.Time) == 4 && ev.Time[1] == ':' {
		return "0" + ev.Time
	}
	return ev.Time
}
