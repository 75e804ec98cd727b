// Package resolve merges raw records from all sources into unified
// customer profiles keyed by identity.
package resolve

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/model"
)

// Resolver accumulates profiles over one pass. Profiles are emitted in
// first-sighting order of their identity keys, so resolving the same
// input twice yields identical output.
type Resolver struct {
	profiles map[string]*model.CustomerProfile
	order    []string
}

// Run merges the four record sets in fixed priority order: ledger
// first (it seeds the aggregate visit history), then lead forms, CRM
// deals, and reservations, which only enrich.
func Run(raw *model.RawRecords) []model.CustomerProfile {
	r := &Resolver{profiles: make(map[string]*model.CustomerProfile)}

	r.mergeLedger(raw.Ledger)
	r.mergeLeadForms(raw.LeadForms)
	r.mergeCRM(raw.CRM)
	r.mergeReservations(raw.Reservations)

	return r.finalize()
}

func (r *Resolver) get(key string) (*model.CustomerProfile, bool) {
	p, ok := r.profiles[key]
	return p, ok
}

func (r *Resolver) create(key, name, phone, email string) *model.CustomerProfile {
	p := &model.CustomerProfile{
		ID:    key,
		Name:  name,
		Phone: phone,
		Email: email,
	}
	r.profiles[key] = p
	r.order = append(r.order, key)
	return p
}

func (r *Resolver) getOrCreate(key, name, phone, email string) *model.CustomerProfile {
	if p, ok := r.get(key); ok {
		return p
	}
	return r.create(key, name, phone, email)
}

// mergeLedger seeds profiles with aggregate visit history. A second
// ledger row for the same key overwrites the aggregates: last seen
// wins within the source.
func (r *Resolver) mergeLedger(records []model.LedgerRecord) {
	var merged int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		p, ok := r.get(key)
		if !ok {
			p = r.create(key, rec.Name, rec.Phone, rec.Email)
		} else {
			p.Name = rec.Name
			p.Phone = rec.Phone
			p.Email = rec.Email
		}
		p.VisitsCount = rec.VisitsCount
		p.TotalAmount = rec.TotalAmount
		p.FirstVisitDate = rec.FirstVisit
		p.LastVisitDate = rec.LastVisit
		merged++
	}
	zap.L().Info("resolve: ledger merged", zap.Int("records", merged))
}

func (r *Resolver) mergeLeadForms(records []model.LeadFormRecord) {
	var merged int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		p := r.getOrCreate(key, rec.Name, rec.Phone, rec.Email)
		p.LeadFormSubmissions = append(p.LeadFormSubmissions, model.LeadSubmission{
			Date:        rec.Date,
			FormName:    rec.FormName,
			UtmSource:   rec.UtmSource,
			UtmMedium:   rec.UtmMedium,
			UtmCampaign: rec.UtmCampaign,
		})

		source := rec.Referrer
		if source == "" {
			source = "direct"
		}
		applyFirstTouch(p, source, rec.UtmSource, rec.UtmMedium, rec.UtmCampaign, rec.Date)
		merged++
	}
	zap.L().Info("resolve: lead forms merged", zap.Int("records", merged))
}

func (r *Resolver) mergeCRM(records []model.CRMRecord) {
	var merged int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		p := r.getOrCreate(key, rec.ContactName, rec.Phone, rec.Email)

		// Rows without a deal identifier still link the contact but
		// contribute no deal.
		if rec.DealID != "" {
			p.CRMDeals = append(p.CRMDeals, model.Deal{
				ID:         rec.DealID,
				Name:       rec.DealName,
				Stage:      rec.Stage,
				Budget:     rec.Budget,
				CreateDate: rec.CreateDate,
				CloseDate:  rec.CloseDate,
				Source:     rec.DealSource,
				City:       rec.City,
				LeadType:   rec.LeadType,
			})
		}

		if rec.UtmSource != "" {
			source := rec.DealSource
			if source == "" {
				source = "crm"
			}
			applyFirstTouch(p, source, rec.UtmSource, rec.UtmMedium, rec.UtmCampaign, rec.CreateDate)
		}
		merged++
	}
	zap.L().Info("resolve: crm merged", zap.Int("records", merged))
}

func (r *Resolver) mergeReservations(records []model.ReservationRecord) {
	var merged int
	for _, rec := range records {
		key := rec.Key()
		if key == "" {
			continue
		}

		p := r.getOrCreate(key, rec.Name, rec.Phone, rec.Email)
		p.Reservations = append(p.Reservations, model.Reservation{
			ID:       rec.ReserveID,
			DateTime: rec.DateTime,
			Status:   rec.Status,
			Amount:   rec.Amount,
			Guests:   rec.Guests,
		})
		merged++
	}
	zap.L().Info("resolve: reservations merged", zap.Int("records", merged))
}

// applyFirstTouch updates attribution when none is dated yet or the
// new sighting is strictly earlier by calendar date. Ties keep the
// record seen first under source priority order.
func applyFirstTouch(p *model.CustomerProfile, source, utmSource, utmMedium, utmCampaign string, date time.Time) {
	unset := p.FirstSource == "" && p.FirstUtmSource == ""
	earlier := !date.IsZero() &&
		model.DateOnly(date).Before(model.DateOnly(p.FirstSourceDate))

	if !unset && !p.FirstSourceDate.IsZero() && !earlier {
		return
	}

	p.FirstSource = source
	p.FirstUtmSource = utmSource
	p.FirstUtmMedium = utmMedium
	p.FirstUtmCampaign = utmCampaign
	p.FirstSourceDate = date
}

// finalize computes derived fields and freezes the output order.
func (r *Resolver) finalize() []model.CustomerProfile {
	out := make([]model.CustomerProfile, 0, len(r.order))
	for _, key := range r.order {
		p := r.profiles[key]

		if p.VisitsCount > 0 {
			p.AvgCheck = p.TotalAmount / float64(p.VisitsCount)
		} else {
			p.AvgCheck = 0
		}

		sort.SliceStable(p.CRMDeals, func(i, j int) bool {
			return p.CRMDeals[i].CreateDate.Before(p.CRMDeals[j].CreateDate)
		})
		sort.SliceStable(p.Reservations, func(i, j int) bool {
			return p.Reservations[i].DateTime.Before(p.Reservations[j].DateTime)
		})
		sort.SliceStable(p.LeadFormSubmissions, func(i, j int) bool {
			return p.LeadFormSubmissions[i].Date.Before(p.LeadFormSubmissions[j].Date)
		})

		out = append(out, *p)
	}

	zap.L().Info("resolve: profiles unified", zap.Int("profiles", len(out)))
	return out
}
