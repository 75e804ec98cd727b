// Package report renders a pass result as a three-sheet XLSX
// workbook: unified customers, customer journeys, and data quality.
package report

import (
	"time"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/model"
)

// Write renders the pass to an XLSX file at path.
func Write(pass *model.PassResult, path string) error {
	f := xlsx.NewFile()

	if err := writeCustomers(f, pass.Profiles); err != nil {
		return err
	}
	if err := writeJourneys(f, pass.Journeys); err != nil {
		return err
	}
	if err := writeQuality(f, &pass.Quality); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "report: save %s", path)
	}

	zap.L().Info("report: written",
		zap.String("path", path),
		zap.Int("profiles", len(pass.Profiles)),
		zap.Int("journeys", len(pass.Journeys)),
	)
	return nil
}

func writeCustomers(f *xlsx.File, profiles []model.CustomerProfile) error {
	sheet, err := f.AddSheet("Unified Customers")
	if err != nil {
		return eris.Wrap(err, "report: add customers sheet")
	}

	addHeader(sheet,
		"ID", "Name", "Phone", "Email",
		"Visits", "Total Amount", "Avg Check", "First Visit", "Last Visit",
		"First Source", "UTM Source", "UTM Medium", "UTM Campaign",
		"CRM Deals", "Reservations", "Lead Forms",
	)

	for _, p := range profiles {
		row := sheet.AddRow()
		row.AddCell().Value = p.ID
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.Phone
		row.AddCell().Value = p.Email
		row.AddCell().SetInt(p.VisitsCount)
		row.AddCell().SetFloat(p.TotalAmount)
		row.AddCell().SetFloat(p.AvgCheck)
		row.AddCell().Value = fmtDate(p.FirstVisitDate)
		row.AddCell().Value = fmtDate(p.LastVisitDate)
		row.AddCell().Value = p.FirstSource
		row.AddCell().Value = p.FirstUtmSource
		row.AddCell().Value = p.FirstUtmMedium
		row.AddCell().Value = p.FirstUtmCampaign
		row.AddCell().SetInt(len(p.CRMDeals))
		row.AddCell().SetInt(len(p.Reservations))
		row.AddCell().SetInt(len(p.LeadFormSubmissions))
	}
	return nil
}

func writeJourneys(f *xlsx.File, journeys []model.CustomerJourney) error {
	sheet, err := f.AddSheet("Customer Journeys")
	if err != nil {
		return eris.Wrap(err, "report: add journeys sheet")
	}

	addHeader(sheet,
		"Customer", "Event", "Date", "Days Since Previous",
		"Form Name", "UTM Source", "Deal Name", "Status", "Amount",
	)

	for _, j := range journeys {
		for _, ev := range j.Events {
			var formName, utmSource, dealName, status string
			var amount float64

			switch ev.Type {
			case model.EventSiteLead:
				formName = ev.Details.FormName
				utmSource = ev.Details.UtmSource
			case model.EventCRMDealCreated:
				dealName = ev.Details.DealName
				status = ev.Details.Stage
			case model.EventCRMDealClosed:
				amount = ev.Details.Budget
			case model.EventReservationCreated:
				status = ev.Details.Status
				amount = ev.Details.Amount
			}

			row := sheet.AddRow()
			row.AddCell().Value = j.Key
			row.AddCell().Value = string(ev.Type)
			row.AddCell().Value = fmtDate(ev.Date)
			row.AddCell().SetInt(ev.DaysSincePrevious)
			row.AddCell().Value = formName
			row.AddCell().Value = utmSource
			row.AddCell().Value = dealName
			row.AddCell().Value = status
			row.AddCell().SetFloat(amount)
		}
	}
	return nil
}

func writeQuality(f *xlsx.File, q *model.QualityReport) error {
	sheet, err := f.AddSheet("Data Quality")
	if err != nil {
		return eris.Wrap(err, "report: add quality sheet")
	}

	addHeader(sheet, "Metric", "Ledger", "Lead Forms", "CRM", "Reservations")

	metric := func(name string, pick func(model.SourceQuality) int) {
		row := sheet.AddRow()
		row.AddCell().Value = name
		for _, sq := range []model.SourceQuality{q.Ledger, q.LeadForm, q.CRM, q.Reservation} {
			row.AddCell().SetInt(pick(sq))
		}
	}

	metric("Total Records", func(sq model.SourceQuality) int { return sq.TotalRecords })
	metric("Missing Phones", func(sq model.SourceQuality) int { return sq.MissingPhones })
	metric("Missing Emails", func(sq model.SourceQuality) int { return sq.MissingEmails })
	metric("Duplicate Phones", func(sq model.SourceQuality) int { return len(sq.DuplicatePhones) })
	metric("Invalid Phones", func(sq model.SourceQuality) int { return len(sq.InvalidPhones) })
	return nil
}

func addHeader(sheet *xlsx.Sheet, titles ...string) {
	row := sheet.AddRow()
	for _, title := range titles {
		row.AddCell().Value = title
	}
}

func fmtDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}
