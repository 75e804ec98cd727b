package ingest

import (
	"go.uber.org/zap"

	"github.com/guestlink/guestlink/internal/identity"
	"github.com/guestlink/guestlink/internal/model"
)

// Reservation log column order: id, reserve id, name, phone, email,
// datetime, status, comment, amount, guests, source.
const (
	resColID = iota
	resColReserveID
	resColName
	resColPhone
	resColEmail
	resColDateTime
	resColStatus
	resColComment
	resColAmount
	resColGuests
	resColSource
)

// ExtractReservations converts reservation sheet rows into typed records.
func ExtractReservations(rows [][]string) []model.ReservationRecord {
	if len(rows) < 2 {
		return nil
	}

	records := make([]model.ReservationRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if rowEmpty(row) {
			continue
		}
		records = append(records, model.ReservationRecord{
			ID:        Cell(row, resColID),
			ReserveID: Cell(row, resColReserveID),
			Name:      Cell(row, resColName),
			Phone:     identity.NormalizePhone(Cell(row, resColPhone)),
			Email:     identity.NormalizeEmail(Cell(row, resColEmail)),
			DateTime:  ParseDate(Cell(row, resColDateTime)),
			Status:    Cell(row, resColStatus),
			Comment:   Cell(row, resColComment),
			Amount:    ParseNumber(Cell(row, resColAmount)),
			Guests:    ParseInt(Cell(row, resColGuests)),
			Source:    Cell(row, resColSource),
		})
	}

	zap.L().Info("ingest: reservations extracted", zap.Int("records", len(records)))
	return records
}
