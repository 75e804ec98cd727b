package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlink/guestlink/internal/model"
)

func TestExtractLedger(t *testing.T) {
	rows := [][]string{
		{"Имя", "Телефон", "Email", "Визиты", "Сумма", "Первый визит", "Последний визит"},
		{"Ivan", "+7 (999) 123-45-67", "IVAN@Example.com ", "3", "9 000 руб.", "2023-05-01", "2024-02-10"},
		{"", "", "", "", "", "", ""},
		{"No Contact", "", "", "2", "5000", "", ""},
	}

	records := ExtractLedger(rows)
	require.Len(t, records, 2)

	r := records[0]
	assert.Equal(t, "Ivan", r.Name)
	assert.Equal(t, "9991234567", r.Phone)
	assert.Equal(t, "ivan@example.com", r.Email)
	assert.Equal(t, 3, r.VisitsCount)
	assert.Equal(t, 9000.0, r.TotalAmount)
	assert.Equal(t, time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC), r.FirstVisit)

	assert.Empty(t, records[1].Key())
}

func TestExtractLedger_HeaderOnly(t *testing.T) {
	assert.Nil(t, ExtractLedger([][]string{{"Имя", "Телефон"}}))
	assert.Nil(t, ExtractLedger(nil))
}

func TestExtractLeadForms(t *testing.T) {
	row := make([]string, 24)
	row[0] = "Maria"
	row[1] = "8 (999) 123-45-67"
	row[2] = "https://google.com"
	row[6] = "maria@example.com"
	row[7] = "2024-01-10"
	row[10] = "Банкет"
	row[11] = "15:30"
	row[16] = "spring"
	row[17] = "google"
	row[19] = "cpc"
	row[23] = "Забронировать"

	records := ExtractLeadForms([][]string{make([]string, 24), row})
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "Maria", r.Name)
	assert.Equal(t, "9991234567", r.Phone)
	assert.Equal(t, "maria@example.com", r.Email)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), r.Date)
	assert.Equal(t, "15:30", r.Time)
	assert.Equal(t, "Банкет", r.FormName)
	assert.Equal(t, "google", r.UtmSource)
	assert.Equal(t, "cpc", r.UtmMedium)
	assert.Equal(t, "spring", r.UtmCampaign)
	assert.Equal(t, "https://google.com", r.Referrer)
	assert.Equal(t, "Забронировать", r.ButtonText)
}

func TestExtractLeadForms_ShortRow(t *testing.T) {
	// Ragged exports truncate trailing empty columns.
	records := ExtractLeadForms([][]string{
		{"header"},
		{"Maria", "9991234567"},
	})
	require.Len(t, records, 1)
	assert.Equal(t, "9991234567", records[0].Phone)
	assert.Empty(t, records[0].FormName)
}

func TestExtractCRM(t *testing.T) {
	rows := [][]string{
		{"", "", "", "", "", "", ""},
		{"Deal.ID", "Deal.Name", "Deal.Budget", "Deal.CreateDate", "Contact.Phone", "E-mail", "Deal.UTM_SOURCE"},
		{"42", "Свадьба", "150 000", "2024-01-10", "79991234567", "ivan@example.com", "yandex"},
		{"", "", "", "", "", "", ""},
	}

	records := ExtractCRM(rows)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "42", r.DealID)
	assert.Equal(t, "Свадьба", r.DealName)
	assert.Equal(t, 150000.0, r.Budget)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), r.CreateDate)
	assert.Equal(t, "9991234567", r.Phone)
	assert.Equal(t, "ivan@example.com", r.Email)
	assert.Equal(t, "yandex", r.UtmSource)
}

func TestExtractCRM_NoData(t *testing.T) {
	assert.Nil(t, ExtractCRM(nil))
	assert.Nil(t, ExtractCRM([][]string{{"block"}, {"Deal.ID"}}))
}

func TestExtractReservations(t *testing.T) {
	rows := [][]string{
		{"id", "reserve", "name", "phone", "email", "datetime", "status", "comment", "amount", "guests", "source"},
		{"1", "R-100", "Ivan", "79991234567", "ivan@example.com", "2024-02-14 19:00", "confirmed", "window seat", "12000", "4", "site"},
	}

	records := ExtractReservations(rows)
	require.Len(t, records, 1)

	r := records[0]
	assert.Equal(t, "R-100", r.ReserveID)
	assert.Equal(t, time.Date(2024, 2, 14, 19, 0, 0, 0, time.UTC), r.DateTime)
	assert.Equal(t, "confirmed", r.Status)
	assert.Equal(t, 12000.0, r.Amount)
	assert.Equal(t, 4, r.Guests)
	assert.Equal(t, "9991234567", r.Key())
}

func TestExtractedKeysMatchAcrossSources(t *testing.T) {
	ledger := model.LedgerRecord{Phone: "79991234567"}
	crm := model.CRMRecord{Phone: "79991234567"}
	assert.Equal(t, ledger.Key(), crm.Key())
}
