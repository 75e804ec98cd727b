package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guestlink/guestlink/internal/config"
)

func TestLoad_FromWorkbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]string{
		"Guests": {
			{"Имя", "Телефон", "Email", "Визиты", "Сумма", "Первый", "Последний"},
			{"Ivan", "+7 999 123-45-67", "", "3", "9000", "2023-05-01", "2024-02-10"},
		},
		"Reserves": {
			{"id", "reserve", "name", "phone", "email", "datetime", "status", "comment", "amount", "guests", "source"},
			{"1", "R-1", "Ivan", "9991234567", "", "2024-02-14 19:00", "confirmed", "", "12000", "4", "site"},
		},
	})

	cfg := config.SourcesConfig{
		Workbook: path,
		Sheets: config.SheetNames{
			Ledger:       "Guests",
			LeadForms:    "Site Requests",
			CRM:          "CRM",
			Reservations: "Reserves",
		},
	}

	raw, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, raw.Ledger, 1)
	assert.Equal(t, "9991234567", raw.Ledger[0].Phone)
	require.Len(t, raw.Reservations, 1)
	// Sheets absent from the workbook load as empty sources.
	assert.Empty(t, raw.LeadForms)
	assert.Empty(t, raw.CRM)
}

func TestLoad_CSVOverride(t *testing.T) {
	csvPath := writeCSVFile(t, "ledger.csv",
		"Имя;Телефон;Email;Визиты;Сумма;Первый;Последний\nИван;9991234567;;2;5000;;\n",
		"windows-1251")

	cfg := config.SourcesConfig{
		CSV: config.CSVOverrides{
			Ledger:   csvPath,
			Encoding: "windows-1251",
			Comma:    ";",
		},
	}

	raw, err := Load(cfg)
	require.NoError(t, err)
	require.Len(t, raw.Ledger, 1)
	assert.Equal(t, "Иван", raw.Ledger[0].Name)
	assert.Equal(t, 2, raw.Ledger[0].VisitsCount)
}

func TestLoad_UnreadableWorkbook(t *testing.T) {
	cfg := config.SourcesConfig{
		Workbook: "/nonexistent/book.xlsx",
		Sheets:   config.SheetNames{Ledger: "Guests"},
	}

	_, err := Load(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load ledger")
}

func TestLoad_NothingConfigured(t *testing.T) {
	raw, err := Load(config.SourcesConfig{})
	require.NoError(t, err)
	assert.Empty(t, raw.Ledger)
	assert.Empty(t, raw.LeadForms)
	assert.Empty(t, raw.CRM)
	assert.Empty(t, raw.Reservations)
}
