package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/guestlink/guestlink/internal/model"
)

func samplePass() *model.PassResult {
	return &model.PassResult{
		ID: "pass-1",
		Profiles: []model.CustomerProfile{
			{
				ID: "9991234567", Name: "Ivan", Phone: "9991234567",
				VisitsCount: 3, TotalAmount: 9000, AvgCheck: 3000,
				FirstVisitDate: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
				FirstSource:    "direct", FirstUtmSource: "google",
				CRMDeals: []model.Deal{{ID: "42"}},
			},
		},
		Journeys: []model.CustomerJourney{
			{Key: "9991234567", Events: []model.JourneyEvent{
				{
					Type:    model.EventSiteLead,
					Date:    time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
					Details: model.EventDetails{FormName: "Банкет", UtmSource: "google"},
				},
				{
					Type:              model.EventCRMDealClosed,
					Date:              time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
					DaysSincePrevious: 22,
					Details:           model.EventDetails{Budget: 50000},
				},
			}},
		},
		Quality: model.QualityReport{
			Ledger:   model.SourceQuality{TotalRecords: 4, MissingPhones: 1, DuplicatePhones: []string{"9991234567"}},
			LeadForm: model.SourceQuality{TotalRecords: 2},
		},
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, Write(samplePass(), path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	customers, ok := f.Sheet["Unified Customers"]
	require.True(t, ok)
	require.Len(t, customers.Rows, 2)
	assert.Equal(t, "ID", customers.Rows[0].Cells[0].String())
	assert.Equal(t, "Ivan", customers.Rows[1].Cells[1].String())
	assert.Equal(t, "2023-05-01", customers.Rows[1].Cells[7].String())

	journeys, ok := f.Sheet["Customer Journeys"]
	require.True(t, ok)
	require.Len(t, journeys.Rows, 3)
	assert.Equal(t, "SITE_LEAD", journeys.Rows[1].Cells[1].String())
	assert.Equal(t, "Банкет", journeys.Rows[1].Cells[4].String())
	assert.Equal(t, "CRM_DEAL_CLOSED", journeys.Rows[2].Cells[1].String())

	quality, ok := f.Sheet["Data Quality"]
	require.True(t, ok)
	// Header plus five metric rows.
	require.Len(t, quality.Rows, 6)
	assert.Equal(t, "Total Records", quality.Rows[1].Cells[0].String())
	assert.Equal(t, "4", quality.Rows[1].Cells[1].String())
	assert.Equal(t, "2", quality.Rows[1].Cells[2].String())
}

func TestWrite_EmptyPass(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, Write(&model.PassResult{ID: "empty"}, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Contains(t, f.Sheet, "Unified Customers")
	assert.Len(t, f.Sheet["Unified Customers"].Rows, 1)
}

func TestWrite_BadPath(t *testing.T) {
	err := Write(&model.PassResult{ID: "x"}, "/nonexistent/dir/report.xlsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save")
}
