package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 1, 10, 19, 45, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), DateOnly(in))
	assert.True(t, DateOnly(time.Time{}).IsZero())
}

func TestDaysBetween(t *testing.T) {
	jan10 := time.Date(2024, 1, 10, 23, 0, 0, 0, time.UTC)
	feb1 := time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC)

	assert.Equal(t, 22, DaysBetween(jan10, feb1))
	assert.Equal(t, -22, DaysBetween(feb1, jan10))
	// Same calendar day, different clock.
	assert.Equal(t, 0, DaysBetween(jan10, time.Date(2024, 1, 10, 1, 0, 0, 0, time.UTC)))
}

func TestRecordKey(t *testing.T) {
	assert.Equal(t, "9991234567", LedgerRecord{Phone: "9991234567", Email: "a@b.com"}.Key())
	assert.Equal(t, "a@b.com", LeadFormRecord{Email: "a@b.com"}.Key())
	assert.Equal(t, "", CRMRecord{}.Key())
}
