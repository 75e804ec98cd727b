package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"iso date", "2024-01-10", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"iso datetime", "2024-01-10 15:04:05", time.Date(2024, 1, 10, 15, 4, 5, 0, time.UTC)},
		{"dotted russian", "10.01.2024", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"dotted with clock", "10.01.2024 15:04", time.Date(2024, 1, 10, 15, 4, 0, 0, time.UTC)},
		{"padded", "  2024-01-10  ", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)},
		{"empty", "", time.Time{}},
		{"garbage", "not a date", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDate(tt.in))
		})
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"plain", "3000", 3000},
		{"decimal", "3000.50", 3000.5},
		{"currency and spaces", "15 000 руб.", 15000},
		{"negative", "-250", -250},
		{"empty", "", 0},
		{"garbage", "n/a", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNumber(tt.in))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 4, ParseInt("4"))
	assert.Equal(t, 4, ParseInt("4.9"))
	assert.Equal(t, 0, ParseInt(""))
}
