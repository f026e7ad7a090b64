package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-08-31")

	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.August, date.Month())
	assert.Equal(t, 31, date.Day())
}

func TestParseDate_Invalid(t *testing.T) {
	invalid := []string{
		"31-08-2026",
		"2026/08/31",
		"2026-13-01",
		"2026-02-30",
		"not a date",
		"",
	}

	for _, s := range invalid {
		t.Run(s, func(t *testing.T) {
			_, err := ParseDate(s)
			assert.Error(t, err)
		})
	}
}

func TestDate_String(t *testing.T) {
	date := NewDate(2026, time.January, 5)
	assert.Equal(t, "2026-01-05", date.String())
}

func TestDate_AddDays(t *testing.T) {
	date := NewDate(2026, time.March, 1)

	assert.Equal(t, "2026-02-22", date.AddDays(-7).String())
	assert.Equal(t, "2026-03-02", date.AddDays(1).String())
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(NewDate(2026, time.August, 31))

	require.NoError(t, err)
	assert.Equal(t, `"2026-08-31"`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var date Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-31"`), &date))
	assert.Equal(t, "2026-08-31", date.String())

	assert.Error(t, json.Unmarshal([]byte(`"31.08.2026"`), &date))
	assert.Error(t, json.Unmarshal([]byte(`20260831`), &date))
}

func TestDate_Scan(t *testing.T) {
	var fromTime Date
	require.NoError(t, fromTime.Scan(time.Date(2026, time.August, 31, 15, 4, 5, 0, time.Local)))
	assert.Equal(t, "2026-08-31", fromTime.String())

	var fromString Date
	require.NoError(t, fromString.Scan("2026-08-31"))
	assert.Equal(t, "2026-08-31", fromString.String())

	var fromBytes Date
	require.NoError(t, fromBytes.Scan([]byte("2026-08-31")))
	assert.Equal(t, "2026-08-31", fromBytes.String())

	var unsupported Date
	assert.Error(t, unsupported.Scan(42))
}

func TestToday(t *testing.T) {
	today := Today()
	y, m, d := time.Now().Date()

	assert.Equal(t, y, today.Year())
	assert.Equal(t, m, today.Month())
	assert.Equal(t, d, today.Day())
}
