package info

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTime_FromStdRoundTrip(t *testing.T) {
	zone := time.FixedZone("", 90*60)
	std := time.Date(2024, time.March, 5, 10, 20, 30, 400, zone)

	ft := TimeFromStd(std)
	assert.Equal(t, uint16(2024), ft.Year)
	assert.Equal(t, uint8(3), ft.Month)
	assert.Equal(t, int16(90), ft.TimeZone)
	assert.Equal(t, uint32(400), ft.Nanosecond)
	assert.NoError(t, ft.Validate())
	assert.True(t, std.Equal(ft.Std()))
}

func TestTime_UnspecifiedZoneIsLocal(t *testing.T) {
	ft := NewTime(2000, 1, 2, 3, 4, 5, 0, UnspecifiedTimezone, 0)
	assert.Equal(t, time.Local, ft.Std().Location())
	assert.Equal(t, "2000-01-02 03:04:05.000000000 (local)", ft.String())
}

func TestTime_String(t *testing.T) {
	assert.Equal(t, "1999-12-31 23:59:59.000000001 -05:30",
		NewTime(1999, 12, 31, 23, 59, 59, 1, -330, 0).String())
	assert.Equal(t, "1970-01-01 00:00:00.000000000 +00:00",
		NewTime(1970, 1, 1, 0, 0, 0, 0, 0, InDaylight).String())
}

func TestTime_Validate(t *testing.T) {
	valid := NewTime(2020, 6, 15, 12, 30, 45, 999_999_999, 1440, AdjustDaylight)

	tests := []struct {
		name   string
		mutate func(*Time)
		ok     bool
	}{
		{"valid", func(*Time) {}, true},
		{"unspecified zone", func(tm *Time) { tm.TimeZone = UnspecifiedTimezone }, true},
		{"year too small", func(tm *Time) { tm.Year = 1899 }, false},
		{"year too large", func(tm *Time) { tm.Year = 10000 }, false},
		{"month zero", func(tm *Time) { tm.Month = 0 }, false},
		{"day 32", func(tm *Time) { tm.Day = 32 }, false},
		{"hour 24", func(tm *Time) { tm.Hour = 24 }, false},
		{"minute 60", func(tm *Time) { tm.Minute = 60 }, false},
		{"second 60", func(tm *Time) { tm.Second = 60 }, false},
		{"nanosecond overflow", func(tm *Time) { tm.Nanosecond = 1_000_000_000 }, false},
		{"zone too far east", func(tm *Time) { tm.TimeZone = 1441 }, false},
		{"zone too far west", func(tm *Time) { tm.TimeZone = -1441 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := valid
			tt.mutate(&tm)
			err := tm.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestTime_IsZero(t *testing.T) {
	assert.True(t, Time{}.IsZero())
	assert.False(t, NewTime(1970, 1, 1, 0, 0, 0, 0, 0, 0).IsZero())
}
