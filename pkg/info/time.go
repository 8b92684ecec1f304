package info

import (
	"fmt"
	"time"
)

// UnspecifiedTimezone marks a Time whose TimeZone is unknown; such times are
// interpreted as local time.
const UnspecifiedTimezone int16 = 0x07FF

// Daylight holds the daylight saving flags of a Time.
type Daylight uint8

const (
	// AdjustDaylight means the time is affected by daylight saving time.
	AdjustDaylight Daylight = 0x01
	// InDaylight means the time has been adjusted for daylight saving time.
	InDaylight Daylight = 0x02
)

// Time is the 16-byte firmware calendar time.
type Time struct {
	Year       uint16 // 1900 - 9999
	Month      uint8  // 1 - 12
	Day        uint8  // 1 - 31
	Hour       uint8  // 0 - 23
	Minute     uint8  // 0 - 59
	Second     uint8  // 0 - 59
	_          uint8
	Nanosecond uint32 // 0 - 999,999,999
	TimeZone   int16  // -1440 to 1440 or UnspecifiedTimezone
	Daylight   Daylight
	_          uint8
}

// NewTime builds a Time from its calendar fields.
func NewTime(year uint16, month, day, hour, minute, second uint8, nanosecond uint32, timeZone int16, daylight Daylight) Time {
	return Time{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: nanosecond,
		TimeZone:   timeZone,
		Daylight:   daylight,
	}
}

// TimeFromStd converts t, keeping its zone offset in minutes.
func TimeFromStd(t time.Time) Time {
	_, offset := t.Zone()
	return NewTime(uint16(t.Year()), uint8(t.Month()), uint8(t.Day()),
		uint8(t.Hour()), uint8(t.Minute()), uint8(t.Second()),
		uint32(t.Nanosecond()), int16(offset/60), 0)
}

// IsZero reports whether every field is zero. Firmware treats a zero time
// in a file info record as "leave unchanged".
func (t Time) IsZero() bool {
	return t == Time{}
}

// Validate checks every field against its documented range.
func (t Time) Validate() error {
	switch {
	case t.Year < 1900 || t.Year > 9999:
		return fmt.Errorf("year %d out of range", t.Year)
	case t.Month < 1 || t.Month > 12:
		return fmt.Errorf("month %d out of range", t.Month)
	case t.Day < 1 || t.Day > 31:
		return fmt.Errorf("day %d out of range", t.Day)
	case t.Hour > 23:
		return fmt.Errorf("hour %d out of range", t.Hour)
	case t.Minute > 59:
		return fmt.Errorf("minute %d out of range", t.Minute)
	case t.Second > 59:
		return fmt.Errorf("second %d out of range", t.Second)
	case t.Nanosecond > 999_999_999:
		return fmt.Errorf("nanosecond %d out of range", t.Nanosecond)
	case t.TimeZone != UnspecifiedTimezone && (t.TimeZone < -1440 || t.TimeZone > 1440):
		return fmt.Errorf("time zone %d out of range", t.TimeZone)
	}
	return nil
}

// Std converts t to a time.Time. An unspecified zone maps to time.Local.
func (t Time) Std() time.Time {
	loc := time.Local
	if t.TimeZone != UnspecifiedTimezone {
		loc = time.FixedZone("", int(t.TimeZone)*60)
	}
	return time.Date(int(t.Year), time.Month(t.Month), int(t.Day),
		int(t.Hour), int(t.Minute), int(t.Second), int(t.Nanosecond), loc)
}

func (t Time) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%09d",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Nanosecond)
	if t.TimeZone == UnspecifiedTimezone {
		return s + " (local)"
	}
	sign, tz := '+', int(t.TimeZone)
	if tz < 0 {
		sign, tz = '-', -tz
	}
	return fmt.Sprintf("%s %c%02d:%02d", s, sign, tz/60, tz%60)
}
