package ds3231

import "fmt"

// secondsFrom1970To2000 is the offset between the Unix epoch and the
// base of the chip's two-digit year register.
const secondsFrom1970To2000 = 946684800

var daysInMonth = [12]uint8{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// dowTable drives the weekday congruence in Weekday. The entries are
// tuned for a Monday-first 1..7 result after the 0->7 remap.
var dowTable = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// DateTime is the broken-down calendar form of the seven timekeeping
// registers. Year is absolute and must stay within 2000..2099: the
// driver leaves the century bit alone, so dates outside that window
// are not representable and are rejected rather than wrapped.
type DateTime struct {
	Second uint8
	Minute uint8
	Hour   uint8 // 24-hour mode only
	Day    uint8 // day of week, 1 (Monday) through 7 (Sunday)
	Date   uint8 // day of month
	Month  uint8
	Year   uint16

	// OscillatorEnabled maps to the EOSC control bit on writes and to
	// the inverse of the oscillator-stop flag on reads.
	OscillatorEnabled bool
}

// validate range-checks every field before it is BCD-encoded. It runs
// before any bus traffic, so an invalid DateTime never causes a
// partial register write.
func (dt DateTime) validate() error {
	switch {
	case dt.Day < 1 || dt.Day > 7:
		return fmt.Errorf("%w: day of week %d", ErrInvalidTime, dt.Day)
	case dt.Date < 1 || dt.Date > 31:
		return fmt.Errorf("%w: day of month %d", ErrInvalidTime, dt.Date)
	case dt.Month < 1 || dt.Month > 12:
		return fmt.Errorf("%w: month %d", ErrInvalidTime, dt.Month)
	case dt.Year < 2000 || dt.Year > 2099:
		return fmt.Errorf("%w: year %d", ErrInvalidTime, dt.Year)
	case dt.Hour > 23:
		return fmt.Errorf("%w: hour %d", ErrInvalidTime, dt.Hour)
	case dt.Minute > 59:
		return fmt.Errorf("%w: minute %d", ErrInvalidTime, dt.Minute)
	case dt.Second > 59:
		return fmt.Errorf("%w: second %d", ErrInvalidTime, dt.Second)
	}
	return nil
}

// Unix converts dt to seconds since 1970-01-01T00:00:00Z. Fields
// outside their register ranges, including years outside 2000..2099,
// return ErrInvalidTime.
func (dt DateTime) Unix() (uint32, error) {
	if err := dt.validate(); err != nil {
		return 0, err
	}

	years := uint32(dt.Year - 2000)
	days := uint32(dt.Date) - 1
	for m := uint8(1); m < dt.Month; m++ {
		days += uint32(daysInMonth[m-1])
	}
	// y%4 is the full leap rule inside the 2000..2099 window: 2000 is
	// divisible by 400 and the next century year is out of range.
	if dt.Month > 2 && dt.Year%4 == 0 {
		days++
	}
	days += 365*years + (years+3)/4

	return ((days*24+uint32(dt.Hour))*60+uint32(dt.Minute))*60 +
		uint32(dt.Second) + secondsFrom1970To2000, nil
}

// FromUnix converts seconds since 1970-01-01T00:00:00Z to a
// broken-down DateTime, including the day of week. The oscillator
// flag is set so the result can be handed straight to SetTime.
func FromUnix(t uint32) DateTime {
	days := int(t / 86400)
	rem := int(t % 86400)

	year := 1970
	for {
		n := 365
		if isLeap(year) {
			n = 366
		}
		if days < n {
			break
		}
		days -= n
		year++
	}

	// days counts completed days within the year; day-of-year is
	// 1-based.
	doy := days + 1
	month := 1
	for {
		n := int(daysInMonth[month-1])
		if month == 2 && isLeap(year) {
			n = 29
		}
		if doy <= n {
			break
		}
		doy -= n
		month++
	}

	return DateTime{
		Second:            uint8(rem % 60),
		Minute:            uint8(rem / 60 % 60),
		Hour:              uint8(rem / 3600),
		Day:               Weekday(year, month, doy),
		Date:              uint8(doy),
		Month:             uint8(month),
		Year:              uint16(year),
		OscillatorEnabled: true,
	}
}

// Weekday computes the day of week (1 Monday .. 7 Sunday) of a
// calendar date with a fixed-table congruence, independent of the
// epoch arithmetic above.
func Weekday(year, month, date int) uint8 {
	y := year
	if month < 3 {
		y--
	}
	d := (y + y/4 - y/100 + y/400 + dowTable[month-1] + date) % 7
	if d == 0 {
		d = 7
	}
	return uint8(d)
}

func isLeap(year int) bool {
	return year%400 == 0 || (year%4 == 0 && year%100 != 0)
}
