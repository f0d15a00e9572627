package ds3231

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestUnixRoundTrip(t *testing.T) {
	c := qt.New(t)

	const (
		min = uint32(946684800)  // 2000-01-01T00:00:00Z
		max = uint32(4102444799) // 2099-12-31T23:59:59Z
	)

	// 86399 is coprime with the day length, so the samples sweep
	// through every time of day while crossing every year.
	for ts := min; ts <= max-86399; ts += 86399 {
		got, err := FromUnix(ts).Unix()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, ts)
	}

	for _, ts := range []uint32{min, max, 951782400, 1677628799, 1677628800, 1709208000, 2147483648} {
		got, err := FromUnix(ts).Unix()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, ts)
	}
}

func TestFromUnixKnownDates(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		ts   uint32
		want DateTime
	}{
		{946684800, DateTime{Year: 2000, Month: 1, Date: 1, Day: 6, OscillatorEnabled: true}},
		{951782400, DateTime{Year: 2000, Month: 2, Date: 29, Day: 2, OscillatorEnabled: true}},
		{1709208000, DateTime{Year: 2024, Month: 2, Date: 29, Day: 4, Hour: 12, OscillatorEnabled: true}},
		{2147483648, DateTime{Year: 2038, Month: 1, Date: 19, Day: 2, Hour: 3, Minute: 14, Second: 8, OscillatorEnabled: true}},
		{2477467815, DateTime{Year: 2048, Month: 7, Date: 4, Day: 6, Hour: 9, Minute: 30, Second: 15, OscillatorEnabled: true}},
		{4102444799, DateTime{Year: 2099, Month: 12, Date: 31, Day: 4, Hour: 23, Minute: 59, Second: 59, OscillatorEnabled: true}},
	} {
		c.Assert(FromUnix(tc.ts), qt.Equals, tc.want, qt.Commentf("ts=%d", tc.ts))
	}
}

func TestLeapYearBoundaries(t *testing.T) {
	c := qt.New(t)

	// 2023-02-28T23:59:59Z
	dt := FromUnix(1677628799)
	c.Assert(dt.Month, qt.Equals, uint8(2))
	c.Assert(dt.Date, qt.Equals, uint8(28))
	c.Assert(dt.Hour, qt.Equals, uint8(23))
	c.Assert(dt.Minute, qt.Equals, uint8(59))
	c.Assert(dt.Second, qt.Equals, uint8(59))

	// one second later rolls over to March in a non-leap year
	dt = FromUnix(1677628800)
	c.Assert(dt.Month, qt.Equals, uint8(3))
	c.Assert(dt.Date, qt.Equals, uint8(1))
	c.Assert(dt.Hour, qt.Equals, uint8(0))

	// 2024 is a leap year, February 29 exists
	dt = FromUnix(1709208000)
	c.Assert(dt.Month, qt.Equals, uint8(2))
	c.Assert(dt.Date, qt.Equals, uint8(29))
}

func TestUnixRejectsOutOfWindow(t *testing.T) {
	c := qt.New(t)

	dt := FromUnix(946684800)
	dt.Year = 1999
	_, err := dt.Unix()
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)

	dt.Year = 2100
	_, err = dt.Unix()
	c.Assert(err, qt.ErrorIs, ErrInvalidTime)
}

func TestWeekday(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		year, month, date int
		want              uint8
	}{
		{2000, 1, 1, 6},   // Saturday
		{2000, 2, 29, 2},  // Tuesday
		{2023, 3, 1, 3},   // Wednesday
		{2024, 2, 29, 4},  // Thursday
		{2048, 7, 4, 6},   // Saturday
		{2099, 12, 31, 4}, // Thursday
		{1970, 1, 1, 4},   // Thursday
		{2100, 1, 1, 5},   // Friday; congruence is not window-limited
	} {
		c.Assert(Weekday(tc.year, tc.month, tc.date), qt.Equals, tc.want,
			qt.Commentf("%04d-%02d-%02d", tc.year, tc.month, tc.date))
	}
}
