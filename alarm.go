package ds3231

// Alarm1Mode selects which fields of alarm 1 must match the clock.
// The low four bits are the A1M1..A1M4 mask bits, bit 4 is the
// day-vs-date selector.
type Alarm1Mode uint8

const (
	Alarm1EverySecond  Alarm1Mode = 0x0F // trigger once per second
	Alarm1MatchSeconds Alarm1Mode = 0x0E // seconds match
	Alarm1MatchMinutes Alarm1Mode = 0x0C // minutes and seconds match
	Alarm1MatchHours   Alarm1Mode = 0x08 // hours, minutes and seconds match
	Alarm1MatchDate    Alarm1Mode = 0x00 // day of month plus time match
	Alarm1MatchDay     Alarm1Mode = 0x10 // day of week plus time match
)

// Alarm2Mode selects which fields of alarm 2 must match the clock.
// Alarm 2 has no seconds register and triggers at most once per
// minute.
type Alarm2Mode uint8

const (
	Alarm2EveryMinute  Alarm2Mode = 0x07 // trigger once per minute, at :00
	Alarm2MatchMinutes Alarm2Mode = 0x06 // minutes match
	Alarm2MatchHours   Alarm2Mode = 0x04 // hours and minutes match
	Alarm2MatchDate    Alarm2Mode = 0x00 // day of month plus time match
	Alarm2MatchDay     Alarm2Mode = 0x08 // day of week plus time match
)

// Alarm1 is the decoded form of the four alarm 1 registers plus the
// interrupt-enable bit. DayDate holds a day of week (1..7) in
// Alarm1MatchDay mode and a day of month (1..31) otherwise; the mode
// decides how the register byte is interpreted.
type Alarm1 struct {
	Second  uint8
	Minute  uint8
	Hour    uint8
	DayDate uint8
	Mode    Alarm1Mode

	InterruptEnabled bool
}

// Alarm2 is the decoded form of the three alarm 2 registers plus the
// interrupt-enable bit.
type Alarm2 struct {
	Minute  uint8
	Hour    uint8
	DayDate uint8
	Mode    Alarm2Mode

	InterruptEnabled bool
}

// SetAlarm1 writes the alarm 1 register block and then the
// interrupt-enable bit. Like the interrupt-enable setter itself, this
// forces the INT/SQW pin to alarm-interrupt mode.
func (d *Device) SetAlarm1(a Alarm1) error {
	m1 := uint8(a.Mode&0x01) << 7
	m2 := uint8(a.Mode&0x02) << 6
	m3 := uint8(a.Mode&0x04) << 5
	m4 := uint8(a.Mode&0x08) << 4
	dydt := uint8(a.Mode&0x10) << 2

	buf := [4]byte{
		decToBcd(int(a.Second)) | m1,
		decToBcd(int(a.Minute)) | m2,
		decToBcd(int(a.Hour)) | m3,
		decToBcd(int(a.DayDate)) | dydt | m4,
	}
	if err := d.bus.WriteRegister(d.Address, RegAlarm1Seconds, buf[:]); err != nil {
		return err
	}
	return d.SetAlarm1InterruptEnabled(a.InterruptEnabled)
}

// ReadAlarm1 reads back the alarm 1 configuration. The day-vs-date
// selector is consulted before the day/date byte is decoded: a day of
// week is four bits wide, a day of month six.
func (d *Device) ReadAlarm1() (Alarm1, error) {
	var buf [4]byte
	if err := d.bus.ReadRegister(d.Address, RegAlarm1Seconds, buf[:]); err != nil {
		return Alarm1{}, err
	}

	a := Alarm1{
		Mode: Alarm1Mode(buf[0]&0x80>>7 |
			buf[1]&0x80>>6 |
			buf[2]&0x80>>5 |
			buf[3]&0x80>>4 |
			buf[3]&0x40>>2),
		Second: uint8(bcdToDec(buf[0] & 0x7F)),
		Minute: uint8(bcdToDec(buf[1] & 0x7F)),
		Hour:   uint8(bcdToDec(buf[2] & 0x3F)),
	}
	if buf[3]&(1<<bitDYDT) != 0 {
		a.DayDate = uint8(bcdToDec(buf[3] & 0x0F))
	} else {
		a.DayDate = uint8(bcdToDec(buf[3] & 0x3F))
	}

	enabled, err := d.Alarm1InterruptEnabled()
	if err != nil {
		return Alarm1{}, err
	}
	a.InterruptEnabled = enabled
	return a, nil
}

// SetAlarm2 writes the alarm 2 register block and then the
// interrupt-enable bit. Like the interrupt-enable setter itself, this
// forces the INT/SQW pin to alarm-interrupt mode.
func (d *Device) SetAlarm2(a Alarm2) error {
	m2 := uint8(a.Mode&0x01) << 7
	m3 := uint8(a.Mode&0x02) << 6
	m4 := uint8(a.Mode&0x04) << 5
	dydt := uint8(a.Mode&0x08) << 3

	buf := [3]byte{
		decToBcd(int(a.Minute)) | m2,
		decToBcd(int(a.Hour)) | m3,
		decToBcd(int(a.DayDate)) | dydt | m4,
	}
	if err := d.bus.WriteRegister(d.Address, RegAlarm2Minutes, buf[:]); err != nil {
		return err
	}
	return d.SetAlarm2InterruptEnabled(a.InterruptEnabled)
}

// ReadAlarm2 reads back the alarm 2 configuration, consulting the
// day-vs-date selector before decoding the day/date byte.
func (d *Device) ReadAlarm2() (Alarm2, error) {
	var buf [3]byte
	if err := d.bus.ReadRegister(d.Address, RegAlarm2Minutes, buf[:]); err != nil {
		return Alarm2{}, err
	}

	a := Alarm2{
		Mode: Alarm2Mode(buf[0]&0x80>>7 |
			buf[1]&0x80>>6 |
			buf[2]&0x80>>5 |
			buf[2]&0x40>>3),
		Minute: uint8(bcdToDec(buf[0] & 0x7F)),
		Hour:   uint8(bcdToDec(buf[1] & 0x3F)),
	}
	if buf[2]&(1<<bitDYDT) != 0 {
		a.DayDate = uint8(bcdToDec(buf[2] & 0x0F))
	} else {
		a.DayDate = uint8(bcdToDec(buf[2] & 0x3F))
	}

	enabled, err := d.Alarm2InterruptEnabled()
	if err != nil {
		return Alarm2{}, err
	}
	a.InterruptEnabled = enabled
	return a, nil
}
