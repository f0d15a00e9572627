// Package ds3231 implements a driver for the DS3231, a battery-backed
// I2C real-time clock with two alarms and a temperature-compensated
// oscillator.
//
// The driver keeps no shadow of chip state: every getter re-reads the
// device and every setter performs its own read-modify-write, so
// callers sharing one Device across goroutines must serialize access
// themselves. Only 24-hour mode is supported, and years are limited
// to 2000..2099 (the century bit is not used).
//
// Datasheet: https://datasheets.maximintegrated.com/en/ds/DS3231.pdf
package ds3231

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrInvalidTime is wrapped by every validation error. Transport
// errors are returned verbatim, so the two classes are always
// distinguishable with errors.Is.
var ErrInvalidTime = errors.New("ds3231: time out of range")

// Device wraps an I2C connection to a DS3231.
type Device struct {
	bus     drivers.I2C
	Address uint8
}

// New creates a new DS3231 driver on the given preconfigured I2C bus.
// It does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{
		bus:     bus,
		Address: Address,
	}
}

// Configure brings the chip to a known idle state: both alarm
// interrupts disabled, both alarm flags cleared and the 32 kHz output
// off. As a side effect of the alarm-interrupt writes the INT/SQW pin
// is left in alarm-interrupt mode. Timekeeping is not touched.
func (d *Device) Configure() error {
	if err := d.SetAlarm1InterruptEnabled(false); err != nil {
		return err
	}
	if err := d.SetAlarm2InterruptEnabled(false); err != nil {
		return err
	}
	if err := d.ClearAlarm1Flag(); err != nil {
		return err
	}
	if err := d.ClearAlarm2Flag(); err != nil {
		return err
	}
	return d.Set32kHzOutput(false)
}

// SetTime writes dt to the seven timekeeping registers and programs
// the oscillator-enable bit from dt.OscillatorEnabled. Every field is
// validated first; an invalid DateTime fails before any bus traffic.
func (d *Device) SetTime(dt DateTime) error {
	if err := dt.validate(); err != nil {
		return err
	}

	buf := [7]byte{
		decToBcd(int(dt.Second)),
		decToBcd(int(dt.Minute)),
		decToBcd(int(dt.Hour)),
		decToBcd(int(dt.Day)),
		decToBcd(int(dt.Date)),
		decToBcd(int(dt.Month)),
		decToBcd(int(dt.Year - 2000)),
	}
	if err := d.bus.WriteRegister(d.Address, RegSeconds, buf[:]); err != nil {
		return err
	}
	return d.SetOscillatorEnabled(dt.OscillatorEnabled)
}

// ReadTime reads the seven timekeeping registers. The oscillator flag
// of the result reflects the oscillator-stop flag in the status
// register, not the EOSC control bit.
func (d *Device) ReadTime() (DateTime, error) {
	var buf [7]byte
	if err := d.bus.ReadRegister(d.Address, RegSeconds, buf[:]); err != nil {
		return DateTime{}, err
	}

	dt := DateTime{
		Second: uint8(bcdToDec(buf[0] & 0x7F)),
		Minute: uint8(bcdToDec(buf[1] & 0x7F)),
		Hour:   uint8(bcdToDec(buf[2] & 0x3F)),
		Day:    uint8(bcdToDec(buf[3] & 0x07)),
		Date:   uint8(bcdToDec(buf[4] & 0x3F)),
		Month:  uint8(bcdToDec(buf[5] & 0x1F)),
		Year:   uint16(bcdToDec(buf[6])) + 2000,
	}

	status, err := d.readReg(RegStatus)
	if err != nil {
		return DateTime{}, err
	}
	dt.OscillatorEnabled = status&(1<<bitOSF) == 0
	return dt, nil
}

// Set sets the clock from a time.Time, interpreted in UTC.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()
	return d.SetTime(DateTime{
		Second: uint8(t.Second()),
		Minute: uint8(t.Minute()),
		Hour:   uint8(t.Hour()),
		// time.Weekday is Sunday-first and zero-based.
		Day:               uint8((int(t.Weekday())+6)%7 + 1),
		Date:              uint8(t.Day()),
		Month:             uint8(t.Month()),
		Year:              uint16(t.Year()),
		OscillatorEnabled: true,
	})
}

// Now returns the current time in UTC.
func (d *Device) Now() (time.Time, error) {
	dt, err := d.ReadTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(int(dt.Year), time.Month(dt.Month), int(dt.Date),
		int(dt.Hour), int(dt.Minute), int(dt.Second), 0, time.UTC), nil
}

// LostPower reports whether the oscillator has stopped since the
// flag was last cleared, which means the time cannot be trusted.
func (d *Device) LostPower() (bool, error) {
	status, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return status&(1<<bitOSF) != 0, nil
}

// ClearLostPowerFlag clears the oscillator-stop flag. The flag is
// sticky: reading it never clears it.
func (d *Device) ClearLostPowerFlag() error {
	return d.updateReg(RegStatus, 1<<bitOSF, 0)
}

func (d *Device) readReg(reg uint8) (uint8, error) {
	var buf [1]byte
	err := d.bus.ReadRegister(d.Address, reg, buf[:])
	return buf[0], err
}

// updateReg replaces the bits of mask with the matching bits of val,
// leaving every other bit of the register exactly as read.
func (d *Device) updateReg(reg, mask, val uint8) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	buf := [1]byte{cur&^mask | val&mask}
	return d.bus.WriteRegister(d.Address, reg, buf[:])
}
