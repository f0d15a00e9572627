package ds3231

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

// Every bit-level setter must leave the bits it does not own exactly
// as it found them, for every possible initial register value.
func TestBitPreservation(t *testing.T) {
	c := qt.New(t)

	for _, tc := range []struct {
		name string
		reg  uint8
		mask uint8 // bits the setter owns
		call func(d *Device) error
	}{
		{"oscillator enable", RegControl, 1 << bitEOSC,
			func(d *Device) error { return d.SetOscillatorEnabled(false) }},
		{"battery square wave", RegControl, 1 << bitBBSQW,
			func(d *Device) error { return d.SetBatterySquareWave(true) }},
		{"interrupt mode", RegControl, 1 << bitINTCN,
			func(d *Device) error { return d.SetInterruptMode(SquareWaveInterrupt) }},
		{"square wave rate", RegControl, 0b11<<bitRS1 | 1<<bitINTCN,
			func(d *Device) error { return d.SetSquareWaveRate(Rate4096Hz) }},
		{"alarm 1 interrupt enable", RegControl, 1<<bitA1IE | 1<<bitINTCN,
			func(d *Device) error { return d.SetAlarm1InterruptEnabled(true) }},
		{"alarm 2 interrupt enable", RegControl, 1<<bitA2IE | 1<<bitINTCN,
			func(d *Device) error { return d.SetAlarm2InterruptEnabled(false) }},
		{"32 kHz output", RegStatus, 1 << bitEN32kHz,
			func(d *Device) error { return d.Set32kHzOutput(true) }},
		{"clear alarm 1 flag", RegStatus, 1 << bitA1F,
			func(d *Device) error { return d.ClearAlarm1Flag() }},
		{"clear alarm 2 flag", RegStatus, 1 << bitA2F,
			func(d *Device) error { return d.ClearAlarm2Flag() }},
		{"clear lost power flag", RegStatus, 1 << bitOSF,
			func(d *Device) error { return d.ClearLostPowerFlag() }},
	} {
		d, dev := setupDevice(c)
		for init := 0; init <= 0xFF; init++ {
			dev.Registers[tc.reg] = uint8(init)
			c.Assert(tc.call(&d), qt.IsNil)
			got := dev.Registers[tc.reg]
			c.Assert(got&^tc.mask, qt.Equals, uint8(init)&^tc.mask,
				qt.Commentf("%s: initial %#08b, got %#08b", tc.name, init, got))
		}
	}
}

func TestControlGetters(t *testing.T) {
	c := qt.New(t)
	d, dev := setupDevice(c)

	dev.Registers[RegControl] = 1<<bitBBSQW | 1<<bitINTCN | uint8(Rate4096Hz)<<bitRS1

	osc, err := d.OscillatorEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(osc, qt.IsTrue) // EOSC is inverted

	bbsqw, err := d.BatterySquareWave()
	c.Assert(err, qt.IsNil)
	c.Assert(bbsqw, qt.IsTrue)

	mode, err := d.InterruptMode()
	c.Assert(err, qt.IsNil)
	c.Assert(mode, qt.Equals, AlarmInterrupt)

	rate, err := d.SquareWaveRate()
	c.Assert(err, qt.IsNil)
	c.Assert(rate, qt.Equals, Rate4096Hz)

	a1ie, err := d.Alarm1InterruptEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(a1ie, qt.IsFalse)

	a2ie, err := d.Alarm2InterruptEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(a2ie, qt.IsFalse)
}

func TestStatusGetters(t *testing.T) {
	c := qt.New(t)
	d, dev := setupDevice(c)

	dev.Registers[RegStatus] = 1<<bitOSF | 1<<bitBSY | 1<<bitA2F

	lost, err := d.LostPower()
	c.Assert(err, qt.IsNil)
	c.Assert(lost, qt.IsTrue)

	busy, err := d.Busy()
	c.Assert(err, qt.IsNil)
	c.Assert(busy, qt.IsTrue)

	a1f, err := d.Alarm1Triggered()
	c.Assert(err, qt.IsNil)
	c.Assert(a1f, qt.IsFalse)

	a2f, err := d.Alarm2Triggered()
	c.Assert(err, qt.IsNil)
	c.Assert(a2f, qt.IsTrue)

	en32k, err := d.Output32kHzEnabled()
	c.Assert(err, qt.IsNil)
	c.Assert(en32k, qt.IsFalse)
}

// Selecting a square-wave rate forces the pin back to alarm-interrupt
// mode; emitting the square wave needs an explicit mode change after.
func TestSquareWaveRateForcesAlarmMode(t *testing.T) {
	c := qt.New(t)
	d, dev := setupDevice(c)

	c.Assert(d.SetInterruptMode(SquareWaveInterrupt), qt.IsNil)
	c.Assert(dev.Registers[RegControl]&(1<<bitINTCN), qt.Equals, uint8(0))

	c.Assert(d.SetSquareWaveRate(Rate8192Hz), qt.IsNil)
	c.Assert(dev.Registers[RegControl]&(1<<bitINTCN), qt.Equals, uint8(1<<bitINTCN))

	rate, err := d.SquareWaveRate()
	c.Assert(err, qt.IsNil)
	c.Assert(rate, qt.Equals, Rate8192Hz)
}

func TestTemperature(t *testing.T) {
	c := qt.New(t)
	d, dev := setupDevice(c)

	dev.Registers[RegTempMSB] = 0x19 // +25 C
	dev.Registers[RegTempLSB] = 0b0100_0000
	temp, err := d.Temperature()
	c.Assert(err, qt.IsNil)
	c.Assert(temp, qt.Equals, int32(25250))

	dev.Registers[RegTempMSB] = 0xE7 // 10-bit two's complement, -24.75 C
	dev.Registers[RegTempLSB] = 0b0100_0000
	temp, err = d.Temperature()
	c.Assert(err, qt.IsNil)
	c.Assert(temp, qt.Equals, int32(-24750))
}

func TestAgingOffset(t *testing.T) {
	c := qt.New(t)
	d, dev := setupDevice(c)

	c.Assert(d.SetAgingOffset(-12), qt.IsNil)
	c.Assert(dev.Registers[RegAging], qt.Equals, uint8(0xF4))

	offset, err := d.AgingOffset()
	c.Assert(err, qt.IsNil)
	c.Assert(offset, qt.Equals, int8(-12))
}
