package ds3231

// InterruptMode selects what the INT/SQW pin outputs.
type InterruptMode uint8

const (
	SquareWaveInterrupt InterruptMode = iota
	AlarmInterrupt
)

// SquareWaveRate selects the square-wave output frequency.
type SquareWaveRate uint8

const (
	Rate1Hz SquareWaveRate = iota
	Rate1024Hz
	Rate4096Hz
	Rate8192Hz
)

// SetOscillatorEnabled starts or stops the oscillator when running
// from battery power. The EOSC bit is inverted on the chip: clear
// means running.
func (d *Device) SetOscillatorEnabled(enable bool) error {
	var v uint8
	if !enable {
		v = 1 << bitEOSC
	}
	return d.updateReg(RegControl, 1<<bitEOSC, v)
}

// OscillatorEnabled reports whether the oscillator runs on battery
// power.
func (d *Device) OscillatorEnabled() (bool, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return false, err
	}
	return control&(1<<bitEOSC) == 0, nil
}

// SetBatterySquareWave enables the square-wave output while running
// from battery power (BBSQW).
func (d *Device) SetBatterySquareWave(enable bool) error {
	var v uint8
	if enable {
		v = 1 << bitBBSQW
	}
	return d.updateReg(RegControl, 1<<bitBBSQW, v)
}

// BatterySquareWave reports the BBSQW bit.
func (d *Device) BatterySquareWave() (bool, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return false, err
	}
	return control&(1<<bitBBSQW) != 0, nil
}

// SetInterruptMode routes the INT/SQW pin to either alarm interrupts
// or the square-wave output.
func (d *Device) SetInterruptMode(mode InterruptMode) error {
	return d.updateReg(RegControl, 1<<bitINTCN, uint8(mode&0x01)<<bitINTCN)
}

// InterruptMode reports the current INT/SQW pin routing.
func (d *Device) InterruptMode() (InterruptMode, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return 0, err
	}
	return InterruptMode(control >> bitINTCN & 0x01), nil
}

// SetSquareWaveRate sets the square-wave output frequency. It also
// forces the INT/SQW pin back to alarm-interrupt mode; call
// SetInterruptMode with SquareWaveInterrupt afterwards to actually
// emit the square wave.
func (d *Device) SetSquareWaveRate(rate SquareWaveRate) error {
	err := d.updateReg(RegControl, 0b11<<bitRS1, uint8(rate&0x03)<<bitRS1)
	if err != nil {
		return err
	}
	return d.SetInterruptMode(AlarmInterrupt)
}

// SquareWaveRate reports the rate-select bits.
func (d *Device) SquareWaveRate() (SquareWaveRate, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return 0, err
	}
	return SquareWaveRate(control >> bitRS1 & 0x03), nil
}

// SetAlarm1InterruptEnabled sets the alarm 1 interrupt-enable bit and
// forces the INT/SQW pin to alarm-interrupt mode, even when disabling.
func (d *Device) SetAlarm1InterruptEnabled(enable bool) error {
	var v uint8
	if enable {
		v = 1 << bitA1IE
	}
	if err := d.updateReg(RegControl, 1<<bitA1IE, v); err != nil {
		return err
	}
	return d.SetInterruptMode(AlarmInterrupt)
}

// Alarm1InterruptEnabled reports the alarm 1 interrupt-enable bit.
func (d *Device) Alarm1InterruptEnabled() (bool, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return false, err
	}
	return control&(1<<bitA1IE) != 0, nil
}

// SetAlarm2InterruptEnabled sets the alarm 2 interrupt-enable bit and
// forces the INT/SQW pin to alarm-interrupt mode, even when disabling.
func (d *Device) SetAlarm2InterruptEnabled(enable bool) error {
	var v uint8
	if enable {
		v = 1 << bitA2IE
	}
	if err := d.updateReg(RegControl, 1<<bitA2IE, v); err != nil {
		return err
	}
	return d.SetInterruptMode(AlarmInterrupt)
}

// Alarm2InterruptEnabled reports the alarm 2 interrupt-enable bit.
func (d *Device) Alarm2InterruptEnabled() (bool, error) {
	control, err := d.readReg(RegControl)
	if err != nil {
		return false, err
	}
	return control&(1<<bitA2IE) != 0, nil
}

// Alarm1Triggered reports the alarm 1 flag. The flag is sticky until
// ClearAlarm1Flag is called; while it is set with the interrupt
// enabled in alarm mode, the INT/SQW pin stays asserted low.
func (d *Device) Alarm1Triggered() (bool, error) {
	status, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return status&(1<<bitA1F) != 0, nil
}

// ClearAlarm1Flag clears the alarm 1 flag so the alarm can trigger
// again.
func (d *Device) ClearAlarm1Flag() error {
	return d.updateReg(RegStatus, 1<<bitA1F, 0)
}

// Alarm2Triggered reports the alarm 2 flag.
func (d *Device) Alarm2Triggered() (bool, error) {
	status, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return status&(1<<bitA2F) != 0, nil
}

// ClearAlarm2Flag clears the alarm 2 flag so the alarm can trigger
// again.
func (d *Device) ClearAlarm2Flag() error {
	return d.updateReg(RegStatus, 1<<bitA2F, 0)
}

// Set32kHzOutput enables or disables the 32 kHz output pin.
func (d *Device) Set32kHzOutput(enable bool) error {
	var v uint8
	if enable {
		v = 1 << bitEN32kHz
	}
	return d.updateReg(RegStatus, 1<<bitEN32kHz, v)
}

// Output32kHzEnabled reports whether the 32 kHz output is enabled.
func (d *Device) Output32kHzEnabled() (bool, error) {
	status, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return status&(1<<bitEN32kHz) != 0, nil
}

// Busy reports whether the chip is executing a temperature
// conversion.
func (d *Device) Busy() (bool, error) {
	status, err := d.readReg(RegStatus)
	if err != nil {
		return false, err
	}
	return status&(1<<bitBSY) != 0, nil
}

// Temperature returns the die temperature in millidegrees Celsius,
// at the chip's 0.25 degree resolution.
func (d *Device) Temperature() (int32, error) {
	var buf [2]byte
	if err := d.bus.ReadRegister(d.Address, RegTempMSB, buf[:]); err != nil {
		return 0, err
	}
	return int32(int8(buf[0]))*1000 + int32(buf[1]>>6)*250, nil
}

// AgingOffset returns the signed oscillator aging trim.
func (d *Device) AgingOffset() (int8, error) {
	v, err := d.readReg(RegAging)
	return int8(v), err
}

// SetAgingOffset sets the signed oscillator aging trim. The register
// is wholly owned by this setter, so it is a plain write.
func (d *Device) SetAgingOffset(offset int8) error {
	buf := [1]byte{uint8(offset)}
	return d.bus.WriteRegister(d.Address, RegAging, buf[:])
}
