package ds3231

const (
	// Address is the fixed 7-bit I2C address of the DS3231.
	Address = 0x68

	RegSeconds = 0x00
	RegMinutes = 0x01
	RegHours   = 0x02
	RegDay     = 0x03
	RegDate    = 0x04
	RegMonth   = 0x05
	RegYear    = 0x06

	RegAlarm1Seconds = 0x07
	RegAlarm1Minutes = 0x08
	RegAlarm1Hours   = 0x09
	RegAlarm1DayDate = 0x0A

	RegAlarm2Minutes = 0x0B
	RegAlarm2Hours   = 0x0C
	RegAlarm2DayDate = 0x0D

	RegControl = 0x0E
	RegStatus  = 0x0F
	RegAging   = 0x10
	RegTempMSB = 0x11
	RegTempLSB = 0x12
)

// Control register bit positions. EOSC is inverted: 0 keeps the
// oscillator running on battery power.
const (
	bitA1IE  = 0
	bitA2IE  = 1
	bitINTCN = 2
	bitRS1   = 3
	bitRS2   = 4
	bitCONV  = 5
	bitBBSQW = 6
	bitEOSC  = 7
)

// Status register bit positions.
const (
	bitA1F     = 0
	bitA2F     = 1
	bitBSY     = 2
	bitEN32kHz = 3
	bitOSF     = 7
)

// Alarm register bit positions: bit 7 of every alarm register holds
// one match-mode bit, bit 6 of the day/date register selects day of
// week (1) or day of month (0).
const (
	bitAxM  = 7
	bitDYDT = 6
)
