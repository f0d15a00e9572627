// Package i2cdev adapts a Linux i2c-dev bus, accessed through the
// SMBus protocol, to the drivers.I2C interface, so the ds3231 driver
// runs unchanged on single-board computers.
package i2cdev

import (
	"errors"

	"github.com/go-daq/smbus"
)

// Bus wraps an SMBus connection to one /dev/i2c-N device node. It
// implements drivers.I2C.
type Bus struct {
	conn *smbus.Conn
}

// Open opens /dev/i2c-<bus> for the device at addr.
func Open(bus int, addr uint8) (*Bus, error) {
	conn, err := smbus.Open(bus, addr)
	if err != nil {
		return nil, err
	}
	return &Bus{conn: conn}, nil
}

// Close releases the device node.
func (b *Bus) Close() error {
	return b.conn.Close()
}

// ReadRegister reads len(buf) consecutive registers starting at reg.
//
// TODO: use a single I2C block transfer instead of per-byte SMBus
// reads, so a seconds rollover cannot tear a multi-register time read.
func (b *Bus) ReadRegister(addr uint8, reg uint8, buf []byte) error {
	for i := range buf {
		v, err := b.conn.ReadReg(addr, reg+uint8(i))
		if err != nil {
			return err
		}
		buf[i] = v
	}
	return nil
}

// WriteRegister writes len(buf) consecutive registers starting at reg.
func (b *Bus) WriteRegister(addr uint8, reg uint8, buf []byte) error {
	for i, v := range buf {
		if err := b.conn.WriteReg(addr, reg+uint8(i), v); err != nil {
			return err
		}
	}
	return nil
}

// Tx maps the two register-access transaction shapes onto SMBus
// commands; SMBus has no arbitrary-transaction primitive.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	switch {
	case len(w) == 1 && len(r) > 0:
		return b.ReadRegister(uint8(addr), w[0], r)
	case len(w) > 1 && len(r) == 0:
		return b.WriteRegister(uint8(addr), w[0], w[1:])
	}
	return errors.New("i2cdev: unsupported transaction shape")
}
