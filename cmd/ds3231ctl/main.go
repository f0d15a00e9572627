// Command ds3231ctl inspects and programs a DS3231 real-time clock
// attached to a Linux i2c bus.
//
// Usage:
//
//	ds3231ctl [-bus N] [-addr 0x68] <verb> [args]
//
// Verbs:
//
//	status          show oscillator, interrupt and alarm state
//	read            print the chip time and its unix epoch value
//	set <RFC3339>   set the chip to the given UTC time
//	sync            set the chip from the host clock
//	clear <1|2>     clear an alarm flag
package main // import "github.com/ajanata/ds3231/cmd/ds3231ctl"

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ajanata/ds3231"
	"github.com/ajanata/ds3231/i2cdev"
)

func main() {
	log.SetPrefix("ds3231ctl: ")
	log.SetFlags(0)

	var (
		busID = flag.Int("bus", 1, "i2c bus number (/dev/i2c-N)")
		addr  = flag.Uint("addr", ds3231.Address, "i2c device address")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ds3231ctl [options] status|read|set <RFC3339>|sync|clear <1|2>\n\noptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	bus, err := i2cdev.Open(*busID, uint8(*addr))
	if err != nil {
		log.Fatalf("could not open i2c bus %d: %+v", *busID, err)
	}
	defer bus.Close()

	dev := ds3231.New(bus)
	dev.Address = uint8(*addr)

	switch verb := flag.Arg(0); verb {
	case "status":
		err = status(&dev)
	case "read":
		err = read(&dev)
	case "set":
		if flag.NArg() < 2 {
			log.Fatalf("set needs an RFC3339 timestamp")
		}
		var t time.Time
		t, err = time.Parse(time.RFC3339, flag.Arg(1))
		if err == nil {
			err = dev.Set(t)
		}
	case "sync":
		err = dev.Set(time.Now())
	case "clear":
		switch flag.Arg(1) {
		case "1":
			err = dev.ClearAlarm1Flag()
		case "2":
			err = dev.ClearAlarm2Flag()
		default:
			log.Fatalf("clear needs an alarm number, 1 or 2")
		}
	default:
		log.Fatalf("unknown verb %q", verb)
	}
	if err != nil {
		log.Fatalf("%s: %+v", flag.Arg(0), err)
	}
}

func read(dev *ds3231.Device) error {
	dt, err := dev.ReadTime()
	if err != nil {
		return err
	}
	epoch, err := dt.Unix()
	if err != nil {
		return err
	}
	fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d UTC (weekday %d, unix %d)\n",
		dt.Year, dt.Month, dt.Date, dt.Hour, dt.Minute, dt.Second, dt.Day, epoch)
	return nil
}

func status(dev *ds3231.Device) error {
	lost, err := dev.LostPower()
	if err != nil {
		return err
	}
	osc, err := dev.OscillatorEnabled()
	if err != nil {
		return err
	}
	mode, err := dev.InterruptMode()
	if err != nil {
		return err
	}
	rate, err := dev.SquareWaveRate()
	if err != nil {
		return err
	}
	a1, err := dev.ReadAlarm1()
	if err != nil {
		return err
	}
	a1f, err := dev.Alarm1Triggered()
	if err != nil {
		return err
	}
	a2, err := dev.ReadAlarm2()
	if err != nil {
		return err
	}
	a2f, err := dev.Alarm2Triggered()
	if err != nil {
		return err
	}
	temp, err := dev.Temperature()
	if err != nil {
		return err
	}

	fmt.Printf("oscillator enabled: %v (stop flag: %v)\n", osc, lost)
	fmt.Printf("interrupt mode:     %v (rate select: %v)\n", mode, rate)
	fmt.Printf("alarm 1: %02d:%02d:%02d day/date %d mode %#02x enabled %v triggered %v\n",
		a1.Hour, a1.Minute, a1.Second, a1.DayDate, a1.Mode, a1.InterruptEnabled, a1f)
	fmt.Printf("alarm 2: %02d:%02d    day/date %d mode %#02x enabled %v triggered %v\n",
		a2.Hour, a2.Minute, a2.DayDate, a2.Mode, a2.InterruptEnabled, a2f)
	fmt.Printf("temperature: %d.%03d C\n", temp/1000, abs(temp%1000))
	return nil
}

func abs(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
