//go:build linux && !tinygo

package main

import (
	"log/slog"
	"os"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/bcm283x"

	"portgl.dev/dvi"
	"portgl.dev/gpio"
)

func init() {
	fail = func() { os.Exit(1) }
}

// linuxPlatform drives the data/clock lanes as ordinary bcm283x GPIOs
// bit-banged by dvi.Emitter, and reads EDID over the Pi's I2C-1 bus --
// the "development/bring-up target" of spec.md §1, grounded on the
// teacher's wshat.Open (periph.io/x/host/v3/bcm283x pin assignment)
// and lcd.Open (periph.io/x/host/v3/... registry-open pattern,
// generalized here from spireg to i2creg).
type linuxPlatform struct {
	bus *gpio.Bus
	i2c i2c.Bus
}

func newPlatform(log *slog.Logger) (platform, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}

	bus := &gpio.Bus{
		Red:   gpio.NewPair(bcm283x.GPIO17, bcm283x.GPIO18),
		Green: gpio.NewPair(bcm283x.GPIO27, bcm283x.GPIO22),
		Blue:  gpio.NewPair(bcm283x.GPIO23, bcm283x.GPIO24),
		Clock: gpio.NewPair(bcm283x.GPIO25, bcm283x.GPIO5),
	}

	p := &linuxPlatform{bus: bus}
	i2cBus, err := i2creg.Open("")
	if err != nil {
		// DDC is advisory (spec.md §7): log and continue with no bus,
		// rather than failing startup over a missing monitor EDID.
		log.Warn("firmware: i2c bus unavailable, EDID read disabled", "err", err)
		return p, nil
	}
	p.i2c = i2cBus
	return p, nil
}

func (p *linuxPlatform) I2C() i2c.Bus { return p.i2c }

func (p *linuxPlatform) Stream(profile dvi.TimingProfile, src dvi.PixelSource) error {
	em, err := dvi.NewEmitter(profile, p.bus)
	if err != nil {
		return err
	}
	for {
		em.EmitFrame(src)
	}
}
