//go:build !linux && !tinygo

package main

import (
	"log/slog"
	"os"

	conngpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"portgl.dev/dvi"
	"portgl.dev/gpio"
)

func init() {
	fail = func() { os.Exit(1) }
}

// dummyPlatform is the hardware-free fallback: it lets the repository
// build and run its frame loop on any development host with no real
// DVI link attached, mirroring the teacher's platform_dummy.go
// (`!linux || !arm`). There is no I2C bus to read EDID from.
type dummyPlatform struct {
	bus *gpio.Bus
}

func newPlatform(log *slog.Logger) (platform, error) {
	pair := func(name string) *gpio.Pair {
		return gpio.NewPair(&noopPin{name + "+"}, &noopPin{name + "-"})
	}
	bus := &gpio.Bus{
		Red:   pair("red"),
		Green: pair("green"),
		Blue:  pair("blue"),
		Clock: pair("clock"),
	}
	log.Info("firmware: running on the hardware-free dummy platform")
	return &dummyPlatform{bus: bus}, nil
}

func (p *dummyPlatform) I2C() i2c.Bus { return nil }

func (p *dummyPlatform) Stream(profile dvi.TimingProfile, src dvi.PixelSource) error {
	em, err := dvi.NewEmitter(profile, p.bus)
	if err != nil {
		return err
	}
	for {
		em.EmitFrame(src)
	}
}

// noopPin implements periph.io/x/conn/v3/gpio.PinOut by discarding
// every level written to it, modeled on gpio/gpio_test.go's fakePin.
type noopPin struct{ name string }

func (n *noopPin) String() string                               { return n.name }
func (n *noopPin) Halt() error                                  { return nil }
func (n *noopPin) Name() string                                  { return n.name }
func (n *noopPin) Number() int                                   { return 0 }
func (n *noopPin) Function() string                              { return "Out" }
func (n *noopPin) Out(l conngpio.Level) error                    { return nil }
func (n *noopPin) PWM(conngpio.Duty, physic.Frequency) error     { return nil }
