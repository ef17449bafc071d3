//go:build tinygo && rp2350

package main

import (
	"device/rp"
	"log/slog"
	"machine"

	conngpio "periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"

	"portgl.dev/driver/dvipio"
	"portgl.dev/dvi"
	"portgl.dev/gpio"
)

func init() {
	fail = func() {
		machine.LED.Configure(machine.PinConfig{Mode: machine.PinOutput})
		for {
			machine.LED.Set(!machine.LED.Get())
			for i := 0; i < 1_000_000; i++ {
			}
		}
	}
}

// tinygoPlatform is the production target (spec.md §1): the three
// TMDS data lanes are PIO+DMA driven through driver/dvipio, one bit
// per PIO instruction cycle; only the clock lane, which merely
// toggles twice per symbol, is driven through the same software
// gpio.Pair used on the Linux bring-up platform.
type tinygoPlatform struct {
	red, green, blue *dvipio.Device
	clock            *gpio.Pair
	i2c              i2c.Bus
}

func newPlatform(log *slog.Logger) (platform, error) {
	red, err := dvipio.New(rp.PIO0, machine.GPIO2)
	if err != nil {
		return nil, err
	}
	green, err := dvipio.New(rp.PIO0, machine.GPIO4)
	if err != nil {
		return nil, err
	}
	blue, err := dvipio.New(rp.PIO0, machine.GPIO6)
	if err != nil {
		return nil, err
	}

	clockPos, clockNeg := machine.Pin(8), machine.Pin(9)
	clockPos.Configure(machine.PinConfig{Mode: machine.PinOutput})
	clockNeg.Configure(machine.PinConfig{Mode: machine.PinOutput})
	clock := gpio.NewPair(machinePin{clockPos}, machinePin{clockNeg})

	machine.I2C0.Configure(machine.I2CConfig{Frequency: machine.TWI_FREQ_100KHZ})

	return &tinygoPlatform{
		red: red, green: green, blue: blue,
		clock: clock,
		i2c:   i2cAdapter{machine.I2C0},
	}, nil
}

func (p *tinygoPlatform) I2C() i2c.Bus { return p.i2c }

// Stream runs the dvi.StateMachine directly (rather than dvi.Emitter,
// which bit-bangs every lane through a gpio.Bus) so each scanline's
// symbols can be handed to driver/dvipio's DMA-chained FIFO one
// scanline at a time, per spec.md §1's "real-time bit-serial pin
// driver" requirement on the production target.
func (p *tinygoPlatform) Stream(profile dvi.TimingProfile, src dvi.PixelSource) error {
	sm, err := dvi.NewStateMachine(profile)
	if err != nil {
		return err
	}
	if err := p.red.Configure(profile.PixelClockHz); err != nil {
		return err
	}
	if err := p.green.Configure(profile.PixelClockHz); err != nil {
		return err
	}
	if err := p.blue.Configure(profile.PixelClockHz); err != nil {
		return err
	}

	lineLen := profile.HTotal()
	rbuf := make([]uint16, lineLen)
	gbuf := make([]uint16, lineLen)
	bbuf := make([]uint16, lineLen)

	for {
		col := 0
		for {
			r, g, b, _, frameDone := sm.Tick(src)
			rbuf[col], gbuf[col], bbuf[col] = r, g, b
			p.clock.Toggle()
			col++
			if col == lineLen {
				p.red.EmitSymbols(rbuf)
				p.green.EmitSymbols(gbuf)
				p.blue.EmitSymbols(bbuf)
				col = 0
			}
			if frameDone {
				p.red.Flush()
				p.green.Flush()
				p.blue.Flush()
				break
			}
		}
	}
}

// machinePin adapts a machine.Pin to periph.io/x/conn/v3/gpio.PinOut
// so the clock lane can reuse gpio.Pair on TinyGo too.
type machinePin struct{ pin machine.Pin }

func (m machinePin) String() string   { return "machine.Pin" }
func (m machinePin) Halt() error      { return nil }
func (m machinePin) Name() string     { return "machine.Pin" }
func (m machinePin) Number() int      { return int(m.pin) }
func (m machinePin) Function() string { return "Out" }
func (m machinePin) Out(l conngpio.Level) error {
	m.pin.Set(bool(l))
	return nil
}
func (m machinePin) PWM(conngpio.Duty, physic.Frequency) error { return nil }

// i2cAdapter adapts machine.I2C to periph.io/x/conn/v3/i2c.Bus so
// ddc.Client can read EDID identically on both platforms.
type i2cAdapter struct{ bus *machine.I2C }

func (a i2cAdapter) Tx(addr uint16, w, r []byte) error {
	return a.bus.Tx(uint8(addr), w, r)
}
func (a i2cAdapter) SetSpeed(f physic.Frequency) error { return nil }
func (a i2cAdapter) String() string                    { return "machine.I2C0" }
func (a i2cAdapter) Halt() error                       { return nil }
