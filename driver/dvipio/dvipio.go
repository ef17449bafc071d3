//go:build tinygo && rp2350

// Package dvipio implements the real-time bit-serial TMDS pin driver
// (spec.md §1's "core": the signal-generation pipeline) on an RP2350
// using a PIO state machine clocked off a DMA-fed FIFO, adapted from
// driver/ili9488's PIO+DMA device: here a Device exposes Configure,
// EmitSymbols and Flush, and shifts pre-encoded 10-bit TMDS symbols out
// on three data pins plus a side-set clock pin, instead of writing an
// ILI9488 parallel command/data bus.
package dvipio

import (
	"device/rp"
	"errors"
	"runtime"
	"unsafe"

	"portgl.dev/driver/dma"
	"portgl.dev/driver/pio"

	"machine"
)

const pioStateMachine = 0

// Device drives one TMDS data lane's worth of pins. A full DVI link
// needs three (R, G, B); the clock lane is a plain gpio.Pair toggled
// directly by dvi.Emitter, since it only flips twice per symbol and
// doesn't need FIFO pacing.
type Device struct {
	pio     *rp.PIO0_Type
	channel dma.ChannelID
	base    machine.Pin // first of 2 pins (TMDS differential pair)
}

// New reserves a DMA channel for lane output on the given PIO block,
// driving a differential pair starting at base (base, base+1).
func New(p *rp.PIO0_Type, base machine.Pin) (*Device, error) {
	ch, err := dma.ReserveChannel()
	if err != nil {
		return nil, err
	}
	return &Device{pio: p, channel: ch, base: base}, nil
}

// symbolBits is the width of one TMDS symbol.
const symbolBits = 10

// Configure programs the PIO state machine to autopull a 10-bit word
// per iteration and shift it out LSB-first on the differential pair,
// toggling a side-set clock pin at the start of each symbol -- the
// same division of labour as ili9488's sideset-clocked parallel write,
// generalized from an 8-bit command bus to a 10-bit TMDS symbol.
//
// freqHz is the pixel clock; the state machine is clocked at 10x
// freqHz, one output bit per instruction (spec.md §4.3: "bit rate is
// 10x [the pixel clock] since bits are serial").
func (d *Device) Configure(freqHz uint32) error {
	if freqHz == 0 {
		return errors.New("dvipio: freqHz must be non-zero")
	}
	progOff := uint8(0)
	conf := pio.DefaultStateMachineConfig()
	conf.OutBase = uint8(d.base)
	conf.OutCount = 1
	conf.SidesetBase = uint8(d.base) + 1
	conf.SidesetCount = 1
	conf.FIFOMode = pio.FIFOJoinTX
	conf.PullThreshold = symbolBits
	conf.Autopull = true
	conf.Freq = freqHz * symbolBits
	conf.SetWrap(progOff, progOff+uint8(len(tmdsLaneProgram))-1)
	pio.Program(d.pio, progOff, tmdsLaneProgram)
	pio.Configure(d.pio, pioStateMachine, conf.Build())
	pio.Pindirs(d.pio, pioStateMachine, d.base, 2, machine.PinOutput)
	pio.ConfigurePins(d.pio, pioStateMachine, d.base, 2)
	pio.Enable(d.pio, 0b1<<pioStateMachine)
	return nil
}

// tmdsLaneProgram is the hand-assembled equivalent of:
//
//	.wrap_target
//	out pins, 1  side 1
//	out pins, 1  side 0
//	.wrap
//
// shifting the pulled word's bits out one at a time while toggling the
// side-set pin at half the bit rate; [Configure]'s PullThreshold of 10
// means a full symbol is reloaded from the FIFO every 10 bits, which
// is what ties the side-set toggle rate back to the DVI pixel clock.
var tmdsLaneProgram = []uint16{
	0b011_10000_000_00001, // out pins, 1  side 1
	0b011_00000_000_00001, // out pins, 1  side 0
}

// EmitSymbols streams buf (one packed 10-bit symbol per entry, upper
// bits zero) out through the PIO FIFO via DMA, chained so each buffer
// completes without CPU intervention once started — the same
// read-address/write-address/trans-count wiring as
// driver/ili9488.Device.Draw, generalized from a [][2]byte pixel
// buffer to a []uint16 symbol buffer.
func (d *Device) EmitSymbols(buf []uint16) {
	d.waitDMA()
	ch := dma.ChannelAt(d.channel)
	ch.READ_ADDR.Set(uint32(uintptr(unsafe.Pointer(unsafe.SliceData(buf)))))
	ch.WRITE_ADDR.Set(uint32(uintptr(unsafe.Pointer(pio.Tx(d.pio, pioStateMachine)))))
	ch.TRANS_COUNT.Set(uint32(len(buf)))
	ch.CTRL_TRIG.Set(
		rp.DMA_CH0_CTRL_TRIG_INCR_READ |
			rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_SIZE_HALFWORD<<rp.DMA_CH0_CTRL_TRIG_DATA_SIZE_Pos |
			pio.DreqTx(d.pio, pioStateMachine)<<rp.DMA_CH0_CTRL_TRIG_TREQ_SEL_Pos |
			rp.DMA_CH0_CTRL_TRIG_EN,
	)
}

func (d *Device) waitDMA() {
	ch := dma.ChannelAt(d.channel)
	for ch.CTRL_TRIG.Get()&rp.DMA_CH0_CTRL_TRIG_BUSY_Msk != 0 {
		runtime.Gosched()
	}
}

// Flush blocks until the PIO's output shift register has drained,
// matching ili9488's flushFIFO -- used between frames to guarantee
// the last symbol has actually left the pins before the caller
// reconfigures anything.
func (d *Device) Flush() {
	pio.WaitTxStall(d.pio, 0b1<<pioStateMachine)
}
