// Package gpio drives the differential pin pairs that carry the three
// TMDS data lanes and the TMDS clock lane of a DVI link.
//
// A [Pair] owns two output pins forming one lane: a positive pin and its
// complementary negative pin. Real differential TMDS runs over an LVDS-
// style pair, but on an MCU without native differential outputs the pair
// is driven as two ordinary GPIOs held at opposite levels.
package gpio

import "periph.io/x/conn/v3/gpio"

// Pair is one differential lane: a positive pin and a negative pin that
// the driver always holds at complementary levels.
type Pair struct {
	pos, neg gpio.PinOut
	level    bool
}

// NewPair returns a Pair driving pos high and neg low whenever the pair
// carries a logical 1, and the reverse for a logical 0.
func NewPair(pos, neg gpio.PinOut) *Pair {
	return &Pair{pos: pos, neg: neg}
}

// Set drives the positive pin to b and the negative pin to !b.
func (p *Pair) Set(b bool) {
	p.level = b
	// FastOut skips periph's per-call logging and is what every
	// timing-sensitive GPIO write in the pack (lcd.go's LCD_DC.FastOut)
	// uses on the hot path.
	setLevel(p.pos, b)
	setLevel(p.neg, !b)
}

// Toggle inverts both pins. It is the primitive used to drive the clock
// lane, which runs as a half-rate square wave relative to the data lanes:
// see [dvi.Emitter], which toggles the clock pair once at the start of
// each 10-bit symbol and once at its midpoint.
func (p *Pair) Toggle() {
	p.Set(!p.level)
}

// Level reports the most recent logical level written to the positive
// pin.
func (p *Pair) Level() bool {
	return p.level
}

func setLevel(pin gpio.PinOut, b bool) {
	if fo, ok := pin.(interface{ FastOut(l gpio.Level) }); ok {
		fo.FastOut(gpio.Level(b))
		return
	}
	// Out returns an error on some periph backends (e.g. a pin that
	// isn't configured as output yet); the pair is driven at a rate
	// where a failed write simply means the wrong steady-state level
	// persists for one more symbol, so the error is not actionable and
	// is dropped, matching periph's own FastOut contract (no error
	// return at all).
	_ = pin.Out(gpio.Level(b))
}

// Bus groups the four lanes of a DVI single link: three data lanes
// (red, green, blue) and the shared clock lane.
type Bus struct {
	Red, Green, Blue *Pair
	Clock            *Pair
}

// Lane returns the data lane for channel index 0 (red), 1 (green) or
// 2 (blue).
func (b *Bus) Lane(i int) *Pair {
	switch i {
	case 0:
		return b.Red
	case 1:
		return b.Green
	default:
		return b.Blue
	}
}
