// Package dvi implements the DVI frame state machine (spec.md §4.3):
// it sequences the horizontal/vertical active-video, front-porch,
// sync, and back-porch regions of a scanline and a frame, deciding for
// every symbol slot whether to encode a pixel or a blanking control
// code on each of the three TMDS data lanes.
//
// [StateMachine] holds no hardware dependency at all, so the frame
// timing and symbol selection can be exercised on a host with no GPIO
// (spec.md §8: "encoder and state machine can be tested on a host with
// no hardware"). [Emitter] adds the bit-serial pin driving on top of
// it, grounded on the teacher's layering of a pure stepper/interpolator
// (stepper.Driver) underneath a hardware-facing Run loop.
package dvi

import (
	"fmt"

	"portgl.dev/gpio"
	"portgl.dev/tmds"
)

// TimingProfile parameterises scanline and frame geometry, per
// spec.md §3. All counts are in pixel clocks (horizontal) or scanlines
// (vertical).
type TimingProfile struct {
	HActive, HFront, HSync, HBack int
	VActive, VFront, VSync, VBack int

	// HSyncPolarity and VSyncPolarity are each true if the
	// corresponding sync pulse is active-low: the control symbol
	// carries the raw sync flag XOR'd with the polarity, so false sends
	// the pulse as a 1 and true sends it as a 0. VESA640x480p60, the
	// reference profile, is active-low on both (true, true).
	HSyncPolarity, VSyncPolarity bool

	PixelClockHz uint32
}

// HTotal returns the total pixel clocks per scanline.
func (p TimingProfile) HTotal() int {
	return p.HActive + p.HFront + p.HSync + p.HBack
}

// VTotal returns the total scanlines per frame.
func (p TimingProfile) VTotal() int {
	return p.VActive + p.VFront + p.VSync + p.VBack
}

// Validate reports a configuration error (spec.md §7) if any timing
// field is non-positive, or the pixel clock is zero.
func (p TimingProfile) Validate() error {
	fields := map[string]int{
		"h_active": p.HActive, "h_front": p.HFront, "h_sync": p.HSync, "h_back": p.HBack,
		"v_active": p.VActive, "v_front": p.VFront, "v_sync": p.VSync, "v_back": p.VBack,
	}
	for name, v := range fields {
		if v <= 0 {
			return fmt.Errorf("dvi: configuration error: %s must be positive, got %d", name, v)
		}
	}
	if p.PixelClockHz == 0 {
		return fmt.Errorf("dvi: configuration error: pixel_clock_hz must be non-zero")
	}
	return nil
}

// VESA640x480p60 is the reference 640x480@60Hz profile from spec.md §3,
// using VESA-conformant (not the legacy degenerate) blanking numbers,
// per spec.md's recommendation ("implementers SHOULD prefer
// VESA-conformant numbers").
var VESA640x480p60 = TimingProfile{
	HActive: 640, HFront: 16, HSync: 96, HBack: 48,
	VActive: 480, VFront: 10, VSync: 2, VBack: 33,
	HSyncPolarity: true, VSyncPolarity: true,
	PixelClockHz: 25_175_000,
}

// PixelSource produces the 24-bit colour at raster position (x,y),
// matching spec.md §1's "3-byte pixel producer" interface: the core
// consumes this interface without caring how the colour was computed
// (a ray-cast render, a debug test pattern, or a pre-filled line
// buffer per spec.md §4.3's pacing strategies).
type PixelSource interface {
	Pixel(x, y int) (r, g, b byte)
}

// PixelSourceFunc adapts a function to a PixelSource.
type PixelSourceFunc func(x, y int) (r, g, b byte)

func (f PixelSourceFunc) Pixel(x, y int) (r, g, b byte) { return f(x, y) }

// Region describes the scanline/frame classification of one symbol
// slot, returned from [StateMachine.Tick] for diagnostics and tests.
type Region struct {
	X, Y         int
	Active       bool // active video: in both h-active and v-active
	HSyncPulse   bool // raw (pre-polarity) horizontal sync region
	VSyncPulse   bool // raw (pre-polarity) vertical sync region
}

// StateMachine sequences scanline/frame timing and produces, for
// every symbol slot, the 10-bit TMDS symbol for each of the three data
// lanes: spec.md §4.3's per-symbol contract.
type StateMachine struct {
	Profile TimingProfile
	x, y    int
	lanes   [3]tmds.Lane
}

// NewStateMachine validates p and returns a StateMachine positioned at
// the start of a frame (x=0, y=0).
func NewStateMachine(p TimingProfile) (*StateMachine, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &StateMachine{Profile: p}, nil
}

// Pos reports the state machine's current scan position.
func (s *StateMachine) Pos() (x, y int) { return s.x, s.y }

func (s *StateMachine) classify() (inHActive, inVActive, hSyncOn, vSyncOn bool) {
	p := s.Profile
	inHActive = s.x < p.HActive
	inVActive = s.y < p.VActive
	hSyncOn = s.x >= p.HActive+p.HFront && s.x < p.HActive+p.HFront+p.HSync
	vSyncOn = s.y >= p.VActive+p.VFront && s.y < p.VActive+p.VFront+p.VSync
	return
}

// Tick computes the three data-lane symbols for the current scan
// position, advances to the next position, and reports whether this
// tick was the final symbol of a frame (so the next call begins a new
// frame at x=0, y=0).
//
// During active video it pulls one pixel from src and encodes each
// channel through that lane's TMDS encoder (spec.md §4.3 step 1).
// During blanking it emits the control symbol for the current sync
// state, identical across all three lanes (step 2). Driving the clock
// lane (step 3) is left to [Emitter], since StateMachine has no GPIO
// dependency.
func (s *StateMachine) Tick(src PixelSource) (r, g, b uint16, region Region, frameDone bool) {
	inHA, inVA, hS, vS := s.classify()
	region = Region{X: s.x, Y: s.y, Active: inHA && inVA, HSyncPulse: hS, VSyncPulse: vS}

	if region.Active {
		pr, pg, pb := src.Pixel(s.x, s.y)
		r = s.lanes[0].Encode(pr)
		g = s.lanes[1].Encode(pg)
		b = s.lanes[2].Encode(pb)
	} else {
		c1 := vS != s.Profile.VSyncPolarity // VSYNC active level, polarity applied
		c0 := hS != s.Profile.HSyncPolarity // HSYNC active level, polarity applied
		sym := tmds.ControlSymbol(c1, c0)
		s.lanes[0].D, s.lanes[1].D, s.lanes[2].D = 0, 0, 0
		r, g, b = sym, sym, sym
	}

	s.x++
	if s.x == s.Profile.HTotal() {
		s.x = 0
		s.y++
		if s.y == s.Profile.VTotal() {
			s.y = 0
			frameDone = true
		}
	}
	return
}

// Emitter drives a StateMachine's symbols out over a [gpio.Bus],
// bit-serially, with the clock lane toggled at the start and midpoint
// of every symbol (spec.md §4.1/§4.3).
type Emitter struct {
	*StateMachine
	Bus *gpio.Bus
}

// NewEmitter validates p and returns an Emitter bound to bus.
func NewEmitter(p TimingProfile, bus *gpio.Bus) (*Emitter, error) {
	sm, err := NewStateMachine(p)
	if err != nil {
		return nil, err
	}
	return &Emitter{StateMachine: sm, Bus: bus}, nil
}

// EmitFrame drives exactly one full frame's worth of symbols (spec.md
// §8 property 5: h_total*v_total symbol slots) out over the bus,
// pulling pixels from src for every active-video slot.
func (e *Emitter) EmitFrame(src PixelSource) {
	for {
		r, g, b, _, done := e.Tick(src)
		e.driveSymbol(r, g, b)
		if done {
			return
		}
	}
}

// driveSymbol shifts one 10-bit symbol out on all three data lanes,
// LSB first, toggling the clock lane at bit index 0 and 5 so it
// completes one full square-wave cycle per symbol (spec.md §4.1).
func (e *Emitter) driveSymbol(r, g, b uint16) {
	for k := 0; k < 10; k++ {
		if k == 0 || k == 5 {
			e.Bus.Clock.Toggle()
		}
		e.Bus.Red.Set(bitAt(r, k))
		e.Bus.Green.Set(bitAt(g, k))
		e.Bus.Blue.Set(bitAt(b, k))
	}
}

func bitAt(v uint16, k int) bool {
	return v&(1<<uint(k)) != 0
}
