package gpio

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// fakePin is a minimal periph.io/x/conn/v3/gpio.PinOut, recording every
// level it was driven to. Modeled on the fake pins used to unit test
// GPIO-facing drivers without hardware (the pack's own GPIO drivers,
// e.g. wshat.Open, only ever depend on the periph.io/x/conn/v3/gpio
// interfaces, never a concrete board package, for exactly this reason).
type fakePin struct {
	name  string
	level gpio.Level
}

func (f *fakePin) String() string                                      { return f.name }
func (f *fakePin) Halt() error                                         { return nil }
func (f *fakePin) Name() string                                        { return f.name }
func (f *fakePin) Number() int                                         { return 0 }
func (f *fakePin) Function() string                                    { return "Out" }
func (f *fakePin) Out(l gpio.Level) error                               { f.level = l; return nil }
func (f *fakePin) PWM(gpio.Duty, physic.Frequency) error                { return nil }

func TestPairComplementary(t *testing.T) {
	pos, neg := &fakePin{name: "pos"}, &fakePin{name: "neg"}
	p := NewPair(pos, neg)

	for _, b := range []bool{true, false, true} {
		p.Set(b)
		if pos.level != gpio.Level(b) {
			t.Fatalf("Set(%v): positive pin = %v, want %v", b, pos.level, b)
		}
		if neg.level != gpio.Level(!b) {
			t.Fatalf("Set(%v): negative pin = %v, want %v", b, neg.level, !b)
		}
		if p.Level() != b {
			t.Fatalf("Level() = %v, want %v", p.Level(), b)
		}
	}
}

func TestPairToggle(t *testing.T) {
	pos, neg := &fakePin{name: "pos"}, &fakePin{name: "neg"}
	p := NewPair(pos, neg)
	p.Set(false)

	for i, want := range []bool{true, false, true, false} {
		p.Toggle()
		if p.Level() != want {
			t.Fatalf("toggle %d: Level() = %v, want %v", i, p.Level(), want)
		}
		if pos.level != gpio.Level(want) || neg.level != gpio.Level(!want) {
			t.Fatalf("toggle %d: pins not complementary: pos=%v neg=%v", i, pos.level, neg.level)
		}
	}
}

func TestBusLane(t *testing.T) {
	r, g, b := NewPair(&fakePin{}, &fakePin{}), NewPair(&fakePin{}, &fakePin{}), NewPair(&fakePin{}, &fakePin{})
	bus := &Bus{Red: r, Green: g, Blue: b, Clock: NewPair(&fakePin{}, &fakePin{})}
	if bus.Lane(0) != r || bus.Lane(1) != g || bus.Lane(2) != b {
		t.Fatal("Lane did not return the expected pair for one of the three data lanes")
	}
}
