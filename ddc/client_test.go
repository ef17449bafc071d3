package ddc

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"periph.io/x/conn/v3/physic"
)

// fakeBus implements periph.io/x/conn/v3/i2c.Bus with a canned
// response, enough to exercise Client without real hardware.
type fakeBus struct {
	resp []byte
	err  error
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if b.err != nil {
		return b.err
	}
	n := copy(r, b.resp)
	if n < len(r) {
		return errors.New("short read")
	}
	return nil
}
func (b *fakeBus) SetSpeed(f physic.Frequency) error { return nil }
func (b *fakeBus) String() string                    { return "fakeBus" }
func (b *fakeBus) Halt() error                        { return nil }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientReadBlock(t *testing.T) {
	want := edidBuf(1, 3, 0b10000000, 0)
	want = append(want, make([]byte, blockSize-len(want))...)
	bus := &fakeBus{resp: want}
	c := New(bus)
	got, err := c.ReadBlock()
	if err != nil {
		t.Fatalf("ReadBlock: %v", err)
	}
	if len(got) != blockSize {
		t.Fatalf("got %d bytes, want %d", len(got), blockSize)
	}
}

func TestFetchReturnsNilOnBusError(t *testing.T) {
	bus := &fakeBus{err: errors.New("nack")}
	if e := Fetch(bus, discardLogger()); e != nil {
		t.Errorf("expected nil EDID on bus error, got %+v", e)
	}
}

func TestFetchReturnsNilOnBadSignature(t *testing.T) {
	bus := &fakeBus{resp: make([]byte, blockSize)}
	if e := Fetch(bus, discardLogger()); e != nil {
		t.Errorf("expected nil EDID on missing signature, got %+v", e)
	}
}

func TestFetchSucceeds(t *testing.T) {
	buf := edidBuf(1, 3, 0b10000000, 0)
	buf = append(buf, make([]byte, blockSize-len(buf))...)
	bus := &fakeBus{resp: buf}
	e := Fetch(bus, discardLogger())
	if e == nil {
		t.Fatal("expected a decoded EDID")
	}
	if e.ManufacturerID != "DEL" {
		t.Errorf("manufacturer = %q, want DEL", e.ManufacturerID)
	}
}
