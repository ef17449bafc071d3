package ddc

import (
	"fmt"
	"log/slog"

	"periph.io/x/conn/v3/i2c"
)

// Address is the fixed DDC/EDID I2C slave address (VESA DDC2 spec).
const Address = 0x50

// blockSize is how many bytes are read per request. Monitors may
// report just one 128-byte EDID block or, for extension blocks,
// multiples of it; spec.md §4.5 only requires the base block.
const blockSize = 128

// Client reads EDID over an I2C bus's Display Data Channel, grounded
// on driver/ft6x36.ReadTouchPoint's "write the sub-address, then
// restart-read the response" shape, generalized from machine.I2C to
// periph.io/x/conn/v3/i2c.Bus for the Linux development target.
type Client struct {
	dev i2c.Dev
}

// New wraps bus as a DDC client at the fixed EDID address.
func New(bus i2c.Bus) *Client {
	return &Client{dev: i2c.Dev{Bus: bus, Addr: Address}}
}

// ReadBlock reads one 128-byte EDID block starting at sub-address 0.
func (c *Client) ReadBlock() ([]byte, error) {
	buf := make([]byte, blockSize)
	if err := c.dev.Tx([]byte{0x00}, buf); err != nil {
		return nil, fmt.Errorf("ddc: I2C transaction failed: %w", err)
	}
	return buf, nil
}

// Fetch reads and parses one EDID block. Per spec.md §4.5/§7, DDC is
// advisory: any failure (bus timeout, missing signature, unsupported
// version) is logged and returned as a nil EDID with no error,
// letting the caller fall through to the compiled-in timing profile
// without aborting startup.
func Fetch(bus i2c.Bus, log *slog.Logger) *EDID {
	c := New(bus)
	raw, err := c.ReadBlock()
	if err != nil {
		log.Warn("ddc: read failed, continuing without EDID", "error", err)
		return nil
	}
	e, err := Decode(raw)
	if err != nil {
		log.Warn("ddc: decode failed, continuing without EDID", "error", err)
		return nil
	}
	log.Info("ddc: EDID decoded",
		"manufacturer", e.ManufacturerID,
		"product_code", e.ProductCode,
		"serial", e.Serial,
		"version", fmt.Sprintf("%d.%d", e.VersionMajor, e.VersionMinor),
		"digital", e.Digital,
	)
	return e
}
