package main

import (
	"periph.io/x/conn/v3/i2c"
	"portgl.dev/dvi"
)

// platform abstracts the one thing that genuinely differs between the
// TinyGo/RP2350 production target and the Linux/periph.io bring-up
// target (spec.md §1's "[ADD] Target platforms"): how DVI symbols
// reach real pins, and how (or whether) an I2C bus is available for
// the EDID diagnostic. Both implementations drive the same
// dvi.TimingProfile and dvi.PixelSource.
type platform interface {
	// I2C returns the bus used for the EDID read, or nil if this
	// platform has none wired up (spec.md §7: DDC is advisory, so a
	// nil bus is not an error).
	I2C() i2c.Bus

	// Stream drives profile's symbol stream out over this platform's
	// pins, pulling pixels from src, forever.
	Stream(profile dvi.TimingProfile, src dvi.PixelSource) error
}

// fail realizes spec.md §7's "abort with a logged message during
// initialisation": os.Exit on a hosted platform (linux, dummy), a
// fault blink loop on bare metal (tinygo) -- each platform file
// defines its own, mirroring the teacher's platform_rpi.go/
// platform_dummy.go debug-vs-production split.
var fail func()
