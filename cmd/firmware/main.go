// Command firmware renders a ray-cast scene and streams it out over a
// bit-banged DVI link, reading the attached monitor's EDID block over
// I2C as a startup diagnostic (spec.md §6's startup procedure).
//
// It builds on one of two hardware platforms sharing the same
// tmds/dvi/raster/ddc core (spec.md §1 "[ADD] Target platforms"): a
// TinyGo build for the RP2350 production target, and a
// Linux/periph.io build used as a development and bring-up target. A
// third, hardware-free platform lets the program build (but not
// usefully run) on any other host, matching the teacher's own
// platform_dummy.go fallback.
package main

import (
	"log/slog"
	"os"

	"portgl.dev/ddc"
	"portgl.dev/dvi"
	"portgl.dev/render"
)

// dviProfile is the timing profile driven out over the link. VESA
// 640x480p60 is the only profile in scope (spec.md §3).
var dviProfile = dvi.VESA640x480p60

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(log); err != nil {
		log.Error("firmware: fatal", "err", err)
		fail()
	}
}

func run(log *slog.Logger) error {
	log.Info("firmware: starting")

	p, err := newPlatform(log)
	if err != nil {
		return err
	}

	if bus := p.I2C(); bus != nil {
		if e := ddc.Fetch(bus, log); e != nil {
			log.Info("firmware: edid parsed",
				"manufacturer", e.ManufacturerID,
				"product", e.ProductCode,
				"serial", e.Serial,
				"year", e.ManufactureYear,
				"digital", e.Digital,
			)
		}
	} else {
		log.Info("firmware: no I2C bus available, skipping EDID read")
	}

	cam, m, err := buildScene()
	if err != nil {
		return err
	}

	// The scene is static, so the frame is rendered once and streamed
	// repeatedly -- spec.md §1 scopes animation out ("a single static
	// frame, repeated").
	frame := render.Frame(cam, m, identityTransform, dviProfile.HActive, dviProfile.VActive)
	src := dvi.PixelSourceFunc(func(x, y int) (r, g, b byte) {
		px := frame.Pix[y*frame.W+x]
		return px.R, px.G, px.B
	})

	log.Info("firmware: streaming")
	return p.Stream(dviProfile, src)
}
