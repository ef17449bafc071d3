// Package ddc implements the Display Data Channel client (spec.md
// §4.5, component C5): reading and parsing a monitor's EDID over I²C
// at startup for diagnostic reporting.
//
// Grounded on original_source/src/display/edid.rs, restructured from
// a sequence of logging statements into a parsed EDID value plus a
// separate logging step (cmd/firmware logs the result with
// log/slog), and on other_examples' EDID decoder
// (2bff9384_mlofjard-fq__format-edid-edid.go.go) for the established-
// timings bit layout and field naming conventions.
package ddc

import (
	"bytes"
	"fmt"
)

// signature is the fixed 8-byte EDID header (VESA E-EDID §3.1).
var signature = [8]byte{0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x00}

// EDID holds the fields of an EDID block that spec.md §4.5 requires
// the client to report: manufacturer/product identity, manufacture
// date, declared version, and the digital/analog input description.
type EDID struct {
	ManufacturerID string // three 5-bit letters, e.g. "DEL"
	ProductCode    uint16
	Serial         uint32
	ManufactureWeek byte
	ManufactureYear int // calendar year, i.e. 1990+buf[17]

	VersionMajor, VersionMinor byte

	Digital bool
	// BitDepth and VideoInterface are only populated for EDID 1.4
	// digital inputs (1.3 doesn't encode them).
	BitDepth      string
	VideoInterface string

	DisplayType string

	// Supports640x480p60 reflects the EDID 1.3 established-timings
	// byte; EDID 1.4 doesn't carry this field in the same place and
	// leaves it false.
	Supports640x480p60 bool

	PreferredTimingInDTD1 bool
}

// Decode locates the EDID signature within buf and parses the block
// that follows it. It handles versions 1.3 and 1.4 (spec.md §4.5);
// any other declared version is reported as an error, matching the
// original reader's "Unimplemented EDID version".
func Decode(buf []byte) (*EDID, error) {
	offset := -1
	for i := 0; i+8 <= len(buf); i++ {
		if bytes.Equal(buf[i:i+8], signature[:]) {
			offset = i
			break
		}
	}
	if offset < 0 {
		return nil, fmt.Errorf("ddc: EDID signature not found")
	}
	b := buf[offset:]
	if len(b) < 0x24+1 {
		return nil, fmt.Errorf("ddc: EDID block truncated (%d bytes after signature)", len(b))
	}

	e := &EDID{
		ManufacturerID:  decodeManufacturer(uint16(b[8])<<8 | uint16(b[9])),
		ProductCode:     uint16(b[11])<<8 | uint16(b[10]),
		Serial:          uint32(b[15])<<24 | uint32(b[14])<<16 | uint32(b[13])<<8 | uint32(b[12]),
		ManufactureWeek: b[16],
		ManufactureYear: 1990 + int(b[17]),
		VersionMajor:    b[18],
		VersionMinor:    b[19],
	}

	switch {
	case e.VersionMajor == 1 && e.VersionMinor == 3:
		decodeDisplayParams13(b, e)
	case e.VersionMajor == 1 && e.VersionMinor == 4:
		decodeDisplayParams14(b, e)
	default:
		return nil, fmt.Errorf("ddc: unimplemented EDID version %d.%d", e.VersionMajor, e.VersionMinor)
	}
	return e, nil
}

// decodeManufacturer reads the 3 5-bit letters packed into the
// manufacturer ID word (bit 15 reserved-zero, then three 5-bit
// fields, 'A'=1).
func decodeManufacturer(mf uint16) string {
	letter := func(v uint16) byte {
		return 'A' + byte(v&0b11111) - 1
	}
	return string([]byte{
		letter(mf >> 10),
		letter(mf >> 5),
		letter(mf),
	})
}

func decodeDisplayParams13(b []byte, e *EDID) {
	decodeInputByte(b, e)
	e.Supports640x480p60 = b[0x23]&0b100000 != 0
	e.PreferredTimingInDTD1 = b[24]&0b10 != 0
}

func decodeDisplayParams14(b []byte, e *EDID) {
	decodeInputByte(b, e)
	if e.Digital {
		switch (b[20] >> 4) & 0b111 {
		case 0b001:
			e.BitDepth = "6-bit"
		case 0b011:
			e.BitDepth = "10-bit"
		case 0b100:
			e.BitDepth = "12-bit"
		case 0b101:
			e.BitDepth = "14-bit"
		case 0b110:
			e.BitDepth = "16-bit"
		default:
			e.BitDepth = "undefined"
		}
		switch b[20] & 0b1111 {
		case 0b0001:
			e.VideoInterface = "DVI"
		case 0b0010:
			e.VideoInterface = "HDMIa"
		case 0b0011:
			e.VideoInterface = "HDMIb"
		case 0b0100:
			e.VideoInterface = "MDDI"
		case 0b0101:
			e.VideoInterface = "DisplayPort"
		default:
			e.VideoInterface = "undefined"
		}
	}
	e.PreferredTimingInDTD1 = b[24]&0b10 != 0
}

// decodeInputByte parses byte 20 (basic display parameters, input
// definition) common to both supported versions, plus the shared
// display-type bits of byte 24.
func decodeInputByte(b []byte, e *EDID) {
	e.Digital = b[20]&0b10000000 != 0
	switch (b[24] & 0b11000) >> 3 {
	case 0b00:
		if e.Digital {
			e.DisplayType = "RGB 4:4:4"
		} else {
			e.DisplayType = "monochrome or grayscale"
		}
	case 0b01:
		if e.Digital {
			e.DisplayType = "RGB 4:4:4 + YCrCb 4:4:4"
		} else {
			e.DisplayType = "RGB color"
		}
	case 0b10:
		if e.Digital {
			e.DisplayType = "RGB 4:4:4 + YCrCb 4:2:2"
		} else {
			e.DisplayType = "non-RGB color"
		}
	default:
		if e.Digital {
			e.DisplayType = "RGB 4:4:4 + YCrCb 4:4:4 + YCrCb 4:2:2"
		} else {
			e.DisplayType = "undefined"
		}
	}
}
