//go:build linux

// Package rawgpio implements C1 (spec.md §4.1's pin-pair driver)
// directly against the BCM283x GPIO peripheral's memory-mapped
// registers, bypassing periph.io entirely. It is an alternative to
// wrapping gpio.Pair around periph.io/x/host/v3/bcm283x pins --
// grounded on lcd/lcd_linux.go's mmap-a-physical-register-window
// technique (there: the DRM dumb-buffer framebuffer; here: /dev/mem's
// GPIO register window), generalized from syscall.Mmap to
// golang.org/x/sys/unix.Mmap since rawgpio has no other reason to pull
// in cgo the way the DRM ioctl path does.
package rawgpio

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// gpioBase is the BCM2835 (Pi Zero/1) physical address of the GPIO
// peripheral's register window. Later SoCs (BCM2837, BCM2711) move
// this base; a production build would detect the model (e.g. from
// /proc/cpuinfo, the way the teacher's own platform_rpi.go reads
// /proc/cmdline) and select it at Open time. Out of scope here: this
// driver exists to demonstrate the direct-register technique, not to
// support every Pi model.
const gpioBase = 0x20200000

const pageSize = 4096

// Register word indices (each word is 4 bytes), BCM2835 ARM Peripherals
// §6.1's GPIO register map.
const (
	regGPFSEL0 = 0
	regGPSET0  = 7
	regGPCLR0  = 10
)

// Controller owns the mmap'd GPIO register window for one BCM283x SoC.
type Controller struct {
	regs []uint32
	mem  *os.File
}

// Open mmaps the BCM283x GPIO registers through /dev/mem. It must run
// with CAP_SYS_RAWIO (typically as root), the same privilege level
// lcd_linux.go's DRM ioctl path requires of /dev/dri/card0.
func Open() (*Controller, error) {
	mem, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("rawgpio: %w", err)
	}
	b, err := unix.Mmap(int(mem.Fd()), gpioBase, pageSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		mem.Close()
		return nil, fmt.Errorf("rawgpio: mmap: %w", err)
	}
	regs := unsafe.Slice((*uint32)(unsafe.Pointer(unsafe.SliceData(b))), len(b)/4)
	return &Controller{regs: regs, mem: mem}, nil
}

// Close unmaps the register window and closes /dev/mem.
func (c *Controller) Close() error {
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(c.regs))), len(c.regs)*4)
	if err := unix.Munmap(b); err != nil {
		c.mem.Close()
		return fmt.Errorf("rawgpio: munmap: %w", err)
	}
	return c.mem.Close()
}

// Pin configures BCM283x GPIO number n as an output and returns a
// handle for driving it.
func (c *Controller) Pin(n int) *Pin {
	fsel := regGPFSEL0 + n/10
	shift := uint(n%10) * 3
	const outputFunction = 0b001
	c.regs[fsel] = c.regs[fsel]&^(0b111<<shift) | (outputFunction << shift)
	return &Pin{c: c, n: n}
}

// Pin is a single BCM283x GPIO line, driven through the SoC's
// set/clear register pair: writing a 1 bit to GPSETn or GPCLRn changes
// only that pin, with no read-modify-write race against concurrent
// writes to other pins in the same word.
type Pin struct {
	c *Controller
	n int
}

func (p *Pin) String() string   { return fmt.Sprintf("GPIO%d", p.n) }
func (p *Pin) Halt() error      { return nil }
func (p *Pin) Name() string     { return p.String() }
func (p *Pin) Number() int      { return p.n }
func (p *Pin) Function() string { return "Out" }

func (p *Pin) Out(l gpio.Level) error {
	word, bit := p.n/32, uint32(1)<<uint(p.n%32)
	if l {
		p.c.regs[regGPSET0+word] = bit
	} else {
		p.c.regs[regGPCLR0+word] = bit
	}
	return nil
}

func (p *Pin) PWM(gpio.Duty, physic.Frequency) error {
	return fmt.Errorf("rawgpio: PWM not supported")
}
