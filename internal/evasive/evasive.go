// Package evasive models the decline control that jumps away from the
// pointer. Offsets are in CSS-style pixels; the view decides how a pixel
// maps onto its own grid.
package evasive

import "math/rand/v2"

const (
	// MobileBreakpointPx is the viewport width below which the device is
	// treated as touch-first.
	MobileBreakpointPx = 768

	// DesktopRangePx bounds each axis of a pointer-enter jump.
	DesktopRangePx = 100
	// MobileRangePx bounds each axis of a touch jump.
	MobileRangePx = 80
)

// Device is the input class inferred from the viewport width.
type Device int

const (
	Desktop Device = iota
	Mobile
)

func (d Device) String() string {
	if d == Mobile {
		return "mobile"
	}
	return "desktop"
}

// DeviceFor classifies a viewport width in pixels.
func DeviceFor(widthPx int) Device {
	if widthPx < MobileBreakpointPx {
		return Mobile
	}
	return Desktop
}

// Offset is a translation from the control's resting position.
type Offset struct {
	X float64
	Y float64
}

// Control is the state of one evasive button.
type Control struct {
	rng    *rand.Rand
	device Device
	offset Offset
	dodges int
}

// New creates a Control at rest, drawing jumps from src.
func New(src rand.Source) *Control {
	return &Control{rng: rand.New(src)}
}

// Resize reclassifies the device for a new viewport width.
func (c *Control) Resize(widthPx int) {
	c.device = DeviceFor(widthPx)
}

// Device returns the current device class.
func (c *Control) Device() Device {
	return c.device
}

// Offset returns the current translation.
func (c *Control) Offset() Offset {
	return c.offset
}

// Dodges returns how many times the control has moved.
func (c *Control) Dodges() int {
	return c.dodges
}

// PointerEnter moves the control within ±DesktopRangePx.
func (c *Control) PointerEnter() Offset {
	return c.jump(DesktopRangePx)
}

// TouchStart moves the control within ±MobileRangePx.
func (c *Control) TouchStart() Offset {
	return c.jump(MobileRangePx)
}

// Click reports whether an activation counts as a decline. On mobile the
// control relocates instead and the activation is swallowed.
func (c *Control) Click() bool {
	if c.device == Mobile {
		c.TouchStart()
		return false
	}
	return true
}

func (c *Control) jump(rangePx float64) Offset {
	c.offset = Offset{
		X: c.rng.Float64()*2*rangePx - rangePx,
		Y: c.rng.Float64()*2*rangePx - rangePx,
	}
	c.dodges++
	return c.offset
}
