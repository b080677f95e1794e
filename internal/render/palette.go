package render

import "image/color"

// RGB is one display color. The zero value is treated as "unset" by the
// canvas so blank cells never emit styling.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	const hex = "0123456789abcdef"
	b := [7]byte{'#',
		hex[c.R>>4], hex[c.R&0xf],
		hex[c.G>>4], hex[c.G&0xf],
		hex[c.B>>4], hex[c.B&0xf],
	}
	return string(b[:])
}

func (c RGB) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Palette is a ramp of color stops interpolated across the unit
// interval. Distance coloring reads it at the scale-normalized value.
type Palette struct {
	Name  string
	Stops []RGB
}

// At returns the ramp color for t in [0, 1]; t is clamped.
func (p Palette) At(t float64) RGB {
	if len(p.Stops) == 0 {
		return RGB{0xff, 0xff, 0xff}
	}
	if len(p.Stops) == 1 || t <= 0 {
		return p.Stops[0]
	}
	if t >= 1 {
		return p.Stops[len(p.Stops)-1]
	}

	seg := t * float64(len(p.Stops)-1)
	i := int(seg)
	f := seg - float64(i)
	a, b := p.Stops[i], p.Stops[i+1]
	return RGB{
		R: lerpByte(a.R, b.R, f),
		G: lerpByte(a.G, b.G, f),
		B: lerpByte(a.B, b.B, f),
	}
}

func lerpByte(a, b uint8, f float64) uint8 {
	return uint8(float64(a) + f*(float64(b)-float64(a)) + 0.5)
}

var (
	Viridis = Palette{Name: "viridis", Stops: []RGB{
		{0x44, 0x01, 0x54},
		{0x41, 0x44, 0x87},
		{0x2a, 0x78, 0x8e},
		{0x22, 0xa8, 0x84},
		{0x7a, 0xd1, 0x51},
		{0xfd, 0xe7, 0x25},
	}}

	Plasma = Palette{Name: "plasma", Stops: []RGB{
		{0x0d, 0x08, 0x87},
		{0x6a, 0x00, 0xa8},
		{0xb1, 0x2a, 0x90},
		{0xe1, 0x64, 0x62},
		{0xfc, 0xa6, 0x36},
		{0xf0, 0xf9, 0x21},
	}}

	Mono = Palette{Name: "mono", Stops: []RGB{
		{0x30, 0x30, 0x30},
		{0xff, 0xff, 0xff},
	}}
)

// PaletteByName resolves a configured palette name, defaulting to
// viridis for anything unknown.
func PaletteByName(name string) Palette {
	switch name {
	case "plasma":
		return Plasma
	case "mono":
		return Mono
	default:
		return Viridis
	}
}
