// Package color packs RGBA colors into a single 32 bit word and parses,
// formats and derives them from CSS color strings.
package color

import (
	"math"

	"github.com/kpfaulkner/csscolor/bitpack"
)

// Color holds 8 bit R, G, B and A channels. R occupies the most significant
// byte, A the least significant one.
type Color uint32

const (
	OffsetR = 24
	OffsetG = 16
	OffsetB = 8
	OffsetA = 0
)

// New packs the channels, each expected in [0, 255]. Values outside that
// range are not rejected; they spill into neighbouring channels exactly as
// the shift and add would.
func New(r int, g int, b int, a int) Color {
	return Color(uint32(r)<<OffsetR +
		uint32(g)<<OffsetG +
		uint32(b)<<OffsetB +
		uint32(a)<<OffsetA)
}

// From creates a color from a number such as 0x599effff.
func From(n uint32) Color {
	return New(
		int(bitpack.Get(n, OffsetR)),
		int(bitpack.Get(n, OffsetG)),
		int(bitpack.Get(n, OffsetB)),
		int(bitpack.Get(n, OffsetA)))
}

// ToNumber returns the unsigned numeric form of c.
func ToNumber(c Color) uint32 {
	return uint32(c)
}

func Red(c Color) uint8   { return bitpack.Get(uint32(c), OffsetR) }
func Green(c Color) uint8 { return bitpack.Get(uint32(c), OffsetG) }
func Blue(c Color) uint8  { return bitpack.Get(uint32(c), OffsetB) }
func Alpha(c Color) uint8 { return bitpack.Get(uint32(c), OffsetA) }

func SetRed(c Color, value int) Color   { return Color(bitpack.Set(uint32(c), OffsetR, uint32(value))) }
func SetGreen(c Color, value int) Color { return Color(bitpack.Set(uint32(c), OffsetG, uint32(value))) }
func SetBlue(c Color, value int) Color  { return Color(bitpack.Set(uint32(c), OffsetB, uint32(value))) }
func SetAlpha(c Color, value int) Color { return Color(bitpack.Set(uint32(c), OffsetA, uint32(value))) }

func (c Color) R() uint8 { return Red(c) }
func (c Color) G() uint8 { return Green(c) }
func (c Color) B() uint8 { return Blue(c) }
func (c Color) A() uint8 { return Alpha(c) }

// Channels returns R, G, B, A in that order.
func (c Color) Channels() [4]uint8 {
	return [4]uint8{Red(c), Green(c), Blue(c), Alpha(c)}
}

func (c Color) String() string {
	return FormatHEXA(c)
}

// pack is New for fractional channels: each value is truncated towards zero
// and wrapped to 32 bits, NaN and infinities becoming 0.
func pack(r float64, g float64, b float64, a float64) Color {
	return New(truncate(r), truncate(g), truncate(b), truncate(a))
}

func truncate(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	t := math.Mod(math.Trunc(v), 1<<32)
	return int(int64(t))
}
