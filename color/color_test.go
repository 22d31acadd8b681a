package color

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct {
		name       string
		r, g, b, a int
		expected   Color
	}{
		{name: "teal", r: 83, g: 203, b: 186, a: 255, expected: 0x53cbbaff},
		{name: "transparent black", expected: 0},
		{name: "white", r: 255, g: 255, b: 255, a: 255, expected: 0xffffffff},
		{name: "alpha only", a: 0x80, expected: 0x00000080},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := New(tc.r, tc.g, tc.b, tc.a)
			assert.Equal(t, tc.expected, c)
			assert.Equal(t, uint32(tc.expected), ToNumber(c))
		})
	}
}

func TestFrom(t *testing.T) {
	c := From(0x599effff)
	assert.Equal(t, [4]uint8{0x59, 0x9e, 0xff, 0xff}, c.Channels())
	assert.Equal(t, uint32(0x599effff), ToNumber(c))
}

func TestChannelAccessors(t *testing.T) {
	c := New(1, 2, 3, 4)
	assert.Equal(t, uint8(1), Red(c))
	assert.Equal(t, uint8(2), Green(c))
	assert.Equal(t, uint8(3), Blue(c))
	assert.Equal(t, uint8(4), Alpha(c))
	assert.Equal(t, uint8(1), c.R())
	assert.Equal(t, uint8(2), c.G())
	assert.Equal(t, uint8(3), c.B())
	assert.Equal(t, uint8(4), c.A())
}

func TestSetters(t *testing.T) {
	c := New(1, 2, 3, 4)
	assert.Equal(t, New(9, 2, 3, 4), SetRed(c, 9))
	assert.Equal(t, New(1, 9, 3, 4), SetGreen(c, 9))
	assert.Equal(t, New(1, 2, 9, 4), SetBlue(c, 9))
	assert.Equal(t, New(1, 2, 3, 9), SetAlpha(c, 9))

	// only the low byte of the value is used
	assert.Equal(t, New(1, 2, 3, 0x2c), SetAlpha(c, 0x12c))
	assert.Equal(t, New(0xff, 2, 3, 4), SetRed(c, -1))
}

func TestPackTruncates(t *testing.T) {
	for _, tc := range []struct {
		name       string
		r, g, b, a float64
		expected   [4]uint8
	}{
		{name: "fractions truncate", r: 12.7, g: 0.2, b: 254.99, a: 255, expected: [4]uint8{12, 0, 254, 255}},
		{name: "nan is zero", r: math.NaN(), g: 1, b: 2, a: 255, expected: [4]uint8{0, 1, 2, 255}},
		{name: "infinity is zero", r: 3, g: math.Inf(1), b: math.Inf(-1), a: 255, expected: [4]uint8{3, 0, 0, 255}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, pack(tc.r, tc.g, tc.b, tc.a).Channels())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "#53cbbaff", New(83, 203, 186, 255).String())
}
