package color

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kpfaulkner/csscolor/util"
)

// hexTable maps a byte to its two digit lowercase hexadecimal form.
var hexTable = func() [256]string {
	var table [256]string
	for i := range table {
		table[i] = fmt.Sprintf("%02x", i)
	}
	return table
}()

type RGBA struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// HSLA has H in degrees [0, 360), S and L as percentages and A as a fraction.
type HSLA struct {
	H float64
	S float64
	L float64
	A float64
}

// HWBA has H in degrees [0, 360), W and B as fractions in [0, 1] and A as a
// fraction.
type HWBA struct {
	H float64
	W float64
	B float64
	A float64
}

// Format formats c as #rrggbbaa.
var Format = FormatHEXA

// FormatHEXA formats c as #rrggbbaa.
func FormatHEXA(c Color) string {
	return "#" + hexTable[Red(c)] + hexTable[Green(c)] + hexTable[Blue(c)] + hexTable[Alpha(c)]
}

// FormatHEX formats c as #rrggbb, dropping alpha.
func FormatHEX(c Color) string {
	return "#" + hexTable[Red(c)] + hexTable[Green(c)] + hexTable[Blue(c)]
}

// FormatRGBA formats c as rgba(R G B / A) with A in [0, 1].
func FormatRGBA(c Color) string {
	return fmt.Sprintf("rgba(%d %d %d / %s)", Red(c), Green(c), Blue(c), formatNumber(alphaFraction(c)))
}

func ToRGBA(c Color) RGBA {
	return RGBA{R: Red(c), G: Green(c), B: Blue(c), A: Alpha(c)}
}

// FormatHSLA formats c as hsla(H S% L% / A).
func FormatHSLA(c Color) string {
	hsla := ToHSLA(c)
	return fmt.Sprintf("hsla(%s %s%% %s%% / %s)",
		formatNumber(hsla.H), formatNumber(hsla.S), formatNumber(hsla.L), formatNumber(hsla.A))
}

func ToHSLA(c Color) HSLA {
	h, s, l := rgbToHSL(Red(c), Green(c), Blue(c))
	return HSLA{H: h, S: s, L: l, A: alphaFraction(c)}
}

// FormatHWBA formats c as hwb(H W% B% / A).
func FormatHWBA(c Color) string {
	hwba := ToHWBA(c)
	return fmt.Sprintf("hwb(%s %s%% %s%% / %s)",
		formatNumber(hwba.H), formatNumber(hwba.W*100), formatNumber(hwba.B*100), formatNumber(hwba.A))
}

func ToHWBA(c Color) HWBA {
	h, w, b := rgbToHWB(Red(c), Green(c), Blue(c))
	return HWBA{H: h, W: w, B: b, A: alphaFraction(c)}
}

func alphaFraction(c Color) float64 {
	return float64(Alpha(c)) / 255
}

// formatNumber prints the shortest decimal that reads back as v.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// rgbToHSL returns hue in degrees, saturation and lightness in percent.
func rgbToHSL(red uint8, green uint8, blue uint8) (float64, float64, float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	maxC := util.Max(r, g, b)
	minC := util.Min(r, g, b)
	delta := maxC - minC
	l := (maxC + minC) / 2

	if delta == 0 {
		return 0, 0, l * 100
	}

	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
	case g:
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}

	// CSS branches on lightness (max+min)/2, not on max
	var s float64
	if l <= 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2 - maxC - minC)
	}
	return h, s * 100, l * 100
}

// rgbToHWB returns hue in degrees, whiteness and blackness in [0, 1].
func rgbToHWB(red uint8, green uint8, blue uint8) (float64, float64, float64) {
	r := float64(red) / 255
	g := float64(green) / 255
	b := float64(blue) / 255

	w := util.Min(r, g, b)
	v := util.Max(r, g, b)
	black := 1 - v
	if v == w {
		return 0, w, black
	}

	var f, i float64
	switch w {
	case r:
		f, i = g-b, 3
	case g:
		f, i = b-r, 5
	default:
		f, i = r-g, 1
	}
	h := math.Mod((i-f/(v-w))*60, 360)
	return h, w, black
}
