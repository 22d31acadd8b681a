package color

import (
	"math"

	"github.com/kpfaulkner/csscolor/util"
)

// DefaultBlendGamma matches browser blending. Use 2.2 for gamma corrected
// blending.
const DefaultBlendGamma = 1.0

// WithAlpha replaces the alpha channel with value, a fraction in [0, 1].
// It is absolute: applying 0.5 twice still yields an alpha of 128.
func WithAlpha(c Color, value float64) Color {
	return SetAlpha(c, int(util.RoundHalfUp(value*255)))
}

// Darken scales each of R, G and B towards 0 by coefficient in [0, 1].
// Fractional results are truncated.
func Darken(c Color, coefficient float64) Color {
	factor := 1 - coefficient
	return pack(
		float64(Red(c))*factor,
		float64(Green(c))*factor,
		float64(Blue(c))*factor,
		float64(Alpha(c)))
}

// Lighten moves each of R, G and B towards 255 by coefficient in [0, 1].
// Fractional results are truncated.
func Lighten(c Color, coefficient float64) Color {
	r := float64(Red(c))
	g := float64(Green(c))
	b := float64(Blue(c))
	return pack(
		r+(255-r)*coefficient,
		g+(255-g)*coefficient,
		b+(255-b)*coefficient,
		float64(Alpha(c)))
}

// Blend mixes overlay over background with the given opacity. The result is
// always opaque, whatever the input alphas.
func Blend(background Color, overlay Color, opacity float64, gamma float64) Color {
	channel := func(b uint8, o uint8) float64 {
		mixed := math.Pow(float64(b), 1/gamma)*(1-opacity) + math.Pow(float64(o), 1/gamma)*opacity
		return util.RoundHalfUp(math.Pow(mixed, gamma))
	}
	return pack(
		channel(Red(background), Red(overlay)),
		channel(Green(background), Green(overlay)),
		channel(Blue(background), Blue(overlay)),
		255)
}

// Luminance is the WCAG relative luminance of c in [0, 1], rounded to three
// decimal places.
func Luminance(c Color) float64 {
	linear := func(channel uint8) float64 {
		v := float64(channel) / 255
		if v <= 0.03928 {
			return v / 12.92
		}
		return math.Pow((v+0.055)/1.055, 2.4)
	}
	l := 0.2126*linear(Red(c)) + 0.7152*linear(Green(c)) + 0.0722*linear(Blue(c))
	return util.RoundTo(l, 3)
}
