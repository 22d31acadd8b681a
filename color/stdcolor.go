package color

import (
	stdcolor "image/color"
)

var _ stdcolor.Color = Color(0)

// RGBA implements image/color.Color. c is treated as non-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return stdcolor.NRGBA{R: Red(c), G: Green(c), B: Blue(c), A: Alpha(c)}.RGBA()
}

// FromStd converts any image/color.Color, un-premultiplying its channels.
func FromStd(c stdcolor.Color) Color {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return New(int(n.R), int(n.G), int(n.B), int(n.A))
}
