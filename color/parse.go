package color

import (
	"math"
	"regexp"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/csscolor/convert"
	"github.com/kpfaulkner/csscolor/util"
)

// Approximate CSS color function pattern: a name followed by 3 to 5 values
// separated by whitespace, commas or slashes, e.g. rgb(), color().
var colorPattern = func() *regexp.Regexp {
	const (
		name               = `(\w+)`
		separator          = `[\s,/]`
		value              = `([^\s,/]+)`
		separatorThenValue = `(?:` + separator + `+` + value + `)`
	)
	return regexp.MustCompile(name + `\(` +
		separator + `*` +
		value +
		separatorThenValue +
		separatorThenValue +
		separatorThenValue + `?` +
		separatorThenValue + `?` +
		separator + `*` +
		`\)`)
}()

// Parse parses a CSS color: #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(),
// hsla(), hwb(), lab(), lch(), oklab(), oklch() or color().
func Parse(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		return ParseHex(s), nil
	}
	return ParseColor(s)
}

// ParseHex parses #rgb, #rrggbb and #rrggbbaa. Any other length yields opaque
// black rather than an error, and digits are not validated.
func ParseHex(s string) Color {
	r, g, b, a := 0, 0, 0, 0xff

	switch len(s) {
	case 4:
		r = hexValue(s[1])<<4 + hexValue(s[1])
		g = hexValue(s[2])<<4 + hexValue(s[2])
		b = hexValue(s[3])<<4 + hexValue(s[3])
	case 7:
		r = hexValue(s[1])<<4 + hexValue(s[2])
		g = hexValue(s[3])<<4 + hexValue(s[4])
		b = hexValue(s[5])<<4 + hexValue(s[6])
	case 9:
		r = hexValue(s[1])<<4 + hexValue(s[2])
		g = hexValue(s[3])<<4 + hexValue(s[4])
		b = hexValue(s[5])<<4 + hexValue(s[6])
		a = hexValue(s[7])<<4 + hexValue(s[8])
	}
	return New(r, g, b, a)
}

// hexValue decodes 0-9, a-f and A-F without branching.
func hexValue(c byte) int {
	return int(c&0xf) + 9*int(c>>6)
}

// ParseColor parses the functional notations. Returns a *ParseError when the
// string does not look like a supported function.
func ParseColor(s string) (Color, error) {
	match := colorPattern.FindStringSubmatch(s)
	if match == nil {
		log.Debugf("no color function found in %q", s)
		return 0, &ParseError{Input: s}
	}

	format := match[1]
	p1, p2, p3, p4, p5 := match[2], match[3], match[4], match[5], match[6]

	switch format {
	case "rgb", "rgba":
		r := parseColorChannel(p1)
		g := parseColorChannel(p2)
		b := parseColorChannel(p3)
		a := optionalAlpha(p4)
		return pack(r, g, b, a), nil

	case "hsl", "hsla":
		h := parseAngle(p1)
		s := parsePercentage(p2)
		l := parsePercentage(p3)
		a := optionalAlpha(p4)

		var r, g, b float64
		if s == 0 {
			// achromatic
			r = util.RoundHalfUp(l * 255)
			g, b = r, r
		} else {
			q := util.IfThenElse(l < 0.5, l*(1+s), l+s-l*s)
			p := 2*l - q
			r = util.RoundHalfUp(hueToRGB(p, q, h+1.0/3) * 255)
			g = util.RoundHalfUp(hueToRGB(p, q, h) * 255)
			b = util.RoundHalfUp(hueToRGB(p, q, h-1.0/3) * 255)
		}
		return pack(r, g, b, a), nil

	case "hwb":
		h := parseAngle(p1)
		w := parsePercentage(p2)
		bl := parsePercentage(p3)
		a := optionalAlpha(p4)

		// HSL with s=1 and l=0.5, then mix in whiteness and blackness
		const s, l = 1.0, 0.5
		q := l + s - l*s
		p := 2*l - q
		r := hwbApply(util.RoundHalfUp(hueToRGB(p, q, h+1.0/3)*255), w, bl)
		g := hwbApply(util.RoundHalfUp(hueToRGB(p, q, h)*255), w, bl)
		b := hwbApply(util.RoundHalfUp(hueToRGB(p, q, h-1.0/3)*255), w, bl)
		return pack(r, g, b, a), nil

	case "lab":
		l := parsePercentageFor(p1, 100)
		aa := parsePercentageFor(p2, 125)
		b := parsePercentageFor(p3, 125)
		a := optionalAlpha(p4)
		return fromTriple(a, convert.XYZD50ToSRGB(convert.LabToXYZD50(convert.Triple{l, aa, b}))), nil

	case "lch":
		l := parsePercentageFor(p1, 100)
		c := parsePercentageFor(p2, 150)
		h := parseAngle(p3) * 360
		a := optionalAlpha(p4)
		lab := convert.LCHToLab(convert.Triple{l, c, h})
		return fromTriple(a, convert.XYZD50ToSRGB(convert.LabToXYZD50(lab))), nil

	case "oklab":
		l := parsePercentageFor(p1, 1)
		aa := parsePercentageFor(p2, 0.4)
		b := parsePercentageFor(p3, 0.4)
		a := optionalAlpha(p4)
		xyz := convert.XYZD65ToD50(convert.OklabToXYZD65(convert.Triple{l, aa, b}))
		return fromTriple(a, convert.XYZD50ToSRGB(xyz)), nil

	case "oklch":
		// hue is taken as is here, unlike lch() it is not scaled to degrees
		l := parsePercentageOrValue(p1)
		c := parsePercentageOrValue(p2)
		h := parsePercentageOrValue(p3)
		a := optionalAlpha(p4)
		return fromTriple(a, convert.XYZD50ToSRGB(convert.OKLCHToXYZD50(convert.Triple{l, c, h}))), nil

	case "color":
		// a colorspace and exactly three channels
		if p4 == "" {
			log.Debugf("color() needs three channels in %q", s)
			break
		}
		colorspace := p1
		channels := convert.Triple{
			parsePercentageOrValue(p2),
			parsePercentageOrValue(p3),
			parsePercentageOrValue(p4),
		}
		a := optionalAlpha(p5)

		if toXYZ, ok := colorSpaces[colorspace]; ok {
			return fromTriple(a, convert.XYZD50ToSRGB(toXYZ(channels))), nil
		}
		if colorspace == "srgb" {
			return fromTriple(a, channels), nil
		}
		log.Debugf("unsupported color() colorspace %q", colorspace)
	}

	return 0, &ParseError{Input: s}
}

// color() colorspaces, each mapped to XYZ D50. srgb is handled directly.
var colorSpaces = map[string]func(convert.Triple) convert.Triple{
	"srgb-linear":  convert.SRGBLinearToXYZD50,
	"display-p3":   convert.DisplayP3ToXYZD50,
	"a98-rgb":      convert.AdobeRGBToXYZD50,
	"prophoto-rgb": convert.ProPhotoToXYZD50,
	"rec2020":      convert.Rec2020ToXYZD50,
	"xyz":          convert.XYZD65ToD50,
	"xyz-d65":      convert.XYZD65ToD50,
	"xyz-d50":      func(xyz convert.Triple) convert.Triple { return xyz },
}

func optionalAlpha(channel string) float64 {
	if channel == "" {
		return 255
	}
	return parseAlphaChannel(channel)
}

func lastByte(s string) byte {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

func firstByte(s string) byte {
	if len(s) == 0 {
		return 0
	}
	return s[0]
}

// parseColorChannel accepts "50%" or "128" and returns a value in [0, 255].
func parseColorChannel(channel string) float64 {
	if lastByte(channel) == '%' {
		return util.RoundHalfUp(util.ParseFloatPrefix(channel) / 100 * 255)
	}
	return util.RoundHalfUp(util.ParseFloatPrefix(channel))
}

// parseAlphaChannel accepts "50%", ".5" or "0.5" and returns [0, 255].
func parseAlphaChannel(channel string) float64 {
	return util.RoundHalfUp(parseAlphaValue(channel) * 255)
}

func parseAlphaValue(channel string) float64 {
	if firstByte(channel) == 'n' {
		return 0
	}
	if lastByte(channel) == '%' {
		return util.ParseFloatPrefix(channel) / 100
	}
	return util.ParseFloatPrefix(channel)
}

// parseAngle accepts "360", "360deg", "400grad", "6.28rad", "1turn" and
// "none", returning the angle as a fraction of a full turn.
func parseAngle(angle string) float64 {
	var factor float64

	switch lastByte(angle) {
	case 'e':
		// none
		return 0
	case 'd':
		// grad or rad
		if angle[max(0, len(angle)-4)] == 'g' {
			factor = 400
		} else {
			factor = 2 * math.Pi
		}
	case 'n':
		// turn
		factor = 1
	default:
		// deg or a bare number
		factor = 360
	}
	return util.ParseFloatPrefix(angle) / factor
}

// parsePercentage accepts "100%" and "none", returning [0, 1].
func parsePercentage(value string) float64 {
	if firstByte(value) == 'n' {
		return 0
	}
	return util.ParseFloatPrefix(value) / 100
}

// parsePercentageOrValue accepts "1.0", "100%" and "none".
func parsePercentageOrValue(value string) float64 {
	if firstByte(value) == 'n' {
		return 0
	}
	if lastByte(value) == '%' {
		return util.ParseFloatPrefix(value) / 100
	}
	return util.ParseFloatPrefix(value)
}

// parsePercentageFor accepts "100", "100%" and "none"; percentages are taken
// relative to rng.
func parsePercentageFor(value string, rng float64) float64 {
	if firstByte(value) == 'n' {
		return 0
	}
	if lastByte(value) == '%' {
		return util.ParseFloatPrefix(value) / 100 * rng
	}
	return util.ParseFloatPrefix(value)
}

func hueToRGB(p float64, q float64, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2 {
		return q
	}
	if t < 2.0/3 {
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

func hwbApply(channel float64, w float64, b float64) float64 {
	result := channel / 255
	result *= 1 - w - b
	result += w
	return util.RoundHalfUp(result * 255)
}

// fromTriple scales an sRGB triple to bytes, clamping each of R, G and B.
// Alpha is expected to be in [0, 255] already.
func fromTriple(a float64, rgb convert.Triple) Color {
	r := util.Clamp3(util.RoundHalfUp(rgb[0]*255), 0, 255)
	g := util.Clamp3(util.RoundHalfUp(rgb[1]*255), 0, 255)
	b := util.Clamp3(util.RoundHalfUp(rgb[2]*255), 0, 255)
	return pack(r, g, b, a)
}
