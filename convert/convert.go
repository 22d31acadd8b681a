// Package convert holds the numeric color space conversions used by the CSS
// color parser. Every function is pure and works on float64 triples; no
// rounding or clamping happens here.
package convert

import (
	"math"

	"github.com/kpfaulkner/csscolor/util"
)

// Triple is a set of coordinates in some color space.
type Triple = util.Vector3

// D50 reference white used by the Lab conversions.
const (
	D50X = 0.9642
	D50Y = 1.0
	D50Z = 0.8251
)

func degToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

func radToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}

func LabToXYZD50(lab Triple) Triple {
	y := (lab[0] + 16.0) / 116.0
	x := y + lab[1]/500.0
	z := y - lab[2]/200.0

	return Triple{
		labInverseTransfer(x) * D50X,
		labInverseTransfer(y) * D50Y,
		labInverseTransfer(z) * D50Z,
	}
}

func labInverseTransfer(t float64) float64 {
	const delta = 24.0 / 116.0
	if t <= delta {
		return (108.0 / 841.0) * (t - (16.0 / 116.0))
	}
	return t * t * t
}

func XYZD50ToLab(xyz Triple) Triple {
	x := labTransfer(xyz[0] / D50X)
	y := labTransfer(xyz[1] / D50Y)
	z := labTransfer(xyz[2] / D50Z)

	return Triple{
		116.0*y - 16.0,
		500.0 * (x - y),
		200.0 * (y - z),
	}
}

func labTransfer(t float64) float64 {
	const deltaLimit = (24.0 / 116.0) * (24.0 / 116.0) * (24.0 / 116.0)
	if t <= deltaLimit {
		return (841.0/108.0)*t + (16.0 / 116.0)
	}
	return math.Cbrt(t)
}

func OklabToXYZD65(lab Triple) Triple {
	lms := util.MatrixVectorMultiply(OklabToLMSMatrix, lab)
	lms[0] = lms[0] * lms[0] * lms[0]
	lms[1] = lms[1] * lms[1] * lms[1]
	lms[2] = lms[2] * lms[2] * lms[2]
	return util.MatrixVectorMultiply(LMSToXYZMatrix, lms)
}

func XYZD65ToOklab(xyz Triple) Triple {
	lms := util.MatrixVectorMultiply(XYZToLMSMatrix, xyz)
	lms[0] = math.Cbrt(lms[0])
	lms[1] = math.Cbrt(lms[1])
	lms[2] = math.Cbrt(lms[2])
	return util.MatrixVectorMultiply(LMSToOklabMatrix, lms)
}

// LCHToLab converts polar coordinates, hue in degrees.
func LCHToLab(lch Triple) Triple {
	h := degToRad(lch[2])
	return Triple{lch[0], lch[1] * math.Cos(h), lch[1] * math.Sin(h)}
}

// LCHToLabUndefinedHue is LCHToLab for a missing hue: chroma is ignored.
func LCHToLabUndefinedHue(l float64) Triple {
	return Triple{l, 0, 0}
}

func LabToLCH(lab Triple) Triple {
	a, b := lab[1], lab[2]
	return Triple{lab[0], math.Sqrt(a*a + b*b), radToDeg(math.Atan2(b, a))}
}

func DisplayP3ToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(DisplayP3ToXYZD50Matrix, TransferSRGB.Apply(rgb))
}

func XYZD50ToDisplayP3(xyz Triple) Triple {
	return TransferSRGBInverse.Apply(util.MatrixVectorMultiply(XYZD50ToDisplayP3Matrix, xyz))
}

func ProPhotoToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(ProPhotoToXYZD50Matrix, TransferProPhotoRGB.Apply(rgb))
}

func XYZD50ToProPhoto(xyz Triple) Triple {
	return TransferProPhotoRGBInverse.Apply(util.MatrixVectorMultiply(XYZD50ToProPhotoMatrix, xyz))
}

func AdobeRGBToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(AdobeRGBToXYZD50Matrix, TransferGamma22.Apply(rgb))
}

func XYZD50ToAdobeRGB(xyz Triple) Triple {
	return TransferGamma22Inverse.Apply(util.MatrixVectorMultiply(XYZD50ToAdobeRGBMatrix, xyz))
}

func Rec2020ToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(Rec2020ToXYZD50Matrix, TransferRec2020.Apply(rgb))
}

func XYZD50ToRec2020(xyz Triple) Triple {
	return TransferRec2020Inverse.Apply(util.MatrixVectorMultiply(XYZD50ToRec2020Matrix, xyz))
}

func XYZD50ToD65(xyz Triple) Triple {
	return util.MatrixVectorMultiply(XYZD50ToXYZD65Matrix, xyz)
}

func XYZD65ToD50(xyz Triple) Triple {
	return util.MatrixVectorMultiply(XYZD65ToXYZD50Matrix, xyz)
}

func XYZD65ToSRGBLinear(xyz Triple) Triple {
	return util.MatrixVectorMultiply(XYZD65ToSRGBLinearMatrix, xyz)
}

func XYZD50ToSRGBLinear(xyz Triple) Triple {
	return util.MatrixVectorMultiply(XYZD50ToSRGBMatrix, xyz)
}

func SRGBLinearToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(SRGBToXYZD50Matrix, rgb)
}

func SRGBToXYZD50(rgb Triple) Triple {
	return util.MatrixVectorMultiply(SRGBToXYZD50Matrix, TransferSRGB.Apply(rgb))
}

func XYZD50ToSRGB(xyz Triple) Triple {
	return TransferSRGBInverse.Apply(util.MatrixVectorMultiply(XYZD50ToSRGBMatrix, xyz))
}

func OKLCHToXYZD50(lch Triple) Triple {
	return XYZD65ToD50(OklabToXYZD65(LCHToLab(lch)))
}

func XYZD50ToOKLCH(xyz Triple) Triple {
	return LabToLCH(XYZD65ToOklab(XYZD50ToD65(xyz)))
}
