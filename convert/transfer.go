package convert

import "math"

// TransferFunction maps encoded values to linear values with the 7 parameter
// piecewise curve
//
//	linear = sign(encoded) *  (c*|encoded| + f)       , 0 <= |encoded| < d
//	       = sign(encoded) * ((a*|encoded| + b)^g + e), d <= |encoded|
//
// A plain gamma curve sets G to the gamma and A to 1.
type TransferFunction struct {
	G float64
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

var (
	TransferSRGB               = TransferFunction{G: 2.4, A: 1 / 1.055, B: 0.055 / 1.055, C: 1 / 12.92, D: 0.04045}
	TransferSRGBInverse        = TransferFunction{G: 0.416667, A: 1.13728, C: 12.92, D: 0.0031308, E: -0.0549698}
	TransferProPhotoRGB        = TransferFunction{G: 1.8, A: 1}
	TransferProPhotoRGBInverse = TransferFunction{G: 0.555556, A: 1}
	TransferGamma22            = TransferFunction{G: 2.2, A: 1}
	TransferGamma22Inverse     = TransferFunction{G: 0.454545, A: 1}
	TransferRec2020            = TransferFunction{G: 2.22222, A: 0.909672, B: 0.0903276, C: 0.222222, D: 0.0812429}
	TransferRec2020Inverse     = TransferFunction{G: 0.45, A: 1.23439, C: 4.5, D: 0.018054, E: -0.0993195}
)

func (tf TransferFunction) Eval(val float64) float64 {
	sign := 1.0
	if val < 0 {
		sign = -1
	}
	abs := val * sign

	if abs < tf.D {
		return sign * (tf.C*abs + tf.F)
	}
	return sign * (math.Pow(tf.A*abs+tf.B, tf.G) + tf.E)
}

// Apply runs the curve over each component of t.
func (tf TransferFunction) Apply(t Triple) Triple {
	return Triple{tf.Eval(t[0]), tf.Eval(t[1]), tf.Eval(t[2])}
}
