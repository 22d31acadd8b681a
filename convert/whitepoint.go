package convert

import (
	"errors"

	"github.com/kpfaulkner/csscolor/util"
)

// CIEXY is a chromaticity coordinate.
type CIEXY struct {
	X float64
	Y float64
}

type CIEPrimaries struct {
	Red   CIEXY
	Green CIEXY
	Blue  CIEXY
}

var (
	WhitePointD50 = CIEXY{X: 0.3457, Y: 0.3585}
	WhitePointD65 = CIEXY{X: 0.3127, Y: 0.3290}

	PrimariesSRGB      = CIEPrimaries{Red: CIEXY{0.64, 0.33}, Green: CIEXY{0.30, 0.60}, Blue: CIEXY{0.15, 0.06}}
	PrimariesDisplayP3 = CIEPrimaries{Red: CIEXY{0.68, 0.32}, Green: CIEXY{0.265, 0.69}, Blue: CIEXY{0.15, 0.06}}
	PrimariesRec2020   = CIEPrimaries{Red: CIEXY{0.708, 0.292}, Green: CIEXY{0.170, 0.797}, Blue: CIEXY{0.131, 0.046}}

	Bradford = util.Matrix3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	BradfordInverse = mustInvert(Bradford)
)

func mustInvert(m util.Matrix3) util.Matrix3 {
	inv, err := util.InvertMatrix3x3(m)
	if err != nil {
		panic(err)
	}
	return inv
}

func (xy CIEXY) validate() error {
	if xy.X < 0 || xy.X > 1 || xy.Y <= 0 || xy.Y > 1 {
		return errors.New("invalid chromaticity")
	}
	return nil
}

func (xy CIEXY) Matches(other CIEXY) bool {
	return xy.X == other.X && xy.Y == other.Y
}

// XYZ returns the tristimulus value with Y normalised to 1.
func (xy CIEXY) XYZ() (Triple, error) {
	if err := xy.validate(); err != nil {
		return Triple{}, err
	}
	invY := 1.0 / xy.Y
	return Triple{xy.X * invY, 1.0, (1.0 - xy.X - xy.Y) * invY}, nil
}

// AdaptWhitePoint returns the Bradford matrix taking XYZ relative to current
// into XYZ relative to target.
func AdaptWhitePoint(target CIEXY, current CIEXY) (util.Matrix3, error) {
	if target.Matches(current) {
		return util.MatrixIdentity(), nil
	}

	wCurrent, err := current.XYZ()
	if err != nil {
		return util.Matrix3{}, err
	}
	wTarget, err := target.XYZ()
	if err != nil {
		return util.Matrix3{}, err
	}

	lmsCurrent := util.MatrixVectorMultiply(Bradford, wCurrent)
	lmsTarget := util.MatrixVectorMultiply(Bradford, wTarget)
	var ratio util.Vector3
	for i := 0; i < 3; i++ {
		if lmsCurrent[i] == 0 {
			return util.Matrix3{}, errors.New("degenerate white point")
		}
		ratio[i] = lmsTarget[i] / lmsCurrent[i]
	}

	return util.MatrixMultiply(BradfordInverse, util.DiagonalMatrix(ratio), Bradford), nil
}

// PrimariesToXYZ builds the linear RGB to XYZ matrix for primaries relative
// to their own white point.
func PrimariesToXYZ(primaries CIEPrimaries, wp CIEXY) (util.Matrix3, error) {
	r, errR := primaries.Red.XYZ()
	g, errG := primaries.Green.XYZ()
	b, errB := primaries.Blue.XYZ()
	if errR != nil || errG != nil || errB != nil {
		return util.Matrix3{}, errors.New("invalid primaries")
	}

	primariesMatrix := util.TransposeMatrix(util.Matrix3{r, g, b})
	inversePrimaries, err := util.InvertMatrix3x3(primariesMatrix)
	if err != nil {
		return util.Matrix3{}, err
	}
	w, err := wp.XYZ()
	if err != nil {
		return util.Matrix3{}, err
	}
	scale := util.MatrixVectorMultiply(inversePrimaries, w)
	return util.MatrixMatrixMultiply(primariesMatrix, util.DiagonalMatrix(scale)), nil
}

// GamutToXYZD50 derives the primaries matrix adapted to the D50 white used by
// the Lab and CSS color() conversions.
func GamutToXYZD50(primaries CIEPrimaries, wp CIEXY) (util.Matrix3, error) {
	toXYZ, err := PrimariesToXYZ(primaries, wp)
	if err != nil {
		return util.Matrix3{}, err
	}
	adapt, err := AdaptWhitePoint(WhitePointD50, wp)
	if err != nil {
		return util.Matrix3{}, err
	}
	return util.MatrixMatrixMultiply(adapt, toXYZ), nil
}
