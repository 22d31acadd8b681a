package testcommon

import (
	"testing"

	"github.com/kpfaulkner/csscolor/util"
	"github.com/stretchr/testify/assert"
)

// AssertVectorInDelta compares each component of two vectors.
func AssertVectorInDelta(t *testing.T, expected util.Vector3, actual util.Vector3, delta float64) bool {
	t.Helper()
	ok := true
	for i := 0; i < 3; i++ {
		ok = assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v vs %v", i, expected, actual) && ok
	}
	return ok
}

func AssertMatrixInDelta(t *testing.T, expected util.Matrix3, actual util.Matrix3, delta float64) bool {
	t.Helper()
	ok := true
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ok = assert.InDelta(t, expected[i][j], actual[i][j], delta, "element [%d][%d]", i, j) && ok
		}
	}
	return ok
}

// AssertChannelsWithin checks that every RGBA channel differs by at most
// tolerance, which is how rounding through a string format is compared.
func AssertChannelsWithin(t *testing.T, expected [4]uint8, actual [4]uint8, tolerance int) bool {
	t.Helper()
	ok := true
	for i := 0; i < 4; i++ {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > tolerance {
			t.Errorf("channel %d: expected %d got %d (tolerance %d)", i, expected[i], actual[i], tolerance)
			ok = false
		}
	}
	return ok
}
