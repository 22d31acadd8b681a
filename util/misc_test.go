package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfThenElse(t *testing.T) {
	assert.Equal(t, 1.5, IfThenElse(true, 1.5, 2.5))
	assert.Equal(t, "b", IfThenElse(false, "a", "b"))
}
