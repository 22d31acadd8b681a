package bitpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCast(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    int32
		expected uint32
	}{
		{name: "zero", input: 0, expected: 0},
		{name: "positive", input: 0x53cbba, expected: 0x53cbba},
		{name: "max int32", input: 0x7fffffff, expected: 0x7fffffff},
		{name: "minus one", input: -1, expected: 0xffffffff},
		{name: "min int32", input: -0x80000000, expected: 0x80000000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Cast(tc.input))
		})
	}
}

func TestGet(t *testing.T) {
	n := uint32(0x53cbba80)
	assert.Equal(t, uint8(0x53), Get(n, 24))
	assert.Equal(t, uint8(0xcb), Get(n, 16))
	assert.Equal(t, uint8(0xba), Get(n, 8))
	assert.Equal(t, uint8(0x80), Get(n, 0))
}

func TestSet(t *testing.T) {
	for _, tc := range []struct {
		name     string
		n        uint32
		offset   uint
		b        uint32
		expected uint32
	}{
		{name: "replace red", n: 0x53cbbaff, offset: 24, b: 0x11, expected: 0x11cbbaff},
		{name: "replace alpha", n: 0x53cbbaff, offset: 0, b: 0x80, expected: 0x53cbba80},
		{name: "only low byte used", n: 0x00000000, offset: 8, b: 0x1ab, expected: 0x0000ab00},
		{name: "same value", n: 0xffffffff, offset: 16, b: 0xff, expected: 0xffffffff},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Set(tc.n, tc.offset, tc.b))
		})
	}
}

func TestSetLeavesOtherBytes(t *testing.T) {
	n := uint32(0x01020304)
	for _, offset := range []uint{0, 8, 16, 24} {
		res := Set(n, offset, 0xee)
		for _, other := range []uint{0, 8, 16, 24} {
			if other == offset {
				assert.Equal(t, uint8(0xee), Get(res, other))
				continue
			}
			assert.Equal(t, Get(n, other), Get(res, other), "offset %d changed byte %d", offset, other)
		}
	}
}
