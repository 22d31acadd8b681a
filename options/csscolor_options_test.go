package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCSSColorOptions(t *testing.T) {
	for _, tc := range []struct {
		name     string
		input    *CSSColorOptions
		expected CSSColorOptions
	}{
		{name: "nil gives defaults", input: nil, expected: CSSColorOptions{Gamma: 1}},
		{name: "zero gamma defaulted", input: &CSSColorOptions{Inline: true}, expected: CSSColorOptions{Gamma: 1, Inline: true}},
		{name: "copied", input: &CSSColorOptions{Gamma: 2.2, NamedColors: true}, expected: CSSColorOptions{Gamma: 2.2, NamedColors: true}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			opt := NewCSSColorOptions(tc.input)
			assert.Equal(t, tc.expected, *opt)
			if tc.input != nil {
				assert.NotSame(t, tc.input, opt)
			}
		})
	}
}
