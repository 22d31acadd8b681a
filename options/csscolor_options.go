package options

import (
	"github.com/kpfaulkner/csscolor/color"
)

type CSSColorOptions struct {
	// Gamma used when blending, color.DefaultBlendGamma matches browsers.
	Gamma float64

	// Inline treats scanner input as the body of a style attribute.
	Inline bool

	// NamedColors makes the scanner report keywords such as "teal".
	NamedColors bool
}

func NewCSSColorOptions(options *CSSColorOptions) *CSSColorOptions {

	opt := &CSSColorOptions{Gamma: color.DefaultBlendGamma}
	if options != nil {
		opt.Inline = options.Inline
		opt.NamedColors = options.NamedColors
		if options.Gamma > 0 {
			opt.Gamma = options.Gamma
		}
	}
	return opt
}
