package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/csscolor/color"
)

func main() {

	inputs := []string{
		"#53cbba",
		"#fa08",
		"rgb(83 203 186 / 50%)",
		"rgba(83, 203, 186, 0.2)",
		"hsl(171.5deg 54% 56%)",
		"hwb(0.47turn 33% 20%)",
		"lab(74 -37 -2)",
		"lch(74 37 183)",
		"oklab(0.78 -0.1 0)",
		"oklch(0.78 0.1 0.5)",
		"color(display-p3 0.4 0.78 0.73)",
	}

	iterations := 100000
	if len(os.Args) > 1 {
		if _, err := fmt.Sscanf(os.Args[1], "%d", &iterations); err != nil {
			log.Errorf("bad iteration count %q: %v", os.Args[1], err)
			return
		}
	}

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	start := time.Now()
	var checksum uint32
	for count := 0; count < iterations; count++ {
		for _, input := range inputs {
			c, err := color.Parse(input)
			if err != nil {
				log.Errorf("Error parsing %s: %v", input, err)
				return
			}
			checksum ^= color.ToNumber(c)
			_ = color.FormatHSLA(c)
			_ = color.FormatRGBA(color.Blend(c, color.Darken(c, 0.2), 0.5, color.DefaultBlendGamma))
		}
	}
	fmt.Printf("%d parse/format rounds took %d ms (checksum %08x)\n", iterations*len(inputs), time.Since(start).Milliseconds(), checksum)
}
