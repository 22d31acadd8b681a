package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"

	"github.com/kpfaulkner/csscolor/color"
	"github.com/kpfaulkner/csscolor/cssscan"
	"github.com/kpfaulkner/csscolor/options"
)

var errNoColor = errors.New("no color given")

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.Bool("debug") {
		log.SetLevel(log.DebugLevel)
		log.Debugf("Program started with args %v", os.Args)
	}
	return ctx, nil
}

func output(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "csscolor",
		Usage:           "parse, convert and mix CSS colors",
		HideHelpCommand: true,
		Before:          setupLogging,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log rejected input"},
		},
		Commands: []*cli.Command{
			{
				Name:      "convert",
				Usage:     "Prints every supported format of each COLOR",
				ArgsUsage: "COLOR...",
				Action:    runConvert,
			},
			{
				Name:      "mix",
				Usage:     "Blends OVERLAY over BACKGROUND",
				ArgsUsage: "BACKGROUND OVERLAY",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "opacity", Value: 0.5, Usage: "overlay opacity in [0, 1]"},
					&cli.FloatFlag{Name: "gamma", Value: color.DefaultBlendGamma, Usage: "gamma, 1.0 like browsers or 2.2 for gamma corrected blending"},
				},
				Action: runMix,
			},
			{
				Name:      "shade",
				Usage:     "Darkens, lightens or sets the alpha of COLOR",
				ArgsUsage: "COLOR",
				Flags: []cli.Flag{
					&cli.FloatFlag{Name: "darken", Usage: "darken coefficient in [0, 1]"},
					&cli.FloatFlag{Name: "lighten", Usage: "lighten coefficient in [0, 1]"},
					&cli.FloatFlag{Name: "alpha", Usage: "alpha in [0, 1]"},
				},
				Action: runShade,
			},
			{
				Name:      "scan",
				Usage:     "Lists the colors used in a stylesheet",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "inline", Usage: "FILE holds a style attribute body rather than a stylesheet"},
					&cli.BoolFlag{Name: "named", Usage: "also report named colors"},
				},
				Action: runScan,
			},
		},
	}
}

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.Errorf("Program ended with error: %v", err)
		os.Exit(1)
	}
}

func runConvert(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() == 0 {
		return errNoColor
	}

	var err error
	for _, arg := range cmd.Args().Slice() {
		c, er := color.Parse(arg)
		if er != nil {
			err = multierr.Append(err, er)
			continue
		}
		describe(output(cmd), arg, c)
	}
	return err
}

func describe(w io.Writer, input string, c color.Color) {
	fmt.Fprintf(w, "%s\n", input)
	fmt.Fprintf(w, "  hex:       %s\n", color.FormatHEX(c))
	fmt.Fprintf(w, "  hexa:      %s\n", color.FormatHEXA(c))
	fmt.Fprintf(w, "  rgba:      %s\n", color.FormatRGBA(c))
	fmt.Fprintf(w, "  hsla:      %s\n", color.FormatHSLA(c))
	fmt.Fprintf(w, "  hwb:       %s\n", color.FormatHWBA(c))
	fmt.Fprintf(w, "  luminance: %g\n", color.Luminance(c))
}

func runMix(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected BACKGROUND and OVERLAY, got %d arguments", cmd.Args().Len())
	}
	background, err := color.Parse(cmd.Args().Get(0))
	if err != nil {
		return err
	}
	overlay, err := color.Parse(cmd.Args().Get(1))
	if err != nil {
		return err
	}

	opts := options.NewCSSColorOptions(&options.CSSColorOptions{Gamma: cmd.Float("gamma")})
	mixed := color.Blend(background, overlay, cmd.Float("opacity"), opts.Gamma)
	fmt.Fprintln(output(cmd), color.FormatHEX(mixed))
	return nil
}

func runShade(_ context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errNoColor
	}
	c, err := color.Parse(cmd.Args().First())
	if err != nil {
		return err
	}

	switch {
	case cmd.IsSet("darken"):
		c = color.Darken(c, cmd.Float("darken"))
	case cmd.IsSet("lighten"):
		c = color.Lighten(c, cmd.Float("lighten"))
	case cmd.IsSet("alpha"):
		c = color.WithAlpha(c, cmd.Float("alpha"))
	default:
		log.Warnf("No shade requested, printing %s unchanged", cmd.Args().First())
	}
	fmt.Fprintln(output(cmd), color.FormatHEXA(c))
	return nil
}

func runScan(_ context.Context, cmd *cli.Command) error {
	fname := cmd.Args().First()
	if fname == "" {
		return errors.New("no FILE given")
	}

	opts := options.NewCSSColorOptions(&options.CSSColorOptions{
		Inline:      cmd.Bool("inline"),
		NamedColors: cmd.Bool("named"),
	})
	return scanFile(output(cmd), fname, opts)
}

// scanFile prints each color found in fname. Unparseable values are logged
// and do not fail the command.
func scanFile(w io.Writer, fname string, opts *options.CSSColorOptions) error {
	f, err := os.Open(fname)
	if err != nil {
		return fmt.Errorf("unable to open '%s': %w", fname, err)
	}
	defer f.Close()

	matches, err := cssscan.NewScanner(cssscan.WithOptions(opts)).Scan(f)
	for _, e := range multierr.Errors(err) {
		log.Warnf("%s: %v", fname, e)
	}

	for _, m := range matches {
		fmt.Fprintf(w, "%s %s -> %s\n", m.Property, m.Raw, color.FormatHEXA(m.Color))
	}
	return nil
}
