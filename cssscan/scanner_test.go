package cssscan

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/kpfaulkner/csscolor/color"
	"github.com/kpfaulkner/csscolor/options"
)

const stylesheet = `
body { color: #53cbba; background: rgb(83, 203, 186 / 50%) no-repeat; }
.alert { border: 1px solid hsl(0 100% 50%); }
@media (min-width: 100px) {
  a { outline-color: #fa0; }
}
.named { color: teal; }
`

func TestScanStylesheet(t *testing.T) {
	matches, err := NewScanner().Scan(strings.NewReader(stylesheet))
	require.NoError(t, err)

	assert.Equal(t, []Match{
		{Property: "color", Raw: "#53cbba", Color: color.New(83, 203, 186, 255)},
		{Property: "background", Raw: "rgb(83, 203, 186 / 50%)", Color: color.New(83, 203, 186, 128)},
		{Property: "border", Raw: "hsl(0 100% 50%)", Color: color.New(255, 0, 0, 255)},
		{Property: "outline-color", Raw: "#fa0", Color: color.New(255, 170, 0, 255)},
	}, matches)
}

func TestScanNamedColors(t *testing.T) {
	matches, err := NewScanner(WithNamedColors(true)).Scan(strings.NewReader(stylesheet))
	require.NoError(t, err)

	require.Len(t, matches, 5)
	assert.Equal(t, Match{Property: "color", Raw: "teal", Color: color.New(0, 128, 128, 255)}, matches[4])
}

func TestScanInline(t *testing.T) {
	matches, err := NewScanner(WithInline(true), WithNamedColors(true)).
		Scan(strings.NewReader("color: DarkOrange; border-color: transparent; fill: oklab(0 0 0)"))
	require.NoError(t, err)

	assert.Equal(t, []Match{
		{Property: "color", Raw: "DarkOrange", Color: color.New(255, 140, 0, 255)},
		{Property: "border-color", Raw: "transparent", Color: color.New(0, 0, 0, 0)},
		{Property: "fill", Raw: "oklab(0 0 0)", Color: color.New(0, 0, 0, 255)},
	}, matches)
}

func TestScanCustomProperty(t *testing.T) {
	matches, err := NewScanner().Scan(strings.NewReader(":root { --accent: #ff000080; }"))
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "--accent", matches[0].Property)
	assert.Equal(t, color.New(255, 0, 0, 128), matches[0].Color)
}

func TestScanUppercaseFunctions(t *testing.T) {
	matches, err := NewScanner().Scan(strings.NewReader("a { color: RGB(1 2 3); background: Hsl(0 100% 50%); }"))
	require.NoError(t, err)

	assert.Equal(t, []Match{
		{Property: "color", Raw: "rgb(1 2 3)", Color: color.New(1, 2, 3, 255)},
		{Property: "background", Raw: "hsl(0 100% 50%)", Color: color.New(255, 0, 0, 255)},
	}, matches)
}

func TestScanIgnoresOtherFunctions(t *testing.T) {
	matches, err := NewScanner().Scan(strings.NewReader("a { background: url(x.png); width: calc(100% - 2px); }"))
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestScanAggregatesErrors(t *testing.T) {
	css := "a { color: #12345; background: #zzz; border-color: color(unknown 1 2 3); fill: #000; }"
	matches, err := NewScanner().Scan(strings.NewReader(css))
	require.Error(t, err)

	assert.Equal(t, []Match{{Property: "fill", Raw: "#000", Color: color.New(0, 0, 0, 255)}}, matches)

	errs := multierr.Errors(err)
	require.Len(t, errs, 3)
	for _, e := range errs {
		assert.True(t, errors.Is(e, color.ErrInvalidColor), e.Error())
	}

	var parseErr *color.ParseError
	require.True(t, errors.As(errs[0], &parseErr))
	assert.Equal(t, "#12345", parseErr.Input)
	assert.Contains(t, errs[2].Error(), "border-color")
}

func TestWithOptions(t *testing.T) {
	s := NewScanner(WithOptions(options.NewCSSColorOptions(&options.CSSColorOptions{Inline: true, NamedColors: true})))
	assert.True(t, s.inline)
	assert.True(t, s.namedColors)

	s = NewScanner(WithOptions(nil))
	assert.False(t, s.inline)
	assert.False(t, s.namedColors)
}

func TestParseHash(t *testing.T) {
	for _, tc := range []struct {
		input    string
		expected color.Color
		wantErr  bool
	}{
		{input: "#abc", expected: color.New(0xaa, 0xbb, 0xcc, 255)},
		{input: "#AABBCC", expected: color.New(0xaa, 0xbb, 0xcc, 255)},
		{input: "#aabbcc80", expected: color.New(0xaa, 0xbb, 0xcc, 0x80)},
		{input: "#abcd", wantErr: true},
		{input: "#ggg", wantErr: true},
	} {
		t.Run(tc.input, func(t *testing.T) {
			c, err := parseHash(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, color.ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c)
		})
	}
}
