// Package cssscan finds color values in stylesheets and style attributes.
package cssscan

import (
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"golang.org/x/image/colornames"

	"github.com/kpfaulkner/csscolor/color"
	"github.com/kpfaulkner/csscolor/options"
)

// Match is a color found in a declaration.
type Match struct {
	Property string
	Raw      string
	Color    color.Color
}

type Scanner struct {
	inline      bool
	namedColors bool
}

type ScannerOption func(*Scanner)

// WithInline parses the input as a declaration list, as found in a style
// attribute, rather than a full stylesheet.
func WithInline(inline bool) ScannerOption {
	return func(s *Scanner) {
		s.inline = inline
	}
}

// WithNamedColors also reports CSS color keywords such as "teal".
func WithNamedColors(named bool) ScannerOption {
	return func(s *Scanner) {
		s.namedColors = named
	}
}

// WithOptions applies the scanner related fields of opts.
func WithOptions(opts *options.CSSColorOptions) ScannerOption {
	return func(s *Scanner) {
		if opts == nil {
			return
		}
		s.inline = opts.Inline
		s.namedColors = opts.NamedColors
	}
}

func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var colorFunctions = map[string]bool{
	"rgb":   true,
	"rgba":  true,
	"hsl":   true,
	"hsla":  true,
	"hwb":   true,
	"lab":   true,
	"lch":   true,
	"oklab": true,
	"oklch": true,
	"color": true,
}

// Scan returns every color in r in document order. Values that look like
// colors but fail to parse are skipped and reported together in the returned
// error, which may be non-nil alongside a non-empty result.
func (s *Scanner) Scan(r io.Reader) ([]Match, error) {
	input := parse.NewInput(r)
	parser := css.NewParser(input, s.inline)

	var matches []Match
	var errs error

	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && !errors.Is(err, io.EOF) {
				log.Debugf("css parse error %v", err)
				errs = multierr.Append(errs, err)
			}
			return matches, errs

		case css.DeclarationGrammar:
			property := strings.ToLower(string(data))
			found, err := s.scanValues(property, parser.Values())
			matches = append(matches, found...)
			errs = multierr.Append(errs, err)

		case css.CustomPropertyGrammar:
			property := string(data)
			found, err := s.scanCustomProperty(property, parser.Values())
			matches = append(matches, found...)
			errs = multierr.Append(errs, err)
		}
	}
}

func (s *Scanner) scanValues(property string, values []css.Token) ([]Match, error) {
	var matches []Match
	var errs error

	add := func(raw string, c color.Color, err error) {
		if err != nil {
			log.Debugf("skipping %s value %q: %v", property, raw, err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", property, err))
			return
		}
		matches = append(matches, Match{Property: property, Raw: raw, Color: c})
	}

	for i := 0; i < len(values); i++ {
		token := values[i]

		switch token.TokenType {
		case css.HashToken:
			raw := string(token.Data)
			c, err := parseHash(raw)
			add(raw, c, err)

		case css.FunctionToken:
			name := strings.ToLower(strings.TrimSuffix(string(token.Data), "("))
			end := closingParenthesis(values, i)
			if !colorFunctions[name] {
				continue
			}
			// color.Parse only knows lowercase function names
			raw := name + "(" + joinTokens(values[i+1:end+1])
			c, err := color.Parse(raw)
			add(raw, c, err)
			i = end

		case css.IdentToken:
			if !s.namedColors {
				continue
			}
			if c, ok := namedColor(string(token.Data)); ok {
				add(string(token.Data), c, nil)
			}
		}
	}
	return matches, errs
}

// scanCustomProperty handles --name: value, whose value the tokenizer keeps
// as a single raw token.
func (s *Scanner) scanCustomProperty(property string, values []css.Token) ([]Match, error) {
	var raw string
	for _, v := range values {
		raw += string(v.Data)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	// re-tokenize the value as an inline declaration
	inner := css.NewParser(parse.NewInputString("x:"+raw), true)
	gt, _, _ := inner.Next()
	if gt != css.DeclarationGrammar {
		return nil, nil
	}
	return s.scanValues(property, inner.Values())
}

// parseHash is stricter than color.ParseHex: lengths other than 3, 6 or 8
// digits and non hexadecimal digits are errors rather than opaque black.
func parseHash(raw string) (color.Color, error) {
	switch len(raw) {
	case 4, 7, 9:
	default:
		return 0, &color.ParseError{Input: raw}
	}
	for i := 1; i < len(raw); i++ {
		if !isHexDigit(raw[i]) {
			return 0, &color.ParseError{Input: raw}
		}
	}
	return color.ParseHex(raw), nil
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func namedColor(ident string) (color.Color, bool) {
	name := strings.ToLower(ident)
	if name == "transparent" {
		return color.New(0, 0, 0, 0), true
	}
	rgba, ok := colornames.Map[name]
	if !ok {
		return 0, false
	}
	return color.New(int(rgba.R), int(rgba.G), int(rgba.B), int(rgba.A)), true
}

// closingParenthesis returns the index of the token closing the function
// opened at start, or the last index when it is never closed.
func closingParenthesis(values []css.Token, start int) int {
	depth := 0
	for i := start; i < len(values); i++ {
		switch values[i].TokenType {
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
		case css.RightParenthesisToken:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return len(values) - 1
}

// joinTokens rebuilds a function call from its tokens with whitespace
// normalised to single spaces, e.g. "rgb(83, 203, 186 / 50%)".
func joinTokens(tokens []css.Token) string {
	var sb strings.Builder
	prev := css.ErrorToken
	for _, t := range tokens {
		if t.TokenType == css.WhitespaceToken || t.TokenType == css.CommentToken {
			continue
		}
		if sb.Len() > 0 && prev != css.FunctionToken && prev != css.LeftParenthesisToken &&
			t.TokenType != css.CommaToken && t.TokenType != css.RightParenthesisToken {
			sb.WriteByte(' ')
		}
		sb.Write(t.Data)
		prev = t.TokenType
	}
	return sb.String()
}
