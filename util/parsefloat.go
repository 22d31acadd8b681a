package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseFloatPrefix parses the longest leading decimal number in s and ignores
// whatever follows it, so "50%" is 50 and "1.5turn" is 1.5. Leading
// whitespace is skipped. NaN is returned when s does not start with a number.
func ParseFloatPrefix(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := numericPrefixLen(s)
	if end == 0 {
		return parseInfinity(s)
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		// overflow / underflow still yields +-Inf or 0 which is what we want
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return math.NaN()
	}
	return v
}

func parseInfinity(s string) float64 {
	sign := 1
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		s = s[1:]
		sign = -1
	}
	if strings.HasPrefix(s, "Infinity") {
		return math.Inf(sign)
	}
	return math.NaN()
}

func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}

	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits > 0 || frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	// exponent only counts when at least one digit follows
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
