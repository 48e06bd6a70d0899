package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SIPrefixes are the LabVIEW SI prefixes in order, each a power of 1000 from
// 1e-24 up to 1e24. The space stands for no prefix and "u" means micro.
const SIPrefixes = "yzafpnum kMGTPEZY"

const (
	mantissa    = `[+-]?[0-9]+\.?[0-9]*`
	sciExponent = `[eE][+-][0-9]+`
)

// Lexer recognizes one numeric token.
type Lexer struct {
	pattern *regexp.Regexp
	si      bool
}

var (
	// SI lexes LabVIEW numbers: decimal, scientific, SI-prefixed, NaN, Inf, -Inf.
	SI = &Lexer{
		pattern: regexp.MustCompile(`^(` + mantissa + `|NaN|Inf|-Inf)(` + sciExponent + `|[` + SIPrefixes + `])?$`),
		si:      true,
	}
	// Scientific lexes decimal and scientific numbers only.
	Scientific = &Lexer{
		pattern: regexp.MustCompile(`^(` + mantissa + `)(` + sciExponent + `)?$`),
	}
)

// Parse converts tok to a float64 or returns ErrNotNumeric.
func (l *Lexer) Parse(tok string) (float64, error) {
	m := l.pattern.FindStringSubmatch(tok)
	if m == nil {
		return 0, ErrNotNumeric
	}
	return l.value(m[1], m[2])
}

// Probe reports whether tok is a number.
func (l *Lexer) Probe(tok string) bool {
	return l.pattern.MatchString(tok)
}

func (l *Lexer) value(mant, exp string) (float64, error) {
	if exp == "" || exp[0] == 'e' || exp[0] == 'E' {
		v, err := strconv.ParseFloat(mant+exp, 64)
		if err != nil && !isRangeError(err) {
			return 0, ErrNotNumeric
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(mant, 64)
	if err != nil && !isRangeError(err) {
		return 0, ErrNotNumeric
	}
	i := strings.IndexByte(SIPrefixes, exp[0])
	return v * math.Pow10(-24+3*i), nil
}

// isRangeError keeps overflowing literals as ±Inf, the way float() does.
func isRangeError(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// ParseNumber lexes tok with the SI lexer.
func ParseNumber(tok string) (float64, error) {
	return SI.Parse(tok)
}

// IsNumber probes tok with the SI lexer.
func IsNumber(tok string) bool {
	return SI.Probe(tok)
}
