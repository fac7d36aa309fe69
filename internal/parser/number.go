package parser

import (
	"math"
	"regexp"
	"strconv"

	"github.com/KimNorgaard/go-yayaml/ast"
)

var (
	// numericText decides whether a value is a number; "-", "." and "1-2"
	// all match.
	numericText = regexp.MustCompile(`^[\d.\-]+$`)
	// floatPrefix is the part of a numeric text that carries its value.
	floatPrefix = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)`)
)

// LooksNumeric reports whether a property value is read as a number.
func LooksNumeric(text string) bool {
	return numericText.MatchString(text)
}

// coerce turns a trimmed property value into a scalar.
func coerce(text string) ast.Value {
	if LooksNumeric(text) {
		return &ast.Number{Value: parseFloat(text), Literal: text}
	}
	return &ast.String{Value: text}
}

// parseFloat reads the longest leading decimal literal of s. It returns NaN
// when s does not start with one. Out of range literals become ±Inf.
func parseFloat(s string) float64 {
	lit := floatPrefix.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(lit, 64)
	return f
}

// mapKey returns the property name a value takes when used as the inner
// key of a named map.
func mapKey(text string) string {
	if n, ok := coerce(text).(*ast.Number); ok {
		return ast.FormatNumber(n.Value)
	}
	return text
}
