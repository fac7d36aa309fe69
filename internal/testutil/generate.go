// Package testutil generates YAYAML documents for tests and benchmarks.
package testutil

import (
	"strconv"
	"strings"
)

// Chain returns n lines, each indented one space further than the one
// before. Every line is the property "level" and the last one carries
// leaf as its value, so the document converts to n nested mappings.
func Chain(n int, leaf string) string {
	var sb strings.Builder
	for i := range n {
		sb.WriteString(strings.Repeat(" ", i))
		sb.WriteString("level")
		if i == n-1 && leaf != "" {
			sb.WriteString(" ")
			sb.WriteString(leaf)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Document returns a document nested depth levels deep. Each level holds
// width scalar properties, a repeated property, a named map and a "child"
// property holding the next level.
func Document(depth, width int) string {
	var sb strings.Builder
	for d := range depth {
		pad := strings.Repeat("  ", d)
		for i := range width {
			sb.WriteString(pad + "key" + strconv.Itoa(i) + " value " + strconv.Itoa(i) + "\n")
		}
		sb.WriteString(pad + "# level " + strconv.Itoa(d) + "\n")
		sb.WriteString(pad + "tag first\n")
		sb.WriteString(pad + "tag " + strconv.Itoa(d) + "\n")
		sb.WriteString(pad + "host h" + strconv.Itoa(d) + "\n")
		sb.WriteString(pad + "  port " + strconv.Itoa(8000+d) + "\n")
		sb.WriteString(pad + "child\n")
	}
	return sb.String()
}
