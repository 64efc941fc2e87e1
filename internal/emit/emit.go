// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit renders Records into the icon document consumed by the
// fetch tool. The byte layout of each block is contractual: indentation,
// tag spelling, and the name-list form are fixed, so blocks are rendered
// by hand rather than through a YAML marshaler.
package emit

import (
	"fmt"
	"os"
	"strings"

	"github.com/pdiddy/iconpack/pkg/types"
)

// artIndent prefixes every art line inside the literal block.
const artIndent = "    "

// FormatRecord renders one Record as an output block. The block ends
// with a newline; WriteDocument joins blocks with one more newline, so
// consecutive records are separated by a single blank line.
func FormatRecord(rec *types.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "- name: %s\n", FormatNameList(rec.Names))
	fmt.Fprintf(&b, "  width: %d\n", rec.Width)
	b.WriteString("  colors:\n")
	for _, c := range rec.Colors {
		b.WriteString(formatColor(c))
	}
	b.WriteString("  art: |\n")
	for _, line := range rec.Art {
		b.WriteString(artIndent)
		b.WriteString(line)
		b.WriteByte('\n')
	}

	return b.String()
}

// FormatNameList renders the alias list in the document's fixed form:
// bracketed, single-quoted, comma-space separated, e.g. ['Arch', 'arch'].
func FormatNameList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// formatColor renders one palette entry as a colors: list element.
func formatColor(c types.Color) string {
	switch c.Kind {
	case types.ColorReset:
		return "    - Reset\n"
	case types.ColorRGB:
		return fmt.Sprintf("    - !Rgb\n      r: %d\n      g: %d\n      b: %d\n", c.R, c.G, c.B)
	default:
		return fmt.Sprintf("    - !AnsiValue %d\n", c.Index)
	}
}

// FormatDocument joins record blocks into the complete document body.
func FormatDocument(blocks []string) string {
	return strings.Join(blocks, "\n")
}

// WriteDocument writes the joined blocks to path, fully replacing any
// previous contents. The document is written once, at the end of a run.
func WriteDocument(path string, blocks []string) error {
	if err := os.WriteFile(path, []byte(FormatDocument(blocks)), 0o644); err != nil {
		return fmt.Errorf("writing document %s: %w", path, err)
	}
	return nil
}
