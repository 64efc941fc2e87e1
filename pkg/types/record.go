// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data model shared across the iconpack stages.
package types

// ColorKind discriminates the Color tagged union.
type ColorKind string

const (
	// ColorReset restores the terminal's default foreground.
	ColorReset ColorKind = "reset"

	// ColorRGB is a 24-bit truecolor value.
	ColorRGB ColorKind = "rgb"

	// ColorIndexed is an entry in the 256-color ANSI palette.
	ColorIndexed ColorKind = "indexed"
)

// Color is one entry in an icon's palette. Exactly one variant applies:
// Reset carries no payload, RGB carries R/G/B, Indexed carries Index.
// Palette order is significant; entry N backs the ${cN+1} placeholder in
// the art template.
type Color struct {
	Kind ColorKind `json:"kind" yaml:"kind"`

	// R, G, B are the channel values for ColorRGB.
	R uint8 `json:"r,omitempty" yaml:"r,omitempty"`
	G uint8 `json:"g,omitempty" yaml:"g,omitempty"`
	B uint8 `json:"b,omitempty" yaml:"b,omitempty"`

	// Index is the ANSI palette index for ColorIndexed.
	Index int `json:"index,omitempty" yaml:"index,omitempty"`
}

// Reset returns a reset palette entry.
func Reset() Color {
	return Color{Kind: ColorReset}
}

// RGB returns a truecolor palette entry.
func RGB(r, g, b uint8) Color {
	return Color{Kind: ColorRGB, R: r, G: g, B: b}
}

// Indexed returns an ANSI palette entry.
func Indexed(n int) Color {
	return Color{Kind: ColorIndexed, Index: n}
}

// Record is one parsed icon definition, ready for emission. A Record is
// built once per source file and never mutated afterwards.
type Record struct {
	// Names holds the display aliases, in source order.
	Names []string `json:"names" yaml:"names"`

	// Width is the visible width of the art template: the maximum line
	// length after trailing whitespace and ${c...} placeholders are
	// stripped. Art lines are padded to this width on emission.
	Width int `json:"width" yaml:"width"`

	// Colors is the ordered palette.
	Colors []Color `json:"colors" yaml:"colors"`

	// Art holds the reformatted template lines: colons replaced with
	// semicolons and each line right-padded to Width.
	Art []string `json:"art" yaml:"art"`
}
