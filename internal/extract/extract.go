// Package extract pulls icon definitions out of source file text.
//
// A definition is three fields embedded in fixed order in a source file:
// a match= assignment holding the display aliases, a color= assignment
// holding the palette tokens, and a raw triple-quoted block holding the
// art template. Extraction uses one anchored multi-group pattern over the
// whole file body; a file without the triple yields ErrNoMatch.
package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/iconpack/pkg/types"
)

// ErrNoMatch reports that a file does not contain an icon definition.
// Callers treat it as a skip, not a failure.
var ErrNoMatch = errors.New("no icon definition found")

// UnknownTokenError reports a palette token that is neither "fg", a hex
// color, nor a decimal palette index.
type UnknownTokenError struct {
	Token string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unrecognized color token %q", e.Token)
}

// definitionRe matches the name, colors, and art fields in source order.
// Dot matches newline: the art block spans lines, and the fields may be
// separated by arbitrary code.
var definitionRe = regexp.MustCompile(
	`(?s)match=.*?['"](?P<name>.+)['"].*color='(?P<colors>.*)'.*?r"{3}(?P<art>.*)"{3}`,
)

// placeholderRe matches ${c...} color placeholders inside art lines.
var placeholderRe = regexp.MustCompile(`\$\{c.*?\}`)

// Definition extracts one Record from the text of a source file.
// It returns ErrNoMatch when the pattern does not apply, and a wrapped
// UnknownTokenError when a palette token cannot be classified.
func Definition(content string) (*types.Record, error) {
	m := definitionRe.FindStringSubmatch(content)
	if m == nil {
		return nil, ErrNoMatch
	}

	rawName := m[definitionRe.SubexpIndex("name")]
	rawColors := m[definitionRe.SubexpIndex("colors")]
	rawArt := m[definitionRe.SubexpIndex("art")]

	colors, err := parseColors(rawColors)
	if err != nil {
		return nil, fmt.Errorf("parsing palette: %w", err)
	}

	lines := parseArt(rawArt)
	width := artWidth(lines)

	return &types.Record{
		Names:  parseNames(rawName),
		Width:  width,
		Colors: colors,
		Art:    reformatArt(lines, width),
	}, nil
}

// parseNames splits the raw name field into trimmed display aliases.
// Quote and asterisk markup is stripped before splitting on "|".
func parseNames(raw string) []string {
	r := strings.NewReplacer("'", "", `"`, "", "*", "")
	parts := strings.Split(r.Replace(raw), "|")
	names := make([]string, len(parts))
	for i, p := range parts {
		names[i] = strings.TrimSpace(p)
	}
	return names
}

// parseColors maps each whitespace-delimited palette token to a Color.
func parseColors(raw string) ([]types.Color, error) {
	var colors []types.Color
	for _, tok := range strings.Fields(raw) {
		c, err := ClassifyColor(tok)
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// ClassifyColor maps one palette token to its Color variant:
//
//   - the literal "fg" is a reset entry
//   - a quote-stripped "#rrggbb" or "#rrggbbaa" string is a truecolor
//     entry built from the first six hex digits
//   - a decimal integer is an ANSI palette index
//
// Every other shape is an UnknownTokenError.
func ClassifyColor(token string) (types.Color, error) {
	if token == "fg" {
		return types.Reset(), nil
	}

	stripped := strings.Trim(token, `"'`)
	if (len(stripped) == 7 || len(stripped) == 9) && strings.HasPrefix(stripped, "#") {
		v, err := strconv.ParseUint(stripped[1:7], 16, 32)
		if err != nil {
			return types.Color{}, &UnknownTokenError{Token: token}
		}
		return types.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}

	n, err := strconv.Atoi(stripped)
	if err != nil {
		return types.Color{}, &UnknownTokenError{Token: token}
	}
	return types.Indexed(n), nil
}

// parseArt trims blank edges off the raw art block and splits it into lines.
func parseArt(raw string) []string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}

// artWidth returns the maximum visible line width: trailing whitespace is
// removed first, then ${c...} placeholders, matching the emitted padding.
func artWidth(lines []string) int {
	width := 0
	for _, line := range lines {
		stripped := placeholderRe.ReplaceAllString(strings.TrimRightFunc(line, unicode.IsSpace), "")
		if n := utf8.RuneCountInString(stripped); n > width {
			width = n
		}
	}
	return width
}

// reformatArt rewrites each line for emission: colons become semicolons
// (the output format reserves ":") and lines shorter than width are
// right-padded with spaces. Lines still carrying placeholder markup may
// exceed width; they are left as-is.
func reformatArt(lines []string, width int) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		line = strings.ReplaceAll(line, ":", ";")
		if n := utf8.RuneCountInString(line); n < width {
			line += strings.Repeat(" ", width-n)
		}
		out[i] = line
	}
	return out
}
