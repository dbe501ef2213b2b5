// Package colorize renders disassembly listings with terminal colors
// using chroma. A custom lexer tokenizes the listing format; the
// palette is registered as a chroma style so user overrides can swap
// it out by name.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
)

// listingLexer tokenizes regdis disassembly listings: uppercase
// mnemonics, decimal immediates, quoted constants, jump markers, and
// the "acc" accumulator convention.
var listingLexer = chroma.MustNewLexer(
	&chroma.Config{
		Name:      "regdis",
		Aliases:   []string{"regdis"},
		Filenames: []string{"*.rdasm"},
	},
	func() chroma.Rules {
		return chroma.Rules{
			"root": {
				{Pattern: `-->|>>`, Type: chroma.NameLabel, Mutator: nil},
				{Pattern: `Disassembly of [^\n]*`, Type: chroma.GenericHeading, Mutator: nil},
				{Pattern: `\b[A-Z][A-Z0-9_]+\b`, Type: chroma.Keyword, Mutator: nil},
				{Pattern: `'(\\.|[^'\\])*'`, Type: chroma.LiteralString, Mutator: nil},
				{Pattern: `\bto\b|\bacc\b|<-`, Type: chroma.Operator, Mutator: nil},
				{Pattern: `\.t\d+`, Type: chroma.NameVariable, Mutator: nil},
				{Pattern: `-?\d+`, Type: chroma.LiteralNumber, Mutator: nil},
				{Pattern: `[()\[\];.,=]`, Type: chroma.Punctuation, Mutator: nil},
				{Pattern: `[A-Za-z_][\w.]*`, Type: chroma.Name, Mutator: nil},
				{Pattern: `\s+`, Type: chroma.TextWhitespace, Mutator: nil},
				{Pattern: `.`, Type: chroma.Text, Mutator: nil},
			},
		}
	},
)

// getListingStyle returns the listing style with fallbacks.
func getListingStyle() *chroma.Style {
	candidates := []string{"regdis-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter.
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// Listing colorizes a disassembly listing for terminal output. Colors
// are disabled by REGDIS_NO_COLOR; on any tokenizer or formatter error
// the plain listing is returned unchanged.
func Listing(text string) (string, error) {
	if os.Getenv("REGDIS_NO_COLOR") != "" {
		return text, nil
	}

	iterator, err := listingLexer.Tokenise(nil, text)
	if err != nil {
		return text, err
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getListingStyle(), iterator); err != nil {
		return text, err
	}
	return buf.String(), nil
}
